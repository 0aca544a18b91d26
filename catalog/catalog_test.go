package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/vinyl-slasher/vmath"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	if c.Len() == 0 {
		t.Fatal("embedded manifest is empty")
	}
	for _, a := range c.All() {
		if a.File == "" || a.Album == "" || a.Artist == "" {
			t.Errorf("incomplete album entry: %+v", a)
		}
		got, ok := c.Get(a.File)
		if !ok || got != a {
			t.Errorf("Get(%q) did not return the catalog entry", a.File)
		}
	}
}

func TestParseSkipsInvalidAndDuplicates(t *testing.T) {
	data := `[
		{"album": "A", "artist": "x", "file": "a.jpg", "rank": 2},
		{"album": "NoFile", "artist": "x"},
		{"album": "A again", "artist": "y", "file": "a.jpg"},
		{"album": "B", "artist": "z", "file": "b.jpg"}
	]`
	c, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	a, _ := c.Get("a.jpg")
	if a.Album != "A" {
		t.Errorf("duplicate replaced first entry: got %q", a.Album)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte(`not json`)); err == nil {
		t.Error("expected error for malformed manifest")
	}
	if _, err := Parse([]byte(`[]`)); !errors.Is(err, ErrEmptyManifest) {
		t.Errorf("Parse([]) error = %v, want ErrEmptyManifest", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "albums.json")
	if err := os.WriteFile(path, []byte(`[{"album":"A","artist":"x","file":"a.jpg"}]`), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing manifest")
	}
}

func TestSorted(t *testing.T) {
	data := `[
		{"album": "charlie", "artist": "x", "file": "c", "rank": 3},
		{"album": "Alpha", "artist": "x", "file": "a"},
		{"album": "bravo", "artist": "x", "file": "b", "rank": 1}
	]`
	c, err := Load(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		order SortOrder
		want  []string
	}{
		{SortByRank, []string{"b", "c", "a"}},
		{SortAlphabetical, []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.order.String(), func(t *testing.T) {
			got := c.Sorted(tt.order)
			for i, a := range got {
				if a.File != tt.want[i] {
					t.Errorf("position %d = %q, want %q", i, a.File, tt.want[i])
				}
			}
		})
	}

	// Sorting must not reorder the manifest
	if c.All()[0].File != "c" {
		t.Error("Sorted mutated manifest order")
	}
}

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		in      string
		want    SortOrder
		wantErr bool
	}{
		{"rank", SortByRank, false},
		{"", SortByRank, false},
		{"alpha", SortAlphabetical, false},
		{"Alphabetical", SortAlphabetical, false},
		{"size", SortByRank, true},
	}
	for _, tt := range tests {
		got, err := ParseSortOrder(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseSortOrder(%q) = %v, %v; want %v, err=%v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestRandomEmpty(t *testing.T) {
	var c *Catalog
	if c.Random(vmath.NewFastRand(1)) != nil {
		t.Error("Random on nil catalog must return nil")
	}
}
