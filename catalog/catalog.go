// Package catalog loads the static album manifest that special targets and the collection view draw from
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/lixenwraith/vinyl-slasher/vmath"
)

//go:embed albums.json
var defaultManifest []byte

// unrankedRank sorts albums without a rank after every ranked album
const unrankedRank = 999

// ErrEmptyManifest is returned when a manifest parses but holds no usable album
var ErrEmptyManifest = errors.New("manifest contains no albums")

// Album is an unlockable collectible, immutable once loaded
type Album struct {
	Album  string `json:"album"`
	Artist string `json:"artist"`
	Tag    string `json:"tag,omitempty"`
	Rank   int    `json:"rank,omitempty"`
	File   string `json:"file"`
}

// ID is the identifier recorded by the unlock ledger
func (a *Album) ID() string { return a.File }

// SortRank returns the rank used for ordering, unranked albums last
func (a *Album) SortRank() int {
	if a.Rank <= 0 {
		return unrankedRank
	}
	return a.Rank
}

// SortOrder selects the collection ordering
type SortOrder uint8

const (
	SortByRank SortOrder = iota
	SortAlphabetical
)

func (o SortOrder) String() string {
	if o == SortAlphabetical {
		return "alpha"
	}
	return "rank"
}

// ParseSortOrder accepts "rank" or "alpha"/"alphabetical"
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(s) {
	case "", "rank":
		return SortByRank, nil
	case "alpha", "alphabetical":
		return SortAlphabetical, nil
	}
	return SortByRank, fmt.Errorf("unknown sort order %q", s)
}

// Catalog is the loaded album list with a lookup by file
type Catalog struct {
	albums []*Album
	byFile map[string]*Album
}

// Default returns the catalog built from the embedded manifest
func Default() *Catalog {
	c, err := Parse(defaultManifest)
	if err != nil {
		panic(fmt.Sprintf("failed to parse embedded album manifest: %v", err))
	}
	return c
}

// LoadFile reads a manifest from disk
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads a manifest from r
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data)
}

// Parse decodes a JSON manifest; entries without a file are skipped, duplicate files keep the first entry
func Parse(data []byte) (*Catalog, error) {
	var entries []Album
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	c := &Catalog{
		albums: make([]*Album, 0, len(entries)),
		byFile: make(map[string]*Album, len(entries)),
	}
	for i := range entries {
		a := entries[i]
		if a.File == "" {
			continue
		}
		if _, dup := c.byFile[a.File]; dup {
			continue
		}
		c.albums = append(c.albums, &a)
		c.byFile[a.File] = &a
	}

	if len(c.albums) == 0 {
		return nil, ErrEmptyManifest
	}
	return c, nil
}

// Len returns the number of albums
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.albums)
}

// All returns albums in manifest order, callers must not mutate the slice
func (c *Catalog) All() []*Album {
	if c == nil {
		return nil
	}
	return c.albums
}

// Get looks an album up by file
func (c *Catalog) Get(file string) (*Album, bool) {
	if c == nil {
		return nil, false
	}
	a, ok := c.byFile[file]
	return a, ok
}

// Random picks a uniformly distributed album, nil for an empty catalog
func (c *Catalog) Random(src vmath.Source) *Album {
	if c.Len() == 0 {
		return nil
	}
	return vmath.Pick(src, c.albums)
}

// Sorted returns a copy ordered for the collection view
func (c *Catalog) Sorted(order SortOrder) []*Album {
	out := slices.Clone(c.All())
	switch order {
	case SortAlphabetical:
		slices.SortStableFunc(out, func(a, b *Album) int {
			return strings.Compare(strings.ToLower(a.Album), strings.ToLower(b.Album))
		})
	default:
		slices.SortStableFunc(out, func(a, b *Album) int {
			return a.SortRank() - b.SortRank()
		})
	}
	return out
}
