package render

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/vinyl-slasher/catalog"
	"github.com/lixenwraith/vinyl-slasher/core"
	"github.com/lixenwraith/vinyl-slasher/vmath"
)

// Thumb is album artwork downsampled to a square color grid
type Thumb struct {
	Size int
	Pix  []core.RGB
}

// At samples the thumbnail at normalized u, v in [0, 1]
func (t *Thumb) At(u, v float64) core.RGB {
	x := int(vmath.Clamp(u, 0, 0.999999) * float64(t.Size))
	y := int(vmath.Clamp(v, 0, 0.999999) * float64(t.Size))
	return t.Pix[y*t.Size+x]
}

// DecodeThumb decodes a PNG or JPEG and samples the center of size x size regions
func DecodeThumb(r io.Reader, size int) (*Thumb, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode artwork: %w", err)
	}
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return nil, fmt.Errorf("artwork has no pixels")
	}

	t := &Thumb{Size: size, Pix: make([]core.RGB, size*size)}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			sx := bounds.Min.X + (x*srcW+srcW/2)/size
			sy := bounds.Min.Y + (y*srcH+srcH/2)/size
			if sx >= bounds.Max.X {
				sx = bounds.Max.X - 1
			}
			if sy >= bounds.Max.Y {
				sy = bounds.Max.Y - 1
			}

			cr, cg, cb, ca := img.At(sx, sy).RGBA()
			if ca == 0 {
				continue
			}
			t.Pix[y*size+x] = core.RGB{
				R: uint8((cr * 0xff) / ca),
				G: uint8((cg * 0xff) / ca),
				B: uint8((cb * 0xff) / ca),
			}
		}
	}
	return t, nil
}

// ArtworkCache holds decoded thumbnails published from a background loader
// Entries are registered before loading starts; each becomes ready independently
type ArtworkCache struct {
	size    int
	logger  *log.Logger
	entries map[string]*atomic.Pointer[Thumb]
	ready   atomic.Int32
	done    chan struct{}
	once    sync.Once
}

// NewArtworkCache creates an empty cache producing size x size thumbnails
func NewArtworkCache(size int, logger *log.Logger) *ArtworkCache {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &ArtworkCache{
		size:    size,
		logger:  logger.With("component", "artwork"),
		entries: make(map[string]*atomic.Pointer[Thumb]),
		done:    make(chan struct{}),
	}
}

// Load decodes the artwork of every album from dir on a background goroutine
// Call once, before the first Get
func (c *ArtworkCache) Load(dir string, albums []*catalog.Album) {
	c.once.Do(func() {
		for _, a := range albums {
			if _, ok := c.entries[a.File]; !ok {
				c.entries[a.File] = &atomic.Pointer[Thumb]{}
			}
		}
		core.Go(func() {
			defer close(c.done)
			c.loadAll(dir, albums)
		})
	})
}

func (c *ArtworkCache) loadAll(dir string, albums []*catalog.Album) {
	for _, a := range albums {
		slot := c.entries[a.File]
		if slot.Load() != nil {
			continue
		}
		thumb, err := c.loadOne(filepath.Join(dir, a.File))
		if err != nil {
			c.logger.Debug("artwork unavailable, using plain disc", "file", a.File, "err", err)
			continue
		}
		slot.Store(thumb)
		c.ready.Add(1)
	}
	c.logger.Debug("artwork loaded", "ready", c.ready.Load(), "total", len(albums))
}

func (c *ArtworkCache) loadOne(path string) (*Thumb, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeThumb(f, c.size)
}

// Get returns the thumbnail for file once it is ready
func (c *ArtworkCache) Get(file string) (*Thumb, bool) {
	if c == nil {
		return nil, false
	}
	slot, ok := c.entries[file]
	if !ok {
		return nil, false
	}
	t := slot.Load()
	return t, t != nil
}

// Ready returns the number of decoded thumbnails
func (c *ArtworkCache) Ready() int {
	return int(c.ready.Load())
}

// Done is closed when the background loader finishes
func (c *ArtworkCache) Done() <-chan struct{} {
	return c.done
}
