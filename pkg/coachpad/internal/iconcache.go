package internal

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

const defaultMaxIconCacheSize = 24

// IconCache rasterizes SVG icons to textures and keeps the most recently
// used ones alive. Rasterization is expensive relative to a frame, so role
// avatars and status icons are drawn once per size and reused.
type IconCache struct {
	renderer *sdl.Renderer
	textures map[string]*sdl.Texture
	order    []string // insertion order for LRU eviction
	maxSize  int
}

// NewIconCache creates a cache bound to the renderer.
func NewIconCache(renderer *sdl.Renderer) *IconCache {
	return &IconCache{
		renderer: renderer,
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, defaultMaxIconCacheSize),
		maxSize:  defaultMaxIconCacheSize,
	}
}

// Get returns the texture for an SVG at the given square size, rasterizing
// on miss. The key is path plus size, so the same icon at two sizes is two
// entries.
func (c *IconCache) Get(path string, size int32) (*sdl.Texture, error) {
	key := fmt.Sprintf("%s@%d", path, size)

	if texture, exists := c.textures[key]; exists {
		c.moveToEnd(key)
		return texture, nil
	}

	texture, err := c.rasterize(path, size)
	if err != nil {
		return nil, err
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}
	c.textures[key] = texture
	c.order = append(c.order, key)

	return texture, nil
}

func (c *IconCache) rasterize(path string, size int32) (*sdl.Texture, error) {
	icon, err := oksvg.ReadIcon(path, oksvg.StrictErrorMode)
	if err != nil {
		return nil, fmt.Errorf("read svg %s: %w", path, err)
	}

	w, h := int(size), int(size)
	icon.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		int32(w), int32(h), 32, int32(rgba.Stride),
		sdl.PIXELFORMAT_ABGR8888,
	)
	if err != nil {
		return nil, fmt.Errorf("surface for %s: %w", path, err)
	}
	defer surface.Free()

	texture, err := c.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("texture for %s: %w", path, err)
	}
	return texture, nil
}

func (c *IconCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *IconCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		texture.Destroy()
		delete(c.textures, oldest)
	}
}

// Destroy releases every cached texture.
func (c *IconCache) Destroy() {
	for _, texture := range c.textures {
		texture.Destroy()
	}
	c.textures = make(map[string]*sdl.Texture)
	c.order = c.order[:0]
}
