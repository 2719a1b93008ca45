package renderer

import (
	"image"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ImageCache maps a sprite file path to its decoded RGBA image, shared
// across sequential renders by the same caller. A render must not retain
// a pointer returned by Get past a later Put to the same cache; re-lookup
// after insertion, matching open_cached's borrow discipline.
type ImageCache interface {
	Get(path string) (*image.RGBA, bool)
	Put(path string, img *image.RGBA)
}

// LRUCache is an ImageCache bounded to a fixed number of entries, evicting
// least-recently-used sprites once full.
type LRUCache struct {
	cache *lru.Cache[string, *image.RGBA]
}

// NewLRUCache builds an LRUCache holding at most size images.
func NewLRUCache(size int) (*LRUCache, error) {
	c, err := lru.New[string, *image.RGBA](size)
	if err != nil {
		return nil, err
	}
	return &LRUCache{cache: c}, nil
}

func (c *LRUCache) Get(path string) (*image.RGBA, bool) {
	return c.cache.Get(path)
}

func (c *LRUCache) Put(path string, img *image.RGBA) {
	c.cache.Add(path, img)
}

// MapCache is an unbounded ImageCache backed by a plain map, for callers
// that manage their own eviction (or render small enough scenes that
// eviction never matters).
type MapCache struct {
	entries map[string]*image.RGBA
}

// NewMapCache builds an empty MapCache.
func NewMapCache() *MapCache {
	return &MapCache{entries: make(map[string]*image.RGBA)}
}

func (c *MapCache) Get(path string) (*image.RGBA, bool) {
	img, ok := c.entries[path]
	return img, ok
}

func (c *MapCache) Put(path string, img *image.RGBA) {
	c.entries[path] = img
}
