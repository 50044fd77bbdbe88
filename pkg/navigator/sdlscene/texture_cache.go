package sdlscene

import (
	"container/list"
	"image/color"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/navigator/pkg/navigator/icons"
)

const defaultIconCacheSize = 8

// iconKey identifies one rasterized glyph.
type iconKey struct {
	glyph icons.Glyph
	size  int
	fill  color.NRGBA
}

type cachedIcon struct {
	key     iconKey
	texture *sdl.Texture
}

// IconCache keeps rasterized icons on the GPU, evicting the least recently
// drawn one when full.
type IconCache struct {
	entries map[iconKey]*list.Element
	recency *list.List // front is most recent
	limit   int
}

func NewIconCache(limit int) *IconCache {
	if limit <= 0 {
		limit = defaultIconCacheSize
	}
	return &IconCache{
		entries: make(map[iconKey]*list.Element, limit),
		recency: list.New(),
		limit:   limit,
	}
}

// Icon returns the texture for key, creating it with build on a miss.
func (c *IconCache) Icon(key iconKey, build func() (*sdl.Texture, error)) (*sdl.Texture, error) {
	if el, ok := c.entries[key]; ok {
		c.recency.MoveToFront(el)
		return el.Value.(*cachedIcon).texture, nil
	}

	texture, err := build()
	if err != nil {
		return nil, err
	}
	for c.recency.Len() >= c.limit {
		c.evict(c.recency.Back())
	}
	c.entries[key] = c.recency.PushFront(&cachedIcon{key: key, texture: texture})
	return texture, nil
}

func (c *IconCache) Len() int { return c.recency.Len() }

func (c *IconCache) evict(el *list.Element) {
	icon := c.recency.Remove(el).(*cachedIcon)
	delete(c.entries, icon.key)
	if icon.texture != nil {
		icon.texture.Destroy()
	}
}

// Destroy frees every cached texture.
func (c *IconCache) Destroy() {
	for c.recency.Len() > 0 {
		c.evict(c.recency.Back())
	}
}
