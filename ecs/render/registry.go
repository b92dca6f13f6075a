package render

import "github.com/hajimehoshi/ebiten/v2"

// Images caches baked images by key.
type Images struct {
	images map[string]*ebiten.Image
}

func NewImages() *Images {
	return &Images{images: make(map[string]*ebiten.Image)}
}

// Register stores an image by key.
func (c *Images) Register(key string, img *ebiten.Image) {
	if c == nil || key == "" || img == nil {
		return
	}
	c.images[key] = img
}

// Get returns a cached image by key.
func (c *Images) Get(key string) *ebiten.Image {
	if c == nil || key == "" {
		return nil
	}
	return c.images[key]
}

// GetOrBuild returns the image cached under key, building and caching it on
// first use.
func (c *Images) GetOrBuild(key string, build func() *ebiten.Image) *ebiten.Image {
	if img := c.Get(key); img != nil {
		return img
	}
	img := build()
	c.Register(key, img)
	return img
}
