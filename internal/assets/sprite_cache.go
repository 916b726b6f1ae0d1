// internal/assets/sprite_cache.go
package assets

import (
	"hash/fnv"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"

	"go-pacman/internal/config"
	"go-pacman/internal/logger"
	"go-pacman/internal/sprite"
)

// SpriteCache хранит картинки спрайтов по имени и кадру.
// Картинок из файлов здесь нет: для каждого имени строится цветная плитка,
// кадры анимации отличаются яркостью.
type SpriteCache struct {
	images map[string]*ebiten.Image
	size   int
}

// NewSpriteCache создаёт пустой кэш плиток размером size×size
func NewSpriteCache(size int) *SpriteCache {
	return &SpriteCache{
		images: make(map[string]*ebiten.Image),
		size:   size,
	}
}

func cacheKey(name string, frame int) string {
	return name + "#" + strconv.Itoa(frame)
}

// Image возвращает картинку текущего кадра спрайта, создавая её при первом запросе
func (c *SpriteCache) Image(s sprite.Sprite) *ebiten.Image {
	key := cacheKey(s.Name(), s.Frame())
	if img, ok := c.images[key]; ok {
		return img
	}
	img := ebiten.NewImage(c.size, c.size)
	img.Fill(TileColor(s.Name(), s.Frame()))
	c.images[key] = img
	logger.Log.Debugf("sprite tile created: %s", key)
	return img
}

// TileColor выбирает цвет плитки по имени спрайта; поздние кадры темнее
func TileColor(name string, frame int) color.RGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	base := config.SpriteColors[int(h.Sum32()%uint32(len(config.SpriteColors)))]
	shade := 255 - frame*16
	if shade < 64 {
		shade = 64
	}
	return color.RGBA{
		R: uint8(int(base.R) * shade / 255),
		G: uint8(int(base.G) * shade / 255),
		B: uint8(int(base.B) * shade / 255),
		A: base.A,
	}
}

// Cleanup освобождает все картинки
func (c *SpriteCache) Cleanup() {
	for key, img := range c.images {
		img.Deallocate()
		delete(c.images, key)
	}
	logger.Log.Debug("sprite cache cleared")
}

// Len — число закэшированных картинок
func (c *SpriteCache) Len() int { return len(c.images) }
