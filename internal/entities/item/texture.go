package item

import (
	"context"
	"image"
	"image/color"

	"github.com/KirkDiggler/ducttape-items/internal/logger"
)

var (
	placeholderA = color.NRGBA{R: 255, G: 0, B: 255, A: 255}
	placeholderB = color.NRGBA{A: 255}
)

// Placeholder returns the size×size magenta and black checkerboard drawn for
// items whose texture is missing
func Placeholder(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	cell := size / 4
	if cell == 0 {
		cell = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetNRGBA(x, y, placeholderA)
			} else {
				img.SetNRGBA(x, y, placeholderB)
			}
		}
	}
	return img
}

// ImageOrPlaceholder loads the texture of it, substituting the placeholder when
// the texture is absent or fails to load. The boolean reports whether the real
// texture was used.
func ImageOrPlaceholder(ctx context.Context, it Item, size int) (image.Image, bool) {
	if it == nil {
		return Placeholder(size), false
	}
	img, err := it.Texture().Image(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn("item texture unavailable, using placeholder",
			"item", it.Ident(),
			"error", err)
		return Placeholder(size), false
	}
	if img == nil {
		return Placeholder(size), false
	}
	return img, true
}
