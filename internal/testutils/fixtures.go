package testutils

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SpearTemplate is a two component template definition used by fixtures
const SpearTemplate = `
data_name = "spear"

[attribute.Durability]
strategy = "Sum"

[attribute.Durability.attr."0f8fad5b-d9cb-469f-a165-70867728950e"]
priority = 0
reason = "spear"
modifier = { Set = 10.0 }

[components]
shaft = "#FF0000"
tip = "#0000FF"

[fallback]
tip = "rock"
`

// Mask colours used by SpearTemplate
var (
	SpearShaftColor = color.NRGBA{R: 0xff, A: 0xff}
	SpearTipColor   = color.NRGBA{B: 0xff, A: 0xff}
)

// WritePNG encodes a size by size image whose pixels come from at
func WritePNG(t *testing.T, path string, size int, at func(x, y int) color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, at(x, y))
		}
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	require.NoError(t, png.Encode(f, img))
}

// WriteSpearAssets lays out item/spear under root: the definition, a mask
// whose left half is the shaft and right half the tip, and rock images for
// both parts. It returns root.
func WriteSpearAssets(t *testing.T, root string, size int) string {
	t.Helper()
	dir := filepath.Join(root, "item", "spear")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "template.toml"), []byte(SpearTemplate), 0o644))

	WritePNG(t, filepath.Join(dir, "template.png"), size, func(x, _ int) color.NRGBA {
		if x < size/2 {
			return SpearShaftColor
		}
		return SpearTipColor
	})
	WritePNG(t, filepath.Join(dir, "shaft:rock.png"), size, func(int, int) color.NRGBA {
		return color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	})
	WritePNG(t, filepath.Join(dir, "tip:rock.png"), size, func(int, int) color.NRGBA {
		return color.NRGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}
	})
	return root
}
