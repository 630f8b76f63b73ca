package template

import (
	"image"
	"image/color"
	"image/draw"
)

// Mask marks the pixels of a reference image that belong to one component
type Mask struct {
	bounds image.Rectangle
	bits   []bool
}

// NewMask selects every pixel of ref whose colour equals c exactly
func NewMask(ref image.Image, c color.NRGBA) *Mask {
	b := ref.Bounds()
	m := &Mask{
		bounds: image.Rect(0, 0, b.Dx(), b.Dy()),
		bits:   make([]bool, b.Dx()*b.Dy()),
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := color.NRGBAModel.Convert(ref.At(x, y)).(color.NRGBA)
			if px == c {
				m.bits[(y-b.Min.Y)*b.Dx()+(x-b.Min.X)] = true
			}
		}
	}
	return m
}

// Bounds returns the mask rectangle, anchored at the origin
func (m *Mask) Bounds() image.Rectangle {
	return m.bounds
}

// At reports whether (x, y) is covered
func (m *Mask) At(x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(m.bounds) {
		return false
	}
	return m.bits[y*m.bounds.Dx()+x]
}

// Count returns the number of covered pixels
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Layer is a component image cut out by its mask
type Layer struct {
	Part  string
	Mask  *Mask
	Image image.Image
}

// Composite draws layers in order onto a transparent size by size raster.
// Covered pixels copy the layer image's pixel at the same offset; later layers
// win where masks overlap.
func Composite(size int, layers []Layer) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), image.Transparent, image.Point{}, draw.Src)

	for _, layer := range layers {
		if layer.Mask == nil || layer.Image == nil {
			continue
		}
		src := layer.Image.Bounds()
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				if !layer.Mask.At(x, y) {
					continue
				}
				sp := image.Point{X: src.Min.X + x, Y: src.Min.Y + y}
				if !sp.In(src) {
					continue
				}
				dst.Set(x, y, layer.Image.At(sp.X, sp.Y))
			}
		}
	}
	return dst
}

func cloneNRGBA(img *image.NRGBA) *image.NRGBA {
	out := image.NewNRGBA(img.Rect)
	copy(out.Pix, img.Pix)
	return out
}
