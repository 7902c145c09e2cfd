// Package renderer draws the particle field onto a 2D raster surface.
package renderer

import "image/color"

// Surface is a rectangular raster the field is drawn onto.
// Colours are non-premultiplied.
type Surface interface {
	Clear()
	FillCircle(x, y, radius float32, c color.NRGBA)
	StrokeLine(x1, y1, x2, y2, width float32, c color.NRGBA)
	Size() (width, height int)
}

// Resizer is implemented by surfaces that own their backing store.
type Resizer interface {
	Resize(width, height int)
}

// Snapshotter is implemented by surfaces that can save their pixels.
type Snapshotter interface {
	WritePNG(path string) error
}

// alpha8 maps an opacity in [0,1] to an alpha byte.
func alpha8(a float32) uint8 {
	if a <= 0 {
		return 0
	}
	if a >= 1 {
		return 255
	}
	return uint8(a*255 + 0.5)
}
