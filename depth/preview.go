package depth

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// Colorize renders a human-checkable preview of the raster, sweeping hue from
// red (near) to blue (far) across the sample range. A flat raster comes out
// all red.
func Colorize(m *Map) *image.NRGBA {
	min, max := m.MinMax()
	span := float64(max - min)

	img := image.NewNRGBA(image.Rect(0, 0, m.Width(), m.Height()))
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			frac := 0.0
			if span > 0 {
				frac = float64(m.At(x, y)-min) / span
			}
			r, g, b := colorful.Hsv(240*frac, 1, 1).RGB255()
			i := img.PixOffset(x, y)
			img.Pix[i] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = 255
		}
	}
	return img
}

// Downsample shrinks an image by the given integer factor with nearest
// neighbor sampling, for the small preview fixtures.
func Downsample(img image.Image, factor int) *image.NRGBA {
	bounds := img.Bounds()
	return imaging.Resize(img, bounds.Dx()/factor, bounds.Dy()/factor, imaging.NearestNeighbor)
}
