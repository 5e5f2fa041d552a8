package depth

import (
	"image"
	"image/color"
)

// gradient16 fills a 16-bit grayscale image with the diagonal integer ramp
// lo + (hi-lo)*(x+y)/(w+h) shared by the PNG depth fixtures.
func gradient16(width, height, lo, hi int) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := lo + (hi-lo)*(x+y)/(width+height)
			img.SetGray16(x, y, color.Gray16{Y: uint16(v)})
		}
	}
	return img
}

// MillimeterGradient is the 16-bit depth fixture in millimeters, ramping from
// 500mm to just under 5000mm across the diagonal.
func MillimeterGradient(width, height int) *image.Gray16 {
	return gradient16(width, height, 500, 5000)
}

// DisparityRamp is the 16-bit disparity fixture whose raw values must be
// divided by 256 by the reader, ramping from 256 to just under 1256.
func DisparityRamp(width, height int) *image.Gray16 {
	return gradient16(width, height, 256, 1256)
}

// MeterRamp is the 16-bit depth fixture holding meters scaled by 1000,
// ramping from 0.5m to just under 5m.
func MeterRamp(width, height int) *image.Gray16 {
	return gradient16(width, height, 500, 5000)
}

// EightBit downsamples a 16-bit raster to the 8-bit comparison fixture by
// dropping the low byte of every sample.
func EightBit(img *image.Gray16) *image.Gray {
	bounds := img.Bounds()
	out := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.SetGray(x, y, color.Gray{Y: uint8(img.Gray16At(x, y).Y / 256)})
		}
	}
	return out
}

// PunchInvalid returns a copy of the raster with size x size blocks zeroed out
// every stride pixels in both dimensions, marking them invalid for readers
// that treat zero depth as missing data.
func PunchInvalid(img *image.Gray16, stride, size int) *image.Gray16 {
	bounds := img.Bounds()
	out := image.NewGray16(bounds)
	copy(out.Pix, img.Pix)

	for y := bounds.Min.Y; y < bounds.Max.Y; y += stride {
		for x := bounds.Min.X; x < bounds.Max.X; x += stride {
			for dy := 0; dy < size && y+dy < bounds.Max.Y; dy++ {
				for dx := 0; dx < size && x+dx < bounds.Max.X; dx++ {
					out.SetGray16(x+dx, y+dy, color.Gray16{})
				}
			}
		}
	}
	return out
}

// ToGray16 quantizes a float raster into 16-bit grayscale with the given
// scale factor, clamping at the sample range bounds.
func ToGray16(m *Map, scale float64) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, m.Width(), m.Height()))
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			v := float64(m.At(x, y)) * scale
			if v < 0 {
				v = 0
			}
			if v > 65535 {
				v = 65535
			}
			img.SetGray16(x, y, color.Gray16{Y: uint16(v)})
		}
	}
	return img
}
