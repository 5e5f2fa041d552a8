package depth

import (
	"image"
	"image/color"
	"io"

	"golang.org/x/image/tiff"
)

// whitePixelPositions are the (y, x) coordinates lit in the TIFF fixture: the
// two extreme corners, an evenly spaced diagonal, and one off-diagonal point.
var whitePixelPositions = [][2]int{
	{0, 0},
	{999, 999},
	{125, 125},
	{250, 250},
	{375, 375},
	{500, 500},
	{625, 625},
	{750, 750},
	{875, 875},
	{100, 900},
}

// WhitePixelImage is the 1000x1000 8-bit TIFF fixture: black except for ten
// white pixels at fixed positions.
func WhitePixelImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 1000, 1000))
	for _, pos := range whitePixelPositions {
		img.SetGray(pos[1], pos[0], color.Gray{Y: 255})
	}
	return img
}

// WriteTIFF encodes a single-channel image as an uncompressed TIFF.
func WriteTIFF(out io.Writer, img image.Image) error {
	return tiff.Encode(out, img, &tiff.Options{Compression: tiff.Uncompressed})
}
