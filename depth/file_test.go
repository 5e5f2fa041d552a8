package depth

import (
	"archive/zip"
	"bytes"
	"image"
	"testing"

	"github.com/kshedden/gonpy"
	"go.viam.com/test"
	"golang.org/x/image/tiff"
)

func TestWriteTIFF(t *testing.T) {
	img := WhitePixelImage()
	var buf bytes.Buffer
	test.That(t, WriteTIFF(&buf, img), test.ShouldBeNil)

	decoded, err := tiff.Decode(bytes.NewReader(buf.Bytes()))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, decoded.Bounds(), test.ShouldResemble, image.Rect(0, 0, 1000, 1000))

	shouldBeWhite := func(x, y int) {
		r, _, _, _ := decoded.At(x, y).RGBA()
		test.That(t, r, test.ShouldEqual, 0xffff)
	}
	shouldBeWhite(0, 0)
	shouldBeWhite(999, 999)
	shouldBeWhite(500, 500)
	shouldBeWhite(900, 100) // position list is (y, x)

	r, _, _, _ := decoded.At(1, 1).RGBA()
	test.That(t, r, test.ShouldEqual, 0)
}

func TestWriteNPY(t *testing.T) {
	m := Pyramid(20, 20)

	var buf bytes.Buffer
	test.That(t, WriteNPY(&buf, m), test.ShouldBeNil)

	r, err := gonpy.NewReader(bytes.NewReader(buf.Bytes()))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, r.Shape, test.ShouldResemble, []int{20, 20})

	data, err := r.GetFloat32()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, data[0], test.ShouldEqual, m.At(0, 0))
	test.That(t, data[10*20+10], test.ShouldEqual, m.At(10, 10))
}

func TestWriteNPZ(t *testing.T) {
	intr := DefaultIntrinsics(32, 24)
	d := Synthesize(32, 24, 42)

	var buf bytes.Buffer
	test.That(t, WriteNPZ(&buf, d, Disparity(d, intr), intr), test.ShouldBeNil)

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	test.That(t, err, test.ShouldBeNil)

	names := map[string]bool{}
	for _, f := range zr.File {
		names[f.Name] = true
	}
	for _, want := range []string{
		"depth.npy", "disparity.npy",
		"fx.npy", "fy.npy", "cx.npy", "cy.npy",
		"baseline.npy", "width.npy", "height.npy",
	} {
		test.That(t, names[want], test.ShouldBeTrue)
	}

	rc, err := zr.Open("fx.npy")
	test.That(t, err, test.ShouldBeNil)
	defer func() {
		test.That(t, rc.Close(), test.ShouldBeNil)
	}()
	nr, err := gonpy.NewReader(rc)
	test.That(t, err, test.ShouldBeNil)
	vals, err := nr.GetFloat64()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, vals, test.ShouldResemble, []float64{525.0})
}

func TestColorize(t *testing.T) {
	img := Colorize(Pyramid(20, 20))
	test.That(t, img.Bounds(), test.ShouldResemble, image.Rect(0, 0, 20, 20))

	// nearest sample is pure red, farthest is pure blue
	corner := img.NRGBAAt(0, 0)
	test.That(t, corner.R, test.ShouldEqual, 255)
	test.That(t, corner.B, test.ShouldEqual, 0)
	center := img.NRGBAAt(10, 10)
	test.That(t, center.B, test.ShouldEqual, 255)
	test.That(t, center.R, test.ShouldEqual, 0)
}

func TestDownsample(t *testing.T) {
	small := Downsample(Colorize(Pyramid(40, 40)), 4)
	test.That(t, small.Bounds(), test.ShouldResemble, image.Rect(0, 0, 10, 10))
}
