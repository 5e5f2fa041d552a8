package depth

import (
	"archive/zip"
	"io"

	"github.com/kshedden/gonpy"
	"github.com/pkg/errors"
)

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// WriteNPY encodes the raster as a 2-D float32 NumPy array, height-major.
func WriteNPY(out io.Writer, m *Map) error {
	w, err := gonpy.NewWriter(nopWriteCloser{out})
	if err != nil {
		return errors.Wrap(err, "cannot create npy writer")
	}
	w.Shape = []int{m.Height(), m.Width()}

	data := make([]float32, 0, m.Width()*m.Height())
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			data = append(data, m.At(x, y))
		}
	}
	return w.WriteFloat32(data)
}

func writeNPZScalar(zw *zip.Writer, name string, v float64) error {
	entry, err := zw.Create(name + ".npy")
	if err != nil {
		return errors.Wrapf(err, "cannot create npz member %s", name)
	}
	w, err := gonpy.NewWriter(nopWriteCloser{entry})
	if err != nil {
		return errors.Wrapf(err, "cannot create npy writer for %s", name)
	}
	w.Shape = []int{1}
	return w.WriteFloat64([]float64{v})
}

// WriteNPZ encodes the depth and disparity rasters plus the camera parameter
// set as a multi-array NPZ container. Arrays are stored under "depth" and
// "disparity"; each camera parameter is its own scalar member.
func WriteNPZ(out io.Writer, depth, disparity *Map, intr Intrinsics) error {
	zw := zip.NewWriter(out)

	for _, member := range []struct {
		name string
		m    *Map
	}{
		{"depth", depth},
		{"disparity", disparity},
	} {
		entry, err := zw.Create(member.name + ".npy")
		if err != nil {
			return errors.Wrapf(err, "cannot create npz member %s", member.name)
		}
		if err := WriteNPY(entry, member.m); err != nil {
			return err
		}
	}

	for _, scalar := range []struct {
		name string
		v    float64
	}{
		{"fx", intr.Fx},
		{"fy", intr.Fy},
		{"cx", intr.Ppx},
		{"cy", intr.Ppy},
		{"baseline", intr.Baseline},
		{"width", float64(intr.Width)},
		{"height", float64(intr.Height)},
	} {
		if err := writeNPZScalar(zw, scalar.name, scalar.v); err != nil {
			return err
		}
	}
	return zw.Close()
}
