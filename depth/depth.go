// Package depth synthesizes depth and disparity rasters and encodes them as
// the PFM, PNG, TIFF, and NumPy fixtures the visualizer is tested against.
package depth

import "math"

// Map is a row-major float32 raster with the origin at the top-left. The
// interpretation convention (meters, millimeters, scaled disparity) is
// external metadata carried by the fixture file name, never by the pixels.
type Map struct {
	width  int
	height int

	data []float32
}

// NewMap returns a zeroed raster of the given dimensions.
func NewMap(width, height int) *Map {
	return &Map{
		width:  width,
		height: height,
		data:   make([]float32, width*height),
	}
}

// Width returns the raster width in samples.
func (m *Map) Width() int {
	return m.width
}

// Height returns the raster height in samples.
func (m *Map) Height() int {
	return m.height
}

// At returns the sample at column x, row y.
func (m *Map) At(x, y int) float32 {
	return m.data[y*m.width+x]
}

// Set stores a sample at column x, row y.
func (m *Map) Set(x, y int, v float32) {
	m.data[y*m.width+x] = v
}

// MinMax returns the smallest and largest sample.
func (m *Map) MinMax() (float32, float32) {
	min := float32(math.Inf(1))
	max := float32(math.Inf(-1))
	for _, v := range m.data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// Intrinsics is the pinhole camera parameter set attached to depth fixtures.
type Intrinsics struct {
	Width    int
	Height   int
	Fx       float64
	Fy       float64
	Ppx      float64
	Ppy      float64
	Baseline float64
}

// DefaultIntrinsics returns the pinhole camera model the depth fixtures
// carry: 525px focal length, centered principal point, 10cm baseline.
func DefaultIntrinsics(width, height int) Intrinsics {
	return Intrinsics{
		Width:    width,
		Height:   height,
		Fx:       525.0,
		Fy:       525.0,
		Ppx:      float64(width) / 2.0,
		Ppy:      float64(height) / 2.0,
		Baseline: 0.1,
	}
}
