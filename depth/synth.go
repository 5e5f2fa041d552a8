package depth

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// noiseSigma is the standard deviation of the additive Gaussian noise.
	noiseSigma = 0.05
	// depthFloor is the smallest depth a synthesized sample may take, in
	// meters. Clamping keeps every sample strictly positive for any noise
	// realization.
	depthFloor = 0.1
)

// Synthesize produces a smooth depth field in meters: 1m at the image center
// growing radially to 3m at the corners, plus seeded Gaussian noise, clamped
// to the positive floor. The same seed and dimensions always produce the same
// samples.
func Synthesize(width, height int, seed int64) *Map {
	noise := distuv.Normal{
		Mu:    0,
		Sigma: noiseSigma,
		Src:   rand.NewPCG(uint64(seed), 0),
	}

	m := NewMap(width, height)
	for y := 0; y < height; y++ {
		fy := float64(y) / float64(height-1)
		for x := 0; x < width; x++ {
			fx := float64(x) / float64(width-1)
			d := 1.0 + 2.0*math.Sqrt((fx-0.5)*(fx-0.5)+(fy-0.5)*(fy-0.5))
			d += noise.Rand()
			if d < depthFloor {
				d = depthFloor
			}
			m.Set(x, y, float32(d))
		}
	}
	return m
}

// Disparity derives the disparity field from a depth map via
// baseline * fx / depth.
func Disparity(m *Map, intr Intrinsics) *Map {
	out := NewMap(m.Width(), m.Height())
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			out.Set(x, y, float32(intr.Baseline*intr.Fx/float64(m.At(x, y))))
		}
	}
	return out
}

// Pyramid produces the deterministic pyramid depth pattern: deepest at the
// center, stepping down by 0.5m per Chebyshev-distance ring.
func Pyramid(width, height int) *Map {
	centerX := width / 2
	centerY := height / 2
	maxDist := centerX
	if centerY > maxDist {
		maxDist = centerY
	}

	m := NewMap(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx := x - centerX
			if dx < 0 {
				dx = -dx
			}
			dy := y - centerY
			if dy < 0 {
				dy = -dy
			}
			dist := dx
			if dy > dist {
				dist = dy
			}
			m.Set(x, y, float32(1.0+float64(maxDist-dist)*0.5))
		}
	}
	return m
}

// Decimate keeps every step-th sample in both dimensions, starting at the
// origin.
func Decimate(m *Map, step int) *Map {
	out := NewMap((m.Width()+step-1)/step, (m.Height()+step-1)/step)
	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			out.Set(x, y, m.At(x*step, y*step))
		}
	}
	return out
}
