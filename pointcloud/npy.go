package pointcloud

import (
	"io"
	"math"

	"github.com/kshedden/gonpy"
	"github.com/pkg/errors"
)

// factors2 picks two factors close to sqrt(n) whose product is n.
func factors2(n int) (int, int) {
	if n <= 0 {
		return 1, 1
	}
	p1 := int(math.Round(math.Sqrt(float64(n))))
	if p1 < 1 {
		p1 = 1
	}
	for p1 > 1 && n%p1 != 0 {
		p1--
	}
	return p1, n / p1
}

// factors3 picks three factors close to the cube root whose product is n.
func factors3(n int) (int, int, int) {
	if n <= 0 {
		return 1, 1, 1
	}
	p1 := int(math.Round(math.Cbrt(float64(n))))
	if p1 < 1 {
		p1 = 1
	}
	for p1 > 1 && n%p1 != 0 {
		p1--
	}
	remaining := n / p1
	p2 := int(math.Round(math.Sqrt(float64(remaining))))
	if p2 < 1 {
		p2 = 1
	}
	for p2 > 1 && remaining%p2 != 0 {
		p2--
	}
	return p1, p2, remaining / p2
}

// NPYShapes returns the array shapes the cloud's positions are exported under:
// flat [P,3], a 2-D factorization [p1,p2,3], and a 3-D factorization
// [d1,d2,d3,3].
func NPYShapes(cloud *PointCloud) [][]int {
	n := cloud.Size()
	p1, p2 := factors2(n)
	d1, d2, d3 := factors3(n)
	return [][]int{
		{n, 3},
		{p1, p2, 3},
		{d1, d2, d3, 3},
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// ToNPY writes the cloud's positions as a float64 NumPy array of the given
// shape. The shape's element count must be 3x the point count.
func ToNPY(cloud *PointCloud, out io.Writer, shape []int) error {
	n := 1
	for _, s := range shape {
		n *= s
	}
	if n != cloud.Size()*3 {
		return errors.Errorf("shape %v does not hold %d position scalars", shape, cloud.Size()*3)
	}

	data := make([]float64, 0, cloud.Size()*3)
	cloud.Iterate(func(p Point) bool {
		data = append(data, p.Position.X, p.Position.Y, p.Position.Z)
		return true
	})

	w, err := gonpy.NewWriter(nopWriteCloser{out})
	if err != nil {
		return errors.Wrap(err, "cannot create npy writer")
	}
	w.Shape = shape
	return w.WriteFloat64(data)
}
