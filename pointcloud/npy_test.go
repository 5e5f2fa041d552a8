package pointcloud

import (
	"bytes"
	"testing"

	"github.com/kshedden/gonpy"
	"go.viam.com/test"
)

func TestFactors(t *testing.T) {
	for _, tc := range []struct {
		n      int
		p1, p2 int
	}{
		{1250, 25, 50},
		{12, 3, 4},
		{7, 1, 7},
		{1, 1, 1},
		{0, 1, 1},
	} {
		p1, p2 := factors2(tc.n)
		test.That(t, p1, test.ShouldEqual, tc.p1)
		test.That(t, p2, test.ShouldEqual, tc.p2)
		if tc.n > 0 {
			test.That(t, p1*p2, test.ShouldEqual, tc.n)
		}
	}

	d1, d2, d3 := factors3(1250)
	test.That(t, d1*d2*d3, test.ShouldEqual, 1250)
	test.That(t, []int{d1, d2, d3}, test.ShouldResemble, []int{10, 5, 25})

	d1, d2, d3 = factors3(0)
	test.That(t, []int{d1, d2, d3}, test.ShouldResemble, []int{1, 1, 1})
}

func TestNPYShapes(t *testing.T) {
	shapes := NPYShapes(NewSphere(50, 25))
	test.That(t, shapes, test.ShouldResemble, [][]int{
		{1250, 3},
		{25, 50, 3},
		{10, 5, 25, 3},
	})
}

func TestToNPY(t *testing.T) {
	cloud := testCloud()

	var buf bytes.Buffer
	test.That(t, ToNPY(cloud, &buf, []int{2, 3}), test.ShouldBeNil)

	r, err := gonpy.NewReader(bytes.NewReader(buf.Bytes()))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, r.Shape, test.ShouldResemble, []int{2, 3})

	data, err := r.GetFloat64()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, data, test.ShouldResemble, []float64{1, 2, 3, -1, 0.5, 0})
}

func TestToNPYBadShape(t *testing.T) {
	var buf bytes.Buffer
	err := ToNPY(testCloud(), &buf, []int{5, 3})
	test.That(t, err, test.ShouldNotBeNil)
}
