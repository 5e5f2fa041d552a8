package mesh

import (
	"bytes"
	"encoding/binary"
	"image/color"
	"testing"

	"go.viam.com/test"
)

func TestRGB565Packing(t *testing.T) {
	for _, tc := range []struct {
		c    color.NRGBA
		want uint16
	}{
		{color.NRGBA{255, 0, 0, 255}, 0xF800},
		{color.NRGBA{0, 255, 0, 255}, 0x07E0},
		{color.NRGBA{0, 0, 255, 255}, 0x001F},
		{color.NRGBA{255, 255, 0, 255}, 0xFFE0},
		{color.NRGBA{255, 255, 255, 255}, 0xFFFF},
		{color.NRGBA{0, 0, 0, 255}, 0x0000},
		{color.NRGBA{128, 128, 128, 255}, 15<<11 | 31<<5 | 15},
	} {
		test.That(t, rgb565(tc.c), test.ShouldEqual, tc.want)
	}
}

func TestBinarySTLTetrahedronSize(t *testing.T) {
	var buf bytes.Buffer
	test.That(t, WriteBinarySTL(&buf, NewTetrahedron()), test.ShouldBeNil)
	// 80 header + 4 count + 4 triangles * 50 bytes
	test.That(t, buf.Len(), test.ShouldEqual, 284)

	// no facet colors, so every attribute must be zero
	data := buf.Bytes()
	for i := 0; i < 4; i++ {
		attr := binary.LittleEndian.Uint16(data[84+i*50+48:])
		test.That(t, attr, test.ShouldEqual, 0)
	}
}

func TestBinarySTLColoredCubeSize(t *testing.T) {
	var buf bytes.Buffer
	test.That(t, WriteBinarySTL(&buf, NewColoredCube()), test.ShouldBeNil)
	// 80 header + 4 count + 12 triangles * 50 bytes
	test.That(t, buf.Len(), test.ShouldEqual, 684)

	data := buf.Bytes()
	test.That(t, binary.LittleEndian.Uint32(data[80:]), test.ShouldEqual, 12)
	for i := 0; i < 12; i++ {
		attr := binary.LittleEndian.Uint16(data[84+i*50+48:])
		test.That(t, attr, test.ShouldNotEqual, 0)
	}
	// bottom face is pure red
	test.That(t, binary.LittleEndian.Uint16(data[84+48:]), test.ShouldEqual, 0xF800)
}

func TestBinarySTLHeader(t *testing.T) {
	var buf bytes.Buffer
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'x'
	}
	m := NewMesh(string(long), NewTetrahedron().Triangles())
	test.That(t, WriteBinarySTL(&buf, m), test.ShouldBeNil)
	test.That(t, buf.Len(), test.ShouldEqual, 284)
	test.That(t, buf.Bytes()[:80], test.ShouldResemble, long[:80])
}

func TestBinarySTLRoundTrip(t *testing.T) {
	for _, m := range []*Mesh{NewTetrahedron(), NewColoredCube(), NewTorus(2.0, 0.5, 16, 8)} {
		var buf bytes.Buffer
		test.That(t, WriteBinarySTL(&buf, m), test.ShouldBeNil)

		got, err := ReadBinarySTL(bytes.NewReader(buf.Bytes()))
		test.That(t, err, test.ShouldBeNil)
		test.That(t, got.Label(), test.ShouldEqual, m.Label())
		test.That(t, len(got.Triangles()), test.ShouldEqual, len(m.Triangles()))

		for i, want := range m.Triangles() {
			gt := got.Triangles()[i]
			wantPts := want.Points()
			for j, p := range gt.Points() {
				test.That(t, p.X, test.ShouldEqual, float64(float32(wantPts[j].X)))
				test.That(t, p.Y, test.ShouldEqual, float64(float32(wantPts[j].Y)))
				test.That(t, p.Z, test.ShouldEqual, float64(float32(wantPts[j].Z)))
			}
			test.That(t, gt.Normal().X, test.ShouldEqual, float64(float32(want.Normal().X)))
			test.That(t, gt.Normal().Y, test.ShouldEqual, float64(float32(want.Normal().Y)))
			test.That(t, gt.Normal().Z, test.ShouldEqual, float64(float32(want.Normal().Z)))
		}
	}
}

func TestBinarySTLDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	test.That(t, WriteBinarySTL(&a, NewIcosphere(1.5, 2)), test.ShouldBeNil)
	test.That(t, WriteBinarySTL(&b, NewIcosphere(1.5, 2)), test.ShouldBeNil)
	test.That(t, a.Bytes(), test.ShouldResemble, b.Bytes())
}
