package mesh

import (
	"bytes"
	"strings"
	"testing"

	"go.viam.com/test"
)

func countLinesWithPrefix(s, prefix string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(line, prefix) {
			n++
		}
	}
	return n
}

func TestWriteOBJ(t *testing.T) {
	var buf bytes.Buffer
	test.That(t, WriteOBJ(&buf, NewColoredCube(), "sample_mesh.mtl"), test.ShouldBeNil)
	out := buf.String()
	test.That(t, out, test.ShouldContainSubstring, "mtllib sample_mesh.mtl\n")
	test.That(t, out, test.ShouldContainSubstring, "usemtl material0\n")
	test.That(t, countLinesWithPrefix(out, "v "), test.ShouldEqual, 8)
	test.That(t, countLinesWithPrefix(out, "vn "), test.ShouldEqual, 8)
	test.That(t, countLinesWithPrefix(out, "f "), test.ShouldEqual, 12)

	buf.Reset()
	test.That(t, WriteOBJ(&buf, NewTetrahedron(), ""), test.ShouldBeNil)
	test.That(t, buf.String(), test.ShouldNotContainSubstring, "mtllib")
}

func TestWriteMTL(t *testing.T) {
	var buf bytes.Buffer
	test.That(t, WriteMTL(&buf, NewColoredCube()), test.ShouldBeNil)
	out := buf.String()
	test.That(t, out, test.ShouldContainSubstring, "newmtl material0\n")
	// two facets each of red/green/blue/yellow/magenta/cyan average to mid gray
	test.That(t, out, test.ShouldContainSubstring, "Kd 0.500000 0.500000 0.500000\n")
	test.That(t, out, test.ShouldContainSubstring, "illum 1\n")
}

func TestWriteOFF(t *testing.T) {
	var buf bytes.Buffer
	test.That(t, WriteOFF(&buf, NewColoredCube()), test.ShouldBeNil)
	lines := strings.Split(buf.String(), "\n")
	test.That(t, lines[0], test.ShouldEqual, "OFF")
	test.That(t, lines[1], test.ShouldEqual, "8 12 0")
	test.That(t, countLinesWithPrefix(buf.String(), "3 "), test.ShouldEqual, 12)
}

func TestWritePLY(t *testing.T) {
	var buf bytes.Buffer
	test.That(t, WritePLY(&buf, NewColoredCube()), test.ShouldBeNil)
	out := buf.String()
	test.That(t, out, test.ShouldContainSubstring, "format ascii 1.0\n")
	test.That(t, out, test.ShouldContainSubstring, "element vertex 8\n")
	test.That(t, out, test.ShouldContainSubstring, "element face 12\n")
	test.That(t, out, test.ShouldContainSubstring, "property uchar red\n")

	buf.Reset()
	test.That(t, WritePLY(&buf, NewTetrahedron()), test.ShouldBeNil)
	out = buf.String()
	test.That(t, out, test.ShouldContainSubstring, "element vertex 4\n")
	test.That(t, out, test.ShouldNotContainSubstring, "property uchar red")
}

func TestEdgeCases(t *testing.T) {
	cases := EdgeCases()
	test.That(t, cases, test.ShouldHaveLength, 3)
	for _, ec := range cases {
		test.That(t, ec.Content, test.ShouldStartWith, "solid ")
		test.That(t, ec.Content, test.ShouldContainSubstring, "endsolid ")
		test.That(t, strings.HasSuffix(ec.Filename, ".stl"), test.ShouldBeTrue)
	}
	test.That(t, cases[0].Content, test.ShouldContainSubstring, "// This facet has extra whitespace and comments")
	test.That(t, cases[1].Content, test.ShouldContainSubstring, "vertex 1000000.0 2000000.0 3000000.0")
	test.That(t, cases[2].Content, test.ShouldContainSubstring, "0.707106781186547")
}
