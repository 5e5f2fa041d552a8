package mesh

import (
	"image/color"
	"math"
	"sort"

	"github.com/golang/geo/r3"
)

// NewTetrahedron creates the 4-facet tetrahedron fixture.
func NewTetrahedron() *Mesh {
	v1 := r3.Vector{X: 0.0, Y: 0.0, Z: 0.0}
	v2 := r3.Vector{X: 1.0, Y: 0.0, Z: 0.0}
	v3 := r3.Vector{X: 0.5, Y: 0.866, Z: 0.0}
	v4 := r3.Vector{X: 0.5, Y: 0.289, Z: 0.816}

	return NewMesh("Binary Tetrahedron Test", []*Triangle{
		NewTriangle(v1, v2, v3),
		NewTriangle(v1, v3, v4),
		NewTriangle(v1, v4, v2),
		NewTriangle(v2, v4, v3),
	})
}

// NewColoredCube creates the unit cube fixture with a different facet color on
// each of the six faces, two triangles per face.
func NewColoredCube() *Mesh {
	v := []r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: 1, Y: 0, Z: 1},
		{X: 1, Y: 1, Z: 1},
		{X: 0, Y: 1, Z: 1},
	}

	red := color.NRGBA{255, 0, 0, 255}
	green := color.NRGBA{0, 255, 0, 255}
	blue := color.NRGBA{0, 0, 255, 255}
	yellow := color.NRGBA{255, 255, 0, 255}
	magenta := color.NRGBA{255, 0, 255, 255}
	cyan := color.NRGBA{0, 255, 255, 255}

	return NewMesh("Colored Cube with RGB565", []*Triangle{
		// bottom (z=0)
		NewColoredTriangle(v[0], v[1], v[2], red),
		NewColoredTriangle(v[0], v[2], v[3], red),
		// top (z=1)
		NewColoredTriangle(v[4], v[7], v[6], green),
		NewColoredTriangle(v[4], v[6], v[5], green),
		// front (y=0)
		NewColoredTriangle(v[0], v[4], v[5], blue),
		NewColoredTriangle(v[0], v[5], v[1], blue),
		// back (y=1)
		NewColoredTriangle(v[2], v[6], v[7], yellow),
		NewColoredTriangle(v[2], v[7], v[3], yellow),
		// left (x=0)
		NewColoredTriangle(v[0], v[3], v[7], magenta),
		NewColoredTriangle(v[0], v[7], v[4], magenta),
		// right (x=1)
		NewColoredTriangle(v[1], v[5], v[6], cyan),
		NewColoredTriangle(v[1], v[6], v[2], cyan),
	})
}

// NewIcosphere creates a sphere mesh by midpoint subdivision of an
// icosahedron, renormalizing new vertices onto the sphere after every split.
// Each subdivision multiplies the facet count by four.
func NewIcosphere(radius float64, subdivisions int) *Mesh {
	phi := (1.0 + math.Sqrt(5.0)) / 2.0

	vertices := []r3.Vector{
		{X: -1, Y: phi, Z: 0}, {X: 1, Y: phi, Z: 0}, {X: -1, Y: -phi, Z: 0}, {X: 1, Y: -phi, Z: 0},
		{X: 0, Y: -1, Z: phi}, {X: 0, Y: 1, Z: phi}, {X: 0, Y: -1, Z: -phi}, {X: 0, Y: 1, Z: -phi},
		{X: phi, Y: 0, Z: -1}, {X: phi, Y: 0, Z: 1}, {X: -phi, Y: 0, Z: -1}, {X: -phi, Y: 0, Z: 1},
	}
	for i, v := range vertices {
		vertices[i] = v.Normalize().Mul(radius)
	}

	faces := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	for s := 0; s < subdivisions; s++ {
		edgeVertices := map[[2]int]int{}
		middle := func(a, b int) int {
			key := [2]int{a, b}
			sort.Ints(key[:])
			if idx, ok := edgeVertices[key]; ok {
				return idx
			}
			mid := vertices[a].Add(vertices[b]).Mul(0.5).Normalize().Mul(radius)
			idx := len(vertices)
			vertices = append(vertices, mid)
			edgeVertices[key] = idx
			return idx
		}

		newFaces := make([][3]int, 0, len(faces)*4)
		for _, f := range faces {
			a := middle(f[0], f[1])
			b := middle(f[1], f[2])
			c := middle(f[2], f[0])
			newFaces = append(newFaces,
				[3]int{f[0], a, c},
				[3]int{f[1], b, a},
				[3]int{f[2], c, b},
				[3]int{a, b, c},
			)
		}
		faces = newFaces
	}

	triangles := make([]*Triangle, 0, len(faces))
	for _, f := range faces {
		triangles = append(triangles, NewTriangle(vertices[f[0]], vertices[f[1]], vertices[f[2]]))
	}
	return NewMesh("Subdivided Sphere", triangles)
}

// ColorizeByCentroid returns a copy of the mesh with every facet colored by
// its centroid position, channels scaled the way the sample torus fixture
// colors its surface.
func ColorizeByCentroid(m *Mesh) *Mesh {
	clamp := func(v float64) uint8 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 255
		}
		return uint8(v * 255)
	}

	triangles := make([]*Triangle, 0, len(m.triangles))
	for _, t := range m.triangles {
		c := t.p0.Add(t.p1).Add(t.p2).Mul(1.0 / 3.0)
		triangles = append(triangles, NewColoredTriangle(t.p0, t.p1, t.p2, color.NRGBA{
			R: clamp((c.X + 1.5) / 3.0),
			G: clamp((c.Y + 1.5) / 3.0),
			B: clamp((c.Z + 0.5) / 1.0),
			A: 255,
		}))
	}
	return NewMesh(m.label, triangles)
}

// NewTorus creates a torus mesh from a major/minor ring grid, two triangles
// per grid quad.
func NewTorus(majorRadius, minorRadius float64, majorSegments, minorSegments int) *Mesh {
	vertices := make([]r3.Vector, 0, majorSegments*minorSegments)
	for i := 0; i < majorSegments; i++ {
		majorAngle := 2 * math.Pi * float64(i) / float64(majorSegments)
		for j := 0; j < minorSegments; j++ {
			minorAngle := 2 * math.Pi * float64(j) / float64(minorSegments)
			vertices = append(vertices, r3.Vector{
				X: (majorRadius + minorRadius*math.Cos(minorAngle)) * math.Cos(majorAngle),
				Y: (majorRadius + minorRadius*math.Cos(minorAngle)) * math.Sin(majorAngle),
				Z: minorRadius * math.Sin(minorAngle),
			})
		}
	}

	triangles := make([]*Triangle, 0, 2*majorSegments*minorSegments)
	for i := 0; i < majorSegments; i++ {
		for j := 0; j < minorSegments; j++ {
			v1 := i*minorSegments + j
			v2 := i*minorSegments + (j+1)%minorSegments
			v3 := ((i+1)%majorSegments)*minorSegments + (j+1)%minorSegments
			v4 := ((i+1)%majorSegments)*minorSegments + j

			triangles = append(triangles,
				NewTriangle(vertices[v1], vertices[v2], vertices[v3]),
				NewTriangle(vertices[v1], vertices[v3], vertices[v4]),
			)
		}
	}
	return NewMesh("Torus Mesh", triangles)
}
