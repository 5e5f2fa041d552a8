// Package mesh synthesizes triangle meshes and encodes them in the file
// formats the visualizer is tested against (STL, OBJ/MTL, OFF, PLY, glTF).
package mesh

import (
	"image/color"

	"github.com/golang/geo/r3"
)

// Triangle is a single facet. Vertices stay in the order they were given;
// encoders that duplicate coordinates per facet (binary STL) write them
// verbatim with no reordering or winding correction.
type Triangle struct {
	p0 r3.Vector
	p1 r3.Vector
	p2 r3.Vector

	normal r3.Vector

	c        color.NRGBA
	hasColor bool
}

// NewTriangle creates an uncolored triangle with its normal computed from the
// vertex winding.
func NewTriangle(p0, p1, p2 r3.Vector) *Triangle {
	return &Triangle{
		p0:     p0,
		p1:     p1,
		p2:     p2,
		normal: PlaneNormal(p0, p1, p2),
	}
}

// NewColoredTriangle creates a triangle carrying a per-facet color. The alpha
// channel is ignored by every encoder.
func NewColoredTriangle(p0, p1, p2 r3.Vector, c color.NRGBA) *Triangle {
	t := NewTriangle(p0, p1, p2)
	t.c = c
	t.hasColor = true
	return t
}

// Points returns the three vertices of the triangle in input order.
func (t *Triangle) Points() []r3.Vector {
	return []r3.Vector{t.p0, t.p1, t.p2}
}

// Normal returns the triangle's normal vector.
func (t *Triangle) Normal() r3.Vector {
	return t.normal
}

// HasColor returns whether the triangle carries a facet color.
func (t *Triangle) HasColor() bool {
	return t.hasColor
}

// Color returns the facet color. Only meaningful when HasColor is true.
func (t *Triangle) Color() color.NRGBA {
	return t.c
}

// PlaneNormal computes the normalized normal of the plane spanned by three
// points. A degenerate triangle yields the zero vector.
func PlaneNormal(p0, p1, p2 r3.Vector) r3.Vector {
	n := p1.Sub(p0).Cross(p2.Sub(p0))
	if n.Norm() == 0 {
		return n
	}
	return n.Normalize()
}

// Mesh is an ordered sequence of triangles plus a label used for file headers.
// Triangles are independent; there is no shared-vertex indexing, deduplication,
// or topology validation.
type Mesh struct {
	label     string
	triangles []*Triangle
}

// NewMesh creates a mesh from a label and triangles.
func NewMesh(label string, triangles []*Triangle) *Mesh {
	return &Mesh{
		label:     label,
		triangles: triangles,
	}
}

// Label returns the mesh label.
func (m *Mesh) Label() string {
	return m.label
}

// Triangles returns the triangles in sequence order.
func (m *Mesh) Triangles() []*Triangle {
	return m.triangles
}

// HasColor returns whether any triangle carries a facet color.
func (m *Mesh) HasColor() bool {
	for _, t := range m.triangles {
		if t.hasColor {
			return true
		}
	}
	return false
}

// indexedVertices collapses the per-triangle vertex duplication into a vertex
// table indexed by first use, for the formats that reference vertices by index
// (OBJ, OFF, PLY, glTF).
func (m *Mesh) indexedVertices() ([]r3.Vector, [][3]int) {
	verts := []r3.Vector{}
	indexMap := map[r3.Vector]int{}
	faces := make([][3]int, 0, len(m.triangles))
	for _, t := range m.triangles {
		var face [3]int
		for i, p := range t.Points() {
			idx, ok := indexMap[p]
			if !ok {
				idx = len(verts)
				verts = append(verts, p)
				indexMap[p] = idx
			}
			face[i] = idx
		}
		faces = append(faces, face)
	}
	return verts, faces
}

// vertexNormals averages the facet normals incident to each indexed vertex and
// normalizes the result, mirroring how the visualizer shades smooth meshes.
func vertexNormals(verts []r3.Vector, faces [][3]int, triangles []*Triangle) []r3.Vector {
	normals := make([]r3.Vector, len(verts))
	for i, face := range faces {
		n := triangles[i].Normal()
		for _, idx := range face {
			normals[idx] = normals[idx].Add(n)
		}
	}
	for i, n := range normals {
		if n.Norm() > 0 {
			normals[i] = n.Normalize()
		}
	}
	return normals
}
