package mesh

import (
	"fmt"
	"io"
)

// WriteOBJ encodes the mesh as Wavefront OBJ with per-vertex normals.
// mtlLib, when nonempty, is referenced via an mtllib statement so viewers pick
// up the companion material file.
func WriteOBJ(out io.Writer, m *Mesh, mtlLib string) error {
	if mtlLib != "" {
		if _, err := fmt.Fprintf(out, "mtllib %s\n", mtlLib); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "usemtl %s\n", DefaultMaterialName); err != nil {
			return err
		}
	}

	verts, faces := m.indexedVertices()
	normals := vertexNormals(verts, faces, m.Triangles())
	for _, v := range verts {
		if _, err := fmt.Fprintf(out, "v %f %f %f\n", v.X, v.Y, v.Z); err != nil {
			return err
		}
	}
	for _, n := range normals {
		if _, err := fmt.Fprintf(out, "vn %f %f %f\n", n.X, n.Y, n.Z); err != nil {
			return err
		}
	}
	for _, f := range faces {
		// OBJ indices are 1-based; vertex and normal tables are parallel.
		if _, err := fmt.Fprintf(out, "f %d//%d %d//%d %d//%d\n",
			f[0]+1, f[0]+1, f[1]+1, f[1]+1, f[2]+1, f[2]+1); err != nil {
			return err
		}
	}
	return nil
}

// DefaultMaterialName is the material name shared by the OBJ and MTL writers.
const DefaultMaterialName = "material0"

// WriteMTL encodes the companion material sidecar: a single diffuse material
// whose Kd is the mean of the mesh's facet colors, scaled to [0,1].
func WriteMTL(out io.Writer, m *Mesh) error {
	var r, g, b float64
	n := 0
	for _, t := range m.Triangles() {
		if !t.HasColor() {
			continue
		}
		c := t.Color()
		r += float64(c.R) / 255.0
		g += float64(c.G) / 255.0
		b += float64(c.B) / 255.0
		n++
	}
	if n > 0 {
		r /= float64(n)
		g /= float64(n)
		b /= float64(n)
	} else {
		r, g, b = 1, 1, 1
	}

	if _, err := fmt.Fprintf(out, "# Generated MTL file\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "newmtl %s\n", DefaultMaterialName); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "Kd %.6f %.6f %.6f\n", r, g, b); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "illum 1\n")
	return err
}
