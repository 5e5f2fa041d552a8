package mesh

import (
	"fmt"
	"io"
)

// WritePLY encodes the mesh as ascii PLY with per-vertex normals. When the
// mesh carries facet colors, each vertex gets the mean color of its incident
// facets as uchar red/green/blue properties.
func WritePLY(out io.Writer, m *Mesh) error {
	verts, faces := m.indexedVertices()
	normals := vertexNormals(verts, faces, m.Triangles())
	hasColor := m.HasColor()

	if _, err := fmt.Fprintf(out, "ply\nformat ascii 1.0\ncomment %s\n", m.Label()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "element vertex %d\n"+
		"property float x\nproperty float y\nproperty float z\n"+
		"property float nx\nproperty float ny\nproperty float nz\n", len(verts)); err != nil {
		return err
	}
	if hasColor {
		if _, err := fmt.Fprintf(out, "property uchar red\nproperty uchar green\nproperty uchar blue\n"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(out, "element face %d\n"+
		"property list uchar int vertex_indices\nend_header\n", len(faces)); err != nil {
		return err
	}

	var colors [][3]float64
	var counts []int
	if hasColor {
		colors = make([][3]float64, len(verts))
		counts = make([]int, len(verts))
		for i, f := range faces {
			t := m.Triangles()[i]
			if !t.HasColor() {
				continue
			}
			c := t.Color()
			for _, idx := range f {
				colors[idx][0] += float64(c.R)
				colors[idx][1] += float64(c.G)
				colors[idx][2] += float64(c.B)
				counts[idx]++
			}
		}
	}

	for i, v := range verts {
		n := normals[i]
		if hasColor {
			var r, g, b int
			if counts[i] > 0 {
				r = int(colors[i][0] / float64(counts[i]))
				g = int(colors[i][1] / float64(counts[i]))
				b = int(colors[i][2] / float64(counts[i]))
			}
			if _, err := fmt.Fprintf(out, "%f %f %f %f %f %f %d %d %d\n",
				v.X, v.Y, v.Z, n.X, n.Y, n.Z, r, g, b); err != nil {
				return err
			}
		} else if _, err := fmt.Fprintf(out, "%f %f %f %f %f %f\n",
			v.X, v.Y, v.Z, n.X, n.Y, n.Z); err != nil {
			return err
		}
	}
	for _, f := range faces {
		if _, err := fmt.Fprintf(out, "3 %d %d %d\n", f[0], f[1], f[2]); err != nil {
			return err
		}
	}
	return nil
}
