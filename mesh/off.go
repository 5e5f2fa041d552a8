package mesh

import (
	"fmt"
	"io"
)

// WriteOFF encodes the mesh in the Object File Format: the OFF magic, a
// vertex/face/edge count line, the vertex table, then 3-index face lines.
func WriteOFF(out io.Writer, m *Mesh) error {
	verts, faces := m.indexedVertices()

	if _, err := fmt.Fprintf(out, "OFF\n%d %d 0\n", len(verts), len(faces)); err != nil {
		return err
	}
	for _, v := range verts {
		if _, err := fmt.Fprintf(out, "%f %f %f\n", v.X, v.Y, v.Z); err != nil {
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
