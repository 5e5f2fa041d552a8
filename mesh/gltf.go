package mesh

import (
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// gltfDocument assembles a single-primitive glTF 2.0 document with position
// and normal accessors backed by one little-endian float32 buffer.
func gltfDocument(m *Mesh) *gltf.Document {
	verts, faces := m.indexedVertices()
	normals := vertexNormals(verts, faces, m.Triangles())

	positions := make([][3]float32, len(verts))
	for i, v := range verts {
		positions[i] = [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
	}
	norms := make([][3]float32, len(normals))
	for i, n := range normals {
		norms[i] = [3]float32{float32(n.X), float32(n.Y), float32(n.Z)}
	}
	indices := make([]uint32, 0, len(faces)*3)
	for _, f := range faces {
		indices = append(indices, uint32(f[0]), uint32(f[1]), uint32(f[2]))
	}

	doc := gltf.NewDocument()
	positionAccessor := modeler.WritePosition(doc, positions)
	normalAccessor := modeler.WriteNormal(doc, norms)
	indicesAccessor := modeler.WriteIndices(doc, indices)
	doc.Meshes = []*gltf.Mesh{{
		Name: m.Label(),
		Primitives: []*gltf.Primitive{{
			Indices: gltf.Index(indicesAccessor),
			Attributes: map[string]uint32{
				gltf.POSITION: positionAccessor,
				gltf.NORMAL:   normalAccessor,
			},
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: m.Label(), Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	return doc
}

// SaveGLTF writes the mesh as a JSON glTF document.
func SaveGLTF(m *Mesh, path string) error {
	return gltf.Save(gltfDocument(m), path)
}

// SaveGLB writes the mesh as a binary glTF container.
func SaveGLB(m *Mesh, path string) error {
	return gltf.SaveBinary(gltfDocument(m), path)
}
