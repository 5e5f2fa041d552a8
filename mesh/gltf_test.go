package mesh

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"go.viam.com/test"
)

func TestSaveGLTF(t *testing.T) {
	dir := t.TempDir()
	m := NewTorus(1.0, 0.3, 8, 6)
	path := filepath.Join(dir, "sample_mesh.gltf")
	test.That(t, SaveGLTF(m, path), test.ShouldBeNil)

	doc, err := gltf.Open(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(doc.Meshes), test.ShouldEqual, 1)
	test.That(t, len(doc.Meshes[0].Primitives), test.ShouldEqual, 1)

	prim := doc.Meshes[0].Primitives[0]
	_, hasPosition := prim.Attributes[gltf.POSITION]
	_, hasNormal := prim.Attributes[gltf.NORMAL]
	test.That(t, hasPosition, test.ShouldBeTrue)
	test.That(t, hasNormal, test.ShouldBeTrue)

	verts, faces := m.indexedVertices()
	test.That(t, int(doc.Accessors[prim.Attributes[gltf.POSITION]].Count), test.ShouldEqual, len(verts))
	test.That(t, int(doc.Accessors[*prim.Indices].Count), test.ShouldEqual, len(faces)*3)
}

func TestSaveGLB(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample_mesh.glb")
	test.That(t, SaveGLB(NewIcosphere(1.0, 1), path), test.ShouldBeNil)

	doc, err := gltf.Open(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(doc.Meshes), test.ShouldEqual, 1)
}
