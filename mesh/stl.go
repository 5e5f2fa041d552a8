package mesh

import (
	"encoding/binary"
	"image/color"
	"io"
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

const (
	stlHeaderSize = 80
	// 12 bytes normal + 36 bytes vertices + 2 byte attribute.
	stlRecordSize = 50
)

// rgb565 packs an 8-bit-per-channel color into the 16-bit facet attribute
// used by the color extension of binary STL: 5 bits red (most significant),
// 6 bits green, 5 bits blue. Channels scale by integer division, so nothing
// can overflow its field.
func rgb565(c color.NRGBA) uint16 {
	r := uint16(c.R) * 31 / 255
	g := uint16(c.G) * 63 / 255
	b := uint16(c.B) * 31 / 255
	return r<<11 | g<<5 | b
}

// WriteBinarySTL encodes the mesh as binary STL: an 80-byte header holding
// the mesh label truncated and NUL-padded, a little-endian uint32 triangle
// count, and one 50-byte record per triangle in sequence order. The facet
// attribute carries the RGB565-packed color for colored triangles and zero
// otherwise. Output is always binary regardless of triangle count.
func WriteBinarySTL(out io.Writer, m *Mesh) error {
	header := make([]byte, stlHeaderSize)
	copy(header, m.Label())
	if _, err := out.Write(header); err != nil {
		return errors.Wrap(err, "cannot write stl header")
	}

	count := make([]byte, 4)
	binary.LittleEndian.PutUint32(count, uint32(len(m.Triangles())))
	if _, err := out.Write(count); err != nil {
		return errors.Wrap(err, "cannot write stl triangle count")
	}

	record := make([]byte, stlRecordSize)
	for _, t := range m.Triangles() {
		off := 0
		putVector := func(x, y, z float64) {
			binary.LittleEndian.PutUint32(record[off:], math.Float32bits(float32(x)))
			binary.LittleEndian.PutUint32(record[off+4:], math.Float32bits(float32(y)))
			binary.LittleEndian.PutUint32(record[off+8:], math.Float32bits(float32(z)))
			off += 12
		}
		n := t.Normal()
		putVector(n.X, n.Y, n.Z)
		for _, p := range t.Points() {
			putVector(p.X, p.Y, p.Z)
		}

		var attr uint16
		if t.HasColor() {
			attr = rgb565(t.Color())
		}
		binary.LittleEndian.PutUint16(record[off:], attr)

		if _, err := out.Write(record); err != nil {
			return errors.Wrap(err, "cannot write stl triangle record")
		}
	}
	return nil
}

// ReadBinarySTL decodes a binary STL stream back into a mesh. Facet
// attributes are interpreted per the RGB565 color extension: a nonzero
// attribute becomes a facet color with each channel expanded to 8 bits.
func ReadBinarySTL(in io.Reader) (*Mesh, error) {
	header := make([]byte, stlHeaderSize)
	if _, err := io.ReadFull(in, header); err != nil {
		return nil, errors.Wrap(err, "cannot read stl header")
	}
	label := string(header)
	for i, b := range header {
		if b == 0 {
			label = string(header[:i])
			break
		}
	}

	countBuf := make([]byte, 4)
	if _, err := io.ReadFull(in, countBuf); err != nil {
		return nil, errors.Wrap(err, "cannot read stl triangle count")
	}
	count := binary.LittleEndian.Uint32(countBuf)

	record := make([]byte, stlRecordSize)
	triangles := make([]*Triangle, 0, count)
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(in, record); err != nil {
			return nil, errors.Wrapf(err, "cannot read stl triangle %d", i)
		}
		vecAt := func(off int) (x, y, z float64) {
			x = float64(math.Float32frombits(binary.LittleEndian.Uint32(record[off:])))
			y = float64(math.Float32frombits(binary.LittleEndian.Uint32(record[off+4:])))
			z = float64(math.Float32frombits(binary.LittleEndian.Uint32(record[off+8:])))
			return
		}
		nx, ny, nz := vecAt(0)
		p0x, p0y, p0z := vecAt(12)
		p1x, p1y, p1z := vecAt(24)
		p2x, p2y, p2z := vecAt(36)
		attr := binary.LittleEndian.Uint16(record[48:])

		t := &Triangle{
			p0:     r3.Vector{X: p0x, Y: p0y, Z: p0z},
			p1:     r3.Vector{X: p1x, Y: p1y, Z: p1z},
			p2:     r3.Vector{X: p2x, Y: p2y, Z: p2z},
			normal: r3.Vector{X: nx, Y: ny, Z: nz},
		}
		if attr != 0 {
			t.c = color.NRGBA{
				R: uint8((attr >> 11 & 0x1f) << 3),
				G: uint8((attr >> 5 & 0x3f) << 2),
				B: uint8((attr & 0x1f) << 3),
				A: 255,
			}
			t.hasColor = true
		}
		triangles = append(triangles, t)
	}
	return NewMesh(label, triangles), nil
}
