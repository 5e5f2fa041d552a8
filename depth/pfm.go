package depth

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// pfmGrayscaleMagic marks a single-channel Portable Float Map.
const pfmGrayscaleMagic = "Pf"

// WritePFM encodes the raster as a grayscale binary PFM: the magic token, a
// "width height" line, a scale line whose negative sign marks little-endian
// sample order, then rows bottom-up (the format stores the image upside down
// relative to the raster's top-left origin), each sample a little-endian
// float32.
func WritePFM(out io.Writer, m *Map) error {
	if _, err := fmt.Fprintf(out, "%s\n%d %d\n-1.0\n", pfmGrayscaleMagic, m.Width(), m.Height()); err != nil {
		return errors.Wrap(err, "cannot write pfm header")
	}

	row := make([]byte, m.Width()*4)
	for y := m.Height() - 1; y >= 0; y-- {
		for x := 0; x < m.Width(); x++ {
			binary.LittleEndian.PutUint32(row[x*4:], math.Float32bits(m.At(x, y)))
		}
		if _, err := out.Write(row); err != nil {
			return errors.Wrapf(err, "cannot write pfm row %d", y)
		}
	}
	return nil
}

// ReadPFM decodes a grayscale binary PFM stream back into a raster.
func ReadPFM(in io.Reader) (*Map, error) {
	r := bufio.NewReader(in)

	magic, err := r.ReadString('\n')
	if err != nil {
		return nil, errors.Wrap(err, "cannot read pfm magic")
	}
	if strings.TrimSpace(magic) != pfmGrayscaleMagic {
		return nil, errors.Errorf("not a grayscale pfm, magic is %q", strings.TrimSpace(magic))
	}

	dims, err := r.ReadString('\n')
	if err != nil {
		return nil, errors.Wrap(err, "cannot read pfm dimensions")
	}
	var width, height int
	if _, err := fmt.Sscanf(strings.TrimSpace(dims), "%d %d", &width, &height); err != nil {
		return nil, errors.Wrap(err, "cannot parse pfm dimensions")
	}

	scaleLine, err := r.ReadString('\n')
	if err != nil {
		return nil, errors.Wrap(err, "cannot read pfm scale")
	}
	scale, err := strconv.ParseFloat(strings.TrimSpace(scaleLine), 64)
	if err != nil {
		return nil, errors.Wrap(err, "cannot parse pfm scale")
	}
	if scale >= 0 {
		return nil, errors.New("big-endian pfm is not supported")
	}

	m := NewMap(width, height)
	row := make([]byte, width*4)
	for y := height - 1; y >= 0; y-- {
		if _, err := io.ReadFull(r, row); err != nil {
			return nil, errors.Wrapf(err, "cannot read pfm row %d", y)
		}
		for x := 0; x < width; x++ {
			m.Set(x, y, math.Float32frombits(binary.LittleEndian.Uint32(row[x*4:])))
		}
	}
	return m, nil
}
