package pointcloud

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/pkg/errors"
)

// PCDType is the data encoding of a pcd file.
type PCDType int

const (
	// PCDAscii ascii encoding for pcd.
	PCDAscii PCDType = 0
	// PCDBinary binary encoding for pcd.
	PCDBinary PCDType = 1
)

func _colorToPCDInt(p Point) int {
	if !p.HasColor {
		return 255 << 16
	}
	x := 0
	x |= int(p.Color.R) << 16
	x |= int(p.Color.G) << 8
	x |= int(p.Color.B) << 0
	return x
}

// ToPCD writes the cloud in PCD v.7, ascii or binary. Colored clouds get the
// packed rgb field the PCL convention uses.
func ToPCD(cloud *PointCloud, out io.Writer, outputType PCDType) error {
	var err error

	_, err = fmt.Fprintf(out, "VERSION .7\n")
	if err != nil {
		return err
	}
	if cloud.MetaData().HasColor {
		_, err = fmt.Fprintf(out, "FIELDS x y z rgb\n"+
			"SIZE 4 4 4 4\n"+
			"TYPE F F F I\n"+
			"COUNT 1 1 1 1\n")
	} else {
		_, err = fmt.Fprintf(out, "FIELDS x y z\n"+
			"SIZE 4 4 4\n"+
			"TYPE F F F\n"+
			"COUNT 1 1 1\n")
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "WIDTH %d\n"+
		"HEIGHT %d\n"+
		"VIEWPOINT 0 0 0 1 0 0 0\n"+
		"POINTS %d\n",
		cloud.Size(),
		1,
		cloud.Size())
	if err != nil {
		return err
	}

	switch outputType {
	case PCDBinary:
		_, err = fmt.Fprintf(out, "DATA binary\n")
	case PCDAscii:
		_, err = fmt.Fprintf(out, "DATA ascii\n")
	default:
		return errors.Errorf("unknown pcd type %d", outputType)
	}
	if err != nil {
		return err
	}
	return writePCDData(cloud, out, outputType)
}

func writePCDData(cloud *PointCloud, out io.Writer, pcdtype PCDType) error {
	var err error
	hasColor := cloud.MetaData().HasColor
	cloud.Iterate(func(p Point) bool {
		pos := p.Position
		if hasColor {
			c := _colorToPCDInt(p)
			switch pcdtype {
			case PCDBinary:
				buf := make([]byte, 16)
				binary.LittleEndian.PutUint32(buf, math.Float32bits(float32(pos.X)))
				binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(float32(pos.Y)))
				binary.LittleEndian.PutUint32(buf[8:], math.Float32bits(float32(pos.Z)))
				binary.LittleEndian.PutUint32(buf[12:], uint32(c))
				_, err = out.Write(buf)
			case PCDAscii:
				_, err = fmt.Fprintf(out, "%f %f %f %d\n", pos.X, pos.Y, pos.Z, c)
			}
		} else {
			switch pcdtype {
			case PCDBinary:
				buf := make([]byte, 12)
				binary.LittleEndian.PutUint32(buf, math.Float32bits(float32(pos.X)))
				binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(float32(pos.Y)))
				binary.LittleEndian.PutUint32(buf[8:], math.Float32bits(float32(pos.Z)))
				_, err = out.Write(buf)
			case PCDAscii:
				_, err = fmt.Fprintf(out, "%f %f %f\n", pos.X, pos.Y, pos.Z)
			}
		}
		return err == nil
	})
	return err
}

// ToPLY writes the cloud as an ascii PLY point file with whatever normal and
// color properties the cloud carries.
func ToPLY(cloud *PointCloud, out io.Writer) error {
	meta := cloud.MetaData()

	if _, err := fmt.Fprintf(out, "ply\nformat ascii 1.0\n"+
		"element vertex %d\n"+
		"property float x\nproperty float y\nproperty float z\n", cloud.Size()); err != nil {
		return err
	}
	if meta.HasNormal {
		if _, err := fmt.Fprintf(out, "property float nx\nproperty float ny\nproperty float nz\n"); err != nil {
			return err
		}
	}
	if meta.HasColor {
		if _, err := fmt.Fprintf(out, "property uchar red\nproperty uchar green\nproperty uchar blue\n"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(out, "end_header\n"); err != nil {
		return err
	}

	var err error
	cloud.Iterate(func(p Point) bool {
		pos := p.Position
		_, err = fmt.Fprintf(out, "%f %f %f", pos.X, pos.Y, pos.Z)
		if err == nil && meta.HasNormal {
			_, err = fmt.Fprintf(out, " %f %f %f", p.Normal.X, p.Normal.Y, p.Normal.Z)
		}
		if err == nil && meta.HasColor {
			_, err = fmt.Fprintf(out, " %d %d %d", p.Color.R, p.Color.G, p.Color.B)
		}
		if err == nil {
			_, err = fmt.Fprintf(out, "\n")
		}
		return err == nil
	})
	return err
}

// ToXYZ writes one "x y z" line per point.
func ToXYZ(cloud *PointCloud, out io.Writer) error {
	var err error
	cloud.Iterate(func(p Point) bool {
		_, err = fmt.Fprintf(out, "%f %f %f\n", p.Position.X, p.Position.Y, p.Position.Z)
		return err == nil
	})
	return err
}

// ToXYZN writes one "x y z nx ny nz" line per point.
func ToXYZN(cloud *PointCloud, out io.Writer) error {
	var err error
	cloud.Iterate(func(p Point) bool {
		_, err = fmt.Fprintf(out, "%f %f %f %f %f %f\n",
			p.Position.X, p.Position.Y, p.Position.Z,
			p.Normal.X, p.Normal.Y, p.Normal.Z)
		return err == nil
	})
	return err
}

// ToXYZRGB writes one "x y z r g b" line per point with color channels scaled
// to [0,1].
func ToXYZRGB(cloud *PointCloud, out io.Writer) error {
	var err error
	cloud.Iterate(func(p Point) bool {
		_, err = fmt.Fprintf(out, "%f %f %f %f %f %f\n",
			p.Position.X, p.Position.Y, p.Position.Z,
			float64(p.Color.R)/255.0, float64(p.Color.G)/255.0, float64(p.Color.B)/255.0)
		return err == nil
	})
	return err
}

// ToPTS writes the point count followed by one point line per point, with
// 8-bit colors appended for colored clouds.
func ToPTS(cloud *PointCloud, out io.Writer) error {
	if _, err := fmt.Fprintf(out, "%d\n", cloud.Size()); err != nil {
		return err
	}
	hasColor := cloud.MetaData().HasColor
	var err error
	cloud.Iterate(func(p Point) bool {
		if hasColor {
			_, err = fmt.Fprintf(out, "%f %f %f %d %d %d\n",
				p.Position.X, p.Position.Y, p.Position.Z,
				p.Color.R, p.Color.G, p.Color.B)
		} else {
			_, err = fmt.Fprintf(out, "%f %f %f\n", p.Position.X, p.Position.Y, p.Position.Z)
		}
		return err == nil
	})
	return err
}
