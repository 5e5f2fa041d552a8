// Package pointcloud synthesizes sample point clouds and writes them in the
// point formats the visualizer supports (PCD, PLY, XYZ, XYZN, XYZRGB, PTS)
// plus NumPy array exports.
package pointcloud

import (
	"image/color"
	"math"

	"github.com/golang/geo/r3"
)

// Point is a single cloud sample: a position with optional normal and color.
type Point struct {
	Position r3.Vector
	Normal   r3.Vector
	Color    color.NRGBA

	HasNormal bool
	HasColor  bool
}

// NewPoint creates a position-only point.
func NewPoint(pos r3.Vector) Point {
	return Point{Position: pos}
}

// MetaData describes the contents of a point cloud.
type MetaData struct {
	HasColor  bool
	HasNormal bool

	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

// NewMetaData creates a new point cloud metadata struct.
func NewMetaData() MetaData {
	return MetaData{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
		MinZ: math.Inf(1), MaxZ: math.Inf(-1),
	}
}

// Merge updates the metadata with the new point.
func (meta *MetaData) Merge(p Point) {
	if p.HasColor {
		meta.HasColor = true
	}
	if p.HasNormal {
		meta.HasNormal = true
	}
	meta.MinX = math.Min(meta.MinX, p.Position.X)
	meta.MaxX = math.Max(meta.MaxX, p.Position.X)
	meta.MinY = math.Min(meta.MinY, p.Position.Y)
	meta.MaxY = math.Max(meta.MaxY, p.Position.Y)
	meta.MinZ = math.Min(meta.MinZ, p.Position.Z)
	meta.MaxZ = math.Max(meta.MaxZ, p.Position.Z)
}

// PointCloud is an ordered sequence of points. Order is insertion order and is
// preserved by every writer so fixture output stays byte-reproducible.
type PointCloud struct {
	points []Point
	meta   MetaData
}

// New returns an empty PointCloud.
func New() *PointCloud {
	return NewWithPrealloc(0)
}

// NewWithPrealloc returns an empty PointCloud with preallocated capacity.
func NewWithPrealloc(size int) *PointCloud {
	return &PointCloud{
		points: make([]Point, 0, size),
		meta:   NewMetaData(),
	}
}

// Size returns the number of points.
func (cloud *PointCloud) Size() int {
	return len(cloud.points)
}

// MetaData returns the cloud metadata.
func (cloud *PointCloud) MetaData() MetaData {
	return cloud.meta
}

// Add appends a point and merges it into the metadata.
func (cloud *PointCloud) Add(p Point) {
	cloud.points = append(cloud.points, p)
	cloud.meta.Merge(p)
}

// Iterate visits every point in insertion order until fn returns false.
func (cloud *PointCloud) Iterate(fn func(p Point) bool) {
	for _, p := range cloud.points {
		if !fn(p) {
			return
		}
	}
}
