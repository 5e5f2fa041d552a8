package pointcloud

import (
	"image/color"
	"math"

	"github.com/golang/geo/r3"
)

// NewSphere samples the unit sphere on a theta/phi grid, including both
// endpoint angles. Each point is colored by position ((coord+1)/2 per channel)
// and carries its position as the outward normal.
func NewSphere(thetaSteps, phiSteps int) *PointCloud {
	cloud := NewWithPrealloc(thetaSteps * phiSteps)
	for i := 0; i < thetaSteps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(thetaSteps-1)
		for j := 0; j < phiSteps; j++ {
			phi := math.Pi * float64(j) / float64(phiSteps-1)

			pos := r3.Vector{
				X: math.Sin(phi) * math.Cos(theta),
				Y: math.Sin(phi) * math.Sin(theta),
				Z: math.Cos(phi),
			}
			cloud.Add(Point{
				Position: pos,
				Normal:   pos,
				Color: color.NRGBA{
					R: uint8((pos.X + 1) / 2 * 255),
					G: uint8((pos.Y + 1) / 2 * 255),
					B: uint8((pos.Z + 1) / 2 * 255),
					A: 255,
				},
				HasNormal: true,
				HasColor:  true,
			})
		}
	}
	return cloud
}
