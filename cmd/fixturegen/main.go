// Package main is the fixturegen command, which writes the sample depth maps,
// point clouds, meshes, and images the visualizer's test suite opens.
package main

import (
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/kleinicke/ply-visualizer/depth"
	"github.com/kleinicke/ply-visualizer/fixture"
	"github.com/kleinicke/ply-visualizer/mesh"
	"github.com/kleinicke/ply-visualizer/pointcloud"
)

var logger = golog.NewDevelopmentLogger("fixturegen")

const (
	outFlag  = "out"
	seedFlag = "seed"
)

func main() {
	app := &cli.App{
		Name:  "fixturegen",
		Usage: "generate sample 3D data files for visualizer testing",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  outFlag,
				Usage: "directory fixtures are written into",
				Value: ".",
			},
			&cli.Int64Flag{
				Name:  seedFlag,
				Usage: "seed for the depth noise generator",
				Value: 42,
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "stl",
				Usage:  "binary STL meshes, including the RGB565 colored cube",
				Action: runGenerator(genSTL),
			},
			{
				Name:   "stl-edge",
				Usage:  "ASCII STL parser edge cases",
				Action: runGenerator(genSTLEdgeCases),
			},
			{
				Name:   "meshes",
				Usage:  "sample mesh in every mesh format",
				Action: runGenerator(genMeshes),
			},
			{
				Name:   "cloud",
				Usage:  "sample point cloud in every point format",
				Action: runGenerator(genPointCloud),
			},
			{
				Name:   "depth",
				Usage:  "synthetic depth/disparity arrays (NPY/NPZ) and previews",
				Action: runGenerator(genDepth),
			},
			{
				Name:   "png",
				Usage:  "16-bit and 8-bit depth/disparity PNG conventions",
				Action: runGenerator(genPNG),
			},
			{
				Name:   "pfm",
				Usage:  "portable float map depth image",
				Action: runGenerator(genPFM),
			},
			{
				Name:   "tiff",
				Usage:  "single-channel TIFF with known white pixels",
				Action: runGenerator(genTIFF),
			},
			{
				Name:  "all",
				Usage: "every fixture family",
				Action: runGenerator(func(p params) *fixture.Manifest {
					var m fixture.Manifest
					for _, gen := range []generator{
						genSTL, genSTLEdgeCases, genMeshes,
						genPointCloud, genDepth, genPNG, genPFM, genTIFF,
					} {
						m.Merge(gen(p))
					}
					return &m
				}),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Fatal(err)
	}
}

type params struct {
	dir  string
	seed int64
}

type generator func(p params) *fixture.Manifest

// runGenerator adapts a generator into a cli action: make the output
// directory, run, log every result, and fail the process only after the whole
// batch has been attempted.
func runGenerator(gen generator) cli.ActionFunc {
	return func(c *cli.Context) error {
		p := params{
			dir:  c.String(outFlag),
			seed: c.Int64(seedFlag),
		}
		if err := os.MkdirAll(p.dir, 0o755); err != nil {
			return errors.Wrap(err, "cannot create output directory")
		}

		manifest := gen(p)
		manifest.Log(logger)
		if failed := manifest.Failed(); len(failed) > 0 {
			return errors.Errorf("%d of %d fixtures failed", len(failed), len(manifest.Results()))
		}
		logger.Infof("generated %d fixtures in %s", len(manifest.Results()), p.dir)
		return nil
	}
}

func genSTL(p params) *fixture.Manifest {
	var m fixture.Manifest

	sphere := mesh.NewIcosphere(1.5, 3)
	sphere = mesh.NewMesh(fmt.Sprintf("Subdivided Sphere - %d triangles", len(sphere.Triangles())), sphere.Triangles())
	torus := mesh.NewTorus(2.0, 0.5, 16, 8)
	torus = mesh.NewMesh(fmt.Sprintf("Torus Mesh - %d triangles", len(torus.Triangles())), torus.Triangles())

	for _, tc := range []struct {
		name, filename string
		mesh           *mesh.Mesh
	}{
		{"binary tetrahedron stl", "test_tetrahedron_binary.stl", mesh.NewTetrahedron()},
		{"colored cube stl", "test_colored_cube_binary.stl", mesh.NewColoredCube()},
		{"subdivided sphere stl", "test_sphere_subdivided.stl", sphere},
		{"complex torus stl", "test_torus_complex.stl", torus},
	} {
		m.Add(fixture.Write(p.dir, tc.name, tc.filename, func(w io.Writer) error {
			return mesh.WriteBinarySTL(w, tc.mesh)
		}))
	}
	return &m
}

func genSTLEdgeCases(p params) *fixture.Manifest {
	var m fixture.Manifest
	for _, ec := range mesh.EdgeCases() {
		m.Add(fixture.Write(p.dir, "ascii stl "+ec.Name, ec.Filename, func(w io.Writer) error {
			_, err := io.WriteString(w, ec.Content)
			return err
		}))
	}
	return &m
}

func genMeshes(p params) *fixture.Manifest {
	var m fixture.Manifest
	sample := mesh.ColorizeByCentroid(mesh.NewTorus(1.0, 0.3, 16, 8))

	m.Add(fixture.Write(p.dir, "sample mesh ply", "sample_mesh.ply", func(w io.Writer) error {
		return mesh.WritePLY(w, sample)
	}))
	m.Add(fixture.Write(p.dir, "sample mesh stl", "sample_mesh.stl", func(w io.Writer) error {
		return mesh.WriteBinarySTL(w, sample)
	}))
	m.Add(fixture.Write(p.dir, "sample mesh obj", "sample_mesh.obj", func(w io.Writer) error {
		return mesh.WriteOBJ(w, sample, "sample_mesh.mtl")
	}))
	m.Add(fixture.Write(p.dir, "sample mesh mtl sidecar", "sample_mesh.mtl", func(w io.Writer) error {
		return mesh.WriteMTL(w, sample)
	}))
	m.Add(fixture.Write(p.dir, "sample mesh off", "sample_mesh.off", func(w io.Writer) error {
		return mesh.WriteOFF(w, sample)
	}))
	m.Add(fixture.WriteFile(p.dir, "sample mesh gltf", "sample_mesh.gltf", func(path string) error {
		return mesh.SaveGLTF(sample, path)
	}))
	m.Add(fixture.WriteFile(p.dir, "sample mesh glb", "sample_mesh.glb", func(path string) error {
		return mesh.SaveGLB(sample, path)
	}))
	return &m
}

func genPointCloud(p params) *fixture.Manifest {
	var m fixture.Manifest
	cloud := pointcloud.NewSphere(50, 25)

	m.Add(fixture.Write(p.dir, "sample cloud ply", "sample_pointcloud.ply", func(w io.Writer) error {
		return pointcloud.ToPLY(cloud, w)
	}))
	m.Add(fixture.Write(p.dir, "sample cloud pcd", "sample_pointcloud.pcd", func(w io.Writer) error {
		return pointcloud.ToPCD(cloud, w, pointcloud.PCDBinary)
	}))
	m.Add(fixture.Write(p.dir, "sample cloud xyz", "sample_pointcloud.xyz", func(w io.Writer) error {
		return pointcloud.ToXYZ(cloud, w)
	}))
	m.Add(fixture.Write(p.dir, "sample cloud xyzn", "sample_pointcloud.xyzn", func(w io.Writer) error {
		return pointcloud.ToXYZN(cloud, w)
	}))
	m.Add(fixture.Write(p.dir, "sample cloud xyzrgb", "sample_pointcloud.xyzrgb", func(w io.Writer) error {
		return pointcloud.ToXYZRGB(cloud, w)
	}))
	m.Add(fixture.Write(p.dir, "sample cloud pts", "sample_pointcloud.pts", func(w io.Writer) error {
		return pointcloud.ToPTS(cloud, w)
	}))

	for _, shape := range pointcloud.NPYShapes(cloud) {
		filename := fmt.Sprintf("sample_pointcloud_%s.npy", shapeSuffix(shape))
		m.Add(fixture.Write(p.dir, "sample cloud npy "+shapeSuffix(shape), filename, func(w io.Writer) error {
			return pointcloud.ToNPY(cloud, w, shape)
		}))
	}
	return &m
}

func shapeSuffix(shape []int) string {
	s := ""
	for i, dim := range shape {
		if i > 0 {
			s += "x"
		}
		s += fmt.Sprintf("%d", dim)
	}
	return s
}

func genDepth(p params) *fixture.Manifest {
	var m fixture.Manifest

	const width, height = 640, 480
	intr := depth.DefaultIntrinsics(width, height)
	depthMap := depth.Synthesize(width, height, p.seed)
	disparity := depth.Disparity(depthMap, intr)

	m.Add(fixture.Write(p.dir, "synthetic depth npy", "test_depth.npy", func(w io.Writer) error {
		return depth.WriteNPY(w, depthMap)
	}))
	m.Add(fixture.Write(p.dir, "synthetic disparity npy", "test_disparity.npy", func(w io.Writer) error {
		return depth.WriteNPY(w, disparity)
	}))
	m.Add(fixture.Write(p.dir, "depth with camera params npz", "test_depth_with_params.npz", func(w io.Writer) error {
		return depth.WriteNPZ(w, depthMap, disparity, intr)
	}))
	m.Add(fixture.Write(p.dir, "small depth npy", "test_depth_small.npy", func(w io.Writer) error {
		return depth.WriteNPY(w, depth.Decimate(depthMap, 4))
	}))

	preview := depth.Colorize(depthMap)
	m.Add(fixture.Write(p.dir, "depth preview png", "test_depth_preview.png", func(w io.Writer) error {
		return png.Encode(w, preview)
	}))
	m.Add(fixture.Write(p.dir, "small depth preview png", "test_depth_preview_small.png", func(w io.Writer) error {
		return png.Encode(w, depth.Downsample(preview, 4))
	}))
	return &m
}

func genPNG(p params) *fixture.Manifest {
	var m fixture.Manifest
	const width, height = 100, 100

	mm := depth.MillimeterGradient(width, height)
	m.Add(fixture.Write(p.dir, "16-bit millimeter depth png", "test_depth_16bit_mm.png", func(w io.Writer) error {
		return png.Encode(w, mm)
	}))
	m.Add(fixture.Write(p.dir, "16-bit disparity png (div 256)", "test_disparity_256.png", func(w io.Writer) error {
		return png.Encode(w, depth.DisparityRamp(width, height))
	}))
	m.Add(fixture.Write(p.dir, "16-bit meter depth png (x1000)", "test_depth_meters_1000.png", func(w io.Writer) error {
		return png.Encode(w, depth.MeterRamp(width, height))
	}))
	m.Add(fixture.Write(p.dir, "8-bit depth png", "test_depth_8bit.png", func(w io.Writer) error {
		return png.Encode(w, depth.EightBit(mm))
	}))
	m.Add(fixture.Write(p.dir, "depth png with invalid pixels", "test_depth_with_invalid.png", func(w io.Writer) error {
		return png.Encode(w, depth.PunchInvalid(mm, 10, 2))
	}))
	return &m
}

func genPFM(p params) *fixture.Manifest {
	var m fixture.Manifest
	m.Add(fixture.Write(p.dir, "pyramid depth pfm", "test_depth.pfm", func(w io.Writer) error {
		return depth.WritePFM(w, depth.Pyramid(20, 20))
	}))
	return &m
}

func genTIFF(p params) *fixture.Manifest {
	var m fixture.Manifest
	m.Add(fixture.Write(p.dir, "white pixels tiff", "test_white_pixels.tiff", func(w io.Writer) error {
		return depth.WriteTIFF(w, depth.WhitePixelImage())
	}))
	return &m
}
