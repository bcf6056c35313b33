package scene

import (
	"github.com/Lucifier129/go-ray-tracing/pkg/camera"
	"github.com/Lucifier129/go-ray-tracing/pkg/core"
	"github.com/Lucifier129/go-ray-tracing/pkg/geometry"
	"github.com/Lucifier129/go-ray-tracing/pkg/integrator"
	"github.com/Lucifier129/go-ray-tracing/pkg/material"
)

// newBasicScene wires a world to the axis-aligned camera
func newBasicScene(name, description string, world *geometry.HittableList, integ integrator.Integrator, opts Options) *Scene {
	sampling := opts.sampling(defaultSampling())
	cfg := camera.DefaultConfig()
	cfg.LookFrom = core.NewVec3(0, 0, 0)
	cfg.LookAt = core.NewVec3(0, 0, -1)
	cfg.VFov = 90
	cfg.Aperture = 0
	cfg.AspectRatio = sampling.AspectRatio()

	return &Scene{
		Name:         name,
		Description:  description,
		Camera:       camera.NewBasicCamera(cfg.AspectRatio),
		World:        world,
		Sampling:     sampling,
		CameraConfig: cfg,
		Integrator:   integ,
	}
}

// sphereOnGround returns a unit-diameter sphere resting on a huge ground sphere
func sphereOnGround(center, ground material.Material) *geometry.HittableList {
	return geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
	)
}

// materialsWorld returns the diffuse, fuzzy metal and glass spheres on a
// yellow ground
func materialsWorld() *geometry.HittableList {
	return geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.5)),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, material.NewDielectric(1.5)),
	)
}

// NewGradientScene renders nothing but the sky gradient
func NewGradientScene(opts Options) *Scene {
	return newBasicScene("gradient", "Empty world showing the sky gradient",
		geometry.NewHittableList(), integrator.NewPathTracingIntegrator(integrator.DefaultConfig()), opts)
}

// NewNormalsScene shades a sphere and the ground by surface normal
func NewNormalsScene(opts Options) *Scene {
	world := sphereOnGround(material.Default(), material.Default())
	return newBasicScene("normals", "Sphere and ground colored by surface normal",
		world, integrator.NewNormalIntegrator(), opts)
}

// NewDiffuseScene renders a matte gray sphere on matte gray ground
func NewDiffuseScene(opts Options) *Scene {
	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	return newBasicScene("diffuse", "Lambertian sphere on a ground sphere",
		sphereOnGround(gray, gray), integrator.NewPathTracingIntegrator(integrator.DefaultConfig()), opts)
}

// NewMaterialsScene shows the three scattering models side by side
func NewMaterialsScene(opts Options) *Scene {
	return newBasicScene("materials", "Diffuse, fuzzy metal and glass spheres",
		materialsWorld(), integrator.NewPathTracingIntegrator(integrator.DefaultConfig()), opts)
}

// NewViewpointScene looks down at the materials spheres from above and to
// the left through a narrow oriented pinhole
func NewViewpointScene(opts Options) *Scene {
	sampling := opts.sampling(defaultSampling())
	cfg := camera.DefaultConfig()
	cfg.LookFrom = core.NewVec3(-2, 2, 1)
	cfg.LookAt = core.NewVec3(0, 0, -1)
	cfg.VFov = 20
	cfg.Aperture = 0
	cfg.AspectRatio = sampling.AspectRatio()

	return &Scene{
		Name:         "viewpoint",
		Description:  "Materials spheres from an oriented pinhole camera",
		Camera:       camera.NewPositionalCamera(cfg),
		World:        materialsWorld(),
		Sampling:     sampling,
		CameraConfig: cfg,
		Integrator:   integrator.NewPathTracingIntegrator(integrator.DefaultConfig()),
	}
}

// NewDepthOfFieldScene views the materials spheres through a wide lens
// focused on the center sphere
func NewDepthOfFieldScene(opts Options) *Scene {
	sampling := opts.sampling(defaultSampling())
	cfg := camera.DefaultConfig()
	cfg.LookFrom = core.NewVec3(3, 3, 2)
	cfg.LookAt = core.NewVec3(0, 0, -1)
	cfg.VFov = 20
	cfg.Aperture = opts.aperture(2.0)
	cfg.FocusDistance = 0
	cfg.AspectRatio = sampling.AspectRatio()

	return &Scene{
		Name:         "depth-of-field",
		Description:  "Materials spheres through a thin lens with a wide aperture",
		Camera:       camera.NewLensCamera(cfg),
		World:        materialsWorld(),
		Sampling:     sampling,
		CameraConfig: cfg,
		Integrator:   integrator.NewPathTracingIntegrator(integrator.DefaultConfig()),
	}
}

// NewRandomScene builds the book cover: a field of small random spheres
// around three large ones, seen through a thin lens
func NewRandomScene(opts Options) *Scene {
	sampling := opts.sampling(defaultSampling())
	cfg := camera.DefaultConfig()
	cfg.Aperture = opts.aperture(0.1)
	cfg.AspectRatio = sampling.AspectRatio()

	layout := layoutOptions{count: 484, minDistance: 0.9}
	if opts.SphereCount > 0 {
		layout.count = opts.SphereCount
	}

	return &Scene{
		Name:         "random",
		Description:  "Book cover field of random spheres with depth of field",
		Camera:       camera.NewLensCamera(cfg),
		World:        randomWorld(core.NewSeededSampler(opts.Seed), layout),
		Sampling:     sampling,
		CameraConfig: cfg,
		Integrator:   integrator.NewPathTracingIntegrator(integrator.DefaultConfig()),
	}
}

// NewMotionScene is the random field with some spheres bouncing during the
// shutter interval, seen through a movable exposure camera
func NewMotionScene(opts Options) *Scene {
	sampling := opts.sampling(defaultSampling())
	cfg := camera.DefaultConfig()
	cfg.Aperture = opts.aperture(0)
	cfg.Time0, cfg.Time1 = 0, 1
	cfg.AspectRatio = sampling.AspectRatio()

	layout := layoutOptions{count: 484, minDistance: 2.0, movingFraction: 0.3, time0: cfg.Time0, time1: cfg.Time1}
	if opts.SphereCount > 0 {
		layout.count = opts.SphereCount
	}

	return &Scene{
		Name:         "motion",
		Description:  "Random spheres with motion blur and keyboard camera",
		Camera:       camera.NewExposureCamera(cfg),
		World:        randomWorld(core.NewSeededSampler(opts.Seed), layout),
		Sampling:     sampling,
		CameraConfig: cfg,
		Integrator:   integrator.NewPathTracingIntegrator(integrator.DefaultConfig()),
	}
}
