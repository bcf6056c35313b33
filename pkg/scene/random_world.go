package scene

import (
	"math"

	"github.com/Lucifier129/go-ray-tracing/pkg/core"
	"github.com/Lucifier129/go-ray-tracing/pkg/geometry"
	"github.com/Lucifier129/go-ray-tracing/pkg/material"
)

// layoutOptions controls the random sphere field
type layoutOptions struct {
	count          int     // Budget of small spheres; the grid side is sqrt(count)
	minDistance    float64 // Clearance kept around the metal sphere
	movingFraction float64 // Share of small spheres that move
	time0, time1   float64 // Shutter interval of moving spheres
}

// randomWorld scatters small spheres on a grid of jittered cells around
// three large feature spheres. The layout depends only on the sampler.
func randomWorld(sampler core.Sampler, layout layoutOptions) *geometry.HittableList {
	world := geometry.NewHittableList()
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	half := int(math.Sqrt(float64(layout.count)) / 2)
	clearance := core.NewVec3(4, 0.2, 0)

	for a := -half; a < half; a++ {
		for b := -half; b < half; b++ {
			chooseMaterial := sampler.Get1D()
			center := core.NewVec3(
				float64(a)+0.9*sampler.Get1D(),
				0.2,
				float64(b)+0.9*sampler.Get1D(),
			)

			if center.Subtract(clearance).Length() <= layout.minDistance {
				continue
			}

			var mat material.Material
			switch {
			case chooseMaterial < 0.8:
				albedo := core.RandomVec3(sampler).MultiplyVec(core.RandomVec3(sampler))
				mat = material.NewLambertian(albedo)
			case chooseMaterial < 0.95:
				albedo := core.RandomVec3(sampler)
				fuzz := core.RandomRange(sampler, 0, 0.5)
				mat = material.NewMetal(albedo, fuzz)
			default:
				mat = material.NewDielectric(1.5)
			}

			world.Add(smallSphere(sampler, center, mat, layout))
		}
	}

	world.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return world
}

// smallSphere returns a static sphere, or a bouncing one for the configured
// fraction of draws
func smallSphere(sampler core.Sampler, center core.Vec3, mat material.Material, layout layoutOptions) geometry.Hittable {
	if layout.movingFraction <= 0 || sampler.Get1D() >= layout.movingFraction {
		return geometry.NewSphere(center, 0.2, mat)
	}
	center1 := center.Add(core.NewVec3(0, 0.5*sampler.Get1D(), 0))
	return geometry.NewMovingSphere(center, center1, layout.time0, layout.time1, 0.2, mat)
}
