package integrator

import (
	"math"

	"github.com/Lucifier129/go-ray-tracing/pkg/core"
	"github.com/Lucifier129/go-ray-tracing/pkg/geometry"
)

// NormalIntegrator shades the first hit by its surface normal mapped from
// [-1, 1] to [0, 1]. It is a debugging view and ignores materials.
type NormalIntegrator struct {
	Background Background
}

// NewNormalIntegrator creates a normal shading integrator over the default sky
func NewNormalIntegrator() *NormalIntegrator {
	return &NormalIntegrator{Background: DefaultBackground()}
}

// RayColor returns 0.5·(normal + 1) on a hit and the background otherwise
func (n *NormalIntegrator) RayColor(ray core.Ray, world geometry.Hittable, depth int, sampler core.Sampler) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, 0, math.Inf(1))
	if !isHit {
		return n.Background.Color(ray)
	}
	return hit.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}
