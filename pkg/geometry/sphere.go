package geometry

import (
	"fmt"
	"math"

	"github.com/Lucifier129/go-ray-tracing/pkg/core"
	"github.com/Lucifier129/go-ray-tracing/pkg/material"
)

// Sphere represents a static sphere
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere. The radius must be positive.
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	if radius <= 0 {
		panic(fmt.Sprintf("geometry: sphere radius must be positive, got %g", radius))
	}
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// NewSphereWithDefault creates a sphere with the absorbing placeholder
// material; assign the real one with SetMaterial.
func NewSphereWithDefault(center core.Vec3, radius float64) *Sphere {
	return NewSphere(center, radius, material.Default())
}

// SetMaterial replaces the sphere's material. Not safe during a render.
func (s *Sphere) SetMaterial(mat material.Material) {
	s.Material = mat
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	return hitSphere(s.Center, s.Radius, &s.Material, ray, tMin, tMax)
}

// hitSphere solves the ray/sphere quadratic for a sphere at center. The
// returned record points at mat rather than copying it.
func hitSphere(center core.Vec3, radius float64, mat *material.Material, ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	checkInterval(tMin, tMax)

	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(center)

	// Quadratic equation coefficients: at² + 2ht + c = 0
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return material.HitRecord{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first; both must lie strictly inside the interval
	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return material.HitRecord{}, false
		}
	}

	hit := material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: mat,
	}

	// Outward normal is unit length because |point - center| == radius
	outwardNormal := hit.Point.Subtract(center).Divide(radius)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}
