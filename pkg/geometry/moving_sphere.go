package geometry

import (
	"fmt"

	"github.com/Lucifier129/go-ray-tracing/pkg/core"
	"github.com/Lucifier129/go-ray-tracing/pkg/material"
)

// MovingSphere is a sphere whose center travels linearly from Center0 at
// Time0 to Center1 at Time1
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         material.Material
}

// NewMovingSphere creates a new moving sphere. The radius must be positive.
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, mat material.Material) *MovingSphere {
	if radius <= 0 {
		panic(fmt.Sprintf("geometry: sphere radius must be positive, got %g", radius))
	}
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: mat,
	}
}

// SetMaterial replaces the sphere's material. Not safe during a render.
func (s *MovingSphere) SetMaterial(mat material.Material) {
	s.Material = mat
}

// CenterAt returns the center at the given time. Times outside
// [Time0, Time1] extrapolate along the same line.
func (s *MovingSphere) CenterAt(time float64) core.Vec3 {
	// An empty time window has nowhere to move
	if s.Time1 == s.Time0 {
		return s.Center0
	}
	f := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(f))
}

// Hit tests the ray against the sphere at the position it occupies at ray.Time
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	return hitSphere(s.CenterAt(ray.Time), s.Radius, &s.Material, ray, tMin, tMax)
}
