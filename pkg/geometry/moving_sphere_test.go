package geometry

import (
	"math"
	"testing"

	"github.com/Lucifier129/go-ray-tracing/pkg/core"
	"github.com/Lucifier129/go-ray-tracing/pkg/material"
)

func TestMovingSphere_CenterAt(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), 0, 1, 0.5, material.Default())

	tests := []struct {
		time     float64
		expected core.Vec3
	}{
		{0, core.NewVec3(0, 0, 0)},
		{0.5, core.NewVec3(0, 1, 0)},
		{1, core.NewVec3(0, 2, 0)},
		{2, core.NewVec3(0, 4, 0)},   // extrapolated
		{-1, core.NewVec3(0, -2, 0)}, // extrapolated
	}

	for _, tt := range tests {
		got := sphere.CenterAt(tt.time)
		if got.Subtract(tt.expected).Length() > 1e-12 {
			t.Errorf("CenterAt(%f): expected %v, got %v", tt.time, tt.expected, got)
		}
	}
}

func TestMovingSphere_CenterAtEmptyWindow(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(1, 2, 3), core.NewVec3(4, 5, 6), 0.5, 0.5, 1, material.Default())
	if got := sphere.CenterAt(0.9); got != sphere.Center0 {
		t.Errorf("Expected %v, got %v", sphere.Center0, got)
	}
}

func TestMovingSphere_HitDependsOnTime(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, -1), core.NewVec3(0, 1, -1), 0, 1, 0.25, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	// Aimed at the starting position
	early := core.NewRayAtTime(core.Vec3{}, core.NewVec3(0, 0, -1), 0)
	late := core.NewRayAtTime(core.Vec3{}, core.NewVec3(0, 0, -1), 1)

	hit, ok := sphere.Hit(early, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit at time 0")
	}
	if math.Abs(hit.T-0.75) > 1e-12 {
		t.Errorf("Expected t=0.75, got %f", hit.T)
	}
	if hit.Normal.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-12 {
		t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
	}

	if _, ok := sphere.Hit(late, 0.001, math.Inf(1)); ok {
		t.Error("Sphere has moved away by time 1")
	}
}
