package geometry

import (
	"math"
	"testing"

	"github.com/Lucifier129/go-ray-tracing/pkg/core"
	"github.com/Lucifier129/go-ray-tracing/pkg/material"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphereWithDefault(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_CanonicalCase(t *testing.T) {
	sphere := NewSphereWithDefault(core.NewVec3(0, 0, -1), 0.5)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if hit.T != 0.5 {
		t.Errorf("Expected t=0.5, got t=%f", hit.T)
	}
	if hit.Normal != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
	}
	if !hit.FrontFace {
		t.Error("Expected front face hit")
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphereWithDefault(core.NewVec3(0, 0, 0), 1.0)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "unnormalized direction",
			rayOrigin:      core.NewVec3(0, 0, 3),
			rayDirection:   core.NewVec3(0, 0, -2),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}

			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}

			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}

			if hit.Normal.Dot(tt.rayDirection) >= 0 {
				t.Error("Normal should point against the incoming ray")
			}
		})
	}
}

func TestSphere_Hit_OpenInterval(t *testing.T) {
	sphere := NewSphereWithDefault(core.NewVec3(0, 0, -2), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	// Roots are at t=1 and t=3

	tests := []struct {
		name      string
		tMin      float64
		tMax      float64
		expectHit bool
		expectedT float64
	}{
		{"Both roots inside", 0, 10, true, 1},
		{"Near root on tMin boundary", 1, 10, true, 3},
		{"Near root on tMax boundary", 0, 1, false, 0},
		{"Far root on tMax boundary", 2, 3, false, 0},
		{"Between roots", 1.5, 2.5, false, 0},
		{"Only far root", 2, 10, true, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := sphere.Hit(ray, tt.tMin, tt.tMax)
			if ok != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, ok)
			}
			if ok && math.Abs(hit.T-tt.expectedT) > 1e-12 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestSphere_Hit_MaterialHandle(t *testing.T) {
	sphere := NewSphereWithDefault(core.NewVec3(0, 0, -1), 0.5)
	sphere.SetMaterial(material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3))

	hit, ok := sphere.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit")
	}
	if hit.Material != &sphere.Material {
		t.Error("Hit record should reference the sphere's material")
	}
	if hit.Material.Kind != material.KindMetal {
		t.Errorf("Expected metal, got %v", hit.Material.Kind)
	}
}

func TestSphere_Panics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"Zero radius", func() { NewSphereWithDefault(core.Vec3{}, 0) }},
		{"Negative radius", func() { NewSphereWithDefault(core.Vec3{}, -1) }},
		{"Reversed interval", func() {
			sphere := NewSphereWithDefault(core.Vec3{}, 1)
			sphere.Hit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), 2, 1)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Expected panic")
				}
			}()
			tt.fn()
		})
	}
}
