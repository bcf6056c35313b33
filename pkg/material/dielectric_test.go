package material

import (
	"math"
	"testing"

	"github.com/Lucifier129/go-ray-tracing/pkg/core"
)

func TestDielectricBasicBehavior(t *testing.T) {
	glass := NewDielectric(1.5)

	rayDirection := core.NewVec3(1, -1, 0).Normalize() // 45-degree angle
	ray := core.NewRay(core.NewVec3(0, 1, 0), rayDirection)

	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: true,
		Material:  &glass,
	}

	hasRefraction := false
	for seed := int64(0); seed < 100; seed++ {
		sampler := core.NewSeededSampler(seed)
		result, scattered := glass.Scatter(ray, hit, sampler)
		if !scattered {
			t.Fatal("Dielectric should always scatter")
		}
		if result.Attenuation != core.NewVec3(1, 1, 1) {
			t.Fatalf("Expected white attenuation, got %v", result.Attenuation)
		}
		if result.Scattered.Origin != hit.Point {
			t.Fatalf("Scattered ray should start at the hit point, got %v", result.Scattered.Origin)
		}
		// Refraction bends toward the normal, so the ray stays below the surface
		if result.Scattered.Direction.Y < 0 {
			hasRefraction = true
		}
	}

	if !hasRefraction {
		t.Error("Expected to see refraction in at least some cases")
	}
}

func TestDielectricTotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Exiting glass at a grazing angle: 1.5 * sin(60°) > 1
	incoming := core.NewVec3(math.Sin(math.Pi/3), -math.Cos(math.Pi/3), 0)
	ray := core.NewRay(core.NewVec3(0, 1, 0), incoming)
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: false,
		Material:  &glass,
	}

	expected := core.Reflect(incoming, hit.Normal)
	for seed := int64(0); seed < 50; seed++ {
		result, ok := glass.Scatter(ray, hit, core.NewSeededSampler(seed))
		if !ok {
			t.Fatal("Dielectric should always scatter")
		}
		if result.Scattered.Direction.Subtract(expected).Length() > 1e-12 {
			t.Fatalf("Expected total internal reflection %v, got %v", expected, result.Scattered.Direction)
		}
	}
}

func TestDielectricMatchedIndexAlwaysRefracts(t *testing.T) {
	air := NewDielectric(1.0)
	normal := core.NewVec3(0, 1, 0)

	directions := []core.Vec3{
		core.NewVec3(0, -1, 0),
		core.NewVec3(1, -1, 0).Normalize(),
		core.NewVec3(1, -0.05, 0.3).Normalize(),
	}

	for _, frontFace := range []bool{true, false} {
		for _, dir := range directions {
			ray := core.NewRay(core.NewVec3(0, 1, 0), dir)
			hit := HitRecord{Normal: normal, FrontFace: frontFace, Material: &air}
			for seed := int64(0); seed < 20; seed++ {
				result, ok := air.Scatter(ray, hit, core.NewSeededSampler(seed))
				if !ok {
					t.Fatal("Dielectric should always scatter")
				}
				if result.Attenuation != core.NewVec3(1, 1, 1) {
					t.Fatalf("Expected white attenuation, got %v", result.Attenuation)
				}
				if result.Scattered.Direction.Subtract(dir).Length() > 1e-9 {
					t.Fatalf("Index 1.0 should not bend %v, got %v", dir, result.Scattered.Direction)
				}
			}
		}
	}
}

func TestReflectance(t *testing.T) {
	tests := []struct {
		name     string
		cosine   float64
		ratio    float64
		expected float64
	}{
		{"Normal incidence glass", 1.0, 1.0 / 1.5, 0.04},
		{"Grazing incidence", 0.0, 1.0 / 1.5, 1.0},
		{"Matched index", 0.5, 1.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflectance(tt.cosine, tt.ratio)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected reflectance %f, got %f", tt.expected, got)
			}
		})
	}
}
