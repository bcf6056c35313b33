package scene

import (
	"errors"
	"testing"

	"github.com/Lucifier129/go-ray-tracing/pkg/camera"
	"github.com/Lucifier129/go-ray-tracing/pkg/core"
	"github.com/Lucifier129/go-ray-tracing/pkg/geometry"
	"github.com/Lucifier129/go-ray-tracing/pkg/integrator"
)

func TestNew_AllRegisteredScenes(t *testing.T) {
	opts := Options{Width: 32, Height: 18, SamplesPerPixel: 2, MaxDepth: 4, SphereCount: 16}

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := New(name, opts)
			if err != nil {
				t.Fatalf("New(%q) failed: %v", name, err)
			}
			if s.Name != name {
				t.Errorf("Expected scene name %q, got %q", name, s.Name)
			}
			if s.Camera == nil || s.World == nil || s.Integrator == nil {
				t.Fatalf("Scene %q is incomplete: %+v", name, s)
			}
			if err := s.Sampling.Validate(); err != nil {
				t.Errorf("Scene %q has invalid sampling: %v", name, err)
			}
			if s.Sampling.Width != 32 || s.Sampling.Height != 18 {
				t.Errorf("Expected 32x18, got %dx%d", s.Sampling.Width, s.Sampling.Height)
			}

			// Every scene should render a pixel without panicking
			rt := s.Raytracer()
			c := rt.RenderPixel(16, 9, 2, core.NewSeededSampler(1))
			if c.X < 0 || c.Y < 0 || c.Z < 0 {
				t.Errorf("Negative color %v", c)
			}
		})
	}
}

func TestNew_UnknownScene(t *testing.T) {
	_, err := New("does-not-exist", Options{})
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestOptions_Sampling(t *testing.T) {
	base := defaultSampling()

	tests := []struct {
		name     string
		opts     Options
		width    int
		height   int
		samples  int
		maxDepth int
	}{
		{"Defaults", Options{}, 400, 225, 100, 50},
		{"Width keeps aspect", Options{Width: 800}, 800, 450, 100, 50},
		{"Explicit size", Options{Width: 100, Height: 100}, 100, 100, 100, 50},
		{"Quality", Options{SamplesPerPixel: 8, MaxDepth: 3}, 400, 225, 8, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.opts.sampling(base)
			if cfg.Width != tt.width || cfg.Height != tt.height {
				t.Errorf("Expected %dx%d, got %dx%d", tt.width, tt.height, cfg.Width, cfg.Height)
			}
			if cfg.SamplesPerPixel != tt.samples || cfg.MaxDepth != tt.maxDepth {
				t.Errorf("Expected spp %d depth %d, got spp %d depth %d",
					tt.samples, tt.maxDepth, cfg.SamplesPerPixel, cfg.MaxDepth)
			}
		})
	}
}

func TestScene_Integrators(t *testing.T) {
	normals := NewNormalsScene(Options{})
	if _, ok := normals.Integrator.(*integrator.NormalIntegrator); !ok {
		t.Errorf("Expected normals scene to use the normal integrator, got %T", normals.Integrator)
	}
	materials := NewMaterialsScene(Options{})
	if _, ok := materials.Integrator.(*integrator.PathTracingIntegrator); !ok {
		t.Errorf("Expected materials scene to use the path tracer, got %T", materials.Integrator)
	}
}

func TestScene_Cameras(t *testing.T) {
	tests := []struct {
		name  string
		check func(camera.Camera) bool
	}{
		{"materials", func(c camera.Camera) bool { _, ok := c.(*camera.BasicCamera); return ok }},
		{"viewpoint", func(c camera.Camera) bool { _, ok := c.(*camera.PositionalCamera); return ok }},
		{"depth-of-field", func(c camera.Camera) bool { _, ok := c.(*camera.LensCamera); return ok }},
		{"motion", func(c camera.Camera) bool { _, ok := c.(*camera.ExposureCamera); return ok }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.name, Options{SphereCount: 4})
			if err != nil {
				t.Fatal(err)
			}
			if !tt.check(s.Camera) {
				t.Errorf("Unexpected camera type %T", s.Camera)
			}
		})
	}
}

func TestScene_ApertureOverride(t *testing.T) {
	pinhole := 0.0
	s := NewRandomScene(Options{Aperture: &pinhole, SphereCount: 4})
	if s.CameraConfig.Aperture != 0 {
		t.Errorf("Expected aperture override 0, got %f", s.CameraConfig.Aperture)
	}
	if lens, ok := s.Camera.(*camera.LensCamera); !ok || lens.LensRadius() != 0 {
		t.Errorf("Expected pinhole lens camera, got %T", s.Camera)
	}

	s = NewRandomScene(Options{SphereCount: 4})
	if s.CameraConfig.Aperture != 0.1 {
		t.Errorf("Expected default aperture 0.1, got %f", s.CameraConfig.Aperture)
	}
}

func TestScene_Move(t *testing.T) {
	s := NewMotionScene(Options{SphereCount: 4})
	before := s.CameraConfig.LookFrom

	if err := s.Move(camera.Forward); err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if s.CameraConfig.LookFrom.Equals(before) {
		t.Error("Expected LookFrom to change after moving forward")
	}
	if !s.CameraConfig.LookAt.Equals(core.NewVec3(0, 0, 0)) {
		t.Errorf("LookAt should stay fixed, got %v", s.CameraConfig.LookAt)
	}

	static := NewMaterialsScene(Options{})
	if err := static.Move(camera.Forward); !errors.Is(err, ErrCameraNotMovable) {
		t.Errorf("Expected ErrCameraNotMovable, got %v", err)
	}
}

func TestRandomWorld_Deterministic(t *testing.T) {
	layout := layoutOptions{count: 100, minDistance: 0.9}
	a := randomWorld(core.NewSeededSampler(7), layout)
	b := randomWorld(core.NewSeededSampler(7), layout)

	if a.Len() != b.Len() {
		t.Fatalf("Same seed produced %d and %d objects", a.Len(), b.Len())
	}

	// Identical layouts must agree on every ray
	sampler := core.NewSeededSampler(1)
	for i := 0; i < 200; i++ {
		dir := core.RandomUnitVector(sampler)
		ray := core.NewRay(core.NewVec3(13, 2, 3), dir)
		hitA, okA := a.Hit(ray, 0.001, 1e9)
		hitB, okB := b.Hit(ray, 0.001, 1e9)
		if okA != okB || hitA.T != hitB.T {
			t.Fatalf("Layouts diverge on ray %v", dir)
		}
	}
}

func TestRandomWorld_Layout(t *testing.T) {
	layout := layoutOptions{count: 484, minDistance: 0.9}
	world := randomWorld(core.NewSeededSampler(42), layout)

	// Ground, at most 22x22 small spheres, three feature spheres
	if world.Len() < 4 || world.Len() > 4+22*22 {
		t.Fatalf("Unexpected object count %d", world.Len())
	}

	clearance := core.NewVec3(4, 0.2, 0)
	small := world.Objects()[1 : world.Len()-3]
	for _, obj := range small {
		s, ok := obj.(*geometry.Sphere)
		if !ok {
			t.Fatalf("Expected static spheres, got %T", obj)
		}
		if s.Radius != 0.2 || s.Center.Y != 0.2 {
			t.Errorf("Unexpected small sphere %+v", s)
		}
		if s.Center.Subtract(clearance).Length() <= 0.9 {
			t.Errorf("Sphere at %v intrudes on the clearance", s.Center)
		}
	}
}

func TestRandomWorld_MovingSpheres(t *testing.T) {
	layout := layoutOptions{count: 484, minDistance: 2.0, movingFraction: 0.3, time0: 0, time1: 1}
	world := randomWorld(core.NewSeededSampler(42), layout)

	moving := 0
	for _, obj := range world.Objects() {
		if m, ok := obj.(*geometry.MovingSphere); ok {
			moving++
			dy := m.Center1.Y - m.Center0.Y
			if dy < 0 || dy >= 0.5 || m.Center1.X != m.Center0.X || m.Center1.Z != m.Center0.Z {
				t.Errorf("Moving sphere should only bounce upward, got %v -> %v", m.Center0, m.Center1)
			}
		}
	}
	if moving == 0 {
		t.Error("Expected some moving spheres")
	}
}

func TestListAllScenes(t *testing.T) {
	response := ListAllScenes()

	total := 0
	for i, group := range response.Groups {
		if i > 0 && response.Groups[i-1].Name >= group.Name {
			t.Errorf("Groups not sorted: %q before %q", response.Groups[i-1].Name, group.Name)
		}
		total += len(group.Scenes)
	}
	if total != len(Names()) {
		t.Errorf("Expected %d scenes, got %d", len(Names()), total)
	}

	info, ok := Lookup("depth-of-field")
	if !ok || info.DisplayName != "Depth Of Field" {
		t.Errorf("Unexpected info %+v", info)
	}
	if info, _ := Lookup("motion"); !info.Movable {
		t.Error("Motion scene should be movable")
	}
}

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"depth-of-field", "Depth Of Field"},
		{"motion_blur", "Motion Blur"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if result := titleCase(tc.input); result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}
