// Package camera turns viewport coordinates into primary rays.
//
// Four models are provided, each a superset of the previous one: an
// axis-aligned pinhole, an oriented pinhole, a thin lens with depth of field,
// and a thin lens with a shutter interval for motion blur.
package camera

import (
	"math"

	"github.com/Lucifier129/go-ray-tracing/pkg/core"
)

// Camera generates rays for screen coordinates (s, t) where 0 <= s,t <= 1,
// (0, 0) being the lower left corner of the viewport. GetRay must be safe
// for concurrent use as long as every caller passes its own sampler.
type Camera interface {
	GetRay(s, t float64, sampler core.Sampler) core.Ray
}

// Config contains the parameters a camera is derived from
type Config struct {
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // Up direction (usually (0,1,0))
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter; 0 gives a pinhole
	FocusDistance float64   // Distance to the plane in focus; 0 means |LookFrom - LookAt|
	Time0, Time1  float64   // Shutter interval for motion blur
	MoveStep      float64   // Distance covered by one keyboard movement
}

// DefaultConfig returns the book cover camera setup
func DefaultConfig() Config {
	return Config{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.1,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
		MoveStep:      1.2,
	}
}

// focusDistance resolves the automatic focus distance
func (c Config) focusDistance() float64 {
	if c.FocusDistance > 0 {
		return c.FocusDistance
	}
	return c.LookFrom.Subtract(c.LookAt).Length()
}

// viewport holds the derived geometry shared by the pinhole and lens models
type viewport struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
}

// newViewport derives an orthonormal basis from cfg and places a viewport
// of height 2·tan(vfov/2), scaled by scale, at distance scale along -w
func newViewport(cfg Config, scale float64) viewport {
	theta := cfg.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := cfg.AspectRatio * viewportHeight

	w := cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	u := cfg.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := cfg.LookFrom
	horizontal := u.Multiply(viewportWidth * scale)
	vertical := v.Multiply(viewportHeight * scale)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(scale))

	return viewport{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
	}
}

// target returns the viewport point addressed by (s, t)
func (vp viewport) target(s, t float64) core.Vec3 {
	return vp.lowerLeftCorner.
		Add(vp.horizontal.Multiply(s)).
		Add(vp.vertical.Multiply(t))
}
