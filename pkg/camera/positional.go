package camera

import (
	"github.com/Lucifier129/go-ray-tracing/pkg/core"
)

// PositionalCamera is a pinhole placed with look-from/look-at/up
type PositionalCamera struct {
	viewport
}

// NewPositionalCamera creates an oriented pinhole camera. Aperture, focus
// distance and shutter settings in cfg are ignored.
func NewPositionalCamera(cfg Config) *PositionalCamera {
	return &PositionalCamera{viewport: newViewport(cfg, 1.0)}
}

// GetRay generates a ray for screen coordinates (s, t). No randomness is drawn.
func (c *PositionalCamera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	return core.NewRay(c.origin, c.target(s, t).Subtract(c.origin))
}

// Basis returns the camera's right, up and backward unit vectors
func (c *PositionalCamera) Basis() (u, v, w core.Vec3) {
	return c.u, c.v, c.w
}
