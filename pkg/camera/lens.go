package camera

import (
	"github.com/Lucifier129/go-ray-tracing/pkg/core"
)

// LensCamera is a thin lens camera. Points at the focus distance stay sharp;
// everything else blurs in proportion to the aperture.
type LensCamera struct {
	viewport
	lensRadius float64
}

// NewLensCamera creates a thin lens camera
func NewLensCamera(cfg Config) *LensCamera {
	return &LensCamera{
		viewport:   newViewport(cfg, cfg.focusDistance()),
		lensRadius: cfg.Aperture / 2,
	}
}

// GetRay generates a ray from a random point on the lens through the
// focus-plane point addressed by (s, t)
func (c *LensCamera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	origin := c.origin.Add(offset)
	direction := c.target(s, t).Subtract(origin)

	return core.NewRay(origin, direction)
}

// LensRadius returns half the aperture
func (c *LensCamera) LensRadius() float64 {
	return c.lensRadius
}

// Basis returns the camera's right, up and backward unit vectors
func (c *LensCamera) Basis() (u, v, w core.Vec3) {
	return c.u, c.v, c.w
}
