package camera

import (
	"github.com/Lucifier129/go-ray-tracing/pkg/core"
)

// ExposureCamera is a thin lens camera with a shutter interval. Every ray is
// stamped with a time drawn uniformly from [Time0, Time1].
//
// The camera can be repositioned with Move. Moving and rendering must not
// overlap: the owner finishes (or abandons) a render before moving.
type ExposureCamera struct {
	cfg  Config
	lens *LensCamera
}

// NewExposureCamera creates a motion blur camera
func NewExposureCamera(cfg Config) *ExposureCamera {
	return &ExposureCamera{cfg: cfg, lens: NewLensCamera(cfg)}
}

// GetRay generates a lens ray and stamps it with a random shutter time
func (c *ExposureCamera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	ray := c.lens.GetRay(s, t, sampler)
	ray.Time = c.cfg.Time0 + sampler.Get1D()*(c.cfg.Time1-c.cfg.Time0)
	return ray
}

// Move shifts LookFrom by one step along the viewing direction or the
// camera's right vector, then re-derives the lens. LookAt stays put.
// Unknown movements are ignored.
func (c *ExposureCamera) Move(m Movement) {
	step := c.cfg.MoveStep
	front := c.cfg.LookFrom.Subtract(c.cfg.LookAt).Normalize()
	right := c.lens.u

	var offset core.Vec3
	switch m {
	case Forward:
		offset = front.Multiply(-step)
	case Backward:
		offset = front.Multiply(step)
	case Left:
		offset = right.Multiply(-step)
	case Right:
		offset = right.Multiply(step)
	default:
		return
	}

	c.cfg.LookFrom = c.cfg.LookFrom.Add(offset)
	c.lens = NewLensCamera(c.cfg)
}

// Moved returns a repositioned copy, leaving c untouched
func (c *ExposureCamera) Moved(m Movement) *ExposureCamera {
	moved := NewExposureCamera(c.cfg)
	moved.Move(m)
	return moved
}

// Config returns the configuration the camera is currently derived from
func (c *ExposureCamera) Config() Config {
	return c.cfg
}

// LookFrom returns the current camera position
func (c *ExposureCamera) LookFrom() core.Vec3 {
	return c.cfg.LookFrom
}

// LookAt returns the point the camera looks at
func (c *ExposureCamera) LookAt() core.Vec3 {
	return c.cfg.LookAt
}

// Basis returns the camera's right, up and backward unit vectors
func (c *ExposureCamera) Basis() (u, v, w core.Vec3) {
	return c.lens.Basis()
}
