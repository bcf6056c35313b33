package camera

import (
	"github.com/Lucifier129/go-ray-tracing/pkg/core"
)

// BasicCamera is an axis-aligned pinhole looking down -Z
type BasicCamera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewBasicCamera creates a pinhole at the origin with a viewport of height 2
// one unit in front of it
func NewBasicCamera(aspectRatio float64) *BasicCamera {
	return NewBasicCameraWith(core.NewVec3(0, 0, 0), 2.0, aspectRatio, 1.0)
}

// NewBasicCameraWith creates an axis-aligned pinhole with explicit viewport
// dimensions
func NewBasicCameraWith(origin core.Vec3, viewportHeight, aspectRatio, focalLength float64) *BasicCamera {
	viewportWidth := aspectRatio * viewportHeight

	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, viewportHeight, 0)
	lowerLeftCorner := origin.Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(core.NewVec3(0, 0, focalLength))

	return &BasicCamera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// GetRay generates a ray for screen coordinates (s, t). No randomness is drawn.
func (c *BasicCamera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}
