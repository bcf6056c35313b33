package geometry

import (
	"fmt"

	"github.com/Lucifier129/go-ray-tracing/pkg/core"
	"github.com/Lucifier129/go-ray-tracing/pkg/material"
)

// Hittable is anything a ray can intersect. Hit reports the nearest
// intersection with t in the open interval (tMin, tMax).
type Hittable interface {
	Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool)
}

// checkInterval panics on a reversed search interval. Callers own the
// interval, so this is a programming error rather than a runtime condition.
func checkInterval(tMin, tMax float64) {
	if tMin > tMax {
		panic(fmt.Sprintf("geometry: invalid hit interval, tMin %g > tMax %g", tMin, tMax))
	}
}
