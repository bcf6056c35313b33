package material

import (
	"fmt"

	"github.com/Lucifier129/go-ray-tracing/pkg/core"
)

// Kind identifies one of the closed set of scattering behaviors
type Kind int

const (
	// KindDefault absorbs every ray. It is the zero value so an unassigned
	// material is a valid absorber rather than a nil state.
	KindDefault Kind = iota
	KindLambertian
	KindMetal
	KindDielectric
)

func (k Kind) String() string {
	switch k {
	case KindDefault:
		return "default"
	case KindLambertian:
		return "lambertian"
	case KindMetal:
		return "metal"
	case KindDielectric:
		return "dielectric"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Material is immutable value data describing how a surface scatters light.
// Only the fields relevant to Kind are meaningful.
type Material struct {
	Kind            Kind
	Albedo          core.Vec3 // Lambertian and metal color
	Fuzz            float64   // Metal roughness in [0, 1]
	RefractiveIndex float64   // Dielectric index of refraction
}

// Default returns the placeholder material that never scatters
func Default() Material {
	return Material{Kind: KindDefault}
}

func (m Material) String() string {
	switch m.Kind {
	case KindLambertian:
		return fmt.Sprintf("lambertian(albedo=%v)", m.Albedo)
	case KindMetal:
		return fmt.Sprintf("metal(albedo=%v, fuzz=%g)", m.Albedo, m.Fuzz)
	case KindDielectric:
		return fmt.Sprintf("dielectric(ir=%g)", m.RefractiveIndex)
	default:
		return m.Kind.String()
	}
}

// Scatter computes the outgoing ray for rayIn hitting the surface described
// by hit. The boolean is false when the ray is absorbed. A nil material
// behaves as the default absorber.
func (m *Material) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	if m == nil {
		return ScatterResult{}, false
	}

	switch m.Kind {
	case KindLambertian:
		return scatterLambertian(m, rayIn, hit, sampler)
	case KindMetal:
		return scatterMetal(m, rayIn, hit, sampler)
	case KindDielectric:
		return scatterDielectric(m, rayIn, hit, sampler)
	default:
		return ScatterResult{}, false
	}
}
