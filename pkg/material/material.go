// Package material defines the small, closed set of surface materials the
// path tracer understands: diffuse, perfect mirror, and dielectric glass.
// Materials are plain data; the path tracer in pkg/tracer owns the
// dispatch switch over Kind; this mirrors the reference renderer's own
// Material struct plus integer type tag.
package material

import "github.com/wrenfield/gopathtracer/pkg/core"

// Kind identifies which of the three supported materials a Material is.
type Kind int

const (
	Diffuse Kind = iota
	Mirror
	Glass
)

func (k Kind) String() string {
	switch k {
	case Diffuse:
		return "Diffuse"
	case Mirror:
		return "Mirror"
	case Glass:
		return "Glass"
	default:
		return "Unknown"
	}
}

// Material holds everything the shader needs for one surface: its base
// color, emission, behavior kind, and (for Glass only) index of
// refraction relative to air.
type Material struct {
	Color             core.Vec3
	Emission          core.Vec3
	Kind              Kind
	IndexOfRefraction float64
}

// NewMaterial creates a Material.
func NewMaterial(color, emission core.Vec3, kind Kind, ior float64) Material {
	return Material{Color: color, Emission: emission, Kind: kind, IndexOfRefraction: ior}
}

// IsLight reports whether this material emits (max emission component > 0).
func (m Material) IsLight() bool {
	return m.Emission.MaxComponent() > 0
}
