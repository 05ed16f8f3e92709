package asciitorus

import "fmt"

// Shader turns a surface normal and the light direction into a
// luminance value. Larger means brighter.
type Shader interface {
	Luminance(normal, light Vec3) float64
}

// Lambert is the negated cosine between the normal and the light
// vector, in [-1, 1]. A surface facing straight back along the light
// scores 1.
type Lambert struct{}

func (Lambert) Luminance(normal, light Vec3) float64 {
	return -cosine3(normal, light)
}

// LegacyDot is the unnormalised dot(normal, light - normal) proxy. Its
// range depends on the radii and the light length, so mapped values
// usually clamp at the palette ends.
type LegacyDot struct{}

func (LegacyDot) Luminance(normal, light Vec3) float64 {
	return dot3(normal, light.Sub(normal))
}

const (
	ShadingLambert = "lambert"
	ShadingLegacy  = "legacy"
	ShadingDepth   = "depth"
)

// ShaderByName resolves a shading mode. The depth mode has no shader and
// returns nil.
func ShaderByName(name string) (Shader, error) {
	switch name {
	case ShadingLambert:
		return Lambert{}, nil
	case ShadingLegacy:
		return LegacyDot{}, nil
	case ShadingDepth:
		return nil, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownShading, name)
}
