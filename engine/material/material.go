package material

import (
	"github.com/spaghettifunk/prisma/engine/color"
	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/math"
	"github.com/spaghettifunk/prisma/engine/texture"
)

// Number of texture slots a material can bind.
const MaxTextures = 2

/**
 * @brief Surface properties used when shading: a diffuse color modulated by
 * up to two textures sampled with the material's sampler. A new material is
 * opaque white with no textures bound.
 */
type Material struct {
	Name string

	Textures     [MaxTextures]*texture.Texture
	Sampler      *texture.Sampler
	DiffuseColor color.Color
	Opacity      float32
}

func New() *Material {
	return &Material{
		Name:         core.NewResourceID(),
		Sampler:      texture.NewSampler(texture.FilterPoint, texture.AddressClamp, texture.AddressClamp),
		DiffuseColor: color.NewColorU32(color.WHITE),
		Opacity:      1.0,
	}
}

func (m *Material) SetTexture(slot int, t *texture.Texture) error {
	if slot < 0 || slot >= MaxTextures {
		return core.ErrUnknown
	}
	m.Textures[slot] = t
	return nil
}

/**
 * @brief Shades a surface point: the diffuse color multiplied by every bound
 * texture sampled at the coordinate, with the material opacity folded into
 * the alpha channel.
 */
func (m *Material) Shade(texcoord math.Vec2) color.Color {
	result := m.DiffuseColor

	for _, t := range m.Textures {
		if t == nil {
			continue
		}
		sampled := t.Sample(m.Sampler, texcoord)
		result = color.Color{
			R: result.R * sampled.R,
			G: result.G * sampled.G,
			B: result.B * sampled.B,
			A: result.A * sampled.A,
		}
	}

	result.A *= m.Opacity
	return result
}
