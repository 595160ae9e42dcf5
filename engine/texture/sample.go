package texture

import (
	"github.com/chewxy/math32"

	"github.com/spaghettifunk/prisma/engine/color"
	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/math"
)

// addressCoord remaps a texture coordinate to the continuous texel range
// [0, dim-1] of one axis. Mirror reflects with a triangle wave of period 2.
func addressCoord(c float32, mode AddressMode, dim uint32) float32 {
	switch mode {
	case AddressClamp:
		return math.Clamp(c, 0.0, 1.0) * float32(dim-1)
	case AddressRepeat:
		return math32.Mod(c, 1.0) * float32(dim-1)
	case AddressMirror:
		return (1.0 - 2.0*math32.Abs(math32.Mod(c/2.0, 1.0)-0.5)) * float32(dim-1)
	default:
		return 0.0
	}
}

func clampTexel(v int32, dim uint32) uint32 {
	if v < 0 {
		return 0
	}
	if uint32(v) > dim-1 {
		return dim - 1
	}
	return uint32(v)
}

/**
 * @brief Samples the texture at a normalized coordinate using the sampler's
 * filter and address modes. Point filtering rounds to the nearest texel;
 * linear filtering blends the 2x2 neighborhood around the coordinate with
 * texel-center weights, so a coordinate that lands exactly on a texel center
 * returns that texel unblended. A nil sampler or a texture with no levels
 * samples as transparent black.
 */
func (t *Texture) Sample(sampler *Sampler, coord math.Vec2) color.Color {
	if sampler == nil || len(t.levels) == 0 {
		return color.Color{}
	}

	core.MetricsCountSamples(1)

	u := addressCoord(coord.X, sampler.AddressModeX, t.width)
	v := addressCoord(coord.Y, sampler.AddressModeY, t.height)

	if sampler.Filter == FilterPoint {
		textureX := clampTexel(int32(math32.Round(u)), t.width)
		textureY := clampTexel(int32(math32.Round(v)), t.height)
		result, _ := t.PixelAt(textureX, textureY, 0)
		return result
	}

	textureX0 := clampTexel(int32(math32.Floor(u-0.5)), t.width)
	textureX1 := clampTexel(int32(textureX0)+1, t.width)
	textureY0 := clampTexel(int32(math32.Floor(v-0.5)), t.height)
	textureY1 := clampTexel(int32(textureY0)+1, t.height)

	// TODO: calculate mip level
	c00, _ := t.PixelAt(textureX0, textureY0, 0)
	c10, _ := t.PixelAt(textureX1, textureY0, 0)
	c01, _ := t.PixelAt(textureX0, textureY1, 0)
	c11, _ := t.PixelAt(textureX1, textureY1, 0)

	x0 := u - (float32(textureX0) + 0.5)
	y0 := v - (float32(textureY0) + 0.5)
	x1 := (float32(textureX0) + 1.5) - u
	y1 := (float32(textureY0) + 1.5) - v

	return color.Color{
		R: c00.R*x1*y1 + c10.R*x0*y1 + c01.R*x1*y0 + c11.R*x0*y0,
		G: c00.G*x1*y1 + c10.G*x0*y1 + c01.G*x1*y0 + c11.G*x0*y0,
		B: c00.B*x1*y1 + c10.B*x0*y1 + c01.B*x1*y0 + c11.B*x0*y0,
		A: c00.A*x1*y1 + c10.A*x0*y1 + c01.A*x1*y0 + c11.A*x0*y0,
	}
}
