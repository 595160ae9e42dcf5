package texture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/prisma/engine/math"
)

// gradient4x1 is a 4x1 rgba8 texture with red increasing per texel.
func gradient4x1(t *testing.T) *Texture {
	t.Helper()

	tex := New(PixelFormatRGBA8, 4, 1, false)
	require.NoError(t, tex.SetData([]uint8{
		0, 0, 0, 255,
		85, 0, 0, 255,
		170, 0, 0, 255,
		255, 0, 0, 255,
	}, 0))
	return tex
}

func TestSampleNilSamplerIsTransparentBlack(t *testing.T) {
	tex := gradient4x1(t)

	c := tex.Sample(nil, math.NewVec2(0.5, 0.5))
	assert.Zero(t, c)
}

func TestSampleEmptyTextureIsTransparentBlack(t *testing.T) {
	tex := New(PixelFormatRGBA8, 0, 0, false)
	sampler := NewSampler(FilterPoint, AddressClamp, AddressClamp)

	c := tex.Sample(sampler, math.NewVec2(0.5, 0.5))
	assert.Zero(t, c)
}

func TestSamplePointPicksNearestTexel(t *testing.T) {
	tex := gradient4x1(t)
	sampler := NewSampler(FilterPoint, AddressClamp, AddressClamp)

	tests := []struct {
		name     string
		u        float32
		expected float32
	}{
		{"left edge", 0.0, 0.0},
		{"right edge", 1.0, 1.0},
		{"first texel", 0.1, 0.0},
		{"second texel", 1.0 / 3.0, 85.0 / 255.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tex.Sample(sampler, math.NewVec2(tt.u, 0.0))
			assert.InDelta(t, tt.expected, c.R, 1e-5)
		})
	}
}

func TestSampleLinearTexelCenterIsExact(t *testing.T) {
	tex := gradient4x1(t)
	sampler := NewSampler(FilterLinear, AddressClamp, AddressClamp)

	// u = 0.5 lands exactly on the center of the second texel
	c := tex.Sample(sampler, math.NewVec2(0.5, 0.0))
	assert.InDelta(t, 85.0/255.0, c.R, 1e-4)
}

func TestSampleLinearBlendsNeighbors(t *testing.T) {
	tex := gradient4x1(t)
	sampler := NewSampler(FilterLinear, AddressClamp, AddressClamp)

	// Halfway between the centers of the first two texels
	c := tex.Sample(sampler, math.NewVec2(1.0/3.0, 0.0))
	assert.InDelta(t, 0.5*85.0/255.0, c.R, 1e-4)
}

func TestSampleRepeatWraps(t *testing.T) {
	tex := gradient4x1(t)
	sampler := NewSampler(FilterPoint, AddressRepeat, AddressClamp)

	inside := tex.Sample(sampler, math.NewVec2(0.25, 0.0))
	wrapped := tex.Sample(sampler, math.NewVec2(1.25, 0.0))

	assert.InDelta(t, inside.R, wrapped.R, 1e-6)
}

func TestSampleClampPinsOutOfRange(t *testing.T) {
	tex := gradient4x1(t)
	sampler := NewSampler(FilterPoint, AddressClamp, AddressClamp)

	below := tex.Sample(sampler, math.NewVec2(-2.0, 0.0))
	above := tex.Sample(sampler, math.NewVec2(3.0, 0.0))

	assert.InDelta(t, 0.0, below.R, 1e-6)
	assert.InDelta(t, 1.0, above.R, 1e-6)
}

func TestSampleMirrorReflects(t *testing.T) {
	tex := gradient4x1(t)
	sampler := NewSampler(FilterPoint, AddressMirror, AddressClamp)

	// The triangle wave maps 0.25 and 1.75 to the same texel
	a := tex.Sample(sampler, math.NewVec2(0.25, 0.0))
	b := tex.Sample(sampler, math.NewVec2(1.75, 0.0))

	assert.InDelta(t, a.R, b.R, 1e-6)
}

func TestSampleA8Texture(t *testing.T) {
	tex := New(PixelFormatA8, 2, 2, false)
	require.NoError(t, tex.SetData([]uint8{0, 255, 255, 0}, 0))
	sampler := NewSampler(FilterLinear, AddressClamp, AddressClamp)

	c := tex.Sample(sampler, math.NewVec2(1.0, 1.0))
	assert.InDelta(t, 0.0, c.R, 1e-6)
	assert.InDelta(t, 0.5, c.A, 1e-4)
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("linear")
	require.NoError(t, err)
	assert.Equal(t, FilterLinear, f)

	_, err = ParseFilter("anisotropic")
	assert.Error(t, err)
}

func TestParseAddressMode(t *testing.T) {
	for name, expected := range map[string]AddressMode{
		"clamp":  AddressClamp,
		"repeat": AddressRepeat,
		"mirror": AddressMirror,
	} {
		am, err := ParseAddressMode(name)
		require.NoError(t, err)
		assert.Equal(t, expected, am)
	}

	_, err := ParseAddressMode("border")
	assert.Error(t, err)
}
