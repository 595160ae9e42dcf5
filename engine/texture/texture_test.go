package texture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/prisma/engine/core"
)

func TestNewAllocatesMipChain(t *testing.T) {
	tests := []struct {
		name   string
		width  uint32
		height uint32
		levels int
	}{
		{"square pot", 256, 256, 9},
		{"non square", 256, 64, 9},
		{"single texel", 1, 1, 1},
		{"tall strip", 1, 8, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tex := New(PixelFormatRGBA8, tt.width, tt.height, true)
			assert.Equal(t, tt.levels, tex.LevelCount())
		})
	}
}

func TestNewWithoutMipMaps(t *testing.T) {
	tex := New(PixelFormatR8, 64, 64, false)

	assert.Equal(t, 1, tex.LevelCount())

	data, err := tex.Data(0)
	require.NoError(t, err)
	assert.Len(t, data, 64*64)
}

func TestNewZeroSizeHasNoLevels(t *testing.T) {
	tex := New(PixelFormatRGBA8, 0, 0, true)
	assert.Equal(t, 0, tex.LevelCount())
}

func TestLevelSize(t *testing.T) {
	tex := New(PixelFormatRGBA8, 256, 64, true)

	w, h := tex.LevelSize(0)
	assert.Equal(t, uint32(256), w)
	assert.Equal(t, uint32(64), h)

	// Height clamps at one while width keeps halving
	w, h = tex.LevelSize(7)
	assert.Equal(t, uint32(2), w)
	assert.Equal(t, uint32(1), h)
}

func TestSetData(t *testing.T) {
	tex := New(PixelFormatRGBA8, 2, 2, false)

	err := tex.SetData(make([]uint8, 2*2*4), 0)
	assert.NoError(t, err)

	err = tex.SetData(make([]uint8, 3), 0)
	assert.ErrorIs(t, err, core.ErrInvalidBufferSize)
}

func TestSetDataGrowsLevels(t *testing.T) {
	tex := New(PixelFormatRGBA8, 4, 4, false)
	require.Equal(t, 1, tex.LevelCount())

	// Level 2 of a 4x4 texture is 1x1
	err := tex.SetData([]uint8{1, 2, 3, 4}, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, tex.LevelCount())
}

func TestResizeDiscardsData(t *testing.T) {
	tex := New(PixelFormatRGBA8, 4, 4, true)
	require.NoError(t, tex.SetData(make([]uint8, 4*4*4), 0))

	require.NoError(t, tex.Resize(8, 8))

	assert.Equal(t, uint32(8), tex.Width())
	assert.Equal(t, 4, tex.LevelCount())
}

func TestPixelAt(t *testing.T) {
	tex := New(PixelFormatRGBA8, 2, 1, false)
	require.NoError(t, tex.SetData([]uint8{
		255, 0, 0, 255,
		0, 255, 0, 128,
	}, 0))

	c, err := tex.PixelAt(0, 0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.R, 1e-6)
	assert.InDelta(t, 1.0, c.A, 1e-6)

	c, err = tex.PixelAt(1, 0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.G, 1e-6)
	assert.InDelta(t, 128.0/255.0, c.A, 1e-6)

	_, err = tex.PixelAt(0, 0, 5)
	assert.ErrorIs(t, err, core.ErrInvalidMipLevel)
}

func TestPixelAtFormats(t *testing.T) {
	r8 := New(PixelFormatR8, 1, 1, false)
	require.NoError(t, r8.SetData([]uint8{128}, 0))
	c, err := r8.PixelAt(0, 0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 128.0/255.0, c.R, 1e-6)
	assert.InDelta(t, c.R, c.G, 1e-6)
	assert.InDelta(t, 1.0, c.A, 1e-6)

	a8 := New(PixelFormatA8, 1, 1, false)
	require.NoError(t, a8.SetData([]uint8{64}, 0))
	c, err = a8.PixelAt(0, 0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, c.R, 1e-6)
	assert.InDelta(t, 64.0/255.0, c.A, 1e-6)
}

func TestGenerateMipMapsUniformStaysUniform(t *testing.T) {
	tex := New(PixelFormatRGBA8, 2, 2, true)

	buffer := make([]uint8, 2*2*4)
	for i := 0; i < len(buffer); i += 4 {
		buffer[i+0] = 200
		buffer[i+1] = 100
		buffer[i+2] = 50
		buffer[i+3] = 255
	}
	require.NoError(t, tex.SetData(buffer, 0))

	require.NoError(t, tex.GenerateMipMaps())
	require.Equal(t, 2, tex.LevelCount())

	level1, err := tex.Data(1)
	require.NoError(t, err)
	// Averaging identical texels reproduces the texel
	assert.Equal(t, []uint8{200, 100, 50, 255}, level1)
}

func TestGenerateMipMapsGammaCorrectAverage(t *testing.T) {
	tex := New(PixelFormatRGBA8, 2, 1, true)
	require.NoError(t, tex.SetData([]uint8{
		0, 0, 0, 255,
		255, 255, 255, 255,
	}, 0))

	require.NoError(t, tex.GenerateMipMaps())

	level1, err := tex.Data(1)
	require.NoError(t, err)

	// Linear-light average of black and white is brighter than the naive 128
	assert.Greater(t, level1[0], uint8(128))
	assert.Equal(t, uint8(255), level1[3])
}

func TestGenerateMipMapsSkipsTransparentTexels(t *testing.T) {
	tex := New(PixelFormatRGBA8, 2, 1, true)
	require.NoError(t, tex.SetData([]uint8{
		200, 200, 200, 255,
		0, 0, 0, 0,
	}, 0))

	require.NoError(t, tex.GenerateMipMaps())

	level1, err := tex.Data(1)
	require.NoError(t, err)

	// Color comes from the opaque texel only, alpha averages both
	assert.Equal(t, uint8(200), level1[0])
	assert.Equal(t, uint8(127), level1[3])
}

func TestGenerateMipMapsAllTransparentIsZero(t *testing.T) {
	tex := New(PixelFormatRGBA8, 2, 2, true)
	require.NoError(t, tex.SetData(make([]uint8, 2*2*4), 0))

	require.NoError(t, tex.GenerateMipMaps())

	level1, err := tex.Data(1)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 0, 0, 0}, level1)
}

func TestGenerateMipMapsA8IsLinear(t *testing.T) {
	tex := New(PixelFormatA8, 2, 1, true)
	require.NoError(t, tex.SetData([]uint8{0, 255}, 0))

	require.NoError(t, tex.GenerateMipMaps())

	level1, err := tex.Data(1)
	require.NoError(t, err)
	// Coverage averages without gamma, truncating the .5
	assert.Equal(t, uint8(127), level1[0])
}

func TestGenerateMipMapsR8IsGammaCorrect(t *testing.T) {
	tex := New(PixelFormatR8, 2, 1, true)
	require.NoError(t, tex.SetData([]uint8{0, 255}, 0))

	require.NoError(t, tex.GenerateMipMaps())

	level1, err := tex.Data(1)
	require.NoError(t, err)
	assert.Greater(t, level1[0], uint8(128))
}

func TestGenerateMipMapsFloat32Fails(t *testing.T) {
	tex := New(PixelFormatFloat32, 4, 4, true)

	err := tex.GenerateMipMaps()
	assert.ErrorIs(t, err, core.ErrInvalidPixelFormat)
}

func TestGenerateMipMapsNoBaseImage(t *testing.T) {
	tex := New(PixelFormatRGBA8, 0, 0, false)

	err := tex.GenerateMipMaps()
	assert.ErrorIs(t, err, core.ErrNoBaseImage)
}
