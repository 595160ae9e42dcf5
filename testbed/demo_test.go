package testbed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/prisma/engine/config"
	"github.com/spaghettifunk/prisma/engine/texture"
)

func TestCheckerboard(t *testing.T) {
	tex := Checkerboard(64, 64, 8)

	assert.Equal(t, texture.PixelFormatRGBA8, tex.PixelFormat())
	assert.Equal(t, uint32(64), tex.Width())
	assert.Equal(t, 7, tex.LevelCount())

	// Opposite cell colors at the seam
	a, err := tex.PixelAt(0, 0, 0)
	require.NoError(t, err)
	b, err := tex.PixelAt(8, 0, 0)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestDemoFrames(t *testing.T) {
	d, err := New(config.DefaultConfig())
	require.NoError(t, err)

	totalVisible := 0
	for i := 0; i < 60; i++ {
		totalVisible += d.Frame(1.0 / 60.0)
	}

	// A ring of entities around the camera cannot all be culled for a
	// whole rotation's worth of frames
	assert.Greater(t, totalVisible, 0)
}

func TestDemoApplyConfig(t *testing.T) {
	d, err := New(config.DefaultConfig())
	require.NoError(t, err)

	cfg := config.DefaultConfig()
	cfg.Sampler.Filter = "point"
	d.ApplyConfig(cfg)

	assert.Equal(t, texture.FilterPoint, d.sampler.Filter)
}

func TestDemoApplyConfigKeepsSamplerOnError(t *testing.T) {
	d, err := New(config.DefaultConfig())
	require.NoError(t, err)

	before := d.sampler

	cfg := config.DefaultConfig()
	cfg.Sampler.Filter = "bogus"
	d.ApplyConfig(cfg)

	assert.Same(t, before, d.sampler)
}
