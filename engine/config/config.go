package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/prisma/engine/math"
	"github.com/spaghettifunk/prisma/engine/texture"
)

/** @brief Camera settings loaded from the configuration file. */
type CameraConfig struct {
	FOVDegrees  float32 `toml:"fov_degrees"`
	AspectRatio float32 `toml:"aspect_ratio"`
	NearClip    float32 `toml:"near_clip"`
	FarClip     float32 `toml:"far_clip"`
}

/** @brief Sampler settings loaded from the configuration file. */
type SamplerConfig struct {
	Filter       string `toml:"filter"`
	AddressModeX string `toml:"address_mode_x"`
	AddressModeY string `toml:"address_mode_y"`
}

/** @brief Texture settings loaded from the configuration file. */
type TextureConfig struct {
	Width   uint32 `toml:"width"`
	Height  uint32 `toml:"height"`
	MipMaps bool   `toml:"mip_maps"`
}

/**
 * @brief Renderer settings, read from a TOML file. Missing fields keep
 * their defaults.
 */
type RendererConfig struct {
	Camera  CameraConfig  `toml:"camera"`
	Sampler SamplerConfig `toml:"sampler"`
	Texture TextureConfig `toml:"texture"`
}

// DefaultConfig returns the settings used when no file is provided.
func DefaultConfig() *RendererConfig {
	return &RendererConfig{
		Camera: CameraConfig{
			FOVDegrees:  45.0,
			AspectRatio: 16.0 / 9.0,
			NearClip:    0.1,
			FarClip:     1000.0,
		},
		Sampler: SamplerConfig{
			Filter:       "linear",
			AddressModeX: "clamp",
			AddressModeY: "clamp",
		},
		Texture: TextureConfig{
			Width:   256,
			Height:  256,
			MipMaps: true,
		},
	}
}

// Load reads a TOML configuration file, applying defaults for anything the
// file does not set.
func Load(path string) (*RendererConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FOVRadians returns the configured field of view converted to radians.
func (c *CameraConfig) FOVRadians() float32 {
	return math.DegToRad(c.FOVDegrees)
}

// Sampler builds a sampler from the configured strings.
func (c *SamplerConfig) Sampler() (*texture.Sampler, error) {
	filter, err := texture.ParseFilter(c.Filter)
	if err != nil {
		return nil, err
	}
	amx, err := texture.ParseAddressMode(c.AddressModeX)
	if err != nil {
		return nil, err
	}
	amy, err := texture.ParseAddressMode(c.AddressModeY)
	if err != nil {
		return nil, err
	}
	return texture.NewSampler(filter, amx, amy), nil
}
