package testbed

import (
	"github.com/chewxy/math32"

	"github.com/spaghettifunk/prisma/engine/camera"
	"github.com/spaghettifunk/prisma/engine/color"
	"github.com/spaghettifunk/prisma/engine/config"
	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/material"
	"github.com/spaghettifunk/prisma/engine/math"
	"github.com/spaghettifunk/prisma/engine/texture"
)

/** @brief An object in the demo scene: a transform and a bounding sphere. */
type entity struct {
	transform *math.Transform
	radius    float32
	mat       *material.Material
}

/**
 * @brief A headless scene that exercises the render core every frame:
 * entities orbit the camera, get culled against the frustum and the visible
 * ones are shaded by sampling a generated texture.
 */
type Demo struct {
	camera   *camera.Camera
	entities []*entity
	clock    *core.Clock

	sampler *texture.Sampler
}

func New(cfg *config.RendererConfig) (*Demo, error) {
	if err := core.MetricsInitialize(); err != nil {
		return nil, err
	}

	sampler, err := cfg.Sampler.Sampler()
	if err != nil {
		return nil, err
	}

	cam := camera.New(cfg.Camera.FOVRadians(), cfg.Camera.AspectRatio, cfg.Camera.NearClip, cfg.Camera.FarClip)

	checker := Checkerboard(cfg.Texture.Width, cfg.Texture.Height, 16)
	if cfg.Texture.MipMaps {
		if err := checker.GenerateMipMaps(); err != nil {
			return nil, err
		}
	}

	mat := material.New()
	mat.Sampler = sampler
	mat.SetTexture(0, checker)

	d := &Demo{
		camera:  cam,
		clock:   core.NewClock(),
		sampler: sampler,
	}

	// Ring of entities around the camera, half of them outside the frustum
	// at any one time.
	for i := 0; i < 16; i++ {
		angle := float32(i) / 16.0 * math.K_TAU
		position := math.NewVec3(math32.Cos(angle)*50.0, 0.0, math32.Sin(angle)*50.0)
		d.entities = append(d.entities, &entity{
			transform: math.NewTransformFromPosition(position),
			radius:    2.0,
			mat:       mat,
		})
	}

	core.LogInfo("demo scene ready: %d entities", len(d.entities))
	return d, nil
}

// ApplyConfig swaps in freshly loaded settings, used by the config watcher.
func (d *Demo) ApplyConfig(cfg *config.RendererConfig) {
	sampler, err := cfg.Sampler.Sampler()
	if err != nil {
		core.LogWarn("keeping previous sampler: %s", err.Error())
		return
	}
	d.sampler = sampler
	for _, e := range d.entities {
		e.mat.Sampler = sampler
	}
	d.camera.SetAspectRatio(cfg.Camera.AspectRatio)
}

/**
 * @brief Advances the scene by one frame: rotates the camera, culls the
 * entities against the frustum and shades one sample per visible entity.
 * Returns the number of visible entities.
 */
func (d *Demo) Frame(deltaTime float64) int {
	d.camera.Yaw(float32(deltaTime) * 0.5)

	frustum, ok := d.camera.GetFrustum()
	if !ok {
		core.LogError("degenerate projection, skipping frame")
		return 0
	}

	visible := 0
	for _, e := range d.entities {
		world := e.transform.GetWorld()
		center := world.GetTranslation()

		core.MetricsCountVolumeTests(1)
		if !frustum.IsSphereInside(center, e.radius) {
			continue
		}

		uv := math.NewVec2(center.X/100.0+0.5, center.Z/100.0+0.5)
		_ = e.mat.Shade(uv)
		visible++
	}

	core.MetricsUpdate(deltaTime)
	return visible
}

/**
 * @brief Builds an rgba8 checkerboard texture, the classic mip and filter
 * test pattern.
 */
func Checkerboard(width, height, cell uint32) *texture.Texture {
	t := texture.New(texture.PixelFormatRGBA8, width, height, true)

	buffer := make([]uint8, width*height*4)
	white := color.NewColorU32(color.WHITE)
	gray := color.NewColorU32(color.GRAY)

	for y := uint32(0); y < height; y++ {
		for x := uint32(0); x < width; x++ {
			c := white
			if ((x/cell)+(y/cell))%2 == 1 {
				c = gray
			}
			r, g, b, a := c.RGBA8()
			offset := (y*width + x) * 4
			buffer[offset+0] = r
			buffer[offset+1] = g
			buffer[offset+2] = b
			buffer[offset+3] = a
		}
	}

	if err := t.SetData(buffer, 0); err != nil {
		core.LogFatal("checkerboard texture: %s", err.Error())
	}
	return t
}
