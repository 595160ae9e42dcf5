package texture

import (
	gomath "math"

	"github.com/spaghettifunk/prisma/engine/color"
	"github.com/spaghettifunk/prisma/engine/core"
)

/** @brief The layout of a single texel in memory. */
type PixelFormat int

const (
	/** @brief One byte red channel, replicated to rgb when read, opaque alpha. */
	PixelFormatR8 PixelFormat = iota
	/** @brief One byte alpha channel, rgb reads as black. */
	PixelFormatA8
	/** @brief Four bytes, one per channel, in r, g, b, a order. */
	PixelFormatRGBA8
	/** @brief One float32 intensity, replicated to rgb when read, opaque alpha. */
	PixelFormatFloat32
)

// PixelSize returns the byte size of one texel, or 0 for an unknown format.
func PixelSize(format PixelFormat) uint32 {
	switch format {
	case PixelFormatR8, PixelFormatA8:
		return 1
	case PixelFormatRGBA8:
		return 4
	case PixelFormatFloat32:
		return 4
	default:
		return 0
	}
}

func (pf PixelFormat) String() string {
	switch pf {
	case PixelFormatR8:
		return "r8"
	case PixelFormatA8:
		return "a8"
	case PixelFormatRGBA8:
		return "rgba8"
	case PixelFormatFloat32:
		return "float32"
	default:
		return "unknown"
	}
}

/**
 * @brief A 2D texture holding one or more mip levels of texel data. Level 0
 * is the base image; each further level halves both dimensions (never below
 * one texel) until a 1x1 level is reached.
 */
type Texture struct {
	Name string

	pixelFormat PixelFormat
	width       uint32
	height      uint32
	mipMaps     bool
	levels      [][]uint8
}

/**
 * @brief Creates a texture with zeroed texel storage. When mipMaps is true
 * the full mip chain is allocated up front. A zero dimension or an unknown
 * pixel format produces a texture with no levels.
 */
func New(format PixelFormat, width, height uint32, mipMaps bool) *Texture {
	t := &Texture{
		Name:        core.NewResourceID(),
		pixelFormat: format,
		width:       width,
		height:      height,
		mipMaps:     mipMaps,
	}
	t.allocateLevels()
	return t
}

func (t *Texture) allocateLevels() {
	pixelSize := PixelSize(t.pixelFormat)
	if pixelSize == 0 || t.width == 0 || t.height == 0 {
		return
	}

	t.levels = append(t.levels, make([]uint8, t.width*t.height*pixelSize))

	if t.mipMaps {
		newWidth := t.width
		newHeight := t.height

		for newWidth > 1 || newHeight > 1 {
			newWidth >>= 1
			newHeight >>= 1

			if newWidth < 1 {
				newWidth = 1
			}
			if newHeight < 1 {
				newHeight = 1
			}

			t.levels = append(t.levels, make([]uint8, newWidth*newHeight*pixelSize))
		}
	}
}

/**
 * @brief Discards all texel data and reallocates the level storage for the
 * new dimensions.
 */
func (t *Texture) Resize(newWidth, newHeight uint32) error {
	if PixelSize(t.pixelFormat) == 0 {
		return core.ErrInvalidPixelFormat
	}

	t.width = newWidth
	t.height = newHeight
	t.levels = nil
	t.allocateLevels()
	return nil
}

func (t *Texture) PixelFormat() PixelFormat {
	return t.pixelFormat
}

func (t *Texture) Width() uint32 {
	return t.width
}

func (t *Texture) Height() uint32 {
	return t.height
}

func (t *Texture) LevelCount() int {
	return len(t.levels)
}

// LevelSize returns the dimensions of the given mip level.
func (t *Texture) LevelSize(level int) (uint32, uint32) {
	w := t.width >> uint(level)
	h := t.height >> uint(level)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// Data returns the texel storage of a mip level. The slice is shared with
// the texture, not copied.
func (t *Texture) Data(level int) ([]uint8, error) {
	if level < 0 || level >= len(t.levels) {
		return nil, core.ErrInvalidMipLevel
	}
	return t.levels[level], nil
}

/**
 * @brief Replaces the texel data of a mip level with a copy of buffer. The
 * buffer must match the byte size of that level exactly. Setting a level
 * beyond the current count grows the level list, leaving any gap levels
 * empty.
 */
func (t *Texture) SetData(buffer []uint8, level int) error {
	pixelSize := PixelSize(t.pixelFormat)
	if pixelSize == 0 {
		return core.ErrInvalidPixelFormat
	}
	if level < 0 {
		return core.ErrInvalidMipLevel
	}

	w, h := t.LevelSize(level)
	if uint32(len(buffer)) != w*h*pixelSize {
		return core.ErrInvalidBufferSize
	}

	for level >= len(t.levels) {
		t.levels = append(t.levels, nil)
	}
	t.levels[level] = append([]uint8(nil), buffer...)
	return nil
}

/**
 * @brief Reads a single texel as a color. R8 replicates to rgb with opaque
 * alpha, A8 reads as black with the stored alpha, Float32 replicates the
 * intensity with opaque alpha.
 */
func (t *Texture) PixelAt(x, y uint32, level int) (color.Color, error) {
	if level < 0 || level >= len(t.levels) {
		return color.Color{}, core.ErrInvalidMipLevel
	}

	buffer := t.levels[level]
	w, h := t.LevelSize(level)
	if x >= w || y >= h {
		return color.Color{}, core.ErrInvalidBufferSize
	}

	switch t.pixelFormat {
	case PixelFormatR8:
		r := buffer[y*w+x]
		return color.NewColorRGBA8(r, r, r, 255), nil
	case PixelFormatA8:
		a := buffer[y*w+x]
		return color.NewColorRGBA8(0, 0, 0, a), nil
	case PixelFormatRGBA8:
		offset := (y*w + x) * 4
		return color.NewColorRGBA8(buffer[offset], buffer[offset+1], buffer[offset+2], buffer[offset+3]), nil
	case PixelFormatFloat32:
		offset := (y*w + x) * 4
		bits := uint32(buffer[offset]) |
			uint32(buffer[offset+1])<<8 |
			uint32(buffer[offset+2])<<16 |
			uint32(buffer[offset+3])<<24
		f := gomath.Float32frombits(bits)
		return color.Color{R: f, G: f, B: f, A: 1.0}, nil
	default:
		return color.Color{}, core.ErrInvalidPixelFormat
	}
}

/**
 * @brief Regenerates every mip level below the base image by repeated 2x2
 * downsampling of the previous level. Byte formats are filtered in linear
 * light; Float32 textures cannot be downsampled.
 */
func (t *Texture) GenerateMipMaps() error {
	pixelSize := PixelSize(t.pixelFormat)
	if pixelSize == 0 {
		return core.ErrInvalidPixelFormat
	}

	if len(t.levels) == 0 {
		return core.ErrNoBaseImage
	}

	newWidth := t.width
	newHeight := t.height
	previousWidth := t.width
	previousHeight := t.height
	level := 1

	built := uint64(0)

	for newWidth > 1 || newHeight > 1 {
		newWidth >>= 1
		newHeight >>= 1

		if newWidth < 1 {
			newWidth = 1
		}
		if newHeight < 1 {
			newHeight = 1
		}

		if level >= len(t.levels) {
			t.levels = append(t.levels, make([]uint8, newWidth*newHeight*pixelSize))
		}

		switch t.pixelFormat {
		case PixelFormatRGBA8:
			downsampleRGBA8(previousWidth, previousHeight, previousWidth*4, t.levels[level-1], t.levels[level])
		case PixelFormatR8:
			downsampleR8(previousWidth, previousHeight, previousWidth, t.levels[level-1], t.levels[level])
		case PixelFormatA8:
			downsampleA8(previousWidth, previousHeight, previousWidth, t.levels[level-1], t.levels[level])
		default:
			return core.ErrInvalidPixelFormat
		}

		previousWidth = newWidth
		previousHeight = newHeight
		level++
		built++
	}

	core.MetricsCountMipLevels(built)
	return nil
}
