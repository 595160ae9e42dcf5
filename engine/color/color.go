package color

import (
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/spaghettifunk/prisma/engine/math"
)

// Common colors in packed 0xRRGGBBAA form.
const (
	BLACK   uint32 = 0x000000ff
	RED     uint32 = 0xff0000ff
	MAGENTA uint32 = 0xff00ffff
	GREEN   uint32 = 0x00ff00ff
	CYAN    uint32 = 0x00ffffff
	BLUE    uint32 = 0x0000ffff
	YELLOW  uint32 = 0xffff00ff
	WHITE   uint32 = 0xffffffff
	GRAY    uint32 = 0x808080ff
)

/**
 * @brief An RGBA color with float channels. Channels are nominally in
 * [0, 1] but are not clamped, so HDR-style values survive arithmetic and
 * only get truncated when packing to bytes.
 */
type Color struct {
	R float32
	G float32
	B float32
	A float32
}

func NewColor(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// NewColorU32 unpacks a 0xRRGGBBAA value into float channels.
func NewColorU32(value uint32) Color {
	return Color{
		R: float32(uint8(value>>24)) / 255.0,
		G: float32(uint8(value>>16)) / 255.0,
		B: float32(uint8(value>>8)) / 255.0,
		A: float32(uint8(value)) / 255.0,
	}
}

// NewColorRGBA8 builds a color from byte channels.
func NewColorRGBA8(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: float32(a) / 255.0,
	}
}

// NewColorFromVec3 copies the vector into the rgb channels; alpha is zero.
func NewColorFromVec3(v math.Vec3) Color {
	return Color{R: v.X, G: v.Y, B: v.Z, A: 0.0}
}

func NewColorFromVec4(v math.Vec4) Color {
	return Color{R: v.X, G: v.Y, B: v.Z, A: v.W}
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'f') ||
		(c >= 'A' && c <= 'F')
}

// parseHex handles the "#..." form. The digits after '#' are split into
// three equal-width components (padded with zeros on the right when the
// count is not a multiple of three), at most two digits of each component
// are read, and any non-hex digit is treated as '0'. Alpha is always 0xff.
func parseHex(value string) uint32 {
	digits := []byte(value[1:])

	componentSize := (len(digits) + 2) / 3
	for len(digits) < componentSize*3 {
		digits = append(digits, 0)
	}

	byteCount := componentSize
	if byteCount > 2 {
		byteCount = 2
	}

	var result uint32
	for component := 0; component < 3; component++ {
		current := make([]byte, 0, 2)
		for b := 0; b < byteCount; b++ {
			c := digits[component*componentSize+b]
			if isHexDigit(c) {
				current = append(current, c)
			} else {
				current = append(current, '0')
			}
		}

		v, _ := strconv.ParseUint(string(current), 16, 32)
		result |= uint32(v) << ((3 - component) * 8)
	}

	result |= 0xff
	return result
}

/**
 * @brief Parses a color string into a color. Supported forms are "#rgb" and
 * "#rrggbb" hex (longer digit runs are truncated per component, non-hex
 * digits read as zero, alpha forced opaque), SVG 1.1 color names such as
 * "rebeccapurple", and a decimal packed 0xRRGGBBAA value such as
 * "4278190335". Anything else parses as transparent black.
 */
func ParseColor(value string) Color {
	if value == "" {
		return Color{}
	}

	if value[0] == '#' {
		return NewColorU32(parseHex(value))
	}

	if named, ok := colornames.Map[strings.ToLower(value)]; ok {
		return NewColorRGBA8(named.R, named.G, named.B, named.A)
	}

	packed, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return Color{}
	}
	return NewColorU32(uint32(packed))
}

// U32 packs the color to 0xRRGGBBAA, truncating each channel.
func (c Color) U32() uint32 {
	return uint32(c.R*255.0)<<24 |
		uint32(c.G*255.0)<<16 |
		uint32(c.B*255.0)<<8 |
		uint32(c.A*255.0)
}

// RGBA8 returns the channels as bytes in r, g, b, a order.
func (c Color) RGBA8() (uint8, uint8, uint8, uint8) {
	return uint8(c.R * 255.0), uint8(c.G * 255.0), uint8(c.B * 255.0), uint8(c.A * 255.0)
}

func (c Color) Vec3() math.Vec3 {
	return math.Vec3{X: c.R, Y: c.G, Z: c.B}
}

func (c Color) Vec4() math.Vec4 {
	return math.Vec4{X: c.R, Y: c.G, Z: c.B, W: c.A}
}

// Lerp returns the channel-wise linear interpolation between two colors.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		R: math.Lerp(c.R, other.R, t),
		G: math.Lerp(c.G, other.G, t),
		B: math.Lerp(c.B, other.B, t),
		A: math.Lerp(c.A, other.A, t),
	}
}

func (c Color) MulScalar(scalar float32) Color {
	return Color{R: c.R * scalar, G: c.G * scalar, B: c.B * scalar, A: c.A * scalar}
}

func (c Color) Add(other Color) Color {
	return Color{R: c.R + other.R, G: c.G + other.G, B: c.B + other.B, A: c.A + other.A}
}
