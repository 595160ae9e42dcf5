package texture

import "fmt"

/** @brief Filter used when a sample lands between texels. */
type Filter int

const (
	/** @brief Nearest texel wins. */
	FilterPoint Filter = iota
	/** @brief Weighted average of the 2x2 texel neighborhood. */
	FilterLinear
)

/** @brief How texture coordinates outside [0, 1] are remapped. */
type AddressMode int

const (
	/** @brief Coordinates are clamped to the edge texels. */
	AddressClamp AddressMode = iota
	/** @brief Coordinates wrap, tiling the texture. */
	AddressRepeat
	/** @brief Coordinates reflect back and forth between the edges. */
	AddressMirror
)

/**
 * @brief Sampling state applied when reading a texture: the filter and the
 * address mode per axis. The zero value is point filtering with clamping on
 * both axes.
 */
type Sampler struct {
	Filter       Filter
	AddressModeX AddressMode
	AddressModeY AddressMode
}

func NewSampler(filter Filter, addressModeX, addressModeY AddressMode) *Sampler {
	return &Sampler{
		Filter:       filter,
		AddressModeX: addressModeX,
		AddressModeY: addressModeY,
	}
}

// ParseFilter converts a configuration string to a filter.
func ParseFilter(value string) (Filter, error) {
	switch value {
	case "point":
		return FilterPoint, nil
	case "linear":
		return FilterLinear, nil
	default:
		return FilterPoint, fmt.Errorf("unknown filter '%s'", value)
	}
}

// ParseAddressMode converts a configuration string to an address mode.
func ParseAddressMode(value string) (AddressMode, error) {
	switch value {
	case "clamp":
		return AddressClamp, nil
	case "repeat":
		return AddressRepeat, nil
	case "mirror":
		return AddressMirror, nil
	default:
		return AddressClamp, fmt.Errorf("unknown address mode '%s'", value)
	}
}

func (f Filter) String() string {
	switch f {
	case FilterPoint:
		return "point"
	case FilterLinear:
		return "linear"
	default:
		return "unknown"
	}
}

func (am AddressMode) String() string {
	switch am {
	case AddressClamp:
		return "clamp"
	case AddressRepeat:
		return "repeat"
	case AddressMirror:
		return "mirror"
	default:
		return "unknown"
	}
}
