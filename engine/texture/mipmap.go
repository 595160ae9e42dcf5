package texture

import (
	"github.com/chewxy/math32"
)

/** @brief Gamma used to convert byte channels to linear light for filtering. */
const GAMMA float32 = 2.2

func toLinear(value uint8) float32 {
	return math32.Pow(float32(value)/255.0, GAMMA)
}

func toByte(linear float32) uint8 {
	return uint8(math32.Round(math32.Pow(linear, 1.0/GAMMA) * 255.0))
}

/**
 * @brief Downsamples one rgba8 level into the next by averaging 2x2 blocks.
 * Color channels are averaged in linear light over the samples with non-zero
 * alpha only, so fully transparent texels do not bleed their (usually black)
 * color into the result. Alpha is always averaged over the whole block.
 * When every sample is transparent the destination texel is zero.
 */
func downsampleRGBA8(width, height, pitch uint32, src, dst []uint8) {
	dstWidth := width >> 1
	dstHeight := height >> 1

	if dstWidth > 0 && dstHeight > 0 {
		ystep := pitch * 2
		si := uint32(0)
		di := uint32(0)
		for y := uint32(0); y < dstHeight; y++ {
			pixel := si
			for x := uint32(0); x < dstWidth; x++ {
				var pixels, r, g, b, a float32

				if src[pixel+3] > 0 {
					r += toLinear(src[pixel+0])
					g += toLinear(src[pixel+1])
					b += toLinear(src[pixel+2])
					pixels += 1.0
				}
				a += float32(src[pixel+3])

				if src[pixel+7] > 0 {
					r += toLinear(src[pixel+4])
					g += toLinear(src[pixel+5])
					b += toLinear(src[pixel+6])
					pixels += 1.0
				}
				a += float32(src[pixel+7])

				if src[pixel+pitch+3] > 0 {
					r += toLinear(src[pixel+pitch+0])
					g += toLinear(src[pixel+pitch+1])
					b += toLinear(src[pixel+pitch+2])
					pixels += 1.0
				}
				a += float32(src[pixel+pitch+3])

				if src[pixel+pitch+7] > 0 {
					r += toLinear(src[pixel+pitch+4])
					g += toLinear(src[pixel+pitch+5])
					b += toLinear(src[pixel+pitch+6])
					pixels += 1.0
				}
				a += float32(src[pixel+pitch+7])

				if pixels > 0.0 {
					dst[di+0] = toByte(r / pixels)
					dst[di+1] = toByte(g / pixels)
					dst[di+2] = toByte(b / pixels)
					dst[di+3] = uint8(a * 0.25)
				} else {
					dst[di+0] = 0
					dst[di+1] = 0
					dst[di+2] = 0
					dst[di+3] = 0
				}

				pixel += 8
				di += 4
			}
			si += ystep
		}
	} else if dstHeight > 0 {
		// Single-column texture, average vertical pairs
		ystep := pitch * 2
		si := uint32(0)
		di := uint32(0)
		for y := uint32(0); y < dstHeight; y++ {
			var pixels, r, g, b, a float32

			if src[si+3] > 0 {
				r += toLinear(src[si+0])
				g += toLinear(src[si+1])
				b += toLinear(src[si+2])
				pixels += 1.0
			}
			a += float32(src[si+3])

			if src[si+pitch+3] > 0 {
				r += toLinear(src[si+pitch+0])
				g += toLinear(src[si+pitch+1])
				b += toLinear(src[si+pitch+2])
				pixels += 1.0
			}
			a += float32(src[si+pitch+3])

			if pixels > 0.0 {
				dst[di+0] = toByte(r / pixels)
				dst[di+1] = toByte(g / pixels)
				dst[di+2] = toByte(b / pixels)
				dst[di+3] = uint8(a * 0.5)
			} else {
				dst[di+0] = 0
				dst[di+1] = 0
				dst[di+2] = 0
				dst[di+3] = 0
			}

			si += ystep
			di += 4
		}
	} else if dstWidth > 0 {
		// Single-row texture, average horizontal pairs
		pixel := uint32(0)
		di := uint32(0)
		for x := uint32(0); x < dstWidth; x++ {
			var pixels, r, g, b, a float32

			if src[pixel+3] > 0 {
				r += toLinear(src[pixel+0])
				g += toLinear(src[pixel+1])
				b += toLinear(src[pixel+2])
				pixels += 1.0
			}
			a += float32(src[pixel+3])

			if src[pixel+7] > 0 {
				r += toLinear(src[pixel+4])
				g += toLinear(src[pixel+5])
				b += toLinear(src[pixel+6])
				pixels += 1.0
			}
			a += float32(src[pixel+7])

			if pixels > 0.0 {
				dst[di+0] = toByte(r / pixels)
				dst[di+1] = toByte(g / pixels)
				dst[di+2] = toByte(b / pixels)
				dst[di+3] = uint8(a * 0.5)
			} else {
				dst[di+0] = 0
				dst[di+1] = 0
				dst[di+2] = 0
				dst[di+3] = 0
			}

			pixel += 8
			di += 4
		}
	}
}

/**
 * @brief Downsamples one r8 level into the next, averaging every 2x2 block
 * in linear light.
 */
func downsampleR8(width, height, pitch uint32, src, dst []uint8) {
	dstWidth := width >> 1
	dstHeight := height >> 1

	if dstWidth > 0 && dstHeight > 0 {
		ystep := pitch * 2
		si := uint32(0)
		di := uint32(0)
		for y := uint32(0); y < dstHeight; y++ {
			pixel := si
			for x := uint32(0); x < dstWidth; x++ {
				r := toLinear(src[pixel+0])
				r += toLinear(src[pixel+1])
				r += toLinear(src[pixel+pitch+0])
				r += toLinear(src[pixel+pitch+1])
				r /= 4.0
				dst[di] = toByte(r)

				pixel += 2
				di++
			}
			si += ystep
		}
	} else if dstHeight > 0 {
		ystep := pitch * 2
		si := uint32(0)
		di := uint32(0)
		for y := uint32(0); y < dstHeight; y++ {
			r := toLinear(src[si+0])
			r += toLinear(src[si+pitch+0])
			r /= 2.0
			dst[di] = toByte(r)

			si += ystep
			di++
		}
	} else if dstWidth > 0 {
		pixel := uint32(0)
		di := uint32(0)
		for x := uint32(0); x < dstWidth; x++ {
			r := toLinear(src[pixel+0])
			r += toLinear(src[pixel+1])
			r /= 2.0
			dst[di] = toByte(r)

			pixel += 2
			di++
		}
	}
}

/**
 * @brief Downsamples one a8 level into the next by plain 2x2 averaging.
 * Alpha is coverage, not light, so no gamma conversion is applied.
 */
func downsampleA8(width, height, pitch uint32, src, dst []uint8) {
	dstWidth := width >> 1
	dstHeight := height >> 1

	if dstWidth > 0 && dstHeight > 0 {
		ystep := pitch * 2
		si := uint32(0)
		di := uint32(0)
		for y := uint32(0); y < dstHeight; y++ {
			pixel := si
			for x := uint32(0); x < dstWidth; x++ {
				a := float32(src[pixel+0])
				a += float32(src[pixel+1])
				a += float32(src[pixel+pitch+0])
				a += float32(src[pixel+pitch+1])
				a /= 4.0
				dst[di] = uint8(a)

				pixel += 2
				di++
			}
			si += ystep
		}
	} else if dstHeight > 0 {
		ystep := pitch * 2
		si := uint32(0)
		di := uint32(0)
		for y := uint32(0); y < dstHeight; y++ {
			a := float32(src[si+0])
			a += float32(src[si+pitch+0])
			a /= 2.0
			dst[di] = uint8(a)

			si += ystep
			di++
		}
	} else if dstWidth > 0 {
		pixel := uint32(0)
		di := uint32(0)
		for x := uint32(0); x < dstWidth; x++ {
			a := float32(src[pixel+0])
			a += float32(src[pixel+1])
			a /= 2.0
			dst[di] = uint8(a)

			pixel += 2
			di++
		}
	}
}
