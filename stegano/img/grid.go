package img
import (
	"fmt"
	"pixelsteg/stegano/util"
)

/*
 * Pixel is an opaque packed color sample. The codec only ever
 * reads or writes bit 0, everything above it is left as is.
 */
type Pixel uint32

func (p Pixel) Value() uint32 {
	return uint32(p)
}

func (p Pixel) LSB() bool {
	return p & 1 == 1
}

func (p Pixel) WithLSB( bit bool ) Pixel {
	if bit {
		return (p & 0xfffffffe) | 1
	}
	return p & 0xfffffffe
}

func EmbedInLSB( value Pixel, bit bool ) Pixel {
	return value.WithLSB( bit )
}

func GetLSB( value Pixel ) bool {
	return value.LSB()
}

// row-major grid of samples, cover[y][x].
type Cover [][]Pixel

// row-major monochrome image, m[y][x].
type Mono [][]bool

func NewCover( height, width int ) Cover {
	c := make( Cover, height )
	for y := range c {
		c[y] = make( []Pixel, width )
	}
	return c
}

func NewMono( height, width int ) Mono {
	m := make( Mono, height )
	for y := range m {
		m[y] = make( []bool, width )
	}
	return m
}

func (c Cover) Height() int {
	return len(c)
}

func (c Cover) Width() int {
	if len(c) == 0 {
		return 0
	}
	return len(c[0])
}

func (c Cover) Clone() Cover {
	out := make( Cover, len(c) )
	for y, row := range c {
		out[y] = make( []Pixel, len(row) )
		copy( out[y], row )
	}
	return out
}

func (m Mono) Height() int {
	return len(m)
}

func (m Mono) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

func (m Mono) Equal( other Mono ) bool {
	if len(m) != len(other) {
		return false
	}
	for y := range m {
		if len(m[y]) != len(other[y]) {
			return false
		}
		for x := range m[y] {
			if m[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

func ValidateCover( c Cover ) error {
	return validate( len(c), func(y int) int { return len(c[y]) } )
}

func ValidateMono( m Mono ) error {
	return validate( len(m), func(y int) int { return len(m[y]) } )
}

func validate( height int, rowLen func(int) int ) error {
	if height == 0 {
		return fmt.Errorf("%w: image has no rows", util.ErrInvalidImage)
	}
	width := rowLen(0)
	if width == 0 {
		return fmt.Errorf("%w: image has no columns", util.ErrInvalidImage)
	}
	for y := 1; y < height; y++ {
		if rowLen(y) != width {
			return fmt.Errorf("%w: row %d has %d pixels, expected %d",
				util.ErrInvalidImage, y, rowLen(y), width)
		}
	}
	return nil
}
