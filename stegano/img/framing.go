package img
import (
	"fmt"
	"pixelsteg/stegano/util"
)

const (
	HeaderFieldSize = 32
	HeaderSize = 2 * HeaderFieldSize	// height, then width
)

/*
 * frame a monochrome image as a self-describing bit sequence:
 * 32 bits of height, 32 bits of width (both LSB first),
 * then the pixels in row-major order.
 */
func ImageToBits( m Mono ) ([]bool, error) {
	if err := ValidateMono( m ); err != nil {
		return nil, err
	}
	height, width := m.Height(), m.Width()
	bits := make( []bool, 0, HeaderSize + height * width )
	bits = append( bits, util.IntToBits( uint64(height), HeaderFieldSize )... )
	bits = append( bits, util.IntToBits( uint64(width), HeaderFieldSize )... )
	for _, row := range m {
		bits = append( bits, row... )
	}
	return bits, nil
}

// inverse of ImageToBits. bits after the declared image are ignored.
func BitsToImage( bits []bool ) (Mono, error) {
	if len(bits) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bits are too few for the image header",
			util.ErrMalformedPayload, len(bits))
	}
	height, err := util.BitsToUint32( bits[:HeaderFieldSize] )
	if err != nil {
		return nil, err
	}
	width, err := util.BitsToUint32( bits[HeaderFieldSize:HeaderSize] )
	if err != nil {
		return nil, err
	}
	if height == 0 || width == 0 {
		return nil, fmt.Errorf("%w: empty %dx%d image declared",
			util.ErrMalformedPayload, height, width)
	}
	// uint64 so that a garbage header can not overflow the product
	available := uint64( len(bits) - HeaderSize )
	if uint64(height) * uint64(width) > available {
		return nil, fmt.Errorf("%w: %dx%d image declared, only %d bits available",
			util.ErrMalformedPayload, height, width, available)
	}

	h, w := int(height), int(width)
	m := NewMono( h, w )
	pixels := bits[HeaderSize:]
	for y := 0; y < h; y++ {
		copy( m[y], pixels[y*w:(y+1)*w] )
	}
	return m, nil
}
