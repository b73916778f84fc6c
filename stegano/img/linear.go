package img
import (
	"fmt"

	"pixelsteg/stegano/util"
)

/*
 * Linear embedding: one bit per pixel in row-major order.
 * Payloads longer than the cover are cut at the last pixel without
 * an error, callers that need a guarantee check HasCapacity first.
 */
func EmbedBitArray( cover Cover, bits []bool ) (Cover, error) {
	if err := ValidateCover( cover ); err != nil {
		return nil, err
	}
	return embedAlong( cover, RowMajor( cover.Height(), cover.Width() ), bits ), nil
}

// reads length bits; a negative length (or one past the cover) reads every pixel.
func RevealBitArray( cover Cover, length int ) ([]bool, error) {
	if err := ValidateCover( cover ); err != nil {
		return nil, err
	}
	bits := revealAlong( cover, RowMajor( cover.Height(), cover.Width() ) )
	if length >= 0 && length < len(bits) {
		bits = bits[:length]
	}
	return bits, nil
}

/*
 * Raw overlay of a monochrome image: pixel (y, x) of the message goes
 * into pixel (y, x) of the cover. Parts of the message outside the
 * cover are dropped. Not self-describing.
 */
func EmbedBWImage( cover Cover, message Mono ) (Cover, error) {
	if err := ValidateCover( cover ); err != nil {
		return nil, err
	}
	if err := ValidateMono( message ); err != nil {
		return nil, err
	}
	embedded := cover.Clone()
	for y := 0; y < cover.Height() && y < message.Height(); y++ {
		for x := 0; x < cover.Width() && x < message.Width(); x++ {
			embedded[y][x] = EmbedInLSB( cover[y][x], message[y][x] )
		}
	}
	return embedded, nil
}

// reads the top-left height x width window of the LSB plane.
// non-positive dimensions mean the full cover, a larger window is an error.
func RevealBWImage( cover Cover, height, width int ) (Mono, error) {
	if err := ValidateCover( cover ); err != nil {
		return nil, err
	}
	if height > cover.Height() || width > cover.Width() {
		return nil, fmt.Errorf("%w: %dx%d window does not fit a %dx%d cover",
			util.ErrInvalidImage, height, width, cover.Height(), cover.Width())
	}
	if height <= 0 {
		height = cover.Height()
	}
	if width <= 0 {
		width = cover.Width()
	}
	message := NewMono( height, width )
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			message[y][x] = GetLSB( cover[y][x] )
		}
	}
	return message, nil
}
