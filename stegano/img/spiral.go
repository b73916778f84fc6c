package img
import (
	"image"
)

/*
 * Spiral embedding walks concentric rings from the border inwards.
 * Unlike the linear mode it refuses payloads larger than the cover.
 */
func EmbedSpiralBitArray( cover Cover, bits []bool ) (Cover, error) {
	if err := ValidateCover( cover ); err != nil {
		return nil, err
	}
	if err := checkCapacity( cover, bits ); err != nil {
		return nil, err
	}
	return embedAlong( cover, SpiralOrder( cover.Height(), cover.Width() ), bits ), nil
}

// always returns height*width bits; the caller knows the real payload length.
func RevealSpiralBitArray( cover Cover ) ([]bool, error) {
	if err := ValidateCover( cover ); err != nil {
		return nil, err
	}
	return revealAlong( cover, SpiralOrder( cover.Height(), cover.Width() ) ), nil
}

func EmbedSpiralImage( cover Cover, message Mono ) (Cover, error) {
	bits, err := ImageToBits( message )
	if err != nil {
		return nil, err
	}
	return EmbedSpiralBitArray( cover, bits )
}

func RevealSpiralImage( cover Cover ) (Mono, error) {
	bits, err := RevealSpiralBitArray( cover )
	if err != nil {
		return nil, err
	}
	return BitsToImage( bits )
}

// copy the cover and put bits[k] into the LSB of the k-th visited pixel.
func embedAlong( cover Cover, order []image.Point, bits []bool ) Cover {
	embedded := cover.Clone()
	for k, p := range order {
		if k >= len(bits) {
			break
		}
		embedded[p.Y][p.X] = EmbedInLSB( cover[p.Y][p.X], bits[k] )
	}
	return embedded
}

func revealAlong( cover Cover, order []image.Point ) []bool {
	bits := make( []bool, len(order) )
	for k, p := range order {
		bits[k] = GetLSB( cover[p.Y][p.X] )
	}
	return bits
}
