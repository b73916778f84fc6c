package img
import (
	"fmt"
	"strings"
	"pixelsteg/stegano/util"
)

type Mode uint8

const (
	Linear = Mode(0)
	Spiral = Mode(1)
)

func (m Mode) String() string {
	switch m {
	case Linear:
		return "linear"
	case Spiral:
		return "spiral"
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

func ParseMode( s string ) (Mode, error) {
	switch strings.ToLower( strings.TrimSpace( s ) ) {
	case "linear", "":
		return Linear, nil
	case "spiral":
		return Spiral, nil
	}
	return Linear, fmt.Errorf("Unknown embedding mode %q", s)
}

/*
 * bit array level, no framing: the caller keeps track of the length.
 */
func EmbedBitArrayMode( cover Cover, bits []bool, mode Mode ) (Cover, error) {
	switch mode {
	case Linear:
		return EmbedBitArray( cover, bits )
	case Spiral:
		return EmbedSpiralBitArray( cover, bits )
	}
	return nil, fmt.Errorf("Unsupported embedding mode %s", mode)
}

// a negative length returns every bit of the cover.
func RevealBitArrayMode( cover Cover, mode Mode, length int ) ([]bool, error) {
	switch mode {
	case Linear:
		return RevealBitArray( cover, length )
	case Spiral:
		bits, err := RevealSpiralBitArray( cover )
		if err != nil {
			return nil, err
		}
		if length >= 0 && length < len(bits) {
			bits = bits[:length]
		}
		return bits, nil
	}
	return nil, fmt.Errorf("Unsupported embedding mode %s", mode)
}

/*
 * text, CharSize bits per character. Text carries no terminator,
 * so revealing needs the number of characters to stop at.
 */
func EmbedText( cover Cover, text string ) (Cover, error) {
	return EmbedTextMode( cover, text, Linear )
}

func EmbedTextMode( cover Cover, text string, mode Mode ) (Cover, error) {
	return EmbedBitArrayMode( cover, util.TextToBits( text ), mode )
}

// chars < 0 decodes every complete character in the cover,
// the trailing bits of an incomplete one are dropped.
func RevealText( cover Cover, chars int ) (string, error) {
	return RevealTextMode( cover, chars, Linear )
}

func RevealTextMode( cover Cover, chars int, mode Mode ) (string, error) {
	length := -1
	if chars >= 0 {
		if err := ValidateCover( cover ); err != nil {
			return "", err
		}
		if chars > TextCapacity( cover ) {
			return "", fmt.Errorf("%w: %d characters requested, cover holds %d",
				util.ErrMalformedPayload, chars, TextCapacity( cover ))
		}
		length = chars * util.CharSize
	}
	bits, err := RevealBitArrayMode( cover, mode, length )
	if err != nil {
		return "", err
	}
	bits = bits[:len(bits) - len(bits) % util.CharSize]
	return util.BitsToText( bits )
}

/*
 * monochrome images. Spiral mode frames the image so reveal finds
 * its size by itself, linear mode is a raw overlay and reveal needs
 * height and width from the caller.
 */
func EmbedImage( cover Cover, message Mono, mode Mode ) (Cover, error) {
	switch mode {
	case Linear:
		return EmbedBWImage( cover, message )
	case Spiral:
		return EmbedSpiralImage( cover, message )
	}
	return nil, fmt.Errorf("Unsupported embedding mode %s", mode)
}

// height and width are only used in linear mode.
func RevealImage( cover Cover, mode Mode, height, width int ) (Mono, error) {
	switch mode {
	case Linear:
		return RevealBWImage( cover, height, width )
	case Spiral:
		return RevealSpiralImage( cover )
	}
	return nil, fmt.Errorf("Unsupported embedding mode %s", mode)
}
