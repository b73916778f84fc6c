package util
import (
	"fmt"
	"golang.org/x/text/encoding/unicode"
)

const (
	CharSize = 16	// bits per UTF-16 code unit
	MaxIntBits = 64
)

// little endian without BOM: byte k of a code unit holds bits 8k..8k+7,
// so reading bytes LSB-first yields the 16-bit group LSB-first.
var utf16le = unicode.UTF16( unicode.LittleEndian, unicode.IgnoreBOM )

/*
 * transform integers from/to binary form.
 * bit i of the result is (value >> i) & 1.
 */
func IntToBits( value uint64, width int ) []bool {
	if width < 0 {
		width = 0
	}
	if width > MaxIntBits {
		width = MaxIntBits
	}
	result := make( []bool, width )
	for i := 0; i < width; i++ {
		result[i] = (value >> uint(i)) & 1 == 1
	}
	return result
}

func BitsToInt( bits []bool ) (uint64, error) {
	if len(bits) > MaxIntBits {
		return 0, fmt.Errorf("%w: %d bits do not fit in %d", ErrOverflow, len(bits), MaxIntBits)
	}
	value := uint64(0)
	for i := len(bits) - 1; i >= 0; i-- {
		value *= 2
		if bits[i] {
			value += 1
		}
	}
	return value, nil
}

// same as BitsToInt, but for 32-bit header fields.
func BitsToUint32( bits []bool ) (uint32, error) {
	if len(bits) > 32 {
		return 0, fmt.Errorf("%w: %d bits do not fit in 32", ErrOverflow, len(bits))
	}
	v, err := BitsToInt( bits )
	return uint32(v), err
}

/*
 * every character (UTF-16 code unit) takes exactly CharSize bits.
 */
func TextToBits( text string ) []bool {
	// invalid UTF-8 is replaced with U+FFFD by the encoder, it never fails.
	encoded, _ := utf16le.NewEncoder().String( text )
	result := make( []bool, 0, len(encoded) * 8 )
	for i := 0; i < len(encoded); i++ {
		result = append( result, IntToBits( uint64(encoded[i]), 8 )... )
	}
	return result
}

func BitsToText( bits []bool ) (string, error) {
	if len(bits) % CharSize != 0 {
		return "", fmt.Errorf("%w: %d bits is not a multiple of %d", ErrMalformedPayload, len(bits), CharSize)
	}
	raw := make( []byte, 0, len(bits) / 8 )
	for i := 0; i < len(bits); i += CharSize {
		unit, err := BitsToInt( bits[i:i+CharSize] )
		if err != nil {
			return "", err
		}
		raw = append( raw, byte(unit), byte(unit >> 8) )
	}
	decoded, err := utf16le.NewDecoder().Bytes( raw )
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrMalformedPayload, err.Error())
	}
	return string(decoded), nil
}

// number of characters TextToBits produces for text.
func TextLength( text string ) int {
	return len( TextToBits( text ) ) / CharSize
}
