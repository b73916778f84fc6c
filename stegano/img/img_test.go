package img
import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixelsteg/stegano/util"
)

func TestText( t *testing.T ) {
	cover := testCover( 40, 30 )
	tests := []string{
		"",
		"Hello world!",
		"Grüße, мир",
		strings.Repeat( "a", TextCapacity( cover ) ),
	}
	modes := []Mode{ Linear, Spiral }
	for _, text := range tests {
		for _, mode := range modes {
			enc, err := EmbedTextMode( cover, text, mode )
			if err != nil {
				t.Errorf("Failed to encode text (%s): %v", mode, err)
				continue
			}
			dec, err := RevealTextMode( enc, util.TextLength( text ), mode )
			if err != nil {
				t.Errorf("Failed to reveal text (%s): %v", mode, err)
			} else if dec != text {
				t.Errorf("Steganography spoiled the text (%s). %q != %q", mode, text, dec)
			}
		}
	}
}

func TestTextDefaultsToLinear( t *testing.T ) {
	cover := testCover( 8, 8 )
	enc, err := EmbedText( cover, "hey" )
	require.NoError( t, err )
	dec, err := RevealText( enc, 3 )
	require.NoError( t, err )
	assert.Equal( t, "hey", dec )

	all, err := RevealText( enc, -1 )
	require.NoError( t, err )
	assert.Len( t, []rune(all), TextCapacity( cover ) )
	assert.True( t, strings.HasPrefix( all, "hey" ) )
}

func TestRevealTextTooLong( t *testing.T ) {
	cover := testCover( 4, 4 )	// one character
	for _, chars := range []int{ 2, 1 << 40, 1 << 62, math.MaxInt } {
		_, err := RevealText( cover, chars )
		assert.True( t, errors.Is( err, util.ErrMalformedPayload ), "chars %d", chars )
	}
	_, err := RevealTextMode( NewCover( 2, 2 ), 1 << 62, Linear )
	assert.True( t, errors.Is( err, util.ErrMalformedPayload ) )
}

func TestBitArrayModes( t *testing.T ) {
	cover := testCover( 7, 11 )
	bits := testBits( 50 )
	for _, mode := range []Mode{ Linear, Spiral } {
		enc, err := EmbedBitArrayMode( cover, bits, mode )
		require.NoError( t, err )
		dec, err := RevealBitArrayMode( enc, mode, len(bits) )
		require.NoError( t, err )
		assert.Equal( t, bits, dec, "mode %s", mode )
	}
}

func TestCrossModeDiffers( t *testing.T ) {
	cover := NewCover( 4, 4 )
	// the 5th cell is (y=1, x=0) linearly and (y=1, x=3) in the spiral
	bits := []bool{ false, false, false, false, true }
	enc, err := EmbedBitArrayMode( cover, bits, Linear )
	require.NoError( t, err )
	dec, err := RevealBitArrayMode( enc, Spiral, len(bits) )
	require.NoError( t, err )
	assert.NotEqual( t, bits, dec )
}

func TestLinearImageMode( t *testing.T ) {
	cover := testCover( 6, 6 )
	message := testMono( 4, 5 )
	enc, err := EmbedImage( cover, message, Linear )
	require.NoError( t, err )
	dec, err := RevealImage( enc, Linear, 4, 5 )
	require.NoError( t, err )
	assert.True( t, message.Equal( dec ) )
}

func TestCapacityHelpers( t *testing.T ) {
	cover := testCover( 10, 10 )
	assert.Equal( t, 100, Capacity( cover ) )
	assert.Equal( t, 6, TextCapacity( cover ) )
	assert.True( t, HasCapacity( cover, testBits( 100 ) ) )
	assert.False( t, HasCapacity( cover, testBits( 101 ) ) )
	assert.True( t, ImageFits( cover, testMono( 6, 6 ) ) )
	assert.False( t, ImageFits( cover, testMono( 7, 6 ) ) )
}

func TestParseMode( t *testing.T ) {
	for _, mode := range []Mode{ Linear, Spiral } {
		parsed, err := ParseMode( mode.String() )
		require.NoError( t, err )
		assert.Equal( t, mode, parsed )
	}
	parsed, err := ParseMode( " Spiral " )
	require.NoError( t, err )
	assert.Equal( t, Spiral, parsed )
	_, err = ParseMode( "zigzag" )
	assert.Error( t, err )
	_, err = EmbedBitArrayMode( testCover( 2, 2 ), nil, Mode(7) )
	assert.Error( t, err )
}
