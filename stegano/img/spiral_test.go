package img
import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixelsteg/stegano/util"
)

func TestSpiralScenario( t *testing.T ) {
	cover := NewCover( 4, 4 )
	bits := []bool{ true, false, true, true }

	embedded, err := EmbedSpiralBitArray( cover, bits )
	require.NoError( t, err )

	revealed, err := RevealSpiralBitArray( embedded )
	require.NoError( t, err )
	assert.Len( t, revealed, 16 )
	assert.Equal( t, bits, revealed[:4] )

	// first four cells of the top edge of ring 0
	for x, bit := range bits {
		assert.Equal( t, bit, embedded[0][x].LSB(), "pixel (0,%d)", x )
	}
	for y := 1; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal( t, Pixel(0), embedded[y][x] )
		}
	}
	// the input is never modified
	assert.Equal( t, Pixel(0), cover[0][0] )
}

func TestSpiralBitArray( t *testing.T ) {
	sizes := [][2]int{ { 4, 4 }, { 5, 9 }, { 9, 5 }, { 1, 13 }, { 13, 1 }, { 2, 3 } }
	for _, size := range sizes {
		cover := testCover( size[0], size[1] )
		for _, n := range []int{ 0, 1, Capacity( cover ) / 2, Capacity( cover ) } {
			bits := testBits( n )
			enc, err := EmbedSpiralBitArray( cover, bits )
			if err != nil {
				t.Errorf("Failed to embed %d bits into %v: %v", n, size, err)
				continue
			}
			dec, err := RevealSpiralBitArray( enc )
			if err != nil {
				t.Errorf("Failed to reveal: %v", err)
			} else if equalBits( bits, dec[:n] ) == false {
				t.Errorf("Spiral embedding spoiled the data for %v, %d bits", size, n)
			}
		}
	}
}

func TestSpiralCapacity( t *testing.T ) {
	cover := testCover( 3, 3 )
	enc, err := EmbedSpiralBitArray( cover, testBits( 10 ) )
	assert.True( t, errors.Is( err, util.ErrCapacityExceeded ) )
	assert.Nil( t, enc )
}

func TestSpiralImage( t *testing.T ) {
	tests := []struct{
		coverH, coverW	int
		msgH, msgW	int
	}{
		{ 16, 16, 5, 5 },
		{ 12, 20, 3, 7 },
		{ 20, 12, 7, 3 },
		{ 10, 10, 1, 30 },
		{ 10, 10, 30, 1 },
		{ 9, 9, 1, 1 },
		{ 8, 9, 1, 8 },	// exactly fills the cover
	}
	for _, test := range tests {
		cover := testCover( test.coverH, test.coverW )
		message := testMono( test.msgH, test.msgW )
		enc, err := EmbedImage( cover, message, Spiral )
		if err != nil {
			t.Errorf("Failed to embed %dx%d into %dx%d: %v",
				test.msgH, test.msgW, test.coverH, test.coverW, err)
			continue
		}
		dec, err := RevealImage( enc, Spiral, 0, 0 )
		if err != nil {
			t.Errorf("Failed to reveal image: %v", err)
		} else if message.Equal( dec ) == false {
			t.Errorf("Spiral image spoiled: %dx%d revealed as %dx%d",
				test.msgH, test.msgW, dec.Height(), dec.Width())
		}
	}
}

func TestSpiralImageTooLarge( t *testing.T ) {
	_, err := EmbedSpiralImage( testCover( 8, 8 ), testMono( 1, 1 ) )
	assert.True( t, errors.Is( err, util.ErrCapacityExceeded ), "64 header bits + 1 pixel in 64 cells" )
}

func TestSpiralInvalidCover( t *testing.T ) {
	ragged := Cover{ { 1, 2 }, { 3 } }
	_, err := EmbedSpiralBitArray( ragged, nil )
	assert.True( t, errors.Is( err, util.ErrInvalidImage ) )
	_, err = RevealSpiralBitArray( Cover{} )
	assert.True( t, errors.Is( err, util.ErrInvalidImage ) )
}
