package img
import (
	"bytes"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoverFormats( t *testing.T ) {
	cover := testCover( 13, 17 )
	enc, err := EmbedSpiralImage( cover, testMono( 9, 11 ) )
	require.NoError( t, err )

	for _, format := range LosslessFormats {
		buf := new(bytes.Buffer)
		require.NoError( t, EncodeCover( buf, enc, format ), format )

		detected, err := DetectFormat( buf.Bytes() )
		require.NoError( t, err )
		assert.Equal( t, format, detected )

		dec, err := DecodeCover( buf.Bytes() )
		require.NoError( t, err, format )
		assert.Equal( t, enc, dec, "%s must keep every pixel", format )
	}
}

func TestLossyFormatsRefused( t *testing.T ) {
	for _, format := range []string{ JPEGFormat, GIFFormat, "" } {
		err := EncodeCover( new(bytes.Buffer), testCover( 2, 2 ), format )
		assert.Error( t, err, format )
	}
}

func TestDecodeJPEGCover( t *testing.T ) {
	buf := new(bytes.Buffer)
	require.NoError( t, jpeg.Encode( buf, ToImage( testCover( 8, 8 ) ), nil ) )
	cover, err := DecodeCover( buf.Bytes() )
	require.NoError( t, err )
	assert.Equal( t, 8, cover.Height() )
	assert.Equal( t, 8, cover.Width() )
}

func TestUnknownFormat( t *testing.T ) {
	_, err := DecodeCover( []byte("definitely not an image") )
	assert.Error( t, err )
}

func TestSaveLoad( t *testing.T ) {
	dir := t.TempDir()
	cover := testCover( 5, 6 )
	message := testMono( 3, 3 )

	coverPath := filepath.Join( dir, "cover.png" )
	require.NoError( t, SaveCover( coverPath, cover ) )
	loaded, err := LoadCover( coverPath )
	require.NoError( t, err )
	assert.Equal( t, cover, loaded )

	monoPath := filepath.Join( dir, "message.bmp" )
	require.NoError( t, SaveMono( monoPath, message ) )
	mono, err := LoadMono( monoPath, 128 )
	require.NoError( t, err )
	assert.True( t, message.Equal( mono ) )

	assert.Error( t, SaveCover( filepath.Join( dir, "cover.jpg" ), cover ) )
	_, err = os.Stat( filepath.Join( dir, "cover.jpg" ) )
	assert.True( t, os.IsNotExist( err ) )
}

func TestFormatFromPath( t *testing.T ) {
	assert.Equal( t, PNGFormat, FormatFromPath( "a/b/C.PNG" ) )
	assert.Equal( t, JPEGFormat, FormatFromPath( "x.jpg" ) )
	assert.Equal( t, QOIFormat, FormatFromPath( "x.qoi" ) )
	assert.Equal( t, "", FormatFromPath( "x.tiff" ) )
}
