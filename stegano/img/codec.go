package img
import (
	"os"
	"fmt"
	"io"
	"bytes"
	"strings"
	"path/filepath"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/bmp"
	"github.com/xfmoulet/qoi"
)

const (
	PNGFormat = "png"
	BMPFormat = "bmp"
	QOIFormat = "qoi"
	GIFFormat = "gif"
	JPEGFormat = "jpeg"
)

/*
 * Formats a stego cover may be written in. Anything lossy or
 * palette based would not keep the LSB plane intact.
 */
var LosslessFormats = []string{ PNGFormat, BMPFormat, QOIFormat }

func DetectFormat( data []byte ) (string, error) {
	switch {
	case len(data) >= 8 && data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4e &&
		data[3] == 0x47 && data[4] == 0x0d && data[5] == 0x0a &&
		data[6] == 0x1a && data[7] == 0x0a:
		return PNGFormat, nil
	case len(data) >= 3 && data[0] == 0x47 && data[1] == 0x49 && data[2] == 0x46:
		return GIFFormat, nil
	case len(data) >= 3 && data[0] == 0xff && data[1] == 0xd8 && data[2] == 0xff:
		return JPEGFormat, nil
	case len(data) >= 2 && data[0] == 0x42 && data[1] == 0x4d:
		return BMPFormat, nil
	case len(data) >= 4 && string(data[:4]) == "qoif":
		return QOIFormat, nil
	}
	return "", fmt.Errorf("Unsupported image format.")
}

// format name from a file extension, "" if unknown.
func FormatFromPath( path string ) string {
	ext := strings.TrimPrefix( strings.ToLower( filepath.Ext( path ) ), "." )
	switch ext {
	case "png":
		return PNGFormat
	case "bmp":
		return BMPFormat
	case "qoi":
		return QOIFormat
	case "gif":
		return GIFFormat
	case "jpg", "jpeg":
		return JPEGFormat
	}
	return ""
}

func IsLossless( format string ) bool {
	for _, f := range LosslessFormats {
		if f == format {
			return true
		}
	}
	return false
}

func DecodeImage( data []byte ) (image.Image, error) {
	format, err := DetectFormat( data )
	if err != nil {
		return nil, err
	}
	r := bytes.NewReader( data )
	switch format {
	case PNGFormat:
		return png.Decode( r )
	case GIFFormat:
		return gif.Decode( r )
	case JPEGFormat:
		return jpeg.Decode( r )
	case BMPFormat:
		return bmp.Decode( r )
	case QOIFormat:
		return qoi.Decode( r )
	}
	return nil, fmt.Errorf("Unsupported image format.")
}

// packs every pixel as 0xRRGGBB, alpha is dropped.
func FromImage( src image.Image ) Cover {
	bounds := src.Bounds()
	cover := NewCover( bounds.Dy(), bounds.Dx() )
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			c := color.NRGBAModel.Convert( src.At( bounds.Min.X + x, bounds.Min.Y + y ) ).(color.NRGBA)
			cover[y][x] = Pixel( uint32(c.R) << 16 | uint32(c.G) << 8 | uint32(c.B) )
		}
	}
	return cover
}

// opaque NRGBA image, so encoders store the channels untouched.
func ToImage( cover Cover ) *image.NRGBA {
	out := image.NewNRGBA( image.Rect( 0, 0, cover.Width(), cover.Height() ) )
	for y := range cover {
		for x := range cover[y] {
			p := cover[y][x]
			out.SetNRGBA( x, y, color.NRGBA{ uint8(Red(p)), uint8(Green(p)), uint8(Blue(p)), 0xff } )
		}
	}
	return out
}

func DecodeCover( data []byte ) (Cover, error) {
	src, err := DecodeImage( data )
	if err != nil {
		return nil, err
	}
	cover := FromImage( src )
	if err := ValidateCover( cover ); err != nil {
		return nil, err
	}
	return cover, nil
}

func EncodeCover( w io.Writer, cover Cover, format string ) error {
	if err := ValidateCover( cover ); err != nil {
		return err
	}
	out := ToImage( cover )
	switch format {
	case PNGFormat:
		return png.Encode( w, out )
	case BMPFormat:
		return bmp.Encode( w, out )
	case QOIFormat:
		return qoi.Encode( w, out )
	}
	return fmt.Errorf("Format %q would not preserve the LSB plane, use one of %s",
		format, strings.Join( LosslessFormats, ", " ))
}

func LoadCover( path string ) (Cover, error) {
	data, err := os.ReadFile( path )
	if err != nil {
		return nil, err
	}
	return DecodeCover( data )
}

// format is chosen from the extension of path.
func SaveCover( path string, cover Cover ) error {
	buf := new(bytes.Buffer)
	if err := EncodeCover( buf, cover, FormatFromPath( path ) ); err != nil {
		return err
	}
	return os.WriteFile( path, buf.Bytes(), 0660 )
}

func LoadMono( path string, threshold int ) (Mono, error) {
	cover, err := LoadCover( path )
	if err != nil {
		return nil, err
	}
	return ToBW( ToGray( cover ), threshold ), nil
}

func SaveMono( path string, m Mono ) error {
	if err := ValidateMono( m ); err != nil {
		return err
	}
	return SaveCover( path, MonoToRGB( m ) )
}
