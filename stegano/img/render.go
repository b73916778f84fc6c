package img
import (
	"fmt"
	"image"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	DefaultFontSize = 12.0
	renderDPI = 72
	renderMargin = 2
)

/*
 * Rasterizes text (one line per '\n') with the embedded Go Regular
 * font into a monochrome image: glyph pixels are true, background false.
 */
func RenderText( text string, size float64 ) (Mono, error) {
	if size <= 0 {
		size = DefaultFontSize
	}
	parsed, err := opentype.Parse( goregular.TTF )
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace( parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     renderDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	defer face.Close()

	lines := strings.Split( text, "\n" )
	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()

	width := 1
	for _, line := range lines {
		if w := font.MeasureString( face, line ).Ceil(); w > width {
			width = w
		}
	}
	width += 2 * renderMargin
	height := len(lines) * lineHeight + 2 * renderMargin

	canvas := image.NewGray( image.Rect( 0, 0, width, height ) )
	draw.Draw( canvas, canvas.Bounds(), image.Black, image.Point{}, draw.Src )
	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.White,
		Face: face,
	}
	for i, line := range lines {
		drawer.Dot = fixed.P( renderMargin, renderMargin + ascent + i * lineHeight )
		drawer.DrawString( line )
	}

	return monoFromGray( canvas, 0x7f ), nil
}

func monoFromGray( g *image.Gray, threshold uint8 ) Mono {
	b := g.Bounds()
	m := NewMono( b.Dy(), b.Dx() )
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			m[y][x] = g.GrayAt( b.Min.X + x, b.Min.Y + y ).Y > threshold
		}
	}
	return m
}
