package cmd
import (
	"fmt"
	"os"
	"strings"

	"pixelsteg/stegano/img"
)

// mutually exclusive ways to give a payload on the command line.
type payloadOptions struct {
	Text		string
	TextFile	string
	ImagePath	string
	Render		string
	Bits		string
}

func (p payloadOptions) count() int {
	n := 0
	for _, v := range []string{ p.Text, p.TextFile, p.ImagePath, p.Render, p.Bits } {
		if v != "" {
			n++
		}
	}
	return n
}

func (p payloadOptions) text() (string, bool, error) {
	if p.Text != "" {
		return p.Text, true, nil
	}
	if p.TextFile != "" {
		data, err := os.ReadFile( p.TextFile )
		if err != nil {
			return "", true, err
		}
		return string(data), true, nil
	}
	return "", false, nil
}

func (p payloadOptions) mono() (img.Mono, bool, error) {
	if p.ImagePath != "" {
		m, err := img.LoadMono( p.ImagePath, Conf.Stegano.Threshold )
		return m, true, err
	}
	if p.Render != "" {
		m, err := img.RenderText( p.Render, Conf.Stegano.FontSize )
		return m, true, err
	}
	return nil, false, nil
}

// reads a string of 0 and 1, blanks and underscores are ignored.
func parseBits( s string ) ([]bool, error) {
	bits := []bool{}
	for i, r := range s {
		switch r {
		case '0':
			bits = append( bits, false )
		case '1':
			bits = append( bits, true )
		case ' ', '_', '\t', '\n':
		default:
			return nil, fmt.Errorf("Invalid bit %q at position %d", r, i)
		}
	}
	return bits, nil
}

func formatBits( bits []bool ) string {
	var sb strings.Builder
	for _, b := range bits {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// empty flag means the configured mode.
func modeFlag( flag string ) (img.Mode, error) {
	if flag == "" {
		flag = Conf.Stegano.Mode
	}
	return img.ParseMode( flag )
}
