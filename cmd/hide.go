package cmd
import (
	"fmt"

	"github.com/spf13/cobra"

	"pixelsteg/stegano/img"
	"pixelsteg/stegano/util"
	putil "pixelsteg/util"
)

var (
	hidePayload	payloadOptions
	hideCover	string
	hideOutput	string
	hideMode	string
)

var hideCmd = &cobra.Command{
	Use:	"hide",
	Short:	"Embed a text, a monochrome image or raw bits into a cover image",
	RunE: func( cmd *cobra.Command, args []string ) error {
		return runHide()
	},
}

func init() {
	hideCmd.Flags().StringVarP( &hideCover, "cover", "i", "", "Cover image (png, bmp, qoi, gif, jpeg)" )
	hideCmd.Flags().StringVarP( &hideOutput, "out", "o", "",
		"Output image, format taken from the extension (default: <cover>-steg.<output_format>)" )
	hideCmd.Flags().StringVarP( &hideMode, "mode", "m", "", "Embedding mode: linear or spiral (default from configuration)" )
	hideCmd.Flags().StringVarP( &hidePayload.Text, "text", "t", "", "Text to hide" )
	hideCmd.Flags().StringVar( &hidePayload.TextFile, "text-file", "", "File whose content is hidden as text" )
	hideCmd.Flags().StringVar( &hidePayload.ImagePath, "image", "", "Image converted to black and white and hidden" )
	hideCmd.Flags().StringVar( &hidePayload.Render, "render", "", "Text rendered into a black and white image and hidden" )
	hideCmd.Flags().StringVar( &hidePayload.Bits, "bits", "", "Raw bits to hide, e.g. 0110" )

	hideCmd.MarkFlagRequired("cover")
	rootCmd.AddCommand( hideCmd )
}

func runHide() error {
	if n := hidePayload.count(); n != 1 {
		return fmt.Errorf("Exactly one payload is required, %d given", n)
	}
	mode, err := modeFlag( hideMode )
	if err != nil {
		return err
	}
	cover, err := img.LoadCover( hideCover )
	if err != nil {
		return fmt.Errorf("Failed to load cover %s: %w", hideCover, err)
	}
	if hideOutput == "" {
		hideOutput = putil.OutputName( hideCover, "", Conf.Batch.Suffix, Conf.Stegano.OutputFormat )
	}

	embedded, summary, err := embedPayload( cover, hidePayload, mode )
	if err != nil {
		return err
	}
	if err := img.SaveCover( hideOutput, embedded ); err != nil {
		return fmt.Errorf("Failed to save %s: %w", hideOutput, err)
	}
	Log.LogSuccess( fmt.Sprintf("%s -> %s (%s, %s)", hideCover, hideOutput, mode, summary) )
	fmt.Println(summary)
	return nil
}

/*
 * Places the payload and describes what the reveal side needs
 * to know about it.
 */
func embedPayload( cover img.Cover, p payloadOptions, mode img.Mode ) (img.Cover, string, error) {
	capacity := img.Capacity( cover )

	if text, ok, err := p.text(); ok {
		if err != nil {
			return nil, "", err
		}
		bits := util.TextToBits( text )
		warnTruncation( cover, bits, mode )
		embedded, err := img.EmbedTextMode( cover, text, mode )
		if err != nil {
			return nil, "", err
		}
		chars := len(bits) / util.CharSize
		return embedded, fmt.Sprintf("text: %d characters, %d of %d bits, reveal with --chars %d",
			chars, len(bits), capacity, chars), nil
	}

	if m, ok, err := p.mono(); ok {
		if err != nil {
			return nil, "", err
		}
		embedded, err := img.EmbedImage( cover, m, mode )
		if err != nil {
			return nil, "", err
		}
		if mode == img.Linear {
			return embedded, fmt.Sprintf("image: %dx%d overlay, reveal with --height %d --width %d",
				m.Height(), m.Width(), m.Height(), m.Width()), nil
		}
		return embedded, fmt.Sprintf("image: %dx%d framed, %d of %d bits",
			m.Height(), m.Width(), img.HeaderSize + m.Height() * m.Width(), capacity), nil
	}

	bits, err := parseBits( p.Bits )
	if err != nil {
		return nil, "", err
	}
	warnTruncation( cover, bits, mode )
	embedded, err := img.EmbedBitArrayMode( cover, bits, mode )
	if err != nil {
		return nil, "", err
	}
	return embedded, fmt.Sprintf("bits: %d of %d, reveal with --length %d", len(bits), capacity, len(bits)), nil
}

// linear mode silently drops what does not fit, at least say so in the log.
func warnTruncation( cover img.Cover, bits []bool, mode img.Mode ) {
	if mode == img.Linear && img.HasCapacity( cover, bits ) == false {
		Log.LogWarning( fmt.Sprintf("payload of %d bits is cut to the %d pixels of the cover",
			len(bits), img.Capacity( cover )) )
	}
}
