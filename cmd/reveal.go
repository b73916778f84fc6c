package cmd
import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pixelsteg/stegano/img"
)

var (
	revealCover		string
	revealAs		string
	revealOutput	string
	revealMode		string
	revealChars		int
	revealLength	int
	revealHeight	int
	revealWidth		int
)

var revealCmd = &cobra.Command{
	Use:	"reveal",
	Short:	"Extract a text, a monochrome image or raw bits from a stego image",
	RunE: func( cmd *cobra.Command, args []string ) error {
		return runReveal()
	},
}

func init() {
	revealCmd.Flags().StringVarP( &revealCover, "cover", "i", "", "Stego image" )
	revealCmd.Flags().StringVarP( &revealAs, "as", "a", "text", "Payload kind: text, image or bits" )
	revealCmd.Flags().StringVarP( &revealOutput, "out", "o", "", "Output file (required for images, stdout otherwise)" )
	revealCmd.Flags().StringVarP( &revealMode, "mode", "m", "", "Embedding mode: linear or spiral (default from configuration)" )
	revealCmd.Flags().IntVar( &revealChars, "chars", -1, "Number of characters of the hidden text (-1 reads the whole cover)" )
	revealCmd.Flags().IntVar( &revealLength, "length", -1, "Number of hidden bits (-1 reads the whole cover)" )
	revealCmd.Flags().IntVar( &revealHeight, "height", 0, "Height of an image hidden in linear mode" )
	revealCmd.Flags().IntVar( &revealWidth, "width", 0, "Width of an image hidden in linear mode" )

	revealCmd.MarkFlagRequired("cover")
	rootCmd.AddCommand( revealCmd )
}

func runReveal() error {
	mode, err := modeFlag( revealMode )
	if err != nil {
		return err
	}
	cover, err := img.LoadCover( revealCover )
	if err != nil {
		return fmt.Errorf("Failed to load %s: %w", revealCover, err)
	}

	switch revealAs {
	case "text":
		text, err := img.RevealTextMode( cover, revealChars, mode )
		if err != nil {
			return err
		}
		return writeOutput( []byte(text) )
	case "bits":
		bits, err := img.RevealBitArrayMode( cover, mode, revealLength )
		if err != nil {
			return err
		}
		return writeOutput( []byte(formatBits( bits ) + "\n") )
	case "image":
		if revealOutput == "" {
			return fmt.Errorf("--out is required to reveal an image")
		}
		m, err := img.RevealImage( cover, mode, revealHeight, revealWidth )
		if err != nil {
			return err
		}
		if err := img.SaveMono( revealOutput, m ); err != nil {
			return err
		}
		Log.LogSuccess( fmt.Sprintf("revealed %dx%d image into %s", m.Height(), m.Width(), revealOutput) )
		return nil
	}
	return fmt.Errorf("Unknown payload kind %q, use text, image or bits", revealAs)
}

func writeOutput( data []byte ) error {
	if revealOutput == "" {
		_, err := os.Stdout.Write( data )
		return err
	}
	return os.WriteFile( revealOutput, data, 0600 )
}
