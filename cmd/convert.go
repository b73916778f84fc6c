package cmd
import (
	"fmt"

	"github.com/spf13/cobra"

	"pixelsteg/stegano/img"
)

var (
	convertInput		string
	convertOutput		string
	convertTo			string
	convertThreshold	int
)

var convertCmd = &cobra.Command{
	Use:	"convert",
	Short:	"Convert an image to grayscale or black and white, to prepare payloads",
	RunE: func( cmd *cobra.Command, args []string ) error {
		cover, err := img.LoadCover( convertInput )
		if err != nil {
			return err
		}
		threshold := Conf.Stegano.Threshold
		if cmd.Flags().Changed("threshold") {
			threshold = convertThreshold
		}
		switch convertTo {
		case "gray":
			return img.SaveCover( convertOutput, img.ToGray( cover ) )
		case "bw":
			return img.SaveMono( convertOutput, img.ToBW( img.ToGray( cover ), threshold ) )
		}
		return fmt.Errorf("Unknown conversion %q, use gray or bw", convertTo)
	},
}

func init() {
	convertCmd.Flags().StringVarP( &convertInput, "in", "i", "", "Input image" )
	convertCmd.Flags().StringVarP( &convertOutput, "out", "o", "", "Output image (png, bmp or qoi)" )
	convertCmd.Flags().StringVar( &convertTo, "to", "bw", "Target: gray or bw" )
	convertCmd.Flags().IntVar( &convertThreshold, "threshold", 128,
		"Gray level above which a pixel is white (default from configuration)" )

	convertCmd.MarkFlagRequired("in")
	convertCmd.MarkFlagRequired("out")
	rootCmd.AddCommand( convertCmd )
}
