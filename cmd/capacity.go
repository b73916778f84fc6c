package cmd
import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"pixelsteg/stegano/img"
)

var capacityCover string

var capacityCmd = &cobra.Command{
	Use:	"capacity",
	Short:	"Show how much a cover image can carry",
	RunE: func( cmd *cobra.Command, args []string ) error {
		cover, err := img.LoadCover( capacityCover )
		if err != nil {
			return err
		}
		bits := img.Capacity( cover )
		fmt.Printf("cover:       %dx%d\n", cover.Height(), cover.Width())
		fmt.Printf("bits:        %d\n", bits)
		fmt.Printf("characters:  %d\n", img.TextCapacity( cover ))
		side := largestFramedSquare( bits )
		fmt.Printf("spiral image: up to %dx%d\n", side, side)
		return nil
	},
}

func init() {
	capacityCmd.Flags().StringVarP( &capacityCover, "cover", "i", "", "Cover image" )
	capacityCmd.MarkFlagRequired("cover")
	rootCmd.AddCommand( capacityCmd )
}

// biggest n with header + n*n <= bits.
func largestFramedSquare( bits int ) int {
	if bits <= img.HeaderSize {
		return 0
	}
	free := bits - img.HeaderSize
	n := int( math.Sqrt( float64(free) ) )
	for n * n > free {
		n--
	}
	for (n + 1) * (n + 1) <= free {
		n++
	}
	return n
}
