package cmd
import (
	"context"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"pixelsteg/batch"
	"pixelsteg/stegano/img"
)

var (
	batchFolder		string
	batchOutDir		string
	batchMode		string
	batchWorkers	int
	batchPayload	payloadOptions
)

var batchCmd = &cobra.Command{
	Use:	"batch",
	Short:	"Hide the same payload in every cover of a folder",
	RunE: func( cmd *cobra.Command, args []string ) error {
		return runBatch( cmd.Context() )
	},
}

func init() {
	batchCmd.Flags().StringVarP( &batchFolder, "folder", "f", "", "Folder with cover images" )
	batchCmd.Flags().StringVarP( &batchOutDir, "out", "o", "", "Output folder (default: next to the covers)" )
	batchCmd.Flags().StringVarP( &batchMode, "mode", "m", "", "Embedding mode: linear or spiral (default from configuration)" )
	batchCmd.Flags().IntVarP( &batchWorkers, "workers", "w", 0, "Number of parallel workers (default from configuration)" )
	batchCmd.Flags().StringVarP( &batchPayload.Text, "text", "t", "", "Text to hide" )
	batchCmd.Flags().StringVar( &batchPayload.TextFile, "text-file", "", "File whose content is hidden as text" )
	batchCmd.Flags().StringVar( &batchPayload.ImagePath, "image", "", "Image converted to black and white and hidden" )
	batchCmd.Flags().StringVar( &batchPayload.Render, "render", "", "Text rendered into a black and white image and hidden" )
	batchCmd.Flags().StringVar( &batchPayload.Bits, "bits", "", "Raw bits to hide" )

	batchCmd.MarkFlagRequired("folder")
	rootCmd.AddCommand( batchCmd )
}

func runBatch( ctx context.Context ) error {
	if n := batchPayload.count(); n != 1 {
		return fmt.Errorf("Exactly one payload is required, %d given", n)
	}
	mode, err := modeFlag( batchMode )
	if err != nil {
		return err
	}
	workers := Conf.Batch.Workers
	if batchWorkers > 0 {
		workers = batchWorkers
	}
	if batchOutDir != "" {
		if err := os.MkdirAll( batchOutDir, 0770 ); err != nil {
			return err
		}
	}

	jobs, err := batch.Plan( batchFolder, batchOutDir, Conf.Batch.Extensions, Conf.Batch.Suffix, Conf.Stegano.OutputFormat )
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		Log.LogWarning( fmt.Sprintf("no covers found in %s", batchFolder) )
		return nil
	}

	bar := progressbar.NewOptions( len(jobs),
		progressbar.OptionSetDescription("Embedding"),
		progressbar.OptionSetWriter( os.Stderr ),
		progressbar.OptionShowCount(),
	)

	embed := func( ctx context.Context, job batch.Job ) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		cover, err := img.LoadCover( job.Input )
		if err != nil {
			return err
		}
		embedded, _, err := embedPayload( cover, batchPayload, mode )
		if err != nil {
			return err
		}
		return img.SaveCover( job.Output, embedded )
	}
	report := func( r batch.Result ) {
		bar.Add(1)
		if r.Err != nil {
			Log.LogError( fmt.Errorf("%s: %w", r.Job.Input, r.Err) )
		} else {
			Log.LogInfo( fmt.Sprintf("%s -> %s", r.Job.Input, r.Job.Output) )
		}
	}

	results := batch.Run( ctx, jobs, workers, embed, report )
	bar.Finish()
	fmt.Fprintln( os.Stderr )

	if failed := batch.Failed( results ); len(failed) > 0 {
		return fmt.Errorf("%d of %d covers failed", len(failed), len(results))
	}
	return nil
}
