package cmd
import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"pixelsteg/config"
	"pixelsteg/util"
)

const Version = "0.1.0"

var (
	// shared by subcommands, loaded before any of them runs
	Conf	*config.FullConfig
	Log		*util.Logger

	configFile	string
	verbose		bool
)

var rootCmd = &cobra.Command{
	Use:			"pixelsteg",
	Short:			"Hide text and monochrome images in the LSB plane of color images",
	Version:		Version,
	SilenceUsage:	true,
	PersistentPreRunE: func( cmd *cobra.Command, args []string ) error {
		var err error
		Conf, err = config.LoadConfig( configFile, configRequired( cmd ) )
		if err != nil {
			return fmt.Errorf("Failed to load configuration: %w", err)
		}
		if verbose {
			Conf.Logger.Mode |= util.Info | util.Warning
		}
		Log = util.NewLogger( &Conf.Logger )
		return nil
	},
}

/*
 * Only the implicit default path may be missing. A path given with
 * --config has to exist, except for `config init` which creates it.
 */
func configRequired( cmd *cobra.Command ) bool {
	return cmd.Flags().Changed("config") && cmd != configInitCmd
}

func Execute() {
	// Ctrl+C stops batch runs between covers
	ctx, stop := signal.NotifyContext( context.Background(), os.Interrupt, syscall.SIGTERM )
	defer stop()

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	if err := rootCmd.ExecuteContext( ctx ); err != nil {
		if Log != nil {
			Log.LogError( err )
		}
		fmt.Fprintln( os.Stderr, err )
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP( &configFile, "config", "c", "pixelsteg.yaml",
		"Path to the YAML configuration (defaults are used if the default path does not exist)" )
	rootCmd.PersistentFlags().BoolVarP( &verbose, "verbose", "v", false, "Log informational messages" )
}
