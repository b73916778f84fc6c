package cmd
import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"pixelsteg/config"
)

var configCmd = &cobra.Command{
	Use:	"config",
	Short:	"Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:	"init",
	Short:	"Write the default configuration to --config",
	RunE: func( cmd *cobra.Command, args []string ) error {
		if _, err := os.Stat( configFile ); err == nil {
			return fmt.Errorf("%s already exists", configFile)
		}
		if err := config.SaveConfig( configFile, config.DefaultConfig() ); err != nil {
			return err
		}
		fmt.Println("configuration written to", configFile)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:	"show",
	Short:	"Print the configuration in effect",
	RunE: func( cmd *cobra.Command, args []string ) error {
		data, err := yaml.Marshal( Conf )
		if err != nil {
			return err
		}
		fmt.Print( string(data) )
		return nil
	},
}

func init() {
	configCmd.AddCommand( configInitCmd )
	configCmd.AddCommand( configShowCmd )
	rootCmd.AddCommand( configCmd )
}
