package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/unrocketry/internal/config"
)

var flagConfigResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the tuning file",
	Long: `Print the built-in tuning file. Save it to
~/.unrocketry/configs/rocket.yaml and edit the keys you want to change.

With --resolved, prints the tuning the game would actually use after
--config and --difficulty are applied.

Examples:
  unrocketry config > ~/.unrocketry/configs/rocket.yaml
  unrocketry config --resolved --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigResolved, "resolved", false, "Print the effective tuning instead of the defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagConfigResolved {
		os.Stdout.Write(config.DefaultYAML()) //nolint:errcheck
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		fatal("encoding config: %v", err)
	}
	enc.Close() //nolint:errcheck
}
