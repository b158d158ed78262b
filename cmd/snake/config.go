package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game tuning",
	Long: `Print the tuning the game would use, after the config search order and
the difficulty preset are applied. The output is valid input for --config.

With --difficulty the preset is already baked into the printed values, so a
saved copy must be loaded without --difficulty or the preset applies twice.

Search order:
  --config path -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> built-in

Examples:
  snake config > ~/.snake/configs/snake.yaml
  snake config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runConfig(_ *cobra.Command, _ []string) error {
	return writeConfig(os.Stdout)
}

// writeConfig encodes the effective tuning. A non-default preset is noted in
// a leading comment since its scaling is already in the values.
func writeConfig(w io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	preset, _ := config.ParsePreset(flagDifficulty)
	if preset != config.DifficultyNormal {
		fmt.Fprintf(w, "# difficulty %q is already applied; load without --difficulty\n", preset)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	return enc.Close()
}
