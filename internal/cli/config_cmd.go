package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modu-ai/flutter-scaffold/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration after merging built-in defaults, the config
file and FLUTTER_SCAFFOLD_* environment variables.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if deps == nil || deps.Config == nil {
		return fmt.Errorf("dependencies not initialized")
	}

	data, err := config.Marshal(deps.Config)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
