package cli

import (
	"fmt"
	"path"

	"github.com/spf13/cobra"

	"github.com/modu-ai/flutter-scaffold/internal/layout"
	"github.com/modu-ai/flutter-scaffold/pkg/models"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts [architecture]",
	Short: "List the lib/ folders created for each architecture",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLayouts,
}

func init() {
	rootCmd.AddCommand(layoutsCmd)
}

func runLayouts(cmd *cobra.Command, args []string) error {
	archs := models.Architectures()
	if len(args) == 1 {
		a, err := models.ParseArchitecture(args[0])
		if err != nil {
			return fmt.Errorf("invalid architecture %q: must be one of: clean, mvvm", args[0])
		}
		archs = []models.Architecture{a}
	}

	out := cmd.OutOrStdout()
	for i, a := range archs {
		if i > 0 {
			_, _ = fmt.Fprintln(out)
		}
		dirs := layout.Directories(a)
		_, _ = fmt.Fprintf(out, "%s %s\n", cliPrimary.Render(a.Label()), cliMuted.Render(fmt.Sprintf("(%s, %d)", a, len(dirs))))
		for _, d := range dirs {
			_, _ = fmt.Fprintf(out, "  %s\n", path.Join(layout.BaseDir, d))
		}
	}
	return nil
}
