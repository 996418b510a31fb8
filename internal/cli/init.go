package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/primer/internal/infra/fsworkspace"
	"github.com/aalvaropc/primer/internal/infra/logger"
	"github.com/aalvaropc/primer/internal/usecase"
)

func initCmd(g *globalFlags) *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a primer workspace (primer.yaml, data/, .env.example)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target := strings.TrimSpace(path)
			if target == "" {
				target = g.workspace
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			abs, err := uc.Execute(target, force)
			if err != nil {
				return err
			}

			if cleanup, lerr := logger.Setup(logger.Config{Root: abs, Debug: g.debug}); lerr == nil {
				logger.L().Info("workspace.init", "root", abs, "force", force)
				_ = cleanup()
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Workspace ready at %s\n", abs)
			fmt.Fprintln(out, "Next: edit primer.yaml or copy .env.example to .env, then run `primer`.")
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", "", "Directory to initialize (defaults to --workspace or the current directory)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing template files")
	return c
}
