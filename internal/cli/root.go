package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/primer/internal/usecase/basics"
	"github.com/aalvaropc/primer/internal/usecase/directory"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:          "primer",
		Short:        "primer runs three small Go examples: a directory query, basic functions and an API fetch",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(g)
			if err != nil {
				return err
			}
			defer ws.close()

			return runAll(cmd.Context(), cmd.OutOrStdout(), ws)
		},
	}

	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable verbose logging to .primer/logs/primer.log")
	cmd.PersistentFlags().StringVarP(&g.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")

	cmd.AddCommand(
		directoryCmd(g),
		functionsCmd(g),
		fetchCmd(g),
		initCmd(g),
		browseCmd(g),
		versionCmd(),
	)
	return cmd
}

// runAll prints the three examples in their classic order.
func runAll(ctx context.Context, w io.Writer, ws *workspaceCtx) error {
	fmt.Fprintln(w, "=== Employee Directory ===")
	if err := runDirectory(w, ws, "", directory.DefaultOptions(), "pretty"); err != nil {
		return err
	}

	fmt.Fprintln(w, "\n=== Basic Functions ===")
	if err := printExamples(w, basics.Examples(), "pretty"); err != nil {
		return err
	}

	fmt.Fprintln(w, "\n=== API Fetch ===")
	return runFetch(ctx, w, ws, fetchFlags{format: "pretty"}, nil)
}
