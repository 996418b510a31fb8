package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/primer/internal/infra/fsworkspace"
	"github.com/aalvaropc/primer/internal/ui/tui"
	"github.com/aalvaropc/primer/internal/usecase/basics"
	"github.com/aalvaropc/primer/internal/usecase/directory"
)

func browseCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Pick and run the examples from an interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(g)
			if err != nil {
				return err
			}
			defer ws.close()

			return tui.Run(tuiDeps(ws, g.debug))
		},
	}
}

func tuiDeps(ws *workspaceCtx, debug bool) tui.Deps {
	return tui.Deps{
		WorkspaceRoot:        ws.root,
		WorkspaceFound:       ws.found,
		WorkspaceInitializer: fsworkspace.NewInitializer(),
		Examples:             tuiExamples(ws),
		Logger:               ws.log,
		Debug:                debug,
	}
}

func tuiExamples(ws *workspaceCtx) []tui.Example {
	return []tui.Example{
		{
			Title: "Employee directory",
			Desc:  "Filter and project the employee list",
			Run: func(_ context.Context, w io.Writer) error {
				return runDirectory(w, ws, "", directory.DefaultOptions(), "pretty")
			},
		},
		{
			Title: "Basic functions",
			Desc:  "Add, Concat, IsEven and Greet on literal inputs",
			Run: func(_ context.Context, w io.Writer) error {
				return printExamples(w, basics.Examples(), "pretty")
			},
		},
		{
			Title: "API fetch",
			Desc:  "One GET against " + ws.cfg.Fetch.URL,
			Run: func(ctx context.Context, w io.Writer) error {
				return runFetch(ctx, w, ws, fetchFlags{format: "pretty"}, nil)
			},
		},
	}
}
