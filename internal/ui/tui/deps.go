package tui

import (
	"context"
	"io"
	"log/slog"

	"github.com/aalvaropc/primer/internal/ports"
)

// Example is one runnable entry of the menu. Run writes what the example
// would print on stdout.
type Example struct {
	Title string
	Desc  string
	Run   func(ctx context.Context, w io.Writer) error
}

type Deps struct {
	WorkspaceRoot        string
	WorkspaceFound       bool
	WorkspaceInitializer ports.WorkspaceInitializer

	Examples []Example

	Logger *slog.Logger
	Debug  bool
}
