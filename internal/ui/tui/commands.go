package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/primer/internal/domain"
)

func cmdRunExample(ex Example, log *slog.Logger) tea.Cmd {
	return func() (msg tea.Msg) {
		var buf bytes.Buffer
		start := time.Now()

		defer func() {
			if r := recover(); r != nil {
				log.Error("panic.recovered",
					"where", "tui.example",
					"example", ex.Title,
					"panic", fmt.Sprint(r),
					"stack", string(debug.Stack()),
				)
				msg = exampleDoneMsg{
					title:   ex.Title,
					output:  buf.String(),
					err:     fmt.Errorf("example panicked: %v", r),
					elapsed: time.Since(start),
				}
			}
		}()

		if ex.Run == nil {
			return exampleDoneMsg{title: ex.Title, err: errors.New("example has no runner")}
		}

		log.Info("tui.example.start", "example", ex.Title)
		err := ex.Run(context.Background(), &buf)
		elapsed := time.Since(start)
		if err != nil {
			log.Warn("tui.example.failed", "example", ex.Title, "error", err.Error())
		} else {
			log.Info("tui.example.done", "example", ex.Title, "elapsed_ms", elapsed.Milliseconds())
		}

		return exampleDoneMsg{title: ex.Title, output: buf.String(), err: err, elapsed: elapsed}
	}
}

func cmdInitWorkspace(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := deps.WorkspaceInitializer.Init(domain.WorkspaceSpec{Root: root}, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}
