package tui

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

const crashLogHint = "details in .primer/logs/primer.log"

// safeModel wraps the example runner so a panic in Update or View lands the
// user back on the menu instead of killing the alt screen.
type safeModel struct {
	m   model
	log *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) Update(msg tea.Msg) (tm tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			tm, cmd = s.crashed("update", r), nil
		}
	}()

	inner, c := s.m.Update(msg)
	switch next := inner.(type) {
	case model:
		s.m = next
	case safeModel:
		s = next
	}
	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("tui.panic", "where", "view", "example", s.m.active, "panic", fmt.Sprint(r))
			out = "primer hit an unexpected error; " + crashLogHint
		}
	}()
	return s.m.View()
}

// crashed logs the panic and returns to the menu, naming the example that was
// on screen when it happened.
func (s safeModel) crashed(where string, r any) safeModel {
	s.log.Error("tui.panic",
		"where", where,
		"example", s.m.active,
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)

	toast := "Unexpected error; " + crashLogHint
	if s.m.active != "" {
		toast = fmt.Sprintf("%s crashed; %s", s.m.active, crashLogHint)
	}

	s.m.scr = screenHome
	s.m.running = false
	s.m.active = ""
	s.m.failed = true
	s.m.toast = toast
	return s
}

var _ tea.Model = (*safeModel)(nil)
