package tui

import "time"

type exampleDoneMsg struct {
	title   string
	output  string
	err     error
	elapsed time.Duration
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}
