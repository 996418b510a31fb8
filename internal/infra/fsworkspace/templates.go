package fsworkspace

import "embed"

// templatesFS holds the files written by Init. The all: prefix keeps
// dotfiles such as .env.example.
//
//go:embed all:templates
var templatesFS embed.FS
