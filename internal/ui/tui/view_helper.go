package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// renderOutput is the viewport content for a finished example.
func renderOutput(msg exampleDoneMsg) string {
	var b strings.Builder

	out := strings.TrimRight(msg.output, "\n")
	if out == "" {
		out = "(no output)"
	}
	b.WriteString(out)
	b.WriteString("\n")

	if msg.err != nil {
		b.WriteString("\nError: ")
		b.WriteString(msg.err.Error())
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nFinished in %s\n", msg.elapsed.Round(time.Millisecond))
	return b.String()
}
