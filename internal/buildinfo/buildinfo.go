// Package buildinfo carries version metadata injected with -ldflags.
package buildinfo

import (
	"fmt"
	"runtime"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("primer %s (commit=%s, date=%s, %s)", Version, Commit, Date, runtime.Version())
}
