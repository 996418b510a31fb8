package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/ports"
)

// Finder locates a primer workspace root by searching for primer.yaml upward.
type Finder struct {
	ConfigFile string // defaults to "primer.yaml"
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func NewFinder() *Finder {
	return &Finder{ConfigFile: "primer.yaml"}
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		cfgPath := filepath.Join(cur, f.ConfigFile)
		if _, err := os.Stat(cfgPath); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			// Reached filesystem root.
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

// ResolveRoot returns explicit when set, otherwise the workspace found
// from startDir, otherwise startDir itself. The bool reports whether a
// primer.yaml was found.
func (f *Finder) ResolveRoot(explicit, startDir string) (string, bool, error) {
	if explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return "", false, &domain.OpError{
				Op:   "workspacefinder.resolve",
				Kind: domain.KindExecution,
				Path: explicit,
				Err:  err,
			}
		}
		_, statErr := os.Stat(filepath.Join(abs, f.ConfigFile))
		return abs, statErr == nil, nil
	}

	root, err := f.FindRoot(startDir)
	if err == nil {
		return root, true, nil
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		return "", false, err
	}

	abs, absErr := filepath.Abs(startDir)
	if absErr != nil {
		return "", false, err
	}
	return abs, false, nil
}
