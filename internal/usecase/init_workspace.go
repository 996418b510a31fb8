package usecase

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/ports"
)

// InitWorkspace seeds primer.yaml, the employee dataset and the .env template.
type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer) *InitWorkspace {
	return &InitWorkspace{initializer: initializer}
}

// Execute creates the workspace at root and returns its absolute path. A blank
// root means the current directory.
func (uc *InitWorkspace) Execute(root string, force bool) (string, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspace.init",
			Kind: domain.KindInvalidConfig,
			Path: root,
			Err:  fmt.Errorf("resolving workspace path: %w", err),
		}
	}
	if err := uc.initializer.Init(domain.WorkspaceSpec{Root: abs}, force); err != nil {
		return "", err
	}
	return abs, nil
}
