package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/infra/config"
	"github.com/aalvaropc/primer/internal/infra/logger"
	"github.com/aalvaropc/primer/internal/infra/workspacefinder"
	"github.com/aalvaropc/primer/internal/infra/yamldirectory"
	"github.com/aalvaropc/primer/internal/ports"
	"github.com/aalvaropc/primer/internal/usecase/directory"
)

type globalFlags struct {
	debug     bool
	workspace string
}

// workspaceCtx is what every command needs: the resolved root, the effective
// configuration and an open logger.
type workspaceCtx struct {
	root  string
	found bool
	cfg   domain.Config
	log   *slog.Logger

	closeLog func() error
}

func loadWorkspace(g *globalFlags) (*workspaceCtx, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	finder := workspacefinder.NewFinder()
	root, found, err := finder.ResolveRoot(strings.TrimSpace(g.workspace), wd)
	if err != nil {
		return nil, err
	}

	ws := &workspaceCtx{root: root, found: found}

	// Logging is best effort; a read-only directory must not block the examples.
	if cleanup, lerr := logger.Setup(logger.Config{Root: root, Debug: g.debug}); lerr == nil {
		ws.closeLog = cleanup
	}
	ws.log = logger.L()

	cfg, err := config.Load(root)
	if err != nil {
		ws.close()
		return nil, err
	}
	ws.cfg = cfg
	ws.log.Debug("workspace.loaded", "root", root, "found", found, "fetch_url", cfg.Fetch.URL)

	return ws, nil
}

func (ws *workspaceCtx) close() {
	if ws == nil || ws.closeLog == nil {
		return
	}
	_ = ws.closeLog()
	ws.closeLog = nil
}

// employeeSource picks the YAML file when one is configured, otherwise the
// built-in fixture. Relative paths resolve against the workspace root.
func (ws *workspaceCtx) employeeSource(dataFlag string) ports.EmployeeSource {
	p := strings.TrimSpace(dataFlag)
	if p == "" {
		p = ws.cfg.Directory.DataFile
	}
	if p == "" {
		return directory.Fixture{}
	}
	if !filepath.IsAbs(p) {
		if strings.TrimSpace(dataFlag) != "" {
			if abs, err := filepath.Abs(p); err == nil {
				p = abs
			}
		} else {
			p = filepath.Join(ws.root, p)
		}
	}
	return yamldirectory.NewLoader(p)
}
