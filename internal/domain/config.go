package domain

import "time"

// DefaultFetchURL is the endpoint used when nothing else is configured.
const DefaultFetchURL = "https://jsonplaceholder.typicode.com/todos/1"

// Config represents the primer configuration loaded from primer.yaml.
type Config struct {
	Fetch     FetchConfig
	Directory DirectoryConfig
	Masking   MaskingConfig
	Paths     PathsConfig
}

type FetchConfig struct {
	URL          string
	Timeout      time.Duration
	MaxBodyBytes int64
}

type DirectoryConfig struct {
	// DataFile is a YAML employee list; empty means the built-in fixture.
	DataFile string
}

type MaskingConfig struct {
	Enabled bool
}

type PathsConfig struct {
	RunsDir string
}

// DefaultConfig provides sane defaults if primer.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Fetch: FetchConfig{
			URL:          DefaultFetchURL,
			Timeout:      30 * time.Second,
			MaxBodyBytes: 256 * 1024,
		},
		Masking: MaskingConfig{Enabled: true},
		Paths: PathsConfig{
			RunsDir: "runs",
		},
	}
}

// WorkspaceSpec describes where a workspace should be created.
type WorkspaceSpec struct {
	Root string
}
