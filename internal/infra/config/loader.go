package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/primer/internal/domain"
)

const (
	FileName = "primer.yaml"
	EnvFile  = ".env"
)

// Load resolves the effective configuration for a workspace root:
// defaults, then primer.yaml, then .env, then the process environment.
func Load(root string) (domain.Config, error) {
	cfg, err := LoadFile(filepath.Join(root, FileName))
	if err != nil {
		return cfg, err
	}

	envPath := filepath.Join(root, EnvFile)
	env, err := ReadEnv(envPath)
	if err != nil {
		return cfg, err
	}
	return ApplyEnv(envPath, cfg, env)
}

// LoadFile reads a primer.yaml. A missing file yields the defaults.
func LoadFile(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLFile
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, cfg, dto)
}

// ReadEnv returns the PRIMER_* overrides from a dotenv file merged with
// the process environment. Process values win; a missing file is fine.
func ReadEnv(path string) (map[string]string, error) {
	out := map[string]string{}

	fileVals, err := godotenv.Read(path)
	switch {
	case err == nil:
		for k, v := range fileVals {
			out[k] = v
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, &domain.OpError{
			Op:   "config.read_env",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	for _, k := range []string{EnvFetchURL, EnvFetchTimeout, EnvDirectoryData} {
		if v, ok := os.LookupEnv(k); ok {
			out[k] = v
		}
	}
	return out, nil
}
