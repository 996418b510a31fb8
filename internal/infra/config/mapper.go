package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/aalvaropc/primer/internal/domain"
)

// MapConfig applies the parsed file on top of base.
func MapConfig(path string, base domain.Config, y YAMLFile) (domain.Config, error) {
	cfg := base
	p := y.Primer

	if u := strings.TrimSpace(p.Fetch.URL); u != "" {
		cfg.Fetch.URL = u
	}
	if strings.TrimSpace(p.Fetch.Timeout) != "" {
		d, err := parseTimeout(p.Fetch.Timeout)
		if err != nil {
			return base, invalidField(path, "primer.fetch.timeout", err.Error())
		}
		cfg.Fetch.Timeout = d
	}
	if p.Fetch.MaxBodyBytes != nil {
		if *p.Fetch.MaxBodyBytes <= 0 {
			return base, invalidField(path, "primer.fetch.max_body_bytes", "must be positive")
		}
		cfg.Fetch.MaxBodyBytes = *p.Fetch.MaxBodyBytes
	}
	if d := strings.TrimSpace(p.Directory.Data); d != "" {
		cfg.Directory.DataFile = d
	}
	if p.Masking.Enabled != nil {
		cfg.Masking.Enabled = *p.Masking.Enabled
	}
	if r := strings.TrimSpace(p.Paths.RunsDir); r != "" {
		cfg.Paths.RunsDir = r
	}

	return cfg, nil
}

// Environment keys that override primer.yaml.
const (
	EnvFetchURL      = "PRIMER_FETCH_URL"
	EnvFetchTimeout  = "PRIMER_FETCH_TIMEOUT"
	EnvDirectoryData = "PRIMER_DIRECTORY_DATA"
)

// ApplyEnv overlays environment overrides on cfg. source names where the
// values came from and only appears in errors.
func ApplyEnv(source string, cfg domain.Config, env map[string]string) (domain.Config, error) {
	out := cfg
	if v := strings.TrimSpace(env[EnvFetchURL]); v != "" {
		out.Fetch.URL = v
	}
	if v := strings.TrimSpace(env[EnvFetchTimeout]); v != "" {
		d, err := parseTimeout(v)
		if err != nil {
			return cfg, invalidField(source, EnvFetchTimeout, err.Error())
		}
		out.Fetch.Timeout = d
	}
	if v := strings.TrimSpace(env[EnvDirectoryData]); v != "" {
		out.Directory.DataFile = v
	}
	return out, nil
}

func parseTimeout(s string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %s", d)
	}
	return d, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
