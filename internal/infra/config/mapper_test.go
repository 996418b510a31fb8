package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/primer/internal/domain"
)

func TestMapConfig_EmptyFileIsIdentity(t *testing.T) {
	base := domain.DefaultConfig()

	got, err := MapConfig("primer.yaml", base, YAMLFile{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(base, got); diff != "" {
		t.Fatalf("config changed (-want +got):\n%s", diff)
	}
}

func TestMapConfig_TrimsValues(t *testing.T) {
	y := YAMLFile{Primer: YAMLPrimer{
		Fetch:     YAMLFetch{URL: "  http://x  ", Timeout: " 1m "},
		Directory: YAMLDirectory{Data: " people.yaml "},
	}}

	got, err := MapConfig("primer.yaml", domain.DefaultConfig(), y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Fetch.URL != "http://x" || got.Fetch.Timeout != time.Minute || got.Directory.DataFile != "people.yaml" {
		t.Fatalf("unexpected mapping: %+v", got)
	}
}

func TestApplyEnv_IgnoresBlankValues(t *testing.T) {
	base := domain.DefaultConfig()

	got, err := ApplyEnv(".env", base, map[string]string{EnvFetchURL: "  ", "OTHER": "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(base, got); diff != "" {
		t.Fatalf("config changed (-want +got):\n%s", diff)
	}
}

func TestApplyEnv_RejectsZeroTimeout(t *testing.T) {
	base := domain.DefaultConfig()

	got, err := ApplyEnv(".env", base, map[string]string{EnvFetchTimeout: "0s"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if got.Fetch.Timeout != base.Fetch.Timeout {
		t.Fatalf("expected base config returned on error")
	}
}
