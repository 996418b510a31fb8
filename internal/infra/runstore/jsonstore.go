package runstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/xid"

	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/ports"
)

const defaultRunsDir = "runs"
const maskValue = "********"

type JSONStore struct {
	rootDir        string
	runsDirName    string
	maskingEnabled bool
	writeIndex     bool
	now            func() time.Time
	newID          func() string
}

type Option func(*JSONStore)

// WithIndex enables a JSONL index at runs/index.jsonl.
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func WithIDGenerator(gen func() string) Option {
	return func(s *JSONStore) { s.newID = gen }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	runsDir := cfg.Paths.RunsDir
	if strings.TrimSpace(runsDir) == "" {
		runsDir = defaultRunsDir
	}

	s := &JSONStore{
		rootDir:        root,
		runsDirName:    runsDir,
		maskingEnabled: cfg.Masking.Enabled,
		now:            time.Now,
		newID:          func() string { return xid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ArtifactStore = (*JSONStore)(nil)

// SaveFetch persists art under the runs directory and returns its ID.
func (s *JSONStore) SaveFetch(art domain.FetchArtifact) (string, error) {
	dir := filepath.Join(s.rootDir, s.runsDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	toSave := art
	if toSave.StartedAt.IsZero() {
		toSave.StartedAt = s.now()
	}
	toSave.StartedAt = toSave.StartedAt.UTC()
	if !toSave.FinishedAt.IsZero() {
		toSave.FinishedAt = toSave.FinishedAt.UTC()
	}
	if strings.TrimSpace(toSave.ID) == "" {
		toSave.ID = s.newID()
	}

	slug := slugify(hostOf(art.Outcome.URL))
	if slug == "" {
		slug = "fetch"
	}

	stamp := toSave.StartedAt.Format("20060102T150405Z")
	filename := fmt.Sprintf("%s_%s.json", stamp, slug)
	path := filepath.Join(dir, filename)
	if _, err := os.Stat(path); err == nil {
		filename = fmt.Sprintf("%s_%s_%s.json", stamp, slug, toSave.ID)
		path = filepath.Join(dir, filename)
	}

	if s.maskingEnabled {
		toSave = maskArtifact(toSave)
	}

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "runstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "runstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, filename, toSave)
	}

	return toSave.ID, nil
}

// Load reads a saved artifact back by ID.
func (s *JSONStore) Load(id string) (domain.FetchArtifact, error) {
	dir := filepath.Join(s.rootDir, s.runsDirName)
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return domain.FetchArtifact{}, err
	}

	for _, p := range matches {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		var art domain.FetchArtifact
		if err := json.Unmarshal(b, &art); err != nil {
			continue
		}
		if art.ID == id {
			return art, nil
		}
	}

	return domain.FetchArtifact{}, &domain.OpError{
		Op:   "runstore.load",
		Kind: domain.KindNotFound,
		Path: dir,
		Err:  errors.Join(domain.ErrNotFound, fmt.Errorf("artifact %q", id)),
	}
}

func (s *JSONStore) appendIndex(dir, filename string, art domain.FetchArtifact) error {
	type idx struct {
		ID        string    `json:"id"`
		File      string    `json:"file"`
		URL       string    `json:"url"`
		State     string    `json:"state"`
		Status    int       `json:"status_code,omitempty"`
		StartedAt time.Time `json:"started_at"`
	}
	line, err := json.Marshal(idx{
		ID:        art.ID,
		File:      filename,
		URL:       art.Outcome.URL,
		State:     string(art.Outcome.State),
		Status:    art.Outcome.StatusCode,
		StartedAt: art.StartedAt,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// maskArtifact returns a masked copy; art is not mutated.
func maskArtifact(art domain.FetchArtifact) domain.FetchArtifact {
	out := art
	out.Outcome.Headers = cloneHeaders(art.Outcome.Headers)
	out.Extracted = cloneVars(art.Extracted)

	for k, vals := range out.Outcome.Headers {
		if isSensitiveHeaderKey(k) {
			for i := range vals {
				vals[i] = maskValue
			}
		}
	}

	for k := range out.Extracted {
		if isSensitiveKey(k) {
			out.Extracted[k] = maskValue
		}
	}

	if len(art.Extracts) > 0 {
		out.Extracts = make([]domain.ExtractResult, len(art.Extracts))
		copy(out.Extracts, art.Extracts)
		for i := range out.Extracts {
			if out.Extracts[i].Success && isSensitiveKey(out.Extracts[i].Name) {
				out.Extracts[i].Message = maskValue
			}
		}
	}

	return out
}

func isSensitiveKey(k string) bool {
	kk := strings.ToLower(k)
	return strings.Contains(kk, "token") ||
		strings.Contains(kk, "secret") ||
		strings.Contains(kk, "password")
}

func isSensitiveHeaderKey(k string) bool {
	kk := strings.ToLower(strings.TrimSpace(k))
	switch kk {
	case "authorization", "proxy-authorization", "cookie", "set-cookie", "x-api-key", "x-auth-token":
		return true
	}

	return isSensitiveKey(kk) ||
		strings.Contains(kk, "api-key") ||
		strings.Contains(kk, "apikey")
}

func cloneVars(in domain.Vars) domain.Vars {
	if in == nil {
		return nil
	}
	out := make(domain.Vars, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneHeaders(in map[string][]string) map[string][]string {
	if in == nil {
		return nil
	}
	out := make(map[string][]string, len(in))
	for k, v := range in {
		cp := make([]string, len(v))
		copy(cp, v)
		out[k] = cp
	}
	return out
}

func hostOf(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Hostname() == "" {
		return ""
	}
	return u.Hostname()
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
