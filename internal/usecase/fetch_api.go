package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/ports"
	ucextract "github.com/aalvaropc/primer/internal/usecase/extract"
)

type FetchRequest struct {
	URL     string
	Extract domain.ExtractSpec
	Save    bool
}

type FetchReport struct {
	Outcome    domain.FetchOutcome    `json:"outcome"`
	Extracted  domain.Vars            `json:"extracted,omitempty"`
	Extracts   []domain.ExtractResult `json:"extracts,omitempty"`
	ArtifactID string                 `json:"artifact_id,omitempty"`
}

type FetchAPI struct {
	fetcher ports.Fetcher
	store   ports.ArtifactStore
	log     *slog.Logger
	now     func() time.Time
}

// NewFetchAPI wires the fetch example. store may be nil when nothing is persisted.
func NewFetchAPI(f ports.Fetcher, store ports.ArtifactStore, log *slog.Logger) *FetchAPI {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &FetchAPI{
		fetcher: f,
		store:   store,
		log:     log,
		now:     time.Now,
	}
}

// Execute performs the single fetch attempt. The returned error is reserved for
// persistence failures; every fetch failure is described by the outcome.
func (uc *FetchAPI) Execute(ctx context.Context, req FetchRequest) (FetchReport, error) {
	started := uc.now()
	uc.log.Info("fetch.start", "url", req.URL)

	out := uc.fetcher.Fetch(ctx, req.URL)
	if !out.State.Terminal() {
		uc.log.Error("fetch.nonterminal", "url", req.URL, "state", string(out.State))
		out.State = domain.FetchUnclassifiedError
		if out.Error == nil {
			out.Error = &domain.RunError{Kind: domain.RunErrorUnknown, Message: "fetch ended without an outcome"}
		}
	}

	attrs := []any{"url", out.URL, "state", string(out.State), "status", out.StatusCode, "latency_ms", out.LatencyMS}
	if out.Error != nil {
		attrs = append(attrs, "error_kind", string(out.Error.Kind), "error", out.Error.Message)
		uc.log.Warn("fetch.done", attrs...)
	} else {
		uc.log.Info("fetch.done", attrs...)
	}

	rep := FetchReport{Outcome: out}
	if out.State == domain.FetchSuccess && len(req.Extract) > 0 {
		rep.Extracted, rep.Extracts = ucextract.Apply(out.Body, req.Extract)
	}

	if !req.Save || uc.store == nil {
		return rep, nil
	}

	id, err := uc.store.SaveFetch(domain.FetchArtifact{
		StartedAt:  started,
		FinishedAt: uc.now(),
		Outcome:    out,
		Extracted:  rep.Extracted,
		Extracts:   rep.Extracts,
	})
	if err != nil {
		uc.log.Error("fetch.save_failed", "error", err.Error())
		return rep, err
	}
	rep.ArtifactID = id
	uc.log.Info("fetch.saved", "id", id)
	return rep, nil
}
