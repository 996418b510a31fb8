package ports

import (
	"context"

	"github.com/aalvaropc/primer/internal/domain"
)

// Fetcher performs exactly one GET and reports the outcome.
// Failures are carried in the outcome, never returned.
type Fetcher interface {
	Fetch(ctx context.Context, url string) domain.FetchOutcome
}
