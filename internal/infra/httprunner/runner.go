package httprunner

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/infra/httpclient"
	"github.com/aalvaropc/primer/internal/ports"
)

const defaultMaxBodyBytes = 256 * 1024 // 256KB

type Runner struct {
	client       *http.Client
	maxBodyBytes int64
}

type Option func(*Runner)

// WithMaxBodyBytes bounds how much of the body is kept. Non-positive values keep the default.
func WithMaxBodyBytes(n int64) Option {
	return func(r *Runner) {
		if n > 0 {
			r.maxBodyBytes = n
		}
	}
}

func New(client *http.Client, opts ...Option) *Runner {
	r := &Runner{
		client:       client,
		maxBodyBytes: defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.Fetcher = (*Runner)(nil)

// Fetch performs exactly one GET against rawURL. Every failure is reported
// through the outcome state; nothing is retried.
func (r *Runner) Fetch(ctx context.Context, rawURL string) domain.FetchOutcome {
	out := domain.FetchOutcome{
		State: domain.FetchIdle,
		URL:   rawURL,
	}
	advance(&out, domain.FetchRequesting)

	req, err := httpclient.BuildGet(ctx, rawURL)
	if err != nil {
		out.Error = &domain.RunError{Kind: domain.RunErrorUnknown, Message: err.Error()}
		advance(&out, domain.FetchUnclassifiedError)
		return out
	}

	start := time.Now()
	resp, err := r.client.Do(req)
	if err != nil {
		out.LatencyMS = time.Since(start).Milliseconds()
		out.Error = domain.NewRunError(err)
		if out.Error.Kind.Transport() {
			advance(&out, domain.FetchTransportError)
		} else {
			advance(&out, domain.FetchUnclassifiedError)
		}
		return out
	}
	defer resp.Body.Close()

	out.StatusCode = resp.StatusCode
	out.Headers = cloneHeaders(resp.Header)

	body, truncated, readErr := readBounded(resp.Body, r.maxBodyBytes)
	out.LatencyMS = time.Since(start).Milliseconds()
	out.Body = string(body)
	out.Truncated = truncated

	if !domain.IsSuccessStatus(resp.StatusCode) {
		out.Error = &domain.RunError{
			Kind:    domain.RunErrorHTTP,
			Message: fmt.Sprintf("response status code does not indicate success: %d (%s)", resp.StatusCode, http.StatusText(resp.StatusCode)),
		}
		advance(&out, domain.FetchClientError)
		return out
	}

	if readErr != nil {
		out.Error = &domain.RunError{
			Kind:    domain.RunErrorUnknown,
			Message: fmt.Sprintf("reading response body: %v", readErr),
		}
		advance(&out, domain.FetchUnclassifiedError)
		return out
	}

	advance(&out, domain.FetchSuccess)
	return out
}

func advance(out *domain.FetchOutcome, to domain.FetchState) {
	if !out.State.CanTransition(to) {
		panic(fmt.Sprintf("httprunner: invalid fetch transition %s -> %s", out.State, to))
	}
	out.State = to
}

func readBounded(r io.Reader, maxBytes int64) ([]byte, bool, error) {
	// maxBytes+1 must not overflow.
	if maxBytes >= math.MaxInt64 {
		maxBytes = math.MaxInt64 - 1
	}
	lim := io.LimitReader(r, maxBytes+1)
	b, err := io.ReadAll(lim)
	if err != nil {
		return b, false, err
	}
	if int64(len(b)) > maxBytes {
		return b[:maxBytes], true, nil
	}
	return b, false, nil
}

func cloneHeaders(h http.Header) map[string][]string {
	out := make(map[string][]string, len(h))
	for k, v := range h {
		cp := make([]string, len(v))
		copy(cp, v)
		out[k] = cp
	}
	return out
}
