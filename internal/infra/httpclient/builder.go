package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/aalvaropc/primer/internal/domain"
)

// BuildGet builds a body-less GET with no custom headers.
func BuildGet(ctx context.Context, rawURL string) (*http.Request, error) {
	target := strings.TrimSpace(rawURL)
	if target == "" {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("url is required: %w", domain.ErrInvalidConfig),
		}
	}

	u, err := url.Parse(target)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unsupported scheme %q in %s: %w", u.Scheme, target, domain.ErrInvalidConfig),
		}
	}
	if u.Host == "" {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("missing host in %s: %w", target, domain.ErrInvalidConfig),
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}
	return req, nil
}
