package domain

import "time"

// FetchState is a step of the fetch state machine.
//
//	idle -> requesting -> success | client_error | transport_error | unclassified_error
type FetchState string

const (
	FetchIdle              FetchState = "idle"
	FetchRequesting        FetchState = "requesting"
	FetchSuccess           FetchState = "success"
	FetchClientError       FetchState = "client_error"
	FetchTransportError    FetchState = "transport_error"
	FetchUnclassifiedError FetchState = "unclassified_error"
)

// Terminal reports whether no further transition is possible.
func (s FetchState) Terminal() bool {
	switch s {
	case FetchSuccess, FetchClientError, FetchTransportError, FetchUnclassifiedError:
		return true
	}
	return false
}

// CanTransition reports whether the state machine allows s -> to.
func (s FetchState) CanTransition(to FetchState) bool {
	switch s {
	case FetchIdle:
		return to == FetchRequesting
	case FetchRequesting:
		return to.Terminal()
	default:
		return false
	}
}

// IsSuccessStatus reports whether code is in the 2xx range.
func IsSuccessStatus(code int) bool {
	return code >= 200 && code <= 299
}

// FetchOutcome is the explicit result of a single GET.
// StatusCode is zero when no status was obtained.
type FetchOutcome struct {
	State      FetchState          `json:"state"`
	URL        string              `json:"url"`
	StatusCode int                 `json:"status_code,omitempty"`
	Headers    map[string][]string `json:"headers,omitempty"`
	Body       string              `json:"body,omitempty"`
	Truncated  bool                `json:"truncated,omitempty"`
	LatencyMS  int64               `json:"latency_ms"`
	Error      *RunError           `json:"error,omitempty"`
}

// HasStatus reports whether an HTTP status line was received.
func (o FetchOutcome) HasStatus() bool {
	return o.StatusCode > 0
}

// Vars holds extracted values keyed by name.
type Vars map[string]string

// ExtractSpec maps variable names to JSONPath expressions.
type ExtractSpec map[string]string

// ExtractResult is the output of a single extraction rule.
type ExtractResult struct {
	Name    string `json:"name"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// FetchArtifact is a persisted fetch for later inspection.
type FetchArtifact struct {
	ID         string          `json:"id"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt time.Time       `json:"finished_at"`
	Outcome    FetchOutcome    `json:"outcome"`
	Extracted  Vars            `json:"extracted,omitempty"`
	Extracts   []ExtractResult `json:"extracts,omitempty"`
}
