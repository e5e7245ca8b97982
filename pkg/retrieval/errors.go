package retrieval

import (
	"context"
	"errors"
	"net"
	"net/http"

	"stoic-companion-be/pkg/knowledge"
	"stoic-companion-be/pkg/llm"
)

// Error taxonomy for the retrieval pipeline. Every kind is recoverable
// inside the orchestrator: none of them reaches the caller of GetQuote, they
// only steer the fallback chain and show up in logs.
var (
	ErrNetworkUnavailable = errors.New("network unavailable")
	ErrTimeout            = errors.New("request timed out")
	ErrInvalidResponse    = errors.New("invalid response")
	ErrUnauthorized       = errors.New("invalid credentials")
	ErrRateLimited        = errors.New("rate limited")
	ErrNoMatch            = errors.New("no match above threshold")
	ErrEmptyCorpus        = errors.New("corpus is empty")
	ErrCancelled          = errors.New("cancelled by caller")
)

// classify folds a transport or backend error into the taxonomy. Unknown
// errors count as network failures: the fallback behavior is the same either
// way, the kind only matters for logging.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var statusErr *knowledge.StatusError
	if errors.As(err, &statusErr) {
		return classifyStatus(statusErr.Code)
	}
	var providerErr *llm.StatusError
	if errors.As(err, &providerErr) {
		return classifyStatus(providerErr.Code)
	}

	// Caller cancellation is not a backend condition. It must never feed
	// the availability flag.
	if errors.Is(err, context.Canceled) {
		return ErrCancelled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout
	}

	return ErrNetworkUnavailable
}

func classifyStatus(code int) error {
	switch code {
	case http.StatusNotFound:
		return ErrNoMatch
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return ErrInvalidResponse
	}
}
