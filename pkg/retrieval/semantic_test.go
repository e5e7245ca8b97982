package retrieval

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"stoic-companion-be/pkg/knowledge"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuoteFetcher struct {
	resp  *knowledge.QuoteResponse
	err   error
	calls int
	last  *knowledge.QuoteRequest
}

func (f *fakeQuoteFetcher) ContextQuote(_ context.Context, req *knowledge.QuoteRequest) (*knowledge.QuoteResponse, error) {
	f.calls++
	f.last = req
	return f.resp, f.err
}

func TestSemanticSelectMapsResponse(t *testing.T) {
	similarity := 0.91
	fetcher := &fakeQuoteFetcher{
		resp: &knowledge.QuoteResponse{
			Quote: knowledge.Quote{
				Id:       "ma_014",
				Text:     "Confine yourself to the present.",
				Author:   "Marcus Aurelius",
				Contexts: []string{"control", "stress"},
			},
			SimilarityScore: &similarity,
			Philosopher:     "Marcus Aurelius",
		},
	}
	s := NewSemanticStrategy(fetcher, "", discardLogger())

	rc := Context{StressLevel: StressHigh, TimeOfDay: TimeOfDayPtr(Morning)}
	result, err := s.Select(context.Background(), rc)
	require.NoError(t, err)

	assert.Equal(t, "ma_014", result.Quote.Id)
	assert.Equal(t, StrategySemantic, result.Strategy)
	require.NotNil(t, result.Similarity)
	assert.Equal(t, 0.91, *result.Similarity)
	require.NotNil(t, result.MatchedPhilosopher)
	assert.Equal(t, "Marcus Aurelius", *result.MatchedPhilosopher)

	// The composed query rides along with the raw context.
	require.NotNil(t, fetcher.last)
	assert.Equal(t, "feeling overwhelmed and anxious, starting the day with purpose", fetcher.last.Query)
	assert.Equal(t, "high", fetcher.last.Context.StressLevel)
	assert.Equal(t, "morning", fetcher.last.Context.TimeOfDay)
}

func TestSemanticSelectClassifiesErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{"no match is a 404", &knowledge.StatusError{Code: http.StatusNotFound}, ErrNoMatch},
		{"unauthorized", &knowledge.StatusError{Code: http.StatusUnauthorized}, ErrUnauthorized},
		{"rate limited", &knowledge.StatusError{Code: http.StatusTooManyRequests}, ErrRateLimited},
		{"server error", &knowledge.StatusError{Code: http.StatusInternalServerError}, ErrInvalidResponse},
		{"timeout", context.DeadlineExceeded, ErrTimeout},
		{"caller cancelled", fmt.Errorf("knowledge request failed: %w", context.Canceled), ErrCancelled},
		{"transport failure", errors.New("connection refused"), ErrNetworkUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSemanticStrategy(&fakeQuoteFetcher{err: tt.err}, "", discardLogger())
			result, err := s.Select(context.Background(), Context{StressLevel: StressNormal})
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestSemanticSelectCarriesPhilosopherScope(t *testing.T) {
	fetcher := &fakeQuoteFetcher{resp: &knowledge.QuoteResponse{Quote: knowledge.Quote{Id: "ep_001", Text: "x", Author: "Epictetus"}}}
	s := NewSemanticStrategy(fetcher, "epictetus", discardLogger())

	_, err := s.Select(context.Background(), Context{StressLevel: StressNormal})
	require.NoError(t, err)
	assert.Equal(t, "epictetus", fetcher.last.PhilosopherId)
}
