package knowledge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		json.NewEncoder(w).Encode(HealthResponse{Status: "healthy", Version: "1.0.0"})
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL).Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", res.Status)
}

func TestContextQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/quote/v1", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req QuoteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "high", req.Context.StressLevel)

		similarity := 0.91
		json.NewEncoder(w).Encode(QuoteResponse{
			Quote:           Quote{Id: "ma_014", Text: "Confine yourself to the present.", Author: "Marcus Aurelius"},
			SimilarityScore: &similarity,
		})
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL).ContextQuote(context.Background(), &QuoteRequest{
		Context: HealthContext{StressLevel: "high", TimeOfDay: "morning"},
		Query:   "feeling overwhelmed and anxious, starting the day with purpose",
	})
	require.NoError(t, err)
	assert.Equal(t, "ma_014", res.Quote.Id)
	require.NotNil(t, res.SimilarityScore)
	assert.Equal(t, 0.91, *res.SimilarityScore)
}

func TestContextQuoteNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"no matching quotes found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).ContextQuote(context.Background(), &QuoteRequest{})
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
}

func TestPhilosophers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/philosophers/v1", r.URL.Path)
		json.NewEncoder(w).Encode(PhilosophersResponse{Philosophers: []Philosopher{
			{Id: "marcus_aurelius", Name: "Marcus Aurelius", Era: "121-180 AD"},
			{Id: "seneca", Name: "Seneca", Era: "4 BC - 65 AD"},
		}})
	}))
	defer srv.Close()

	philosophers, err := NewClient(srv.URL).Philosophers(context.Background())
	require.NoError(t, err)
	require.Len(t, philosophers, 2)
	assert.Equal(t, "marcus_aurelius", philosophers[0].Id)
}

func TestMatchPhilosopher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/match/v1", r.URL.Path)
		json.NewEncoder(w).Encode(MatchResponse{
			PhilosopherId:   "epictetus",
			PhilosopherName: "Epictetus",
			MatchReason:     "You value resilience.",
			Confidence:      0.8,
		})
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL).MatchPhilosopher(context.Background(), &MatchRequest{
		UserId:  "u-1",
		Answers: []OnboardingAnswer{{QuestionId: "q1", Answer: "resilience"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "epictetus", res.PhilosopherId)
	assert.Equal(t, 0.8, res.Confidence)
}

func TestClientMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Health(context.Background())
	assert.Error(t, err)
}
