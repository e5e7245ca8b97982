package retrieval

import (
	"context"
	"errors"
	"io"
	"log"
	"math/rand"
	"testing"

	"stoic-companion-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLLMProvider struct {
	reply string
	err   error
	calls int
}

func (f *fakeLLMProvider) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	f.calls++
	return f.reply, f.err
}

func (f *fakeLLMProvider) Generate(ctx context.Context, _ string, opts ...llm.Option) (string, error) {
	return f.Chat(ctx, nil, opts...)
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newLLMStrategy(provider llm.LLMProvider) *LLMStrategy {
	passages := testPassages()
	local := NewLocalStrategy(passages, rand.New(rand.NewSource(1)))
	return NewLLMStrategy(provider, local, passages, discardLogger())
}

func TestLLMSelectValidId(t *testing.T) {
	s := newLLMStrategy(&fakeLLMProvider{reply: "ep_002"})

	result, err := s.Select(context.Background(), Context{StressLevel: StressHigh})
	require.NoError(t, err)
	assert.Equal(t, StrategyLLM, result.Strategy)
	assert.Equal(t, "ep_002", result.Quote.Id)
}

func TestLLMSelectStripsQuotesAndWhitespace(t *testing.T) {
	tests := []string{
		`"ma_001"`,
		"  ma_001\n",
		`'ma_001'`,
	}
	for _, reply := range tests {
		s := newLLMStrategy(&fakeLLMProvider{reply: reply})
		result, err := s.Select(context.Background(), Context{StressLevel: StressNormal})
		require.NoError(t, err)
		assert.Equal(t, "ma_001", result.Quote.Id, "reply %q", reply)
		assert.Equal(t, StrategyLLM, result.Strategy)
	}
}

func TestLLMSelectHallucinatedIdFallsBackToLocal(t *testing.T) {
	s := newLLMStrategy(&fakeLLMProvider{reply: "xx_999"})

	result, err := s.Select(context.Background(), Context{StressLevel: StressNormal})
	require.NoError(t, err)
	assert.Equal(t, StrategyLocal, result.Strategy)
	assert.Contains(t, passageIds(testPassages()), result.Quote.Id)
}

func TestLLMSelectProviderErrorFallsBackToLocal(t *testing.T) {
	s := newLLMStrategy(&fakeLLMProvider{err: errors.New("connection refused")})

	result, err := s.Select(context.Background(), Context{StressLevel: StressHigh})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, StrategyLocal, result.Strategy)
}

func TestLLMSelectProviderRejectionFallsBackToLocal(t *testing.T) {
	tests := []struct {
		name string
		code int
		kind error
	}{
		{"rate limited", 429, ErrRateLimited},
		{"unauthorized", 401, ErrUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providerErr := &llm.StatusError{Code: tt.code, Body: "rejected"}
			assert.ErrorIs(t, classify(providerErr), tt.kind)

			s := newLLMStrategy(&fakeLLMProvider{err: providerErr})
			result, err := s.Select(context.Background(), Context{StressLevel: StressHigh})
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, StrategyLocal, result.Strategy)
		})
	}
}

func TestLLMSelectEmptyCandidatesFallsBackToLocal(t *testing.T) {
	provider := &fakeLLMProvider{reply: "ma_001"}
	local := NewLocalStrategy(nil, rand.New(rand.NewSource(1)))
	s := NewLLMStrategy(provider, local, nil, discardLogger())

	result, err := s.Select(context.Background(), Context{StressLevel: StressNormal})
	require.NoError(t, err)
	assert.Equal(t, StrategyLocal, result.Strategy)
	assert.Zero(t, provider.calls, "provider must not be called without candidates")
}

func TestParseQuoteId(t *testing.T) {
	assert.Equal(t, "ma_014", parseQuoteId("ma_014"))
	assert.Equal(t, "ma_014", parseQuoteId(` "ma_014" `))
	assert.Equal(t, "ma_014", parseQuoteId("\n'ma_014'\n"))
}
