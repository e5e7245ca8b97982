package service

import (
	"context"
	"errors"
	"testing"
	"unicode/utf8"

	"stoic-companion-be/internal/dto"
	"stoic-companion-be/internal/entity"
	"stoic-companion-be/internal/pkg/serverutils"
	"stoic-companion-be/internal/repository/contract"
	"stoic-companion-be/internal/repository/specification"
	"stoic-companion-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePhilosopherRepo struct {
	contract.PhilosopherRepository
	philosophers []*entity.Philosopher
}

func (f *fakePhilosopherRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Philosopher, error) {
	return f.philosophers, nil
}

func (f *fakePhilosopherRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Philosopher, error) {
	for _, spec := range specs {
		if byKey, ok := spec.(specification.ByKey); ok {
			for _, p := range f.philosophers {
				if p.Id == byKey.Key {
					return p, nil
				}
			}
		}
	}
	return nil, nil
}

type fakeProfileRepo struct {
	contract.UserProfileRepository
	saved   *entity.UserProfile
	profile *entity.UserProfile
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, profile *entity.UserProfile) error {
	f.saved = profile
	return nil
}

func (f *fakeProfileRepo) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.UserProfile, error) {
	if f.profile != nil && f.profile.UserId == userId {
		return f.profile, nil
	}
	return nil, nil
}

type fakeLLM struct {
	reply string
	err   error
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return f.reply, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.reply, f.err
}

func testPhilosophers() []*entity.Philosopher {
	return []*entity.Philosopher{
		{
			Id:               "epictetus",
			Name:             "Epictetus",
			MatchingCriteria: []string{"control circumstances", "practical advice"},
		},
		{
			Id:               "seneca",
			Name:             "Seneca",
			MatchingCriteria: []string{"anxiety worry future", "time busy"},
		},
	}
}

func newMatchService(philosophers []*entity.Philosopher, profiles *fakeProfileRepo, provider llm.LLMProvider) IMatchService {
	uow := &fakeUow{
		philosophers: &fakePhilosopherRepo{philosophers: philosophers},
		profiles:     profiles,
	}
	return NewMatchService(&fakeUowFactory{uow: uow}, provider, nopLogger{})
}

func TestMatchPhilosopherPicksBestOverlap(t *testing.T) {
	profiles := &fakeProfileRepo{}
	svc := newMatchService(testPhilosophers(), profiles, &fakeLLM{reply: "A thoughtful reason."})

	res, err := svc.MatchPhilosopher(context.Background(), &dto.MatchPhilosopherRequest{
		UserId: uuid.New(),
		Answers: []dto.OnboardingAnswer{
			{QuestionId: "q1", Answer: "I constantly worry about the future"},
			{QuestionId: "q2", Answer: "I never have enough time, always busy"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "seneca", res.PhilosopherId)
	assert.Equal(t, "Seneca", res.PhilosopherName)
	assert.Equal(t, "A thoughtful reason.", res.MatchReason)
	assert.InDelta(t, 1.0, res.Confidence, 1e-9)
}

func TestMatchPhilosopherPersistsProfile(t *testing.T) {
	profiles := &fakeProfileRepo{}
	svc := newMatchService(testPhilosophers(), profiles, &fakeLLM{reply: "reason"})

	userId := uuid.New()
	_, err := svc.MatchPhilosopher(context.Background(), &dto.MatchPhilosopherRequest{
		UserId: userId,
		Answers: []dto.OnboardingAnswer{
			{QuestionId: "q1", Answer: "I want control over my circumstances"},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, profiles.saved)
	assert.Equal(t, userId, profiles.saved.UserId)
	assert.Equal(t, "epictetus", profiles.saved.MatchedPhilosopherId)
	assert.Len(t, profiles.saved.OnboardingAnswers, 1)
}

func TestMatchPhilosopherLLMFailureUsesFallbackReason(t *testing.T) {
	profiles := &fakeProfileRepo{}
	svc := newMatchService(testPhilosophers(), profiles, &fakeLLM{err: errors.New("model offline")})

	res, err := svc.MatchPhilosopher(context.Background(), &dto.MatchPhilosopherRequest{
		UserId: uuid.New(),
		Answers: []dto.OnboardingAnswer{
			{QuestionId: "q1", Answer: "worry about the future"},
		},
	})

	require.NoError(t, err)
	assert.Contains(t, res.MatchReason, "Seneca")
	assert.Contains(t, res.MatchReason, "resonate with your journey")
}

func TestMatchPhilosopherNilProviderUsesFallbackReason(t *testing.T) {
	profiles := &fakeProfileRepo{}
	svc := newMatchService(testPhilosophers(), profiles, nil)

	res, err := svc.MatchPhilosopher(context.Background(), &dto.MatchPhilosopherRequest{
		UserId: uuid.New(),
		Answers: []dto.OnboardingAnswer{
			{QuestionId: "q1", Answer: "practical advice please"},
		},
	})

	require.NoError(t, err)
	assert.Contains(t, res.MatchReason, "Epictetus")
}

func TestMatchPhilosopherEmptyRosterIs404(t *testing.T) {
	svc := newMatchService(nil, &fakeProfileRepo{}, nil)

	_, err := svc.MatchPhilosopher(context.Background(), &dto.MatchPhilosopherRequest{
		UserId:  uuid.New(),
		Answers: []dto.OnboardingAnswer{{QuestionId: "q1", Answer: "anything"}},
	})

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestGetProfileReturnsStoredMatch(t *testing.T) {
	userId := uuid.New()
	profiles := &fakeProfileRepo{profile: &entity.UserProfile{
		UserId:               userId,
		MatchedPhilosopherId: "seneca",
		MatchReason:          "stored reason",
		OnboardingAnswers:    []entity.OnboardingAnswer{{QuestionId: "q1", Answer: "a1"}},
	}}
	svc := newMatchService(testPhilosophers(), profiles, nil)

	res, err := svc.GetProfile(context.Background(), userId)

	require.NoError(t, err)
	assert.Equal(t, "seneca", res.PhilosopherId)
	assert.Equal(t, "stored reason", res.MatchReason)
	assert.Equal(t, "Seneca", res.Philosopher.Name)
	require.Len(t, res.Answers, 1)
	assert.Equal(t, "q1", res.Answers[0].QuestionId)
}

func TestGetProfileUnknownUserIs404(t *testing.T) {
	svc := newMatchService(testPhilosophers(), &fakeProfileRepo{}, nil)

	_, err := svc.GetProfile(context.Background(), uuid.New())

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestMatchScoreNormalization(t *testing.T) {
	p := &entity.Philosopher{MatchingCriteria: []string{"anxiety worry", "time busy"}}

	full := matchScore(p, []dto.OnboardingAnswer{
		{QuestionId: "q1", Answer: "anxiety rules my life"},
		{QuestionId: "q2", Answer: "so busy all the time"},
	})
	assert.InDelta(t, 1.0, full, 1e-9)

	half := matchScore(p, []dto.OnboardingAnswer{
		{QuestionId: "q1", Answer: "anxiety rules my life"},
	})
	assert.InDelta(t, 0.5, half, 1e-9)

	none := matchScore(p, []dto.OnboardingAnswer{
		{QuestionId: "q1", Answer: "nothing relevant here"},
	})
	assert.InDelta(t, 0.0, none, 1e-9)
}

func TestTruncateKeepsRunesIntact(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcde", truncate("abcdefgh", 5))

	// "é" is two bytes; a cut at byte 2 would split it.
	got := truncate("aé", 2)
	assert.Equal(t, "a", got)
	assert.True(t, utf8.ValidString(got))

	bio := "Σενέκας έγραψε για τον θυμό"
	for n := 0; n <= len(bio); n++ {
		assert.True(t, utf8.ValidString(truncate(bio, n)), "cut at %d", n)
	}
}
