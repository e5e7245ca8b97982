package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"stoic-companion-be/internal/dto"
	"stoic-companion-be/internal/entity"
	"stoic-companion-be/internal/pkg/logger"
	"stoic-companion-be/internal/pkg/serverutils"
	"stoic-companion-be/internal/repository/specification"
	"stoic-companion-be/internal/repository/unitofwork"
	"stoic-companion-be/pkg/llm"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMatchService interface {
	MatchPhilosopher(ctx context.Context, req *dto.MatchPhilosopherRequest) (*dto.MatchPhilosopherResponse, error)
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
}

type matchService struct {
	uowFactory  unitofwork.RepositoryFactory
	llmProvider llm.LLMProvider // nil disables generated match reasons
	logger      logger.ILogger
}

func NewMatchService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	log logger.ILogger,
) IMatchService {
	return &matchService{
		uowFactory:  uowFactory,
		llmProvider: llmProvider,
		logger:      log,
	}
}

// MatchPhilosopher scores every philosopher against the onboarding answers,
// persists the winner on the user's profile and returns it.
func (s *matchService) MatchPhilosopher(ctx context.Context, req *dto.MatchPhilosopherRequest) (*dto.MatchPhilosopherResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	philosophers, err := uow.PhilosopherRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(philosophers) == 0 {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "no philosophers available")
	}

	var best *entity.Philosopher
	bestScore := -1.0
	for _, p := range philosophers {
		score := matchScore(p, req.Answers)
		if score > bestScore {
			best = p
			bestScore = score
		}
	}

	reason := s.matchReason(ctx, best, req.Answers)

	now := time.Now()
	profile := &entity.UserProfile{
		UserId:               req.UserId,
		MatchedPhilosopherId: best.Id,
		MatchReason:          reason,
		OnboardingAnswers:    toEntityAnswers(req.Answers),
		CreatedAt:            now,
		UpdatedAt:            &now,
	}
	if err := uow.UserProfileRepository().Upsert(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info("match-service", "user matched", map[string]interface{}{
		"user_id":        req.UserId.String(),
		"philosopher_id": best.Id,
		"confidence":     bestScore,
	})

	return &dto.MatchPhilosopherResponse{
		PhilosopherId:   best.Id,
		PhilosopherName: best.Name,
		MatchReason:     reason,
		Confidence:      bestScore,
	}, nil
}

func (s *matchService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.UserProfileRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "profile not found")
	}

	philosopher, err := uow.PhilosopherRepository().FindOne(ctx,
		specification.ByKey{Key: profile.MatchedPhilosopherId})
	if err != nil {
		return nil, err
	}

	resp := &dto.UserProfileResponse{
		UserId:        profile.UserId,
		PhilosopherId: profile.MatchedPhilosopherId,
		MatchReason:   profile.MatchReason,
		Answers:       toDtoAnswers(profile.OnboardingAnswers),
		CreatedAt:     profile.CreatedAt,
		UpdatedAt:     profile.UpdatedAt,
	}
	if philosopher != nil {
		resp.Philosopher = dto.PhilosopherResponse{
			Id:            philosopher.Id,
			Name:          philosopher.Name,
			Era:           philosopher.Era,
			Biography:     philosopher.Biography,
			CoreThemes:    philosopher.CoreThemes,
			TeachingStyle: philosopher.TeachingStyle,
		}
	}
	return resp, nil
}

// matchScore counts criteria whose words appear in any answer, normalized to
// [0, 1].
func matchScore(p *entity.Philosopher, answers []dto.OnboardingAnswer) float64 {
	if len(p.MatchingCriteria) == 0 {
		return 0
	}

	lowered := make([]string, len(answers))
	for i, a := range answers {
		lowered[i] = strings.ToLower(a.Answer)
	}

	score := 0.0
	for _, criterion := range p.MatchingCriteria {
		words := strings.Fields(strings.ToLower(criterion))
		for _, answer := range lowered {
			if anyWordIn(words, answer) {
				score += 1.0
				break
			}
		}
	}

	score = score / float64(len(p.MatchingCriteria))
	if score > 1.0 {
		score = 1.0
	}
	return score
}

func anyWordIn(words []string, text string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// matchReason asks the model for a short personal explanation. Any failure
// falls back to a canned sentence so matching itself never breaks.
func (s *matchService) matchReason(ctx context.Context, p *entity.Philosopher, answers []dto.OnboardingAnswer) string {
	fallback := fmt.Sprintf("Based on your experiences and values, %s's teachings resonate with your journey.", p.Name)
	if s.llmProvider == nil {
		return fallback
	}

	var b strings.Builder
	b.WriteString("Based on this user's answers:\n")
	for _, a := range answers {
		fmt.Fprintf(&b, "- %s: %s\n", a.QuestionId, a.Answer)
	}
	b.WriteString("\nAnd this philosopher:\n")
	fmt.Fprintf(&b, "- Name: %s\n", p.Name)
	fmt.Fprintf(&b, "- Biography: %s\n", truncate(p.Biography, 200))
	fmt.Fprintf(&b, "- Core themes: %s\n", strings.Join(p.CoreThemes, ", "))
	b.WriteString("\nWrite a brief, personal explanation (2-3 sentences) of why this philosopher is a good match for this user. Be warm but not cheesy. Focus on shared experiences or values.")

	reason, err := s.llmProvider.Generate(ctx, b.String(),
		llm.WithTemperature(0.7), llm.WithMaxTokens(150))
	if err != nil {
		s.logger.Warn("match-service", "match reason generation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return fallback
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fallback
	}
	return reason
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	// Back up so the cut never lands inside a multi-byte rune.
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func toEntityAnswers(answers []dto.OnboardingAnswer) []entity.OnboardingAnswer {
	out := make([]entity.OnboardingAnswer, len(answers))
	for i, a := range answers {
		out[i] = entity.OnboardingAnswer{QuestionId: a.QuestionId, Answer: a.Answer}
	}
	return out
}

func toDtoAnswers(answers []entity.OnboardingAnswer) []dto.OnboardingAnswer {
	out := make([]dto.OnboardingAnswer, len(answers))
	for i, a := range answers {
		out[i] = dto.OnboardingAnswer{QuestionId: a.QuestionId, Answer: a.Answer}
	}
	return out
}
