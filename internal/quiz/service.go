// Package quiz implements the trivia workflow: category listing,
// shuffled question retrieval, and score submission.
package quiz

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/knowledgetester/trivia/internal/bank"
	"github.com/knowledgetester/trivia/internal/domain"
	"github.com/knowledgetester/trivia/internal/errors"
	"github.com/knowledgetester/trivia/internal/event"
)

type Config struct {
	Bank     *bank.Bank
	EventBus *event.Bus

	// NowFunc overrides the clock. Defaults to time.Now.
	NowFunc func() time.Time
}

type Service struct {
	bank *bank.Bank
	eb   *event.Bus
	now  func() time.Time
}

func NewService(c Config) *Service {
	s := &Service{
		bank: c.Bank,
		eb:   c.EventBus,
		now:  c.NowFunc,
	}

	if s.now == nil {
		s.now = time.Now
	}

	return s
}

// Categories returns all category names. Order is stable across calls.
func (s *Service) Categories(_ context.Context) []string {
	return s.bank.Categories()
}

// Questions returns the questions for a category in a fresh random
// order. Every call shuffles independently; the bank itself is never
// reordered.
func (s *Service) Questions(_ context.Context, category string) ([]domain.Question, error) {
	qs, err := s.bank.Questions(category)
	if err != nil {
		return nil, err
	}

	shuffled := make([]domain.Question, len(qs))
	copy(shuffled, qs)

	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled, nil
}

// SubmitScoreRequest carries one finished quiz as reported by a client.
type SubmitScoreRequest struct {
	PlayerName     string
	Category       string
	Score          int
	TotalQuestions int
	TimeSpent      int
}

// SubmitScore validates the submission and builds the score record.
// The record is returned to the caller and announced on the event bus;
// it is not stored anywhere.
func (s *Service) SubmitScore(ctx context.Context, req SubmitScoreRequest) (*domain.ScoreRecord, error) {
	if strings.TrimSpace(req.PlayerName) == "" || strings.TrimSpace(req.Category) == "" {
		return nil, errors.New(errors.CodeInvalidArgument, errors.WithMessagef("Missing required fields"))
	}

	if req.TotalQuestions <= 0 {
		return nil, errors.New(errors.CodeInvalidArgument, errors.WithMessagef("totalQuestions must be positive"))
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Internal(err)
	}

	rec := &domain.ScoreRecord{
		ID:             id.String(),
		PlayerName:     req.PlayerName,
		Category:       req.Category,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
		Percentage:     domain.Percentage(req.Score, req.TotalQuestions),
		TimeSpent:      req.TimeSpent,
		Timestamp:      s.now().UTC(),
	}

	s.eb.Publish(ctx, domain.EventScoreSubmitted{Record: *rec})

	return rec, nil
}
