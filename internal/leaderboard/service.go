// Package leaderboard is the seam for a score storage backend that
// does not exist yet. The service wires itself to score submissions so
// a real store can be dropped in later without touching the quiz flow.
package leaderboard

import (
	"context"
	"fmt"

	"github.com/knowledgetester/trivia/internal/domain"
	"github.com/knowledgetester/trivia/internal/event"
)

// Store persists score records. No implementation ships today; see
// NopStore.
type Store interface {
	Save(ctx context.Context, rec domain.ScoreRecord) error
	List(ctx context.Context, category string) ([]domain.ScoreRecord, error)
}

type Config struct {
	EventBus *event.Bus
	Store    Store
}

type Service struct {
	store Store
}

func NewService(c Config) *Service {
	s := &Service{
		store: c.Store,
	}

	c.EventBus.Subscribe(domain.EventNameScoreSubmitted, func(ctx context.Context, e event.Event) error {
		return s.record(ctx, e.(domain.EventScoreSubmitted))
	})

	return s
}

type GetLeaderboardRequest struct {
	Category string
}

// GetLeaderboard returns the recorded scores for a category. With the
// nop store this is always an empty list, never nil.
func (s *Service) GetLeaderboard(ctx context.Context, req GetLeaderboardRequest) (*domain.Leaderboard, error) {
	scores, err := s.store.List(ctx, req.Category)
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}

	if scores == nil {
		scores = []domain.ScoreRecord{}
	}

	return &domain.Leaderboard{
		Category: req.Category,
		Scores:   scores,
	}, nil
}

func (s *Service) record(ctx context.Context, e domain.EventScoreSubmitted) error {
	if err := s.store.Save(ctx, e.Record); err != nil {
		return fmt.Errorf("save score: session player=%s category=%s: %w", e.Record.PlayerName, e.Record.Category, err)
	}

	return nil
}
