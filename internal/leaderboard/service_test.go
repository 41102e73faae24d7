package leaderboard_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knowledgetester/trivia/internal/domain"
	"github.com/knowledgetester/trivia/internal/event"
	"github.com/knowledgetester/trivia/internal/leaderboard"
)

func TestService_GetLeaderboard_alwaysEmptyWithNopStore(t *testing.T) {
	t.Parallel()

	s := leaderboard.NewService(leaderboard.Config{
		EventBus: event.NewBus(),
		Store:    leaderboard.NewNopStore(),
	})

	for _, category := range []string{"science", "history", "never-seen"} {
		l, err := s.GetLeaderboard(context.Background(), leaderboard.GetLeaderboardRequest{
			Category: category,
		})
		require.NoError(t, err)
		assert.Equal(t, category, l.Category)
		require.NotNil(t, l.Scores, "scores must encode as [], not null")
		assert.Empty(t, l.Scores)
	}
}

func TestService_recordsSubmittedScores(t *testing.T) {
	t.Parallel()

	eb := event.NewBus()
	store := &capturingStore{}

	leaderboard.NewService(leaderboard.Config{
		EventBus: eb,
		Store:    store,
	})

	rec := domain.ScoreRecord{
		ID:             "rec-1",
		PlayerName:     "alice",
		Category:       "science",
		Score:          2,
		TotalQuestions: 3,
		Percentage:     67,
		TimeSpent:      95,
		Timestamp:      time.Now().UTC(),
	}

	eb.Publish(context.Background(), domain.EventScoreSubmitted{Record: rec})
	eb.Stop()

	assert.Equal(t, []domain.ScoreRecord{rec}, store.saved())
}

type capturingStore struct {
	mu   sync.Mutex
	recs []domain.ScoreRecord
}

func (s *capturingStore) Save(_ context.Context, rec domain.ScoreRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs = append(s.recs, rec)
	return nil
}

func (s *capturingStore) List(_ context.Context, category string) ([]domain.ScoreRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.ScoreRecord
	for _, r := range s.recs {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *capturingStore) saved() []domain.ScoreRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.ScoreRecord(nil), s.recs...)
}
