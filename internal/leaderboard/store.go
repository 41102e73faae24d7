package leaderboard

import (
	"context"
	"log/slog"

	"github.com/knowledgetester/trivia/internal/domain"
)

// NopStore accepts every record and keeps none of them. It stands in
// until a real backend exists, so saved scores are logged and dropped.
type NopStore struct{}

func NewNopStore() *NopStore { return &NopStore{} }

func (*NopStore) Save(ctx context.Context, rec domain.ScoreRecord) error {
	slog.InfoContext(ctx, "leaderboard: score recorded, not persisted",
		"player", rec.PlayerName,
		"category", rec.Category,
		"score", rec.Score,
		"total", rec.TotalQuestions,
		"percentage", rec.Percentage,
	)
	return nil
}

func (*NopStore) List(_ context.Context, _ string) ([]domain.ScoreRecord, error) {
	return []domain.ScoreRecord{}, nil
}
