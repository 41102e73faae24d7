// Package results turns a finished session into display data.
package results

import (
	"fmt"

	"github.com/knowledgetester/trivia/internal/domain"
	"github.com/knowledgetester/trivia/internal/session"
)

// Summary is everything a results screen needs. Derived only; the
// session snapshot is never modified.
type Summary struct {
	PlayerName string
	Category   string
	Score      int
	Total      int
	Percentage int
	Minutes    int
	Seconds    int
	Stats      []Stat
}

type Stat struct {
	Label string
	Value string
}

// Summarize computes the summary for a completed session.
func Summarize(s session.Snapshot) Summary {
	total := len(s.Questions)

	percentage := 0
	if total > 0 {
		percentage = domain.Percentage(s.Score, total)
	}

	sum := Summary{
		PlayerName: s.PlayerName,
		Category:   s.Category,
		Score:      s.Score,
		Total:      total,
		Percentage: percentage,
		Minutes:    s.TimeSpent / 60,
		Seconds:    s.TimeSpent % 60,
	}

	sum.Stats = []Stat{
		{Label: "Score", Value: fmt.Sprintf("%d/%d", sum.Score, sum.Total)},
		{Label: "Accuracy", Value: fmt.Sprintf("%d%%", sum.Percentage)},
		{Label: "Time", Value: fmt.Sprintf("%dm %ds", sum.Minutes, sum.Seconds)},
		{Label: "Category", Value: sum.Category},
	}

	return sum
}
