package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Difficulty rates a question. The bank only ever holds the three
// values below.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question is a single multiple-choice trivia question. Immutable once
// handed out: services copy the slice before reordering it.
type Question struct {
	ID         int        `json:"id"`
	Question   string     `json:"question"`
	Options    []string   `json:"options"`
	Correct    int        `json:"correct"`
	Difficulty Difficulty `json:"difficulty"`
}

// ScoreRecord is the server-side record of one finished quiz. It lives
// only for the request/response cycle; nothing stores it yet.
type ScoreRecord struct {
	ID             string    `json:"id"`
	PlayerName     string    `json:"playerName"`
	Category       string    `json:"category"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	Percentage     int       `json:"percentage"`
	TimeSpent      int       `json:"timeSpent"`
	Timestamp      time.Time `json:"timestamp"`
}

// Percentage computes round(100 * score / total) without going through
// floats, so 2 of 3 is exactly 67. total must be positive.
func Percentage(score, total int) int {
	p := decimal.NewFromInt(int64(score) * 100).
		Div(decimal.NewFromInt(int64(total))).
		Round(0)
	return int(p.IntPart())
}

// Leaderboard lists recorded scores for a category, best first.
type Leaderboard struct {
	Category string        `json:"category"`
	Scores   []ScoreRecord `json:"scores"`
}
