package domain

const (
	EventNameScoreSubmitted = "score.submitted"
	EventNameQuizCompleted  = "quiz.completed"
)

// EventScoreSubmitted is published by the quiz service whenever a score
// submission passes validation.
type EventScoreSubmitted struct {
	Record ScoreRecord
}

func (EventScoreSubmitted) Name() string { return EventNameScoreSubmitted }

// EventQuizCompleted is published by the session engine when a quiz is
// submitted. Delivery to the server is best-effort.
type EventQuizCompleted struct {
	PlayerName     string
	Category       string
	Score          int
	TotalQuestions int
	TimeSpent      int
}

func (EventQuizCompleted) Name() string { return EventNameQuizCompleted }
