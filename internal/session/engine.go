// Package session drives one player's quiz attempt: the screen state
// machine, answer tracking, per-question countdown, and score
// computation. It has no rendering surface of its own; callers observe
// it through Snapshot and the OnTick callback.
package session

import (
	"context"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/knowledgetester/trivia/internal/domain"
	"github.com/knowledgetester/trivia/internal/errors"
	"github.com/knowledgetester/trivia/internal/event"
)

type Screen string

const (
	ScreenHome    Screen = "home"
	ScreenQuiz    Screen = "quiz"
	ScreenResults Screen = "results"
)

const (
	defaultTimeLimit = 30
	defaultWarnAt    = 10
)

// QuestionFetcher loads the questions for a category. The fetch blocks
// the Home -> Quiz transition; its error is surfaced to the caller.
type QuestionFetcher interface {
	Questions(ctx context.Context, category string) ([]domain.Question, error)
}

type Config struct {
	Fetcher  QuestionFetcher
	EventBus *event.Bus

	// TimeLimit is the per-question countdown in seconds. WarnAt is the
	// remaining-seconds threshold for the cosmetic warning signal.
	TimeLimit int
	WarnAt    int

	// OnTick is called once per countdown second, outside the engine
	// lock. Purely informational.
	OnTick func(remaining int, warning bool)

	// NewTickerFunc and NowFunc override time. Defaults use the real
	// clock.
	NewTickerFunc func(d time.Duration) Ticker
	NowFunc       func() time.Time
}

// State is the mutable quiz attempt. Score and TimeSpent are derived at
// submission, not maintained incrementally.
type State struct {
	PlayerName   string
	Category     string
	Questions    []domain.Question
	CurrentIndex int
	Answers      map[int]int
	Score        int
	TimeSpent    int
	StartTime    time.Time
}

// Snapshot is a read-only copy of the engine state.
type Snapshot struct {
	Screen       Screen
	PlayerName   string
	Category     string
	Questions    []domain.Question
	CurrentIndex int
	Answers      map[int]int
	Score        int
	TimeSpent    int
}

// Engine is safe for use from multiple goroutines; the countdown
// goroutine and callers serialize on one mutex, so no transition ever
// observes a half-applied state.
type Engine struct {
	fetcher   QuestionFetcher
	eb        *event.Bus
	limit     int
	warnAt    int
	onTick    func(remaining int, warning bool)
	newTicker func(d time.Duration) Ticker
	now       func() time.Time

	mu        sync.Mutex
	screen    Screen
	state     *State
	remaining int
	stop      chan struct{}
	epoch     int
}

func NewEngine(c Config) *Engine {
	e := &Engine{
		fetcher:   c.Fetcher,
		eb:        c.EventBus,
		limit:     c.TimeLimit,
		warnAt:    c.WarnAt,
		onTick:    c.OnTick,
		newTicker: c.NewTickerFunc,
		now:       c.NowFunc,
		screen:    ScreenHome,
	}

	if e.limit <= 0 {
		e.limit = defaultTimeLimit
	}
	if e.warnAt <= 0 {
		e.warnAt = defaultWarnAt
	}
	if e.newTicker == nil {
		e.newTicker = newTimeTicker
	}
	if e.now == nil {
		e.now = time.Now
	}

	return e
}

func (e *Engine) Screen() Screen {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.screen
}

// Start moves Home -> Quiz: validates the player name, fetches the
// questions, and begins the first countdown. On any failure the engine
// stays on Home with no state change.
func (e *Engine) Start(ctx context.Context, playerName, category string) error {
	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return errors.New(errors.CodeInvalidArgument, errors.WithMessagef("player name must not be empty"))
	}

	e.mu.Lock()
	if e.screen != ScreenHome {
		e.mu.Unlock()
		return errors.New(errors.CodeFailedPrecondition, errors.WithMessagef("quiz already in progress"))
	}
	e.mu.Unlock()

	// Fetch outside the lock: the engine stays responsive and nothing
	// has committed yet.
	questions, err := e.fetcher.Questions(ctx, category)
	if err != nil {
		return err
	}

	if len(questions) == 0 {
		return errors.New(errors.CodeFailedPrecondition, errors.WithMessagef("no questions available for category %q", category))
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.screen != ScreenHome {
		return errors.New(errors.CodeFailedPrecondition, errors.WithMessagef("quiz already in progress"))
	}

	e.state = &State{
		PlayerName: playerName,
		Category:   category,
		Questions:  questions,
		Answers:    make(map[int]int),
		StartTime:  e.now(),
	}
	e.screen = ScreenQuiz
	e.startCountdownLocked()

	return nil
}

// SelectOption records the answer for the current question, replacing
// any earlier choice.
func (e *Engine) SelectOption(option int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.screen != ScreenQuiz {
		return errors.New(errors.CodeFailedPrecondition, errors.WithMessagef("no active quiz"))
	}

	q := e.state.Questions[e.state.CurrentIndex]
	if option < 0 || option >= len(q.Options) {
		return errors.New(errors.CodeInvalidArgument, errors.WithMessagef("option %d out of range", option))
	}

	e.state.Answers[e.state.CurrentIndex] = option
	return nil
}

// Next advances to the following question and restarts the countdown.
// No-op on the last question.
func (e *Engine) Next() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.screen != ScreenQuiz || e.state.CurrentIndex >= len(e.state.Questions)-1 {
		return
	}

	e.state.CurrentIndex++
	e.startCountdownLocked()
}

// Previous steps back one question and restarts the countdown. The
// countdown never carries remaining time between questions. No-op on
// the first question.
func (e *Engine) Previous() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.screen != ScreenQuiz || e.state.CurrentIndex == 0 {
		return
	}

	e.state.CurrentIndex--
	e.startCountdownLocked()
}

// Submit finishes the quiz: Quiz -> Results. Only valid on the last
// question. The score submission rides the event bus and never blocks
// or fails the transition.
func (e *Engine) Submit() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.screen != ScreenQuiz {
		return errors.New(errors.CodeFailedPrecondition, errors.WithMessagef("no active quiz"))
	}

	if e.state.CurrentIndex != len(e.state.Questions)-1 {
		return errors.New(errors.CodeFailedPrecondition, errors.WithMessagef("not on the last question"))
	}

	e.submitLocked()
	return nil
}

func (e *Engine) submitLocked() {
	score := 0
	for i, q := range e.state.Questions {
		if a, ok := e.state.Answers[i]; ok && a == q.Correct {
			score++
		}
	}

	e.state.Score = score
	e.state.TimeSpent = int(math.Round(e.now().Sub(e.state.StartTime).Seconds()))

	e.stopCountdownLocked()
	e.screen = ScreenResults

	e.eb.Publish(context.Background(), domain.EventQuizCompleted{
		PlayerName:     e.state.PlayerName,
		Category:       e.state.Category,
		Score:          e.state.Score,
		TotalQuestions: len(e.state.Questions),
		TimeSpent:      e.state.TimeSpent,
	})
}

// GoHome resets the session from any screen and cancels the countdown.
func (e *Engine) GoHome() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopCountdownLocked()
	e.state = nil
	e.screen = ScreenHome
}

// Remaining returns the seconds left on the current countdown.
func (e *Engine) Remaining() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.remaining
}

// Snapshot copies the current state for rendering. Fails on Home, where
// there is no session.
func (e *Engine) Snapshot() (Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == nil {
		return Snapshot{}, errors.New(errors.CodeFailedPrecondition, errors.WithMessagef("no session"))
	}

	answers := make(map[int]int, len(e.state.Answers))
	for i, a := range e.state.Answers {
		answers[i] = a
	}

	return Snapshot{
		Screen:       e.screen,
		PlayerName:   e.state.PlayerName,
		Category:     e.state.Category,
		Questions:    e.state.Questions,
		CurrentIndex: e.state.CurrentIndex,
		Answers:      answers,
		Score:        e.state.Score,
		TimeSpent:    e.state.TimeSpent,
	}, nil
}
