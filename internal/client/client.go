// Package client talks to the trivia API over HTTP/JSON.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/knowledgetester/trivia/internal/domain"
	"github.com/knowledgetester/trivia/internal/errors"
	"github.com/knowledgetester/trivia/internal/event"
)

const defaultTimeout = 10 * time.Second

// FallbackCategories is shown when the category service is
// unreachable, so the home screen always has something to offer.
var FallbackCategories = []string{"science", "history", "geography", "technology", "sports"}

type Config struct {
	// BaseURL is the API root, e.g. http://localhost:3000/api.
	BaseURL string
	Timeout time.Duration

	// EventBus, when set, delivers quiz completions to SubmitScore
	// best-effort.
	EventBus *event.Bus
}

type Client struct {
	base string
	http *http.Client
}

func New(c Config) *Client {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	cl := &Client{
		base: c.BaseURL,
		http: &http.Client{Timeout: timeout},
	}

	if c.EventBus != nil {
		c.EventBus.Subscribe(domain.EventNameQuizCompleted, func(ctx context.Context, e event.Event) error {
			return cl.submitCompleted(ctx, e.(domain.EventQuizCompleted))
		})
	}

	return cl
}

// Categories lists the available categories. A failure is logged and
// answered with the fallback list: the home screen must render even
// when the server is down.
func (c *Client) Categories(ctx context.Context) []string {
	var categories []string
	if err := c.get(ctx, c.base+"/categories", &categories); err != nil {
		slog.WarnContext(ctx, "client: load categories failed, using fallback", "error", err)
		return append([]string(nil), FallbackCategories...)
	}

	return categories
}

// Questions fetches the shuffled question list for a category.
func (c *Client) Questions(ctx context.Context, category string) ([]domain.Question, error) {
	var questions []domain.Question
	if err := c.get(ctx, c.base+"/questions/"+category, &questions); err != nil {
		return nil, err
	}

	return questions, nil
}

type submitScoreRequest struct {
	PlayerName     string `json:"playerName"`
	Category       string `json:"category"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"totalQuestions"`
	TimeSpent      int    `json:"timeSpent"`
}

type submitScoreResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    domain.ScoreRecord `json:"data"`
}

// SubmitScore posts a finished quiz to the server and returns the
// recorded score.
func (c *Client) SubmitScore(ctx context.Context, e domain.EventQuizCompleted) (*domain.ScoreRecord, error) {
	body, err := json.Marshal(submitScoreRequest{
		PlayerName:     e.PlayerName,
		Category:       e.Category,
		Score:          e.Score,
		TotalQuestions: e.TotalQuestions,
		TimeSpent:      e.TimeSpent,
	})
	if err != nil {
		return nil, errors.Internal(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/scores", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Internal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp submitScoreResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}

	return &resp.Data, nil
}

// submitCompleted is the bus handler behind fire-and-forget delivery:
// a returned error is logged by the bus and goes no further.
func (c *Client) submitCompleted(ctx context.Context, e domain.EventQuizCompleted) error {
	rec, err := c.SubmitScore(ctx, e)
	if err != nil {
		return fmt.Errorf("submit score: %w", err)
	}

	slog.InfoContext(ctx, "client: score submitted",
		"id", rec.ID,
		"player", rec.PlayerName,
		"percentage", rec.Percentage,
	)
	return nil
}

func (c *Client) get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Internal(err)
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.New(errors.CodeUnavailable,
			errors.WithMessagef("request %s failed", req.URL.Path),
			errors.WithCause(err),
		)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.New(errors.CodeUnavailable,
			errors.WithMessagef("read response from %s", req.URL.Path),
			errors.WithCause(err),
		)
	}

	if resp.StatusCode != http.StatusOK {
		var e struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
			return errors.New(codeForStatus(resp.StatusCode), errors.WithMessagef("%s", e.Error))
		}

		return errors.New(codeForStatus(resp.StatusCode), errors.WithMessagef("HTTP %d from %s", resp.StatusCode, req.URL.Path))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Internal(fmt.Errorf("decode response from %s: %w", req.URL.Path, err))
	}

	return nil
}

func codeForStatus(status int) errors.Code {
	switch status {
	case http.StatusNotFound:
		return errors.CodeNotFound
	case http.StatusBadRequest:
		return errors.CodeInvalidArgument
	default:
		return errors.CodeUnavailable
	}
}
