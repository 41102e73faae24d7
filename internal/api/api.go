// Package api binds the quiz services to the HTTP/JSON surface.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/knowledgetester/trivia/internal/errors"
	"github.com/knowledgetester/trivia/internal/leaderboard"
	"github.com/knowledgetester/trivia/internal/quiz"
)

type Config struct {
	Router      gin.IRouter
	Quiz        *quiz.Service
	Leaderboard *leaderboard.Service
}

type API struct {
	qs *quiz.Service
	ls *leaderboard.Service
}

func New(c Config) *API {
	a := &API{
		qs: c.Quiz,
		ls: c.Leaderboard,
	}

	c.Router.GET("/categories", a.GetCategories)
	c.Router.GET("/questions/:category", a.GetQuestions)
	c.Router.POST("/scores", a.SubmitScore)
	c.Router.GET("/leaderboard/:category", a.GetLeaderboard)

	return a
}

func (a *API) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, a.qs.Categories(c.Request.Context()))
}

func (a *API) GetQuestions(c *gin.Context) {
	qs, err := a.qs.Questions(c.Request.Context(), c.Param("category"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, qs)
}

// SubmitScoreRequest is the POST /scores body.
type SubmitScoreRequest struct {
	PlayerName     string `json:"playerName"`
	Category       string `json:"category"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"totalQuestions"`
	TimeSpent      int    `json:"timeSpent"`
}

type SubmitScoreResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func (a *API) SubmitScore(c *gin.Context) {
	var req SubmitScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, errors.New(errors.CodeInvalidArgument,
			errors.WithMessagef("Missing required fields"),
			errors.WithCause(err),
		))
		return
	}

	rec, err := a.qs.SubmitScore(c.Request.Context(), quiz.SubmitScoreRequest{
		PlayerName:     req.PlayerName,
		Category:       req.Category,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
		TimeSpent:      req.TimeSpent,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SubmitScoreResponse{
		Success: true,
		Message: "Score recorded",
		Data:    rec,
	})
}

func (a *API) GetLeaderboard(c *gin.Context) {
	l, err := a.ls.GetLeaderboard(c.Request.Context(), leaderboard.GetLeaderboardRequest{
		Category: c.Param("category"),
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, l)
}

func abortWithError(c *gin.Context, err error) {
	e := errors.Convert(err)
	c.AbortWithStatusJSON(e.HTTPStatusCode(), gin.H{"error": e.Message})
}
