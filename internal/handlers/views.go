package handlers

import (
	"errors"
	"net/http"

	"assessment-service/internal/engine"
	"assessment-service/internal/models"

	"github.com/gin-gonic/gin"
)

// themeView is a theme rendered for one display language.
type themeView struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Color       string   `json:"color"`
	Tips        []string `json:"tips"`
}

// questionView is a question rendered for one display language.
type questionView struct {
	ID      string   `json:"id"`
	ThemeID string   `json:"theme_id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// resultView pairs a computed theme result with the display fields a report
// renderer needs.
type resultView struct {
	ThemeID string              `json:"theme_id"`
	Title   string              `json:"title"`
	Icon    string              `json:"icon"`
	Color   string              `json:"color"`
	Score   int                 `json:"score"`
	Status  models.ResultStatus `json:"status"`
	Tips    []string            `json:"tips"`
}

func renderTheme(th models.Theme, lang string) themeView {
	return themeView{
		ID:          th.ID,
		Title:       th.Title.Get(lang),
		Description: th.Description.Get(lang),
		Icon:        th.Icon,
		Color:       th.Color,
		Tips:        th.Tips.Get(lang),
	}
}

func renderQuestion(q models.Question, lang string) questionView {
	return questionView{
		ID:      q.ID,
		ThemeID: q.ThemeID,
		Text:    q.Text.Get(lang),
		Options: q.Options.Get(lang),
	}
}

func renderResult(result models.ThemeResult, th models.Theme, lang string) resultView {
	return resultView{
		ThemeID: result.ThemeID,
		Title:   th.Title.Get(lang),
		Icon:    th.Icon,
		Color:   th.Color,
		Score:   result.Score,
		Status:  result.Status,
		Tips:    th.Tips.Get(lang),
	}
}

// respondEngineError maps tagged engine errors onto HTTP statuses.
func respondEngineError(c *gin.Context, err error) {
	var engineErr *engine.Error
	if !errors.As(err, &engineErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	status := http.StatusBadRequest
	switch engineErr.Reason {
	case engine.ReasonNotAuthenticated:
		status = http.StatusUnauthorized
	case engine.ReasonNoActiveSession:
		status = http.StatusNotFound
	case engine.ReasonAlreadyCompleted:
		status = http.StatusConflict
	case engine.ReasonRemoteFailed:
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{
		"error":  engineErr.Message,
		"reason": engineErr.Reason,
	})
}
