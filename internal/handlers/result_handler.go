package handlers

import (
	"net/http"

	"assessment-service/internal/auth"
	"assessment-service/internal/engine"
	"assessment-service/internal/models"

	"github.com/gin-gonic/gin"
)

type ResultHandler struct {
	Engine *engine.Engine
}

func NewResultHandler(eng *engine.Engine) *ResultHandler {
	return &ResultHandler{Engine: eng}
}

func (h *ResultHandler) renderResults(results []models.ThemeResult, lang string) []resultView {
	views := make([]resultView, 0, len(results))
	for _, result := range results {
		th, _ := h.Engine.Catalog().Theme(result.ThemeID)
		views = append(views, renderResult(result, th, lang))
	}
	return views
}

// GetResults returns the results of the user's completed session, with the
// display fields a report renderer needs.
func (h *ResultHandler) GetResults(c *gin.Context) {
	ctx := c.Request.Context()
	userID := auth.UserID(c)

	results, err := h.Engine.Results(ctx, userID)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	lang := h.Engine.Snapshot(ctx, userID).Language
	c.JSON(http.StatusOK, gin.H{"results": h.renderResults(results, lang)})
}

// GetLatestResults fetches the user's most recent completed assessment from
// the remote store.
func (h *ResultHandler) GetLatestResults(c *gin.Context) {
	ctx := c.Request.Context()
	userID := auth.UserID(c)

	results, err := h.Engine.LoadLatestResults(ctx, userID)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	if results == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No completed assessment found"})
		return
	}
	lang := h.Engine.Snapshot(ctx, userID).Language
	c.JSON(http.StatusOK, gin.H{"results": h.renderResults(results, lang)})
}
