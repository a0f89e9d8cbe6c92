package handlers

import (
	"net/http"

	"assessment-service/internal/auth"
	"assessment-service/internal/engine"

	"github.com/gin-gonic/gin"
)

type AssessmentHandler struct {
	Engine *engine.Engine
}

func NewAssessmentHandler(eng *engine.Engine) *AssessmentHandler {
	return &AssessmentHandler{Engine: eng}
}

// Start begins a new assessment session for the authenticated user.
func (h *AssessmentHandler) Start(c *gin.Context) {
	session, err := h.Engine.Start(c.Request.Context(), auth.UserID(c))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"session": session,
		"message": "Assessment started",
	})
}

// SubmitAnswer records the answer for the current question.
func (h *AssessmentHandler) SubmitAnswer(c *gin.Context) {
	var req struct {
		QuestionID     string `json:"question_id" binding:"required"`
		SelectedOption *int   `json:"selected_option" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	if err := h.Engine.Answer(c.Request.Context(), auth.UserID(c), req.QuestionID, *req.SelectedOption); err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Answer recorded"})
}

// Advance moves to the next question, completing the assessment when the
// last question of the last theme has been passed.
func (h *AssessmentHandler) Advance(c *gin.Context) {
	session, err := h.Engine.Advance(c.Request.Context(), auth.UserID(c))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session":   session,
		"completed": session.IsCompleted(),
	})
}

// Reset discards the session unconditionally.
func (h *AssessmentHandler) Reset(c *gin.Context) {
	if err := h.Engine.Reset(c.Request.Context(), auth.UserID(c)); err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Assessment reset"})
}

// GetState returns the session snapshot plus the current theme and question
// rendered for the session's display language.
func (h *AssessmentHandler) GetState(c *gin.Context) {
	ctx := c.Request.Context()
	userID := auth.UserID(c)
	session := h.Engine.Snapshot(ctx, userID)

	response := gin.H{"session": session}
	if th, err := h.Engine.CurrentTheme(ctx, userID); err == nil {
		response["current_theme"] = renderTheme(th, session.Language)
	}
	if q, err := h.Engine.CurrentQuestion(ctx, userID); err == nil {
		response["current_question"] = renderQuestion(q, session.Language)
	}
	c.JSON(http.StatusOK, response)
}

// SetLanguage selects the display language for the session.
func (h *AssessmentHandler) SetLanguage(c *gin.Context) {
	var req struct {
		Language string `json:"language" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	if err := h.Engine.SetLanguage(c.Request.Context(), auth.UserID(c), req.Language); err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Language updated"})
}
