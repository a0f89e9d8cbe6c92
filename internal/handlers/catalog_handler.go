package handlers

import (
	"net/http"

	"assessment-service/internal/catalog"
	"assessment-service/internal/models"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	Catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{Catalog: cat}
}

func displayLanguage(c *gin.Context) (string, bool) {
	lang := c.DefaultQuery("lang", models.LanguageEN)
	if !models.IsSupportedLanguage(lang) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported language"})
		return "", false
	}
	return lang, true
}

// GetThemes returns all themes in presentation order.
func (h *CatalogHandler) GetThemes(c *gin.Context) {
	lang, ok := displayLanguage(c)
	if !ok {
		return
	}
	themes := h.Catalog.Themes()
	views := make([]themeView, 0, len(themes))
	for _, th := range themes {
		views = append(views, renderTheme(th, lang))
	}
	c.JSON(http.StatusOK, gin.H{"themes": views})
}

// GetTheme returns a specific theme with its tips.
func (h *CatalogHandler) GetTheme(c *gin.Context) {
	lang, ok := displayLanguage(c)
	if !ok {
		return
	}
	th, found := h.Catalog.Theme(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Theme not found"})
		return
	}
	c.JSON(http.StatusOK, renderTheme(th, lang))
}

// GetQuestions returns every question, theme by theme in presentation order.
func (h *CatalogHandler) GetQuestions(c *gin.Context) {
	lang, ok := displayLanguage(c)
	if !ok {
		return
	}
	questions := h.Catalog.Questions()
	views := make([]questionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, renderQuestion(q, lang))
	}
	c.JSON(http.StatusOK, gin.H{"questions": views})
}

// GetThemeQuestions returns the questions of one theme.
func (h *CatalogHandler) GetThemeQuestions(c *gin.Context) {
	lang, ok := displayLanguage(c)
	if !ok {
		return
	}
	themeID := c.Param("id")
	if _, found := h.Catalog.Theme(themeID); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Theme not found"})
		return
	}
	questions := h.Catalog.ThemeQuestions(themeID)
	views := make([]questionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, renderQuestion(q, lang))
	}
	c.JSON(http.StatusOK, gin.H{"questions": views})
}
