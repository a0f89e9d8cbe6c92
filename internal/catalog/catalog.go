package catalog

import (
	"fmt"
	"sort"

	"assessment-service/internal/models"
)

// Catalog is the immutable set of themes and questions a session runs
// through. It is built once per boot from a single load path; the engine only
// reads it.
type Catalog struct {
	themes           []models.Theme
	questionsByTheme map[string][]models.Question
	questionCount    int
}

// New validates and indexes a catalog snapshot. Themes are ordered by
// position (ties broken by id so the order stays total), and questions are
// ordered by position within their theme. It rejects snapshots the engine
// cannot run against: no themes, a theme without questions, a question
// referencing an unknown theme, or a question with fewer than two options.
func New(themes []models.Theme, questions []models.Question) (*Catalog, error) {
	if len(themes) == 0 {
		return nil, fmt.Errorf("catalog has no themes")
	}

	ordered := make([]models.Theme, len(themes))
	copy(ordered, themes)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Position != ordered[j].Position {
			return ordered[i].Position < ordered[j].Position
		}
		return ordered[i].ID < ordered[j].ID
	})

	byTheme := make(map[string][]models.Question, len(ordered))
	for _, th := range ordered {
		if th.ID == "" {
			return nil, fmt.Errorf("catalog theme with empty id")
		}
		if _, exists := byTheme[th.ID]; exists {
			return nil, fmt.Errorf("duplicate theme %q in catalog", th.ID)
		}
		byTheme[th.ID] = nil
	}

	for i := range questions {
		q := questions[i]
		if q.ID == "" {
			return nil, fmt.Errorf("catalog question with empty id")
		}
		if _, known := byTheme[q.ThemeID]; !known {
			return nil, fmt.Errorf("question %q references unknown theme %q", q.ID, q.ThemeID)
		}
		if q.OptionCount() < 2 {
			return nil, fmt.Errorf("question %q has %d options, need at least 2", q.ID, q.OptionCount())
		}
		byTheme[q.ThemeID] = append(byTheme[q.ThemeID], q)
	}

	count := 0
	for _, th := range ordered {
		qs := byTheme[th.ID]
		if len(qs) == 0 {
			return nil, fmt.Errorf("theme %q has no questions", th.ID)
		}
		sort.Slice(qs, func(i, j int) bool {
			if qs[i].Position != qs[j].Position {
				return qs[i].Position < qs[j].Position
			}
			return qs[i].ID < qs[j].ID
		})
		count += len(qs)
	}

	return &Catalog{
		themes:           ordered,
		questionsByTheme: byTheme,
		questionCount:    count,
	}, nil
}

// ThemeCount returns the number of themes.
func (c *Catalog) ThemeCount() int {
	return len(c.themes)
}

// QuestionCount returns the total number of questions across all themes.
func (c *Catalog) QuestionCount() int {
	return c.questionCount
}

// Themes returns the themes in presentation order.
func (c *Catalog) Themes() []models.Theme {
	out := make([]models.Theme, len(c.themes))
	copy(out, c.themes)
	return out
}

// Theme returns the theme with the given id.
func (c *Catalog) Theme(id string) (models.Theme, bool) {
	for _, th := range c.themes {
		if th.ID == id {
			return th, true
		}
	}
	return models.Theme{}, false
}

// ThemeAt returns the theme at the given position in presentation order.
func (c *Catalog) ThemeAt(index int) (models.Theme, bool) {
	if index < 0 || index >= len(c.themes) {
		return models.Theme{}, false
	}
	return c.themes[index], true
}

// ThemeQuestions returns the questions of one theme in presentation order.
func (c *Catalog) ThemeQuestions(themeID string) []models.Question {
	qs := c.questionsByTheme[themeID]
	out := make([]models.Question, len(qs))
	copy(out, qs)
	return out
}

// ThemeQuestionCount returns how many questions the theme at the given index
// has, or 0 when the index is out of range.
func (c *Catalog) ThemeQuestionCount(themeIndex int) int {
	th, ok := c.ThemeAt(themeIndex)
	if !ok {
		return 0
	}
	return len(c.questionsByTheme[th.ID])
}

// QuestionAt returns the question at a (theme, question) cursor position.
func (c *Catalog) QuestionAt(themeIndex, questionIndex int) (models.Question, bool) {
	th, ok := c.ThemeAt(themeIndex)
	if !ok {
		return models.Question{}, false
	}
	qs := c.questionsByTheme[th.ID]
	if questionIndex < 0 || questionIndex >= len(qs) {
		return models.Question{}, false
	}
	return qs[questionIndex], true
}

// Questions returns every question, theme by theme in presentation order.
func (c *Catalog) Questions() []models.Question {
	out := make([]models.Question, 0, c.questionCount)
	for _, th := range c.themes {
		out = append(out, c.questionsByTheme[th.ID]...)
	}
	return out
}
