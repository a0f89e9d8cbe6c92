package sync

import (
	"fmt"

	"assessment-service/internal/models"
	"assessment-service/internal/repository"
)

// mapTheme validates a raw theme record and converts it to the domain type.
func mapTheme(rec repository.ThemeRecord) (models.Theme, error) {
	if rec.ID == "" {
		return models.Theme{}, fmt.Errorf("theme record with empty id")
	}
	if rec.Title.EN == "" {
		return models.Theme{}, fmt.Errorf("theme %q has no title", rec.ID)
	}
	return models.Theme{
		ID:          rec.ID,
		Position:    rec.Position,
		Title:       rec.Title,
		Description: rec.Description,
		Icon:        rec.Icon,
		Color:       rec.Color,
		Tips:        rec.Tips,
	}, nil
}

// mapQuestion validates a raw question record and converts it to the domain
// type. Translated option lists must match the canonical scale length.
func mapQuestion(rec repository.QuestionRecord) (models.Question, error) {
	if rec.ID == "" {
		return models.Question{}, fmt.Errorf("question record with empty id")
	}
	if rec.ThemeID == "" {
		return models.Question{}, fmt.Errorf("question %q has no theme", rec.ID)
	}
	if len(rec.Options.EN) < 2 {
		return models.Question{}, fmt.Errorf("question %q has %d options, need at least 2", rec.ID, len(rec.Options.EN))
	}
	if len(rec.Options.NL) > 0 && len(rec.Options.NL) != len(rec.Options.EN) {
		return models.Question{}, fmt.Errorf("question %q option translations do not match the scale", rec.ID)
	}
	return models.Question{
		ID:       rec.ID,
		ThemeID:  rec.ThemeID,
		Position: rec.Position,
		Text:     rec.Text,
		Options:  rec.Options,
	}, nil
}

// mapResult validates a raw result record and converts it to the domain type.
func mapResult(rec repository.ResultRecord) (models.ThemeResult, error) {
	if rec.ThemeID == "" {
		return models.ThemeResult{}, fmt.Errorf("result record with empty theme id")
	}
	if rec.Score < 0 || rec.Score > 100 {
		return models.ThemeResult{}, fmt.Errorf("result for theme %q has score %d outside 0-100", rec.ThemeID, rec.Score)
	}
	status := models.ResultStatus(rec.Status)
	switch status {
	case models.StatusNormal, models.StatusMild, models.StatusModerate, models.StatusSevere:
	default:
		return models.ThemeResult{}, fmt.Errorf("result for theme %q has unknown status %q", rec.ThemeID, rec.Status)
	}
	return models.ThemeResult{ThemeID: rec.ThemeID, Score: rec.Score, Status: status}, nil
}

func themeToRecord(th models.Theme) repository.ThemeRecord {
	return repository.ThemeRecord{
		ID:          th.ID,
		Position:    th.Position,
		Title:       th.Title,
		Description: th.Description,
		Icon:        th.Icon,
		Color:       th.Color,
		Tips:        th.Tips,
	}
}

func questionToRecord(q models.Question) repository.QuestionRecord {
	return repository.QuestionRecord{
		ID:       q.ID,
		ThemeID:  q.ThemeID,
		Position: q.Position,
		Text:     q.Text,
		Options:  q.Options,
	}
}
