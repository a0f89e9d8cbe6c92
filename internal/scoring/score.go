package scoring

import (
	"math"

	"assessment-service/internal/models"
)

// Status thresholds on the normalized 0-100 value, inclusive on the lower
// bound of each band.
const (
	thresholdNormal   = 75.0
	thresholdMild     = 50.0
	thresholdModerate = 25.0
)

// ScoreTheme computes the 0-100 score and status for one theme from the
// answers recorded against its questions. Only answers that are present count
// toward the average; missing questions are never default-filled. A theme
// without a single answer is skipped entirely (ok is false) and must not
// appear in the results.
//
// Each answer is normalized against its own question's option scale before
// averaging, so questions with different option counts cannot skew the
// result. With the uniform 5-option catalog this is identical to dividing the
// raw average by 4.
func ScoreTheme(themeID string, questions []models.Question, answers map[string]models.Answer) (models.ThemeResult, bool) {
	var sum float64
	var count int
	for i := range questions {
		q := &questions[i]
		a, ok := answers[q.ID]
		if !ok {
			continue
		}
		scale := q.OptionCount() - 1
		if scale < 1 {
			continue
		}
		sum += float64(a.SelectedOption) / float64(scale)
		count++
	}
	if count == 0 {
		return models.ThemeResult{}, false
	}

	normalized := (sum / float64(count)) * 100
	return models.ThemeResult{
		ThemeID: themeID,
		Score:   int(math.Round(normalized)),
		Status:  statusFor(normalized),
	}, true
}

// statusFor maps the pre-rounding normalized value onto its band.
func statusFor(normalized float64) models.ResultStatus {
	switch {
	case normalized >= thresholdNormal:
		return models.StatusNormal
	case normalized >= thresholdMild:
		return models.StatusMild
	case normalized >= thresholdModerate:
		return models.StatusModerate
	default:
		return models.StatusSevere
	}
}
