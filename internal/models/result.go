package models

// ResultStatus is the qualitative band a theme score falls into.
type ResultStatus string

const (
	StatusNormal   ResultStatus = "normal"
	StatusMild     ResultStatus = "mild"
	StatusModerate ResultStatus = "moderate"
	StatusSevere   ResultStatus = "severe"
)

// ThemeResult is the computed score and status for one theme within a
// completed session. Derived, never hand-edited.
type ThemeResult struct {
	ThemeID string       `bson:"theme_id" json:"theme_id"`
	Score   int          `bson:"score" json:"score"`
	Status  ResultStatus `bson:"status" json:"status"`
}
