package models

// Answer records the option a user selected for one question. A session holds
// at most one answer per question; re-answering replaces the previous value.
type Answer struct {
	QuestionID     string `bson:"question_id" json:"question_id"`
	SelectedOption int    `bson:"selected_option" json:"selected_option"`
}
