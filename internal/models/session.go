package models

// SessionStatus tracks where a session is in its lifecycle.
type SessionStatus string

const (
	SessionNotStarted SessionStatus = "not_started"
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
)

// AssessmentSession is one user's run through the catalog: the progression
// cursor, the answer set and, once completed, the per-theme results.
// AssessmentID is the remote store's identifier, assigned once at start and
// immutable for the session's lifetime; it is empty until the session starts.
// Only the engine mutates a session; everyone else works with copies.
type AssessmentSession struct {
	AssessmentID   string            `json:"assessment_id"`
	UserID         string            `json:"user_id"`
	Status         SessionStatus     `json:"status"`
	ThemeCursor    int               `json:"theme_cursor"`
	QuestionCursor int               `json:"question_cursor"`
	Answers        map[string]Answer `json:"answers"`
	Results        []ThemeResult     `json:"results"`
	Language       string            `json:"language"`
}

// NewAssessmentSession returns a fresh, not yet started session for a user.
func NewAssessmentSession(userID string) *AssessmentSession {
	return &AssessmentSession{
		UserID:   userID,
		Status:   SessionNotStarted,
		Answers:  map[string]Answer{},
		Language: LanguageEN,
	}
}

// IsCompleted reports whether the session has been finalized.
func (s *AssessmentSession) IsCompleted() bool {
	return s.Status == SessionCompleted
}

// Clone returns an independent copy of the session, so readers never hold a
// mutable alias of engine state.
func (s *AssessmentSession) Clone() *AssessmentSession {
	clone := *s
	clone.Answers = make(map[string]Answer, len(s.Answers))
	for id, a := range s.Answers {
		clone.Answers[id] = a
	}
	clone.Results = make([]ThemeResult, len(s.Results))
	copy(clone.Results, s.Results)
	return &clone
}
