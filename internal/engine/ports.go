package engine

import (
	"context"
	"time"

	"assessment-service/internal/models"
)

// Synchronizer is the remote store of record. Every operation is attempted
// once and independently fallible; retries are the caller's business.
type Synchronizer interface {
	// LoadCatalog fetches the theme and question collections.
	LoadCatalog(ctx context.Context) ([]models.Theme, []models.Question, error)

	// CreateSession registers a new assessment for the user and returns the
	// identifier the remote store assigned to it.
	CreateSession(ctx context.Context, userID string) (string, error)

	// UpsertAnswer records an answer, replacing any previous answer for the
	// same (assessment, question) pair.
	UpsertAnswer(ctx context.Context, assessmentID, questionID string, selectedOption int) error

	// UpsertResult records a theme result, replacing any previous result for
	// the same (assessment, theme) pair.
	UpsertResult(ctx context.Context, assessmentID string, result models.ThemeResult) error

	// MarkSessionComplete finalizes the assessment record.
	MarkSessionComplete(ctx context.Context, assessmentID string, completedAt time.Time) error

	// LoadMostRecentCompletedSession returns the user's latest completed
	// assessment and its results, or an empty id when there is none.
	LoadMostRecentCompletedSession(ctx context.Context, userID string) (string, []models.ThemeResult, error)
}

// SnapshotStore is the durable local cache that lets a session survive a
// restart without a network round trip. LoadSession returns (nil, nil) when
// no snapshot exists.
type SnapshotStore interface {
	SaveSession(ctx context.Context, userID string, session *models.AssessmentSession) error
	LoadSession(ctx context.Context, userID string) (*models.AssessmentSession, error)
	DeleteSession(ctx context.Context, userID string) error
}

// EventSink receives lifecycle events and the outcomes of fire-and-forget
// remote calls, so failures stay observable without blocking the session.
type EventSink interface {
	Publish(eventType string, payload interface{}) error
}
