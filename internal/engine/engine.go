package engine

import (
	"context"
	"log"
	"sync"
	"time"

	"assessment-service/internal/catalog"
	"assessment-service/internal/models"
	"assessment-service/internal/scoring"
)

// Event routing keys published on the sink.
const (
	EventStarted        = "assessment.started"
	EventCompleted      = "assessment.completed"
	EventReset          = "assessment.reset"
	EventAnswerRecorded = "answer.recorded"
	EventAnswerSyncFail = "answer.sync_failed"
	EventResultsFetched = "results.fetched"
)

// Engine drives assessment sessions through the catalog: it enforces the
// NotStarted -> InProgress -> Completed state machine, records answers,
// computes results at completion and reconciles local and remote state.
//
// Local state is the source of truth while a session is in progress; the
// remote store is brought up to date with fire-and-forget answer upserts and
// an authoritative, blocking completion step.
type Engine struct {
	catalog *catalog.Catalog
	remote  Synchronizer
	store   SnapshotStore
	events  EventSink

	mu       sync.Mutex
	sessions map[string]*sessionState
}

// sessionState pairs a session with its own lock so one user's blocking
// completion never stalls another user's answers.
type sessionState struct {
	mu      sync.Mutex
	session *models.AssessmentSession
}

// New creates an engine over a validated catalog and its collaborators.
// events may be nil; failures are then only logged.
func New(cat *catalog.Catalog, remote Synchronizer, store SnapshotStore, events EventSink) *Engine {
	return &Engine{
		catalog:  cat,
		remote:   remote,
		store:    store,
		events:   events,
		sessions: map[string]*sessionState{},
	}
}

// Catalog returns the catalog this engine runs against.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// state returns the in-memory state for a user, restoring the cached snapshot
// on first touch after a restart.
func (e *Engine) state(ctx context.Context, userID string) *sessionState {
	e.mu.Lock()
	defer e.mu.Unlock()

	if st, ok := e.sessions[userID]; ok {
		return st
	}

	session, err := e.store.LoadSession(ctx, userID)
	if err != nil {
		log.Printf("failed to restore session snapshot for user %s: %v", userID, err)
	}
	if session == nil {
		session = models.NewAssessmentSession(userID)
	}
	if session.Answers == nil {
		session.Answers = map[string]models.Answer{}
	}
	st := &sessionState{session: session}
	e.sessions[userID] = st
	return st
}

// Start begins a new session: it obtains an assessment id from the remote
// store and, only on success, moves the session to InProgress with cursors at
// the first question and an empty answer set.
func (e *Engine) Start(ctx context.Context, userID string) (*models.AssessmentSession, error) {
	if userID == "" {
		return nil, newError(ReasonNotAuthenticated, "a signed-in user is required to start an assessment")
	}

	st := e.state(ctx, userID)
	st.mu.Lock()
	defer st.mu.Unlock()

	assessmentID, err := e.remote.CreateSession(ctx, userID)
	if err != nil {
		// Stay NotStarted (or whatever the previous state was).
		return nil, remoteError("could not create the assessment remotely", err)
	}

	session := models.NewAssessmentSession(userID)
	session.AssessmentID = assessmentID
	session.Status = models.SessionInProgress
	session.Language = st.session.Language
	st.session = session

	e.flush(ctx, st.session)
	e.publish(EventStarted, map[string]interface{}{"user_id": userID, "assessment_id": assessmentID})
	return session.Clone(), nil
}

// Answer upserts the answer for the question at the current cursor. The local
// upsert and cache flush happen before the call returns; the remote upsert is
// fire-and-forget, its failure is published on the event sink and never rolls
// back local state.
func (e *Engine) Answer(ctx context.Context, userID, questionID string, selectedOption int) error {
	st := e.state(ctx, userID)
	st.mu.Lock()
	defer st.mu.Unlock()

	if err := requireInProgress(st.session); err != nil {
		return err
	}

	current, ok := e.catalog.QuestionAt(st.session.ThemeCursor, st.session.QuestionCursor)
	if !ok {
		return newError(ReasonNoActiveSession, "session cursor points outside the catalog")
	}
	if current.ID != questionID {
		return newError(ReasonQuestionNotCurrent, "question %s is not the current question (%s)", questionID, current.ID)
	}
	if selectedOption < 0 || selectedOption >= current.OptionCount() {
		return newError(ReasonOptionOutOfRange, "option %d out of range for question %s (0-%d)",
			selectedOption, questionID, current.OptionCount()-1)
	}

	st.session.Answers[questionID] = models.Answer{QuestionID: questionID, SelectedOption: selectedOption}
	e.flush(ctx, st.session)

	go e.pushAnswer(st.session.AssessmentID, questionID, selectedOption)

	e.publish(EventAnswerRecorded, map[string]interface{}{
		"assessment_id":   st.session.AssessmentID,
		"question_id":     questionID,
		"selected_option": selectedOption,
	})
	return nil
}

// pushAnswer forwards one answer to the remote store. Reordering between two
// rapid upserts is tolerated: the remote key is (assessment, question), so
// the write is idempotent.
func (e *Engine) pushAnswer(assessmentID, questionID string, selectedOption int) {
	if err := e.remote.UpsertAnswer(context.Background(), assessmentID, questionID, selectedOption); err != nil {
		log.Printf("failed to sync answer %s for assessment %s: %v", questionID, assessmentID, err)
		e.publish(EventAnswerSyncFail, map[string]interface{}{
			"assessment_id": assessmentID,
			"question_id":   questionID,
			"error":         err.Error(),
		})
	}
}

// Advance moves the cursor to the next question, rolling over to the next
// theme when the current one is exhausted. Advancing past the last question
// of the last theme completes the session; completion failures leave the
// session InProgress and the same Advance call can be retried as a whole.
func (e *Engine) Advance(ctx context.Context, userID string) (*models.AssessmentSession, error) {
	st := e.state(ctx, userID)
	st.mu.Lock()
	defer st.mu.Unlock()

	if err := requireInProgress(st.session); err != nil {
		return nil, err
	}

	switch {
	case st.session.QuestionCursor < e.catalog.ThemeQuestionCount(st.session.ThemeCursor)-1:
		st.session.QuestionCursor++
	case st.session.ThemeCursor < e.catalog.ThemeCount()-1:
		st.session.ThemeCursor++
		st.session.QuestionCursor = 0
	default:
		if err := e.complete(ctx, st.session); err != nil {
			return nil, err
		}
	}

	e.flush(ctx, st.session)
	return st.session.Clone(), nil
}

// complete scores every theme in catalog order over the session's current
// answers, persists the results and the completion mark remotely, and only
// then flips the session to Completed. Each remote write is idempotent on its
// natural key, so a partially failed completion is safely retryable.
func (e *Engine) complete(ctx context.Context, session *models.AssessmentSession) error {
	var results []models.ThemeResult
	for _, th := range e.catalog.Themes() {
		result, ok := scoring.ScoreTheme(th.ID, e.catalog.ThemeQuestions(th.ID), session.Answers)
		if !ok {
			continue
		}
		results = append(results, result)
	}

	for _, result := range results {
		if err := e.remote.UpsertResult(ctx, session.AssessmentID, result); err != nil {
			return remoteError("could not persist the result for theme "+result.ThemeID, err)
		}
	}
	if err := e.remote.MarkSessionComplete(ctx, session.AssessmentID, time.Now().UTC()); err != nil {
		return remoteError("could not mark the assessment complete", err)
	}

	session.Results = results
	session.Status = models.SessionCompleted
	e.publish(EventCompleted, map[string]interface{}{
		"assessment_id": session.AssessmentID,
		"themes_scored": len(results),
	})
	return nil
}

// Reset discards the session unconditionally, from any state. Previously
// persisted remote records are untouched.
func (e *Engine) Reset(ctx context.Context, userID string) error {
	st := e.state(ctx, userID)
	st.mu.Lock()
	defer st.mu.Unlock()

	language := st.session.Language
	st.session = models.NewAssessmentSession(userID)
	st.session.Language = language

	if err := e.store.DeleteSession(ctx, userID); err != nil {
		log.Printf("failed to drop cached session for user %s: %v", userID, err)
	}
	e.publish(EventReset, map[string]interface{}{"user_id": userID})
	return nil
}

// SetLanguage selects which display-string field downstream renderers pick.
// It never affects scoring or progression.
func (e *Engine) SetLanguage(ctx context.Context, userID, language string) error {
	if !models.IsSupportedLanguage(language) {
		return newError(ReasonLanguageUnknown, "language %q is not supported", language)
	}

	st := e.state(ctx, userID)
	st.mu.Lock()
	defer st.mu.Unlock()

	st.session.Language = language
	e.flush(ctx, st.session)
	return nil
}

// Snapshot returns an immutable copy of the user's session state.
func (e *Engine) Snapshot(ctx context.Context, userID string) *models.AssessmentSession {
	st := e.state(ctx, userID)
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.session.Clone()
}

// CurrentTheme returns the theme at the session's cursor.
func (e *Engine) CurrentTheme(ctx context.Context, userID string) (models.Theme, error) {
	st := e.state(ctx, userID)
	st.mu.Lock()
	defer st.mu.Unlock()

	if err := requireInProgress(st.session); err != nil {
		return models.Theme{}, err
	}
	th, ok := e.catalog.ThemeAt(st.session.ThemeCursor)
	if !ok {
		return models.Theme{}, newError(ReasonNoActiveSession, "session cursor points outside the catalog")
	}
	return th, nil
}

// CurrentQuestion returns the question at the session's cursor.
func (e *Engine) CurrentQuestion(ctx context.Context, userID string) (models.Question, error) {
	st := e.state(ctx, userID)
	st.mu.Lock()
	defer st.mu.Unlock()

	if err := requireInProgress(st.session); err != nil {
		return models.Question{}, err
	}
	q, ok := e.catalog.QuestionAt(st.session.ThemeCursor, st.session.QuestionCursor)
	if !ok {
		return models.Question{}, newError(ReasonNoActiveSession, "session cursor points outside the catalog")
	}
	return q, nil
}

// Results returns the computed results of a completed session.
func (e *Engine) Results(ctx context.Context, userID string) ([]models.ThemeResult, error) {
	st := e.state(ctx, userID)
	st.mu.Lock()
	defer st.mu.Unlock()

	if !st.session.IsCompleted() {
		return nil, newError(ReasonNoActiveSession, "the session has no results yet")
	}
	out := make([]models.ThemeResult, len(st.session.Results))
	copy(out, st.session.Results)
	return out, nil
}

// LoadLatestResults fetches the user's most recent completed assessment from
// the remote store and adopts it as the local session state, so results
// survive a reinstall. Returns (nil, nil) when the user never completed one.
func (e *Engine) LoadLatestResults(ctx context.Context, userID string) ([]models.ThemeResult, error) {
	if userID == "" {
		return nil, newError(ReasonNotAuthenticated, "a signed-in user is required to fetch results")
	}

	st := e.state(ctx, userID)
	st.mu.Lock()
	defer st.mu.Unlock()

	assessmentID, results, err := e.remote.LoadMostRecentCompletedSession(ctx, userID)
	if err != nil {
		return nil, remoteError("could not fetch previous results", err)
	}
	if assessmentID == "" {
		return nil, nil
	}

	ordered := e.orderResults(results)
	session := models.NewAssessmentSession(userID)
	session.AssessmentID = assessmentID
	session.Status = models.SessionCompleted
	session.Results = ordered
	session.Language = st.session.Language
	st.session = session

	e.flush(ctx, st.session)
	e.publish(EventResultsFetched, map[string]interface{}{"user_id": userID, "assessment_id": assessmentID})

	out := make([]models.ThemeResult, len(ordered))
	copy(out, ordered)
	return out, nil
}

// orderResults arranges remote results in catalog theme order, dropping any
// that reference themes the current catalog no longer has.
func (e *Engine) orderResults(results []models.ThemeResult) []models.ThemeResult {
	byTheme := make(map[string]models.ThemeResult, len(results))
	for _, r := range results {
		byTheme[r.ThemeID] = r
	}
	var ordered []models.ThemeResult
	for _, th := range e.catalog.Themes() {
		if r, ok := byTheme[th.ID]; ok {
			ordered = append(ordered, r)
		}
	}
	return ordered
}

// flush write-through persists the session snapshot to the local cache. The
// in-memory session stays authoritative when the cache is unavailable.
func (e *Engine) flush(ctx context.Context, session *models.AssessmentSession) {
	if err := e.store.SaveSession(ctx, session.UserID, session); err != nil {
		log.Printf("failed to cache session snapshot for user %s: %v", session.UserID, err)
	}
}

func (e *Engine) publish(eventType string, payload interface{}) {
	if e.events == nil {
		return
	}
	if err := e.events.Publish(eventType, payload); err != nil {
		log.Printf("failed to publish %s event: %v", eventType, err)
	}
}

func requireInProgress(session *models.AssessmentSession) error {
	switch session.Status {
	case models.SessionInProgress:
		return nil
	case models.SessionCompleted:
		return newError(ReasonAlreadyCompleted, "the assessment is already completed")
	default:
		return newError(ReasonNoActiveSession, "no assessment in progress, call start first")
	}
}
