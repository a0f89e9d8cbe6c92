package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"assessment-service/internal/catalog"
	"assessment-service/internal/models"
)

type answerUpsert struct {
	assessmentID   string
	questionID     string
	selectedOption int
}

type fakeSynchronizer struct {
	mu               sync.Mutex
	nextID           int
	failCreate       bool
	failUpsertAnswer bool
	failUpsertResult bool
	failMarkComplete bool
	answerUpserts    []answerUpsert
	resultUpserts    map[string]map[string]models.ThemeResult
	completed        map[string]time.Time
	latestID         string
	latestResults    []models.ThemeResult
}

func newFakeSynchronizer() *fakeSynchronizer {
	return &fakeSynchronizer{
		resultUpserts: map[string]map[string]models.ThemeResult{},
		completed:     map[string]time.Time{},
	}
}

func (f *fakeSynchronizer) LoadCatalog(ctx context.Context) ([]models.Theme, []models.Question, error) {
	return nil, nil, nil
}

func (f *fakeSynchronizer) CreateSession(ctx context.Context, userID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate {
		return "", errors.New("remote store unavailable")
	}
	f.nextID++
	return fmt.Sprintf("assessment-%d", f.nextID), nil
}

func (f *fakeSynchronizer) UpsertAnswer(ctx context.Context, assessmentID, questionID string, selectedOption int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpsertAnswer {
		return errors.New("remote store unavailable")
	}
	f.answerUpserts = append(f.answerUpserts, answerUpsert{assessmentID, questionID, selectedOption})
	return nil
}

func (f *fakeSynchronizer) UpsertResult(ctx context.Context, assessmentID string, result models.ThemeResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpsertResult {
		return errors.New("remote store unavailable")
	}
	if f.resultUpserts[assessmentID] == nil {
		f.resultUpserts[assessmentID] = map[string]models.ThemeResult{}
	}
	f.resultUpserts[assessmentID][result.ThemeID] = result
	return nil
}

func (f *fakeSynchronizer) MarkSessionComplete(ctx context.Context, assessmentID string, completedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failMarkComplete {
		return errors.New("remote store unavailable")
	}
	f.completed[assessmentID] = completedAt
	return nil
}

func (f *fakeSynchronizer) LoadMostRecentCompletedSession(ctx context.Context, userID string) (string, []models.ThemeResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latestID, f.latestResults, nil
}

func (f *fakeSynchronizer) answerCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.answerUpserts)
}

func (f *fakeSynchronizer) setFailUpsertAnswer(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failUpsertAnswer = fail
}

func (f *fakeSynchronizer) setFailMarkComplete(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failMarkComplete = fail
}

type fakeStore struct {
	mu       sync.Mutex
	sessions map[string]*models.AssessmentSession
}

func newFakeStore() *fakeStore {
	return &fakeStore{sessions: map[string]*models.AssessmentSession{}}
}

func (f *fakeStore) SaveSession(ctx context.Context, userID string, session *models.AssessmentSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[userID] = session.Clone()
	return nil
}

func (f *fakeStore) LoadSession(ctx context.Context, userID string) (*models.AssessmentSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.sessions[userID]; ok {
		return s.Clone(), nil
	}
	return nil, nil
}

func (f *fakeStore) DeleteSession(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, userID)
	return nil
}

type fakeSink struct {
	mu     sync.Mutex
	events []string
}

func (f *fakeSink) Publish(eventType string, payload interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, eventType)
	return nil
}

func (f *fakeSink) count(eventType string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, e := range f.events {
		if e == eventType {
			n++
		}
	}
	return n
}

// buildCatalog creates a catalog with one theme per entry in questionCounts,
// each question on a 5-option scale.
func buildCatalog(t *testing.T, questionCounts ...int) *catalog.Catalog {
	t.Helper()
	var themes []models.Theme
	var questions []models.Question
	for ti, count := range questionCounts {
		themeID := fmt.Sprintf("t%d", ti)
		themes = append(themes, models.Theme{ID: themeID, Position: ti})
		for qi := 0; qi < count; qi++ {
			questions = append(questions, models.Question{
				ID:       fmt.Sprintf("%sq%d", themeID, qi),
				ThemeID:  themeID,
				Position: qi,
				Options:  models.LocalizedList{EN: []string{"0", "1", "2", "3", "4"}},
			})
		}
	}
	cat, err := catalog.New(themes, questions)
	if err != nil {
		t.Fatalf("buildCatalog: %v", err)
	}
	return cat
}

func newTestEngine(t *testing.T, questionCounts ...int) (*Engine, *fakeSynchronizer, *fakeStore, *fakeSink) {
	t.Helper()
	remote := newFakeSynchronizer()
	store := newFakeStore()
	sink := &fakeSink{}
	return New(buildCatalog(t, questionCounts...), remote, store, sink), remote, store, sink
}

func waitFor(t *testing.T, condition func() bool, message string) {
	t.Helper()
	for i := 0; i < 200; i++ {
		if condition() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(message)
}

func TestStartRequiresAuthenticatedUser(t *testing.T) {
	eng, _, _, _ := newTestEngine(t, 2)

	if _, err := eng.Start(context.Background(), ""); !IsReason(err, ReasonNotAuthenticated) {
		t.Errorf("expected not_authenticated, got %v", err)
	}
}

func TestStartFailureStaysNotStarted(t *testing.T) {
	eng, remote, _, _ := newTestEngine(t, 2)
	remote.failCreate = true

	if _, err := eng.Start(context.Background(), "user-1"); !IsReason(err, ReasonRemoteFailed) {
		t.Fatalf("expected remote_failed, got %v", err)
	}

	snap := eng.Snapshot(context.Background(), "user-1")
	if snap.Status != models.SessionNotStarted {
		t.Errorf("expected not_started after remote failure, got %s", snap.Status)
	}
	if snap.AssessmentID != "" {
		t.Errorf("expected empty assessment id, got %s", snap.AssessmentID)
	}
}

func TestStartEntersInProgressAtFirstQuestion(t *testing.T) {
	eng, _, _, _ := newTestEngine(t, 2, 3)

	snap, err := eng.Start(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Status != models.SessionInProgress {
		t.Errorf("expected in_progress, got %s", snap.Status)
	}
	if snap.ThemeCursor != 0 || snap.QuestionCursor != 0 {
		t.Errorf("expected cursors (0,0), got (%d,%d)", snap.ThemeCursor, snap.QuestionCursor)
	}
	if snap.AssessmentID == "" {
		t.Error("expected the remote assessment id to be set")
	}
	if len(snap.Answers) != 0 {
		t.Errorf("expected empty answer set, got %d answers", len(snap.Answers))
	}
}

func TestAnswerUpsertIsIdempotent(t *testing.T) {
	eng, remote, _, _ := newTestEngine(t, 2)
	ctx := context.Background()
	if _, err := eng.Start(ctx, "user-1"); err != nil {
		t.Fatal(err)
	}

	if err := eng.Answer(ctx, "user-1", "t0q0", 1); err != nil {
		t.Fatalf("first answer: %v", err)
	}
	if err := eng.Answer(ctx, "user-1", "t0q0", 3); err != nil {
		t.Fatalf("second answer: %v", err)
	}

	snap := eng.Snapshot(ctx, "user-1")
	if len(snap.Answers) != 1 {
		t.Fatalf("expected exactly one answer, got %d", len(snap.Answers))
	}
	if snap.Answers["t0q0"].SelectedOption != 3 {
		t.Errorf("expected the second value 3, got %d", snap.Answers["t0q0"].SelectedOption)
	}

	waitFor(t, func() bool { return remote.answerCount() == 2 }, "expected both upserts to reach the remote store")
}

func TestAnswerValidation(t *testing.T) {
	eng, _, _, _ := newTestEngine(t, 2)
	ctx := context.Background()

	if err := eng.Answer(ctx, "user-1", "t0q0", 1); !IsReason(err, ReasonNoActiveSession) {
		t.Errorf("expected no_active_session before start, got %v", err)
	}

	if _, err := eng.Start(ctx, "user-1"); err != nil {
		t.Fatal(err)
	}

	if err := eng.Answer(ctx, "user-1", "t0q1", 1); !IsReason(err, ReasonQuestionNotCurrent) {
		t.Errorf("expected question_not_current, got %v", err)
	}
	if err := eng.Answer(ctx, "user-1", "t0q0", 5); !IsReason(err, ReasonOptionOutOfRange) {
		t.Errorf("expected option_out_of_range, got %v", err)
	}
	if err := eng.Answer(ctx, "user-1", "t0q0", -1); !IsReason(err, ReasonOptionOutOfRange) {
		t.Errorf("expected option_out_of_range for negative option, got %v", err)
	}

	snap := eng.Snapshot(ctx, "user-1")
	if len(snap.Answers) != 0 {
		t.Errorf("rejected answers must not mutate state, got %d answers", len(snap.Answers))
	}
}

func TestAdvanceVisitsEveryQuestionExactlyOnce(t *testing.T) {
	shapes := [][]int{
		{1},
		{3},
		{1, 1, 1},
		{2, 3, 1},
		{5, 2},
	}

	for _, shape := range shapes {
		t.Run(fmt.Sprintf("shape %v", shape), func(t *testing.T) {
			eng, _, _, _ := newTestEngine(t, shape...)
			ctx := context.Background()
			if _, err := eng.Start(ctx, "user-1"); err != nil {
				t.Fatal(err)
			}

			var visited []string
			total := 0
			for _, n := range shape {
				total += n
			}

			for i := 0; i < total; i++ {
				q, err := eng.CurrentQuestion(ctx, "user-1")
				if err != nil {
					t.Fatalf("step %d: %v", i, err)
				}
				visited = append(visited, q.ID)
				if err := eng.Answer(ctx, "user-1", q.ID, 0); err != nil {
					t.Fatalf("step %d answer: %v", i, err)
				}
				snap, err := eng.Advance(ctx, "user-1")
				if err != nil {
					t.Fatalf("step %d advance: %v", i, err)
				}
				if i < total-1 && snap.IsCompleted() {
					t.Fatalf("completed after %d of %d questions", i+1, total)
				}
				if i == total-1 && !snap.IsCompleted() {
					t.Fatal("expected completion after the last question of the last theme")
				}
			}

			expected := eng.Catalog().Questions()
			if len(visited) != len(expected) {
				t.Fatalf("visited %d questions, expected %d", len(visited), len(expected))
			}
			for i, q := range expected {
				if visited[i] != q.ID {
					t.Errorf("visit %d = %s, expected %s", i, visited[i], q.ID)
				}
			}
		})
	}
}

func TestCompletionScenarioTwoThemes(t *testing.T) {
	eng, remote, _, _ := newTestEngine(t, 2, 2)
	ctx := context.Background()
	if _, err := eng.Start(ctx, "user-1"); err != nil {
		t.Fatal(err)
	}

	// Theme A answered [4,4], theme B only gets its first question answered
	// with 0. B is still scored because at least one answer exists.
	steps := []struct {
		questionID string
		option     int
		answer     bool
	}{
		{"t0q0", 4, true},
		{"t0q1", 4, true},
		{"t1q0", 0, true},
		{"t1q1", 0, false},
	}
	var snap *models.AssessmentSession
	var err error
	for _, step := range steps {
		if step.answer {
			if err := eng.Answer(ctx, "user-1", step.questionID, step.option); err != nil {
				t.Fatalf("answer %s: %v", step.questionID, err)
			}
		}
		snap, err = eng.Advance(ctx, "user-1")
		if err != nil {
			t.Fatalf("advance after %s: %v", step.questionID, err)
		}
	}

	if !snap.IsCompleted() {
		t.Fatal("expected the session to be completed")
	}
	expected := []models.ThemeResult{
		{ThemeID: "t0", Score: 100, Status: models.StatusNormal},
		{ThemeID: "t1", Score: 0, Status: models.StatusSevere},
	}
	if len(snap.Results) != len(expected) {
		t.Fatalf("expected %d results, got %d", len(expected), len(snap.Results))
	}
	for i, want := range expected {
		if snap.Results[i] != want {
			t.Errorf("result %d = %+v, expected %+v", i, snap.Results[i], want)
		}
	}

	remote.mu.Lock()
	defer remote.mu.Unlock()
	if len(remote.completed) != 1 {
		t.Errorf("expected the remote session to be marked complete")
	}
	if len(remote.resultUpserts[snap.AssessmentID]) != 2 {
		t.Errorf("expected 2 remote result upserts, got %d", len(remote.resultUpserts[snap.AssessmentID]))
	}
}

func TestUnansweredThemeIsSkipped(t *testing.T) {
	eng, _, _, _ := newTestEngine(t, 1, 1)
	ctx := context.Background()
	if _, err := eng.Start(ctx, "user-1"); err != nil {
		t.Fatal(err)
	}

	if err := eng.Answer(ctx, "user-1", "t0q0", 2); err != nil {
		t.Fatal(err)
	}
	if _, err := eng.Advance(ctx, "user-1"); err != nil {
		t.Fatal(err)
	}
	snap, err := eng.Advance(ctx, "user-1")
	if err != nil {
		t.Fatal(err)
	}

	if !snap.IsCompleted() {
		t.Fatal("expected completion")
	}
	if len(snap.Results) != 1 || snap.Results[0].ThemeID != "t0" {
		t.Errorf("expected only theme t0 to be scored, got %+v", snap.Results)
	}
}

func TestAnswerSyncFailureDoesNotBlockProgression(t *testing.T) {
	eng, remote, _, sink := newTestEngine(t, 2)
	ctx := context.Background()
	if _, err := eng.Start(ctx, "user-1"); err != nil {
		t.Fatal(err)
	}
	remote.setFailUpsertAnswer(true)

	if err := eng.Answer(ctx, "user-1", "t0q0", 2); err != nil {
		t.Fatalf("answer must succeed despite a failing remote upsert, got %v", err)
	}
	snap, err := eng.Advance(ctx, "user-1")
	if err != nil {
		t.Fatalf("advance must proceed normally, got %v", err)
	}
	if snap.QuestionCursor != 1 {
		t.Errorf("expected question cursor 1, got %d", snap.QuestionCursor)
	}

	waitFor(t, func() bool { return sink.count(EventAnswerSyncFail) == 1 },
		"expected an answer.sync_failed event on the sink")
}

func TestCompletionFailureLeavesSessionInProgressAndIsRetryable(t *testing.T) {
	eng, remote, _, _ := newTestEngine(t, 1)
	ctx := context.Background()
	if _, err := eng.Start(ctx, "user-1"); err != nil {
		t.Fatal(err)
	}
	if err := eng.Answer(ctx, "user-1", "t0q0", 4); err != nil {
		t.Fatal(err)
	}

	remote.setFailMarkComplete(true)
	if _, err := eng.Advance(ctx, "user-1"); !IsReason(err, ReasonRemoteFailed) {
		t.Fatalf("expected remote_failed, got %v", err)
	}
	snap := eng.Snapshot(ctx, "user-1")
	if snap.Status != models.SessionInProgress {
		t.Fatalf("expected in_progress after completion failure, got %s", snap.Status)
	}
	if len(snap.Results) != 0 {
		t.Errorf("results must stay empty while in progress, got %d", len(snap.Results))
	}

	// The retry recomputes and re-upserts everything, so the partially
	// succeeded attempt has no lasting side effects.
	remote.setFailMarkComplete(false)
	snap, err := eng.Advance(ctx, "user-1")
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if !snap.IsCompleted() {
		t.Fatal("expected completion on retry")
	}
	if len(snap.Results) != 1 || snap.Results[0].Score != 100 {
		t.Errorf("unexpected results after retry: %+v", snap.Results)
	}
}

func TestResetClearsEverything(t *testing.T) {
	eng, _, store, _ := newTestEngine(t, 2)
	ctx := context.Background()
	if _, err := eng.Start(ctx, "user-1"); err != nil {
		t.Fatal(err)
	}
	if err := eng.Answer(ctx, "user-1", "t0q0", 3); err != nil {
		t.Fatal(err)
	}
	if err := eng.SetLanguage(ctx, "user-1", models.LanguageNL); err != nil {
		t.Fatal(err)
	}

	if err := eng.Reset(ctx, "user-1"); err != nil {
		t.Fatal(err)
	}

	snap := eng.Snapshot(ctx, "user-1")
	if snap.Status != models.SessionNotStarted {
		t.Errorf("expected not_started, got %s", snap.Status)
	}
	if snap.ThemeCursor != 0 || snap.QuestionCursor != 0 {
		t.Errorf("expected cursors (0,0), got (%d,%d)", snap.ThemeCursor, snap.QuestionCursor)
	}
	if len(snap.Answers) != 0 {
		t.Errorf("expected empty answers, got %d", len(snap.Answers))
	}
	if snap.AssessmentID != "" {
		t.Errorf("expected cleared assessment id, got %s", snap.AssessmentID)
	}
	if snap.Language != models.LanguageNL {
		t.Errorf("language is a display preference and should survive a reset, got %s", snap.Language)
	}

	if cached, _ := store.LoadSession(ctx, "user-1"); cached != nil {
		t.Error("expected the cached snapshot to be dropped")
	}
}

func TestSessionRestoredFromCacheAfterRestart(t *testing.T) {
	remote := newFakeSynchronizer()
	store := newFakeStore()
	cat := buildCatalog(t, 2, 2)
	ctx := context.Background()

	first := New(cat, remote, store, nil)
	if _, err := first.Start(ctx, "user-1"); err != nil {
		t.Fatal(err)
	}
	if err := first.Answer(ctx, "user-1", "t0q0", 2); err != nil {
		t.Fatal(err)
	}
	if _, err := first.Advance(ctx, "user-1"); err != nil {
		t.Fatal(err)
	}

	// A new engine over the same store stands in for a process restart.
	second := New(cat, remote, store, nil)
	snap := second.Snapshot(ctx, "user-1")
	if snap.Status != models.SessionInProgress {
		t.Fatalf("expected restored in_progress session, got %s", snap.Status)
	}
	if snap.ThemeCursor != 0 || snap.QuestionCursor != 1 {
		t.Errorf("expected cursors (0,1), got (%d,%d)", snap.ThemeCursor, snap.QuestionCursor)
	}
	if snap.Answers["t0q0"].SelectedOption != 2 {
		t.Errorf("expected restored answer, got %+v", snap.Answers)
	}
}

func TestSetLanguageRejectsUnknownLanguage(t *testing.T) {
	eng, _, _, _ := newTestEngine(t, 1)

	if err := eng.SetLanguage(context.Background(), "user-1", "fr"); !IsReason(err, ReasonLanguageUnknown) {
		t.Errorf("expected language_unknown, got %v", err)
	}
}

func TestLoadLatestResultsAdoptsRemoteSession(t *testing.T) {
	eng, remote, _, _ := newTestEngine(t, 1, 1, 1)
	ctx := context.Background()

	results, err := eng.LoadLatestResults(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results != nil {
		t.Fatalf("expected no results for a fresh user, got %+v", results)
	}

	remote.mu.Lock()
	remote.latestID = "assessment-9"
	remote.latestResults = []models.ThemeResult{
		{ThemeID: "t2", Score: 10, Status: models.StatusSevere},
		{ThemeID: "t0", Score: 80, Status: models.StatusNormal},
	}
	remote.mu.Unlock()

	results, err = eng.LoadLatestResults(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 || results[0].ThemeID != "t0" || results[1].ThemeID != "t2" {
		t.Errorf("expected results in catalog theme order, got %+v", results)
	}

	snap := eng.Snapshot(ctx, "user-1")
	if !snap.IsCompleted() || snap.AssessmentID != "assessment-9" {
		t.Errorf("expected the remote session to be adopted locally, got %+v", snap)
	}
}
