// Package sync adapts the Mongo repositories to the engine's Synchronizer
// capability. All mapping between raw store records and domain types happens
// here, behind validation, so malformed remote data never propagates inward.
package sync

import (
	"context"
	"fmt"
	"time"

	"assessment-service/internal/catalog"
	"assessment-service/internal/models"
	"assessment-service/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

type Synchronizer struct {
	Themes    *repository.ThemeRepository
	Questions *repository.QuestionRepository
	Sessions  *repository.SessionRepository
	Answers   *repository.AnswerRepository
	Results   *repository.ResultRepository
}

func NewSynchronizer(db *mongo.Database) *Synchronizer {
	return &Synchronizer{
		Themes:    repository.NewThemeRepository(db),
		Questions: repository.NewQuestionRepository(db),
		Sessions:  repository.NewSessionRepository(db),
		Answers:   repository.NewAnswerRepository(db),
		Results:   repository.NewResultRepository(db),
	}
}

// LoadCatalog fetches and validates the theme and question collections.
func (s *Synchronizer) LoadCatalog(ctx context.Context) ([]models.Theme, []models.Question, error) {
	themeRecords, err := s.Themes.FindAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load themes: %w", err)
	}
	questionRecords, err := s.Questions.FindAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load questions: %w", err)
	}

	themes := make([]models.Theme, 0, len(themeRecords))
	for _, rec := range themeRecords {
		th, err := mapTheme(rec)
		if err != nil {
			return nil, nil, err
		}
		themes = append(themes, th)
	}
	questions := make([]models.Question, 0, len(questionRecords))
	for _, rec := range questionRecords {
		q, err := mapQuestion(rec)
		if err != nil {
			return nil, nil, err
		}
		questions = append(questions, q)
	}
	return themes, questions, nil
}

func (s *Synchronizer) CreateSession(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("create session: user id is required")
	}
	return s.Sessions.Create(ctx, userID)
}

func (s *Synchronizer) UpsertAnswer(ctx context.Context, assessmentID, questionID string, selectedOption int) error {
	return s.Answers.Upsert(ctx, assessmentID, questionID, selectedOption)
}

func (s *Synchronizer) UpsertResult(ctx context.Context, assessmentID string, result models.ThemeResult) error {
	return s.Results.Upsert(ctx, assessmentID, result.ThemeID, result.Score, string(result.Status))
}

func (s *Synchronizer) MarkSessionComplete(ctx context.Context, assessmentID string, completedAt time.Time) error {
	return s.Sessions.MarkComplete(ctx, assessmentID, completedAt)
}

// LoadMostRecentCompletedSession returns the user's latest completed
// assessment and its validated results. An empty id means the user has never
// completed one.
func (s *Synchronizer) LoadMostRecentCompletedSession(ctx context.Context, userID string) (string, []models.ThemeResult, error) {
	record, err := s.Sessions.FindMostRecentCompleted(ctx, userID)
	if err != nil {
		return "", nil, err
	}
	if record == nil {
		return "", nil, nil
	}

	assessmentID := record.ID.Hex()
	resultRecords, err := s.Results.FindByAssessment(ctx, assessmentID)
	if err != nil {
		return "", nil, err
	}
	results := make([]models.ThemeResult, 0, len(resultRecords))
	for _, rec := range resultRecords {
		r, err := mapResult(rec)
		if err != nil {
			return "", nil, err
		}
		results = append(results, r)
	}
	return assessmentID, results, nil
}

// Seed upserts the built-in catalog when the remote collections are empty, so
// a fresh deployment serves the same canonical shape a populated one does.
func (s *Synchronizer) Seed(ctx context.Context) error {
	themeCount, err := s.Themes.Count(ctx)
	if err != nil {
		return err
	}
	questionCount, err := s.Questions.Count(ctx)
	if err != nil {
		return err
	}
	if themeCount > 0 || questionCount > 0 {
		return nil
	}

	for _, th := range catalog.DefaultThemes() {
		if err := s.Themes.Upsert(ctx, themeToRecord(th)); err != nil {
			return fmt.Errorf("seed theme %s: %w", th.ID, err)
		}
	}
	for _, q := range catalog.DefaultQuestions() {
		if err := s.Questions.Upsert(ctx, questionToRecord(q)); err != nil {
			return fmt.Errorf("seed question %s: %w", q.ID, err)
		}
	}
	return nil
}
