package service

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeAnswerStore serves the progress tracker without a database.
type fakeAnswerStore struct {
	answered      map[int]struct{}
	total         int
	totalErr      error
	completedAt   *time.Time
	completionErr error
}

func (f *fakeAnswerStore) UpsertScore(ctx context.Context, in ScoreAnswer) error { return nil }
func (f *fakeAnswerStore) UpsertFreeText(ctx context.Context, userID, surveyID, questionID int, text string) error {
	return nil
}
func (f *fakeAnswerStore) RemoveAnswer(ctx context.Context, userID, surveyID, questionID int) error {
	return nil
}
func (f *fakeAnswerStore) UserAnswers(ctx context.Context, userID, surveyID int) ([]UserAnswer, error) {
	return nil, nil
}
func (f *fakeAnswerStore) AnsweredQuestionIDs(ctx context.Context, userID, surveyID int) (map[int]struct{}, error) {
	return f.answered, nil
}
func (f *fakeAnswerStore) TotalQuestions(ctx context.Context, userID, surveyID int) (int, error) {
	return f.total, f.totalErr
}
func (f *fakeAnswerStore) CompletionTime(ctx context.Context, userID, surveyID int) (*time.Time, error) {
	return f.completedAt, f.completionErr
}

func questionSet(ids ...int) map[int]struct{} {
	s := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func TestProgressPartial(t *testing.T) {
	tr := NewProgressTracker(&fakeAnswerStore{answered: questionSet(1, 3), total: 4})
	p, err := tr.Progress(context.Background(), 7, 1)
	if err != nil {
		t.Fatalf("Progress failed: %v", err)
	}
	if p.Answered != 2 || p.Total != 4 {
		t.Errorf("got %d/%d, want 2/4", p.Answered, p.Total)
	}
	if p.Completed || p.CompletedAt != nil {
		t.Errorf("partial progress must not be completed: %+v", p)
	}
}

func TestProgressCompletedUsesStoreTimestamp(t *testing.T) {
	stored := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tr := NewProgressTracker(&fakeAnswerStore{
		answered:    questionSet(1, 2),
		total:       2,
		completedAt: &stored,
	})
	p, err := tr.Progress(context.Background(), 7, 1)
	if err != nil {
		t.Fatalf("Progress failed: %v", err)
	}
	if !p.Completed {
		t.Fatal("want completed")
	}
	if p.CompletedAt == nil || !p.CompletedAt.Equal(stored) {
		t.Errorf("completed_at = %v, want %v", p.CompletedAt, stored)
	}
}

func TestProgressCompletedFallsBackToNow(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	tr := NewProgressTracker(&fakeAnswerStore{answered: questionSet(1), total: 1})
	tr.now = func() time.Time { return now }

	p, err := tr.Progress(context.Background(), 7, 1)
	if err != nil {
		t.Fatalf("Progress failed: %v", err)
	}
	if p.CompletedAt == nil || !p.CompletedAt.Equal(now) {
		t.Errorf("completed_at = %v, want read-time fallback %v", p.CompletedAt, now)
	}
}

func TestProgressCompletionLookupFailureIsNotFatal(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	tr := NewProgressTracker(&fakeAnswerStore{
		answered:      questionSet(1),
		total:         1,
		completionErr: errors.New("summary table unavailable"),
	})
	tr.now = func() time.Time { return now }

	p, err := tr.Progress(context.Background(), 7, 1)
	if err != nil {
		t.Fatalf("Progress must swallow completion-time errors, got %v", err)
	}
	if p.CompletedAt == nil || !p.CompletedAt.Equal(now) {
		t.Errorf("completed_at = %v, want fallback %v", p.CompletedAt, now)
	}
}

func TestProgressZeroQuestionsNeverCompletes(t *testing.T) {
	tr := NewProgressTracker(&fakeAnswerStore{answered: questionSet(), total: 0})
	p, err := tr.Progress(context.Background(), 7, 1)
	if err != nil {
		t.Fatalf("Progress failed: %v", err)
	}
	if p.Completed {
		t.Error("a survey with no questions must not report completed")
	}
}

func TestProgressPropagatesStoreErrors(t *testing.T) {
	want := &TransientStoreError{Err: errors.New("connection reset")}
	tr := NewProgressTracker(&fakeAnswerStore{answered: questionSet(1), totalErr: want})
	_, err := tr.Progress(context.Background(), 7, 1)
	var te *TransientStoreError
	if !errors.As(err, &te) {
		t.Fatalf("want TransientStoreError, got %v", err)
	}
}
