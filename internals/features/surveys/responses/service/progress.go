// file: internals/features/surveys/responses/service/progress.go
package service

import (
	"context"
	"log"
	"time"
)

/* =========================================================
   PROGRESS & COMPLETION TRACKER
========================================================= */

type Progress struct {
	Answered    int        `json:"progress_count"`
	Total       int        `json:"total_questions"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
}

// ProgressTracker is written once against AnswerStore; the two survey types
// differ only in what the store reports.
type ProgressTracker struct {
	store AnswerStore
	now   func() time.Time
}

func NewProgressTracker(store AnswerStore) *ProgressTracker {
	return &ProgressTracker{store: store, now: time.Now}
}

// Progress computes answered/total and the completion flag. CompletedAt is
// best-effort: the summary row's updated_at when the store has one, else the
// time of this read.
func (t *ProgressTracker) Progress(ctx context.Context, userID, surveyID int) (Progress, error) {
	ids, err := t.store.AnsweredQuestionIDs(ctx, userID, surveyID)
	if err != nil {
		return Progress{}, err
	}
	total, err := t.store.TotalQuestions(ctx, userID, surveyID)
	if err != nil {
		return Progress{}, err
	}

	answered := len(ids)
	completed := total > 0 && answered >= total

	var completedAt *time.Time
	if completed {
		ts, err := t.store.CompletionTime(ctx, userID, surveyID)
		if err != nil {
			// best effort only, never fail the read for this
			log.Printf("[WARNING] completion time lookup failed: %v", err)
			ts = nil
		}
		if ts == nil {
			now := t.now()
			ts = &now
		}
		completedAt = ts
	}

	return Progress{
		Answered:    answered,
		Total:       total,
		Completed:   completed,
		CompletedAt: completedAt,
	}, nil
}
