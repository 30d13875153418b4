// file: internals/features/surveys/responses/service/store.go
package service

import (
	"context"
	"time"
)

/* =========================================================
   ANSWER STORE

   One interface over two inverted physical layouts:
     organizational: one row per (user, survey), array indexed by question
     growth:         one row per (question, survey), array indexed by user
   The scoring calculator, progress tracker and controllers are written
   once against this interface.
========================================================= */

// ScoreAnswer is one single-choice answer write.
type ScoreAnswer struct {
	UserID     int
	SurveyID   int
	QuestionID int
	Score      float64

	// CategoryID: organizational fixed category (1..8).
	CategoryID int
	// Category: growth free-form label, denormalized onto the question row.
	Category string
}

// UserAnswer is the read-side projection of one answered question.
type UserAnswer struct {
	QuestionID int      `json:"question_id"`
	Score      *float64 `json:"score"`
	AnswerText string   `json:"answer_text,omitempty"`
}

type AnswerStore interface {
	// UpsertScore replaces any previous answer by the same user to the same
	// question, then recomputes derived scores, all in one transaction.
	UpsertScore(ctx context.Context, in ScoreAnswer) error

	// UpsertFreeText upserts the side-table text answer. Blank text is a
	// ValidationError. Free text counts toward completion, never toward
	// numeric scores.
	UpsertFreeText(ctx context.Context, userID, surveyID, questionID int, text string) error

	// RemoveAnswer deletes the user's answer to one question and recomputes
	// derived values.
	RemoveAnswer(ctx context.Context, userID, surveyID, questionID int) error

	// UserAnswers gathers everything the user answered in the survey.
	UserAnswers(ctx context.Context, userID, surveyID int) ([]UserAnswer, error)

	// AnsweredQuestionIDs is the distinct set of question ids the user has
	// answered (single-choice and free-text).
	AnsweredQuestionIDs(ctx context.Context, userID, surveyID int) (map[int]struct{}, error)

	// TotalQuestions is the progress denominator. Organizational surveys use
	// the global question count; growth surveys count active questions
	// visible to the user's job.
	TotalQuestions(ctx context.Context, userID, surveyID int) (int, error)

	// CompletionTime is the best available completion timestamp, nil when
	// the store keeps none.
	CompletionTime(ctx context.Context, userID, surveyID int) (*time.Time, error)
}
