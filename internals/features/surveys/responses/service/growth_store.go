// file: internals/features/surveys/responses/service/growth_store.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	qmodel "workpulse_backend/internals/features/surveys/questions/model"
	emodel "workpulse_backend/internals/features/users/employee/model"
)

/* =========================================================
   GROWTH RESPONSE STORE

   Inverse indexing direction from the organizational store: one row
   per (question, survey) with a `result` jsonb array of per-user
   entries, plus the question's derived `total_score`. Free text lives
   in a side table AND forces a null-score placeholder into the result
   array so progress counting sees the question as answered. Reads are
   an O(questions) scan per user; the write pattern (many users, one
   question at a time) pays for it.
========================================================= */

type GrowthStore struct {
	db   *gorm.DB
	cols *ColumnResolver
}

func NewGrowthStore(db *gorm.DB, cols *ColumnResolver) *GrowthStore {
	return &GrowthStore{db: db, cols: cols}
}

type growthResponseRow struct {
	ID         int     `gorm:"column:id"`
	QuestionID int     `gorm:"column:question_id"`
	Result     []byte  `gorm:"column:result"`
	TotalScore float64 `gorm:"column:total_score"`
}

func (s *GrowthStore) UpsertScore(ctx context.Context, in ScoreAnswer) error {
	return withRetry(ctx, func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			question, err := s.loadQuestion(ctx, tx, in.QuestionID)
			if err != nil {
				return err
			}
			sc := in.Score
			return s.upsertEntryLocked(ctx, tx, question, in.SurveyID,
				GrowthAnswer{UserID: in.UserID, Score: &sc})
		})
	})
}

func (s *GrowthStore) UpsertFreeText(ctx context.Context, userID, surveyID, questionID int, text string) error {
	if strings.TrimSpace(text) == "" {
		return NewValidationError("answer text must not be blank")
	}
	return withRetry(ctx, func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			question, err := s.loadQuestion(ctx, tx, questionID)
			if err != nil {
				return err
			}

			ftCols, err := s.cols.Resolve(ctx, tableGrowthFreeText)
			if err != nil {
				return err
			}
			sql := fmt.Sprintf(
				`INSERT INTO %s (%s, %s, %s, answer_text, created_at, updated_at)
				 VALUES (?, ?, ?, ?, now(), now())
				 ON CONFLICT (%s, %s, %s)
				 DO UPDATE SET answer_text = EXCLUDED.answer_text, updated_at = now()`,
				tableGrowthFreeText,
				ftCols[colUser], ftCols[colSurvey], ftCols[colQuestion],
				ftCols[colUser], ftCols[colSurvey], ftCols[colQuestion],
			)
			if err := tx.Exec(sql, userID, surveyID, questionID, text).Error; err != nil {
				return classifyStoreError(err)
			}

			// Null-score placeholder: progress counts it, scoring skips it.
			return s.upsertEntryLocked(ctx, tx, question, surveyID,
				GrowthAnswer{UserID: userID, Score: nil})
		})
	})
}

func (s *GrowthStore) RemoveAnswer(ctx context.Context, userID, surveyID, questionID int) error {
	return withRetry(ctx, func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			question, err := s.loadQuestion(ctx, tx, questionID)
			if err != nil {
				return err
			}

			cols, err := s.cols.Resolve(ctx, tableGrowthResponses)
			if err != nil {
				return err
			}
			// No question row means nobody answered yet; removing must not
			// create one.
			row, found, err := s.lockQuestionRow(tx, cols, questionID, surveyID)
			if err != nil || !found {
				return err
			}

			ftCols, err := s.cols.Resolve(ctx, tableGrowthFreeText)
			if err != nil {
				return err
			}
			del := fmt.Sprintf(`DELETE FROM %s WHERE %s = ? AND %s = ? AND %s = ?`,
				tableGrowthFreeText, ftCols[colUser], ftCols[colSurvey], ftCols[colQuestion])
			if err := tx.Exec(del, userID, surveyID, questionID).Error; err != nil {
				return classifyStoreError(err)
			}

			entries := s.decodeRow(row.Result)
			entries = removeByUser(entries, userID)
			return s.saveQuestionRow(tx, question, row, entries)
		})
	})
}

func (s *GrowthStore) UserAnswers(ctx context.Context, userID, surveyID int) ([]UserAnswer, error) {
	rows, err := s.surveyRows(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	texts, err := s.freeTextByQuestion(ctx, userID, surveyID)
	if err != nil {
		return nil, err
	}

	out := make([]UserAnswer, 0, len(rows))
	for _, row := range rows {
		entries := s.decodeRow(row.Result)
		for _, e := range entries {
			if e.UserID != userID {
				continue
			}
			ua := UserAnswer{QuestionID: row.QuestionID, Score: e.Score}
			if t, ok := texts[row.QuestionID]; ok {
				ua.AnswerText = t
			}
			out = append(out, ua)
			break
		}
	}
	return out, nil
}

func (s *GrowthStore) AnsweredQuestionIDs(ctx context.Context, userID, surveyID int) (map[int]struct{}, error) {
	rows, err := s.surveyRows(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	ids := make(map[int]struct{})
	for _, row := range rows {
		for _, e := range s.decodeRow(row.Result) {
			if e.UserID == userID {
				ids[row.QuestionID] = struct{}{}
				break
			}
		}
	}
	return ids, nil
}

// TotalQuestions: the growth denominator is personalized. Active questions
// whose target job set is empty or contains the user's job title.
func (s *GrowthStore) TotalQuestions(ctx context.Context, userID, surveyID int) (int, error) {
	var emp emodel.EmployeeModel
	if err := s.db.WithContext(ctx).First(&emp, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, &NotFoundError{Resource: "employee", ID: userID}
		}
		return 0, classifyStoreError(err)
	}

	var questions []qmodel.GrowthQuestionModel
	if err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Find(&questions).Error; err != nil {
		return 0, classifyStoreError(err)
	}

	total := 0
	for i := range questions {
		if questions[i].VisibleToJob(emp.JobTitle) {
			total++
		}
	}
	return total, nil
}

// CompletionTime: growth surveys keep no summary row; the tracker falls back
// to read time.
func (s *GrowthStore) CompletionTime(ctx context.Context, userID, surveyID int) (*time.Time, error) {
	return nil, nil
}

// QuestionResult returns one question row's normalized entries and stored
// score (dashboard read).
func (s *GrowthStore) QuestionResult(ctx context.Context, questionID, surveyID int) ([]GrowthAnswer, float64, error) {
	cols, err := s.cols.Resolve(ctx, tableGrowthResponses)
	if err != nil {
		return nil, 0, err
	}
	var row growthResponseRow
	res := s.db.WithContext(ctx).Raw(
		fmt.Sprintf(`SELECT id, %s AS question_id, result, total_score FROM %s WHERE %s = ? AND %s = ?`,
			cols[colQuestion], tableGrowthResponses, cols[colQuestion], cols[colSurvey]),
		questionID, surveyID,
	).Scan(&row)
	if res.Error != nil {
		return nil, 0, classifyStoreError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, 0, nil
	}
	return s.decodeRow(row.Result), row.TotalScore, nil
}

/* ===============================
   Internals
=================================*/

func (s *GrowthStore) loadQuestion(ctx context.Context, tx *gorm.DB, questionID int) (*qmodel.GrowthQuestionModel, error) {
	var q qmodel.GrowthQuestionModel
	if err := tx.WithContext(ctx).First(&q, "id = ?", questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "growth question", ID: questionID}
		}
		return nil, classifyStoreError(err)
	}
	return &q, nil
}

// upsertEntryLocked seeds an empty question row under the unique (question,
// survey) index before locking, so two concurrent first respondents conflict
// on the same row instead of each inserting one.
func (s *GrowthStore) upsertEntryLocked(ctx context.Context, tx *gorm.DB, question *qmodel.GrowthQuestionModel, surveyID int, entry GrowthAnswer) error {
	cols, err := s.cols.Resolve(ctx, tableGrowthResponses)
	if err != nil {
		return err
	}
	seed := growthSeedRowSQL(cols[colQuestion], cols[colSurvey], cols[colCategory])
	if err := tx.Exec(seed, question.ID, surveyID, question.Category).Error; err != nil {
		return classifyStoreError(err)
	}
	row, found, err := s.lockQuestionRow(tx, cols, question.ID, surveyID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("seeded growth row for question %d survey %d vanished", question.ID, surveyID)
	}
	entries := s.decodeRow(row.Result)
	entries = removeByUser(entries, entry.UserID)
	entries = append(entries, entry)
	return s.saveQuestionRow(tx, question, row, entries)
}

func growthSeedRowSQL(questionCol, surveyCol, categoryCol string) string {
	return fmt.Sprintf(
		`INSERT INTO %s (%s, %s, %s, result, total_score, created_at, updated_at)
		 VALUES (?, ?, ?, '[]', 0, now(), now())
		 ON CONFLICT (%s, %s) DO NOTHING`,
		tableGrowthResponses, questionCol, surveyCol, categoryCol, questionCol, surveyCol)
}

func growthUpdateRowSQL() string {
	return fmt.Sprintf(`UPDATE %s SET result = ?, total_score = ?, updated_at = now() WHERE id = ?`,
		tableGrowthResponses)
}

func (s *GrowthStore) lockQuestionRow(tx *gorm.DB, cols map[string]string, questionID, surveyID int) (growthResponseRow, bool, error) {
	var row growthResponseRow
	res := tx.Raw(
		fmt.Sprintf(`SELECT id, %s AS question_id, result, total_score FROM %s WHERE %s = ? AND %s = ? FOR UPDATE`,
			cols[colQuestion], tableGrowthResponses, cols[colQuestion], cols[colSurvey]),
		questionID, surveyID,
	).Scan(&row)
	if res.Error != nil {
		return growthResponseRow{}, false, classifyStoreError(res.Error)
	}
	return row, res.RowsAffected > 0, nil
}

// saveQuestionRow persists the array and the recomputed threshold score in
// the caller's transaction. Update-only: callers hold a lock on an existing
// row (seeded by upsertEntryLocked on the write paths).
func (s *GrowthStore) saveQuestionRow(tx *gorm.DB, question *qmodel.GrowthQuestionModel, row growthResponseRow, entries []GrowthAnswer) error {
	score := GrowthQuestionScore(entries, question.QuestionType, question.Weight)
	enc := encodeGrowthAnswers(entries)
	err := tx.Exec(growthUpdateRowSQL(), string(enc), score, row.ID).Error
	return classifyStoreError(err)
}

func (s *GrowthStore) surveyRows(ctx context.Context, surveyID int) ([]growthResponseRow, error) {
	cols, err := s.cols.Resolve(ctx, tableGrowthResponses)
	if err != nil {
		return nil, err
	}
	var rows []growthResponseRow
	sql := fmt.Sprintf(`SELECT id, %s AS question_id, result, total_score FROM %s WHERE %s = ?`,
		cols[colQuestion], tableGrowthResponses, cols[colSurvey])
	if err := s.db.WithContext(ctx).Raw(sql, surveyID).Scan(&rows).Error; err != nil {
		return nil, classifyStoreError(err)
	}
	return rows, nil
}

func (s *GrowthStore) freeTextByQuestion(ctx context.Context, userID, surveyID int) (map[int]string, error) {
	ftCols, err := s.cols.Resolve(ctx, tableGrowthFreeText)
	if err != nil {
		return nil, err
	}
	var rows []struct {
		QuestionID int    `gorm:"column:question_id"`
		AnswerText string `gorm:"column:answer_text"`
	}
	sql := fmt.Sprintf(`SELECT %s AS question_id, answer_text FROM %s WHERE %s = ? AND %s = ?`,
		ftCols[colQuestion], tableGrowthFreeText, ftCols[colUser], ftCols[colSurvey])
	if err := s.db.WithContext(ctx).Raw(sql, userID, surveyID).Scan(&rows).Error; err != nil {
		return nil, classifyStoreError(err)
	}
	out := make(map[int]string, len(rows))
	for _, r := range rows {
		out[r.QuestionID] = r.AnswerText
	}
	return out, nil
}

func (s *GrowthStore) decodeRow(raw []byte) []GrowthAnswer {
	entries, err := decodeGrowthAnswers(tableGrowthResponses, raw)
	if err != nil {
		log.Printf("[ERROR] %v (recovered as empty array)", err)
		return nil
	}
	return entries
}

func removeByUser(entries []GrowthAnswer, userID int) []GrowthAnswer {
	out := entries[:0]
	for _, e := range entries {
		if e.UserID != userID {
			out = append(out, e)
		}
	}
	return out
}
