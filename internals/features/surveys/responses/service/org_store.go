// file: internals/features/surveys/responses/service/org_store.go
package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	qmodel "workpulse_backend/internals/features/surveys/questions/model"
	rmodel "workpulse_backend/internals/features/surveys/responses/model"
)

/* =========================================================
   ORGANIZATIONAL RESPONSE STORE

   One row per (user, survey): `response` jsonb array of single-choice
   answers plus `response_rate`. Free-text answers live in a side table
   keyed (user, survey, question). Every write runs as a single
   SELECT ... FOR UPDATE transaction and recomputes the summary row
   before committing, so no inconsistent intermediate state is ever
   visible.
========================================================= */

type OrgStore struct {
	db   *gorm.DB
	cols *ColumnResolver
}

func NewOrgStore(db *gorm.DB, cols *ColumnResolver) *OrgStore {
	return &OrgStore{db: db, cols: cols}
}

type orgResponseRow struct {
	ID           int     `gorm:"column:id"`
	Response     []byte  `gorm:"column:response"`
	ResponseRate float64 `gorm:"column:response_rate"`
}

func (s *OrgStore) UpsertScore(ctx context.Context, in ScoreAnswer) error {
	return withRetry(ctx, func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			answers, row, err := s.lockRowForWrite(ctx, tx, in.UserID, in.SurveyID)
			if err != nil {
				return err
			}
			answers = replaceByQuestion(answers, OrgAnswer{
				QuestionID: in.QuestionID,
				CategoryID: in.CategoryID,
				Score:      in.Score,
			})
			return s.saveLocked(ctx, tx, in.UserID, in.SurveyID, row.ID, answers)
		})
	})
}

func (s *OrgStore) UpsertFreeText(ctx context.Context, userID, surveyID, questionID int, text string) error {
	if strings.TrimSpace(text) == "" {
		return NewValidationError("answer text must not be blank")
	}
	return withRetry(ctx, func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			// Main row first: holding its lock serializes the side-table write
			// against every other writer for the same (user, survey).
			answers, row, err := s.lockRowForWrite(ctx, tx, userID, surveyID)
			if err != nil {
				return err
			}

			ftCols, err := s.cols.Resolve(ctx, tableOrgFreeText)
			if err != nil {
				return err
			}
			sql := fmt.Sprintf(
				`INSERT INTO %s (user_id, %s, %s, answer_text, created_at, updated_at)
				 VALUES (?, ?, ?, ?, now(), now())
				 ON CONFLICT (user_id, %s, %s)
				 DO UPDATE SET answer_text = EXCLUDED.answer_text, updated_at = now()`,
				tableOrgFreeText,
				ftCols[colSurvey], ftCols[colQuestion],
				ftCols[colSurvey], ftCols[colQuestion],
			)
			if err := tx.Exec(sql, userID, surveyID, questionID, text).Error; err != nil {
				return classifyStoreError(err)
			}

			// Free text moves the response rate, so the main row is refreshed
			// too (created empty when the first answer is free text).
			return s.saveLocked(ctx, tx, userID, surveyID, row.ID, answers)
		})
	})
}

func (s *OrgStore) RemoveAnswer(ctx context.Context, userID, surveyID, questionID int) error {
	return withRetry(ctx, func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			answers, row, err := s.lockRow(ctx, tx, userID, surveyID)
			if err != nil {
				return err
			}
			// Nothing stored for this (user, survey): removing must not
			// materialize an empty row.
			if row.ID == 0 {
				return nil
			}

			ftCols, err := s.cols.Resolve(ctx, tableOrgFreeText)
			if err != nil {
				return err
			}
			del := fmt.Sprintf(`DELETE FROM %s WHERE user_id = ? AND %s = ? AND %s = ?`,
				tableOrgFreeText, ftCols[colSurvey], ftCols[colQuestion])
			if err := tx.Exec(del, userID, surveyID, questionID).Error; err != nil {
				return classifyStoreError(err)
			}

			answers = removeByQuestion(answers, questionID)
			return s.saveLocked(ctx, tx, userID, surveyID, row.ID, answers)
		})
	})
}

func (s *OrgStore) UserAnswers(ctx context.Context, userID, surveyID int) ([]UserAnswer, error) {
	answers, _, err := s.readRow(ctx, s.db, userID, surveyID)
	if err != nil {
		return nil, err
	}

	out := make([]UserAnswer, 0, len(answers))
	for _, a := range answers {
		sc := a.Score
		out = append(out, UserAnswer{QuestionID: a.QuestionID, Score: &sc})
	}

	texts, err := s.freeTextAnswers(ctx, userID, surveyID)
	if err != nil {
		return nil, err
	}
	for _, t := range texts {
		out = append(out, t)
	}
	return out, nil
}

func (s *OrgStore) AnsweredQuestionIDs(ctx context.Context, userID, surveyID int) (map[int]struct{}, error) {
	answers, _, err := s.readRow(ctx, s.db, userID, surveyID)
	if err != nil {
		return nil, err
	}
	ids := make(map[int]struct{}, len(answers))
	for _, a := range answers {
		ids[a.QuestionID] = struct{}{}
	}
	texts, err := s.freeTextAnswers(ctx, userID, surveyID)
	if err != nil {
		return nil, err
	}
	for _, t := range texts {
		ids[t.QuestionID] = struct{}{}
	}
	return ids, nil
}

// TotalQuestions: the organizational denominator is the GLOBAL question
// count, not filtered by user or category. Known asymmetry with the growth
// store, preserved on purpose.
func (s *OrgStore) TotalQuestions(ctx context.Context, userID, surveyID int) (int, error) {
	return s.totalQuestions(ctx, s.db)
}

func (s *OrgStore) CompletionTime(ctx context.Context, userID, surveyID int) (*time.Time, error) {
	var sum rmodel.SurveyResponseSummaryModel
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND survey_id = ?", userID, surveyID).
		First(&sum).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, classifyStoreError(err)
	}
	ts := sum.UpdatedAt
	return &ts, nil
}

// ResultRow returns the stored array plus rate, or nil when the user has no
// row yet.
func (s *OrgStore) ResultRow(ctx context.Context, userID, surveyID int) ([]OrgAnswer, *float64, error) {
	cols, err := s.cols.Resolve(ctx, tableOrgResponses)
	if err != nil {
		return nil, nil, err
	}
	var row orgResponseRow
	res := s.db.WithContext(ctx).Raw(
		fmt.Sprintf(`SELECT id, response, response_rate FROM %s WHERE user_id = ? AND %s = ?`,
			tableOrgResponses, cols[colSurvey]),
		userID, surveyID,
	).Scan(&row)
	if res.Error != nil {
		return nil, nil, classifyStoreError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil, nil
	}
	answers := s.decodeRow(row.Response)
	rate := row.ResponseRate
	return answers, &rate, nil
}

/* ===============================
   Internals
=================================*/

// lockRow fetches the user's row FOR UPDATE (row id 0 = absent) and decodes
// its array. Corrupt arrays degrade to empty, logged.
func (s *OrgStore) lockRow(ctx context.Context, tx *gorm.DB, userID, surveyID int) ([]OrgAnswer, orgResponseRow, error) {
	cols, err := s.cols.Resolve(ctx, tableOrgResponses)
	if err != nil {
		return nil, orgResponseRow{}, err
	}
	var row orgResponseRow
	res := tx.Raw(
		fmt.Sprintf(`SELECT id, response, response_rate FROM %s WHERE user_id = ? AND %s = ? FOR UPDATE`,
			tableOrgResponses, cols[colSurvey]),
		userID, surveyID,
	).Scan(&row)
	if res.Error != nil {
		return nil, orgResponseRow{}, classifyStoreError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, orgResponseRow{}, nil
	}
	return s.decodeRow(row.Response), row, nil
}

// lockRowForWrite seeds an empty row under the unique (user_id, survey)
// index before taking the lock, so two concurrent first writers conflict on
// the same row instead of each inserting one. The lock therefore always has
// a row to take.
func (s *OrgStore) lockRowForWrite(ctx context.Context, tx *gorm.DB, userID, surveyID int) ([]OrgAnswer, orgResponseRow, error) {
	cols, err := s.cols.Resolve(ctx, tableOrgResponses)
	if err != nil {
		return nil, orgResponseRow{}, err
	}
	if err := tx.Exec(orgSeedRowSQL(cols[colSurvey]), userID, surveyID).Error; err != nil {
		return nil, orgResponseRow{}, classifyStoreError(err)
	}
	answers, row, err := s.lockRow(ctx, tx, userID, surveyID)
	if err != nil {
		return nil, orgResponseRow{}, err
	}
	if row.ID == 0 {
		return nil, orgResponseRow{}, fmt.Errorf("seeded response row for user %d survey %d vanished", userID, surveyID)
	}
	return answers, row, nil
}

func orgSeedRowSQL(surveyCol string) string {
	return fmt.Sprintf(
		`INSERT INTO %s (user_id, %s, response, response_rate, created_at, updated_at)
		 VALUES (?, ?, '[]', 0, now(), now())
		 ON CONFLICT (user_id, %s) DO NOTHING`,
		tableOrgResponses, surveyCol, surveyCol)
}

func orgUpdateRowSQL() string {
	return fmt.Sprintf(`UPDATE %s SET response = ?, response_rate = ?, updated_at = now() WHERE id = ?`,
		tableOrgResponses)
}

func (s *OrgStore) readRow(ctx context.Context, db *gorm.DB, userID, surveyID int) ([]OrgAnswer, orgResponseRow, error) {
	cols, err := s.cols.Resolve(ctx, tableOrgResponses)
	if err != nil {
		return nil, orgResponseRow{}, err
	}
	var row orgResponseRow
	res := db.WithContext(ctx).Raw(
		fmt.Sprintf(`SELECT id, response, response_rate FROM %s WHERE user_id = ? AND %s = ?`,
			tableOrgResponses, cols[colSurvey]),
		userID, surveyID,
	).Scan(&row)
	if res.Error != nil {
		return nil, orgResponseRow{}, classifyStoreError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, orgResponseRow{}, nil
	}
	return s.decodeRow(row.Response), row, nil
}

func (s *OrgStore) decodeRow(raw []byte) []OrgAnswer {
	answers, err := decodeOrgAnswers(tableOrgResponses, raw)
	if err != nil {
		// One corrupt row must never block everyone else: treat as empty.
		log.Printf("[ERROR] %v (recovered as empty array)", err)
		return nil
	}
	return answers
}

// saveLocked persists the new array, recomputes response_rate and the summary
// row, all inside the caller's transaction. Update-only: callers hold a lock
// on an existing row (seeded by lockRowForWrite on the write paths).
func (s *OrgStore) saveLocked(ctx context.Context, tx *gorm.DB, userID, surveyID, rowID int, answers []OrgAnswer) error {
	rate, err := s.currentRate(ctx, tx, userID, surveyID, len(answers))
	if err != nil {
		return err
	}

	enc := encodeOrgAnswers(answers)
	if err := tx.Exec(orgUpdateRowSQL(), string(enc), rate, rowID).Error; err != nil {
		return classifyStoreError(err)
	}

	return s.recomputeSummary(tx, userID, surveyID, answers)
}

// currentRate: (singleChoice + distinct freeText) / global question count.
func (s *OrgStore) currentRate(ctx context.Context, tx *gorm.DB, userID, surveyID, singleChoiceCount int) (float64, error) {
	ftCols, err := s.cols.Resolve(ctx, tableOrgFreeText)
	if err != nil {
		return 0, err
	}
	var freeTextCount int64
	cnt := fmt.Sprintf(`SELECT COUNT(DISTINCT %s) FROM %s WHERE user_id = ? AND %s = ?`,
		ftCols[colQuestion], tableOrgFreeText, ftCols[colSurvey])
	if err := tx.Raw(cnt, userID, surveyID).Scan(&freeTextCount).Error; err != nil {
		return 0, classifyStoreError(err)
	}

	total, err := s.totalQuestions(ctx, tx)
	if err != nil {
		return 0, err
	}
	return ResponseRate(singleChoiceCount+int(freeTextCount), total), nil
}

func (s *OrgStore) totalQuestions(ctx context.Context, db *gorm.DB) (int, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&qmodel.SurveyQuestionModel{}).
		Count(&total).Error
	if err != nil {
		return 0, classifyStoreError(err)
	}
	return int(total), nil
}

// recomputeSummary overwrites the summary row from the full answer array.
// An empty array deletes the summary instead of keeping a zero-score row.
func (s *OrgStore) recomputeSummary(tx *gorm.DB, userID, surveyID int, answers []OrgAnswer) error {
	if len(answers) == 0 {
		err := tx.Where("user_id = ? AND survey_id = ?", userID, surveyID).
			Delete(&rmodel.SurveyResponseSummaryModel{}).Error
		return classifyStoreError(err)
	}

	sums := CategoryScores(answers)
	sum := rmodel.SurveyResponseSummaryModel{
		UserID:     userID,
		SurveyID:   surveyID,
		TotalScore: TotalScore(sums),
		UpdatedAt:  time.Now(),
	}
	sum.SetCategoryScores(sums)

	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "survey_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"category1_score", "category2_score", "category3_score", "category4_score",
			"category5_score", "category6_score", "category7_score", "category8_score",
			"total_score", "updated_at",
		}),
	}).Create(&sum).Error
	return classifyStoreError(err)
}

func (s *OrgStore) freeTextAnswers(ctx context.Context, userID, surveyID int) ([]UserAnswer, error) {
	ftCols, err := s.cols.Resolve(ctx, tableOrgFreeText)
	if err != nil {
		return nil, err
	}
	var rows []struct {
		QuestionID int    `gorm:"column:question_id"`
		AnswerText string `gorm:"column:answer_text"`
	}
	sql := fmt.Sprintf(`SELECT %s AS question_id, answer_text FROM %s WHERE user_id = ? AND %s = ?`,
		ftCols[colQuestion], tableOrgFreeText, ftCols[colSurvey])
	if err := s.db.WithContext(ctx).Raw(sql, userID, surveyID).Scan(&rows).Error; err != nil {
		return nil, classifyStoreError(err)
	}
	out := make([]UserAnswer, 0, len(rows))
	for _, r := range rows {
		out = append(out, UserAnswer{QuestionID: r.QuestionID, AnswerText: r.AnswerText})
	}
	return out, nil
}

/* ===============================
   Array upsert helpers (filter-then-push)
=================================*/

func replaceByQuestion(answers []OrgAnswer, a OrgAnswer) []OrgAnswer {
	out := removeByQuestion(answers, a.QuestionID)
	return append(out, a)
}

func removeByQuestion(answers []OrgAnswer, questionID int) []OrgAnswer {
	out := answers[:0]
	for _, a := range answers {
		if a.QuestionID != questionID {
			out = append(out, a)
		}
	}
	return out
}
