// file: internals/features/surveys/responses/service/growth_rollup.go
package service

import (
	"context"
)

// QuestionScore is the growth dashboard projection of one question row.
type QuestionScore struct {
	QuestionID  int     `json:"question_id"`
	TotalScore  float64 `json:"total_score"`
	Respondents int     `json:"respondents"`
}

// SurveyScores lists every question row's stored threshold score plus the
// count of real (non-placeholder) respondents.
func (s *GrowthStore) SurveyScores(ctx context.Context, surveyID int) ([]QuestionScore, error) {
	rows, err := s.surveyRows(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	out := make([]QuestionScore, 0, len(rows))
	for _, row := range rows {
		n := 0
		for _, e := range s.decodeRow(row.Result) {
			if e.Score != nil {
				n++
			}
		}
		out = append(out, QuestionScore{
			QuestionID:  row.QuestionID,
			TotalScore:  row.TotalScore,
			Respondents: n,
		})
	}
	return out, nil
}
