// file: internals/features/surveys/responses/model/summary_model.go
package model

import (
	"time"
)

// SurveyResponseSummaryModel: derived per-user-per-survey snapshot for
// organizational surveys. Recomputed synchronously inside the same
// transaction as every answer write, so UpdatedAt doubles as the best
// available completion timestamp.
type SurveyResponseSummaryModel struct {
	ID       int `gorm:"column:id;primaryKey" json:"id"`
	UserID   int `gorm:"column:user_id;not null;uniqueIndex:uq_summary_user_survey" json:"user_id"`
	SurveyID int `gorm:"column:survey_id;not null;uniqueIndex:uq_summary_user_survey" json:"survey_id"`

	Category1Score float64 `gorm:"column:category1_score;not null;default:0" json:"category1_score"`
	Category2Score float64 `gorm:"column:category2_score;not null;default:0" json:"category2_score"`
	Category3Score float64 `gorm:"column:category3_score;not null;default:0" json:"category3_score"`
	Category4Score float64 `gorm:"column:category4_score;not null;default:0" json:"category4_score"`
	Category5Score float64 `gorm:"column:category5_score;not null;default:0" json:"category5_score"`
	Category6Score float64 `gorm:"column:category6_score;not null;default:0" json:"category6_score"`
	Category7Score float64 `gorm:"column:category7_score;not null;default:0" json:"category7_score"`
	Category8Score float64 `gorm:"column:category8_score;not null;default:0" json:"category8_score"`
	TotalScore     float64 `gorm:"column:total_score;not null;default:0" json:"total_score"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SurveyResponseSummaryModel) TableName() string { return "survey_response_summary" }

// SetCategoryScores writes the 8 capped category sums in index order.
func (m *SurveyResponseSummaryModel) SetCategoryScores(sums [8]float64) {
	m.Category1Score = sums[0]
	m.Category2Score = sums[1]
	m.Category3Score = sums[2]
	m.Category4Score = sums[3]
	m.Category5Score = sums[4]
	m.Category6Score = sums[5]
	m.Category7Score = sums[6]
	m.Category8Score = sums[7]
}
