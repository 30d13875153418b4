// file: internals/features/surveys/questions/model/survey_question_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

type QuestionType string

const (
	QuestionTypeSingleChoice QuestionType = "single_choice"
	QuestionTypeFreeText     QuestionType = "free_text"
)

const CategoryCount = 8

// SurveyQuestionModel is an organizational climate item ("problem"):
// single_choice items belong to exactly one of the 8 fixed categories and
// carry up to 6 discrete option scores; free_text items have a NULL category.
type SurveyQuestionModel struct {
	ID           int          `gorm:"column:id;primaryKey" json:"id"`
	QuestionText string       `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionType QuestionType `gorm:"column:question_type;type:varchar(16);not null" json:"question_type"`
	CategoryID   *int         `gorm:"column:category_id" json:"category_id,omitempty"`

	Answer1Score *float64 `gorm:"column:answer1_score" json:"answer1_score,omitempty"`
	Answer2Score *float64 `gorm:"column:answer2_score" json:"answer2_score,omitempty"`
	Answer3Score *float64 `gorm:"column:answer3_score" json:"answer3_score,omitempty"`
	Answer4Score *float64 `gorm:"column:answer4_score" json:"answer4_score,omitempty"`
	Answer5Score *float64 `gorm:"column:answer5_score" json:"answer5_score,omitempty"`
	Answer6Score *float64 `gorm:"column:answer6_score" json:"answer6_score,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at" json:"deleted_at,omitempty"`
}

func (SurveyQuestionModel) TableName() string { return "survey_questions" }

func (m *SurveyQuestionModel) IsFreeText() bool { return m.QuestionType == QuestionTypeFreeText }
func (m *SurveyQuestionModel) IsSingleChoice() bool {
	return m.QuestionType == QuestionTypeSingleChoice
}

// OptionScores returns the declared option scores in order, skipping unset slots.
func (m *SurveyQuestionModel) OptionScores() []float64 {
	out := make([]float64, 0, 6)
	for _, p := range []*float64{
		m.Answer1Score, m.Answer2Score, m.Answer3Score,
		m.Answer4Score, m.Answer5Score, m.Answer6Score,
	} {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}
