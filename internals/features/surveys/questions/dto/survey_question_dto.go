// file: internals/features/surveys/questions/dto/survey_question_dto.go
package dto

import (
	"errors"

	"workpulse_backend/internals/features/surveys/questions/model"
)

type CreateSurveyQuestionRequest struct {
	QuestionText string    `json:"question_text" validate:"required,min=3"`
	QuestionType string    `json:"question_type" validate:"required,oneof=single_choice free_text"`
	CategoryID   *int      `json:"category_id" validate:"omitempty,gte=1,lte=8"`
	OptionScores []float64 `json:"option_scores" validate:"omitempty,max=6"`
}

// UpdateSurveyQuestionRequest edits a question in place so existing answers
// keep referencing the same id. The question type is fixed at creation.
type UpdateSurveyQuestionRequest struct {
	QuestionText *string   `json:"question_text" validate:"omitempty,min=3"`
	CategoryID   *int      `json:"category_id" validate:"omitempty,gte=1,lte=8"`
	OptionScores []float64 `json:"option_scores" validate:"omitempty,max=6"`
}

// ApplyTo mutates the loaded model; nil fields stay untouched. A non-nil
// OptionScores slice replaces all six slots.
func (req UpdateSurveyQuestionRequest) ApplyTo(m *model.SurveyQuestionModel) error {
	if req.QuestionText != nil {
		m.QuestionText = *req.QuestionText
	}
	if req.CategoryID != nil {
		if !m.IsSingleChoice() {
			return errors.New("free_text question must not carry category_id")
		}
		m.CategoryID = req.CategoryID
	}
	if req.OptionScores != nil {
		if !m.IsSingleChoice() {
			return errors.New("free_text question must not carry option scores")
		}
		setOptionScores(m, req.OptionScores)
	}
	return nil
}

func setOptionScores(m *model.SurveyQuestionModel, scores []float64) {
	slots := []**float64{
		&m.Answer1Score, &m.Answer2Score, &m.Answer3Score,
		&m.Answer4Score, &m.Answer5Score, &m.Answer6Score,
	}
	for i, slot := range slots {
		if i < len(scores) {
			v := scores[i]
			*slot = &v
		} else {
			*slot = nil
		}
	}
}

type SurveyQuestionDTO struct {
	ID           int       `json:"id"`
	QuestionText string    `json:"question_text"`
	QuestionType string    `json:"question_type"`
	CategoryID   *int      `json:"category_id,omitempty"`
	OptionScores []float64 `json:"option_scores"`
}

func ToSurveyQuestionModel(req CreateSurveyQuestionRequest) model.SurveyQuestionModel {
	m := model.SurveyQuestionModel{
		QuestionText: req.QuestionText,
		QuestionType: model.QuestionType(req.QuestionType),
		CategoryID:   req.CategoryID,
	}
	setOptionScores(&m, req.OptionScores)
	return m
}

func ToSurveyQuestionDTO(m model.SurveyQuestionModel) SurveyQuestionDTO {
	return SurveyQuestionDTO{
		ID:           m.ID,
		QuestionText: m.QuestionText,
		QuestionType: string(m.QuestionType),
		CategoryID:   m.CategoryID,
		OptionScores: m.OptionScores(),
	}
}
