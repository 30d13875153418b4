// file: internals/features/surveys/questions/dto/growth_question_dto.go
package dto

import (
	"workpulse_backend/internals/features/surveys/questions/model"
)

type GrowthOptionRequest struct {
	Text  string   `json:"text" validate:"required"`
	Score *float64 `json:"score"`
}

type CreateGrowthQuestionRequest struct {
	QuestionText string                `json:"question_text" validate:"required,min=3"`
	QuestionType string                `json:"question_type" validate:"required,oneof=single_choice free_text"`
	Category     string                `json:"category" validate:"required"`
	Weight       *float64              `json:"weight" validate:"omitempty,gte=0"`
	Options      []GrowthOptionRequest `json:"options" validate:"dive"`
	TargetJobs   []string              `json:"target_jobs"`
	DisplayOrder int                   `json:"display_order"`
}

type UpdateGrowthQuestionRequest struct {
	QuestionText *string               `json:"question_text" validate:"omitempty,min=3"`
	Category     *string               `json:"category"`
	Weight       *float64              `json:"weight" validate:"omitempty,gte=0"`
	Options      []GrowthOptionRequest `json:"options" validate:"omitempty,dive"`
	TargetJobs   []string              `json:"target_jobs"`
	IsActive     *bool                 `json:"is_active"`
	DisplayOrder *int                  `json:"display_order"`
}

type GrowthQuestionDTO struct {
	ID           int                        `json:"id"`
	QuestionText string                     `json:"question_text"`
	QuestionType string                     `json:"question_type"`
	Category     string                     `json:"category"`
	Weight       *float64                   `json:"weight,omitempty"`
	Options      []model.GrowthAnswerOption `json:"options"`
	TargetJobs   []string                   `json:"target_jobs"`
	IsActive     bool                       `json:"is_active"`
	DisplayOrder int                        `json:"display_order"`
}

func ToGrowthQuestionModel(req CreateGrowthQuestionRequest) (model.GrowthQuestionModel, error) {
	m := model.GrowthQuestionModel{
		QuestionText: req.QuestionText,
		QuestionType: model.QuestionType(req.QuestionType),
		Category:     req.Category,
		Weight:       req.Weight,
		IsActive:     true,
		DisplayOrder: req.DisplayOrder,
	}
	opts := make([]model.GrowthAnswerOption, 0, len(req.Options))
	for _, o := range req.Options {
		opts = append(opts, model.GrowthAnswerOption{Text: o.Text, Score: o.Score})
	}
	if len(opts) > 0 || m.IsSingleChoice() {
		if err := m.SetAnswerOptions(opts); err != nil {
			return model.GrowthQuestionModel{}, err
		}
	}
	m.SetTargetJobs(req.TargetJobs)
	return m, nil
}

func ToGrowthQuestionDTO(m model.GrowthQuestionModel) GrowthQuestionDTO {
	opts, _ := m.AnswerOptions()
	if opts == nil {
		opts = []model.GrowthAnswerOption{}
	}
	jobs := m.TargetJobList()
	if jobs == nil {
		jobs = []string{}
	}
	return GrowthQuestionDTO{
		ID:           m.ID,
		QuestionText: m.QuestionText,
		QuestionType: string(m.QuestionType),
		Category:     m.Category,
		Weight:       m.Weight,
		Options:      opts,
		TargetJobs:   jobs,
		IsActive:     m.IsActive,
		DisplayOrder: m.DisplayOrder,
	}
}
