// file: internals/features/surveys/survey/dto/survey_dto.go
package dto

import (
	"time"

	"workpulse_backend/internals/features/surveys/survey/model"
)

type CreateSurveyRequest struct {
	SurveyType string     `json:"survey_type" validate:"required,oneof=organizational growth"`
	Title      string     `json:"title" validate:"required,min=3"`
	StartDate  *time.Time `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
}

type UpdateSurveyRequest struct {
	Title     *string    `json:"title" validate:"omitempty,min=3"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Status    *string    `json:"status" validate:"omitempty,oneof=draft active completed"`
	Running   *bool      `json:"running"`
}

type SurveyDTO struct {
	ID         int        `json:"id"`
	SurveyType string     `json:"survey_type"`
	Title      string     `json:"title"`
	StartDate  *time.Time `json:"start_date,omitempty"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	Status     string     `json:"status"`
	Running    bool       `json:"running"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func ToSurveyModel(req CreateSurveyRequest) model.SurveyModel {
	return model.SurveyModel{
		SurveyType: model.SurveyType(req.SurveyType),
		Title:      req.Title,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Status:     model.SurveyStatusDraft,
	}
}

func ToSurveyDTO(m model.SurveyModel) SurveyDTO {
	return SurveyDTO{
		ID:         m.ID,
		SurveyType: string(m.SurveyType),
		Title:      m.Title,
		StartDate:  m.StartDate,
		EndDate:    m.EndDate,
		Status:     string(m.Status),
		Running:    m.Running,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
