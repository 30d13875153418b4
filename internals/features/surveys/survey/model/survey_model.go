// file: internals/features/surveys/survey/model/survey_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

type SurveyType string

const (
	SurveyTypeOrganizational SurveyType = "organizational"
	SurveyTypeGrowth         SurveyType = "growth"
)

type SurveyStatus string

const (
	SurveyStatusDraft     SurveyStatus = "draft"
	SurveyStatusActive    SurveyStatus = "active"
	SurveyStatusCompleted SurveyStatus = "completed"
)

type SurveyModel struct {
	ID         int          `gorm:"column:id;primaryKey" json:"id"`
	SurveyType SurveyType   `gorm:"column:survey_type;type:varchar(16);not null" json:"survey_type"`
	Title      string       `gorm:"column:title;type:text;not null" json:"title"`
	StartDate  *time.Time   `gorm:"column:start_date" json:"start_date,omitempty"`
	EndDate    *time.Time   `gorm:"column:end_date" json:"end_date,omitempty"`
	Status     SurveyStatus `gorm:"column:status;type:varchar(12);not null;default:draft" json:"status"`

	// Running is the single write gate. Date range is informational only and
	// deliberately not consulted when accepting answers.
	Running bool `gorm:"column:running;not null;default:false" json:"running"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at" json:"deleted_at,omitempty"`
}

func (SurveyModel) TableName() string { return "surveys" }

func (m *SurveyModel) IsOrganizational() bool { return m.SurveyType == SurveyTypeOrganizational }
func (m *SurveyModel) IsGrowth() bool         { return m.SurveyType == SurveyTypeGrowth }

// AcceptsAnswers: only a running survey takes new writes.
func (m *SurveyModel) AcceptsAnswers() bool { return m.Running }
