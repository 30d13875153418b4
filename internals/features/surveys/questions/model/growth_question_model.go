// file: internals/features/surveys/questions/model/growth_question_model.go
package model

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GrowthQuestionModel: periodic growth survey item. Category is a free-form
// label, weight is meaningful only for single_choice, target_jobs restricts
// visibility by job title (empty = visible to all).
type GrowthQuestionModel struct {
	ID           int          `gorm:"column:id;primaryKey" json:"id"`
	QuestionText string       `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionType QuestionType `gorm:"column:question_type;type:varchar(16);not null" json:"question_type"`
	Category     string       `gorm:"column:category;type:text;not null" json:"category"`
	Weight       *float64     `gorm:"column:weight;type:numeric(6,3)" json:"weight,omitempty"`

	// Answers: jsonb array of {text, score|null}. Scores are expected on a
	// [0,1] scale, enforced on admin create/update.
	Answers    datatypes.JSON `gorm:"column:answers;type:jsonb" json:"answers,omitempty"`
	TargetJobs datatypes.JSON `gorm:"column:target_jobs;type:jsonb" json:"target_jobs,omitempty"`

	IsActive     bool `gorm:"column:is_active;not null;default:true" json:"is_active"`
	DisplayOrder int  `gorm:"column:display_order;not null;default:0" json:"display_order"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at" json:"deleted_at,omitempty"`
}

func (GrowthQuestionModel) TableName() string { return "growth_questions" }

func (m *GrowthQuestionModel) IsFreeText() bool { return m.QuestionType == QuestionTypeFreeText }
func (m *GrowthQuestionModel) IsSingleChoice() bool {
	return m.QuestionType == QuestionTypeSingleChoice
}

// GrowthAnswerOption is one selectable option; Score nil means the option has
// no numeric value (label-only).
type GrowthAnswerOption struct {
	Text  string   `json:"text"`
	Score *float64 `json:"score"`
}

func (m *GrowthQuestionModel) AnswerOptions() ([]GrowthAnswerOption, error) {
	if len(m.Answers) == 0 {
		return nil, nil
	}
	var opts []GrowthAnswerOption
	if err := json.Unmarshal(m.Answers, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// SetAnswerOptions validates and stores the option list. Single-choice
// options with a score must be on the [0,1] scale: the 0.85 pass threshold is
// meaningless otherwise.
func (m *GrowthQuestionModel) SetAnswerOptions(opts []GrowthAnswerOption) error {
	if m.IsSingleChoice() && len(opts) < 2 {
		return errors.New("single_choice question needs at least 2 options")
	}
	for _, op := range opts {
		if strings.TrimSpace(op.Text) == "" {
			return errors.New("option text must not be empty")
		}
		if op.Score != nil && (*op.Score < 0 || *op.Score > 1) {
			return errors.New("option score must be within [0,1]")
		}
	}
	b, _ := json.Marshal(opts)
	m.Answers = datatypes.JSON(b)
	return nil
}

func (m *GrowthQuestionModel) TargetJobList() []string {
	if len(m.TargetJobs) == 0 {
		return nil
	}
	var jobs []string
	if err := json.Unmarshal(m.TargetJobs, &jobs); err != nil {
		return nil
	}
	return jobs
}

func (m *GrowthQuestionModel) SetTargetJobs(jobs []string) {
	if len(jobs) == 0 {
		m.TargetJobs = nil
		return
	}
	b, _ := json.Marshal(jobs)
	m.TargetJobs = datatypes.JSON(b)
}

// VisibleToJob: empty target set means visible to everyone.
func (m *GrowthQuestionModel) VisibleToJob(job string) bool {
	jobs := m.TargetJobList()
	if len(jobs) == 0 {
		return true
	}
	for _, j := range jobs {
		if strings.EqualFold(strings.TrimSpace(j), strings.TrimSpace(job)) {
			return true
		}
	}
	return false
}
