// file: internals/features/surveys/responses/dto/answer_dto.go
package dto

import (
	"workpulse_backend/internals/features/surveys/responses/service"
)

// SaveAnswerRequest: exactly one of score/text must be set; which one is
// valid depends on the question type.
type SaveAnswerRequest struct {
	QuestionID int      `json:"question_id" validate:"required,gt=0"`
	Score      *float64 `json:"score,omitempty"`
	Text       *string  `json:"text,omitempty"`
}

type ProgressResponse struct {
	ProgressCount  int     `json:"progress_count"`
	TotalQuestions int     `json:"total_questions"`
	Completed      bool    `json:"completed"`
	CompletedAt    *string `json:"completed_at"`
}

type MyResponsesResponse struct {
	Responses []service.UserAnswer `json:"responses"`
	ProgressResponse
}

func ToProgressResponse(p service.Progress) ProgressResponse {
	out := ProgressResponse{
		ProgressCount:  p.Answered,
		TotalQuestions: p.Total,
		Completed:      p.Completed,
	}
	if p.CompletedAt != nil {
		s := p.CompletedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
		out.CompletedAt = &s
	}
	return out
}
