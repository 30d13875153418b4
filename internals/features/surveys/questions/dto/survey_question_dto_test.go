package dto

import (
	"testing"

	"workpulse_backend/internals/features/surveys/questions/model"
)

func intp(i int) *int       { return &i }
func strp(s string) *string { return &s }
func fp(f float64) *float64 { return &f }

func TestApplyToEditsInPlace(t *testing.T) {
	q := model.SurveyQuestionModel{
		ID:           7,
		QuestionText: "How clear are team goals?",
		QuestionType: model.QuestionTypeSingleChoice,
		CategoryID:   intp(1),
		Answer1Score: fp(10), Answer2Score: fp(20), Answer3Score: fp(30),
		Answer4Score: fp(40), Answer5Score: fp(50), Answer6Score: fp(60),
	}

	req := UpdateSurveyQuestionRequest{
		QuestionText: strp("How clear are your team's goals?"),
		CategoryID:   intp(2),
		OptionScores: []float64{5, 15, 25},
	}
	if err := req.ApplyTo(&q); err != nil {
		t.Fatalf("ApplyTo failed: %v", err)
	}

	if q.ID != 7 {
		t.Errorf("id must not change, got %d", q.ID)
	}
	if q.QuestionText != "How clear are your team's goals?" {
		t.Errorf("text not applied: %q", q.QuestionText)
	}
	if q.CategoryID == nil || *q.CategoryID != 2 {
		t.Errorf("category not applied: %v", q.CategoryID)
	}
	if got := q.OptionScores(); len(got) != 3 || got[0] != 5 || got[2] != 25 {
		t.Errorf("option scores must be replaced wholesale, got %v", got)
	}
}

func TestApplyToNilFieldsLeaveModelUntouched(t *testing.T) {
	q := model.SurveyQuestionModel{
		QuestionText: "Original",
		QuestionType: model.QuestionTypeSingleChoice,
		CategoryID:   intp(3),
		Answer1Score: fp(10),
	}
	if err := (UpdateSurveyQuestionRequest{}).ApplyTo(&q); err != nil {
		t.Fatalf("ApplyTo failed: %v", err)
	}
	if q.QuestionText != "Original" || *q.CategoryID != 3 || *q.Answer1Score != 10 {
		t.Errorf("empty update changed the model: %+v", q)
	}
}

func TestApplyToRejectsCategoryOnFreeText(t *testing.T) {
	q := model.SurveyQuestionModel{
		QuestionText: "Anything else?",
		QuestionType: model.QuestionTypeFreeText,
	}
	if err := (UpdateSurveyQuestionRequest{CategoryID: intp(1)}).ApplyTo(&q); err == nil {
		t.Error("free_text question must reject category_id")
	}
	if err := (UpdateSurveyQuestionRequest{OptionScores: []float64{1}}).ApplyTo(&q); err == nil {
		t.Error("free_text question must reject option scores")
	}
}
