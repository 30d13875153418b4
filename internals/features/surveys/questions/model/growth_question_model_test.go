package model

import "testing"

func score(f float64) *float64 { return &f }

func TestSetAnswerOptionsValidation(t *testing.T) {
	cases := []struct {
		name    string
		qtype   QuestionType
		opts    []GrowthAnswerOption
		wantErr bool
	}{
		{
			name:  "valid single choice",
			qtype: QuestionTypeSingleChoice,
			opts: []GrowthAnswerOption{
				{Text: "Yes", Score: score(1)},
				{Text: "No", Score: score(0)},
			},
		},
		{
			name:    "single choice with one option",
			qtype:   QuestionTypeSingleChoice,
			opts:    []GrowthAnswerOption{{Text: "Only", Score: score(1)}},
			wantErr: true,
		},
		{
			name:  "score above 1",
			qtype: QuestionTypeSingleChoice,
			opts: []GrowthAnswerOption{
				{Text: "A", Score: score(1.5)},
				{Text: "B", Score: score(0)},
			},
			wantErr: true,
		},
		{
			name:  "blank option text",
			qtype: QuestionTypeSingleChoice,
			opts: []GrowthAnswerOption{
				{Text: "  ", Score: score(1)},
				{Text: "B", Score: score(0)},
			},
			wantErr: true,
		},
		{
			name:  "free text allows empty option list",
			qtype: QuestionTypeFreeText,
			opts:  nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := GrowthQuestionModel{QuestionType: tc.qtype}
			err := q.SetAnswerOptions(tc.opts)
			if (err != nil) != tc.wantErr {
				t.Errorf("SetAnswerOptions error = %v, wantErr = %v", err, tc.wantErr)
			}
		})
	}
}

func TestAnswerOptionsRoundTrip(t *testing.T) {
	q := GrowthQuestionModel{QuestionType: QuestionTypeSingleChoice}
	in := []GrowthAnswerOption{
		{Text: "Strongly agree", Score: score(1)},
		{Text: "Prefer not to say", Score: nil},
	}
	if err := q.SetAnswerOptions(in); err != nil {
		t.Fatalf("SetAnswerOptions failed: %v", err)
	}
	out, err := q.AnswerOptions()
	if err != nil {
		t.Fatalf("AnswerOptions failed: %v", err)
	}
	if len(out) != 2 || out[0].Text != "Strongly agree" || out[1].Score != nil {
		t.Errorf("round trip mismatch: %+v", out)
	}
}

func TestVisibleToJob(t *testing.T) {
	var q GrowthQuestionModel
	if !q.VisibleToJob("Engineer") {
		t.Error("no target set must mean visible to everyone")
	}

	q.SetTargetJobs([]string{"Engineer", "Product Manager"})
	cases := []struct {
		job  string
		want bool
	}{
		{"Engineer", true},
		{"engineer", true},
		{"  Engineer  ", true},
		{"Product Manager", true},
		{"Designer", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := q.VisibleToJob(tc.job); got != tc.want {
			t.Errorf("VisibleToJob(%q) = %v, want %v", tc.job, got, tc.want)
		}
	}
}
