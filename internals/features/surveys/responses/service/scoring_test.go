package service

import (
	"testing"

	qmodel "workpulse_backend/internals/features/surveys/questions/model"
)

func fp(f float64) *float64 { return &f }

// One answered question worth 30 points in category 1, out of 2 questions
// total: category1 sum 30, total score 30/8 = 3.75, response rate 50%.
func TestSingleAnswerScoring(t *testing.T) {
	answers := []OrgAnswer{{QuestionID: 1, CategoryID: 1, Score: 30}}

	sums := CategoryScores(answers)
	if sums[0] != 30 {
		t.Errorf("category 1 sum = %v, want 30", sums[0])
	}
	for i := 1; i < len(sums); i++ {
		if sums[i] != 0 {
			t.Errorf("category %d sum = %v, want 0", i+1, sums[i])
		}
	}
	if got := TotalScore(sums); got != 3.75 {
		t.Errorf("total score = %v, want 3.75", got)
	}
	if got := ResponseRate(1, 2); got != 50.0 {
		t.Errorf("response rate = %v, want 50.0", got)
	}
}

func TestCategoryScoresSumAndCap(t *testing.T) {
	answers := []OrgAnswer{
		{QuestionID: 1, CategoryID: 2, Score: 60},
		{QuestionID: 2, CategoryID: 2, Score: 60}, // pushes cat 2 past the cap
		{QuestionID: 3, CategoryID: 5, Score: 10},
		{QuestionID: 4, CategoryID: 5, Score: 20},
		{QuestionID: 5, CategoryID: 0, Score: 99}, // out of range, ignored
		{QuestionID: 6, CategoryID: 9, Score: 99}, // out of range, ignored
	}
	sums := CategoryScores(answers)
	if sums[1] != 100 {
		t.Errorf("category 2 sum = %v, want capped 100", sums[1])
	}
	if sums[4] != 30 {
		t.Errorf("category 5 sum = %v, want 30", sums[4])
	}
}

func TestTotalScoreAveragesAllEightCategories(t *testing.T) {
	var sums [categoryCount]float64
	for i := range sums {
		sums[i] = 100
	}
	if got := TotalScore(sums); got != 100 {
		t.Errorf("full board total = %v, want 100", got)
	}

	sums = [categoryCount]float64{10} // only category 1 answered
	if got := TotalScore(sums); got != 1.25 {
		t.Errorf("sparse total = %v, want 1.25", got)
	}
}

func TestGrowthQuestionScore(t *testing.T) {
	weight := fp(40.0)
	cases := []struct {
		name    string
		answers []GrowthAnswer
		qtype   qmodel.QuestionType
		weight  *float64
		want    float64
	}{
		{
			name:    "average above threshold earns full weight",
			answers: []GrowthAnswer{{UserID: 1, Score: fp(0.9)}, {UserID: 2, Score: fp(0.9)}},
			qtype:   qmodel.QuestionTypeSingleChoice,
			weight:  weight,
			want:    40,
		},
		{
			name:    "average at threshold earns full weight",
			answers: []GrowthAnswer{{UserID: 1, Score: fp(0.8)}, {UserID: 2, Score: fp(0.9)}},
			qtype:   qmodel.QuestionTypeSingleChoice,
			weight:  weight,
			want:    40,
		},
		{
			name:    "average below threshold scores zero",
			answers: []GrowthAnswer{{UserID: 1, Score: fp(0.5)}, {UserID: 2, Score: fp(0.9)}},
			qtype:   qmodel.QuestionTypeSingleChoice,
			weight:  weight,
			want:    0,
		},
		{
			name:    "free-text placeholders are excluded from the average",
			answers: []GrowthAnswer{{UserID: 1, Score: fp(0.9)}, {UserID: 2, Score: nil}},
			qtype:   qmodel.QuestionTypeSingleChoice,
			weight:  weight,
			want:    40,
		},
		{
			name:    "no scored respondents",
			answers: []GrowthAnswer{{UserID: 1, Score: nil}},
			qtype:   qmodel.QuestionTypeSingleChoice,
			weight:  weight,
			want:    0,
		},
		{
			name:    "free-text question never scores",
			answers: []GrowthAnswer{{UserID: 1, Score: fp(1)}},
			qtype:   qmodel.QuestionTypeFreeText,
			weight:  weight,
			want:    0,
		},
		{
			name:    "weightless question never scores",
			answers: []GrowthAnswer{{UserID: 1, Score: fp(1)}},
			qtype:   qmodel.QuestionTypeSingleChoice,
			weight:  nil,
			want:    0,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := GrowthQuestionScore(tc.answers, tc.qtype, tc.weight)
			if got != tc.want {
				t.Errorf("score = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestResponseRate(t *testing.T) {
	cases := []struct {
		answered, total int
		want            float64
	}{
		{0, 10, 0},
		{1, 3, 33.33},
		{2, 3, 66.67},
		{10, 10, 100},
		{12, 10, 100}, // stale dupes cannot push past 100
		{5, 0, 0},
	}
	for _, tc := range cases {
		if got := ResponseRate(tc.answered, tc.total); got != tc.want {
			t.Errorf("ResponseRate(%d, %d) = %v, want %v", tc.answered, tc.total, got, tc.want)
		}
	}
}
