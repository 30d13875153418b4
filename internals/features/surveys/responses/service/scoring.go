// file: internals/features/surveys/responses/service/scoring.go
package service

import (
	"math"

	qmodel "workpulse_backend/internals/features/surveys/questions/model"
)

/* =========================================================
   SCORING CALCULATOR
========================================================= */

const (
	categoryCount    = qmodel.CategoryCount
	categoryScoreCap = 100.0

	// growthPassThreshold: a growth question earns its full weight only when
	// the average of its respondents' normalized option scores reaches this
	// value, otherwise it scores 0. Option scores are kept on a [0,1] scale
	// at question create/update time so the threshold stays meaningful.
	growthPassThreshold = 0.85
)

// CategoryScores groups a user's answers by category (1..8) and SUMS raw
// option scores per category, capping each sum at 100. Sums, not averages:
// more-answered categories deliberately score higher on the fixed
// questionnaire.
func CategoryScores(answers []OrgAnswer) [categoryCount]float64 {
	var sums [categoryCount]float64
	for _, a := range answers {
		if a.CategoryID < 1 || a.CategoryID > categoryCount {
			continue
		}
		sums[a.CategoryID-1] += a.Score
	}
	for i := range sums {
		if sums[i] > categoryScoreCap {
			sums[i] = categoryScoreCap
		}
	}
	return sums
}

// TotalScore averages the 8 capped category sums. Categories without answers
// contribute 0; they are not excluded from the denominator.
func TotalScore(sums [categoryCount]float64) float64 {
	var total float64
	for _, s := range sums {
		total += s
	}
	return round2(total / categoryCount)
}

// GrowthQuestionScore implements the pass/fail participation threshold: the
// question's stored total_score is the full weight when the average of
// non-null respondent scores reaches growthPassThreshold, else 0. Free-text
// questions and weightless questions always score 0.
func GrowthQuestionScore(answers []GrowthAnswer, questionType qmodel.QuestionType, weight *float64) float64 {
	if questionType != qmodel.QuestionTypeSingleChoice || weight == nil {
		return 0
	}
	var sum float64
	var n int
	for _, a := range answers {
		if a.Score == nil {
			continue
		}
		sum += *a.Score
		n++
	}
	if n == 0 {
		return 0
	}
	if sum/float64(n) >= growthPassThreshold {
		return *weight
	}
	return 0
}

// ResponseRate: min(100, round2(answered / total * 100)). Zero when the
// survey has no questions.
func ResponseRate(answered, total int) float64 {
	if total <= 0 {
		return 0
	}
	rate := float64(answered) / float64(total) * 100
	if rate > 100 {
		rate = 100
	}
	return round2(rate)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
