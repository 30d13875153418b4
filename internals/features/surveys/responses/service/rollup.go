// file: internals/features/surveys/responses/service/rollup.go
package service

import (
	"context"

	"gorm.io/gorm"
)

// CategoryRollup is the organizational dashboard aggregate: per-category
// average of all users' summary rows for one survey. Nil means no data yet.
type CategoryRollup struct {
	Category1 *float64 `gorm:"column:c1" json:"category1"`
	Category2 *float64 `gorm:"column:c2" json:"category2"`
	Category3 *float64 `gorm:"column:c3" json:"category3"`
	Category4 *float64 `gorm:"column:c4" json:"category4"`
	Category5 *float64 `gorm:"column:c5" json:"category5"`
	Category6 *float64 `gorm:"column:c6" json:"category6"`
	Category7 *float64 `gorm:"column:c7" json:"category7"`
	Category8 *float64 `gorm:"column:c8" json:"category8"`
	Total     *float64 `gorm:"column:ct" json:"total"`
}

// OrgCategoryRollup averages summary rows; AVG over zero rows yields NULLs,
// surfaced to callers as nil scores rather than fake zeros.
func OrgCategoryRollup(ctx context.Context, db *gorm.DB, surveyID int) (*CategoryRollup, error) {
	var out CategoryRollup
	err := db.WithContext(ctx).Raw(
		`SELECT
			AVG(category1_score) AS c1, AVG(category2_score) AS c2,
			AVG(category3_score) AS c3, AVG(category4_score) AS c4,
			AVG(category5_score) AS c5, AVG(category6_score) AS c6,
			AVG(category7_score) AS c7, AVG(category8_score) AS c8,
			AVG(total_score) AS ct
		 FROM survey_response_summary WHERE survey_id = ?`, surveyID,
	).Scan(&out).Error
	if err != nil {
		return nil, classifyStoreError(err)
	}
	for _, p := range []**float64{
		&out.Category1, &out.Category2, &out.Category3, &out.Category4,
		&out.Category5, &out.Category6, &out.Category7, &out.Category8, &out.Total,
	} {
		if *p != nil {
			v := round2(**p)
			*p = &v
		}
	}
	return &out, nil
}
