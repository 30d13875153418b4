// file: internals/features/surveys/responses/service/indexes.go
package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// EnsureResponseIndexes creates the unique key-pair indexes the stores rely
// on. The ON CONFLICT clauses in the write paths need them, and they are what
// keeps two concurrent first writers from inserting twin rows for the same
// (user, survey) / (question, survey) pair. Run once at startup, after the
// schema has been resolved; fails loudly when existing data already violates
// a pair.
func EnsureResponseIndexes(ctx context.Context, db *gorm.DB) error {
	r := NewColumnResolver(db)

	orgCols, err := r.Resolve(ctx, tableOrgResponses)
	if err != nil {
		return err
	}
	orgFtCols, err := r.Resolve(ctx, tableOrgFreeText)
	if err != nil {
		return err
	}
	growthCols, err := r.Resolve(ctx, tableGrowthResponses)
	if err != nil {
		return err
	}
	growthFtCols, err := r.Resolve(ctx, tableGrowthFreeText)
	if err != nil {
		return err
	}

	for _, ddl := range responseIndexDDL(orgCols, orgFtCols, growthCols, growthFtCols) {
		if err := db.WithContext(ctx).Exec(ddl).Error; err != nil {
			return classifyStoreError(err)
		}
	}
	return nil
}

func responseIndexDDL(orgCols, orgFtCols, growthCols, growthFtCols map[string]string) []string {
	return []string{
		fmt.Sprintf(`CREATE UNIQUE INDEX IF NOT EXISTS uq_survey_responses_user_survey ON %s (user_id, %s)`,
			tableOrgResponses, orgCols[colSurvey]),
		fmt.Sprintf(`CREATE UNIQUE INDEX IF NOT EXISTS uq_survey_freetext_user_survey_question ON %s (user_id, %s, %s)`,
			tableOrgFreeText, orgFtCols[colSurvey], orgFtCols[colQuestion]),
		fmt.Sprintf(`CREATE UNIQUE INDEX IF NOT EXISTS uq_growth_responses_question_survey ON %s (%s, %s)`,
			tableGrowthResponses, growthCols[colQuestion], growthCols[colSurvey]),
		fmt.Sprintf(`CREATE UNIQUE INDEX IF NOT EXISTS uq_growth_freetext_user_survey_question ON %s (%s, %s, %s)`,
			tableGrowthFreeText, growthFtCols[colUser], growthFtCols[colSurvey], growthFtCols[colQuestion]),
	}
}
