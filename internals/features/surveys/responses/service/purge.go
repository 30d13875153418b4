// file: internals/features/surveys/responses/service/purge.go
package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	rmodel "workpulse_backend/internals/features/surveys/responses/model"
	smodel "workpulse_backend/internals/features/surveys/survey/model"
)

// PurgeSurveyData removes every response, free-text and summary row for one
// survey. Runs inside the caller's transaction so survey deletion cascades
// atomically.
func PurgeSurveyData(ctx context.Context, tx *gorm.DB, cols *ColumnResolver, surveyType smodel.SurveyType, surveyID int) error {
	var tables []string
	switch surveyType {
	case smodel.SurveyTypeGrowth:
		tables = []string{tableGrowthResponses, tableGrowthFreeText}
	default:
		tables = []string{tableOrgResponses, tableOrgFreeText}
	}

	for _, table := range tables {
		resolved, err := cols.Resolve(ctx, table)
		if err != nil {
			return err
		}
		del := fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, table, resolved[colSurvey])
		if err := tx.Exec(del, surveyID).Error; err != nil {
			return classifyStoreError(err)
		}
	}

	if surveyType != smodel.SurveyTypeGrowth {
		if err := tx.Where("survey_id = ?", surveyID).
			Delete(&rmodel.SurveyResponseSummaryModel{}).Error; err != nil {
			return classifyStoreError(err)
		}
	}
	return nil
}
