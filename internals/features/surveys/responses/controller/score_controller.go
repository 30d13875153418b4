// file: internals/features/surveys/responses/controller/score_controller.go
package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"workpulse_backend/internals/features/surveys/responses/service"
	helper "workpulse_backend/internals/helpers"
)

const rollupCacheTTL = 5 * time.Minute

func rollupCacheKey(surveyID int) string {
	return fmt.Sprintf("survey:%d:category_scores", surveyID)
}

// =============================
// 📊 Category Scores (organizational dashboard)
// =============================
func (ctrl *AnswerController) GetCategoryScores(c *fiber.Ctx) error {
	surveyID, err := surveyIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	survey, err := ctrl.loadSurvey(c, surveyID)
	if err != nil {
		return ctrl.respondError(c, err)
	}
	if !survey.IsOrganizational() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Category scores only exist for organizational surveys")
	}

	ctx := c.UserContext()

	// best-effort cache: a miss or a broken cache both fall through to SQL
	if cached, err := ctrl.Cache.Get(ctx, rollupCacheKey(surveyID)); err == nil && cached != nil {
		return helper.JsonOK(c, "", json.RawMessage(cached))
	} else if err != nil {
		log.Printf("[WARNING] cache read failed for survey %d: %v", surveyID, err)
	}

	rollup, err := service.OrgCategoryRollup(ctx, ctrl.DB, surveyID)
	if err != nil {
		return ctrl.respondError(c, err)
	}

	if b, err := json.Marshal(rollup); err == nil {
		if err := ctrl.Cache.Set(ctx, rollupCacheKey(surveyID), b, rollupCacheTTL); err != nil {
			log.Printf("[WARNING] cache write failed for survey %d: %v", surveyID, err)
		}
	}
	return helper.JsonOK(c, "", rollup)
}

// =============================
// 📈 Growth Question Scores (growth dashboard)
// =============================
func (ctrl *AnswerController) GetGrowthScores(c *fiber.Ctx) error {
	surveyID, err := surveyIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	survey, err := ctrl.loadSurvey(c, surveyID)
	if err != nil {
		return ctrl.respondError(c, err)
	}
	if !survey.IsGrowth() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Question scores only exist for growth surveys")
	}

	scores, err := ctrl.growthStore.SurveyScores(c.UserContext(), surveyID)
	if err != nil {
		return ctrl.respondError(c, err)
	}
	return helper.JsonList(c, "", scores)
}
