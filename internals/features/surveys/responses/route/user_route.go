package route

import (
	responseController "workpulse_backend/internals/features/surveys/responses/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"workpulse_backend/internals/cache"
	middlewares "workpulse_backend/internals/middlewares"
	authMiddleware "workpulse_backend/internals/middlewares/auth"
)

// ResponseRoutes: answer submission + personal reads for signed-in employees,
// dashboards gated to admins.
func ResponseRoutes(api fiber.Router, db *gorm.DB, c cache.Cache) {
	answerCtrl := responseController.NewAnswerController(db, c)

	surveys := api.Group("/surveys")
	surveys.Post("/:surveyId/answers", middlewares.AnswerRateLimiter(), answerCtrl.SaveAnswer)
	surveys.Get("/:surveyId/my-responses", answerCtrl.GetMyResponses)
	surveys.Delete("/:surveyId/answers/:questionId", answerCtrl.DeleteAnswer)

	// dashboards
	surveys.Get("/:surveyId/category-scores",
		authMiddleware.OnlyRoles("Only admins can view survey dashboards", "admin"),
		answerCtrl.GetCategoryScores)
	surveys.Get("/:surveyId/growth-scores",
		authMiddleware.OnlyRoles("Only admins can view survey dashboards", "admin"),
		answerCtrl.GetGrowthScores)
}
