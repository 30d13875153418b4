package route

import (
	surveyController "workpulse_backend/internals/features/surveys/survey/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SurveyAdminRoutes: survey lifecycle management (admin only; role gate is
// applied by the caller's group).
func SurveyAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := surveyController.NewSurveyController(db)

	surveys := api.Group("/surveys")
	surveys.Post("/", ctrl.CreateSurvey)
	surveys.Put("/:id", ctrl.UpdateSurvey)
	surveys.Delete("/:id", ctrl.DeleteSurvey)
}
