package route

import (
	surveyController "workpulse_backend/internals/features/surveys/survey/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SurveyUserRoutes: read-only survey listing for signed-in employees.
func SurveyUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := surveyController.NewSurveyController(db)

	surveys := api.Group("/surveys")
	surveys.Get("/", ctrl.GetAllSurveys)
	surveys.Get("/:id", ctrl.GetSurveyByID)
}
