package route

import (
	questionController "workpulse_backend/internals/features/surveys/questions/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// QuestionUserRoutes: read-only question listings for signed-in employees.
func QuestionUserRoutes(api fiber.Router, db *gorm.DB) {
	surveyQuestionCtrl := questionController.NewSurveyQuestionController(db)
	growthQuestionCtrl := questionController.NewGrowthQuestionController(db)

	api.Get("/survey-questions", surveyQuestionCtrl.GetAllQuestions)
	api.Get("/growth-questions/my", growthQuestionCtrl.GetMyQuestions)
}
