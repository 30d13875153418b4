package route

import (
	questionController "workpulse_backend/internals/features/surveys/questions/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// QuestionAdminRoutes: question management for both survey types.
func QuestionAdminRoutes(api fiber.Router, db *gorm.DB) {
	surveyQuestionCtrl := questionController.NewSurveyQuestionController(db)
	growthQuestionCtrl := questionController.NewGrowthQuestionController(db)

	surveyQuestions := api.Group("/survey-questions")
	surveyQuestions.Post("/", surveyQuestionCtrl.CreateQuestion)
	surveyQuestions.Put("/:id", surveyQuestionCtrl.UpdateQuestion)
	surveyQuestions.Delete("/:id", surveyQuestionCtrl.DeleteQuestion)

	growthQuestions := api.Group("/growth-questions")
	growthQuestions.Post("/", growthQuestionCtrl.CreateQuestion)
	growthQuestions.Put("/:id", growthQuestionCtrl.UpdateQuestion)
	growthQuestions.Get("/", growthQuestionCtrl.GetAllQuestions)
	growthQuestions.Delete("/:id", growthQuestionCtrl.DeleteQuestion)
}
