// file: internals/features/surveys/questions/controller/survey_question_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"workpulse_backend/internals/features/surveys/questions/dto"
	"workpulse_backend/internals/features/surveys/questions/model"
	helper "workpulse_backend/internals/helpers"
)

var validateQuestion = validator.New()

type SurveyQuestionController struct {
	DB *gorm.DB
}

func NewSurveyQuestionController(db *gorm.DB) *SurveyQuestionController {
	return &SurveyQuestionController{DB: db}
}

// =============================
// ➕ Create Question
// =============================
func (ctrl *SurveyQuestionController) CreateQuestion(c *fiber.Ctx) error {
	var req dto.CreateSurveyQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateQuestion.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.QuestionType == string(model.QuestionTypeSingleChoice) && req.CategoryID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "single_choice question requires category_id")
	}
	if req.QuestionType == string(model.QuestionTypeFreeText) && req.CategoryID != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "free_text question must not carry category_id")
	}

	question := dto.ToSurveyQuestionModel(req)
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&question).Error; err != nil {
		log.Println("[ERROR] Failed to create question:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create question")
	}
	return helper.JsonCreated(c, "Question created", dto.ToSurveyQuestionDTO(question))
}

// =============================
// 📄 Get All Questions
// =============================
func (ctrl *SurveyQuestionController) GetAllQuestions(c *fiber.Ctx) error {
	var questions []model.SurveyQuestionModel
	if err := ctrl.DB.WithContext(c.UserContext()).Order("id").Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve questions")
	}

	out := make([]dto.SurveyQuestionDTO, 0, len(questions))
	for _, q := range questions {
		out = append(out, dto.ToSurveyQuestionDTO(q))
	}
	return helper.JsonList(c, "", out)
}

// =============================
// ✏️ Update Question
// =============================
func (ctrl *SurveyQuestionController) UpdateQuestion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}
	var req dto.UpdateSurveyQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateQuestion.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var question model.SurveyQuestionModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&question, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve question")
	}

	if err := req.ApplyTo(&question); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&question).Error; err != nil {
		log.Println("[ERROR] Failed to update question:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update question")
	}
	return helper.JsonUpdated(c, "Question updated", dto.ToSurveyQuestionDTO(question))
}

// =============================
// 🗑 Delete Question
// =============================
func (ctrl *SurveyQuestionController) DeleteQuestion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}
	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.SurveyQuestionModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete question")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
	}
	return helper.JsonDeleted(c, "Question deleted", fiber.Map{"id": id})
}
