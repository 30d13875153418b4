// file: internals/features/surveys/questions/controller/growth_question_controller.go
package controller

import (
	"errors"
	"log"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"workpulse_backend/internals/features/surveys/questions/dto"
	"workpulse_backend/internals/features/surveys/questions/model"
	helper "workpulse_backend/internals/helpers"
)

var validateGrowthQuestion = validator.New()

type GrowthQuestionController struct {
	DB *gorm.DB
}

func NewGrowthQuestionController(db *gorm.DB) *GrowthQuestionController {
	return &GrowthQuestionController{DB: db}
}

// =============================
// ➕ Create Growth Question
// =============================
func (ctrl *GrowthQuestionController) CreateQuestion(c *fiber.Ctx) error {
	var req dto.CreateGrowthQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateGrowthQuestion.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	question, err := dto.ToGrowthQuestionModel(req)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&question).Error; err != nil {
		log.Println("[ERROR] Failed to create growth question:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create growth question")
	}
	return helper.JsonCreated(c, "Growth question created", dto.ToGrowthQuestionDTO(question))
}

// =============================
// ✏️ Update Growth Question
// =============================
func (ctrl *GrowthQuestionController) UpdateQuestion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}
	var req dto.UpdateGrowthQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateGrowthQuestion.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var question model.GrowthQuestionModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&question, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Growth question not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve growth question")
	}

	if req.QuestionText != nil {
		question.QuestionText = *req.QuestionText
	}
	if req.Category != nil {
		question.Category = *req.Category
	}
	if req.Weight != nil {
		question.Weight = req.Weight
	}
	if req.Options != nil {
		opts := make([]model.GrowthAnswerOption, 0, len(req.Options))
		for _, o := range req.Options {
			opts = append(opts, model.GrowthAnswerOption{Text: o.Text, Score: o.Score})
		}
		if err := question.SetAnswerOptions(opts); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}
	if req.TargetJobs != nil {
		question.SetTargetJobs(req.TargetJobs)
	}
	if req.IsActive != nil {
		question.IsActive = *req.IsActive
	}
	if req.DisplayOrder != nil {
		question.DisplayOrder = *req.DisplayOrder
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&question).Error; err != nil {
		log.Println("[ERROR] Failed to update growth question:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update growth question")
	}
	return helper.JsonUpdated(c, "Growth question updated", dto.ToGrowthQuestionDTO(question))
}

// =============================
// 📄 Get All (admin view, includes inactive)
// =============================
func (ctrl *GrowthQuestionController) GetAllQuestions(c *fiber.Ctx) error {
	var questions []model.GrowthQuestionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("display_order, id").
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve growth questions")
	}

	out := make([]dto.GrowthQuestionDTO, 0, len(questions))
	for _, q := range questions {
		out = append(out, dto.ToGrowthQuestionDTO(q))
	}
	return helper.JsonList(c, "", out)
}

// =============================
// 🔍 Get My Questions (active, job-filtered, display order)
// =============================
func (ctrl *GrowthQuestionController) GetMyQuestions(c *fiber.Ctx) error {
	job := helper.GetJobTitleFromToken(c)

	var questions []model.GrowthQuestionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("is_active = ?", true).
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve growth questions")
	}

	out := make([]dto.GrowthQuestionDTO, 0, len(questions))
	for i := range questions {
		if questions[i].VisibleToJob(job) {
			out = append(out, dto.ToGrowthQuestionDTO(questions[i]))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].ID < out[j].ID
	})
	return helper.JsonList(c, "", out)
}

// =============================
// 🗑 Delete Growth Question
// =============================
func (ctrl *GrowthQuestionController) DeleteQuestion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}
	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.GrowthQuestionModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete growth question")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Growth question not found")
	}
	return helper.JsonDeleted(c, "Growth question deleted", fiber.Map{"id": id})
}
