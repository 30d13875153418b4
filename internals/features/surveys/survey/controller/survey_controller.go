// file: internals/features/surveys/survey/controller/survey_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	respService "workpulse_backend/internals/features/surveys/responses/service"
	"workpulse_backend/internals/features/surveys/survey/dto"
	"workpulse_backend/internals/features/surveys/survey/model"
	helper "workpulse_backend/internals/helpers"
)

var validateSurvey = validator.New()

type SurveyController struct {
	DB   *gorm.DB
	cols *respService.ColumnResolver
}

func NewSurveyController(db *gorm.DB) *SurveyController {
	return &SurveyController{DB: db, cols: respService.NewColumnResolver(db)}
}

// =============================
// ➕ Create Survey
// =============================
func (ctrl *SurveyController) CreateSurvey(c *fiber.Ctx) error {
	var req dto.CreateSurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSurvey.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	survey := dto.ToSurveyModel(req)
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&survey).Error; err != nil {
		log.Println("[ERROR] Failed to create survey:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create survey")
	}
	return helper.JsonCreated(c, "Survey created", dto.ToSurveyDTO(survey))
}

// =============================
// 📄 Get All Surveys
// =============================
func (ctrl *SurveyController) GetAllSurveys(c *fiber.Ctx) error {
	var surveys []model.SurveyModel
	q := ctrl.DB.WithContext(c.UserContext()).Order("created_at DESC")
	if t := c.Query("type"); t != "" {
		q = q.Where("survey_type = ?", t)
	}
	if err := q.Find(&surveys).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve surveys")
	}

	out := make([]dto.SurveyDTO, 0, len(surveys))
	for _, s := range surveys {
		out = append(out, dto.ToSurveyDTO(s))
	}
	return helper.JsonList(c, "", out)
}

// =============================
// 🔍 Get Survey by ID
// =============================
func (ctrl *SurveyController) GetSurveyByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid survey id")
	}
	var survey model.SurveyModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&survey, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Survey not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve survey")
	}
	return helper.JsonOK(c, "", dto.ToSurveyDTO(survey))
}

// =============================
// ✏️ Update Survey (dates, status, running gate)
// =============================
func (ctrl *SurveyController) UpdateSurvey(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid survey id")
	}
	var req dto.UpdateSurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSurvey.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var survey model.SurveyModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&survey, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Survey not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve survey")
	}

	if req.Title != nil {
		survey.Title = *req.Title
	}
	if req.StartDate != nil {
		survey.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		survey.EndDate = req.EndDate
	}
	if req.Status != nil {
		survey.Status = model.SurveyStatus(*req.Status)
	}
	if req.Running != nil {
		survey.Running = *req.Running
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&survey).Error; err != nil {
		log.Println("[ERROR] Failed to update survey:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update survey")
	}
	return helper.JsonUpdated(c, "Survey updated", dto.ToSurveyDTO(survey))
}

// =============================
// 🗑 Delete Survey (cascades response data)
// =============================
// Response, free-text and summary rows go in the same transaction as the
// survey row, so a half-deleted survey is never observable.
func (ctrl *SurveyController) DeleteSurvey(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid survey id")
	}

	var survey model.SurveyModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&survey, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Survey not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve survey")
	}

	ctx := c.UserContext()
	err = ctrl.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := respService.PurgeSurveyData(ctx, tx, ctrl.cols, survey.SurveyType, survey.ID); err != nil {
			return err
		}
		return tx.Delete(&survey).Error
	})
	if err != nil {
		log.Println("[ERROR] Failed to delete survey:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete survey")
	}
	return helper.JsonDeleted(c, "Survey deleted", fiber.Map{"id": survey.ID})
}
