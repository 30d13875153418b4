// file: internals/features/surveys/responses/controller/answer_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"workpulse_backend/internals/cache"
	qmodel "workpulse_backend/internals/features/surveys/questions/model"
	"workpulse_backend/internals/features/surveys/responses/dto"
	"workpulse_backend/internals/features/surveys/responses/service"
	smodel "workpulse_backend/internals/features/surveys/survey/model"
	helper "workpulse_backend/internals/helpers"
)

var validateAnswer = validator.New()

type AnswerController struct {
	DB    *gorm.DB
	Cache cache.Cache

	cols        *service.ColumnResolver
	orgStore    *service.OrgStore
	growthStore *service.GrowthStore
}

func NewAnswerController(db *gorm.DB, c cache.Cache) *AnswerController {
	cols := service.NewColumnResolver(db)
	return &AnswerController{
		DB:          db,
		Cache:       c,
		cols:        cols,
		orgStore:    service.NewOrgStore(db, cols),
		growthStore: service.NewGrowthStore(db, cols),
	}
}

func (ctrl *AnswerController) Resolver() *service.ColumnResolver { return ctrl.cols }
func (ctrl *AnswerController) GrowthStore() *service.GrowthStore { return ctrl.growthStore }

// =============================
// 📩 Save Answer (single question)
// =============================
func (ctrl *AnswerController) SaveAnswer(c *fiber.Ctx) error {
	userID, err := helper.GetEmployeeIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	surveyID, err := surveyIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.SaveAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAnswer.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if (req.Score == nil) == (req.Text == nil) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Provide exactly one of score or text")
	}

	survey, err := ctrl.loadWritableSurvey(c, surveyID)
	if err != nil {
		return ctrl.respondError(c, err)
	}

	ctx := c.UserContext()
	if survey.IsGrowth() {
		err = ctrl.saveGrowthAnswer(c, userID, surveyID, req)
	} else {
		err = ctrl.saveOrgAnswer(c, userID, surveyID, req)
	}
	if err != nil {
		return ctrl.respondError(c, err)
	}

	ctrl.invalidateRollup(c, surveyID)

	progress, err := ctrl.trackerFor(survey).Progress(ctx, userID, surveyID)
	if err != nil {
		return ctrl.respondError(c, err)
	}
	return helper.JsonOK(c, "Answer saved", dto.ToProgressResponse(progress))
}

// =============================
// 📄 Get My Responses
// =============================
func (ctrl *AnswerController) GetMyResponses(c *fiber.Ctx) error {
	userID, err := helper.GetEmployeeIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	surveyID, err := surveyIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	survey, err := ctrl.loadSurvey(c, surveyID)
	if err != nil {
		return ctrl.respondError(c, err)
	}

	ctx := c.UserContext()
	store := ctrl.storeFor(survey)
	answers, err := store.UserAnswers(ctx, userID, surveyID)
	if err != nil {
		return ctrl.respondError(c, err)
	}
	progress, err := ctrl.trackerFor(survey).Progress(ctx, userID, surveyID)
	if err != nil {
		return ctrl.respondError(c, err)
	}

	if answers == nil {
		answers = []service.UserAnswer{}
	}
	return helper.JsonOK(c, "", dto.MyResponsesResponse{
		Responses:        answers,
		ProgressResponse: dto.ToProgressResponse(progress),
	})
}

// =============================
// 🗑 Delete Answer
// =============================
// Users remove their own answer; admins may target another user via
// ?user_id=.
func (ctrl *AnswerController) DeleteAnswer(c *fiber.Ctx) error {
	userID, err := helper.GetEmployeeIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	surveyID, err := surveyIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	questionID, err := c.ParamsInt("questionId")
	if err != nil || questionID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}

	if q := c.Query("user_id"); q != "" {
		role, _ := c.Locals("userRole").(string)
		if role != "admin" {
			return helper.JsonError(c, fiber.StatusForbidden, "Only admins can delete another user's answers")
		}
		target, convErr := strconv.Atoi(q)
		if convErr != nil || target <= 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user_id")
		}
		userID = target
	}

	survey, err := ctrl.loadSurvey(c, surveyID)
	if err != nil {
		return ctrl.respondError(c, err)
	}

	if err := ctrl.storeFor(survey).RemoveAnswer(c.UserContext(), userID, surveyID, questionID); err != nil {
		return ctrl.respondError(c, err)
	}
	ctrl.invalidateRollup(c, surveyID)

	return helper.JsonDeleted(c, "Answer removed", fiber.Map{"ok": true})
}

/* ===============================
   Internals
=================================*/

func (ctrl *AnswerController) saveOrgAnswer(c *fiber.Ctx, userID, surveyID int, req dto.SaveAnswerRequest) error {
	var q qmodel.SurveyQuestionModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&q, "id = ?", req.QuestionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &service.NotFoundError{Resource: "question", ID: req.QuestionID}
		}
		return err
	}

	if req.Text != nil {
		if !q.IsFreeText() {
			return service.NewValidationError("question %d does not take a text answer", q.ID)
		}
		return ctrl.orgStore.UpsertFreeText(c.UserContext(), userID, surveyID, q.ID, *req.Text)
	}

	if !q.IsSingleChoice() {
		return service.NewValidationError("question %d does not take a score answer", q.ID)
	}
	if q.CategoryID == nil {
		return service.NewValidationError("question %d has no category", q.ID)
	}
	return ctrl.orgStore.UpsertScore(c.UserContext(), service.ScoreAnswer{
		UserID:     userID,
		SurveyID:   surveyID,
		QuestionID: q.ID,
		CategoryID: *q.CategoryID,
		Score:      *req.Score,
	})
}

func (ctrl *AnswerController) saveGrowthAnswer(c *fiber.Ctx, userID, surveyID int, req dto.SaveAnswerRequest) error {
	var q qmodel.GrowthQuestionModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&q, "id = ?", req.QuestionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &service.NotFoundError{Resource: "growth question", ID: req.QuestionID}
		}
		return err
	}
	if !q.IsActive {
		return service.NewValidationError("question %d is no longer active", q.ID)
	}
	if !q.VisibleToJob(helper.GetJobTitleFromToken(c)) {
		return service.NewValidationError("question %d is not available for your job", q.ID)
	}

	if req.Text != nil {
		if !q.IsFreeText() {
			return service.NewValidationError("question %d does not take a text answer", q.ID)
		}
		return ctrl.growthStore.UpsertFreeText(c.UserContext(), userID, surveyID, q.ID, *req.Text)
	}

	if !q.IsSingleChoice() {
		return service.NewValidationError("question %d does not take a score answer", q.ID)
	}
	return ctrl.growthStore.UpsertScore(c.UserContext(), service.ScoreAnswer{
		UserID:     userID,
		SurveyID:   surveyID,
		QuestionID: q.ID,
		Category:   q.Category,
		Score:      *req.Score,
	})
}

func (ctrl *AnswerController) storeFor(survey *smodel.SurveyModel) service.AnswerStore {
	if survey.IsGrowth() {
		return ctrl.growthStore
	}
	return ctrl.orgStore
}

func (ctrl *AnswerController) trackerFor(survey *smodel.SurveyModel) *service.ProgressTracker {
	return service.NewProgressTracker(ctrl.storeFor(survey))
}

func (ctrl *AnswerController) loadSurvey(c *fiber.Ctx, surveyID int) (*smodel.SurveyModel, error) {
	var survey smodel.SurveyModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&survey, "id = ?", surveyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &service.NotFoundError{Resource: "survey", ID: surveyID}
		}
		return nil, err
	}
	return &survey, nil
}

func (ctrl *AnswerController) loadWritableSurvey(c *fiber.Ctx, surveyID int) (*smodel.SurveyModel, error) {
	survey, err := ctrl.loadSurvey(c, surveyID)
	if err != nil {
		return nil, err
	}
	if !survey.AcceptsAnswers() {
		return nil, service.NewValidationError("survey %d is not accepting answers", surveyID)
	}
	return survey, nil
}

func (ctrl *AnswerController) invalidateRollup(c *fiber.Ctx, surveyID int) {
	if err := ctrl.Cache.Delete(c.UserContext(), rollupCacheKey(surveyID)); err != nil {
		log.Printf("[WARNING] cache invalidation failed for survey %d: %v", surveyID, err)
	}
}

func surveyIDParam(c *fiber.Ctx) (int, error) {
	id, err := c.ParamsInt("surveyId")
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid survey id")
	}
	return id, nil
}

// respondError maps the service error taxonomy onto HTTP. Schema and corrupt
// data problems are logged with full context; the caller only ever sees a
// generic message.
func (ctrl *AnswerController) respondError(c *fiber.Ctx, err error) error {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, ve.Msg)
	}
	var nf *service.NotFoundError
	if errors.As(err, &nf) {
		return helper.JsonError(c, fiber.StatusNotFound, nf.Error())
	}
	var te *service.TransientStoreError
	if errors.As(err, &te) {
		log.Printf("[ERROR] transient store failure: %v", te.Err)
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Temporary problem, please try again")
	}
	var se *service.SchemaError
	if errors.As(err, &se) {
		log.Printf("[ERROR] %v", se)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	log.Printf("[ERROR] answer request failed: %v", err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
}
