// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"workpulse_backend/internals/cache"

	questionRoute "workpulse_backend/internals/features/surveys/questions/route"
	responseRoute "workpulse_backend/internals/features/surveys/responses/route"
	surveyRoute "workpulse_backend/internals/features/surveys/survey/route"
	authRoute "workpulse_backend/internals/features/users/auth/route"
	employeeRoute "workpulse_backend/internals/features/users/employee/route"

	authMiddleware "workpulse_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, c cache.Cache) {
	startTime = time.Now()

	BaseRoutes(app)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up auth routes...")
	public := app.Group("/api")
	authRoute.AuthRoutes(public, db)

	// ===================== PRIVATE (EMPLOYEE) =====================
	log.Println("[INFO] Setting up employee routes...")
	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	employeeRoute.EmployeeRoutes(api, db)
	surveyRoute.SurveyUserRoutes(api, db)
	questionRoute.QuestionUserRoutes(api, db)
	responseRoute.ResponseRoutes(api, db, c)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up admin routes...")
	admin := app.Group("/api/admin",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Admin access required", "admin"),
	)

	surveyRoute.SurveyAdminRoutes(admin, db)
	questionRoute.QuestionAdminRoutes(admin, db)
}
