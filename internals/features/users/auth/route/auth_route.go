package route

import (
	authController "workpulse_backend/internals/features/users/auth/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthRoutes are public: login happens before any bearer token exists.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	api.Post("/auth/google", ctrl.LoginGoogle)
}
