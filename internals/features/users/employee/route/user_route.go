package route

import (
	employeeController "workpulse_backend/internals/features/users/employee/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "workpulse_backend/internals/middlewares/auth"
)

func EmployeeRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := employeeController.NewEmployeeController(db)

	api.Get("/employees/me", ctrl.GetMe)
	api.Get("/employees",
		authMiddleware.OnlyRoles("Only admins can list employees", "admin"),
		ctrl.GetAllEmployees)
}
