// file: internals/features/users/employee/controller/employee_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"workpulse_backend/internals/features/users/employee/model"
	helper "workpulse_backend/internals/helpers"
)

type EmployeeController struct {
	DB *gorm.DB
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: db}
}

// =============================
// 👤 Me
// =============================
func (ctrl *EmployeeController) GetMe(c *fiber.Ctx) error {
	id, err := helper.GetEmployeeIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var emp model.EmployeeModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&emp, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Employee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve employee")
	}
	return helper.JsonOK(c, "", emp)
}

// =============================
// 📄 List (admin, used to annotate dashboards with names/jobs)
// =============================
func (ctrl *EmployeeController) GetAllEmployees(c *fiber.Ctx) error {
	var employees []model.EmployeeModel
	q := ctrl.DB.WithContext(c.UserContext()).Order("name")
	if job := c.Query("job"); job != "" {
		q = q.Where("job_title = ?", job)
	}
	if err := q.Find(&employees).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve employees")
	}
	return helper.JsonList(c, "", employees)
}
