package helper

import (
	"github.com/gofiber/fiber/v2"
)

// GetEmployeeIDFromToken reads the internal employee id stored by the auth
// middleware. Returns a fiber 401 error when missing.
func GetEmployeeIDFromToken(c *fiber.Ctx) (int, error) {
	id, ok := c.Locals("employee_id").(int)
	if !ok || id == 0 {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: employee_id not found in token")
	}
	return id, nil
}

// GetJobTitleFromToken reads the caller's job title (set by auth middleware).
// Empty string means "no job recorded"; growth question filtering treats it
// as matching only untargeted questions.
func GetJobTitleFromToken(c *fiber.Ctx) string {
	job, _ := c.Locals("job_title").(string)
	return job
}
