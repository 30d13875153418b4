// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"workpulse_backend/internals/configs"
	employeeModel "workpulse_backend/internals/features/users/employee/model"
)

// AuthMiddleware verifies the bearer token, resolves the employee row and
// stores employee_id (internal int key), user_id (external uuid), role and
// job_title in locals for downstream controllers.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Token parse failed:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] Exp validation:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		userUUID, err := extractUserID(claims)
		if err != nil {
			log.Println("[ERROR] user_id:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		c.Locals("user_id", userUUID.String())

		// Resolve the employee once per request; job title feeds the growth
		// question visibility filter downstream.
		var emp employeeModel.EmployeeModel
		if err := db.WithContext(c.UserContext()).
			Where("user_uuid = ? AND deleted_at IS NULL", userUUID).
			First(&emp).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Employee not found")
			}
			log.Println("[ERROR] DB error resolving employee:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if !emp.IsActive {
			return fiber.NewError(fiber.StatusForbidden, "Your account has been deactivated")
		}

		c.Locals("employee_id", emp.ID)
		c.Locals("job_title", emp.JobTitle)
		storeBasicClaimsToLocals(c, claims)

		return c.Next()
	}
}
