// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"workpulse_backend/internals/configs"
	authService "workpulse_backend/internals/features/users/auth/service"
	employeeModel "workpulse_backend/internals/features/users/employee/model"
	helper "workpulse_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =============================
// 🔐 Login with Google
// =============================
// The Google ID token is verified against our client id, then the employee is
// looked up by verified email. Unknown emails are rejected: accounts are
// provisioned by HR, not self-registered.
func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(input.IDToken) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id_token is required")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	if email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Google token carries no email")
	}

	var emp employeeModel.EmployeeModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("LOWER(email) = ? AND deleted_at IS NULL", email).
		First(&emp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "No employee account for this Google account")
		}
		log.Println("[ERROR] DB error resolving employee by email:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if !emp.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	now := time.Now()
	accessToken, err := authService.SignAccessToken(configs.JWTSecret, emp, now)
	if err != nil {
		log.Println("[ERROR] Failed to sign access token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(authService.AccessTokenTTL),
	})

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"access_token": accessToken,
		"employee": fiber.Map{
			"id":        emp.ID,
			"user_uuid": emp.UserUUID,
			"name":      emp.Name,
			"email":     emp.Email,
			"job_title": emp.JobTitle,
			"role":      emp.Role,
		},
	})
}
