// file: internals/features/users/auth/service/token_service.go
package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	employeeModel "workpulse_backend/internals/features/users/employee/model"
)

const AccessTokenTTL = 24 * time.Hour

// SignAccessToken mints the bearer token the auth middleware expects:
// sub carries the external uuid, role and user_name feed the locals.
func SignAccessToken(secret string, emp employeeModel.EmployeeModel, now time.Time) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt secret is empty")
	}
	claims := jwt.MapClaims{
		"sub":       emp.UserUUID.String(),
		"role":      emp.Role,
		"user_name": emp.Name,
		"iat":       now.Unix(),
		"exp":       now.Add(AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
