package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	employeeModel "workpulse_backend/internals/features/users/employee/model"
)

func TestSignAccessTokenRoundTrip(t *testing.T) {
	emp := employeeModel.EmployeeModel{
		ID:       7,
		UserUUID: uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		Name:     "Dewi Lestari",
		Role:     "admin",
	}
	now := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	signed, err := SignAccessToken("test-secret", emp, now)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(signed, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			t.Errorf("unexpected signing method %v", token.Method)
		}
		return []byte("test-secret"), nil
	}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	if got := claims["sub"]; got != emp.UserUUID.String() {
		t.Errorf("sub = %v, want %s", got, emp.UserUUID)
	}
	if got := claims["role"]; got != "admin" {
		t.Errorf("role = %v, want admin", got)
	}
	if got := claims["user_name"]; got != "Dewi Lestari" {
		t.Errorf("user_name = %v, want Dewi Lestari", got)
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("exp claim missing or not numeric: %v", claims["exp"])
	}
	if want := now.Add(AccessTokenTTL).Unix(); int64(exp) != want {
		t.Errorf("exp = %d, want %d", int64(exp), want)
	}
}

func TestSignAccessTokenRejectsWrongSecret(t *testing.T) {
	emp := employeeModel.EmployeeModel{UserUUID: uuid.New(), Name: "x", Role: "employee"}
	signed, err := SignAccessToken("right-secret", emp, time.Now())
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	}); err == nil {
		t.Error("token verified with the wrong secret")
	}
}

func TestSignAccessTokenEmptySecret(t *testing.T) {
	if _, err := SignAccessToken("", employeeModel.EmployeeModel{}, time.Now()); err == nil {
		t.Error("expected error for empty secret")
	}
}
