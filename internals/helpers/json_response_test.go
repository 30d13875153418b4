package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func errorResponseFor(t *testing.T, status int, message string) (int, ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return JsonError(c, status, message)
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var out ErrorResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("unmarshal %q: %v", body, err)
	}
	return resp.StatusCode, out
}

func TestJsonErrorBlankMessageGetsStatusText(t *testing.T) {
	cases := []struct {
		status      int
		wantMessage string
		wantCode    string
	}{
		{fiber.StatusNotFound, "Not Found", "NOT_FOUND"},
		{fiber.StatusForbidden, "Forbidden", "FORBIDDEN"},
		{fiber.StatusInternalServerError, "Internal Server Error", "INTERNAL_ERROR"},
		{fiber.StatusServiceUnavailable, "Service Unavailable", "TRY_AGAIN"},
	}
	for _, tc := range cases {
		status, out := errorResponseFor(t, tc.status, "")
		if status != tc.status {
			t.Errorf("status = %d, want %d", status, tc.status)
		}
		if out.Message != tc.wantMessage {
			t.Errorf("status %d: message = %q, want %q", tc.status, out.Message, tc.wantMessage)
		}
		if out.ErrorCode != tc.wantCode {
			t.Errorf("status %d: error_code = %q, want %q", tc.status, out.ErrorCode, tc.wantCode)
		}
		if out.Success {
			t.Errorf("status %d: success must be false", tc.status)
		}
	}
}

func TestJsonErrorKeepsExplicitMessage(t *testing.T) {
	status, out := errorResponseFor(t, fiber.StatusUnprocessableEntity, "answer text must not be blank")
	if status != fiber.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", status)
	}
	if out.Message != "answer text must not be blank" {
		t.Errorf("explicit message rewritten to %q", out.Message)
	}
}

func TestJsonErrorZeroStatusDefaultsTo500(t *testing.T) {
	status, out := errorResponseFor(t, 0, "")
	if status != fiber.StatusInternalServerError {
		t.Errorf("status = %d, want 500", status)
	}
	if out.Message == "" {
		t.Error("message must not stay blank")
	}
}
