package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/ahleever/caltrack/internal/db"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "caltrack-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, "test-secret-key", time.UTC, false)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func performJSON(t *testing.T, app *fiber.App, method string, path string, authCookie string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSONBody(t *testing.T, response *http.Response) map[string]any {
	t.Helper()
	defer response.Body.Close()

	decoded := map[string]any{}
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return decoded
}

func registerTestUser(t *testing.T, app *fiber.App, username string, password string) string {
	t.Helper()

	response := performJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": username,
		"password": password,
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: expected status 201, got %d", username, response.StatusCode)
	}
	defer response.Body.Close()

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return authCookieName + "=" + cookie.Value
		}
	}
	t.Fatalf("register %s: auth cookie missing", username)
	return ""
}

func submitTestProfile(t *testing.T, app *fiber.App, authCookie string) {
	t.Helper()

	response := performJSON(t, app, http.MethodPut, "/api/profile", authCookie, map[string]any{
		"age":            30,
		"height_inches":  70,
		"weight_lb":      175,
		"goal_weight_lb": 165,
		"sex":            "male",
		"activity_level": "moderate",
	})
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("submit profile: expected status 200, got %d", response.StatusCode)
	}
}
