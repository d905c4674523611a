package api

import (
	"net/http"
	"testing"
)

func TestRegisterStartsAwaitingProfile(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	response := performJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": "alice",
		"password": "hunter22",
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}
	body := decodeJSONBody(t, response)
	if body["phase"] != "awaiting_profile" {
		t.Fatalf("expected fresh account phase awaiting_profile, got %v", body["phase"])
	}
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	registerTestUser(t, app, "alice", "hunter22")

	response := performJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": "alice",
		"password": "different",
	})
	if response.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", response.StatusCode)
	}
	body := decodeJSONBody(t, response)
	if body["error"] != "username already exists" {
		t.Fatalf("unexpected error message %v", body["error"])
	}
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	// Password shorter than four characters.
	response := performJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": "alice",
		"password": "abc",
	})
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for a short password, got %d", response.StatusCode)
	}
	response.Body.Close()

	// Blank username after trimming.
	response = performJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": "   ",
		"password": "hunter22",
	})
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for a blank username, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestLogin(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	registerTestUser(t, app, "alice", "hunter22")

	response := performJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"username": "alice",
		"password": "wrong-password",
	})
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for bad credentials, got %d", response.StatusCode)
	}
	response.Body.Close()

	response = performJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"username": "alice",
		"password": "hunter22",
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	body := decodeJSONBody(t, response)
	if body["phase"] != "awaiting_profile" {
		t.Fatalf("expected login before profile setup to await profile, got %v", body["phase"])
	}
}

func TestLogoutRequiresSession(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	response := performJSON(t, app, http.MethodPost, "/api/auth/logout", "", nil)
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without a session, got %d", response.StatusCode)
	}
	response.Body.Close()

	authCookie := registerTestUser(t, app, "alice", "hunter22")
	response = performJSON(t, app, http.MethodPost, "/api/auth/logout", authCookie, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	body := decodeJSONBody(t, response)
	if body["phase"] != "logged_out" {
		t.Fatalf("expected phase logged_out, got %v", body["phase"])
	}
}
