package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"todo_backend/internal/models"
	"todo_backend/internal/service"
)

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestAuthHandlers_SignUpAndSignIn(t *testing.T) {
	auth := &mockAuth{
		signUpUser:    models.User{ID: "u-42", Email: "jane@example.com", Username: "jane", PasswordHash: "hash"},
		genTokenToken: "tok123",
	}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	// sign-up success
	w := httptest.NewRecorder()
	r.ServeHTTP(w, postJSON("/api/v1/auth/sign-up",
		`{"email":"jane@example.com","username":"jane","password":"longenough","passwordConfirm":"longenough"}`))
	if w.Code != http.StatusOK {
		t.Fatalf("sign-up status=%d, body=%s", w.Code, w.Body.String())
	}
	var signUp struct {
		Status string `json:"status"`
		Data   struct {
			User map[string]any `json:"user"`
		} `json:"data"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &signUp)
	if signUp.Status != statusSuccess || signUp.Data.User["_id"] != "u-42" {
		t.Fatalf("unexpected sign-up body: %s", w.Body.String())
	}
	if _, leaked := signUp.Data.User["password_hash"]; leaked {
		t.Fatalf("password hash must not be serialized")
	}
	if auth.lastSignUp.PasswordConfirm != "longenough" || auth.lastSignUp.Email != "jane@example.com" {
		t.Fatalf("sign-up input not forwarded: %+v", auth.lastSignUp)
	}

	// sign-in success
	w = httptest.NewRecorder()
	r.ServeHTTP(w, postJSON("/api/v1/auth/sign-in", `{"email":"jane@example.com","password":"longenough"}`))
	if w.Code != http.StatusOK {
		t.Fatalf("sign-in status=%d, body=%s", w.Code, w.Body.String())
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["token"] != "tok123" || m["status"] != statusSuccess {
		t.Fatalf("unexpected sign-in body: %v", m)
	}

	// sign-in invalid body → 400
	w = httptest.NewRecorder()
	r.ServeHTTP(w, postJSON("/api/v1/auth/sign-in", `{"email":1}`))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad body, got %d", w.Code)
	}
}

func TestAuthHandlers_SignUpErrors(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		svcErr   error
		wantCode int
	}{
		{"missing fields", `{"email":"jane@example.com"}`, nil, http.StatusBadRequest},
		{"malformed email", `{"email":"nope","username":"j","password":"longenough","passwordConfirm":"longenough"}`, service.ErrEmailRequired, http.StatusBadRequest},
		{"password mismatch", `{"email":"a@b.co","username":"j","password":"longenough","passwordConfirm":"other"}`, service.ErrPasswordMismatch, http.StatusBadRequest},
		{"email taken", `{"email":"a@b.co","username":"j","password":"longenough","passwordConfirm":"longenough"}`, service.ErrEmailTaken, http.StatusBadRequest},
		{"store failure", `{"email":"a@b.co","username":"j","password":"longenough","passwordConfirm":"longenough"}`, errors.New("disk"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&service.Service{Authorization: &mockAuth{signUpErr: tc.svcErr}})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, postJSON("/api/v1/auth/sign-up", tc.body))
			if w.Code != tc.wantCode {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tc.wantCode, w.Body.String())
			}
			var out struct {
				Status string `json:"status"`
				Error  string `json:"error"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out.Status != statusFail || out.Error == "" {
				t.Fatalf("expected fail envelope, got %s", w.Body.String())
			}
		})
	}
}

func TestAuthHandlers_SignUpPassesPaddedEmailToService(t *testing.T) {
	auth := &mockAuth{signUpUser: models.User{ID: "u-7", Email: "jane@example.com", Username: "jane"}}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postJSON("/api/v1/auth/sign-up",
		`{"email":"  Jane@Example.com ","username":"jane","password":"longenough","passwordConfirm":"longenough"}`))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if auth.lastSignUp.Email != "  Jane@Example.com " {
		t.Fatalf("email should reach the service as sent, got %q", auth.lastSignUp.Email)
	}
}

func TestAuthHandlers_SignInRejectsBadCredentials(t *testing.T) {
	for _, svcErr := range []error{service.ErrUserNotFound, service.ErrInvalidPassword} {
		r := newTestRouter(&service.Service{Authorization: &mockAuth{genTokenErr: svcErr}})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, postJSON("/api/v1/auth/sign-in", `{"email":"a@b.co","password":"whatever1"}`))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%v: expected 401, got %d", svcErr, w.Code)
		}
		var out map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &out)
		if out["error"] != errBadCredentials {
			t.Fatalf("%v: unexpected message %q", svcErr, out["error"])
		}
	}
}

func TestAuthHandlers_Me(t *testing.T) {
	auth := &mockAuth{parseID: "u-7", user: models.User{ID: "u-7", Email: "me@example.com"}}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without auth, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, withAuth(httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil), "valid"))
	if w.Code != http.StatusOK {
		t.Fatalf("me status=%d, body=%s", w.Code, w.Body.String())
	}
	if auth.lastGetUserID != "u-7" {
		t.Fatalf("GetUser called with %q", auth.lastGetUserID)
	}
}
