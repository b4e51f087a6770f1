package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/foodexpress/foodexpress-api/internal/api/handler"
	"github.com/foodexpress/foodexpress-api/internal/core/domain"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, errorBody) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return rec, body
}

type errorBody struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields"`
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"unauthenticated", domain.ErrUnauthenticated, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusForbidden},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"restaurant not found", domain.ErrRestaurantNotFound, http.StatusNotFound},
		{"menu not found", domain.ErrMenuNotFound, http.StatusNotFound},
		{"email taken", domain.ErrEmailTaken, http.StatusConflict},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest},
		{"empty update", domain.ErrEmptyUpdate, http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, body := handleError(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			if body.Error == "" {
				t.Fatal("expected an error message in the envelope")
			}
		})
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("lookup failed"), domain.ErrUserNotFound)
	rec, _ := handleError(t, wrapped)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected wrapped error to resolve to 404, got %d", rec.Code)
	}
}

func TestErrorHandler_ValidationError(t *testing.T) {
	rec, body := handleError(t, &handler.ValidationError{
		Fields: []string{"email must be a valid email", "password is required"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if len(body.Fields) != 2 {
		t.Fatalf("expected field list in body, got %+v", body)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec, body := handleError(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body.Error != "missing authorization header" {
		t.Fatalf("unexpected message: %q", body.Error)
	}
}

func TestErrorHandler_UnexpectedError(t *testing.T) {
	rec, body := handleError(t, errors.New("driver: connection reset"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	// Internal details never leak to the client.
	if body.Error != "internal server error" {
		t.Fatalf("unexpected message: %q", body.Error)
	}
}
