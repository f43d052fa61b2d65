package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestHandleServiceErrorMapsSentinels(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err  error
		code int
	}{
		{ErrTransactionNotFound, http.StatusNotFound},
		{ErrNotOwner, http.StatusForbidden},
		{ErrNotParent, http.StatusForbidden},
		{ErrInsufficientFunds, http.StatusBadRequest},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{fmt.Errorf("%w: current password does not match", ErrInvalidInput), http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Set("trace_id", "trace-1")

			HandleServiceError(c, tt.err)

			if w.Code != tt.code {
				t.Errorf("status = %d, want %d", w.Code, tt.code)
			}
			var body APIResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Status != "error" || body.Code != tt.code || body.TraceID != "trace-1" {
				t.Errorf("body = %+v", body)
			}
		})
	}
}

func TestServiceErrorsAreMappedOnce(t *testing.T) {
	gin.SetMode(gin.TestMode)

	seen := make(map[error]bool, len(serviceErrors))
	for _, se := range serviceErrors {
		if seen[se.err] {
			t.Errorf("%v mapped twice", se.err)
		}
		seen[se.err] = true

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		HandleServiceError(c, fmt.Errorf("wrapped: %w", se.err))
		if w.Code != se.code {
			t.Errorf("%v: status = %d, want %d", se.err, w.Code, se.code)
		}
	}
}

func TestPeriodLabel(t *testing.T) {
	tests := []struct {
		at   time.Time
		want string
	}{
		{time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC), "май 2024"},
		{time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), "январь 2023"},
		{time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), "декабрь 2025"},
	}
	for _, tt := range tests {
		if got := PeriodLabel(tt.at); got != tt.want {
			t.Errorf("PeriodLabel(%v) = %q, want %q", tt.at, got, tt.want)
		}
	}
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret1", 4)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("password stored in plain text")
	}
	if ComparePasswords(hash, "secret1") != nil {
		t.Error("correct password rejected")
	}
	if ComparePasswords(hash, "secret2") == nil {
		t.Error("wrong password accepted")
	}

	again, _ := HashPassword("secret1", 4)
	if again == hash {
		t.Error("hashes repeat; salt missing")
	}
}
