package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "transferbook/pkg/errors"
)

func TestPreferredLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"el", "el"},
		{"el-GR,el;q=0.9,en;q=0.8", "el"},
		{"EN-us", "en"},
		{" en;q=0.5 , el", "en"},
	}

	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			r.Header.Set("Accept-Language", tt.header)
		}
		if got := PreferredLanguage(r); got != tt.want {
			t.Errorf("PreferredLanguage(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestDecodeJSON(t *testing.T) {
	type body struct {
		Name string `json:"name"`
	}

	t.Run("valid body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Jane"}`))
		var b body
		if err := DecodeJSON(r, &b, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Name != "Jane" {
			t.Errorf("expected Jane, got %q", b.Name)
		}
	})

	t.Run("empty body allowed", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		var b body
		if err := DecodeJSON(r, &b, true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty body rejected", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		var b body
		if err := DecodeJSON(r, &b, false); err == nil {
			t.Fatal("expected error for empty body")
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nickname":"J"}`))
		var b body
		err := DecodeJSON(r, &b, false)
		if !apperrors.IsAppError(err) || apperrors.AsAppError(err).Code != apperrors.CodeInvalidInput {
			t.Fatalf("expected invalid input error, got %v", err)
		}
	})
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	_ = WriteError(rec, errors.New("kafka: dial tcp 10.0.0.1:9092: connection refused"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "10.0.0.1") {
		t.Errorf("internal cause leaked to client: %s", rec.Body.String())
	}
}

func TestWriteError_AppError(t *testing.T) {
	rec := httptest.NewRecorder()
	_ = WriteError(rec, apperrors.Validation("invalid", map[string]any{"email": "bad"}))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	var resp apperrors.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Details["email"] != "bad" {
		t.Errorf("expected details to be rendered, got %v", resp.Details)
	}
}
