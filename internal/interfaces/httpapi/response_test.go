package httpapi

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/hltv-api/internal/extraction"
	"github.com/riskibarqy/hltv-api/internal/usecase"
)

func TestWriteSuccess_PlainPayload(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, healthDTO{State: "running"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected content type: %q", got)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"state":"running"}` {
		t.Fatalf("unexpected body: %q", got)
	}
}

func TestWriteJSON_UnencodablePayloadIsInternalError(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]float64{"rating": math.NaN()})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"status":"error","message":"internal server error"}` {
		t.Fatalf("unexpected body: %q", got)
	}
}

func TestWriteError_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad id", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if got, _ := body["status"].(string); got != "error" {
		t.Fatalf("expected status=error, got %v", body["status"])
	}
	if got, _ := body["message"].(string); got != "invalid input: bad id" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	if len(body) != 2 {
		t.Fatalf("unexpected envelope keys: %v", body)
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid input", err: fmt.Errorf("%w: x", usecase.ErrInvalidInput), want: http.StatusBadRequest},
		{name: "parse failure", err: fmt.Errorf("extract news: %w", extraction.ErrParse), want: http.StatusBadRequest},
		{name: "not found", err: usecase.ErrNotFound, want: http.StatusNotFound},
		{name: "entity not found", err: fmt.Errorf("extract team: %w", extraction.ErrEntityNotFound), want: http.StatusNotFound},
		{name: "circuit open", err: fmt.Errorf("%w: open", usecase.ErrDependencyUnavailable), want: http.StatusServiceUnavailable},
		{name: "fetch failure", err: fmt.Errorf("%w: status=500", usecase.ErrUpstreamFetch), want: http.StatusInternalServerError},
		{name: "missing field", err: extraction.ErrMissingRequiredField, want: http.StatusInternalServerError},
		{name: "unclassified", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapError(context.Background(), tt.err); got != tt.want {
				t.Fatalf("mapError()=%d want=%d", got, tt.want)
			}
		})
	}
}
