package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/hltv-api/internal/extraction"
	"github.com/riskibarqy/hltv-api/internal/usecase"
)

const errorStatus = "error"

var internalErrorBody = []byte(`{"status":"error","message":"internal server error"}`)

// writeJSON encodes payload before any header is sent so an unencodable
// payload still yields an error envelope.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	body, err := sonic.ConfigDefault.Marshal(payload)
	if err != nil {
		span.RecordError(err)
		status = http.StatusInternalServerError
		body = internalErrorBody
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	ctx, span := startSpan(ctx, "httpapi.writeSuccess")
	defer span.End()

	writeJSON(ctx, w, status, data)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	writeJSON(ctx, w, mapError(ctx, err), errorDTO{
		Status:  errorStatus,
		Message: err.Error(),
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	writeJSON(ctx, w, http.StatusInternalServerError, errorDTO{
		Status:  errorStatus,
		Message: "internal server error",
	})
}

func mapError(ctx context.Context, err error) int {
	_, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	switch {
	case errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, extraction.ErrParse):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrNotFound),
		errors.Is(err, extraction.ErrEntityNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
