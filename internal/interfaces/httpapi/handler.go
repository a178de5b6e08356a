package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/hltv-api/internal/usecase"
)

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Health")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, healthDTO{State: "running"})
}

// NotFound answers every request no route matches, including known paths
// called with another method.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.NotFound")
	defer span.End()

	writeError(ctx, w, fmt.Errorf("%w: no route for %s %s", usecase.ErrNotFound, r.Method, r.URL.Path))
}

func (h *Handler) ListNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNews")
	defer span.End()

	items, err := h.newsService.ListNews(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list news failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newsToDTO(items))
}

func (h *Handler) GetRanking(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRanking")
	defer span.End()

	entries, err := h.rankingService.GetRanking(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get ranking failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rankingToDTO(ctx, entries))
}
