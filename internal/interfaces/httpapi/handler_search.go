package httpapi

import (
	"net/http"
	"strings"
)

// Search looks up a team when the team parameter is present, otherwise a
// player.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Search")
	defer span.End()

	query := r.URL.Query()
	req := searchRequest{
		Team:   strings.TrimSpace(query.Get("team")),
		Player: strings.TrimSpace(query.Get("player")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if req.Team != "" {
		item, err := h.searchService.FindTeam(ctx, req.Team)
		if err != nil {
			h.logger.WarnContext(ctx, "search team failed", "term", req.Team, "error", err)
			writeError(ctx, w, err)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, searchTeamToDTO(item))
		return
	}

	item, err := h.searchService.FindPlayer(ctx, req.Player)
	if err != nil {
		h.logger.WarnContext(ctx, "search player failed", "term", req.Player, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, searchPlayerToDTO(item))
}
