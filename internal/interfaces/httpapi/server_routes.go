package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("GET /healthz", handler.Health)
	mux.HandleFunc("/", handler.NotFound)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /news", handler.ListNews)
	mux.HandleFunc("GET /ranking", handler.GetRanking)
	mux.HandleFunc("GET /search", handler.Search)
	mux.HandleFunc("GET /team/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /team/{teamID}/upcoming", handler.GetTeamUpcoming)
	mux.HandleFunc("GET /team/{teamID}/result", handler.GetTeamResults)
	mux.HandleFunc("GET /player/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /player/{playerID}/stats", handler.GetPlayerStatistics)
}
