package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/hltv-api/external/hltv"
	"github.com/riskibarqy/hltv-api/internal/config"
	"github.com/riskibarqy/hltv-api/internal/extraction"
	"github.com/riskibarqy/hltv-api/internal/interfaces/httpapi"
	"github.com/riskibarqy/hltv-api/internal/platform/logging"
	"github.com/riskibarqy/hltv-api/internal/platform/resilience"
	"github.com/riskibarqy/hltv-api/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	fetcher := hltv.NewClient(hltv.ClientConfig{
		UserAgent:  cfg.HLTVUserAgent,
		Timeout:    cfg.HLTVTimeout,
		MaxRetries: cfg.HLTVMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.BreakerConfig{
			Enabled:          cfg.HLTVCircuitEnabled,
			FailureThreshold: cfg.HLTVCircuitFailureCount,
			OpenTimeout:      cfg.HLTVCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.HLTVCircuitHalfOpenMaxReq,
		},
	})
	extractor := extraction.New(cfg.HLTVBaseURL, logger)
	pages := usecase.Pages{
		BaseURL: cfg.HLTVBaseURL,
		RSSURL:  cfg.HLTVRSSURL,
	}

	handler := httpapi.NewHandler(
		usecase.NewTeamService(fetcher, extractor, pages, logger),
		usecase.NewPlayerService(fetcher, extractor, pages, logger),
		usecase.NewRankingService(fetcher, extractor, pages),
		usecase.NewNewsService(fetcher, extractor, pages),
		usecase.NewSearchService(fetcher, extractor, pages),
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
