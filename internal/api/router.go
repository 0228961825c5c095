package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/azzbr/padelx/internal/api/handler"
	"github.com/azzbr/padelx/internal/api/middleware"
	"github.com/azzbr/padelx/internal/services/auth"
	"github.com/azzbr/padelx/internal/services/balance"
	"github.com/azzbr/padelx/internal/services/livematch"
	"github.com/azzbr/padelx/internal/services/matchmaking"
	"github.com/azzbr/padelx/internal/services/quality"
	"github.com/azzbr/padelx/internal/services/roster"
	"github.com/azzbr/padelx/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger              *slog.Logger
	AuthService         *auth.Service
	RosterController    *roster.Controller
	SessionController   *session.Controller
	LiveMatchController *livematch.Controller
	MatchmakingService  *matchmaking.Service
	BalanceService      *balance.Service
	QualityService      *quality.Service
	// HistoryWindow is the number of recent sessions the freshness index
	// considers; 0 uses the default window
	HistoryWindow int
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	playerHandler := handler.NewPlayerHandler(cfg.RosterController)
	sessionHandler := handler.NewSessionHandler(cfg.SessionController, cfg.RosterController)
	matchHandler := handler.NewMatchHandler(cfg.LiveMatchController)
	matchmakingHandler := handler.NewMatchmakingHandler(
		cfg.RosterController,
		cfg.SessionController,
		cfg.MatchmakingService,
		cfg.BalanceService,
		cfg.QualityService,
		cfg.HistoryWindow,
	)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes (no auth required)
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	// Player routes (all require auth)
	players := api.PathPrefix("/players").Subrouter()
	players.Use(authMiddleware)
	players.HandleFunc("", playerHandler.Create).Methods(http.MethodPost)
	players.HandleFunc("", playerHandler.List).Methods(http.MethodGet)
	players.HandleFunc("/{id}", playerHandler.Get).Methods(http.MethodGet)
	players.HandleFunc("/{id}", playerHandler.Delete).Methods(http.MethodDelete)
	players.HandleFunc("/{id}/availability", playerHandler.SetAvailability).Methods(http.MethodPut)

	// Matchmaking routes (all require auth)
	mm := api.PathPrefix("/matchmaking").Subrouter()
	mm.Use(authMiddleware)
	mm.HandleFunc("/generate", matchmakingHandler.Generate).Methods(http.MethodPost)
	mm.HandleFunc("/validate", matchmakingHandler.Validate).Methods(http.MethodPost)
	mm.HandleFunc("/quality", matchmakingHandler.Quality).Methods(http.MethodPost)

	// Session routes (all require auth)
	sessions := api.PathPrefix("/sessions").Subrouter()
	sessions.Use(authMiddleware)
	sessions.HandleFunc("", sessionHandler.Create).Methods(http.MethodPost)
	sessions.HandleFunc("", sessionHandler.List).Methods(http.MethodGet)
	sessions.HandleFunc("/{id}", sessionHandler.Get).Methods(http.MethodGet)
	sessions.HandleFunc("/{id}/matches", sessionHandler.GetMatches).Methods(http.MethodGet)
	sessions.HandleFunc("/{id}/activate", sessionHandler.Activate).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/complete", sessionHandler.Complete).Methods(http.MethodPost)

	// Match routes (all require auth)
	matches := api.PathPrefix("/matches").Subrouter()
	matches.Use(authMiddleware)
	matches.HandleFunc("/{id}", matchHandler.Get).Methods(http.MethodGet)
	matches.HandleFunc("/{id}/start", matchHandler.Start).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/games", matchHandler.RecordGame).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/undo", matchHandler.UndoGame).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
