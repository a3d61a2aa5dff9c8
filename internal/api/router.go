package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/reversigame/internal/api/apierr"
	"github.com/mcoot/reversigame/internal/api/handler"
	apimw "github.com/mcoot/reversigame/internal/api/middleware"
	"github.com/mcoot/reversigame/internal/middleware"
	"github.com/mcoot/reversigame/internal/services/game"
	"github.com/mcoot/reversigame/internal/services/moderation"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	GameController    *game.Controller
	ModerationService *moderation.Service
	// CORSOrigin is echoed in Access-Control-Allow-Origin; empty allows any
	CORSOrigin string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	moveHandler := handler.NewMoveHandler(cfg.GameController)
	playerHandler := handler.NewPlayerHandler(cfg.ModerationService)
	healthHandler := handler.NewHealthHandler(cfg.ModerationService, cfg.Logger)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Logging(cfg.Logger))
	api.Use(apimw.Recovery(cfg.Logger))

	api.HandleFunc("/health", healthHandler.Get).Methods(http.MethodGet)

	// Rules engine; stateless
	api.HandleFunc("/moves", moveHandler.Play).Methods(http.MethodPost)
	api.HandleFunc("/moves/check", moveHandler.Check).Methods(http.MethodPost)
	api.HandleFunc("/moves/legal", moveHandler.Legal).Methods(http.MethodPost)
	api.HandleFunc("/games/status", moveHandler.Status).Methods(http.MethodPost)

	// Player directory and moderation
	api.HandleFunc("/players/register", playerHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/players/report", playerHandler.Report).Methods(http.MethodPost)
	api.HandleFunc("/players/{username}", playerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/admin/ban", playerHandler.Ban).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(notFound)

	// CORS wraps the router so preflight requests never reach method matching
	return middleware.CORS(cfg.CORSOrigin)(r)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	apierr.WriteError(w, apierr.NewNotFoundError(r.URL.Path))
}
