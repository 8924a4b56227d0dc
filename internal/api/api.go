package api

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jlyeo/sbiltbot/internal/config"
	"github.com/jlyeo/sbiltbot/internal/db"
	"github.com/jlyeo/sbiltbot/internal/split"
	"github.com/rs/cors"
)

type API struct {
	router    *mux.Router
	svc       *split.Service
	db        *db.DB
	config    *config.Config
	jwtSecret []byte
}

// New builds the operator API. database may be nil, in which case the
// settlement-history endpoint serves empty results.
func New(cfg *config.Config, svc *split.Service, database *db.DB) *API {
	api := &API{
		router:    mux.NewRouter(),
		svc:       svc,
		db:        database,
		config:    cfg,
		jwtSecret: []byte(cfg.JWTSecret),
	}

	api.setupRoutes()
	return api
}

func (a *API) setupRoutes() {
	// Public endpoints
	a.router.HandleFunc("/api/health", a.handleHealth).Methods("GET")

	// Protected endpoints
	protected := a.router.PathPrefix("/api").Subrouter()
	protected.Use(a.authMiddleware)

	protected.HandleFunc("/sessions", a.handleListSessions).Methods("GET")
	protected.HandleFunc("/channels/{channel_id}/settlements", a.handleListSettlements).Methods("GET")
}

func (a *API) Start() error {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}

	handler := cors.New(corsOptions).Handler(a.router)

	log.Printf("API server listening on http://%s", a.config.WebBind)
	return http.ListenAndServe(a.config.WebBind, handler)
}
