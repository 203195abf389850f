package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"mssd-portal/internal/config"
	"mssd-portal/internal/models"
	"mssd-portal/internal/notify"
)

// Store is the persistence collaborator. The portal treats it as a
// black box returning snapshots or errors; uniqueness enforcement under
// concurrent submissions is its problem, not ours.
type Store interface {
	LoadAll() (models.RegistrationsMap, error)
	SubmitOrUpdate(regID string, reg models.Registration, isUpdate bool) error
	Search(regID, last4 string) (models.Registration, bool, error)
	LoadConfig() (models.EventConfig, error)
	SaveConfig(cfg models.EventConfig) error
}

type API struct {
	cfg      config.Config
	store    Store
	notifier notify.Notifier
	drafts   *draftStore
}

func NewAPI(cfg config.Config, store Store, notifier notify.Notifier) *API {
	return &API{
		cfg:      cfg,
		store:    store,
		notifier: notifier,
		drafts:   newDraftStore(),
	}
}

func New(cfg config.Config, store Store, notifier notify.Notifier) *http.Server {
	api := NewAPI(cfg, store, notifier)
	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: api.Router(),
	}
}

func (a *API) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   a.cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", a.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/registrations", a.handleLoadAll)
		r.Post("/registrations", a.handleSubmit)
		r.Put("/registrations/{regID}", a.handleUpdate)
		r.Post("/registrations/search", a.handleSearch)

		r.Post("/preview", a.handlePreview)
		r.Get("/stats", a.handleStats)

		r.Get("/config", a.handleGetConfig)
		r.Put("/config", a.handlePutConfig)

		r.Get("/drafts/{key}", a.handleGetDraft)
		r.Put("/drafts/{key}", a.handlePutDraft)
		r.Delete("/drafts/{key}", a.handleDeleteDraft)
	})

	r.Get("/export/registrations.csv", a.handleExportCSV)

	return r
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
