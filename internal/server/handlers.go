package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"mssd-portal/internal/derive"
	"mssd-portal/internal/format"
	"mssd-portal/internal/models"
	"mssd-portal/internal/stats"
	"mssd-portal/internal/util"
	"mssd-portal/internal/validate"
)

// User-facing messages, verbatim from the portal UI.
const (
	msgMissingCategory = "Sila pastikan semua pelajar mempunyai kategori."
	msgSearchFailed    = "Pendaftaran tidak dijumpai atau kata laluan salah."
	msgCloudFailed     = "Ralat Cloud. Sila periksa sambungan internet."
)

func (a *API) handleLoadAll(w http.ResponseWriter, r *http.Request) {
	regs, err := a.store.LoadAll()
	if err != nil {
		log.Printf("load all: %v", err)
		writeError(w, http.StatusBadGateway, msgCloudFailed)
		return
	}
	cfg, err := a.store.LoadConfig()
	if err != nil {
		log.Printf("load config: %v", err)
		writeError(w, http.StatusBadGateway, msgCloudFailed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"registrations": regs,
		"config":        cfg,
	})
}

// prepare runs the derivation stages that precede validation: school
// name normalization, then the category inference rules.
func prepare(reg models.Registration) models.Registration {
	reg.SchoolName = format.SchoolName(reg.SchoolName)
	reg.Students = derive.ApplyCategoryRules(reg.SchoolType, reg.Students)
	return reg
}

func uppercaseNames(reg models.Registration) models.Registration {
	for i := range reg.Teachers {
		reg.Teachers[i].Name = strings.ToUpper(reg.Teachers[i].Name)
	}
	for i := range reg.Students {
		reg.Students[i].Name = strings.ToUpper(reg.Students[i].Name)
	}
	return reg
}

func (a *API) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var reg models.Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	reg = prepare(reg)

	res := validate.Submission(reg)
	if !res.OK {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": res})
		return
	}
	if len(reg.Students) == 0 || validate.MissingCategory(reg.Students) {
		writeError(w, http.StatusUnprocessableEntity, msgMissingCategory)
		return
	}

	// Sequence numbers come from the freshest snapshot we can get; a
	// stale snapshot under concurrent submissions is accepted risk.
	snapshot, err := a.store.LoadAll()
	if err != nil {
		log.Printf("submit snapshot: %v", err)
		writeError(w, http.StatusBadGateway, msgCloudFailed)
		return
	}
	regID := derive.GenerateRegistrationID(reg.Students[0].Category, snapshot)
	reg.Students = derive.ApplyPlayerIDs(reg.SchoolName, regID, reg.Students)

	reg = uppercaseNames(reg)
	now := util.NowISO()
	reg.CreatedAt = now
	reg.UpdatedAt = now
	reg.Status = models.StatusActive

	if err := a.store.SubmitOrUpdate(regID, reg, false); err != nil {
		log.Printf("submit %s: %v", regID, err)
		writeError(w, http.StatusBadGateway, msgCloudFailed)
		return
	}

	a.notifyAsync(regID, reg, false)

	writeJSON(w, http.StatusCreated, map[string]any{
		"registrationId": regID,
		"registration":   reg,
	})
}

type updateRequest struct {
	Password     string              `json:"password"`
	Registration models.Registration `json:"registration"`
}

func (a *API) handleUpdate(w http.ResponseWriter, r *http.Request) {
	regID := chi.URLParam(r, "regID")

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	existing, found, err := a.store.Search(regID, req.Password)
	if err != nil {
		log.Printf("update search %s: %v", regID, err)
		writeError(w, http.StatusBadGateway, msgCloudFailed)
		return
	}
	if !found {
		// Deliberately identical for unknown ID and wrong password.
		writeError(w, http.StatusNotFound, msgSearchFailed)
		return
	}

	reg := prepare(req.Registration)

	res := validate.Submission(reg)
	if !res.OK {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": res})
		return
	}
	if len(reg.Students) == 0 || validate.MissingCategory(reg.Students) {
		writeError(w, http.StatusUnprocessableEntity, msgMissingCategory)
		return
	}

	// The registration ID is immutable; player IDs regenerate against it.
	reg.Students = derive.ApplyPlayerIDs(reg.SchoolName, regID, reg.Students)

	reg = uppercaseNames(reg)
	reg.CreatedAt = existing.CreatedAt
	if reg.CreatedAt == "" {
		reg.CreatedAt = util.NowISO()
	}
	reg.UpdatedAt = util.NowISO()
	reg.Status = models.StatusActive

	if err := a.store.SubmitOrUpdate(regID, reg, true); err != nil {
		log.Printf("update %s: %v", regID, err)
		writeError(w, http.StatusBadGateway, msgCloudFailed)
		return
	}

	a.notifyAsync(regID, reg, true)

	writeJSON(w, http.StatusOK, map[string]any{
		"registrationId": regID,
		"registration":   reg,
	})
}

type searchRequest struct {
	RegID    string `json:"regId"`
	Password string `json:"password"`
}

func (a *API) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	reg, found, err := a.store.Search(req.RegID, req.Password)
	if err != nil {
		log.Printf("search %s: %v", req.RegID, err)
		writeError(w, http.StatusBadGateway, msgCloudFailed)
		return
	}
	if !found {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"found": false,
			"error": msgSearchFailed,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"found":        true,
		"registration": reg,
	})
}

// handlePreview runs the derivation pipeline on a draft without
// persisting anything: the caller sees the categories, the player IDs
// and the registration ID it would get, plus the validation result.
func (a *API) handlePreview(w http.ResponseWriter, r *http.Request) {
	var reg models.Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	reg = prepare(reg)

	regID := ""
	if len(reg.Students) > 0 && reg.Students[0].Category != "" {
		snapshot, err := a.store.LoadAll()
		if err != nil {
			log.Printf("preview snapshot: %v", err)
			writeError(w, http.StatusBadGateway, msgCloudFailed)
			return
		}
		regID = derive.GenerateRegistrationID(reg.Students[0].Category, snapshot)
		reg.Students = derive.ApplyPlayerIDs(reg.SchoolName, regID, reg.Students)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"registrationId":  regID,
		"registration":    reg,
		"validation":      validate.Submission(reg),
		"missingCategory": validate.MissingCategory(reg.Students),
	})
}

func (a *API) handleStats(w http.ResponseWriter, r *http.Request) {
	regs, err := a.store.LoadAll()
	if err != nil {
		log.Printf("stats: %v", err)
		writeError(w, http.StatusBadGateway, msgCloudFailed)
		return
	}
	writeJSON(w, http.StatusOK, stats.Collect(regs))
}

func (a *API) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := a.store.LoadConfig()
	if err != nil {
		log.Printf("get config: %v", err)
		writeError(w, http.StatusBadGateway, msgCloudFailed)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (a *API) handlePutConfig(w http.ResponseWriter, r *http.Request) {
	var cfg models.EventConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := a.store.SaveConfig(cfg); err != nil {
		log.Printf("save config: %v", err)
		writeError(w, http.StatusBadGateway, msgCloudFailed)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (a *API) notifyAsync(regID string, reg models.Registration, isUpdate bool) {
	go func() {
		if err := a.notifier.RegistrationSynced(context.Background(), regID, reg, isUpdate); err != nil {
			log.Printf("notify %s: %v", regID, err)
		}
	}()
}
