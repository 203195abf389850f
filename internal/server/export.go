package server

import (
	"bytes"
	"encoding/csv"
	"log"
	"net/http"
	"sort"

	"mssd-portal/internal/models"
	"mssd-portal/internal/util"
)

// CSV export for organizers. The link carries an HMAC token instead of
// a session: token = HMAC-SHA256(secret, "export:registrations").
func (a *API) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "token required", http.StatusBadRequest)
		return
	}
	expected := util.HMACSHA256Hex(a.cfg.ExportSecret, "export:registrations")
	if token != expected {
		http.Error(w, "invalid token", http.StatusForbidden)
		return
	}

	regs, err := a.store.LoadAll()
	if err != nil {
		log.Printf("export: %v", err)
		http.Error(w, msgCloudFailed, http.StatusBadGateway)
		return
	}

	data, err := buildRegistrationsCSV(regs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="registrations.csv"`)
	_, _ = w.Write(data)
}

func buildRegistrationsCSV(regs models.RegistrationsMap) ([]byte, error) {
	ids := make([]string, 0, len(regs))
	for id := range regs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	_ = cw.Write([]string{
		"reg_id", "school_name", "school_code", "school_type",
		"player_id", "name", "ic", "gender", "race", "category",
	})
	for _, id := range ids {
		reg := regs[id]
		for _, s := range reg.Students {
			_ = cw.Write([]string{
				id, reg.SchoolName, reg.SchoolCode, reg.SchoolType,
				s.PlayerID, s.Name, s.IC, s.Gender, s.Race, s.Category,
			})
		}
	}
	cw.Flush()
	return buf.Bytes(), cw.Error()
}
