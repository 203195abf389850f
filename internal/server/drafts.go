package server

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
)

// draftStore is the best-effort local cache for in-progress forms:
// in-memory, keyed by a client-chosen key, gone on restart. Drafts are
// mutable and carry no registration ID until submission.
type draftStore struct {
	mu sync.RWMutex
	m  map[string]json.RawMessage
}

func newDraftStore() *draftStore {
	return &draftStore{m: map[string]json.RawMessage{}}
}

func (d *draftStore) get(key string) (json.RawMessage, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	v, ok := d.m[key]
	return v, ok
}

func (d *draftStore) put(key string, v json.RawMessage) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.m[key] = v
}

func (d *draftStore) delete(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.m, key)
}

func (a *API) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	v, ok := a.drafts.get(key)
	if !ok {
		writeError(w, http.StatusNotFound, "draft not found")
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write(v)
}

func (a *API) handlePutDraft(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	body, err := io.ReadAll(r.Body)
	if err != nil || !json.Valid(body) {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	a.drafts.put(key, body)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (a *API) handleDeleteDraft(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	a.drafts.delete(key)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
