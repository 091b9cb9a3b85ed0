package inventory

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"weft/internal/logs"
	"weft/internal/models"

	"github.com/gorilla/mux"
)

type TenantHTTP struct{ repo *Repo }

func NewTenantHTTP(r *Repo) *TenantHTTP { return &TenantHTTP{repo: r} }

func (h *TenantHTTP) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/tenants", h.create).Methods(http.MethodPost)
	r.HandleFunc("/tenants", h.list).Methods(http.MethodGet)
	r.HandleFunc("/tenants/{id:[0-9]+}", h.get).Methods(http.MethodGet)
	r.HandleFunc("/tenants/{id:[0-9]+}", h.update).Methods(http.MethodPut)
	r.HandleFunc("/tenants/{id:[0-9]+}", h.delete).Methods(http.MethodDelete)
}

func (h *TenantHTTP) create(w http.ResponseWriter, r *http.Request) {
	var in models.Tenant
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, validationErr("invalid json: %v", err))
		return
	}
	if err := h.repo.CreateTenant(&in); err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/tenants/%d", in.TenantID))
	writeJSON(w, http.StatusCreated, &in)
}

func (h *TenantHTTP) get(w http.ResponseWriter, r *http.Request) {
	t, err := h.repo.GetTenant(pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *TenantHTTP) update(w http.ResponseWriter, r *http.Request) {
	var in models.Tenant
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, validationErr("invalid json: %v", err))
		return
	}
	t, err := h.repo.UpdateTenant(pathID(r), &in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *TenantHTTP) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.DeleteTenant(pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TenantHTTP) list(w http.ResponseWriter, _ *http.Request) {
	ts, err := h.repo.ListTenants()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ts)
}

// ── shared helpers ──────────────────────────────────────────

func pathID(r *http.Request) uint {
	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	return uint(id)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the taxonomy onto status codes. Store detail stays in
// the log; clients only ever see an opaque message for 500s.
func writeError(w http.ResponseWriter, err error) {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		apiErr = dbErr(err)
	}
	status := http.StatusInternalServerError
	msg := apiErr.Msg
	switch apiErr.Kind {
	case KindValidation:
		status = http.StatusBadRequest
	case KindNotFound:
		status = http.StatusNotFound
	case KindConflict:
		status = http.StatusConflict
	case KindDB:
		logs.Logger.WithError(apiErr.Err).Error("store failure")
		msg = "internal server error"
	}
	writeJSON(w, status, map[string]string{"error": msg})
}
