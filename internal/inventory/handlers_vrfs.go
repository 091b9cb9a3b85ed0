package inventory

import (
	"encoding/json"
	"fmt"
	"net/http"

	"weft/internal/models"

	"github.com/gorilla/mux"
)

type VrfHTTP struct{ repo *Repo }

func NewVrfHTTP(r *Repo) *VrfHTTP { return &VrfHTTP{repo: r} }

func (h *VrfHTTP) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/vrfs", h.create).Methods(http.MethodPost)
	r.HandleFunc("/vrfs", h.list).Methods(http.MethodGet)
	r.HandleFunc("/vrfs/{id:[0-9]+}", h.get).Methods(http.MethodGet)
	r.HandleFunc("/vrfs/{id:[0-9]+}", h.update).Methods(http.MethodPut)
	r.HandleFunc("/vrfs/{id:[0-9]+}", h.delete).Methods(http.MethodDelete)
}

func (h *VrfHTTP) create(w http.ResponseWriter, r *http.Request) {
	var in models.Vrf
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, validationErr("invalid json: %v", err))
		return
	}
	if err := h.repo.CreateVrf(&in); err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/vrfs/%d", in.VrfID))
	writeJSON(w, http.StatusCreated, &in)
}

func (h *VrfHTTP) get(w http.ResponseWriter, r *http.Request) {
	v, err := h.repo.GetVrf(pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *VrfHTTP) update(w http.ResponseWriter, r *http.Request) {
	var in models.Vrf
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, validationErr("invalid json: %v", err))
		return
	}
	v, err := h.repo.UpdateVrf(pathID(r), &in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *VrfHTTP) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.DeleteVrf(pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *VrfHTTP) list(w http.ResponseWriter, _ *http.Request) {
	vs, err := h.repo.ListVrfs()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vs)
}
