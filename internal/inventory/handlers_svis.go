package inventory

import (
	"encoding/json"
	"fmt"
	"net/http"

	"weft/internal/models"

	"github.com/gorilla/mux"
)

type SviHTTP struct{ repo *Repo }

func NewSviHTTP(r *Repo) *SviHTTP { return &SviHTTP{repo: r} }

func (h *SviHTTP) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/svis", h.create).Methods(http.MethodPost)
	r.HandleFunc("/svis", h.list).Methods(http.MethodGet)
	r.HandleFunc("/svis/{id:[0-9]+}", h.get).Methods(http.MethodGet)
	r.HandleFunc("/svis/{id:[0-9]+}", h.update).Methods(http.MethodPut)
	r.HandleFunc("/svis/{id:[0-9]+}", h.delete).Methods(http.MethodDelete)
}

func (h *SviHTTP) create(w http.ResponseWriter, r *http.Request) {
	var in models.Svi
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, validationErr("invalid json: %v", err))
		return
	}
	if err := h.repo.CreateSvi(&in); err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/svis/%d", in.SviID))
	writeJSON(w, http.StatusCreated, &in)
}

func (h *SviHTTP) get(w http.ResponseWriter, r *http.Request) {
	s, err := h.repo.GetSvi(pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *SviHTTP) update(w http.ResponseWriter, r *http.Request) {
	var in models.Svi
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, validationErr("invalid json: %v", err))
		return
	}
	s, err := h.repo.UpdateSvi(pathID(r), &in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *SviHTTP) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.DeleteSvi(pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SviHTTP) list(w http.ResponseWriter, _ *http.Request) {
	ss, err := h.repo.ListSvis()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ss)
}
