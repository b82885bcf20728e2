package handler

import (
	"encoding/json"
	"net/http"
	"time"

	pkgerrors "github.com/honeynil/sportteams-service/pkg/errors"
)

func (h *Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := h.matches.GetAllMatches(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, matches)
}

func (h *Handler) GetMatchByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	match, err := h.matches.GetMatchByID(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if match == nil {
		h.writeError(w, http.StatusNotFound, pkgerrors.ErrMatchNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, match)
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TeamIDs  []int32   `json:"teamIds"`
		DateTime time.Time `json:"dateTime"`
		Location string    `json:"location"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	match, err := h.matches.CreateMatch(r.Context(), req.TeamIDs, req.DateTime, req.Location)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, match)
}
