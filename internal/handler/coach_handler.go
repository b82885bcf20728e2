package handler

import (
	"encoding/json"
	"net/http"

	service "github.com/honeynil/sportteams-service/internal/services"
	pkgerrors "github.com/honeynil/sportteams-service/pkg/errors"
)

func (h *Handler) GetCoaches(w http.ResponseWriter, r *http.Request) {
	coaches, err := h.coaches.GetAllCoaches(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, coaches)
}

func (h *Handler) GetCoachByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	coach, err := h.coaches.GetCoachByID(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if coach == nil {
		h.writeError(w, http.StatusNotFound, pkgerrors.ErrCoachNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, coach)
}

func (h *Handler) CreateCoach(w http.ResponseWriter, r *http.Request) {
	var input service.CoachInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	coach, err := h.coaches.CreateCoach(r.Context(), input)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, coach)
}
