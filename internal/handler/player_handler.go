package handler

import (
	"encoding/json"
	"net/http"

	service "github.com/honeynil/sportteams-service/internal/services"
	pkgerrors "github.com/honeynil/sportteams-service/pkg/errors"
)

func (h *Handler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.players.GetAllPlayers(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, players)
}

func (h *Handler) GetPlayerByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	player, err := h.players.GetPlayerByID(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if player == nil {
		h.writeError(w, http.StatusNotFound, pkgerrors.ErrPlayerNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, player)
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var input service.PlayerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	player, err := h.players.CreatePlayer(r.Context(), input)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, player)
}
