package handler

import (
	"encoding/json"
	"net/http"

	service "github.com/honeynil/sportteams-service/internal/services"
	pkgerrors "github.com/honeynil/sportteams-service/pkg/errors"
)

func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teams.GetAllTeams(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, teams)
}

func (h *Handler) GetTeamByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	team, err := h.teams.GetTeamByID(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if team == nil {
		h.writeError(w, http.StatusNotFound, pkgerrors.ErrTeamNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, team)
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var input service.TeamInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	team, err := h.teams.CreateTeam(r.Context(), input)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, team)
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		TeamName string `json:"teamName"`
		Location string `json:"location"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	team, err := h.teams.UpdateTeam(r.Context(), id, req.TeamName, req.Location)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, team)
}

func (h *Handler) JoinTeam(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		PlayerID int32 `json:"playerId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	team, err := h.teams.JoinTeam(r.Context(), id, req.PlayerID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, team)
}

func (h *Handler) LeaveTeam(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		PlayerID int32 `json:"playerId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	team, err := h.teams.LeaveTeam(r.Context(), id, req.PlayerID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, team)
}
