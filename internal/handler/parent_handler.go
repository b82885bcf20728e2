package handler

import (
	"encoding/json"
	"net/http"

	service "github.com/honeynil/sportteams-service/internal/services"
	pkgerrors "github.com/honeynil/sportteams-service/pkg/errors"
)

func (h *Handler) GetParents(w http.ResponseWriter, r *http.Request) {
	parents, err := h.parents.GetAllParents(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, parents)
}

func (h *Handler) GetParentByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	parent, err := h.parents.GetParentByID(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if parent == nil {
		h.writeError(w, http.StatusNotFound, pkgerrors.ErrParentNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, parent)
}

func (h *Handler) CreateParent(w http.ResponseWriter, r *http.Request) {
	var input service.ParentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	parent, err := h.parents.CreateParent(r.Context(), input)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, parent)
}
