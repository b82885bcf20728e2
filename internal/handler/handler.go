package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	service "github.com/honeynil/sportteams-service/internal/services"
	pkgerrors "github.com/honeynil/sportteams-service/pkg/errors"
)

type Handler struct {
	users   service.UserService
	coaches service.CoachService
	players service.PlayerService
	parents service.ParentService
	teams   service.TeamService
	matches service.MatchService
}

func NewHandler(
	users service.UserService,
	coaches service.CoachService,
	players service.PlayerService,
	parents service.ParentService,
	teams service.TeamService,
	matches service.MatchService,
) *Handler {
	return &Handler{
		users:   users,
		coaches: coaches,
		players: players,
		parents: parents,
		teams:   teams,
		matches: matches,
	}
}

func (h *Handler) RegisterPublicRoutes(r *mux.Router) {
	r.HandleFunc("/status", h.Status).Methods("GET")
	r.HandleFunc("/users/signup", h.Signup).Methods("POST")
	r.HandleFunc("/users/login", h.Login).Methods("POST")
}

func (h *Handler) RegisterProtectedRoutes(r *mux.Router) {
	r.HandleFunc("/users", h.GetUsers).Methods("GET")
	r.HandleFunc("/users/{id:[0-9]+}", h.GetUserByID).Methods("GET")

	r.HandleFunc("/teams", h.GetTeams).Methods("GET")
	r.HandleFunc("/teams", h.CreateTeam).Methods("POST")
	r.HandleFunc("/teams/{id:[0-9]+}", h.GetTeamByID).Methods("GET")
	r.HandleFunc("/teams/{id:[0-9]+}", h.UpdateTeam).Methods("PUT")
	r.HandleFunc("/teams/{id:[0-9]+}/player", h.JoinTeam).Methods("POST")
	r.HandleFunc("/teams/{id:[0-9]+}/player", h.LeaveTeam).Methods("DELETE")

	r.HandleFunc("/players", h.GetPlayers).Methods("GET")
	r.HandleFunc("/players", h.CreatePlayer).Methods("POST")
	r.HandleFunc("/players/{id:[0-9]+}", h.GetPlayerByID).Methods("GET")

	r.HandleFunc("/coaches", h.GetCoaches).Methods("GET")
	r.HandleFunc("/coaches", h.CreateCoach).Methods("POST")
	r.HandleFunc("/coaches/{id:[0-9]+}", h.GetCoachByID).Methods("GET")

	r.HandleFunc("/parents", h.GetParents).Methods("GET")
	r.HandleFunc("/parents", h.CreateParent).Methods("POST")
	r.HandleFunc("/parents/{id:[0-9]+}", h.GetParentByID).Methods("GET")

	r.HandleFunc("/matches", h.GetMatches).Methods("GET")
	r.HandleFunc("/matches", h.CreateMatch).Methods("POST")
	r.HandleFunc("/matches/{id:[0-9]+}", h.GetMatchByID).Methods("GET")
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Back-end is running..."})
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	h.writeJSON(w, status, errorResponse{Status: "application error", Message: err.Error()})
}

// writeServiceError maps service failures onto status codes: storage
// failures are 500, auth conflicts get their own codes, and everything
// else (validation, association not-found) lands on the generic 400.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, pkgerrors.ErrStorage):
		h.writeError(w, http.StatusInternalServerError, err)
	case errors.Is(err, pkgerrors.ErrUsernameExists):
		h.writeError(w, http.StatusConflict, err)
	case errors.Is(err, pkgerrors.ErrInvalidCredentials):
		h.writeError(w, http.StatusUnauthorized, err)
	default:
		h.writeError(w, http.StatusBadRequest, err)
	}
}

func pathID(r *http.Request) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, errors.New("invalid id")
	}
	return int32(id), nil
}
