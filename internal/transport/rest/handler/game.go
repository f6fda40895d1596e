package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/prakashgyan/mafiamanagerirl/internal/game"
	"github.com/prakashgyan/mafiamanagerirl/internal/model"
	"github.com/prakashgyan/mafiamanagerirl/internal/service"
	"github.com/prakashgyan/mafiamanagerirl/internal/transport/rest/middleware"
)

// GameHandler handles game lifecycle endpoints
type GameHandler struct {
	gameSvc *service.GameService
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameSvc *service.GameService) *GameHandler {
	return &GameHandler{gameSvc: gameSvc}
}

// CreateGameRequest is the request body for creating a game
type CreateGameRequest struct {
	Players     []service.NewPlayer `json:"players"`
	PlayerNames []string            `json:"playerNames,omitempty"`
}

// Create handles POST /v1/games
// @Summary Create a game night with its initial player list
// @Tags games
// @Success 201 {object} model.Snapshot
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	hostID := middleware.GetUserID(r.Context())

	var req CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	seats := req.Players
	if len(seats) == 0 {
		for _, name := range req.PlayerNames {
			seats = append(seats, service.NewPlayer{Name: name})
		}
	}

	snap, err := h.gameSvc.CreateGame(r.Context(), hostID, seats)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, snap)
}

// List handles GET /v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	hostID := middleware.GetUserID(r.Context())
	status := model.GameStatus(r.URL.Query().Get("status"))

	games, err := h.gameSvc.ListGames(r.Context(), hostID, status)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if games == nil {
		games = []*model.Game{}
	}

	writeJSON(w, http.StatusOK, games)
}

// Get handles GET /v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	snap, err := h.gameSvc.GetGame(r.Context(), mux.Vars(r)["id"], middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

// AssignRolesRequest is the request body for role assignment
type AssignRolesRequest struct {
	RoleCounts  model.RoleCounts      `json:"roleCounts"`
	Assignments []game.RoleAssignment `json:"assignments"`
}

// AssignRoles handles POST /v1/games/{id}/roles
// @Summary Validate and persist a complete player-to-role mapping
// @Tags games
// @Success 200 {object} model.Snapshot
func (h *GameHandler) AssignRoles(w http.ResponseWriter, r *http.Request) {
	var req AssignRolesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snap, err := h.gameSvc.AssignRoles(r.Context(), mux.Vars(r)["id"], middleware.GetUserID(r.Context()), req.RoleCounts, req.Assignments)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

// Start handles POST /v1/games/{id}/start
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	snap, err := h.gameSvc.Start(r.Context(), mux.Vars(r)["id"], middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

// QueueActionRequest is the request body for queueing a phase action
type QueueActionRequest struct {
	Kind     model.ActionKind `json:"kind"`
	TargetID string           `json:"targetPlayerId"`
}

// QueueAction handles POST /v1/games/{id}/actions
// @Summary Queue a night action or the day vote for the current phase
// @Tags games
// @Success 200 {object} model.Snapshot
func (h *GameHandler) QueueAction(w http.ResponseWriter, r *http.Request) {
	var req QueueActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snap, err := h.gameSvc.QueueAction(r.Context(), mux.Vars(r)["id"], middleware.GetUserID(r.Context()), req.Kind, req.TargetID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

// EndPhaseRequest is the request body for ending the current phase
type EndPhaseRequest struct {
	Phase model.GamePhase `json:"phase"`
}

// EndPhase handles POST /v1/games/{id}/phase
// @Summary Resolve the current phase and flip to the target phase
// @Tags games
// @Success 200 {object} model.Snapshot
func (h *GameHandler) EndPhase(w http.ResponseWriter, r *http.Request) {
	var req EndPhaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snap, err := h.gameSvc.EndPhase(r.Context(), mux.Vars(r)["id"], middleware.GetUserID(r.Context()), req.Phase)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

// FinishRequest is the request body for finishing a game
type FinishRequest struct {
	WinningTeam string `json:"winningTeam"`
}

// Finish handles POST /v1/games/{id}/finish
func (h *GameHandler) Finish(w http.ResponseWriter, r *http.Request) {
	var req FinishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.WinningTeam == "" {
		writeError(w, http.StatusBadRequest, "winningTeam is required")
		return
	}

	snap, err := h.gameSvc.Finish(r.Context(), mux.Vars(r)["id"], middleware.GetUserID(r.Context()), req.WinningTeam)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}
