package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/azzbr/padelx/internal/api/request"
	"github.com/azzbr/padelx/internal/api/response"
	"github.com/azzbr/padelx/internal/model"
	"github.com/azzbr/padelx/internal/services/livematch"
)

// MatchHandler handles live match scoring endpoints
type MatchHandler struct {
	matches *livematch.Controller
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matches *livematch.Controller) *MatchHandler {
	return &MatchHandler{
		matches: matches,
	}
}

// Get handles GET /api/v1/matches/{id}
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.MatchID(mux.Vars(r)["id"])

	match, err := h.matches.GetMatch(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchFromModel(match))
}

// Start handles POST /api/v1/matches/{id}/start
func (h *MatchHandler) Start(w http.ResponseWriter, r *http.Request) {
	id := model.MatchID(mux.Vars(r)["id"])

	match, err := h.matches.Start(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchFromModel(match))
}

// RecordGame handles POST /api/v1/matches/{id}/games
func (h *MatchHandler) RecordGame(w http.ResponseWriter, r *http.Request) {
	id := model.MatchID(mux.Vars(r)["id"])

	var req request.RecordGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	var side model.TeamSide
	switch req.Side {
	case "A":
		side = model.SideA
	case "B":
		side = model.SideB
	default:
		WriteError(w, NewInvalidRequestError("side must be A or B"))
		return
	}

	match, err := h.matches.RecordGame(r.Context(), id, side)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchFromModel(match))
}

// UndoGame handles POST /api/v1/matches/{id}/undo
func (h *MatchHandler) UndoGame(w http.ResponseWriter, r *http.Request) {
	id := model.MatchID(mux.Vars(r)["id"])

	match, err := h.matches.UndoLastGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchFromModel(match))
}
