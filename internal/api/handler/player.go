package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/azzbr/padelx/internal/api/request"
	"github.com/azzbr/padelx/internal/api/response"
	"github.com/azzbr/padelx/internal/model"
	"github.com/azzbr/padelx/internal/services/roster"
)

// PlayerHandler handles roster endpoints
type PlayerHandler struct {
	roster *roster.Controller
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(roster *roster.Controller) *PlayerHandler {
	return &PlayerHandler{
		roster: roster,
	}
}

// Create handles POST /api/v1/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.roster.Register(r.Context(), req.DisplayName, req.Skill, req.IsGuest)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// List handles GET /api/v1/players
// An optional ?date=YYYY-MM-DD query filters to players available that day
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		players []*model.Player
		err     error
	)
	if date := r.URL.Query().Get("date"); date != "" {
		players, err = h.roster.AvailableOn(r.Context(), date)
	} else {
		players, err = h.roster.ListPlayers(r.Context())
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := make([]response.Player, len(players))
	for i, p := range players {
		resp[i] = response.PlayerFromModel(p)
	}
	response.JSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	player, err := h.roster.GetPlayer(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// SetAvailability handles PUT /api/v1/players/{id}/availability
func (h *PlayerHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	var req request.SetAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.roster.SetAvailability(r.Context(), id, req.Dates)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Delete handles DELETE /api/v1/players/{id}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	if err := h.roster.RemovePlayer(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
