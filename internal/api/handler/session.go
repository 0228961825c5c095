package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/azzbr/padelx/internal/api/request"
	"github.com/azzbr/padelx/internal/api/response"
	"github.com/azzbr/padelx/internal/model"
	"github.com/azzbr/padelx/internal/services/roster"
	"github.com/azzbr/padelx/internal/services/session"
)

// SessionHandler handles session lifecycle endpoints
type SessionHandler struct {
	sessions *session.Controller
	roster   *roster.Controller
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *session.Controller, roster *roster.Controller) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		roster:   roster,
	}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Date == "" {
		WriteError(w, NewInvalidRequestError("date is required"))
		return
	}

	previews, err := PreviewsFromRequest(r, h.roster, req.Previews)
	if err != nil {
		WriteError(w, err)
		return
	}

	sess, matches, err := h.sessions.CreateFromPreview(r.Context(), req.Date, previews)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.SessionWithMatches{
		Session: response.SessionFromModel(sess),
		Matches: make([]response.Match, len(matches)),
	}
	for i, m := range matches {
		resp.Matches[i] = response.MatchFromModel(m)
	}
	response.JSON(w, http.StatusCreated, resp)
}

// List handles GET /api/v1/sessions
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessions.ListSessions(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := make([]response.Session, len(sessions))
	for i, s := range sessions {
		resp[i] = response.SessionFromModel(s)
	}
	response.JSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	sess, err := h.sessions.GetSession(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(sess))
}

// GetMatches handles GET /api/v1/sessions/{id}/matches
func (h *SessionHandler) GetMatches(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	matches, err := h.sessions.GetMatchesForSession(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := make([]response.Match, len(matches))
	for i, m := range matches {
		resp[i] = response.MatchFromModel(m)
	}
	response.JSON(w, http.StatusOK, resp)
}

// Activate handles POST /api/v1/sessions/{id}/activate
func (h *SessionHandler) Activate(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	sess, err := h.sessions.Activate(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(sess))
}

// Complete handles POST /api/v1/sessions/{id}/complete
func (h *SessionHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	sess, err := h.sessions.Complete(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(sess))
}
