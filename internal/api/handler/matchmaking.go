package handler

import (
	"encoding/json"
	"net/http"

	"github.com/azzbr/padelx/internal/api/request"
	"github.com/azzbr/padelx/internal/api/response"
	"github.com/azzbr/padelx/internal/model"
	"github.com/azzbr/padelx/internal/services/balance"
	"github.com/azzbr/padelx/internal/services/history"
	"github.com/azzbr/padelx/internal/services/matchmaking"
	"github.com/azzbr/padelx/internal/services/partition"
	"github.com/azzbr/padelx/internal/services/quality"
	"github.com/azzbr/padelx/internal/services/roster"
	"github.com/azzbr/padelx/internal/services/session"
)

// MatchmakingHandler handles assignment generation and validation endpoints
type MatchmakingHandler struct {
	roster        *roster.Controller
	sessions      *session.Controller
	matchmaking   *matchmaking.Service
	balance       *balance.Service
	quality       *quality.Service
	historyWindow int
}

// NewMatchmakingHandler creates a new matchmaking handler. historyWindow
// sets how many recent sessions feed the freshness index; 0 means the
// default window.
func NewMatchmakingHandler(
	roster *roster.Controller,
	sessions *session.Controller,
	matchmaking *matchmaking.Service,
	balance *balance.Service,
	quality *quality.Service,
	historyWindow int,
) *MatchmakingHandler {
	if historyWindow <= 0 {
		historyWindow = history.DefaultWindow
	}
	return &MatchmakingHandler{
		roster:        roster,
		sessions:      sessions,
		matchmaking:   matchmaking,
		balance:       balance,
		quality:       quality,
		historyWindow: historyWindow,
	}
}

// Generate handles POST /api/v1/matchmaking/generate
func (h *MatchmakingHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req request.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	strategy, err := partition.ParseStrategy(req.Strategy)
	if err != nil {
		WriteError(w, err)
		return
	}

	ids := make([]model.PlayerID, len(req.PlayerIDs))
	for i, id := range req.PlayerIDs {
		ids[i] = model.PlayerID(id)
	}
	players, err := h.roster.GetPlayers(r.Context(), ids)
	if err != nil {
		WriteError(w, err)
		return
	}

	idx, err := h.sessions.BuildHistoryIndex(r.Context(), h.historyWindow)
	if err != nil {
		WriteError(w, err)
		return
	}

	previews, err := h.matchmaking.GenerateMatchesWithDuplicatePrevention(players, strategy, idx)
	if err != nil {
		WriteError(w, err)
		return
	}

	report := h.quality.Report(previews, idx)

	response.JSON(w, http.StatusOK, response.GenerateResponse{
		Previews: h.previewsToResponse(previews),
		Quality:  response.QualityReportFromModel(report),
	})
}

// Validate handles POST /api/v1/matchmaking/validate
func (h *MatchmakingHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req request.ValidatePreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	previews, err := PreviewsFromRequest(r, h.roster, req.Previews)
	if err != nil {
		WriteError(w, err)
		return
	}

	violations := h.matchmaking.ValidatePreview(previews)
	response.JSON(w, http.StatusOK, response.ValidatePreviewResponse{
		Valid:      len(violations) == 0,
		Violations: violations,
	})
}

// Quality handles POST /api/v1/matchmaking/quality
//
// Scores an arbitrary assignment, so organizers can re-check quality
// after editing a generated one by hand.
func (h *MatchmakingHandler) Quality(w http.ResponseWriter, r *http.Request) {
	var req request.QualityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	previews, err := PreviewsFromRequest(r, h.roster, req.Previews)
	if err != nil {
		WriteError(w, err)
		return
	}

	idx, err := h.sessions.BuildHistoryIndex(r.Context(), h.historyWindow)
	if err != nil {
		WriteError(w, err)
		return
	}

	report := h.quality.Report(previews, idx)
	response.JSON(w, http.StatusOK, response.QualityReportFromModel(report))
}

func (h *MatchmakingHandler) previewsToResponse(previews []model.MatchPreview) []response.MatchPreview {
	resp := make([]response.MatchPreview, len(previews))
	for i, p := range previews {
		imbalance := h.balance.Imbalance(p.TeamA, p.TeamB)
		_, warning := h.balance.Classify(imbalance)
		resp[i] = response.MatchPreview{
			Court:     p.Court,
			TeamA:     response.TeamFromModel(p.TeamA),
			TeamB:     response.TeamFromModel(p.TeamB),
			Imbalance: imbalance,
			Balance:   string(h.balance.DisplayClassify(imbalance)),
			Warning:   warning,
		}
	}
	return resp
}

// PreviewsFromRequest resolves request previews into model previews,
// loading each referenced player to compute combined team skill
func PreviewsFromRequest(r *http.Request, roster *roster.Controller, in []request.MatchPreview) ([]model.MatchPreview, error) {
	previews := make([]model.MatchPreview, 0, len(in))
	for _, p := range in {
		teamA, err := teamFromRequest(r, roster, p.TeamA)
		if err != nil {
			return nil, err
		}
		teamB, err := teamFromRequest(r, roster, p.TeamB)
		if err != nil {
			return nil, err
		}
		previews = append(previews, model.MatchPreview{
			Court: p.Court,
			TeamA: teamA,
			TeamB: teamB,
		})
	}
	return previews, nil
}

func teamFromRequest(r *http.Request, roster *roster.Controller, ids [2]string) (model.Team, error) {
	a, err := roster.GetPlayer(r.Context(), model.PlayerID(ids[0]))
	if err != nil {
		return model.Team{}, err
	}
	b, err := roster.GetPlayer(r.Context(), model.PlayerID(ids[1]))
	if err != nil {
		return model.Team{}, err
	}
	return model.NewTeam(a, b)
}
