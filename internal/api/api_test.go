package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azzbr/padelx/internal/api"
	"github.com/azzbr/padelx/internal/api/response"
	"github.com/azzbr/padelx/internal/factory"
	"github.com/azzbr/padelx/internal/storage/memory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	storage *memory.Storage
}

func newTestServer(t *testing.T) *testServer {
	return newTestServerWithWindow(t, 0)
}

// newTestServerWithWindow overrides the freshness history window (0 = default)
func newTestServerWithWindow(t *testing.T, historyWindow int) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with real random/clock
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:              logger,
		AuthService:         app.AuthService,
		RosterController:    app.RosterController,
		SessionController:   app.SessionController,
		LiveMatchController: app.LiveMatchController,
		MatchmakingService:  app.MatchmakingService,
		BalanceService:      app.BalanceService,
		QualityService:      app.QualityService,
		HistoryWindow:       historyWindow,
	})

	return &testServer{
		handler: router,
		storage: app.Storage.(*memory.Storage),
	}
}

func (ts *testServer) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// login registers an organizer and returns a session token
func (ts *testServer) login(t *testing.T) string {
	t.Helper()

	body := map[string]string{"username": "organizer", "password": "secret123"}
	rr := ts.request(http.MethodPost, "/api/v1/auth/register", body, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/auth/login", body, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.SessionToken)
	return resp.SessionToken
}

// createPlayer registers a roster player and returns its id
func (ts *testServer) createPlayer(t *testing.T, token, name string, skill int) string {
	t.Helper()

	body := map[string]any{"display_name": name, "skill": skill}
	rr := ts.request(http.MethodPost, "/api/v1/players", body, token)
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.ID
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestRegisterAndLogin(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]string{"username": "organizer", "password": "secret123"}
	rr := ts.request(http.MethodPost, "/api/v1/auth/register", body, "")
	assert.Equal(t, http.StatusCreated, rr.Code)

	var registerResp response.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &registerResp))
	assert.Equal(t, "organizer", registerResp.Username)
	assert.Empty(t, registerResp.SessionToken)

	// Duplicate username
	rr = ts.request(http.MethodPost, "/api/v1/auth/register", body, "")
	assert.Equal(t, http.StatusConflict, rr.Code)

	// Login
	rr = ts.request(http.MethodPost, "/api/v1/auth/login", body, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var loginResp response.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &loginResp))
	assert.Equal(t, registerResp.OrganizerID, loginResp.OrganizerID)
	assert.NotEmpty(t, loginResp.SessionToken)

	// Wrong password
	rr = ts.request(http.MethodPost, "/api/v1/auth/login",
		map[string]string{"username": "organizer", "password": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestEndpointsRequireAuth(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/players", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/matchmaking/generate", map[string]any{}, "bogus-token")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestPlayerLifecycle(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	id := ts.createPlayer(t, token, "Alice", 65)

	// Get
	rr := ts.request(http.MethodGet, "/api/v1/players/"+id, nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var player response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &player))
	assert.Equal(t, "Alice", player.DisplayName)
	assert.Equal(t, 65, player.Skill)

	// Availability
	rr = ts.request(http.MethodPut, "/api/v1/players/"+id+"/availability",
		map[string]any{"dates": []string{"2024-01-20"}}, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	// List filtered by date
	rr = ts.request(http.MethodGet, "/api/v1/players?date=2024-01-20", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var players []response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &players))
	require.Len(t, players, 1)
	assert.Equal(t, id, players[0].ID)

	rr = ts.request(http.MethodGet, "/api/v1/players?date=2024-01-27", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &players))
	assert.Empty(t, players)

	// Delete
	rr = ts.request(http.MethodDelete, "/api/v1/players/"+id, nil, token)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/players/"+id, nil, token)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreatePlayerValidation(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	rr := ts.request(http.MethodPost, "/api/v1/players",
		map[string]any{"display_name": "", "skill": 50}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/players",
		map[string]any{"display_name": "Alice", "skill": 0}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGenerateMatches(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	skills := []int{90, 70, 50, 30}
	ids := make([]string, 0, len(skills))
	for i, skill := range skills {
		ids = append(ids, ts.createPlayer(t, token, fmt.Sprintf("Player %d", i+1), skill))
	}

	rr := ts.request(http.MethodPost, "/api/v1/matchmaking/generate",
		map[string]any{"player_ids": ids, "strategy": "skill_tiered"}, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.GenerateResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Previews, 1)

	preview := resp.Previews[0]
	assert.Equal(t, "A", preview.Court)
	assert.Equal(t, 120, preview.TeamA.CombinedSkill)
	assert.Equal(t, 120, preview.TeamB.CombinedSkill)
	assert.Equal(t, 0, preview.Imbalance)
	assert.Equal(t, "perfectly_balanced", preview.Balance)
	assert.Empty(t, preview.Warning)

	assert.Equal(t, 100, resp.Quality.OverallScore)
	assert.Equal(t, "Excellent", resp.Quality.Rating)
}

func TestGenerateRejectsBadInput(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	id := ts.createPlayer(t, token, "Alice", 50)

	// Unknown strategy
	rr := ts.request(http.MethodPost, "/api/v1/matchmaking/generate",
		map[string]any{"player_ids": []string{id}, "strategy": "round_robin"}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// Roster not a multiple of four
	rr = ts.request(http.MethodPost, "/api/v1/matchmaking/generate",
		map[string]any{"player_ids": []string{id}, "strategy": "skill_tiered"}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// Unknown player
	rr = ts.request(http.MethodPost, "/api/v1/matchmaking/generate",
		map[string]any{"player_ids": []string{id, "x", "y", "z"}, "strategy": "skill_tiered"}, token)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestValidatePreview(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	ids := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		ids = append(ids, ts.createPlayer(t, token, fmt.Sprintf("Player %d", i+1), 50))
	}

	body := map[string]any{"previews": []map[string]any{{
		"court":  "A",
		"team_a": [2]string{ids[0], ids[1]},
		"team_b": [2]string{ids[2], ids[3]},
	}}}
	rr := ts.request(http.MethodPost, "/api/v1/matchmaking/validate", body, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.ValidatePreviewResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
	assert.Empty(t, resp.Violations)

	// Same player on both teams
	body = map[string]any{"previews": []map[string]any{{
		"court":  "A",
		"team_a": [2]string{ids[0], ids[1]},
		"team_b": [2]string{ids[0], ids[3]},
	}}}
	rr = ts.request(http.MethodPost, "/api/v1/matchmaking/validate", body, token)
	assert.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
	assert.NotEmpty(t, resp.Violations)
}

func TestAssignmentQuality(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	skills := []int{50, 50, 50, 66}
	ids := make([]string, 0, 4)
	for i, skill := range skills {
		ids = append(ids, ts.createPlayer(t, token, fmt.Sprintf("Player %d", i+1), skill))
	}

	// 100 vs 116: imbalance 16, no history so freshness stays perfect
	body := map[string]any{"previews": []map[string]any{{
		"court":  "A",
		"team_a": [2]string{ids[0], ids[1]},
		"team_b": [2]string{ids[2], ids[3]},
	}}}
	rr := ts.request(http.MethodPost, "/api/v1/matchmaking/quality", body, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var report response.QualityReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.InDelta(t, 68.0, report.BalanceScore, 0.001)
	assert.InDelta(t, 100.0, report.FreshnessScore, 0.001)
	assert.Equal(t, 78, report.OverallScore)
	assert.Equal(t, "Very Good", report.Rating)
	assert.Equal(t, 1, report.UnbalancedCount)
	assert.InDelta(t, 16.0, report.AvgSkillDiff, 0.001)

	// Unknown player in a preview
	body = map[string]any{"previews": []map[string]any{{
		"court":  "A",
		"team_a": [2]string{"p_nope", ids[1]},
		"team_b": [2]string{ids[2], ids[3]},
	}}}
	rr = ts.request(http.MethodPost, "/api/v1/matchmaking/quality", body, token)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// seedTwoNights creates four players and two dated sessions: the older
// night pairs p1+p2 vs p3+p4, the newer night pairs p1+p3 vs p2+p4.
// Returns the freshness score the quality endpoint reports for replaying
// the older night's pairing.
func seedTwoNights(t *testing.T, ts *testServer) float64 {
	t.Helper()
	token := ts.login(t)

	ids := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		ids = append(ids, ts.createPlayer(t, token, fmt.Sprintf("Player %d", i+1), 50))
	}

	for _, night := range []struct {
		date  string
		teamA [2]string
		teamB [2]string
	}{
		{"2024-01-20", [2]string{ids[0], ids[1]}, [2]string{ids[2], ids[3]}},
		{"2024-01-21", [2]string{ids[0], ids[2]}, [2]string{ids[1], ids[3]}},
	} {
		body := map[string]any{
			"date": night.date,
			"previews": []map[string]any{{
				"court":  "A",
				"team_a": night.teamA,
				"team_b": night.teamB,
			}},
		}
		rr := ts.request(http.MethodPost, "/api/v1/sessions", body, token)
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	body := map[string]any{"previews": []map[string]any{{
		"court":  "A",
		"team_a": [2]string{ids[0], ids[1]},
		"team_b": [2]string{ids[2], ids[3]},
	}}}
	rr := ts.request(http.MethodPost, "/api/v1/matchmaking/quality", body, token)
	require.Equal(t, http.StatusOK, rr.Code)

	var report response.QualityReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	return report.FreshnessScore
}

func TestConfiguredHistoryWindowLimitsFreshness(t *testing.T) {
	// Default window sees both nights: replaying the older pairing is a
	// full rematch with repeated teammates on both sides
	assert.InDelta(t, 0.0, seedTwoNights(t, newTestServer(t)), 0.001)

	// A window of 1 only sees the newest night, which just shares the
	// same four players (six co-presence penalties)
	assert.InDelta(t, 70.0, seedTwoNights(t, newTestServerWithWindow(t, 1)), 0.001)
}

// sessionFixture creates four players and a session with one match,
// returning the session and match ids
func sessionFixture(t *testing.T, ts *testServer, token string) (string, string) {
	t.Helper()

	ids := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		ids = append(ids, ts.createPlayer(t, token, fmt.Sprintf("Player %d", i+1), 50+i*5))
	}

	body := map[string]any{
		"date": "2024-01-20",
		"previews": []map[string]any{{
			"court":  "A",
			"team_a": [2]string{ids[0], ids[1]},
			"team_b": [2]string{ids[2], ids[3]},
		}},
	}
	rr := ts.request(http.MethodPost, "/api/v1/sessions", body, token)
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.SessionWithMatches
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Matches, 1)
	return resp.Session.ID, resp.Matches[0].ID
}

func TestSessionLifecycle(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	sessionID, matchID := sessionFixture(t, ts, token)

	// Get
	rr := ts.request(http.MethodGet, "/api/v1/sessions/"+sessionID, nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var session response.Session
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &session))
	assert.Equal(t, "planning", session.Status)
	assert.Equal(t, []string{matchID}, session.MatchIDs)

	// Matches for session
	rr = ts.request(http.MethodGet, "/api/v1/sessions/"+sessionID+"/matches", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var matches []response.Match
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &matches))
	require.Len(t, matches, 1)
	assert.Equal(t, "waiting", matches[0].Status)

	// Activate, then complete
	rr = ts.request(http.MethodPost, "/api/v1/sessions/"+sessionID+"/activate", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	// Activating twice conflicts
	rr = ts.request(http.MethodPost, "/api/v1/sessions/"+sessionID+"/activate", nil, token)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/sessions/"+sessionID+"/complete", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCreateSessionRejectsInvalidPreview(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	rr := ts.request(http.MethodPost, "/api/v1/sessions",
		map[string]any{"date": "2024-01-20", "previews": []map[string]any{}}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestMatchScoringFlow(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	_, matchID := sessionFixture(t, ts, token)

	// Scoring before start conflicts
	rr := ts.request(http.MethodPost, "/api/v1/matches/"+matchID+"/games",
		map[string]string{"side": "A"}, token)
	assert.Equal(t, http.StatusConflict, rr.Code)

	// Start
	rr = ts.request(http.MethodPost, "/api/v1/matches/"+matchID+"/start", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var match response.Match
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &match))
	assert.Equal(t, "live", match.Status)
	assert.NotNil(t, match.StartedAt)

	// Bad side
	rr = ts.request(http.MethodPost, "/api/v1/matches/"+matchID+"/games",
		map[string]string{"side": "C"}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// Score to 4-1
	for _, side := range []string{"A", "B", "A", "A", "A"} {
		rr = ts.request(http.MethodPost, "/api/v1/matches/"+matchID+"/games",
			map[string]string{"side": side}, token)
		require.Equal(t, http.StatusOK, rr.Code)
	}

	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &match))
	assert.Equal(t, "completed", match.Status)
	assert.Equal(t, "A", match.Winner)
	assert.Equal(t, 4, match.GamesWonA)
	assert.Equal(t, 1, match.GamesWonB)
	assert.NotNil(t, match.EndedAt)

	// Rating updates landed on the winners
	winner := match.TeamA[0]
	rr = ts.request(http.MethodGet, "/api/v1/players/"+winner, nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var player response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &player))
	assert.Equal(t, 10, player.Stats.Points)
	assert.Equal(t, 1, player.Stats.MatchesWon)
	assert.NotNil(t, player.Stats.LastPlayedAt)

	// Scoring after completion conflicts
	rr = ts.request(http.MethodPost, "/api/v1/matches/"+matchID+"/games",
		map[string]string{"side": "B"}, token)
	assert.Equal(t, http.StatusConflict, rr.Code)

	// Undo reopens the match
	rr = ts.request(http.MethodPost, "/api/v1/matches/"+matchID+"/undo", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var reopened response.Match
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &reopened))
	assert.Equal(t, "live", reopened.Status)
	assert.Empty(t, reopened.Winner)
	assert.Equal(t, 3, reopened.GamesWonA)
}
