package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/reversigame/internal/api"
	"github.com/mcoot/reversigame/internal/api/apierr"
	"github.com/mcoot/reversigame/internal/api/response"
	"github.com/mcoot/reversigame/internal/factory"
	"github.com/mcoot/reversigame/internal/model"
	"github.com/mcoot/reversigame/internal/services/moderation"
	"github.com/mcoot/reversigame/internal/testutil"
)

const adminSecret = "hunter2"

// testServer wraps the router over a test application
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func moderationConfig(t *testing.T) moderation.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(adminSecret), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := moderation.DefaultConfig()
	cfg.AdminSecretHash = string(hash)
	return cfg
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return serve(factory.NewTestApp(moderationConfig(t)))
}

func newRedisTestServer(t *testing.T) (*testServer, *miniredis.Miniredis) {
	t.Helper()
	mini := miniredis.RunT(t)
	app := factory.NewTestAppWithRedis(mini.Addr(), moderationConfig(t))
	t.Cleanup(func() { _ = app.Close() })
	return serve(app), mini
}

func serve(app *factory.TestApp) *testServer {
	router := api.NewRouter(api.RouterConfig{
		Logger:            testutil.NopLogger(),
		GameController:    app.GameController,
		ModerationService: app.ModerationService,
	})
	return &testServer{handler: router, app: app}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) apierr.APIError {
	t.Helper()
	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error
}

func initialGrid() [][]int {
	return model.InitialBoard().Grid()
}

// Health

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	var resp response.Health
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "connected", resp.Database)
}

func TestHealthCheckDatabaseDown(t *testing.T) {
	ts, mini := newRedisTestServer(t)
	mini.Close()

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.Health
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Database)
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodOptions, "/api/v1/moves", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/lobbies", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeNotFound, decodeError(t, rr).Code)
}

// Moves

func TestCheckMove(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name  string
		row   int
		col   int
		color int
		legal bool
	}{
		{"dark opening", 2, 3, 1, true},
		{"light opening", 2, 4, 2, true},
		{"no flips", 0, 0, 1, false},
		{"occupied", 3, 3, 1, false},
		{"off board", 8, 0, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := map[string]any{"board": initialGrid(), "row": tt.row, "col": tt.col, "color": tt.color}
			rr := ts.request(http.MethodPost, "/api/v1/moves/check", body)
			require.Equal(t, http.StatusOK, rr.Code)

			var resp response.Legality
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.legal, resp.Legal)
		})
	}
}

func TestPlayMove(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{"board": initialGrid(), "row": 2, "col": 3, "color": 1}
	rr := ts.request(http.MethodPost, "/api/v1/moves", body)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.MoveOutcome
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Board[2][3])
	assert.Equal(t, 1, resp.Board[3][3])
	assert.Equal(t, 2, resp.NextColor)
	assert.True(t, resp.HasValidMove)
}

func TestPlayIllegalMove(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{"board": initialGrid(), "row": 0, "col": 0, "color": 1}
	rr := ts.request(http.MethodPost, "/api/v1/moves", body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeIllegalMove, decodeError(t, rr).Code)
}

func TestPlayMoveValidation(t *testing.T) {
	ts := newTestServer(t)

	badRow := initialGrid()
	badRow[0] = []int{0, 0, 0}
	badCell := initialGrid()
	badCell[7][7] = 3

	tests := []struct {
		name string
		body any
		code string
	}{
		{"invalid color", map[string]any{"board": initialGrid(), "row": 2, "col": 3, "color": 3}, apierr.CodeInvalidColor},
		{"empty color", map[string]any{"board": initialGrid(), "row": 2, "col": 3, "color": 0}, apierr.CodeInvalidColor},
		{"short row", map[string]any{"board": badRow, "row": 2, "col": 3, "color": 1}, apierr.CodeInvalidBoard},
		{"bad cell", map[string]any{"board": badCell, "row": 2, "col": 3, "color": 1}, apierr.CodeInvalidBoard},
		{"missing board", map[string]any{"row": 2, "col": 3, "color": 1}, apierr.CodeInvalidBoard},
		{"off board", map[string]any{"board": initialGrid(), "row": -1, "col": 3, "color": 1}, apierr.CodeInvalidPosition},
		{"unknown field", map[string]any{"board": initialGrid(), "r": 2, "c": 3, "color": 1}, apierr.CodeInvalidRequest},
		{"not json", "nope", apierr.CodeInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := ts.request(http.MethodPost, "/api/v1/moves", tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tt.code, decodeError(t, rr).Code)
		})
	}
}

func TestLegalMoves(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{"board": initialGrid(), "color": 1}
	rr := ts.request(http.MethodPost, "/api/v1/moves/legal", body)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.LegalMoves
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, [][2]int{{2, 3}, {3, 2}, {4, 5}, {5, 4}}, resp.Moves)
}

func TestGameStatus(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/games/status", map[string]any{"board": initialGrid()})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.GameStatus
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.DarkCount)
	assert.Equal(t, 2, resp.LightCount)
	assert.False(t, resp.Terminal)
	assert.Equal(t, 0, resp.Winner)

	// a board of only dark discs is over
	full := make([][]int, 8)
	for i := range full {
		full[i] = []int{1, 1, 1, 1, 1, 1, 1, 1}
	}
	rr = ts.request(http.MethodPost, "/api/v1/games/status", map[string]any{"board": full})
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Terminal)
	assert.Equal(t, 64, resp.DarkCount)
	assert.Equal(t, 1, resp.Winner)
}

// Players

func register(t *testing.T, ts *testServer, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	return ts.request(http.MethodPost, "/api/v1/players/register", map[string]string{
		"username": username,
		"password": password,
	})
}

func TestRegister(t *testing.T) {
	ts := newTestServer(t)

	rr := register(t, ts, "alice", "pw")
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.Registered
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
	assert.False(t, resp.IsAdmin)

	rr = register(t, ts, "alice", "other")
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeNameTaken, decodeError(t, rr).Code)
}

func TestRegisterAdmin(t *testing.T) {
	ts := newTestServer(t)

	rr := register(t, ts, "root", adminSecret)
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.Registered
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.IsAdmin)
}

func TestRegisterRequiresFields(t *testing.T) {
	ts := newTestServer(t)

	rr := register(t, ts, "", "pw")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, decodeError(t, rr).Code)

	rr = register(t, ts, "alice", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestReportUntilBanned(t *testing.T) {
	ts := newTestServer(t)
	require.Equal(t, http.StatusCreated, register(t, ts, "bob", "pw").Code)

	var resp response.Report
	for i := 1; i <= 5; i++ {
		rr := ts.request(http.MethodPost, "/api/v1/players/report", map[string]string{
			"username": "bob",
			"reason":   "engine assistance",
		})
		require.Equal(t, http.StatusOK, rr.Code)
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, i, resp.Count)
	}
	assert.Equal(t, "BANNED", resp.Status)

	rr := ts.request(http.MethodGet, "/api/v1/players/bob", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var player response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &player))
	assert.True(t, player.Banned)
	assert.Equal(t, 5, player.SuspicionCount)
	assert.Equal(t, "automatic ban: repeated engine assistance", player.BanReason)
	assert.NotContains(t, rr.Body.String(), "password")

	rr = register(t, ts, "bob", "pw")
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, apierr.CodeAlreadyBanned, decodeError(t, rr).Code)
}

func TestReportUnknownPlayer(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/players/report", map[string]string{"username": "ghost"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodePlayerNotFound, decodeError(t, rr).Code)
}

func TestGetPlayerNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/players/ghost", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAdminBan(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/admin/ban", map[string]string{
		"admin_password": "wrong",
		"target":         "carol",
	})
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, apierr.CodeNotAdmin, decodeError(t, rr).Code)

	rr = ts.request(http.MethodPost, "/api/v1/admin/ban", map[string]string{
		"admin_password": adminSecret,
		"target":         "carol",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = register(t, ts, "carol", "pw")
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, apierr.CodeAlreadyBanned, decodeError(t, rr).Code)
}

func TestDirectoryUnavailable(t *testing.T) {
	ts, mini := newRedisTestServer(t)
	mini.Close()

	rr := register(t, ts, "alice", "pw")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, apierr.CodeUnavailable, decodeError(t, rr).Code)

	// the rules engine does not depend on the directory
	body := map[string]any{"board": initialGrid(), "row": 2, "col": 3, "color": 1}
	rr = ts.request(http.MethodPost, "/api/v1/moves", body)
	assert.Equal(t, http.StatusOK, rr.Code)
}
