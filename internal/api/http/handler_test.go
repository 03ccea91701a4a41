package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"micattix/internal/api/ws"
	"micattix/internal/config"
	"micattix/internal/game"
	"micattix/internal/room"
	"micattix/internal/store"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{DefaultSize: game.SizeSmall, DefaultMode: game.ModeTwoPlayer}
	rm := room.NewManager(store.NewMemoryStore(), cfg)
	hub := ws.NewHub(rm)
	rm.SetBroadcaster(hub)
	return NewRouter(rm, hub, cfg)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func TestRoomLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter()

	w, created := doJSON(t, r, http.MethodPost, "/create-room", gin.H{"player_name": "ana"})
	require.Equal(t, http.StatusOK, w.Code)
	code, _ := created["room_code"].(string)
	require.Len(t, code, 6)
	creatorID := created["player"].(map[string]any)["id"].(string)

	w, joined := doJSON(t, r, http.MethodPost, "/join-room", gin.H{"room_code": code, "player_name": "ben"})
	require.Equal(t, http.StatusOK, w.Code)
	joinerID := joined["player"].(map[string]any)["id"].(string)

	w, _ = doJSON(t, r, http.MethodPost, "/start-game", gin.H{"room_code": code, "player_id": creatorID})
	require.Equal(t, http.StatusOK, w.Code)

	w, lm := doJSON(t, r, http.MethodGet, "/legal-moves?room_code="+code, nil)
	require.Equal(t, http.StatusOK, w.Code)
	targets, _ := lm["targets"].([]any)
	require.NotEmpty(t, targets)
	first := targets[0].(map[string]any)
	row := int(first["row"].(float64))
	col := int(first["col"].(float64))

	w, _ = doJSON(t, r, http.MethodPost, "/move", gin.H{"room_code": code, "player_id": joinerID, "row": row, "col": col})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, moved := doJSON(t, r, http.MethodPost, "/move", gin.H{"room_code": code, "player_id": creatorID, "row": row, "col": col})
	require.Equal(t, http.StatusOK, w.Code)
	snap := moved["room"].(map[string]any)["game"].(map[string]any)
	assert.Equal(t, float64(1), snap["active"])

	w, ended := doJSON(t, r, http.MethodPost, "/end-game", gin.H{"room_code": code, "player_id": creatorID})
	require.Equal(t, http.StatusOK, w.Code)
	standings := ended["standings"].(map[string]any)
	assert.Len(t, standings["scores"].([]any), 2)
}

func TestCreateRoomValidation(t *testing.T) {
	r := newTestRouter()

	w, _ := doJSON(t, r, http.MethodPost, "/create-room", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body := doJSON(t, r, http.MethodPost, "/create-room", gin.H{"player_name": "ana", "size": "tiny"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["error"], "configuration")
}

func TestMoveBeforeStartConflicts(t *testing.T) {
	r := newTestRouter()

	_, created := doJSON(t, r, http.MethodPost, "/create-room", gin.H{"player_name": "ana"})
	code := created["room_code"].(string)
	creatorID := created["player"].(map[string]any)["id"].(string)

	w, _ := doJSON(t, r, http.MethodPost, "/move", gin.H{"room_code": code, "player_id": creatorID, "row": 0, "col": 0})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestStateRequiresKnownRoom(t *testing.T) {
	r := newTestRouter()

	w, _ := doJSON(t, r, http.MethodGet, "/state?room_code=NOSUCH", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/state", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogEndpoint(t *testing.T) {
	r := newTestRouter()

	w, body := doJSON(t, r, http.MethodGet, "/catalog?size=large", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(36), body["cells"])
	assert.Len(t, body["pieces"].([]any), 36)

	w, body = doJSON(t, r, http.MethodGet, "/catalog", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "small", body["size"])
	assert.Len(t, body["pieces"].([]any), 16)

	w, _ = doJSON(t, r, http.MethodGet, "/catalog?size=medium", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthzReportsOpenRooms(t *testing.T) {
	r := newTestRouter()

	w, body := doJSON(t, r, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(0), body["rooms"])

	_, _ = doJSON(t, r, http.MethodPost, "/create-room", gin.H{"player_name": "ana"})
	_, body = doJSON(t, r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, float64(1), body["rooms"])
}

func TestMetricsEndpointExposesCounters(t *testing.T) {
	r := newTestRouter()
	_, _ = doJSON(t, r, http.MethodGet, "/healthz", nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "micattix_http_requests_total")
}
