package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Dosada05/teamsync/brackets"
	"github.com/Dosada05/teamsync/handlers"
	"github.com/Dosada05/teamsync/models"
	"github.com/Dosada05/teamsync/services"
	"github.com/Dosada05/teamsync/services/mockservices"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	jwtSecret  = "jwt-secret"
	cronSecret = "cron-secret"
)

type testApp struct {
	router   chi.Router
	hub      *brackets.Hub
	schedule *mockservices.ScheduleService
	session  *mockservices.SessionService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	hub := brackets.NewHub(nil)
	go hub.Run(ctx)

	app := &testApp{
		router:   chi.NewRouter(),
		hub:      hub,
		schedule: &mockservices.ScheduleService{},
		session:  &mockservices.SessionService{},
	}
	SetupRoutes(app.router, Config{JWTSecret: jwtSecret, CronSecret: cronSecret, RequestTimeout: 5 * time.Second}, Handlers{
		Schedule:  handlers.NewScheduleHandler(app.schedule),
		Session:   handlers.NewSessionHandler(app.session, 24*time.Hour),
		WebSocket: handlers.NewWebSocketHandler(hub, nil, nil),
		Health: handlers.NewHealthHandler(map[string]handlers.HealthCheck{
			"postgres": func(context.Context) error { return nil },
		}),
	})
	return app
}

func bearer(t *testing.T, role models.UserRole) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u1",
		"role":    string(role),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(jwtSecret))
	require.NoError(t, err)
	return "Bearer " + token
}

func (a *testApp) do(method, target, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func TestScheduleRoutesRequireManager(t *testing.T) {
	app := newTestApp(t)
	app.schedule.On("GenerateSchedule", mock.Anything, "t1").Return(&services.ScheduleResult{TournamentID: "t1"}, nil)

	assert.Equal(t, http.StatusUnauthorized, app.do(http.MethodPost, "/api/tournaments/t1/schedule", "").Code)
	assert.Equal(t, http.StatusForbidden, app.do(http.MethodPost, "/api/tournaments/t1/schedule", bearer(t, models.RolePlayer)).Code)
	assert.Equal(t, http.StatusCreated, app.do(http.MethodPost, "/api/tournaments/t1/schedule", bearer(t, models.RoleManager)).Code)
	assert.Equal(t, http.StatusCreated, app.do(http.MethodPost, "/api/tournaments/t1/schedule", bearer(t, models.RoleAdmin)).Code)
	app.schedule.AssertNumberOfCalls(t, "GenerateSchedule", 2)
}

func TestPublicReadRoutes(t *testing.T) {
	app := newTestApp(t)
	app.schedule.On("ListFixtures", mock.Anything, "t1").Return([]models.Fixture{}, nil)
	app.session.On("GetSessionView", mock.Anything, "s1").Return(&services.SessionView{Session: &models.Session{ID: "s1"}}, nil)

	assert.Equal(t, http.StatusOK, app.do(http.MethodGet, "/api/tournaments/t1/fixtures", "").Code)
	assert.Equal(t, http.StatusOK, app.do(http.MethodGet, "/api/sessions/s1", "").Code)
	assert.Equal(t, http.StatusOK, app.do(http.MethodGet, "/healthz", "").Code)
}

func TestSessionSyncRoutes(t *testing.T) {
	app := newTestApp(t)
	app.session.On("SyncBack", mock.Anything, "s1").Return(services.SyncResult{SessionID: "s1", Success: true, Attempts: 1})
	app.session.On("SyncRecentSessions", mock.Anything, 24*time.Hour).Return(&services.SyncReport{}, nil)

	assert.Equal(t, http.StatusUnauthorized, app.do(http.MethodPost, "/api/sessions/s1/sync", "").Code)
	assert.Equal(t, http.StatusOK, app.do(http.MethodPost, "/api/sessions/s1/sync", bearer(t, models.RoleManager)).Code)

	assert.Equal(t, http.StatusUnauthorized, app.do(http.MethodPost, "/api/cron/sync-sessions", "").Code)
	assert.Equal(t, http.StatusUnauthorized, app.do(http.MethodPost, "/api/cron/sync-sessions", bearer(t, models.RoleAdmin)).Code)
	assert.Equal(t, http.StatusOK, app.do(http.MethodPost, "/api/cron/sync-sessions", "Bearer "+cronSecret).Code)
}

func TestSwaggerAndNotFound(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/swagger/doc.json", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/sessions/{sessionID}/sync")

	rec = app.do(http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"the requested resource could not be found"}`, rec.Body.String())
}

func TestSessionWebSocketReceivesBroadcast(t *testing.T) {
	app := newTestApp(t)
	srv := httptest.NewServer(app.router)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/sessions/s1"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	room := brackets.SessionRoom("s1")
	require.Eventually(t, func() bool { return app.hub.RoomSize(room) == 1 }, 2*time.Second, 10*time.Millisecond)

	app.hub.BroadcastToRoom(room, brackets.WebSocketMessage{Type: brackets.MessageSessionSynced, RoomID: room})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg brackets.WebSocketMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, brackets.MessageSessionSynced, msg.Type)
	assert.Equal(t, room, msg.RoomID)
}
