package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Dosada05/teamsync/services"
)

type SessionHandler struct {
	sessionService services.SessionService
	syncWindow     time.Duration
}

// NewSessionHandler. syncWindow is the default look-back for the cron trigger.
func NewSessionHandler(ss services.SessionService, syncWindow time.Duration) *SessionHandler {
	return &SessionHandler{
		sessionService: ss,
		syncWindow:     syncWindow,
	}
}

// GetSession godoc
// @Summary Сессия с наложенными живыми данными
// @Tags sessions
// @Description Участники и игры из базы, поверх которых наложены данные из live-хранилища, и таблица результатов.
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} services.SessionView
// @Failure 404 {object} map[string]string "Сессия не найдена"
// @Router /sessions/{sessionID} [get]
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := getIDFromURL(r, "sessionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	view, err := h.sessionService.GetSessionView(r.Context(), sessionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"session": view}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SyncSession godoc
// @Summary Записать выбор участников из live-хранилища в базу
// @Tags sessions
// @Description Результат всегда возвращается с кодом 200; неудача описана в полях success и error.
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} services.SyncResult
// @Failure 401 {object} map[string]string "Неавторизован"
// @Failure 403 {object} map[string]string "Недостаточно прав"
// @Security BearerAuth
// @Router /sessions/{sessionID}/sync [post]
func (h *SessionHandler) SyncSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := getIDFromURL(r, "sessionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result := h.sessionService.SyncBack(r.Context(), sessionID)

	if err := writeJSON(w, http.StatusOK, jsonResponse{"result": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type syncRecentInput struct {
	Window string `json:"window"`
}

// SyncRecent godoc
// @Summary Синхронизировать все недавно обновленные сессии
// @Tags cron
// @Accept json
// @Produce json
// @Param input body syncRecentInput false "Окно, например 6h (по умолчанию SYNC_WINDOW)"
// @Success 200 {object} services.SyncReport
// @Failure 400 {object} map[string]string "Неверное окно"
// @Failure 401 {object} map[string]string "Неверный секрет"
// @Security CronSecret
// @Router /cron/sync-sessions [post]
func (h *SessionHandler) SyncRecent(w http.ResponseWriter, r *http.Request) {
	window := h.syncWindow

	if r.ContentLength != 0 {
		var input syncRecentInput
		if err := readJSON(w, r, &input); err != nil {
			badRequestResponse(w, r, err)
			return
		}
		if input.Window != "" {
			d, err := time.ParseDuration(input.Window)
			if err != nil || d <= 0 {
				badRequestResponse(w, r, errors.New("window must be a positive duration such as 6h"))
				return
			}
			window = d
		}
	}

	report, err := h.sessionService.SyncRecentSessions(r.Context(), window)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"report": report}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
