package stubserver

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/savasana-dev/yogabook/internal/model"
)

// SessionHandler serves the session CRUD and participation endpoints.
type SessionHandler struct {
	store *Store
	log   zerolog.Logger
}

// NewSessionHandler creates a session handler.
func NewSessionHandler(store *Store, log zerolog.Logger) *SessionHandler {
	return &SessionHandler{store: store, log: log}
}

// List returns all sessions.
func (h *SessionHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Sessions())
}

// Detail returns one session by id.
func (h *SessionHandler) Detail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	sess, err := h.store.SessionByID(id)
	if err != nil {
		respondMessage(c, http.StatusNotFound, "Session not found")
		return
	}
	c.JSON(http.StatusOK, sess)
}

// Create inserts a new session.
func (h *SessionHandler) Create(c *gin.Context) {
	req, date, ok := h.bindSession(c)
	if !ok {
		return
	}
	created := h.store.CreateSession(model.Session{
		Name:        req.Name,
		Description: req.Description,
		Date:        date,
		TeacherID:   req.TeacherID,
	})
	h.log.Info().Int64("session_id", created.ID).Msg("session created")
	c.JSON(http.StatusOK, created)
}

// Update replaces a session's fields.
func (h *SessionHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	req, date, ok := h.bindSession(c)
	if !ok {
		return
	}
	updated, err := h.store.UpdateSession(id, model.Session{
		Name:        req.Name,
		Description: req.Description,
		Date:        date,
		TeacherID:   req.TeacherID,
	})
	if err != nil {
		respondMessage(c, http.StatusNotFound, "Session not found")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes a session.
func (h *SessionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.store.DeleteSession(id); err != nil {
		respondMessage(c, http.StatusNotFound, "Session not found")
		return
	}
	c.Status(http.StatusOK)
}

// Participate enrolls a user in a session.
func (h *SessionHandler) Participate(c *gin.Context) {
	sessionID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	switch err := h.store.Participate(sessionID, userID); {
	case errors.Is(err, ErrNotFound):
		respondMessage(c, http.StatusNotFound, "Session or user not found")
	case errors.Is(err, ErrAlreadyParticipating):
		respondMessage(c, http.StatusBadRequest, "User already participates")
	case err != nil:
		respondMessage(c, http.StatusInternalServerError, "Could not update participation")
	default:
		c.Status(http.StatusOK)
	}
}

// UnParticipate removes a user from a session's participants.
func (h *SessionHandler) UnParticipate(c *gin.Context) {
	sessionID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	switch err := h.store.UnParticipate(sessionID, userID); {
	case errors.Is(err, ErrNotFound):
		respondMessage(c, http.StatusNotFound, "Session not found")
	case errors.Is(err, ErrNotParticipating):
		respondMessage(c, http.StatusBadRequest, "User does not participate")
	case err != nil:
		respondMessage(c, http.StatusInternalServerError, "Could not update participation")
	default:
		c.Status(http.StatusOK)
	}
}

// bindSession binds and validates the session payload, parsing its
// date. Responds with 400 itself when the payload is bad.
func (h *SessionHandler) bindSession(c *gin.Context) (model.SessionRequest, time.Time, bool) {
	var req model.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, bindErrorMessage(err))
		return req, time.Time{}, false
	}
	date, err := parseDate(req.Date)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "Date must be RFC 3339 or YYYY-MM-DD")
		return req, time.Time{}, false
	}
	return req, date, true
}

// parseDate accepts RFC 3339 timestamps or bare dates.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// pathID parses a numeric path parameter, responding with 400 when it
// is not a number.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		abortMessage(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}
