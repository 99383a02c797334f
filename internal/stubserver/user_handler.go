package stubserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// UserHandler serves account lookup and deletion.
type UserHandler struct {
	store *Store
	log   zerolog.Logger
}

// NewUserHandler creates a user handler.
func NewUserHandler(store *Store, log zerolog.Logger) *UserHandler {
	return &UserHandler{store: store, log: log}
}

// Detail returns one user profile by id.
func (h *UserHandler) Detail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, err := h.store.UserByID(id)
	if err != nil {
		respondMessage(c, http.StatusNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete removes an account. Only the account owner may delete it.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	claims := getClaims(c)
	if claims == nil || claims.UserID != id {
		respondMessage(c, http.StatusUnauthorized, "You can only delete your own account")
		return
	}
	if err := h.store.DeleteUser(id); err != nil {
		respondMessage(c, http.StatusNotFound, "User not found")
		return
	}
	h.log.Info().Int64("user_id", id).Msg("account deleted")
	c.Status(http.StatusOK)
}
