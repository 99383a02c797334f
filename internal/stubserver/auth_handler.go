package stubserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/savasana-dev/yogabook/internal/model"
)

// AuthHandler serves login and registration.
type AuthHandler struct {
	store      *Store
	tokens     *Tokens
	bcryptCost int
	log        zerolog.Logger
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(store *Store, tokens *Tokens, bcryptCost int, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens, bcryptCost: bcryptCost, log: log}
}

// Login authenticates an email/password pair and returns the signed-in
// principal, token included.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	user, err := h.store.UserByEmail(req.Email)
	if err != nil {
		respondMessage(c, http.StatusUnauthorized, "Bad credentials")
		return
	}
	if err := CheckPassword(user.PasswordHash, req.Password); err != nil {
		respondMessage(c, http.StatusUnauthorized, "Bad credentials")
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to issue token")
		respondMessage(c, http.StatusInternalServerError, "Could not issue token")
		return
	}

	c.JSON(http.StatusOK, model.Principal{
		ID:        user.ID,
		Token:     token,
		Type:      "Bearer",
		Username:  user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Admin:     user.Admin,
	})
}

// Register creates a new non-admin account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	hash, err := HashPassword(req.Password, h.bcryptCost)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to hash password")
		respondMessage(c, http.StatusInternalServerError, "Could not register user")
		return
	}

	_, err = h.store.CreateUser(model.User{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Admin:        false,
		PasswordHash: hash,
	})
	if errors.Is(err, ErrEmailTaken) {
		respondMessage(c, http.StatusBadRequest, "Error: Email is already taken!")
		return
	}
	if err != nil {
		respondMessage(c, http.StatusInternalServerError, "Could not register user")
		return
	}

	respondMessage(c, http.StatusOK, "User registered successfully!")
}
