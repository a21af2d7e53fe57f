package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"research-nest.backend/internal/domain/entities"
	domainerrors "research-nest.backend/internal/domain/errors"
	"research-nest.backend/internal/interfaces/http/middleware"
	"research-nest.backend/internal/interfaces/http/response"
	"research-nest.backend/internal/usecases"
	"research-nest.backend/pkg/crypto"
	"research-nest.backend/pkg/logger"
	"research-nest.backend/pkg/redis"
)

// AuthHandler handles admin authentication endpoints
type AuthHandler struct {
	authUsecase  *usecases.AuthUsecase
	sessionStore *redis.SessionStore
	sessionTTL   time.Duration
	secureCookie bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase, sessionStore *redis.SessionStore, sessionTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authUsecase:  authUsecase,
		sessionStore: sessionStore,
		sessionTTL:   sessionTTL,
		secureCookie: secureCookie,
	}
}

// Login verifies credentials and binds a new session to the user.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Username and password required"))
		return
	}

	user, err := h.authUsecase.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if err == domainerrors.ErrInvalidCredentials {
			// Identical body for unknown user and wrong password.
			response.Error(c, domainerrors.Unauthorized("Invalid credentials"))
			return
		}
		response.Error(c, err)
		return
	}

	sessionID, err := crypto.GenerateSessionID()
	if err != nil {
		response.Error(c, err)
		return
	}

	data := &redis.SessionData{UserID: user.ID.String()}
	if err := h.sessionStore.CreateSession(c.Request.Context(), sessionID, data, h.sessionTTL); err != nil {
		logger.Error(c.Request.Context(), "Failed to create session", zap.Error(err))
		response.Error(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookieName, sessionID, int(h.sessionTTL.Seconds()), "/", "", h.secureCookie, true)

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// Logout destroys the session regardless of prior state.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(middleware.SessionCookieName); err == nil && sessionID != "" {
		if err := h.sessionStore.DeleteSession(c.Request.Context(), sessionID); err != nil {
			logger.Warn(c.Request.Context(), "Failed to delete session", zap.Error(err))
		}
	}

	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.secureCookie, true)
	response.Success(c, http.StatusOK, gin.H{"success": true})
}

// GetMe returns the account bound to the current session.
// GET /api/auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	user, err := h.authUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}
