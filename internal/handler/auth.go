package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"busriya/internal/middleware"
	"busriya/internal/service"
)

// AuthHandler handles login and logout.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// LoginRequest is the HTTP request for logging in.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the HTTP response for a successful login.
type LoginResponse struct {
	SessionID string `json:"sessionId"`
	Role      string `json:"role"`
}

// Login handles POST /v1/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.ErrMissingCredentials)
		return
	}

	session, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, LoginResponse{
		SessionID: session.ID,
		Role:      string(session.Role),
	})
}

// Logout handles POST /v1/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.GetString(middleware.ContextSessionKey)
	if err := h.auth.Logout(c.Request.Context(), sessionID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
