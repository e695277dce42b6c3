package handler

import (
	"strings"

	"crypto-dashboard/internal/adapter/http/dto"
	"crypto-dashboard/internal/core/ports"
	"crypto-dashboard/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles API token endpoints.
type AuthHandler struct {
	authSvc ports.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authSvc ports.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// RenewToken handles GET /api/v1/auth/renew. The caller authenticates with
// the current bearer token and receives a freshly rotated one; the old
// token stops working immediately.
func (h *AuthHandler) RenewToken(c *gin.Context) {
	user, err := h.authSvc.Authenticate(c.Request.Context(), bearerToken(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.authSvc.RenewToken(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TokenResponse{Token: token})
}

// bearerToken extracts the token from the Authorization header. Returns ""
// when the header is missing or not a Bearer scheme; Authenticate rejects
// empty tokens.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
