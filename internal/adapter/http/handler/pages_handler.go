package handler

import (
	"net/http"
	"time"

	"crypto-dashboard/internal/adapter/http/dto"
	"crypto-dashboard/internal/core/domain"
	"crypto-dashboard/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// PagesHandler serves the server-rendered dashboard pages.
type PagesHandler struct {
	walletSvc  ports.WalletService
	authSvc    ports.AuthService
	cookieName string
	log        zerolog.Logger
}

// NewPagesHandler creates a new PagesHandler.
func NewPagesHandler(walletSvc ports.WalletService, authSvc ports.AuthService, cookieName string, log zerolog.Logger) *PagesHandler {
	return &PagesHandler{
		walletSvc:  walletSvc,
		authSvc:    authSvc,
		cookieName: cookieName,
		log:        log,
	}
}

// Index handles GET /. Public page listing all wallets, most recently
// modified first.
func (h *PagesHandler) Index(c *gin.Context) {
	wallets, err := h.walletSvc.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list wallets for index page")
		c.HTML(http.StatusInternalServerError, "index.html", gin.H{
			"Error": "Could not load wallets",
		})
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Wallets": wallets,
		"User":    h.sessionUser(c),
	})
}

// LoginForm handles GET /login.
func (h *PagesHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login handles POST /login. On success a session cookie is set and the
// browser is redirected to the index page.
func (h *PagesHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"Error": "Username and password are required",
		})
		return
	}

	token, expiresAt, err := h.authSvc.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Error": "Invalid username or password",
		})
		return
	}

	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, token, maxAge, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// Logout handles GET /logout. Clears the session cookie.
func (h *PagesHandler) Logout(c *gin.Context) {
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// TestPage handles GET /test. Requires a valid session and dashboard
// permission; anonymous visitors are sent to the login form.
func (h *PagesHandler) TestPage(c *gin.Context) {
	user := h.sessionUser(c)
	if !user.Can(domain.PermDashboardUser) {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.HTML(http.StatusOK, "test.html", gin.H{
		"User":       user,
		"SecretData": "This is a secret page. Ideally we would update data from here.",
	})
}

// sessionUser resolves the current user from the session cookie. Returns
// nil when there is no valid session.
func (h *PagesHandler) sessionUser(c *gin.Context) *domain.User {
	token, err := c.Cookie(h.cookieName)
	if err != nil || token == "" {
		return nil
	}

	user, err := h.authSvc.AuthenticateSession(c.Request.Context(), token)
	if err != nil {
		return nil
	}
	return user
}
