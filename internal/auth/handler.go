package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/studioreel/website/pkg/response"
)

const (
	// LoginPath is where unauthenticated admin requests are sent.
	LoginPath     = "/adminlogin"
	DashboardPath = "/admin/dashboard"

	loginTemplate = "admin_login.html"
)

// LoginRequest is the admin login form.
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// Handler handles admin login and logout.
type Handler struct {
	sessions     *Manager
	creds        Credentials
	secureCookie bool
	logger       *zap.Logger
}

// NewHandler creates an auth handler.
func NewHandler(sessions *Manager, creds Credentials, secureCookie bool, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{sessions: sessions, creds: creds, secureCookie: secureCookie, logger: logger}
}

// LoginPage handles GET /adminlogin. Already signed-in admins go straight to the dashboard.
func (h *Handler) LoginPage(c *gin.Context) {
	if token, err := c.Cookie(CookieName); err == nil {
		if _, err := h.sessions.Resolve(c.Request.Context(), token); err == nil {
			response.Redirect(c, DashboardPath)
			return
		}
	}
	c.HTML(http.StatusOK, loginTemplate, gin.H{"Error": ""})
}

// Login handles POST /adminlogin.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	_ = c.ShouldBind(&req)

	if !h.creds.Authenticate(req.Username, req.Password) {
		h.logger.Info("admin login rejected", zap.String("client_ip", c.ClientIP()))
		c.HTML(http.StatusOK, loginTemplate, gin.H{"Error": "Invalid username or password"})
		return
	}

	token, s, err := h.sessions.Start(c.Request.Context())
	if err != nil {
		h.logger.Error("start admin session failed", zap.Error(err))
		c.HTML(http.StatusInternalServerError, loginTemplate, gin.H{"Error": "Could not sign you in right now, please try again."})
		return
	}
	h.setCookie(c, token, int(h.sessions.TTL().Seconds()))
	h.logger.Info("admin signed in", zap.String("session_id", s.ID), zap.String("client_ip", c.ClientIP()))
	response.Redirect(c, DashboardPath)
}

// Logout handles GET /admin/logout. The session is destroyed and the cookie cleared.
func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(CookieName); err == nil {
		if err := h.sessions.End(c.Request.Context(), token); err != nil {
			h.logger.Error("end admin session failed", zap.Error(err))
		}
	}
	h.setCookie(c, "", -1)
	response.Redirect(c, LoginPath)
}

func (h *Handler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, value, maxAge, "/", "", h.secureCookie, true)
}
