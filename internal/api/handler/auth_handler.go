package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/gin-blog/internal/service"
	"github.com/d60-Lab/gin-blog/pkg/logger"
)

type loginForm struct {
	Username string `form:"uname" binding:"required"`
	Password string `form:"pass" binding:"required"`
	Remember bool   `form:"remember"`
}

// LoginForm shows the login page; an already-authenticated client is sent
// home instead.
func (h *Handler) LoginForm(c *gin.Context) {
	if h.authenticated(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	h.render(c, http.StatusOK, "login.html", gin.H{"Next": c.Query("next")})
}

// Login verifies the submitted credentials. On success it issues the session
// cookie and honors a same-origin relative next target; on failure it
// re-renders the form with a generic message that does not reveal which
// field was wrong.
func (h *Handler) Login(c *gin.Context) {
	if h.authenticated(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusOK, "login.html", gin.H{
			"Flash": "Invalid username or password",
			"Next":  c.Query("next"),
		})
		return
	}
	u, err := h.auth.VerifyCredentials(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			logger.Error("verify credentials", zap.Error(err))
			c.String(http.StatusInternalServerError, "something went wrong")
			return
		}
		h.render(c, http.StatusOK, "login.html", gin.H{
			"Flash": "Invalid username or password",
			"Next":  c.Query("next"),
		})
		return
	}

	token, ttl, err := h.sessions.Issue(u.ID, u.Username, form.Remember)
	if err != nil {
		logger.Error("issue session", zap.Error(err))
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	h.setSessionCookie(c, token, int(ttl.Seconds()))
	logger.Info("login", zap.String("username", u.Username))

	c.Redirect(http.StatusFound, safeNext(c.Query("next")))
}

// Logout clears the session cookie and returns to the login form.
func (h *Handler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	h.setFlash(c, "Logged out successfully")
	c.Redirect(http.StatusFound, "/login")
}

// InitAdmin bootstraps the configured admin account. Calling it again once
// the user exists is a no-op; either way it lands on the home page.
func (h *Handler) InitAdmin(c *gin.Context) {
	created, err := h.auth.EnsureAdmin(c.Request.Context(), h.admin.User, h.admin.Password)
	if err != nil {
		logger.Error("init admin", zap.Error(err))
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	if created {
		logger.Info("admin user created", zap.String("username", h.admin.User))
		h.setFlash(c, "Admin user created successfully")
	}
	c.Redirect(http.StatusFound, "/")
}

// authenticated reports whether the request carries a valid session cookie.
// Used only on the open login routes; protected routes go through the
// middleware instead.
func (h *Handler) authenticated(c *gin.Context) bool {
	token, err := c.Cookie(service.CookieName)
	if err != nil || token == "" {
		return false
	}
	_, err = h.sessions.Parse(token)
	return err == nil
}

// safeNext accepts only same-origin relative paths as a post-login target.
// Anything absolute or protocol-relative falls back to home.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") {
		return "/"
	}
	if strings.HasPrefix(next, "//") || strings.ContainsAny(next, "\\\r\n") {
		return "/"
	}
	return next
}
