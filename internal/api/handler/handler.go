package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/gin-blog/internal/api/middleware"
	"github.com/d60-Lab/gin-blog/internal/config"
	"github.com/d60-Lab/gin-blog/internal/service"
)

const flashCookie = "blog_flash"

// Handler holds the services the route handlers orchestrate. One instance
// serves all routes.
type Handler struct {
	blog     config.Blog
	admin    config.Admin
	posts    service.PostService
	contacts service.ContactService
	auth     service.AuthService
	sessions *service.SessionManager
}

func NewHandler(
	blog config.Blog,
	admin config.Admin,
	posts service.PostService,
	contacts service.ContactService,
	auth service.AuthService,
	sessions *service.SessionManager,
) *Handler {
	return &Handler{
		blog:     blog,
		admin:    admin,
		posts:    posts,
		contacts: contacts,
		auth:     auth,
		sessions: sessions,
	}
}

// render wraps c.HTML with the view data every template expects: blog
// params, the current identity and a one-shot flash message.
func (h *Handler) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Params"] = h.blog
	if u := middleware.CurrentUser(c); u != nil {
		data["Username"] = u.Username
	}
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = h.popFlash(c)
	}
	c.HTML(status, name, data)
}

// setFlash stores a message shown once on the next rendered page.
func (h *Handler) setFlash(c *gin.Context, msg string) {
	c.SetCookie(flashCookie, msg, 60, "/", "", false, true)
}

func (h *Handler) popFlash(c *gin.Context) string {
	msg, err := c.Cookie(flashCookie)
	if err != nil || msg == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return msg
}

func (h *Handler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     service.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
