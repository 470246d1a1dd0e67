package api

import (
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/d60-Lab/gin-blog/internal/api/handler"
	"github.com/d60-Lab/gin-blog/internal/api/middleware"
)

// NewRouter assembles the gin engine: templates, gzip, access logging and
// the route table. templateGlob points at the HTML views (tests pass a
// relative glob into the repo's web/templates).
func NewRouter(h *handler.Handler, auth *middleware.Auth, templateGlob string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.AccessLog(), gzip.Gzip(gzip.DefaultCompression))
	r.LoadHTMLGlob(templateGlob)

	loginLimit := middleware.NewLoginLimiter(rate.Every(2*time.Second), 5)

	r.GET("/login", h.LoginForm)
	r.POST("/login", loginLimit.Middleware(), h.Login)
	r.GET("/init_admin", h.InitAdmin)

	protected := r.Group("/", auth.RequireLogin())
	{
		protected.GET("", h.Home)
		protected.GET("logout", h.Logout)
		protected.GET("dashboard", h.Dashboard)
		protected.GET("about", h.About)
		protected.GET("post/:slug", h.Post)
		protected.GET("contact", h.ContactForm)
		protected.POST("contact", h.ContactSubmit)
	}

	return r
}
