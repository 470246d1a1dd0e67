package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/gin-blog/internal/model"
	"github.com/d60-Lab/gin-blog/internal/repository"
	"github.com/d60-Lab/gin-blog/internal/service"
)

const userKey = "auth.user"

// Auth resolves the session cookie to a stored user per request.
type Auth struct {
	sessions *service.SessionManager
	users    repository.UserRepository
}

func NewAuth(sessions *service.SessionManager, users repository.UserRepository) *Auth {
	return &Auth{sessions: sessions, users: users}
}

// RequireLogin redirects unauthenticated requests to the login form,
// preserving the original target in the next parameter. The identity is
// re-resolved against the users table on every request, so a token for a
// deleted user is treated as no session.
func (a *Auth) RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(service.CookieName)
		if err != nil || token == "" {
			redirectToLogin(c)
			return
		}
		claims, err := a.sessions.Parse(token)
		if err != nil {
			redirectToLogin(c)
			return
		}
		u, err := a.users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		if u == nil {
			redirectToLogin(c)
			return
		}
		c.Set(userKey, u)
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request.URL.RequestURI()))
	c.Abort()
}

// CurrentUser returns the identity established by RequireLogin, or nil on
// routes outside the protected group.
func CurrentUser(c *gin.Context) *model.User {
	if v, ok := c.Get(userKey); ok {
		if u, ok := v.(*model.User); ok {
			return u
		}
	}
	return nil
}
