package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/gin-blog/pkg/logger"
)

// Home renders the paginated post listing.
func (h *Handler) Home(c *gin.Context) {
	posts, w, err := h.posts.ListPage(c.Request.Context(), c.Query("page"), "/")
	if err != nil {
		logger.Error("list posts", zap.Error(err))
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	h.render(c, http.StatusOK, "index.html", gin.H{
		"Posts": posts,
		"Prev":  w.Prev,
		"Next":  w.Next,
		"Page":  w.Page,
	})
}

// Post renders a single post looked up by slug. An unknown slug still
// renders the page, with no post and a 404 status.
func (h *Handler) Post(c *gin.Context) {
	slug := c.Param("slug")
	post, err := h.posts.BySlug(c.Request.Context(), slug)
	if err != nil {
		logger.Error("find post", zap.String("slug", slug), zap.Error(err))
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	status := http.StatusOK
	if post == nil {
		status = http.StatusNotFound
	}
	h.render(c, status, "post.html", gin.H{"Post": post})
}

// Dashboard lists every post plus the latest contact submissions.
func (h *Handler) Dashboard(c *gin.Context) {
	posts, err := h.posts.ListAll(c.Request.Context())
	if err != nil {
		logger.Error("list posts", zap.Error(err))
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	messages, err := h.contacts.Recent(c.Request.Context(), 10)
	if err != nil {
		logger.Error("list contacts", zap.Error(err))
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	h.render(c, http.StatusOK, "dashboard.html", gin.H{
		"Posts":    posts,
		"Messages": messages,
	})
}

// About renders the static about page.
func (h *Handler) About(c *gin.Context) {
	h.render(c, http.StatusOK, "about.html", nil)
}
