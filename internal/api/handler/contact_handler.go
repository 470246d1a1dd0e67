package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/gin-blog/pkg/logger"
)

type contactForm struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email" binding:"required"`
	Phone   string `form:"phone" binding:"required"`
	Message string `form:"message" binding:"required"`
}

// ContactForm shows the empty contact form.
func (h *Handler) ContactForm(c *gin.Context) {
	h.render(c, http.StatusOK, "contact.html", nil)
}

// ContactSubmit persists the submission with a server-side timestamp and
// re-renders the empty form. Field contents are stored as given; there is
// no format validation on email or phone beyond presence.
func (h *Handler) ContactSubmit(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusBadRequest, "contact.html", gin.H{
			"Flash": "All fields are required",
		})
		return
	}
	entry, err := h.contacts.Submit(c.Request.Context(), form.Name, form.Email, form.Phone, form.Message)
	if err != nil {
		logger.Error("save contact", zap.Error(err))
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	logger.Info("contact submitted", zap.Uint("sno", entry.Sno), zap.String("email", entry.Email))
	h.render(c, http.StatusOK, "contact.html", gin.H{
		"Flash": "Thanks for reaching out, we will get back to you",
	})
}
