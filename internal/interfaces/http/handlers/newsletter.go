// internal/interfaces/http/handlers/newsletter.go
package handlers

import (
	"net/http"
	"net/mail"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewsletterHandler handles the demo newsletter signup. No email is ever
// sent; the endpoint validates the address and acknowledges.
type NewsletterHandler struct {
	logger *logrus.Logger
}

// NewNewsletterHandler creates a new newsletter handler
func NewNewsletterHandler(logger *logrus.Logger) *NewsletterHandler {
	return &NewsletterHandler{logger: logger}
}

// SubscribeRequest represents a newsletter signup request
type SubscribeRequest struct {
	Email string `json:"email" binding:"required"`
}

// Subscribe handles POST /newsletter
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Please enter an email address",
		})
		return
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Please enter a valid email address",
		})
		return
	}

	h.logger.WithField("email", req.Email).Info("newsletter signup (demo)")

	c.JSON(http.StatusOK, gin.H{
		"message": "Thanks for subscribing! (Demo only, no real emails will be sent.)",
	})
}
