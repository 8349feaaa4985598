package http

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// twiml is the response document the Twilio webhook expects.
type twiml struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message,omitempty"`
}

const whatsappHelpFooter = "\n\n📞 *Need more help?*\nCall: (555) 123-4567\nEmail: help@college.edu"

// WhatsAppWebhook answers an inbound Twilio WhatsApp/SMS message inline.
func (h *Handler) WhatsAppWebhook(c *gin.Context) {
	from := strings.TrimPrefix(c.PostForm("From"), "whatsapp:")
	body := strings.TrimSpace(c.PostForm("Body"))
	if body == "" {
		c.XML(http.StatusOK, twiml{})
		return
	}

	reply, err := h.svc.Answer(c.Request.Context(), body)
	if err != nil {
		abortWithError(c, storageHTTPError(err))
		return
	}

	formatted := fmt.Sprintf("%s *%s*\n\n%s", confidenceMarker(reply.Confidence), reply.Category, reply.Answer)
	if reply.Confidence < 0.4 {
		formatted += whatsappHelpFooter
	}

	tagged := fmt.Sprintf("[WA:%s] %s", from, body)
	if err := h.svc.LogConversation(c.Request.Context(), tagged, reply.Answer, reply.Confidence); err != nil {
		h.logger.Warn("conversation log failed", "error", err)
	}

	c.XML(http.StatusOK, twiml{Message: formatted})
}

func confidenceMarker(confidence float64) string {
	switch {
	case confidence > 0.7:
		return "🎯"
	case confidence > 0.4:
		return "📍"
	default:
		return "❓"
	}
}
