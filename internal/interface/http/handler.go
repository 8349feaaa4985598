package http

import (
	"log/slog"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusdesk/college-helpdesk/internal/domain/chatbot"
	apperrors "github.com/campusdesk/college-helpdesk/pkg/errors"
)

// ChatRequest is the payload accepted by the chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// Handler wires the HTTP transport to the helpdesk core.
type Handler struct {
	svc    chatbot.Service
	logger *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(svc chatbot.Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger.With("component", "http.handler"),
	}
}

// Home serves the chat page.
func (h *Handler) Home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(chatPage))
}

// Chat answers one user message and records the turn.
func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	reply, err := h.svc.Answer(c.Request.Context(), req.Message)
	if err != nil {
		abortWithError(c, storageHTTPError(err))
		return
	}

	// the log append is fire-and-forget: the user still gets the answer
	if err := h.svc.LogConversation(c.Request.Context(), req.Message, reply.Answer, reply.Confidence); err != nil {
		h.logger.Warn("conversation log failed", "error", err)
	}

	c.JSON(http.StatusOK, reply)
}

// Categories lists the distinct FAQ categories.
func (h *Handler) Categories(c *gin.Context) {
	categories, err := h.svc.Categories(c.Request.Context())
	if err != nil {
		abortWithError(c, storageHTTPError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// FAQsByCategory lists question/answer pairs for one category.
func (h *Handler) FAQsByCategory(c *gin.Context) {
	faqs, err := h.svc.FAQsByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		abortWithError(c, storageHTTPError(err))
		return
	}
	if faqs == nil {
		faqs = []chatbot.QA{}
	}
	c.JSON(http.StatusOK, gin.H{"faqs": faqs})
}

// Stats reports aggregate usage data.
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		abortWithError(c, storageHTTPError(err))
		return
	}
	stats.AverageConfidence = math.Round(stats.AverageConfidence*1000) / 1000
	if stats.CommonQueries == nil {
		stats.CommonQueries = []chatbot.CommonQuery{}
	}
	c.JSON(http.StatusOK, stats)
}

func storageHTTPError(err error) *HTTPError {
	if apperrors.IsCode(err, "storage_error") {
		return NewHTTPError(http.StatusServiceUnavailable, "storage_error", "the helpdesk is temporarily unavailable, please try again", err)
	}
	return NewHTTPError(http.StatusInternalServerError, "internal_error", errMessage(err), err)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
