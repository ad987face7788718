package httpapi

import (
	"context"
	"net/http"
	"strconv"

	"voice-agent/internal/audit"
	"voice-agent/internal/config"

	"github.com/gin-gonic/gin"
)

// Handlers groups the ops/diagnostic HTTP handlers for dependency injection.
// Keep these thin: call internal services, return JSON. The call-control
// protocol lives in internal/telephony, not here.

// AnswerResolver is the slice of the resolver the diagnostics endpoint uses.
type AnswerResolver interface {
	Resolve(ctx context.Context, question string) string
}

type Handlers struct {
	Resolver AnswerResolver
	Journal  audit.RecentReader
	Contact  config.ContactConfig
}

const sampleQuestion = "What services do you offer?"

// Root is a human-friendly banner listing the service endpoints.
func (h Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "NextCore AI voice agent is running",
		"endpoints": gin.H{
			"exotel_webhook": "/webhooks/exotel/voice",
			"direct_voice":   "/direct-voice",
			"health":         "/healthz",
			"diagnostics":    "/ops/diagnostics",
			"turns":          "/ops/turns",
		},
	})
}

func (h Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "voice-agent"})
}

// Diagnostics resolves a sample question and returns it with the configured
// contact metadata. Smoke-testing aid only; no call-control contract.
func (h Handlers) Diagnostics(c *gin.Context) {
	if h.Resolver == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "resolver not configured"})
		return
	}

	sample := h.Resolver.Resolve(c.Request.Context(), sampleQuestion)
	if len(sample) > 200 {
		sample = sample[:200] + "..."
	}

	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"webhook":         "/webhooks/exotel/voice",
		"sample_question": sampleQuestion,
		"sample_answer":   sample,
		"contact": gin.H{
			"company":  h.Contact.Company,
			"email":    h.Contact.Email,
			"phone":    h.Contact.Phone,
			"location": h.Contact.Location,
		},
	})
}

// RecentTurns returns the tail of the turn journal, newest first.
func (h Handlers) RecentTurns(c *gin.Context) {
	if h.Journal == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "journal not configured"})
		return
	}

	limit := int64(50)
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 1 || n > 500 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 500"})
			return
		}
		limit = n
	}

	events, err := h.Journal.Recent(c.Request.Context(), limit)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "journal read failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(events), "events": events})
}
