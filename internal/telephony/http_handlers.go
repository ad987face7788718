package telephony

import (
	"context"
	"net/http"

	"voice-agent/internal/engine"
	"voice-agent/pkg/logger"

	"github.com/gin-gonic/gin"
)

// TurnResponder is the slice of the response engine the webhook needs.
type TurnResponder interface {
	Respond(ctx context.Context, turn engine.TurnInput) string
	Welcome() string
}

// WebhookHandler converts provider webhooks into engine turns and writes the
// call-control document.
//
// No business logic here. Whatever happens, a syntactically valid webhook
// call gets a 200 with a well-formed document: the provider must always have
// something to play.
type WebhookHandler struct {
	Engine TurnResponder

	// Gather configures the main webhook's gather instruction; its Action
	// must point back at the main webhook route.
	Gather GatherOptions

	// DirectGather configures the direct/bypass route.
	DirectGather GatherOptions
}

const directGreeting = "Hello and welcome to NextCore AI! We are Bangalore's leading digital " +
	"transformation company. We provide AI automation, web development, mobile apps, and " +
	"cloud services. Please tell me how I can help you today."

// HandleTurn serves the main voice webhook for both the GET probe and the
// form-encoded POST turns.
func (h WebhookHandler) HandleTurn(c *gin.Context) {
	log := logger.FromGin(c)

	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodPost {
		log.Warn("unexpected webhook method", "method", c.Request.Method)
		h.write(c, h.Engine.Welcome(), h.Gather)
		return
	}

	turn := engine.TurnInput{}
	form, err := ParseExotelTurn(c.Request)
	if err != nil {
		// A body we cannot parse is treated as a no-input turn, not an error.
		log.Warn("webhook parse failed, treating as no input", "err", err)
	} else {
		turn = form.ToTurnInput()
	}

	log.Info("call turn",
		"call_id", turn.CallID,
		"from", turn.From,
		"has_speech", turn.SpeechText != "",
		"digits", turn.Digits,
		"status", turn.CallStatus,
	)

	h.write(c, h.Engine.Respond(c.Request.Context(), turn), h.Gather)
}

// HandleDirect serves the simplified bypass route with a fixed greeting. Next
// turns still gather through this route's action URL.
func (h WebhookHandler) HandleDirect(c *gin.Context) {
	log := logger.FromGin(c)

	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodPost {
		log.Warn("unexpected direct route method", "method", c.Request.Method)
		h.write(c, h.Engine.Welcome(), h.DirectGather)
		return
	}

	form, err := ParseExotelTurn(c.Request)
	if err != nil {
		log.Warn("direct route parse failed, treating as call start", "err", err)
		h.write(c, directGreeting, h.DirectGather)
		return
	}

	turn := form.ToTurnInput()
	if turn.SpeechText == "" && turn.Digits == "" {
		h.write(c, directGreeting, h.DirectGather)
		return
	}
	h.write(c, h.Engine.Respond(c.Request.Context(), turn), h.DirectGather)
}

func (h WebhookHandler) write(c *gin.Context, message string, opts GatherOptions) {
	c.Header("Content-Type", "application/xml")
	c.String(http.StatusOK, RenderCallML(message, opts))
}
