package main

import (
	"voice-agent/internal/answer"
	"voice-agent/internal/audit"
	"voice-agent/internal/auth"
	"voice-agent/internal/config"
	"voice-agent/internal/engine"
	"voice-agent/internal/httpapi"
	"voice-agent/internal/telephony"

	"github.com/gin-gonic/gin"
)

type appDeps struct {
	cfg      config.Config
	engine   *engine.Engine
	resolver *answer.Resolver
	journal  audit.RecentReader
	opsAuth  *auth.Manager
}

// registerRoutes wires HTTP routes to handlers.
// Keep this file free of business logic. Handlers delegate to internal modules.
func registerRoutes(r *gin.Engine, d appDeps) {
	ops := httpapi.Handlers{
		Resolver: d.resolver,
		Journal:  d.journal,
		Contact:  d.cfg.Contact,
	}

	// public
	r.GET("/", ops.Root)
	r.GET("/healthz", ops.Health)

	// Provider webhooks (public: the provider cannot send bearer tokens).
	// Registered for any verb so an unexpected method still gets a spoken
	// reply instead of a 404.
	{
		webhook := telephony.WebhookHandler{
			Engine:       d.engine,
			Gather:       gatherOptions(d.cfg, d.cfg.Gather.ActionPath),
			DirectGather: gatherOptions(d.cfg, d.cfg.Gather.DirectPath),
		}
		r.Any(d.cfg.Gather.ActionPath, webhook.HandleTurn)
		r.Any(d.cfg.Gather.DirectPath, webhook.HandleDirect)
	}

	// ops group. Token auth is enforced whenever a secret is configured;
	// config.Validate makes the secret mandatory in production.
	opsGroup := r.Group("/ops")
	if d.opsAuth != nil {
		opsGroup.Use(auth.RequireOpsToken(d.opsAuth))
	}
	{
		opsGroup.GET("/diagnostics", ops.Diagnostics)
		opsGroup.GET("/turns", ops.RecentTurns)
	}
}

func gatherOptions(cfg config.Config, action string) telephony.GatherOptions {
	return telephony.GatherOptions{
		Input:         cfg.Gather.InputModes,
		Timeout:       cfg.Gather.TimeoutSeconds,
		SpeechTimeout: cfg.Gather.SpeechTimeout,
		Action:        action,
		Voice:         cfg.Gather.Voice,
		Language:      cfg.Gather.Language,
	}
}
