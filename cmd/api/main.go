package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voice-agent/internal/answer"
	"voice-agent/internal/audit"
	"voice-agent/internal/auth"
	"voice-agent/internal/config"
	"voice-agent/internal/engine"
	"voice-agent/internal/knowledge"
	"voice-agent/pkg/logger"
	"voice-agent/pkg/utils"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
	openai "github.com/sashabaranov/go-openai"
)

func main() {
	// Root context that cancels on shutdown
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	log := logger.New(cfg.App.Env)
	slog.SetDefault(log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Knowledge store: postgres when configured, the seed corpus otherwise.
	var knowledgeRepo knowledge.Repository = knowledge.NewMemoryRepository(nil)
	if cfg.HasPostgres() {
		db, err := utils.OpenPostgres(rootCtx, "pgx", cfg.PostgresDSN(), utils.PostgresPoolConfig{})
		if err != nil {
			log.Error("postgres init failed", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		knowledgeRepo = knowledge.NewPostgresRepository(db)
		log.Info("knowledge store: postgres")
	} else {
		log.Info("knowledge store: in-memory seed corpus")
	}

	// Turn journal: redis when configured, process memory otherwise.
	memJournal := audit.NewMemoryRepo()
	var journalRepo audit.Repository = memJournal
	var journalReader audit.RecentReader = memJournal
	if cfg.HasRedis() {
		rdb, err := utils.OpenRedis(rootCtx, utils.RedisConfig{Addr: cfg.RedisAddr()})
		if err != nil {
			log.Error("redis init failed", "err", err)
			os.Exit(1)
		}
		defer rdb.Close()
		redisJournal := audit.NewRedisRepo(rdb)
		journalRepo, journalReader = redisJournal, redisJournal
		log.Info("turn journal: redis")
	}

	var chat answer.ChatClient
	if cfg.OpenAI.APIKey != "" {
		chat = openai.NewClient(cfg.OpenAI.APIKey)
	} else {
		log.Warn("OPENAI_API_KEY not set; answering from keyword fallback only")
	}

	backend := answer.NewOpenAIBackend(chat, knowledge.NewService(knowledgeRepo), answer.OpenAIBackendConfig{
		Model:   cfg.OpenAI.Model,
		Timeout: cfg.OpenAI.Timeout,
	}, log)
	resolver := answer.NewResolver(backend, log)
	journal := audit.NewService(journalRepo, log)
	eng := engine.New(resolver, backend, journal, log)

	var opsAuth *auth.Manager
	if cfg.Ops.JWTSecret != "" {
		opsAuth, err = auth.NewManager(cfg.Ops.JWTSecret, cfg.Ops.JWTIssuer, cfg.Ops.JWTAudience, cfg.Ops.TokenTTL)
		if err != nil {
			log.Error("ops auth init failed", "err", err)
			os.Exit(1)
		}
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.Middleware(log))

	registerRoutes(r, appDeps{
		cfg:      cfg,
		engine:   eng,
		resolver: resolver,
		journal:  journalReader,
		opsAuth:  opsAuth,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("api listening", "addr", srv.Addr, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "err", err)
			stop()
		}
	}()

	<-rootCtx.Done()
	log.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", "err", err)
	}
}
