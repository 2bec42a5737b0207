package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/uug-ai/slackbot/internal/bot"
	"github.com/uug-ai/slackbot/internal/config"
	"github.com/uug-ai/slackbot/internal/kerberos"
	"github.com/uug-ai/slackbot/internal/logger"
	"github.com/uug-ai/slackbot/internal/metrics"
	"github.com/uug-ai/slackbot/internal/session"
	"github.com/uug-ai/slackbot/internal/web"
)

func main() {
	// A local .env is optional; real deployments set the environment.
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.New("info", false, os.Stderr)
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.LogPretty, os.Stdout)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	collector := metrics.NewCollector(registry)

	store := session.NewMemoryStore()
	client := kerberos.NewClient(cfg.KerberosAPIURL, collector, log)
	dispatcher := bot.NewDispatcher(client, store, collector, log)

	webServer := web.NewServer(cfg.Port, registry, log)
	go func() {
		if err := webServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("diagnostics server failed")
		}
	}()

	b := bot.New(cfg.SlackBotToken, cfg.SlackAppToken, dispatcher, log)

	log.Info().
		Str("api_url", cfg.KerberosAPIURL).
		Str("port", cfg.Port).
		Msg("⚡️ Kerberos.io Slack bot is running")

	if err := b.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("bot stopped")
	}
}
