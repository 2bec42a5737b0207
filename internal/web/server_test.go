package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uug-ai/slackbot/internal/metrics"
	"github.com/uug-ai/slackbot/internal/web"
)

func TestHealthEndpoint(t *testing.T) {
	srv := web.NewServer("0", prometheus.NewRegistry(), zerolog.Nop())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestMetricsEndpointExposesCollector(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)
	collector.RecordCommand("login", "ok")
	collector.RecordAPIRequest(200, 15*time.Millisecond)
	collector.SetActiveSessions(2)

	srv := web.NewServer("0", registry, zerolog.Nop())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "slackbot_commands_total")
	assert.Contains(t, body, "slackbot_api_requests_total")
	assert.Contains(t, body, "slackbot_active_sessions 2")
}
