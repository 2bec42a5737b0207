package bot

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/uug-ai/slackbot/internal/kerberos"
	"github.com/uug-ai/slackbot/internal/metrics"
	"github.com/uug-ai/slackbot/internal/session"
)

// API is the slice of the Kerberos.io client the dispatcher needs.
type API interface {
	Login(ctx context.Context, username, password string) kerberos.Result
	Profile(ctx context.Context, token string) kerberos.Result
}

// RespondFunc delivers an ephemeral reply to the invoking user.
type RespondFunc func(text string) error

const (
	outcomeOK              = "ok"
	outcomeUsage           = "usage"
	outcomeUnknown         = "unknown"
	outcomeUnauthenticated = "unauthenticated"
	outcomeAPIError        = "api_error"
)

// Dispatcher parses slash-command text and routes it to a handler.
type Dispatcher struct {
	api      API
	sessions session.Store
	metrics  metrics.MetricsCollector
	log      zerolog.Logger
}

func NewDispatcher(api API, sessions session.Store, mc metrics.MetricsCollector, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		api:      api,
		sessions: sessions,
		metrics:  mc,
		log:      log,
	}
}

// Handle processes one slash-command invocation from userID. Every path
// ends in a single terminal reply via respond; usage problems and API
// failures are user feedback, never errors.
func (d *Dispatcher) Handle(ctx context.Context, userID, text string, respond RespondFunc) {
	args := strings.Fields(text)
	if len(args) == 0 {
		d.metrics.RecordCommand("", outcomeUsage)
		d.send(respond, msgNoCommand)
		return
	}

	subcommand := strings.ToLower(args[0])

	switch subcommand {
	case "login":
		d.handleLogin(ctx, userID, args, respond)
	case "profile":
		d.handleProfile(ctx, userID, respond)
	case "logout":
		d.handleLogout(userID, respond)
	case "help":
		d.metrics.RecordCommand(subcommand, outcomeOK)
		d.send(respond, msgHelp)
	default:
		d.metrics.RecordCommand(subcommand, outcomeUnknown)
		d.send(respond, msgUnknownCommand(subcommand))
	}
}

func (d *Dispatcher) send(respond RespondFunc, text string) {
	if err := respond(text); err != nil {
		d.log.Error().Err(err).Msg("failed to deliver response")
	}
}

func (d *Dispatcher) updateSessionGauge() {
	n, err := d.sessions.Count()
	if err != nil {
		return
	}
	d.metrics.SetActiveSessions(n)
}
