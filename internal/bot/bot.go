package bot

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
)

const responseTypeEphemeral = "ephemeral"

// Bot connects the dispatcher to Slack over Socket Mode. Slash commands
// are acked immediately and answered through the command's response URL,
// so every reply stays visible to the invoking user only.
type Bot struct {
	client     *socketmode.Client
	dispatcher *Dispatcher
	log        zerolog.Logger
}

func New(botToken, appToken string, dispatcher *Dispatcher, log zerolog.Logger) *Bot {
	api := slack.New(botToken, slack.OptionAppLevelToken(appToken))

	return &Bot{
		client:     socketmode.New(api),
		dispatcher: dispatcher,
		log:        log,
	}
}

// Run starts the event loop and blocks until the connection ends.
func (b *Bot) Run(ctx context.Context) error {
	go b.eventLoop(ctx)

	if err := b.client.RunContext(ctx); err != nil {
		return errors.Wrap(err, "socket mode connection")
	}
	return nil
}

func (b *Bot) eventLoop(ctx context.Context) {
	for evt := range b.client.Events {
		switch evt.Type {
		case socketmode.EventTypeConnecting:
			b.log.Info().Msg("connecting to Slack")
		case socketmode.EventTypeConnected:
			b.log.Info().Msg("connected to Slack")
		case socketmode.EventTypeConnectionError:
			b.log.Error().Msg("Slack connection error")
		case socketmode.EventTypeSlashCommand:
			cmd, ok := evt.Data.(slack.SlashCommand)
			if !ok {
				continue
			}
			b.client.Ack(*evt.Request)
			go b.handleCommand(ctx, cmd)
		case socketmode.EventTypeIncomingError:
			b.log.Error().Interface("event", evt.Data).Msg("slack bot error")
		}
	}
}

func (b *Bot) handleCommand(ctx context.Context, cmd slack.SlashCommand) {
	b.log.Debug().
		Str("user_id", cmd.UserID).
		Str("command", cmd.Command).
		Msg("slash command received")

	respond := func(text string) error {
		return slack.PostWebhookContext(ctx, cmd.ResponseURL, &slack.WebhookMessage{
			Text:         text,
			ResponseType: responseTypeEphemeral,
		})
	}

	b.dispatcher.Handle(ctx, cmd.UserID, cmd.Text, respond)
}
