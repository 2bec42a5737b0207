package bot

import (
	"context"
	"time"

	"github.com/uug-ai/slackbot/internal/session"
)

func (d *Dispatcher) handleLogin(ctx context.Context, userID string, args []string, respond RespondFunc) {
	// args[0] is the subcommand itself.
	if len(args) < 3 {
		d.metrics.RecordCommand("login", outcomeUsage)
		d.send(respond, msgLoginUsage)
		return
	}

	username := args[1]
	password := args[2]

	d.send(respond, msgAuthenticating)

	result := d.api.Login(ctx, username, password)
	if !result.Success {
		d.metrics.RecordCommand("login", outcomeAPIError)
		d.send(respond, msgLoginFailed(result.Error))
		return
	}

	token, _ := result.Data["token"].(string)
	if token == "" {
		token, _ = result.Data["access_token"].(string)
	}

	if err := d.sessions.Save(userID, &session.Session{
		Token:     token,
		Username:  username,
		LoginTime: time.Now(),
	}); err != nil {
		d.log.Error().Err(err).Str("user_id", userID).Msg("failed to save session")
	}
	d.updateSessionGauge()

	d.metrics.RecordCommand("login", outcomeOK)
	d.send(respond, msgLoginSuccess(username))
}

func (d *Dispatcher) handleProfile(ctx context.Context, userID string, respond RespondFunc) {
	sess, err := d.sessions.Get(userID)
	if err != nil {
		d.log.Error().Err(err).Str("user_id", userID).Msg("failed to read session")
	}
	if sess == nil {
		d.metrics.RecordCommand("profile", outcomeUnauthenticated)
		d.send(respond, msgNotLoggedIn)
		return
	}

	d.send(respond, msgFetchingProfile)

	result := d.api.Profile(ctx, sess.Token)
	if !result.Success {
		d.metrics.RecordCommand("profile", outcomeAPIError)
		d.send(respond, msgProfileFailed(result.Error))

		// Any profile failure invalidates the session, expired token or
		// not; the next command starts from "not logged in".
		if err := d.sessions.Delete(userID); err != nil {
			d.log.Error().Err(err).Str("user_id", userID).Msg("failed to delete session")
		}
		d.updateSessionGauge()
		return
	}

	d.metrics.RecordCommand("profile", outcomeOK)
	d.send(respond, FormatProfile(result.Data))
}

func (d *Dispatcher) handleLogout(userID string, respond RespondFunc) {
	sess, err := d.sessions.Get(userID)
	if err != nil {
		d.log.Error().Err(err).Str("user_id", userID).Msg("failed to read session")
	}
	if sess == nil {
		d.metrics.RecordCommand("logout", outcomeUnauthenticated)
		d.send(respond, msgLogoutNotLoggedIn)
		return
	}

	if err := d.sessions.Delete(userID); err != nil {
		d.log.Error().Err(err).Str("user_id", userID).Msg("failed to delete session")
	}
	d.updateSessionGauge()

	d.metrics.RecordCommand("logout", outcomeOK)
	d.send(respond, msgLogoutSuccess(sess.Username))
}
