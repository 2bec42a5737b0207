package bot_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uug-ai/slackbot/internal/bot"
)

func TestFormatProfileRecognizedFields(t *testing.T) {
	profile := map[string]any{
		"username":     "test@example.com",
		"name":         "Test User",
		"subscription": "Premium",
		"cameras":      float64(5),
		"permissions":  []any{"read", "write", "admin"},
	}

	text := bot.FormatProfile(profile)

	require.True(t, strings.HasPrefix(text, "*📊 Your Kerberos.io Profile*\n\n"))
	assert.Contains(t, text, "*User:* test@example.com")
	assert.Contains(t, text, "*Name:* Test User")
	assert.Contains(t, text, "*Subscription:* Premium")
	assert.Contains(t, text, "*Cameras:* 5")
	assert.Contains(t, text, "*Permissions:* read, write, admin")
}

func TestFormatProfileCamerasListRendersCount(t *testing.T) {
	text := bot.FormatProfile(map[string]any{
		"cameras": []any{"front-door", "garage", "warehouse"},
	})

	assert.Contains(t, text, "*Cameras:* 3")
}

func TestFormatProfileEmailFallsBackForUserLine(t *testing.T) {
	text := bot.FormatProfile(map[string]any{
		"email": "fallback@example.com",
	})

	assert.Contains(t, text, "*User:* fallback@example.com")
}

func TestFormatProfileUsernameWinsOverEmail(t *testing.T) {
	text := bot.FormatProfile(map[string]any{
		"username": "primary@example.com",
		"email":    "fallback@example.com",
	})

	assert.Contains(t, text, "*User:* primary@example.com")
	assert.NotContains(t, text, "fallback@example.com")
}

func TestFormatProfileSkipsFalsyRecognizedFields(t *testing.T) {
	// Zero camera count and empty permission lists render as absent.
	text := bot.FormatProfile(map[string]any{
		"username":     "",
		"name":         "Test User",
		"cameras":      float64(0),
		"permissions":  []any{},
		"subscription": "",
	})

	assert.NotContains(t, text, "*User:*")
	assert.NotContains(t, text, "*Cameras:*")
	assert.NotContains(t, text, "*Permissions:*")
	assert.NotContains(t, text, "*Subscription:*")
	assert.Contains(t, text, "*Name:* Test User")
}

func TestFormatProfileExtraFieldsCapitalizedAndSerialized(t *testing.T) {
	text := bot.FormatProfile(map[string]any{
		"username": "test@example.com",
		"company":  "Kerberos.io",
		"settings": map[string]any{"theme": "dark", "alerts": true},
		"tags":     []any{"a", "b"},
		"ignored":  nil,
	})

	assert.Contains(t, text, "*Company:* \"Kerberos.io\"")
	assert.Contains(t, text, "*Settings:* {\"alerts\":true,\"theme\":\"dark\"}")
	assert.Contains(t, text, "*Tags:* [\"a\",\"b\"]")
	assert.NotContains(t, text, "Ignored")
}

func TestFormatProfileExtraFieldsSortedByKey(t *testing.T) {
	text := bot.FormatProfile(map[string]any{
		"zeta":  "last",
		"alpha": "first",
	})

	require.Less(t, strings.Index(text, "*Alpha:*"), strings.Index(text, "*Zeta:*"))
}

func TestFormatProfileEmpty(t *testing.T) {
	text := bot.FormatProfile(map[string]any{})

	assert.Equal(t, "*📊 Your Kerberos.io Profile*\n\n", text)
}
