package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// Config holds everything the bot reads from the environment at startup.
type Config struct {
	SlackBotToken      string `env:"SLACK_BOT_TOKEN, required"`
	SlackAppToken      string `env:"SLACK_APP_TOKEN, required"`
	SlackSigningSecret string `env:"SLACK_SIGNING_SECRET"`

	// KerberosAPIURL is the base URL of the Kerberos.io cloud API.
	KerberosAPIURL string `env:"KERBEROS_API_URL, default=https://api.cloud.kerberos.io"`

	// Port is where the diagnostics listener (health, metrics) binds.
	Port string `env:"PORT, default=3000"`

	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`
}

// Load reads configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
