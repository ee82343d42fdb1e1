package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	Analyzer
	CRM
	Gateway
	PostgreSQL
	HTTP
}

type App struct {
	Providers       []string
	RegenBuffer     int
	RegenRetries    int
	RegenRetryDelay time.Duration
}

// Analyzer configures the OpenAI-compatible endpoint used for text analysis.
type Analyzer struct {
	BaseURL  string
	APIKey   string
	Model    string
	MaxChars int
}

// CRM points at the core CRM service (health scoring, action regeneration).
type CRM struct {
	BaseURL string
}

// Gateway points at the storage gateway that proxies provider file APIs.
type Gateway struct {
	BaseURL string
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
	MaxConns int32
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			Providers:       cmd.StringSlice("providers"),
			RegenBuffer:     int(cmd.Int("regen-buffer")),
			RegenRetries:    int(cmd.Int("regen-retries")),
			RegenRetryDelay: cmd.Duration("regen-retry-delay"),
		},
		Analyzer: Analyzer{
			BaseURL:  cmd.String("analyzer-base-url"),
			APIKey:   cmd.String("analyzer-api-key"),
			Model:    cmd.String("analyzer-model"),
			MaxChars: int(cmd.Int("analyzer-max-chars")),
		},
		CRM: CRM{
			BaseURL: cmd.String("crm-base-url"),
		},
		Gateway: Gateway{
			BaseURL: cmd.String("gateway-base-url"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
			MaxConns: int32(cmd.Int("pg-max-conns")),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
	}
}
