package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// Config holds all runtime configuration for the site. It is loaded from the
// environment once, at startup; a missing required variable aborts the
// process immediately rather than letting pages silently come up empty.
var Config = load()

func load() SiteConfig {
	var missing []string
	optional := func(name, def string) string {
		if v := os.Getenv(name); v != "" {
			return v
		}
		return def
	}

	cfg := SiteConfig{
		Env:         Environment(optional("SCA_ENV", string(Dev))),
		Addr:        optional("SCA_ADDR", "localhost:9001"),
		PrivateAddr: optional("SCA_PRIVATE_ADDR", "localhost:9002"),
		BaseUrl:     optional("SCA_BASE_URL", "http://localhost:9001"),
		LogLevel:    parseLogLevel(optional("SCA_LOG_LEVEL", "info")),

		Postgres: PostgresConfig{
			User:     os.Getenv("SCA_POSTGRES_USER"),
			Password: os.Getenv("SCA_POSTGRES_PASSWORD"),
			Hostname: optional("SCA_POSTGRES_HOSTNAME", "localhost"),
			Port:     parseInt(optional("SCA_POSTGRES_PORT", "5432")),
			DbName:   optional("SCA_POSTGRES_DBNAME", "sca"),
			LogLevel: tracelog.LogLevelWarn,
			MinConn:  int32(parseInt(optional("SCA_POSTGRES_MIN_CONN", "2"))),
			MaxConn:  int32(parseInt(optional("SCA_POSTGRES_MAX_CONN", "10"))),
		},

		Auth: AuthConfig{
			CookieDomain:             optional("SCA_COOKIE_DOMAIN", ""),
			CookieSecure:             parseBool(optional("SCA_COOKIE_SECURE", "false")),
			RequireEmailConfirmation: parseBool(optional("SCA_REQUIRE_EMAIL_CONFIRMATION", "false")),
		},

		Lichess: LichessConfig{
			BaseUrl:         optional("SCA_LICHESS_BASE_URL", "https://lichess.org"),
			ExplorerUrl:     optional("SCA_LICHESS_EXPLORER_URL", "https://explorer.lichess.ovh"),
			UserAgent:       optional("SCA_LICHESS_USER_AGENT", "SmartChessAcademy/1.0"),
			AcademyUsername: optional("SCA_LICHESS_ACADEMY_USERNAME", ""),
		},

		Storage: StorageConfig{
			Endpoint: os.Getenv("SCA_STORAGE_ENDPOINT"),
			Region:   optional("SCA_STORAGE_REGION", "us-east-1"),
			Key:      os.Getenv("SCA_STORAGE_KEY"),
			Secret:   os.Getenv("SCA_STORAGE_SECRET"),
			Bucket:   optional("SCA_STORAGE_BUCKET", "sca-avatars"),
		},

		ContactEmail: optional("SCA_CONTACT_EMAIL", "hello@smartchess.academy"),
	}

	// Avatar storage is all-or-nothing: a partially configured client would
	// only fail at upload time, which is much harder to diagnose.
	if cfg.Storage.Endpoint != "" || cfg.Storage.Key != "" || cfg.Storage.Secret != "" {
		if cfg.Storage.Endpoint == "" {
			missing = append(missing, "SCA_STORAGE_ENDPOINT")
		}
		if cfg.Storage.Key == "" {
			missing = append(missing, "SCA_STORAGE_KEY")
		}
		if cfg.Storage.Secret == "" {
			missing = append(missing, "SCA_STORAGE_SECRET")
		}
	}

	if len(missing) > 0 {
		fmt.Fprintf(os.Stderr, "Missing required configuration: %s\n", strings.Join(missing, ", "))
		os.Exit(1)
	}

	return cfg
}

func (c SiteConfig) AvatarsEnabled() bool {
	return c.Storage.Endpoint != ""
}

// Validate reports which database settings are missing. It runs when a
// connection is first made, not at package init, so that commands and tests
// that never touch the database do not need a full environment.
func (info PostgresConfig) Validate() error {
	var missing []string
	if info.User == "" {
		missing = append(missing, "SCA_POSTGRES_USER")
	}
	if info.Password == "" {
		missing = append(missing, "SCA_POSTGRES_PASSWORD")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

func parseLogLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unrecognized log level %q\n", s)
		os.Exit(1)
	}
	return level
}

func parseInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Expected a number, got %q\n", s)
		os.Exit(1)
	}
	return v
}

func parseBool(s string) bool {
	v, err := strconv.ParseBool(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Expected true or false, got %q\n", s)
		os.Exit(1)
	}
	return v
}
