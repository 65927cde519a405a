package config

import (
	"fmt"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

type Environment string

const (
	Live Environment = "live"
	Beta Environment = "beta"
	Dev  Environment = "dev"
)

type SiteConfig struct {
	Env         Environment
	Addr        string
	PrivateAddr string
	BaseUrl     string
	LogLevel    zerolog.Level

	Postgres PostgresConfig
	Auth     AuthConfig
	Lichess  LichessConfig
	Storage  StorageConfig

	// Where contact-form submissions would be delivered. Submissions are
	// currently only logged; the address shows up in page footers.
	ContactEmail string
}

type PostgresConfig struct {
	User     string
	Password string
	Hostname string
	Port     int
	DbName   string
	LogLevel tracelog.LogLevel
	MinConn  int32
	MaxConn  int32
}

func (info PostgresConfig) DSN() string {
	return fmt.Sprintf("user=%s password=%s host=%s port=%d dbname=%s", info.User, info.Password, info.Hostname, info.Port, info.DbName)
}

type AuthConfig struct {
	CookieDomain string
	CookieSecure bool

	// When set, fresh accounts must confirm their email address before they
	// can sign in, and registration does not start a session.
	RequireEmailConfirmation bool
}

type LichessConfig struct {
	BaseUrl     string
	ExplorerUrl string
	UserAgent   string

	// The academy's own lichess account, used for the Studies page.
	AcademyUsername string
}

type StorageConfig struct {
	Endpoint string
	Region   string
	Key      string
	Secret   string
	Bucket   string
}
