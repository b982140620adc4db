// Package config loads the server configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// MySQLOptions point at the read-only legacy catalog database.
type MySQLOptions struct {
	Host     string `env:"APP_DB_HOST" envDefault:"localhost"`
	Port     int    `env:"APP_DB_PORT" envDefault:"3306"`
	Name     string `env:"APP_DB_NAME" envDefault:"catalog"`
	User     string `env:"APP_DB_USER" envDefault:"root"`
	Password string `env:"APP_DB_PASSWORD" envDefault:""`
}

// DSN renders a go-sql-driver connection string. multiStatements is required
// because the legacy query templates set session variables before selecting.
func (o MySQLOptions) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?multiStatements=true&parseTime=true",
		o.User, o.Password, o.Host, o.Port, o.Name)
}

// PostgresOptions point at the curated portal database (users and projects).
type PostgresOptions struct {
	Host     string `env:"USERS_DB_HOST" envDefault:"localhost"`
	Port     int    `env:"USERS_DB_PORT" envDefault:"5433"`
	Name     string `env:"USERS_DB_NAME" envDefault:"users_db"`
	User     string `env:"USERS_DB_USER" envDefault:"users_admin"`
	Password string `env:"USERS_DB_PASSWORD" envDefault:"users_password"`
}

func (o PostgresOptions) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s dbname=%s password=%s sslmode=disable",
		o.Host, o.Port, o.User, o.Name, o.Password)
}

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	AppLocale string `env:"APP_DB_LOCALE" envDefault:"рус"`

	// Base directory of the legacy SQL template tree.
	SQLTemplateBase string `env:"SQL_EXAMPLE_BASE" envDefault:"sql_example"`

	AppDB   MySQLOptions
	UsersDB PostgresOptions

	// Curated projects table; may be schema-qualified.
	ProjectsTable string `env:"USERS_PROJECTS_TABLE" envDefault:"projects"`

	JWTSecret    string        `env:"JWT_SECRET" envDefault:"dev-secret-change-in-production"`
	JWTExpiresIn time.Duration `env:"JWT_EXPIRES_IN" envDefault:"24h"`

	// Optional; when empty the in-memory revocation list is used.
	RedisURL string `env:"REDIS_URL"`
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load reads .env (when present) and parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
