// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the customer
// service. It aggregates all sub-configurations and is populated by merging
// values from defaults, environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version and the
	// bearer-token verification parameters.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Telemetry selects the OpenTelemetry exporter used for database traces
	// and connection-pool metrics.
	Telemetry Telemetry `envPrefix:"TELEMETRY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /actuator/info endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// TokenSignKey is the secret key used to verify bearer-token signatures.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer, when set, is compared against the "iss" claim of every
	// bearer token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// RolesClaim is the name of the claim holding the caller's roles.
	// Env: APP_ROLES_CLAIM
	RolesClaim string `env:"ROLES_CLAIM"`

	// RolePrefix is prepended to every role to form an authority
	// (e.g. "ROLE_" turns "admin" into "ROLE_admin").
	// Env: APP_ROLE_PREFIX
	RolePrefix string `env:"ROLE_PREFIX"`

	// RequireAuth rejects requests without a valid bearer token with 401.
	// When false, such requests continue anonymously.
	// Env: APP_REQUIRE_AUTH
	RequireAuth bool `env:"REQUIRE_AUTH"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend and its connection string:
	//   - "postgres://..." or "postgresql://...": PostgreSQL via pgx;
	//   - "sqlite://<path>" or "file:<path>"    : SQLite;
	//   - "memory"                               : in-process map, data is lost on exit.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns limits the number of open connections in the pool.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`

	// MaxIdleConns limits the number of idle connections kept in the pool.
	// Env: STORAGE_DB_MAX_IDLE_CONNS
	MaxIdleConns int `env:"MAX_IDLE_CONNS"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Telemetry holds OpenTelemetry settings.
type Telemetry struct {
	// Exporter is either "none" or "stdout".
	// Env: TELEMETRY_EXPORTER
	Exporter string `env:"EXPORTER"`

	// ServiceName is attached to every exported span and metric.
	// Env: TELEMETRY_SERVICE_NAME
	ServiceName string `env:"SERVICE_NAME"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables (a .env file in the working directory is loaded first, if present)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(".env").
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
