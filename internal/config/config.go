// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Shvedov

package config

import (
	"fmt"
	"time"
)

// StructuredConfig is the top-level configuration container for the stockscan
// server. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds token signing parameters.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds the relational database connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds configuration for the external barcode catalog provider.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Auth holds token lifecycle configuration.
type Auth struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential and overridden outside local development.
	// Env: AUTH_TOKEN_SIGN_KEY. Insecure default: "change-me-in-prod".
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// It identifies the service that issued the token and is validated on
	// every authenticated request.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "8h", "30m").
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the PostgreSQL backend.
// Either DSN is set directly, or it is assembled from the individual
// host/user/password/name fields by [DB.ConnectionString].
type DB struct {
	// DSN is the full PostgreSQL Data Source Name. When non-empty it takes
	// precedence over the individual fields below.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Host is the database server host. Env: STORAGE_DB_HOST
	Host string `env:"HOST"`

	// Port is the database server port. Env: STORAGE_DB_PORT
	Port int `env:"PORT"`

	// User is the database role name. Env: STORAGE_DB_USER
	User string `env:"USER"`

	// Password is the database role password. Env: STORAGE_DB_PASSWORD
	// Insecure default for local development only.
	Password string `env:"PASSWORD"`

	// Name is the database name. Env: STORAGE_DB_NAME
	Name string `env:"NAME"`

	// SSLMode is the libpq sslmode parameter. Env: STORAGE_DB_SSLMODE
	SSLMode string `env:"SSLMODE"`
}

// ConnectionString returns the DSN to use for opening the database: the
// explicit DSN when configured, otherwise one assembled from the individual
// connection fields.
func (db DB) ConnectionString() string {
	if db.DSN != "" {
		return db.DSN
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		db.User, db.Password, db.Host, db.Port, db.Name, db.SSLMode)
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
}

// Adapter holds configuration for the external barcode catalog integration.
type Adapter struct {
	// CatalogURL is the base URL of an external UPC catalog service.
	// When empty, the built-in stub catalog is used instead.
	// Env: ADAPTER_CATALOG_URL
	CatalogURL string `env:"CATALOG_URL"`

	// RequestTimeout bounds outbound catalog lookups. Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// StubBarcode is the single demo barcode recognised by the stub catalog.
	// Env: ADAPTER_STUB_BARCODE
	StubBarcode string `env:"STUB_BARCODE"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Missing values fall back to documented local-development defaults.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
