// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Shvedov

package config

import "time"

// Insecure local-development defaults. Every one of them must be overridden
// in production; they exist so that a bare `go run ./cmd/server` against a
// local postgres works without any environment setup.
const (
	defaultTokenSignKey  = "change-me-in-prod"
	defaultTokenIssuer   = "stockscan"
	defaultTokenDuration = 8 * time.Hour

	defaultDBHost     = "localhost"
	defaultDBPort     = 5432
	defaultDBUser     = "postgres"
	defaultDBPassword = "postgres"
	defaultDBName     = "stockscan"
	defaultDBSSLMode  = "disable"

	defaultHTTPAddress    = ":8080"
	defaultRequestTimeout = 30 * time.Second

	defaultStubBarcode    = "0123456789012"
	defaultCatalogTimeout = 5 * time.Second
)

// applyDefaults fills every zero-valued setting of the merged configuration
// with its documented local-development default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Auth.TokenSignKey == "" {
		cfg.Auth.TokenSignKey = defaultTokenSignKey
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = defaultTokenIssuer
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = defaultTokenDuration
	}

	db := &cfg.Storage.DB
	if db.Host == "" {
		db.Host = defaultDBHost
	}
	if db.Port == 0 {
		db.Port = defaultDBPort
	}
	if db.User == "" {
		db.User = defaultDBUser
	}
	if db.Password == "" {
		db.Password = defaultDBPassword
	}
	if db.Name == "" {
		db.Name = defaultDBName
	}
	if db.SSLMode == "" {
		db.SSLMode = defaultDBSSLMode
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}

	if cfg.Adapter.StubBarcode == "" {
		cfg.Adapter.StubBarcode = defaultStubBarcode
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultCatalogTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Storage.DB.ConnectionString() == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
