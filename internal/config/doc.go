// Package config provides configuration loading, merging, and validation
// facilities for the stockscan server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]. Every security-relevant
// setting carries an insecure development default that must be overridden in
// production.
package config
