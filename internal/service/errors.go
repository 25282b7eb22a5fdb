package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDataProvided is returned when a request is missing required
	// fields or carries malformed values. Mapped to 400 at the HTTP boundary.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is the single generic login failure. It covers
	// both "unknown user" and "wrong password" so that responses cannot be
	// used to enumerate usernames.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenIsExpired is returned when a presented token failed validation
	// because its expiry is in the past.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrTokenInvalid is returned for every other token validation failure
	// (bad signature, wrong issuer, malformed).
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenCreationFailed is returned when signing a new token fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrInvalidMode is returned when a scan request names a mode other than
	// "stock" or "produce".
	ErrInvalidMode = errors.New(`mode must be "stock" or "produce"`)
)

// NotInCatalogError is the structured negative result of a scan: neither the
// local inventory nor the external catalog knows the barcode. It is mapped
// to a 404 with actionable guidance rather than a bare failure.
type NotInCatalogError struct {
	Barcode string
	Mode    string
}

func (e *NotInCatalogError) Error() string {
	return fmt.Sprintf("barcode %s not in catalog (mode %s)", e.Barcode, e.Mode)
}

// Suggestion returns the alternate workflow mode the caller should try next:
// scans in stock mode suggest produce and vice versa.
func (e *NotInCatalogError) Suggestion() string {
	if e.Mode == ModeProduce {
		return "switch_to_stock"
	}
	return "switch_to_produce"
}
