package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued at login.
//
// It extends the standard registered claims (sub, exp, iat, iss) with the
// username and the optional company binding of the authenticated user, so
// that protected handlers can scope inventory access without re-reading the
// users table.
type Claims struct {
	jwt.RegisteredClaims

	// Username is the login identifier of the token owner.
	Username string `json:"username"`

	// CompanyID is the company the user belonged to at login time.
	// Omitted for users without a company binding.
	CompanyID *int64 `json:"company_id,omitempty"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
// UserID/Username/CompanyID are parsed copies of the claims populated during
// token construction or validation, avoiding repeated claim inspection.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims is the claim set carried by the token.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`

	// Username is the login identifier extracted from the "username" claim.
	Username string `json:"-"`

	// CompanyID is the company binding extracted from the claims. Nullable.
	CompanyID *int64 `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject)
// claim, parses it as a base-10 int64, and returns the result.
func (t *Token) GetUserID() (int64, error) {
	subject, err := t.Claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
