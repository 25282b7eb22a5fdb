package models

// Response payloads produced by the HTTP API. Shapes follow the contracts
// consumed by the scanner frontend; renaming a field here is a breaking change.

// ErrorResponse is the uniform error body: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisteredUser is the public view of a freshly created account.
// The password hash is never part of any response.
type RegisteredUser struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Email    *string `json:"email"`
}

// RegisterResponse is the 201 body of POST /api/register.
type RegisterResponse struct {
	Message string         `json:"message"`
	User    RegisteredUser `json:"user"`
}

// SessionUser is the public user view returned alongside a login token.
type SessionUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	CompanyID *int64 `json:"company_id"`
}

// LoginResponse is the 200 body of POST /api/login.
type LoginResponse struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

// IdentityResponse is the 200 body of GET /api/me.
// Identity is entirely token-derived; no store read happens on this path.
type IdentityResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// InventoryListResponse is the 200 body of GET /api/inventory.
type InventoryListResponse struct {
	Items []InventoryItem `json:"items"`
}

// InventoryGetResponse is the body of GET /api/inventory/{barcode}.
// Found is false (with a 404 status) when no row matches.
type InventoryGetResponse struct {
	Found bool           `json:"found"`
	Item  *InventoryItem `json:"item,omitempty"`
}

// UpsertResponse is the 200 body of POST /api/inventory.
type UpsertResponse struct {
	OK bool `json:"ok"`
}

// AdjustResponse is the 200 body of POST /api/inventory/adjust,
// carrying the row as it stands after the delta was applied.
type AdjustResponse struct {
	OK   bool          `json:"ok"`
	Item InventoryItem `json:"item"`
}

// ScanResponse is the 200 body of POST /api/scan when the barcode resolved.
// Source is "local" for inventory hits and "external_stub" for catalog
// provider hits; Actions lists the follow-up operations the frontend offers.
type ScanResponse struct {
	Source  string   `json:"source"`
	Item    ScanItem `json:"item"`
	Actions []string `json:"actions"`
}

// ScanNotFoundResponse is the 404 body of POST /api/scan when neither the
// local inventory nor the external catalog knows the barcode. It is a
// structured negative result, not a plain failure: Suggestion tells the
// caller which mode to try next.
type ScanNotFoundResponse struct {
	Error      string `json:"error"`
	Barcode    string `json:"barcode"`
	Mode       string `json:"mode"`
	Suggestion string `json:"suggestion"`
}
