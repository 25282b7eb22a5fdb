package models

// Request payloads accepted by the HTTP API.
//
// Pointer fields distinguish "absent" from zero values so the service layer
// can report the exact missing field and apply documented defaults.

// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpsertRequest is the body of POST /api/inventory.
type UpsertRequest struct {
	CompanyID *int64   `json:"company_id"`
	Barcode   string   `json:"barcode"`
	Name      string   `json:"name"`
	Price     *float64 `json:"price"`
	Qty       *int64   `json:"qty"`
}

// AdjustRequest is the body of POST /api/inventory/adjust.
// Delta is a signed quantity change applied to an existing row.
type AdjustRequest struct {
	CompanyID *int64 `json:"company_id"`
	Barcode   string `json:"barcode"`
	Delta     *int64 `json:"delta"`
}

// ScanRequest is the body of POST /api/scan.
// Mode is one of "stock" or "produce" and defaults to "stock".
type ScanRequest struct {
	Barcode string `json:"barcode"`
	Mode    string `json:"mode"`
}
