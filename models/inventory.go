package models

// InventoryItem is a stock-keeping record scoped to one company.
// The pair (CompanyID, Barcode) uniquely identifies at most one row;
// upserts are keyed on it.
type InventoryItem struct {
	ID        int64   `json:"id"`
	CompanyID int64   `json:"company_id"`
	Barcode   string  `json:"barcode"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int64   `json:"qty"`
}

// TableName returns the name of the database table
// associated with the InventoryItem model.
func (i InventoryItem) TableName() string {
	return "inventory"
}

// ScanItem is the normalized view of a row resolved by the scan endpoint.
// Price is a pointer because historical rows may carry no price at all;
// the wire format then shows null rather than 0.
type ScanItem struct {
	ID      *int64   `json:"id"`
	Barcode string   `json:"barcode"`
	Name    string   `json:"name"`
	Price   *float64 `json:"price"`
	Qty     int64    `json:"qty"`
}

// InventoryFilter carries the list/search parameters of the inventory catalog.
type InventoryFilter struct {
	CompanyID int64
	Query     string
	Limit     uint64
	Offset    uint64
}
