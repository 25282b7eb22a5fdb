package service

import (
	"strconv"

	"github.com/antonsh/stockscan/models"
)

// scanFieldAliases is the single source of truth for the historical column
// names accepted when normalizing a scan row. Earlier schema generations
// used item_name/quantity/value; the alias lists are ordered by priority and
// the first present, coercible column wins.
var scanFieldAliases = map[string][]string{
	"id":      {"id", "item_id", "inventory_id"},
	"barcode": {"barcode", "code", "upc"},
	"name":    {"name", "item_name", "product_name"},
	"price":   {"price", "value", "unit_price"},
	"qty":     {"qty", "quantity", "stock_qty"},
}

// normalizeScanRow maps a raw column→value record onto the well-typed
// [models.ScanItem] using the alias table above. A missing price stays nil
// (serialized as null); a missing quantity defaults to 0. The barcode falls
// back to the value that was scanned when the row carries none.
func normalizeScanRow(record map[string]any, scannedBarcode string) models.ScanItem {
	item := models.ScanItem{
		Barcode: scannedBarcode,
		Qty:     0,
	}

	if id, ok := firstInt64(record, scanFieldAliases["id"]); ok {
		item.ID = &id
	}
	if barcode, ok := firstString(record, scanFieldAliases["barcode"]); ok {
		item.Barcode = barcode
	}
	if name, ok := firstString(record, scanFieldAliases["name"]); ok {
		item.Name = name
	}
	if price, ok := firstFloat64(record, scanFieldAliases["price"]); ok {
		item.Price = &price
	}
	if qty, ok := firstInt64(record, scanFieldAliases["qty"]); ok {
		item.Qty = qty
	}

	return item
}

func firstInt64(record map[string]any, aliases []string) (int64, bool) {
	for _, alias := range aliases {
		if value, ok := record[alias]; ok {
			if n, ok := coerceInt64(value); ok {
				return n, true
			}
		}
	}
	return 0, false
}

func firstFloat64(record map[string]any, aliases []string) (float64, bool) {
	for _, alias := range aliases {
		if value, ok := record[alias]; ok {
			if f, ok := coerceFloat64(value); ok {
				return f, true
			}
		}
	}
	return 0, false
}

func firstString(record map[string]any, aliases []string) (string, bool) {
	for _, alias := range aliases {
		if value, ok := record[alias]; ok {
			if s, ok := coerceString(value); ok && s != "" {
				return s, true
			}
		}
	}
	return "", false
}

// The driver hands back different Go types depending on the column type and
// schema generation, so coercions accept every shape seen in practice.

func coerceInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int32:
		return int64(v), true
	case int:
		return int64(v), true
	case float64:
		return int64(v), true
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		return n, err == nil
	case []byte:
		n, err := strconv.ParseInt(string(v), 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

func coerceFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	case []byte:
		f, err := strconv.ParseFloat(string(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func coerceString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	default:
		return "", false
	}
}
