package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/antonsh/stockscan/models"
)

const (
	createUser = `INSERT INTO users (username, password_hash, email)
    VALUES ($1, $2, $3)
    RETURNING id, username, password_hash, email, company_id, created_at;`

	findUserByUsername = `SELECT id, username, password_hash, email, company_id, created_at
    FROM users
    WHERE username = $1;`

	getInventoryItem = `SELECT id, company_id, barcode, name, price, qty
    FROM inventory
    WHERE company_id = $1 AND barcode = $2;`

	upsertInventoryItem = `INSERT INTO inventory (company_id, barcode, name, price, qty)
    VALUES ($1, $2, $3, $4, $5)
    ON CONFLICT (company_id, barcode)
    DO UPDATE SET name = EXCLUDED.name, price = EXCLUDED.price, qty = EXCLUDED.qty;`

	adjustInventoryQty = `UPDATE inventory
    SET qty = GREATEST(qty + $3, 0)
    WHERE company_id = $1 AND barcode = $2
    RETURNING id, company_id, barcode, name, price, qty;`

	// Scan lookup is deliberately not company-scoped and selects all columns:
	// the row is normalized afterwards through the historical alias table.
	findAnyByBarcode = `SELECT * FROM inventory WHERE barcode = $1 LIMIT 1;`
)

// buildListInventoryQuery builds the dynamic list/search SELECT for the
// inventory catalog. The company scope is always applied; the optional
// search term matches name or barcode as a case-insensitive substring.
// Rows are ordered by id descending, which callers rely on for
// deterministic pagination.
func buildListInventoryQuery(filter models.InventoryFilter) (string, []any, error) {
	builder := sq.Select("id", "company_id", "barcode", "name", "price", "qty").
		From("inventory").
		Where(sq.Eq{"company_id": filter.CompanyID}).
		OrderBy("id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		PlaceholderFormat(sq.Dollar)

	if query := strings.TrimSpace(filter.Query); query != "" {
		pattern := "%" + query + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"barcode": pattern},
		})
	}

	return builder.ToSql()
}
