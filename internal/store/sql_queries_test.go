package store

import (
	"strings"
	"testing"

	"github.com/antonsh/stockscan/models"
)

func TestBuildListInventoryQuery_NoSearchTerm(t *testing.T) {
	filter := models.InventoryFilter{
		CompanyID: 7,
		Limit:     50,
		Offset:    100,
	}

	query, args, err := buildListInventoryQuery(filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "company_id = $1") {
		t.Errorf("expected company scope in query, got: %s", query)
	}
	if strings.Contains(query, "ILIKE") {
		t.Errorf("expected no ILIKE clause without a search term, got: %s", query)
	}
	if !strings.Contains(query, "ORDER BY id DESC") {
		t.Errorf("expected ORDER BY id DESC, got: %s", query)
	}
	if !strings.Contains(query, "LIMIT 50") {
		t.Errorf("expected LIMIT 50, got: %s", query)
	}
	if !strings.Contains(query, "OFFSET 100") {
		t.Errorf("expected OFFSET 100, got: %s", query)
	}
	if len(args) != 1 {
		t.Fatalf("expected 1 arg, got %d: %v", len(args), args)
	}
	if args[0] != int64(7) {
		t.Errorf("expected company_id arg 7, got %v", args[0])
	}
}

func TestBuildListInventoryQuery_WithSearchTerm(t *testing.T) {
	filter := models.InventoryFilter{
		CompanyID: 7,
		Query:     "  cola  ",
		Limit:     50,
	}

	query, args, err := buildListInventoryQuery(filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "name ILIKE") {
		t.Errorf("expected name ILIKE clause, got: %s", query)
	}
	if !strings.Contains(query, "barcode ILIKE") {
		t.Errorf("expected barcode ILIKE clause, got: %s", query)
	}
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d: %v", len(args), args)
	}
	// the search term is trimmed before the pattern is built
	if args[1] != "%cola%" || args[2] != "%cola%" {
		t.Errorf("expected trimmed %%cola%% patterns, got %v", args[1:])
	}
}

func TestBuildListInventoryQuery_DollarPlaceholders(t *testing.T) {
	filter := models.InventoryFilter{CompanyID: 1, Query: "x", Limit: 10}

	query, _, err := buildListInventoryQuery(filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(query, "?") {
		t.Errorf("expected dollar placeholders, found '?' in: %s", query)
	}
}
