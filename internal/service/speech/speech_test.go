package speech

import (
	"strings"
	"testing"

	"github.com/voxretail/assistant/internal/domain"
)

func TestLookup_FallbackChain(t *testing.T) {
	// Arrange & Act & Assert
	if got := Lookup("es", "no_products"); !strings.Contains(got, "No se encontraron") {
		t.Errorf("expected Spanish phrase, got %q", got)
	}
	if got := Lookup("fr", "no_products"); got != translations["en"]["no_products"] {
		t.Errorf("unsupported language should fall back to English, got %q", got)
	}
	if got := Lookup("en", "nonexistent_key"); got != "nonexistent_key" {
		t.Errorf("missing key should come back verbatim, got %q", got)
	}
}

func TestErrorSpeech_KindMapping(t *testing.T) {
	// Arrange
	g := NewGenerator()
	cases := []struct {
		name     string
		kind     domain.ErrorKind
		language string
		wantKey  string
	}{
		{"invalid input picks parse phrase", domain.ErrorInvalidInput, "en", "error_parse"},
		{"not found picks unknown intent phrase", domain.ErrorNotFound, "es", "error_unknown_intent"},
		{"internal picks generic phrase", domain.ErrorInternal, "en", "error_generic"},
		{"unavailable picks generic phrase", domain.ErrorUnavailable, "es", "error_generic"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			got := g.ErrorSpeech(tc.kind, tc.language)

			// Assert
			if want := Lookup(tc.language, tc.wantKey); got != want {
				t.Errorf("expected %q, got %q", want, got)
			}
		})
	}
}

func TestGenerate_StockSingleItem(t *testing.T) {
	// Arrange
	g := NewGenerator()
	result := domain.Success(domain.StockResult{Items: []domain.StockItem{
		{ProductID: "PROD-001", Name: "hoodie", Color: "red", Size: "M", Quantity: 14},
	}})

	// Act
	got := g.Generate(domain.IntentGetStock, result, "en")

	// Assert
	if !strings.Contains(got, "14") || !strings.Contains(got, "hoodies") {
		t.Errorf("expected quantity and pluralized name in speech, got %q", got)
	}
	if !strings.Contains(got, "red") || !strings.Contains(got, "size M") {
		t.Errorf("expected color and size qualifiers, got %q", got)
	}
}

func TestGenerate_StockLowStockWarning(t *testing.T) {
	// Arrange
	g := NewGenerator()
	result := domain.Success(domain.StockResult{Items: []domain.StockItem{
		{ProductID: "PROD-002", Name: "jacket", Quantity: 2, LowStock: true},
	}})

	// Act
	got := g.Generate(domain.IntentGetStock, result, "en")

	// Assert
	if !strings.Contains(got, "running low") {
		t.Errorf("expected low stock warning, got %q", got)
	}
}

func TestGenerate_StockMultipleItems(t *testing.T) {
	// Arrange
	g := NewGenerator()
	result := domain.Success(domain.StockResult{Items: []domain.StockItem{
		{ProductID: "PROD-001", Quantity: 5},
		{ProductID: "PROD-002", Quantity: 7},
	}})

	// Act
	got := g.Generate(domain.IntentGetStock, result, "en")

	// Assert
	if !strings.Contains(got, "2") || !strings.Contains(got, "12") {
		t.Errorf("expected count and summed quantity, got %q", got)
	}
}

func TestGenerate_StockEmptyAndFailure(t *testing.T) {
	// Arrange
	g := NewGenerator()

	// Act & Assert
	empty := g.Generate(domain.IntentGetStock, domain.Success(domain.StockResult{}), "en")
	if empty != translations["en"]["no_products"] {
		t.Errorf("expected no_products phrase, got %q", empty)
	}
	failed := g.Generate(domain.IntentGetStock, domain.Failed(domain.Internal("query failed")), "en")
	if failed != translations["en"]["error_not_found"] {
		t.Errorf("expected error_not_found phrase, got %q", failed)
	}
}

func TestGenerate_ReorderSuccess(t *testing.T) {
	// Arrange
	g := NewGenerator()
	result := domain.Success(domain.ReorderResult{
		TaskID:      "TASK3F2A1B",
		ProductName: "black jeans",
		Quantity:    25,
		Status:      "Pending",
	})

	// Act
	got := g.Generate(domain.IntentCreateReorder, result, "en")

	// Assert
	if !strings.Contains(got, "TASK3F2A1B") || !strings.Contains(got, "25") || !strings.Contains(got, "black jeans") {
		t.Errorf("expected task id, quantity and product name, got %q", got)
	}
}

func TestGenerate_ReorderFailureByKind(t *testing.T) {
	// Arrange
	g := NewGenerator()

	// Act
	notFound := g.Generate(domain.IntentCreateReorder, domain.Failed(domain.NotFound("Product not found")), "en")
	internal := g.Generate(domain.IntentCreateReorder, domain.Failed(domain.Internal("Failed to create reorder task")), "en")

	// Assert
	if notFound != translations["en"]["error_not_found"] {
		t.Errorf("not-found failures should use error_not_found, got %q", notFound)
	}
	if !strings.HasPrefix(internal, translations["en"]["error_reorder"]) {
		t.Errorf("other failures should lead with error_reorder, got %q", internal)
	}
}

func TestGenerate_SalesSummarySpanish(t *testing.T) {
	// Arrange
	g := NewGenerator()
	result := domain.Success(domain.SalesSummaryResult{
		TotalQuantity: 42,
		TotalRevenue:  1234.5,
		WindowDays:    7,
	})

	// Act
	got := g.Generate(domain.IntentGetSalesSummary, result, "es")

	// Assert
	if !strings.Contains(got, "7 días") || !strings.Contains(got, "42 artículos") || !strings.Contains(got, "$1234.50") {
		t.Errorf("expected Spanish sales summary, got %q", got)
	}
}

func TestGenerate_SupplierInfo(t *testing.T) {
	// Arrange
	g := NewGenerator()
	result := domain.Success(domain.SupplierInfoResult{
		SupplierID:   "SUP00054",
		SupplierName: "Acme Textiles",
		ContactName:  "Jordan Reyes",
	})

	// Act
	got := g.Generate(domain.IntentGetSupplierInfo, result, "en")

	// Assert
	if !strings.Contains(got, "Acme Textiles") || !strings.Contains(got, "Jordan Reyes") {
		t.Errorf("expected supplier name and contact, got %q", got)
	}
}

func TestGenerate_DeliveryStatus(t *testing.T) {
	// Arrange
	g := NewGenerator()
	result := domain.Success(domain.DeliveryStatusResult{Orders: []domain.DeliveryOrder{
		{PurchaseOrderID: "12345", Status: "Shipped", DeliveryDate: "2026-09-02"},
		{PurchaseOrderID: "12346", Status: "Pending"},
	}})

	// Act
	got := g.Generate(domain.IntentGetDeliveryStatus, result, "en")

	// Assert
	if !strings.Contains(got, "12345") || !strings.Contains(got, "Shipped") {
		t.Errorf("expected first order id and status, got %q", got)
	}
	if !strings.Contains(got, "2026-09-02") {
		t.Errorf("expected delivery date, got %q", got)
	}
	if !strings.Contains(got, "1 more") {
		t.Errorf("expected mention of remaining orders, got %q", got)
	}
}

func TestGenerate_NeverEmpty(t *testing.T) {
	// Arrange
	g := NewGenerator()
	intents := []string{
		domain.IntentGetStock,
		domain.IntentCreateReorder,
		domain.IntentGetSalesSummary,
		domain.IntentGetSupplierInfo,
		domain.IntentGetDeliveryStatus,
		"something_else",
	}

	// Act & Assert
	for _, intent := range intents {
		for _, lang := range []string{"en", "es", "de", ""} {
			if got := g.Generate(intent, domain.OperationResult{}, lang); got == "" {
				t.Errorf("empty speech for intent %s lang %q", intent, lang)
			}
		}
	}
}
