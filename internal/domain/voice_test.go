package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestEntitySetFromMap_ToleratesLooseTypes(t *testing.T) {
	// Arrange
	m := map[string]any{
		"sku":        float64(8321),
		"quantity":   "25",
		"window_days": float64(30),
		"color":      "red",
		"junk_key":   "ignored",
	}

	// Act
	e := EntitySetFromMap(m)

	// Assert
	if e.SKU != "8321" {
		t.Errorf("numeric sku should stringify, got %q", e.SKU)
	}
	if e.Quantity != 25 {
		t.Errorf("string quantity should parse, got %d", e.Quantity)
	}
	if e.WindowDays != 30 || e.Color != "red" {
		t.Errorf("unexpected set %+v", e)
	}
}

func TestEntitySetMerge_NonZeroFieldsWin(t *testing.T) {
	// Arrange
	base := EntitySet{Color: "red", ProductID: "PROD-001", Quantity: 10}
	overlay := EntitySet{Color: "blue", Size: "M"}

	// Act
	merged := base.Merge(overlay)

	// Assert
	if merged.Color != "blue" {
		t.Errorf("overlay color should win, got %q", merged.Color)
	}
	if merged.ProductID != "PROD-001" || merged.Quantity != 10 {
		t.Errorf("base fields should survive, got %+v", merged)
	}
	if merged.Size != "M" {
		t.Errorf("overlay-only fields should land, got %+v", merged)
	}
}

func TestOperationResult_MarshalShapes(t *testing.T) {
	// Arrange & Act
	failure, _ := json.Marshal(Failed(NotFound("Product not found")))
	empty, _ := json.Marshal(OperationResult{})
	success, _ := json.Marshal(Success(StockResult{Items: []StockItem{{ProductID: "P1", Quantity: 3}}}))

	// Assert
	if !strings.Contains(string(failure), `"error":true`) || !strings.Contains(string(failure), "Product not found") {
		t.Errorf("unexpected failure shape %s", failure)
	}
	if string(empty) != "{}" {
		t.Errorf("nil payload should marshal to an empty object, got %s", empty)
	}
	if !strings.Contains(string(success), `"items"`) {
		t.Errorf("success should expose the payload directly, got %s", success)
	}
}
