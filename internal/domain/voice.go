package domain

import (
	"encoding/json"
	"strconv"
)

// Canonical intents understood by the assistant.
const (
	IntentGetStock          = "get_stock"
	IntentCreateReorder     = "create_reorder"
	IntentGetSalesSummary   = "get_sales_summary"
	IntentGetSupplierInfo   = "get_supplier_info"
	IntentGetDeliveryStatus = "get_delivery_status"
	IntentUnknown           = "unknown"
)

// DefaultIntent is assigned when no classifier produces a usable intent.
// Stock queries are by far the most common request.
const DefaultIntent = IntentGetStock

// VoiceEvent is the webhook payload sent by the wearable device.
// Immutable once received; scoped to a single request.
type VoiceEvent struct {
	Transcript string         `json:"transcript"`
	Entities   map[string]any `json:"entities,omitempty"`
	SessionID  string         `json:"session_id,omitempty"`
	Language   string         `json:"language,omitempty"`
}

// EntitySet is the closed set of entities a classifier can produce.
// Every field is optional; zero values mean "not supplied". Keys the
// device sends that are not listed here are ignored.
type EntitySet struct {
	SKU             string `json:"sku,omitempty"`
	ProductID       string `json:"product_id,omitempty"`
	Name            string `json:"name,omitempty"`
	Category        string `json:"category,omitempty"`
	Color           string `json:"color,omitempty"`
	Size            string `json:"size,omitempty"`
	Quantity        int    `json:"quantity,omitempty"`
	WindowDays      int    `json:"window_days,omitempty"`
	ReorderID       string `json:"reorder_id,omitempty"`
	PurchaseOrderID string `json:"purchase_order_id,omitempty"`
	SupplierID      string `json:"supplier_id,omitempty"`
}

// EntitySetFromMap decodes a loosely-typed entity mapping, tolerating
// numbers arriving as JSON floats or as numeric strings.
func EntitySetFromMap(m map[string]any) EntitySet {
	var e EntitySet
	if m == nil {
		return e
	}
	e.SKU = asString(m["sku"])
	e.ProductID = asString(m["product_id"])
	e.Name = asString(m["name"])
	e.Category = asString(m["category"])
	e.Color = asString(m["color"])
	e.Size = asString(m["size"])
	e.Quantity = asInt(m["quantity"])
	e.WindowDays = asInt(m["window_days"])
	e.ReorderID = asString(m["reorder_id"])
	e.PurchaseOrderID = asString(m["purchase_order_id"])
	e.SupplierID = asString(m["supplier_id"])
	return e
}

// Merge overlays other onto e: non-zero fields of other win.
func (e EntitySet) Merge(other EntitySet) EntitySet {
	out := e
	if other.SKU != "" {
		out.SKU = other.SKU
	}
	if other.ProductID != "" {
		out.ProductID = other.ProductID
	}
	if other.Name != "" {
		out.Name = other.Name
	}
	if other.Category != "" {
		out.Category = other.Category
	}
	if other.Color != "" {
		out.Color = other.Color
	}
	if other.Size != "" {
		out.Size = other.Size
	}
	if other.Quantity != 0 {
		out.Quantity = other.Quantity
	}
	if other.WindowDays != 0 {
		out.WindowDays = other.WindowDays
	}
	if other.ReorderID != "" {
		out.ReorderID = other.ReorderID
	}
	if other.PurchaseOrderID != "" {
		out.PurchaseOrderID = other.PurchaseOrderID
	}
	if other.SupplierID != "" {
		out.SupplierID = other.SupplierID
	}
	return out
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	case float64:
		// Entity IDs sometimes arrive as bare JSON numbers.
		return strconv.FormatInt(int64(s), 10)
	default:
		return ""
	}
}

func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i
		}
	}
	return 0
}

// ParsedIntent is the output of exactly one classifier per request.
type ParsedIntent struct {
	Intent   string    `json:"intent"`
	Entities EntitySet `json:"entities"`
}

// ResponseEnvelope is the uniform wrapper returned to every caller.
// OK is false only when classification failed entirely or no operation
// is registered for the resolved intent; an operation reporting its own
// business failure still yields OK=true.
type ResponseEnvelope struct {
	OK       bool            `json:"ok"`
	Intent   string          `json:"intent"`
	Entities EntitySet       `json:"entities"`
	Result   OperationResult `json:"result"`
	Speech   string          `json:"speech"`
}
