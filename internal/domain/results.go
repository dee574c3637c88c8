package domain

import "encoding/json"

// OperationResult carries either a success payload or a failure marker,
// never both. It marshals to the wire shape the device expects: the
// payload object on success, {"error": true, "error_message": ...} on
// failure.
type OperationResult struct {
	Payload any             `json:"-"`
	Failure *OperationError `json:"-"`
}

func Success(payload any) OperationResult {
	return OperationResult{Payload: payload}
}

func Failed(err *OperationError) OperationResult {
	return OperationResult{Failure: err}
}

// Failed reports whether the operation ended in a business failure.
func (r OperationResult) IsFailure() bool { return r.Failure != nil }

func (r OperationResult) MarshalJSON() ([]byte, error) {
	if r.Failure != nil {
		return json.Marshal(map[string]any{
			"error":         true,
			"error_message": r.Failure.Message,
		})
	}
	if r.Payload == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(r.Payload)
}

// StockItem is the canonical shape inventory rows are normalized into
// before leaving the core.
type StockItem struct {
	ProductID        string  `json:"product_id"`
	Name             string  `json:"name"`
	Category         string  `json:"category,omitempty"`
	Color            string  `json:"color,omitempty"`
	Size             string  `json:"size,omitempty"`
	Quantity         int     `json:"quantity"`
	LowStock         bool    `json:"low_stock"`
	ReorderThreshold int     `json:"reorder_threshold"`
	Location         string  `json:"location,omitempty"`
	SellingPrice     float64 `json:"selling_price,omitempty"`
	SupplierID       string  `json:"supplier_id,omitempty"`
}

// FormatStockItem normalizes a raw inventory row.
func FormatStockItem(item InventoryItem) StockItem {
	return StockItem{
		ProductID:        item.ProductID,
		Name:             item.Name,
		Category:         item.Category,
		Color:            item.Color,
		Size:             item.Size,
		Quantity:         item.StockQuantity,
		LowStock:         item.LowStock(),
		ReorderThreshold: item.ReorderThreshold,
		Location:         item.Location,
		SellingPrice:     item.SellingPrice,
		SupplierID:       item.SupplierID,
	}
}

type StockResult struct {
	Items []StockItem `json:"items"`
}

type ReorderResult struct {
	TaskID      string `json:"task_id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Status      string `json:"status"`
	SupplierID  string `json:"supplier_id,omitempty"`
	DueDate     string `json:"due_date"`
}

type SalesSummaryResult struct {
	TotalQuantity    int     `json:"total_quantity"`
	TotalRevenue     float64 `json:"total_revenue"`
	WindowDays       int     `json:"window_days"`
	TransactionCount int     `json:"transaction_count"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
}

type SupplierInfoResult struct {
	SupplierID        string `json:"supplier_id"`
	SupplierName      string `json:"supplier_name"`
	ContactName       string `json:"contact_name,omitempty"`
	ContactEmail      string `json:"contact_email,omitempty"`
	Phone             string `json:"phone,omitempty"`
	City              string `json:"city,omitempty"`
	State             string `json:"state,omitempty"`
	ProductCategories string `json:"product_categories,omitempty"`
	Note              string `json:"note,omitempty"`
}

type DeliveryOrder struct {
	PurchaseOrderID   string  `json:"purchase_order_id"`
	SupplierName      string  `json:"supplier_name,omitempty"`
	Status            string  `json:"status"`
	OrderDate         string  `json:"order_date,omitempty"`
	DeliveryDate      string  `json:"delivery_date,omitempty"`
	DaysUntilDelivery *int    `json:"days_until_delivery,omitempty"`
	TotalCost         float64 `json:"total_cost,omitempty"`
	PaymentStatus     string  `json:"payment_status,omitempty"`
}

type DeliveryStatusResult struct {
	Orders []DeliveryOrder `json:"orders"`
}
