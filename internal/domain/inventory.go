package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
)

// Task constants shared by reorder creation and the dashboard listing.
const (
	TaskTypeReorder   = "Reorder"
	TaskStatusPending = "Pending"
	EmployeeSystem    = "System"
)

// InventoryItem is a row of the clothing retail inventory table.
type InventoryItem struct {
	ProductID        string  `json:"product_id" gorm:"primaryKey;column:product_id"`
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	SubCategory      string  `json:"sub_category"`
	Color            string  `json:"color"`
	Size             string  `json:"size"`
	StockQuantity    int     `json:"stock_quantity"`
	ReorderThreshold int     `json:"reorder_threshold"`
	Location         string  `json:"location"`
	SellingPrice     float64 `json:"selling_price"`
	SupplierID       string  `json:"supplier_id" gorm:"column:supplier_id"`
}

func (InventoryItem) TableName() string { return "clothing_retail_inventory" }

// LowStock reports whether the item sits at or below its reorder threshold.
func (i InventoryItem) LowStock() bool { return i.StockQuantity <= i.ReorderThreshold }

// ReorderTask is an employee task row created by the assistant on behalf
// of the "System" employee.
type ReorderTask struct {
	TaskID         string     `json:"task_id" gorm:"primaryKey;column:task_id"`
	EmployeeName   string     `json:"employee_name"`
	EmployeeRole   string     `json:"employee_role"`
	TaskType       string     `json:"task_type"`
	AssignedDate   time.Time  `json:"assigned_date" gorm:"type:date"`
	DueDate        time.Time  `json:"due_date" gorm:"type:date"`
	CompletionDate *time.Time `json:"completion_date,omitempty" gorm:"type:date"`
	Status         string     `json:"status"`
	RelatedProduct string     `json:"related_product"`
}

func (ReorderTask) TableName() string { return "employee_task_logs" }

// SalesTransaction is a row of the retail sales table.
type SalesTransaction struct {
	TransactionID string    `json:"transaction_id" gorm:"primaryKey;column:transaction_id"`
	ProductID     string    `json:"product_id"`
	SaleDate      time.Time `json:"sale_date" gorm:"type:date;index"`
	QuantitySold  int       `json:"quantity_sold"`
	UnitPrice     float64   `json:"unit_price"`
	Revenue       float64   `json:"revenue"`
	StoreLocation string    `json:"store_location"`
}

func (SalesTransaction) TableName() string { return "retail_sales_transactions" }

// SupplierOrder is a row of the combined supplier / purchase order table.
// Supplier IDs in this table use a different format than the inventory
// table (SUP-007 vs SUP00054), hence the suffix matching in the store layer.
type SupplierOrder struct {
	PurchaseOrderID           string      `json:"purchase_order_id" gorm:"primaryKey;column:purchase_order_id"`
	SupplierID                string      `json:"supplier_id" gorm:"index"`
	SupplierName              string      `json:"supplier_name"`
	ContactName               string      `json:"contact_name"`
	ContactEmail              string      `json:"contact_email"`
	PhoneNumber               string      `json:"phone_number"`
	City                      string      `json:"city"`
	State                     string      `json:"state"`
	ProductCategoriesSupplied string      `json:"product_categories_supplied"`
	OrderDate                 time.Time   `json:"order_date" gorm:"type:date;index"`
	DeliveryDate              *time.Time  `json:"delivery_date,omitempty" gorm:"type:date"`
	Status                    OrderStatus `json:"status"`
	TotalCost                 float64     `json:"total_cost"`
	PaymentStatus             string      `json:"payment_status"`
}

func (SupplierOrder) TableName() string { return "supplier_purchase_orders" }

// VoiceLog records one webhook interaction for the dashboard. Entities and
// Result hold the envelope fragments serialized as JSON.
type VoiceLog struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	Transcript string    `json:"transcript"`
	Intent     string    `json:"intent"`
	Entities   string    `json:"entities" gorm:"type:jsonb"`
	Result     string    `json:"result" gorm:"type:jsonb"`
	CreatedAt  time.Time `json:"created_at"`
}

func (VoiceLog) TableName() string { return "voice_logs" }
