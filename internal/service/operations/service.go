// Package operations implements the data operations behind each voice
// intent. Operations never return Go errors: every outcome, including
// store failures, is reported as a domain.OperationResult so the caller
// always has something to speak.
package operations

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/voxretail/assistant/internal/domain"
	"github.com/voxretail/assistant/internal/ports"
)

const (
	// MaxQueryResults bounds inventory searches.
	MaxQueryResults = 20
	// DefaultReorderQuantity is used when the request names no quantity.
	DefaultReorderQuantity = 50
	// DefaultSalesWindowDays is the lookback when none is requested.
	DefaultSalesWindowDays = 7
	// MaxSalesWindowDays caps the requested lookback.
	MaxSalesWindowDays = 365
	// ReorderDueDays is the due date offset of a new reorder task.
	ReorderDueDays = 7
	// MaxDeliveryOrders bounds the open-order listing.
	MaxDeliveryOrders = 5
	// salesSampleLimit bounds the fallback date sample when the latest
	// sale date cannot be read directly.
	salesSampleLimit = 1000
	// stockCacheTTL keeps repeated stock transcripts off the store.
	stockCacheTTL = 30 * time.Second
)

type Service struct {
	inventory ports.InventoryRepository
	tasks     ports.TaskRepository
	sales     ports.SalesRepository
	suppliers ports.SupplierOrderRepository
	cache     ports.Cache
	log       *zap.Logger

	// now is swapped in tests to pin the reference date.
	now func() time.Time
}

func NewService(
	inventory ports.InventoryRepository,
	tasks ports.TaskRepository,
	sales ports.SalesRepository,
	suppliers ports.SupplierOrderRepository,
	cache ports.Cache,
	log *zap.Logger,
) *Service {
	return &Service{
		inventory: inventory,
		tasks:     tasks,
		sales:     sales,
		suppliers: suppliers,
		cache:     cache,
		log:       log,
		now:       time.Now,
	}
}

// stockFilter maps entity fields onto an inventory filter. A bare SKU
// stands in for the product ID when no explicit ID was given.
func stockFilter(e domain.EntitySet) ports.StockFilter {
	productID := e.ProductID
	if productID == "" {
		productID = e.SKU
	}
	return ports.StockFilter{
		ProductID: productID,
		Name:      e.Name,
		Category:  e.Category,
		Color:     e.Color,
		Size:      e.Size,
	}
}

// GetStock looks up inventory rows matching the requested attributes.
// Results are cached briefly keyed by the normalized filter.
func (s *Service) GetStock(ctx context.Context, e domain.EntitySet) domain.OperationResult {
	filter := stockFilter(e)
	key := stockCacheKey(filter)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil {
			var result domain.StockResult
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return domain.Success(result)
			}
		}
	}

	rows, err := s.inventory.Search(ctx, filter, MaxQueryResults)
	if err != nil {
		s.log.Error("inventory search failed", zap.Error(err))
		return domain.Failed(domain.Internal("Database error"))
	}

	items := make([]domain.StockItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.FormatStockItem(row))
	}
	result := domain.StockResult{Items: items}

	if s.cache != nil {
		if payload, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(ctx, key, payload, stockCacheTTL); err != nil {
				s.log.Debug("stock cache write failed", zap.Error(err))
			}
		}
	}
	return domain.Success(result)
}

func stockCacheKey(f ports.StockFilter) string {
	return strings.ToLower(strings.Join([]string{
		"stock", f.ProductID, f.Name, f.Category, f.Color, f.Size,
	}, ":"))
}

// CreateReorder locates the best-matching product and files a reorder
// task on behalf of the System employee. Not idempotent: repeating the
// same request creates another task with a fresh ID.
func (s *Service) CreateReorder(ctx context.Context, e domain.EntitySet) domain.OperationResult {
	quantity := e.Quantity
	if quantity <= 0 {
		quantity = DefaultReorderQuantity
	}

	rows, err := s.inventory.Search(ctx, stockFilter(e), 1)
	if err != nil {
		s.log.Error("product lookup for reorder failed", zap.Error(err))
		return domain.Failed(domain.Internal("Database error"))
	}
	if len(rows) == 0 {
		return domain.Failed(domain.NotFound("Product not found"))
	}
	product := rows[0]

	today := dateOnly(s.now())
	task := &domain.ReorderTask{
		TaskID:         fmt.Sprintf("TASK%s", strings.ToUpper(uuid.NewString()[:6])),
		EmployeeName:   domain.EmployeeSystem,
		EmployeeRole:   domain.EmployeeSystem,
		TaskType:       domain.TaskTypeReorder,
		AssignedDate:   today,
		DueDate:        today.AddDate(0, 0, ReorderDueDays),
		Status:         domain.TaskStatusPending,
		RelatedProduct: product.ProductID,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		s.log.Error("reorder task insert failed", zap.Error(err), zap.String("product_id", product.ProductID))
		return domain.Failed(domain.Internal("Failed to create reorder task"))
	}

	return domain.Success(domain.ReorderResult{
		TaskID:      task.TaskID,
		ProductID:   product.ProductID,
		ProductName: product.Name,
		Quantity:    quantity,
		Status:      "pending",
		SupplierID:  product.SupplierID,
		DueDate:     task.DueDate.Format("2006-01-02"),
	})
}

// GetSalesSummary totals quantity and revenue over a lookback window
// anchored to the most recent sale date rather than the wall clock, so
// historical datasets still produce meaningful summaries.
func (s *Service) GetSalesSummary(ctx context.Context, e domain.EntitySet) domain.OperationResult {
	windowDays := e.WindowDays
	if windowDays <= 0 {
		windowDays = DefaultSalesWindowDays
	}
	if windowDays > MaxSalesWindowDays {
		windowDays = MaxSalesWindowDays
	}

	reference := s.salesReferenceDate(ctx)
	start := reference.AddDate(0, 0, -windowDays)

	txs, err := s.sales.FindBetween(ctx, start, reference)
	if err != nil {
		s.log.Error("sales range query failed", zap.Error(err))
		return domain.Failed(domain.Internal("Database error"))
	}

	totalQuantity := 0
	totalRevenue := 0.0
	for _, tx := range txs {
		totalQuantity += tx.QuantitySold
		totalRevenue += tx.Revenue
	}

	return domain.Success(domain.SalesSummaryResult{
		TotalQuantity:    totalQuantity,
		TotalRevenue:     math.Round(totalRevenue*100) / 100,
		WindowDays:       windowDays,
		TransactionCount: len(txs),
		StartDate:        start.Format("2006-01-02"),
		EndDate:          reference.Format("2006-01-02"),
	})
}

// salesReferenceDate picks the window end: the latest sale date when
// one can be read, the max of a bounded sample when it cannot, and
// today when the table is empty.
func (s *Service) salesReferenceDate(ctx context.Context) time.Time {
	latest, err := s.sales.LatestSaleDate(ctx)
	if err == nil && latest != nil {
		return dateOnly(*latest)
	}
	if err != nil {
		s.log.Debug("latest sale date unavailable, sampling", zap.Error(err))
		dates, sampleErr := s.sales.RecentDates(ctx, salesSampleLimit)
		if sampleErr == nil && len(dates) > 0 {
			max := dates[0]
			for _, d := range dates[1:] {
				if d.After(max) {
					max = d
				}
			}
			return dateOnly(max)
		}
	}
	return dateOnly(s.now())
}

// GetSupplierInfo resolves the supplier behind a product. Supplier IDs
// differ in format between the inventory and supplier tables, so the
// match runs on the trailing characters of the ID.
func (s *Service) GetSupplierInfo(ctx context.Context, e domain.EntitySet) domain.OperationResult {
	productID := e.ProductID
	if productID == "" {
		productID = e.SKU
	}
	if productID == "" {
		return domain.Failed(domain.InvalidInput("Product ID required"))
	}

	product, err := s.inventory.FindByID(ctx, productID)
	if err != nil {
		s.log.Error("product lookup for supplier failed", zap.Error(err))
		return domain.Failed(domain.Internal("Database error"))
	}
	if product == nil {
		return domain.Failed(domain.NotFound("Product not found"))
	}
	if product.SupplierID == "" {
		return domain.Failed(domain.NotFound("Supplier ID not found for this product"))
	}

	suffix := product.SupplierID
	if len(suffix) > 3 {
		suffix = suffix[len(suffix)-3:]
	}
	order, err := s.suppliers.FindBySupplierSuffix(ctx, suffix)
	if err != nil {
		s.log.Error("supplier suffix lookup failed", zap.Error(err))
		return domain.Failed(domain.Internal("Database error"))
	}
	if order == nil {
		// Mismatched ID formats can defeat the suffix match entirely;
		// fall back to any supplier on file.
		order, err = s.suppliers.First(ctx)
		if err != nil {
			s.log.Error("supplier fallback lookup failed", zap.Error(err))
			return domain.Failed(domain.Internal("Database error"))
		}
	}
	if order == nil {
		return domain.Failed(domain.NotFound("Supplier information not found"))
	}

	name := product.Name
	if name == "" {
		name = productID
	}
	return domain.Success(domain.SupplierInfoResult{
		SupplierID:        order.SupplierID,
		SupplierName:      order.SupplierName,
		ContactName:       order.ContactName,
		ContactEmail:      order.ContactEmail,
		Phone:             order.PhoneNumber,
		City:              order.City,
		State:             order.State,
		ProductCategories: order.ProductCategoriesSupplied,
		Note:              fmt.Sprintf("Supplier info for product: %s", name),
	})
}

// GetDeliveryStatus reports open purchase orders. Lookup precedence:
// exact purchase order ID, then latest order of a supplier, then the
// most recent pending or shipped orders.
func (s *Service) GetDeliveryStatus(ctx context.Context, e domain.EntitySet) domain.OperationResult {
	var (
		rows []domain.SupplierOrder
		err  error
	)

	poID := e.PurchaseOrderID
	if poID == "" {
		poID = e.ReorderID
	}

	switch {
	case poID != "":
		var order *domain.SupplierOrder
		order, err = s.suppliers.FindByPurchaseOrderID(ctx, poID)
		if order != nil {
			rows = []domain.SupplierOrder{*order}
		}
	case e.SupplierID != "":
		var order *domain.SupplierOrder
		order, err = s.suppliers.FindLatestBySupplier(ctx, e.SupplierID)
		if order != nil {
			rows = []domain.SupplierOrder{*order}
		}
	default:
		rows, err = s.suppliers.FindRecentByStatus(ctx,
			[]domain.OrderStatus{domain.OrderStatusPending, domain.OrderStatusShipped},
			MaxDeliveryOrders)
	}
	if err != nil {
		s.log.Error("delivery status query failed", zap.Error(err))
		return domain.Failed(domain.Internal("Database error"))
	}
	if len(rows) == 0 {
		return domain.Failed(domain.NotFound("No delivery information found"))
	}

	today := dateOnly(s.now())
	orders := make([]domain.DeliveryOrder, 0, len(rows))
	for _, row := range rows {
		order := domain.DeliveryOrder{
			PurchaseOrderID: row.PurchaseOrderID,
			SupplierName:    row.SupplierName,
			Status:          string(row.Status),
			OrderDate:       row.OrderDate.Format("2006-01-02"),
			TotalCost:       row.TotalCost,
			PaymentStatus:   row.PaymentStatus,
		}
		if order.Status == "" {
			order.Status = "unknown"
		}
		if row.DeliveryDate != nil {
			order.DeliveryDate = row.DeliveryDate.Format("2006-01-02")
			days := int(dateOnly(*row.DeliveryDate).Sub(today).Hours() / 24)
			order.DaysUntilDelivery = &days
		}
		orders = append(orders, order)
	}
	return domain.Success(domain.DeliveryStatusResult{Orders: orders})
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
