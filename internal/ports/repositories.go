package ports

import (
	"context"
	"time"

	"github.com/voxretail/assistant/internal/domain"
)

// StockFilter narrows inventory searches. An exact ProductID match wins;
// the remaining fields combine as partial (case-insensitive) matches,
// except Size which is exact.
type StockFilter struct {
	ProductID string
	Name      string
	Category  string
	Color     string
	Size      string
}

// Empty reports whether no filter field is set.
func (f StockFilter) Empty() bool {
	return f.ProductID == "" && f.Name == "" && f.Category == "" && f.Color == "" && f.Size == ""
}

type InventoryRepository interface {
	Search(ctx context.Context, filter StockFilter, limit int) ([]domain.InventoryItem, error)
	FindByID(ctx context.Context, productID string) (*domain.InventoryItem, error)
	FindByIDs(ctx context.Context, productIDs []string) ([]domain.InventoryItem, error)
	SaveBatch(ctx context.Context, items []domain.InventoryItem) error
}

type TaskRepository interface {
	Create(ctx context.Context, task *domain.ReorderTask) error
	FindReorders(ctx context.Context, limit int) ([]domain.ReorderTask, error)
	SaveBatch(ctx context.Context, tasks []domain.ReorderTask) error
}

type SalesRepository interface {
	// LatestSaleDate returns nil when the table is empty.
	LatestSaleDate(ctx context.Context) (*time.Time, error)
	// RecentDates returns a bounded sample of sale dates, newest first.
	RecentDates(ctx context.Context, limit int) ([]time.Time, error)
	FindBetween(ctx context.Context, start, end time.Time) ([]domain.SalesTransaction, error)
	SaveBatch(ctx context.Context, txs []domain.SalesTransaction) error
}

type SupplierOrderRepository interface {
	FindByPurchaseOrderID(ctx context.Context, poID string) (*domain.SupplierOrder, error)
	FindLatestBySupplier(ctx context.Context, supplierID string) (*domain.SupplierOrder, error)
	FindRecentByStatus(ctx context.Context, statuses []domain.OrderStatus, limit int) ([]domain.SupplierOrder, error)
	// FindBySupplierSuffix matches supplier IDs by trailing fragment; the
	// supplier table and the inventory table disagree on ID formats.
	FindBySupplierSuffix(ctx context.Context, suffix string) (*domain.SupplierOrder, error)
	First(ctx context.Context) (*domain.SupplierOrder, error)
	SaveBatch(ctx context.Context, orders []domain.SupplierOrder) error
}

type VoiceLogRepository interface {
	Save(ctx context.Context, log *domain.VoiceLog) error
	FindRecent(ctx context.Context, limit int) ([]domain.VoiceLog, error)
}

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping() error
	Close() error
}
