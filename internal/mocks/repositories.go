package mocks

import (
	"context"
	"time"

	"github.com/voxretail/assistant/internal/domain"
	"github.com/voxretail/assistant/internal/ports"
)

// MockInventoryRepository is a mock implementation of InventoryRepository
type MockInventoryRepository struct {
	SearchFunc    func(ctx context.Context, filter ports.StockFilter, limit int) ([]domain.InventoryItem, error)
	FindByIDFunc  func(ctx context.Context, productID string) (*domain.InventoryItem, error)
	FindByIDsFunc func(ctx context.Context, productIDs []string) ([]domain.InventoryItem, error)
	SaveBatchFunc func(ctx context.Context, items []domain.InventoryItem) error
}

func (m *MockInventoryRepository) Search(ctx context.Context, filter ports.StockFilter, limit int) ([]domain.InventoryItem, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, filter, limit)
	}
	return []domain.InventoryItem{}, nil
}

func (m *MockInventoryRepository) FindByID(ctx context.Context, productID string) (*domain.InventoryItem, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, productID)
	}
	return nil, nil
}

func (m *MockInventoryRepository) FindByIDs(ctx context.Context, productIDs []string) ([]domain.InventoryItem, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, productIDs)
	}
	return []domain.InventoryItem{}, nil
}

func (m *MockInventoryRepository) SaveBatch(ctx context.Context, items []domain.InventoryItem) error {
	if m.SaveBatchFunc != nil {
		return m.SaveBatchFunc(ctx, items)
	}
	return nil
}

// MockTaskRepository is a mock implementation of TaskRepository
type MockTaskRepository struct {
	CreateFunc       func(ctx context.Context, task *domain.ReorderTask) error
	FindReordersFunc func(ctx context.Context, limit int) ([]domain.ReorderTask, error)
	SaveBatchFunc    func(ctx context.Context, tasks []domain.ReorderTask) error
}

func (m *MockTaskRepository) Create(ctx context.Context, task *domain.ReorderTask) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) FindReorders(ctx context.Context, limit int) ([]domain.ReorderTask, error) {
	if m.FindReordersFunc != nil {
		return m.FindReordersFunc(ctx, limit)
	}
	return []domain.ReorderTask{}, nil
}

func (m *MockTaskRepository) SaveBatch(ctx context.Context, tasks []domain.ReorderTask) error {
	if m.SaveBatchFunc != nil {
		return m.SaveBatchFunc(ctx, tasks)
	}
	return nil
}

// MockSalesRepository is a mock implementation of SalesRepository
type MockSalesRepository struct {
	LatestSaleDateFunc func(ctx context.Context) (*time.Time, error)
	RecentDatesFunc    func(ctx context.Context, limit int) ([]time.Time, error)
	FindBetweenFunc    func(ctx context.Context, start, end time.Time) ([]domain.SalesTransaction, error)
	SaveBatchFunc      func(ctx context.Context, txs []domain.SalesTransaction) error
}

func (m *MockSalesRepository) LatestSaleDate(ctx context.Context) (*time.Time, error) {
	if m.LatestSaleDateFunc != nil {
		return m.LatestSaleDateFunc(ctx)
	}
	return nil, nil
}

func (m *MockSalesRepository) RecentDates(ctx context.Context, limit int) ([]time.Time, error) {
	if m.RecentDatesFunc != nil {
		return m.RecentDatesFunc(ctx, limit)
	}
	return []time.Time{}, nil
}

func (m *MockSalesRepository) FindBetween(ctx context.Context, start, end time.Time) ([]domain.SalesTransaction, error) {
	if m.FindBetweenFunc != nil {
		return m.FindBetweenFunc(ctx, start, end)
	}
	return []domain.SalesTransaction{}, nil
}

func (m *MockSalesRepository) SaveBatch(ctx context.Context, txs []domain.SalesTransaction) error {
	if m.SaveBatchFunc != nil {
		return m.SaveBatchFunc(ctx, txs)
	}
	return nil
}

// MockSupplierOrderRepository is a mock implementation of SupplierOrderRepository
type MockSupplierOrderRepository struct {
	FindByPurchaseOrderIDFunc func(ctx context.Context, poID string) (*domain.SupplierOrder, error)
	FindLatestBySupplierFunc  func(ctx context.Context, supplierID string) (*domain.SupplierOrder, error)
	FindRecentByStatusFunc    func(ctx context.Context, statuses []domain.OrderStatus, limit int) ([]domain.SupplierOrder, error)
	FindBySupplierSuffixFunc  func(ctx context.Context, suffix string) (*domain.SupplierOrder, error)
	FirstFunc                 func(ctx context.Context) (*domain.SupplierOrder, error)
	SaveBatchFunc             func(ctx context.Context, orders []domain.SupplierOrder) error
}

func (m *MockSupplierOrderRepository) FindByPurchaseOrderID(ctx context.Context, poID string) (*domain.SupplierOrder, error) {
	if m.FindByPurchaseOrderIDFunc != nil {
		return m.FindByPurchaseOrderIDFunc(ctx, poID)
	}
	return nil, nil
}

func (m *MockSupplierOrderRepository) FindLatestBySupplier(ctx context.Context, supplierID string) (*domain.SupplierOrder, error) {
	if m.FindLatestBySupplierFunc != nil {
		return m.FindLatestBySupplierFunc(ctx, supplierID)
	}
	return nil, nil
}

func (m *MockSupplierOrderRepository) FindRecentByStatus(ctx context.Context, statuses []domain.OrderStatus, limit int) ([]domain.SupplierOrder, error) {
	if m.FindRecentByStatusFunc != nil {
		return m.FindRecentByStatusFunc(ctx, statuses, limit)
	}
	return []domain.SupplierOrder{}, nil
}

func (m *MockSupplierOrderRepository) FindBySupplierSuffix(ctx context.Context, suffix string) (*domain.SupplierOrder, error) {
	if m.FindBySupplierSuffixFunc != nil {
		return m.FindBySupplierSuffixFunc(ctx, suffix)
	}
	return nil, nil
}

func (m *MockSupplierOrderRepository) First(ctx context.Context) (*domain.SupplierOrder, error) {
	if m.FirstFunc != nil {
		return m.FirstFunc(ctx)
	}
	return nil, nil
}

func (m *MockSupplierOrderRepository) SaveBatch(ctx context.Context, orders []domain.SupplierOrder) error {
	if m.SaveBatchFunc != nil {
		return m.SaveBatchFunc(ctx, orders)
	}
	return nil
}

// MockVoiceLogRepository is a mock implementation of VoiceLogRepository
type MockVoiceLogRepository struct {
	SaveFunc       func(ctx context.Context, log *domain.VoiceLog) error
	FindRecentFunc func(ctx context.Context, limit int) ([]domain.VoiceLog, error)
}

func (m *MockVoiceLogRepository) Save(ctx context.Context, log *domain.VoiceLog) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, log)
	}
	return nil
}

func (m *MockVoiceLogRepository) FindRecent(ctx context.Context, limit int) ([]domain.VoiceLog, error) {
	if m.FindRecentFunc != nil {
		return m.FindRecentFunc(ctx, limit)
	}
	return []domain.VoiceLog{}, nil
}
