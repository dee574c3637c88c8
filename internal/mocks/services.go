package mocks

import (
	"context"

	"github.com/voxretail/assistant/internal/domain"
)

// MockClassifier is a mock implementation of Classifier interface
type MockClassifier struct {
	ClassifyFunc func(ctx context.Context, transcript string, device domain.EntitySet) (domain.ParsedIntent, error)
}

func (m *MockClassifier) Classify(ctx context.Context, transcript string, device domain.EntitySet) (domain.ParsedIntent, error) {
	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, transcript, device)
	}
	return domain.ParsedIntent{Intent: domain.DefaultIntent, Entities: device}, nil
}

// MockOperations is a mock implementation of Operations interface
type MockOperations struct {
	GetStockFunc          func(ctx context.Context, entities domain.EntitySet) domain.OperationResult
	CreateReorderFunc     func(ctx context.Context, entities domain.EntitySet) domain.OperationResult
	GetSalesSummaryFunc   func(ctx context.Context, entities domain.EntitySet) domain.OperationResult
	GetSupplierInfoFunc   func(ctx context.Context, entities domain.EntitySet) domain.OperationResult
	GetDeliveryStatusFunc func(ctx context.Context, entities domain.EntitySet) domain.OperationResult
}

func (m *MockOperations) GetStock(ctx context.Context, entities domain.EntitySet) domain.OperationResult {
	if m.GetStockFunc != nil {
		return m.GetStockFunc(ctx, entities)
	}
	return domain.Success(domain.StockResult{})
}

func (m *MockOperations) CreateReorder(ctx context.Context, entities domain.EntitySet) domain.OperationResult {
	if m.CreateReorderFunc != nil {
		return m.CreateReorderFunc(ctx, entities)
	}
	return domain.Success(domain.ReorderResult{})
}

func (m *MockOperations) GetSalesSummary(ctx context.Context, entities domain.EntitySet) domain.OperationResult {
	if m.GetSalesSummaryFunc != nil {
		return m.GetSalesSummaryFunc(ctx, entities)
	}
	return domain.Success(domain.SalesSummaryResult{})
}

func (m *MockOperations) GetSupplierInfo(ctx context.Context, entities domain.EntitySet) domain.OperationResult {
	if m.GetSupplierInfoFunc != nil {
		return m.GetSupplierInfoFunc(ctx, entities)
	}
	return domain.Success(domain.SupplierInfoResult{})
}

func (m *MockOperations) GetDeliveryStatus(ctx context.Context, entities domain.EntitySet) domain.OperationResult {
	if m.GetDeliveryStatusFunc != nil {
		return m.GetDeliveryStatusFunc(ctx, entities)
	}
	return domain.Success(domain.DeliveryStatusResult{})
}
