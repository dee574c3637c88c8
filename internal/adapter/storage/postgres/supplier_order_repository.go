package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/voxretail/assistant/internal/domain"
	"github.com/voxretail/assistant/internal/ports"
)

type SupplierOrderRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewSupplierOrderRepository(db *gorm.DB, log *zap.Logger) ports.SupplierOrderRepository {
	return &SupplierOrderRepository{
		db:  db,
		log: log,
	}
}

func (r *SupplierOrderRepository) FindByPurchaseOrderID(ctx context.Context, poID string) (*domain.SupplierOrder, error) {
	var order domain.SupplierOrder
	err := r.db.WithContext(ctx).First(&order, "purchase_order_id = ?", poID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *SupplierOrderRepository) FindLatestBySupplier(ctx context.Context, supplierID string) (*domain.SupplierOrder, error) {
	var order domain.SupplierOrder
	err := r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("order_date desc").
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *SupplierOrderRepository) FindRecentByStatus(ctx context.Context, statuses []domain.OrderStatus, limit int) ([]domain.SupplierOrder, error) {
	var orders []domain.SupplierOrder
	err := r.db.WithContext(ctx).
		Where("status IN ?", statuses).
		Order("order_date desc").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}

func (r *SupplierOrderRepository) FindBySupplierSuffix(ctx context.Context, suffix string) (*domain.SupplierOrder, error) {
	var order domain.SupplierOrder
	err := r.db.WithContext(ctx).
		Where("supplier_id ILIKE ?", "%"+suffix+"%").
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *SupplierOrderRepository) First(ctx context.Context) (*domain.SupplierOrder, error) {
	var order domain.SupplierOrder
	err := r.db.WithContext(ctx).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *SupplierOrderRepository) SaveBatch(ctx context.Context, orders []domain.SupplierOrder) error {
	if len(orders) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&orders).Error
}
