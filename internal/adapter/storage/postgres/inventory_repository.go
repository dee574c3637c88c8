package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/voxretail/assistant/internal/domain"
	"github.com/voxretail/assistant/internal/ports"
)

type InventoryRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewInventoryRepository(db *gorm.DB, log *zap.Logger) ports.InventoryRepository {
	return &InventoryRepository{
		db:  db,
		log: log,
	}
}

func (r *InventoryRepository) Search(ctx context.Context, filter ports.StockFilter, limit int) ([]domain.InventoryItem, error) {
	q := r.db.WithContext(ctx).Model(&domain.InventoryItem{})

	if filter.ProductID != "" {
		q = q.Where("product_id = ?", filter.ProductID)
	} else {
		if filter.Name != "" {
			q = q.Where("name ILIKE ?", "%"+filter.Name+"%")
		}
		if filter.Category != "" {
			q = q.Where("category ILIKE ?", "%"+filter.Category+"%")
		}
		if filter.Color != "" {
			q = q.Where("color ILIKE ?", "%"+filter.Color+"%")
		}
		if filter.Size != "" {
			q = q.Where("size = ?", filter.Size)
		}
	}

	var items []domain.InventoryItem
	err := q.Limit(limit).Find(&items).Error
	return items, err
}

func (r *InventoryRepository) FindByID(ctx context.Context, productID string) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := r.db.WithContext(ctx).First(&item, "product_id = ?", productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *InventoryRepository) FindByIDs(ctx context.Context, productIDs []string) ([]domain.InventoryItem, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	var items []domain.InventoryItem
	err := r.db.WithContext(ctx).Where("product_id IN ?", productIDs).Find(&items).Error
	return items, err
}

func (r *InventoryRepository) SaveBatch(ctx context.Context, items []domain.InventoryItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}
