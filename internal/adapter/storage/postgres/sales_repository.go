package postgres

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/voxretail/assistant/internal/domain"
	"github.com/voxretail/assistant/internal/ports"
)

type SalesRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewSalesRepository(db *gorm.DB, log *zap.Logger) ports.SalesRepository {
	return &SalesRepository{
		db:  db,
		log: log,
	}
}

func (r *SalesRepository) LatestSaleDate(ctx context.Context) (*time.Time, error) {
	var tx domain.SalesTransaction
	err := r.db.WithContext(ctx).
		Select("sale_date").
		Order("sale_date desc").
		First(&tx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tx.SaleDate, nil
}

func (r *SalesRepository) RecentDates(ctx context.Context, limit int) ([]time.Time, error) {
	var txs []domain.SalesTransaction
	err := r.db.WithContext(ctx).
		Select("sale_date").
		Order("sale_date desc").
		Limit(limit).
		Find(&txs).Error
	if err != nil {
		return nil, err
	}
	dates := make([]time.Time, 0, len(txs))
	for _, tx := range txs {
		dates = append(dates, tx.SaleDate)
	}
	return dates, nil
}

func (r *SalesRepository) FindBetween(ctx context.Context, start, end time.Time) ([]domain.SalesTransaction, error) {
	var txs []domain.SalesTransaction
	err := r.db.WithContext(ctx).
		Where("sale_date >= ? AND sale_date <= ?", start, end).
		Find(&txs).Error
	return txs, err
}

func (r *SalesRepository) SaveBatch(ctx context.Context, txs []domain.SalesTransaction) error {
	if len(txs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&txs).Error
}
