package postgres

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/voxretail/assistant/internal/domain"
	"github.com/voxretail/assistant/internal/ports"
)

type VoiceLogRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewVoiceLogRepository(db *gorm.DB, log *zap.Logger) ports.VoiceLogRepository {
	return &VoiceLogRepository{
		db:  db,
		log: log,
	}
}

func (r *VoiceLogRepository) Save(ctx context.Context, log *domain.VoiceLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *VoiceLogRepository) FindRecent(ctx context.Context, limit int) ([]domain.VoiceLog, error) {
	var logs []domain.VoiceLog
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
