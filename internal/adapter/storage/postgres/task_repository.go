package postgres

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/voxretail/assistant/internal/domain"
	"github.com/voxretail/assistant/internal/ports"
)

type TaskRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewTaskRepository(db *gorm.DB, log *zap.Logger) ports.TaskRepository {
	return &TaskRepository{
		db:  db,
		log: log,
	}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.ReorderTask) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) FindReorders(ctx context.Context, limit int) ([]domain.ReorderTask, error) {
	var tasks []domain.ReorderTask
	err := r.db.WithContext(ctx).
		Where("task_type = ?", domain.TaskTypeReorder).
		Order("assigned_date desc").
		Limit(limit).
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) SaveBatch(ctx context.Context, tasks []domain.ReorderTask) error {
	if len(tasks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&tasks).Error
}
