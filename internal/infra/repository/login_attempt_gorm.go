package repository

import (
	"app/internal/domain/model"
	domainrepo "app/internal/repository"
	"context"

	"gorm.io/gorm"
)

type loginAttemptGormRepository struct {
	db *gorm.DB
}

// DI
func NewLoginAttemptGormRepository(db *gorm.DB) domainrepo.LoginAttemptRepository {
	return &loginAttemptGormRepository{db: db}
}

// Create はログイン試行を1件記録
func (r *loginAttemptGormRepository) Create(ctx context.Context, attempt *model.LoginAttempt) error {
	if err := r.db.WithContext(ctx).Create(attempt).Error; err != nil {
		return err
	}
	return nil
}
