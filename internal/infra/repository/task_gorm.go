package repository

import (
	"app/internal/domain/model"
	domainrepo "app/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

type taskGormRepository struct {
	db *gorm.DB
}

// DI
func NewTaskGormRepository(db *gorm.DB) domainrepo.TaskRepository {
	return &taskGormRepository{db: db}
}

// Create はタスクを新規作成
func (r *taskGormRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return err
	}
	return nil
}

// IDとユーザーIDで1件取得（他人のタスクは見えない）
func (r *taskGormRepository) FindByIDAndUser(ctx context.Context, id int64, userID int64) (*model.Task, error) {
	var t model.Task

	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&t).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &t, nil
}

// IDで1件取得（所有ユーザー付き）
func (r *taskGormRepository) FindByID(ctx context.Context, id int64) (*model.Task, error) {
	var t model.Task

	err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&t).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &t, nil
}

// ユーザーのタスク一覧（期限の新しい順）
func (r *taskGormRepository) ListByUser(ctx context.Context, userID int64) ([]model.Task, error) {
	var tasks []model.Task

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("due_date desc").
		Order("id desc").
		Find(&tasks).Error

	if err != nil {
		return []model.Task{}, err
	}
	return tasks, nil
}

// 全タスク一覧（所有ユーザー付き）
func (r *taskGormRepository) ListAllWithUser(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task

	err := r.db.WithContext(ctx).
		Preload("User").
		Order("id desc").
		Find(&tasks).Error

	if err != nil {
		return []model.Task{}, err
	}
	return tasks, nil
}

// 直近のタスク（新しい順にlimit件）
func (r *taskGormRepository) RecentWithUser(ctx context.Context, limit int) ([]model.Task, error) {
	var tasks []model.Task

	err := r.db.WithContext(ctx).
		Preload("User").
		Order("id desc").
		Limit(limit).
		Find(&tasks).Error

	if err != nil {
		return []model.Task{}, err
	}
	return tasks, nil
}

// タスクを更新
func (r *taskGormRepository) Update(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return err
	}
	return nil
}

// タスクを削除
func (r *taskGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Task{})

	if res.Error != nil {
		return res.Error
	}

	// 0件削除は「対象がない」
	if res.RowsAffected == 0 {
		return domainrepo.ErrTaskNotFound
	}
	return nil
}

// ステータス別の件数
func (r *taskGormRepository) CountByStatus(ctx context.Context, status model.TaskStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}

// ユーザー別・ステータス別の件数
func (r *taskGormRepository) CountByStatusForUser(ctx context.Context, userID int64, status model.TaskStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("user_id = ? AND status = ?", userID, status).
		Count(&n).Error
	return n, err
}
