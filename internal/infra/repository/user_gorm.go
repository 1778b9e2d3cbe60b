package repository

import (
	"app/internal/domain/model"
	domainrepo "app/internal/repository"
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// postgresのunique違反
const pgUniqueViolation = "23505"

type userGormRepository struct {
	db *gorm.DB
}

// DI
// main.goでこれをnewしてusecaseに注入します。
func NewUserGormRepository(db *gorm.DB) domainrepo.UserRepository {
	return &userGormRepository{db: db}
}

// Create はユーザーを新規作成。
// 同じemailの同時登録はDBのunique制約が裁く（負けた方はErrDuplicateEmail）。
func (r *userGormRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domainrepo.ErrDuplicateEmail
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainrepo.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// emailでユーザーを1件取得
func (r *userGormRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User

	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &u, nil
}

// IDでユーザーを1件取得
func (r *userGormRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &u, nil
}

// 最終ログイン時刻を更新
func (r *userGormRepository) UpdateLastLogin(ctx context.Context, id int64, t time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		UpdateColumn("last_login_at", t)

	if res.Error != nil {
		return res.Error
	}

	// 0件更新は「対象がない」
	if res.RowsAffected == 0 {
		return domainrepo.ErrUserNotFound
	}
	return nil
}

// is_activeを反転して新しい状態を返す。
// ADMINは対象外（自己保護ルール）。
func (r *userGormRepository) ToggleActive(ctx context.Context, id int64) (bool, error) {
	var newState bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u model.User
		if err := tx.Where("id = ?", id).First(&u).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainrepo.ErrUserNotFound
			}
			return err
		}

		if u.Role == model.RoleAdmin {
			return domainrepo.ErrAdminProtected
		}

		newState = !u.IsActive
		return tx.Model(&model.User{}).
			Where("id = ?", id).
			UpdateColumn("is_active", newState).Error
	})

	if err != nil {
		return false, err
	}
	return newState, nil
}

// 有効な一般ユーザーの一覧
func (r *userGormRepository) ListActiveNonAdmin(ctx context.Context) ([]model.User, error) {
	var users []model.User

	err := r.db.WithContext(ctx).
		Where("role <> ?", model.RoleAdmin).
		Where("is_active = ?", true).
		Order("id asc").
		Find(&users).Error

	if err != nil {
		return []model.User{}, err
	}
	return users, nil
}

// 全ユーザー（登録の新しい順）
func (r *userGormRepository) ListAllOrdered(ctx context.Context) ([]model.User, error) {
	var users []model.User

	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&users).Error

	if err != nil {
		return []model.User{}, err
	}
	return users, nil
}

// 総ユーザー数
func (r *userGormRepository) CountAll(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Count(&n).Error
	return n, err
}

// 有効ユーザー数
func (r *userGormRepository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("is_active = ?", true).
		Count(&n).Error
	return n, err
}

// tより後に登録したユーザー数
func (r *userGormRepository) CountCreatedSince(ctx context.Context, t time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("created_at >= ?", t).
		Count(&n).Error
	return n, err
}
