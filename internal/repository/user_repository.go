package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
	"time"
)

// ユーザーが見つからない
var ErrUserNotFound = errors.New("user not found")

// emailが既に登録済み（unique制約違反も含む）
var ErrDuplicateEmail = errors.New("email already exists")

// ADMINユーザーの状態は管理APIから変更できない
var ErrAdminProtected = errors.New("cannot change admin user")

// ユーザーの保存・取得を約束
type UserRepository interface {
	// 新規ユーザー作成。email重複はErrDuplicateEmailを返す。
	Create(ctx context.Context, user *model.User) error
	// emailからユーザーを1件取得する。見つからなければ (nil, nil)。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// IDからユーザーを1件取得する。見つからなければ (nil, nil)。
	FindByID(ctx context.Context, id int64) (*model.User, error)
	// 最終ログイン時刻を更新する。
	UpdateLastLogin(ctx context.Context, id int64, t time.Time) error
	// is_activeを反転して新しい状態を返す。
	// 対象がいなければErrUserNotFound、対象がADMINならErrAdminProtected。
	ToggleActive(ctx context.Context, id int64) (bool, error)

	// 管理画面向けの一覧・集計
	ListActiveNonAdmin(ctx context.Context) ([]model.User, error)
	ListAllOrdered(ctx context.Context) ([]model.User, error)
	CountAll(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, t time.Time) (int64, error)
}
