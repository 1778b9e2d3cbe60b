package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

// タスクが見つからない（他ユーザーのタスクも同じ扱い）
var ErrTaskNotFound = errors.New("task not found")

// タスクの保存・取得を約束
type TaskRepository interface {
	// 新規タスク作成
	Create(ctx context.Context, task *model.Task) error
	// IDとユーザーIDの両方で絞って1件取得。見つからなければ (nil, nil)。
	FindByIDAndUser(ctx context.Context, id int64, userID int64) (*model.Task, error)
	// IDで1件取得（所有ユーザーをPreloadする）。見つからなければ (nil, nil)。
	FindByID(ctx context.Context, id int64) (*model.Task, error)
	// ユーザーのタスク一覧（期限の新しい順）
	ListByUser(ctx context.Context, userID int64) ([]model.Task, error)
	// 全タスク一覧（所有ユーザー付き）
	ListAllWithUser(ctx context.Context) ([]model.Task, error)
	// 直近に作られたタスク（所有ユーザー付き、新しい順にlimit件）
	RecentWithUser(ctx context.Context, limit int) ([]model.Task, error)
	// タスクを更新
	Update(ctx context.Context, task *model.Task) error
	// タスクを削除。対象がなければErrTaskNotFound。
	Delete(ctx context.Context, id int64) error

	// ダッシュボード集計
	CountByStatus(ctx context.Context, status model.TaskStatus) (int64, error)
	CountByStatusForUser(ctx context.Context, userID int64, status model.TaskStatus) (int64, error)
}
