package repository

import (
	"app/internal/domain/model"
	"context"
)

// ログイン試行の記録を約束
type LoginAttemptRepository interface {
	Create(ctx context.Context, attempt *model.LoginAttempt) error
}
