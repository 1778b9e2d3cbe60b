package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"app/internal/repository"
)

// 管理画面のユーザー一覧行
type AdminUserDTO struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type ToggleActiveResponse struct {
	Message  string `json:"message"`
	UserID   int64  `json:"userId"`
	IsActive bool   `json:"isActive"`
}

// 管理者によるユーザー管理。
type AdminUserUsecase struct {
	users  repository.UserRepository
	logger *slog.Logger
}

// DI
func NewAdminUserUsecase(users repository.UserRepository, logger *slog.Logger) *AdminUserUsecase {
	return &AdminUserUsecase{users: users, logger: logger}
}

// 有効な一般ユーザーの一覧を返す
func (u *AdminUserUsecase) ListUsers(ctx context.Context) ([]AdminUserDTO, error) {
	users, err := u.users.ListActiveNonAdmin(ctx)
	if err != nil {
		return []AdminUserDTO{}, err
	}

	out := make([]AdminUserDTO, 0, len(users))
	for _, usr := range users {
		out = append(out, AdminUserDTO{
			ID:       usr.ID,
			FullName: usr.FullName,
			Email:    usr.Email,
		})
	}
	return out, nil
}

// ユーザーの有効/無効を切り替える。
// ADMINは対象外（自己保護ルール：管理者自身を管理APIで止められない）。
func (u *AdminUserUsecase) ToggleActive(ctx context.Context, userID int64) (*ToggleActiveResponse, error) {
	newState, err := u.users.ToggleActive(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, "User not found")
		}
		if errors.Is(err, repository.ErrAdminProtected) {
			return nil, NewHTTPError(http.StatusBadRequest, "Cannot change activation status for Admin users")
		}
		return nil, err
	}

	u.logger.Info("user activation toggled", "user_id", userID, "is_active", newState)

	msg := "User deactivated successfully"
	if newState {
		msg = "User activated successfully"
	}

	return &ToggleActiveResponse{
		Message:  msg,
		UserID:   userID,
		IsActive: newState,
	}, nil
}
