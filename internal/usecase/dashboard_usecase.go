package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"
)

// 自分のダッシュボード
type UserSummaryResponse struct {
	Completed  int64           `json:"completed"`
	InProgress int64           `json:"inProgress"`
	Pending    int64           `json:"pending"`
	User       SummaryUserInfo `json:"user"`
}

type SummaryUserInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// 管理者ダッシュボード
type AdminSummaryResponse struct {
	TaskStats   TaskStats           `json:"taskStats"`
	UserStats   UserStats           `json:"userStats"`
	RecentTasks []RecentTaskDTO     `json:"recentTasks"`
	Users       []SummaryUserRowDTO `json:"users"`
}

type TaskStats struct {
	Completed  int64 `json:"completed"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"inProgress"`
}

type UserStats struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
	New    int64 `json:"new"`
}

type RecentTaskDTO struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
	User   string `json:"user"`
}

type SummaryUserRowDTO struct {
	ID        int64      `json:"id"`
	FullName  string     `json:"fullName"`
	Email     string     `json:"email"`
	Role      model.Role `json:"role"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
}

// 直近タスクの表示件数
const recentTaskLimit = 10

// 新規ユーザーとして数える期間
const newUserWindow = 7 * 24 * time.Hour

// ダッシュボード集計。
type DashboardUsecase struct {
	users  repository.UserRepository
	tasks  repository.TaskRepository
	clock  Clock
	logger *slog.Logger
}

// DI
func NewDashboardUsecase(
	users repository.UserRepository,
	tasks repository.TaskRepository,
	clock Clock,
	logger *slog.Logger,
) *DashboardUsecase {
	return &DashboardUsecase{users: users, tasks: tasks, clock: clock, logger: logger}
}

// 自分のタスク件数をステータス別に集計する
func (u *DashboardUsecase) UserSummary(ctx context.Context, userID int64) (*UserSummaryResponse, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// tokenは有効だがユーザーが消えている場合
	if user == nil {
		return nil, NewHTTPError(http.StatusUnauthorized, "Invalid or unauthorized user")
	}

	completed, err := u.tasks.CountByStatusForUser(ctx, userID, model.TaskStatusCompleted)
	if err != nil {
		return nil, err
	}
	inProgress, err := u.tasks.CountByStatusForUser(ctx, userID, model.TaskStatusInProgress)
	if err != nil {
		return nil, err
	}
	pending, err := u.tasks.CountByStatusForUser(ctx, userID, model.TaskStatusPending)
	if err != nil {
		return nil, err
	}

	return &UserSummaryResponse{
		Completed:  completed,
		InProgress: inProgress,
		Pending:    pending,
		User: SummaryUserInfo{
			FullName: user.FullName,
			Email:    user.Email,
		},
	}, nil
}

// 管理者向けの全体集計
func (u *DashboardUsecase) AdminSummary(ctx context.Context) (*AdminSummaryResponse, error) {
	totalUsers, err := u.users.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	activeUsers, err := u.users.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	newUsers, err := u.users.CountCreatedSince(ctx, u.clock.Now().Add(-newUserWindow))
	if err != nil {
		return nil, err
	}

	completed, err := u.tasks.CountByStatus(ctx, model.TaskStatusCompleted)
	if err != nil {
		return nil, err
	}
	pending, err := u.tasks.CountByStatus(ctx, model.TaskStatusPending)
	if err != nil {
		return nil, err
	}
	inProgress, err := u.tasks.CountByStatus(ctx, model.TaskStatusInProgress)
	if err != nil {
		return nil, err
	}

	recent, err := u.tasks.RecentWithUser(ctx, recentTaskLimit)
	if err != nil {
		return nil, err
	}

	recentDTOs := make([]RecentTaskDTO, 0, len(recent))
	for _, t := range recent {
		name := "Unknown"
		if t.User != nil && t.User.FullName != "" {
			name = t.User.FullName
		}
		recentDTOs = append(recentDTOs, RecentTaskDTO{
			ID:     t.ID,
			Title:  t.Title,
			Status: string(t.Status),
			User:   name,
		})
	}

	users, err := u.users.ListAllOrdered(ctx)
	if err != nil {
		return nil, err
	}

	userRows := make([]SummaryUserRowDTO, 0, len(users))
	for _, usr := range users {
		userRows = append(userRows, SummaryUserRowDTO{
			ID:        usr.ID,
			FullName:  usr.FullName,
			Email:     usr.Email,
			Role:      usr.Role,
			IsActive:  usr.IsActive,
			CreatedAt: usr.CreatedAt,
		})
	}

	u.logger.Info("admin summary fetched")

	return &AdminSummaryResponse{
		TaskStats: TaskStats{
			Completed:  completed,
			Pending:    pending,
			InProgress: inProgress,
		},
		UserStats: UserStats{
			Total:  totalUsers,
			Active: activeUsers,
			New:    newUsers,
		},
		RecentTasks: recentDTOs,
		Users:       userRows,
	}, nil
}
