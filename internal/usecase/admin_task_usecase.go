package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"
)

// 管理者がタスクを作るときの入力（割り当て先ユーザーが必要）
type AdminCreateTaskInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	UserID      int64      `json:"userId"`
}

// 管理画面のタスク一覧行（割り当て先の名前付き）
type AdminTaskDTO struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	AssignedTo  string     `json:"assignedTo"`
}

// 管理者による全ユーザーのタスク管理。ユーザースコープは掛からない。
type AdminTaskUsecase struct {
	tasks  repository.TaskRepository
	users  repository.UserRepository
	logger *slog.Logger
}

// DI
func NewAdminTaskUsecase(
	tasks repository.TaskRepository,
	users repository.UserRepository,
	logger *slog.Logger,
) *AdminTaskUsecase {
	return &AdminTaskUsecase{tasks: tasks, users: users, logger: logger}
}

func toAdminTaskDTO(t model.Task) AdminTaskDTO {
	assigned := "Unassigned"
	if t.User != nil && t.User.FullName != "" {
		assigned = t.User.FullName
	}

	return AdminTaskDTO{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		AssignedTo:  assigned,
	}
}

// 全タスク一覧
func (u *AdminTaskUsecase) ListTasks(ctx context.Context) ([]AdminTaskDTO, error) {
	tasks, err := u.tasks.ListAllWithUser(ctx)
	if err != nil {
		return []AdminTaskDTO{}, err
	}

	out := make([]AdminTaskDTO, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toAdminTaskDTO(t))
	}
	return out, nil
}

// タスクを1件取得（所有者に関係なく）
func (u *AdminTaskUsecase) GetTask(ctx context.Context, taskID int64) (*AdminTaskDTO, error) {
	task, err := u.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, NewHTTPError(http.StatusNotFound, "Task not found")
	}

	dto := toAdminTaskDTO(*task)
	return &dto, nil
}

// ユーザーを指定してタスクを作成する。
// 割り当て先が存在しない・停止中・ADMINの場合は400。
func (u *AdminTaskUsecase) CreateTaskFor(ctx context.Context, in AdminCreateTaskInput) error {
	status, priority, err := validateTaskInput(TaskInput{
		Title:    in.Title,
		Status:   in.Status,
		Priority: in.Priority,
	})
	if err != nil {
		return err
	}

	assignee, err := u.users.FindByID(ctx, in.UserID)
	if err != nil {
		return err
	}
	if assignee == nil || assignee.Role == model.RoleAdmin || !assignee.IsActive {
		return NewHTTPError(http.StatusBadRequest, "Invalid or inactive user")
	}

	task := &model.Task{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     in.DueDate,
		UserID:      in.UserID,
	}

	if err := u.tasks.Create(ctx, task); err != nil {
		return err
	}

	u.logger.Info("admin created task", "task_id", task.ID, "assigned_user_id", in.UserID)
	return nil
}

// タスクを更新する（所有者に関係なく）
func (u *AdminTaskUsecase) UpdateTask(ctx context.Context, taskID int64, in TaskInput) error {
	status, priority, err := validateTaskInput(in)
	if err != nil {
		return err
	}

	task, err := u.tasks.FindByID(ctx, taskID)
	if err != nil {
		return err
	}
	if task == nil {
		return NewHTTPError(http.StatusNotFound, "Task not found")
	}

	task.Title = strings.TrimSpace(in.Title)
	task.Description = in.Description
	task.Status = status
	task.Priority = priority
	task.DueDate = in.DueDate

	if err := u.tasks.Update(ctx, task); err != nil {
		return err
	}

	u.logger.Info("admin updated task", "task_id", taskID)
	return nil
}

// タスクを削除する（所有者に関係なく）
func (u *AdminTaskUsecase) DeleteTask(ctx context.Context, taskID int64) error {
	if err := u.tasks.Delete(ctx, taskID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return NewHTTPError(http.StatusNotFound, "Task not found")
		}
		return err
	}

	u.logger.Info("admin deleted task", "task_id", taskID)
	return nil
}
