package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"
)

// タスクの入力DTO（作成・更新で共通）
type TaskInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
}

// 一般ユーザーの自分のタスク操作。
// 全操作がtokenのsubject（userID）にスコープされる。
type TaskUsecase struct {
	tasks  repository.TaskRepository
	logger *slog.Logger
}

// DI
func NewTaskUsecase(tasks repository.TaskRepository, logger *slog.Logger) *TaskUsecase {
	return &TaskUsecase{tasks: tasks, logger: logger}
}

// 入力を検証してmodel用の値に直す
func validateTaskInput(in TaskInput) (model.TaskStatus, model.TaskPriority, error) {
	if strings.TrimSpace(in.Title) == "" {
		return "", "", NewHTTPError(http.StatusBadRequest, "title is required")
	}

	status := model.TaskStatusPending
	if in.Status != "" {
		switch model.TaskStatus(in.Status) {
		case model.TaskStatusPending, model.TaskStatusInProgress, model.TaskStatusCompleted:
			status = model.TaskStatus(in.Status)
		default:
			return "", "", NewHTTPError(http.StatusBadRequest, "invalid status")
		}
	}

	priority := model.TaskPriorityNormal
	if in.Priority != "" {
		switch model.TaskPriority(in.Priority) {
		case model.TaskPriorityLow, model.TaskPriorityNormal, model.TaskPriorityHigh:
			priority = model.TaskPriority(in.Priority)
		default:
			return "", "", NewHTTPError(http.StatusBadRequest, "invalid priority")
		}
	}

	return status, priority, nil
}

// 自分のタスクを作成する
func (u *TaskUsecase) CreateTask(ctx context.Context, userID int64, in TaskInput) error {
	status, priority, err := validateTaskInput(in)
	if err != nil {
		return err
	}

	task := &model.Task{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     in.DueDate,
		UserID:      userID,
	}

	if err := u.tasks.Create(ctx, task); err != nil {
		return err
	}

	u.logger.Info("task created", "task_id", task.ID, "user_id", userID)
	return nil
}

// 自分のタスク一覧（期限の新しい順）
func (u *TaskUsecase) ListTasks(ctx context.Context, userID int64) ([]model.Task, error) {
	return u.tasks.ListByUser(ctx, userID)
}

// 自分のタスクを1件取得。他人のタスクは404扱い。
func (u *TaskUsecase) GetTask(ctx context.Context, userID int64, taskID int64) (*model.Task, error) {
	task, err := u.tasks.FindByIDAndUser(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, NewHTTPError(http.StatusNotFound, "Task not found or unauthorized")
	}
	return task, nil
}

// 自分のタスクを更新する
func (u *TaskUsecase) UpdateTask(ctx context.Context, userID int64, taskID int64, in TaskInput) error {
	status, priority, err := validateTaskInput(in)
	if err != nil {
		return err
	}

	task, err := u.tasks.FindByIDAndUser(ctx, taskID, userID)
	if err != nil {
		return err
	}
	if task == nil {
		return NewHTTPError(http.StatusNotFound, "Task not found or unauthorized")
	}

	task.Title = strings.TrimSpace(in.Title)
	task.Description = in.Description
	task.Status = status
	task.Priority = priority
	task.DueDate = in.DueDate

	if err := u.tasks.Update(ctx, task); err != nil {
		return err
	}

	u.logger.Info("task updated", "task_id", taskID, "user_id", userID)
	return nil
}

// 自分のタスクを削除する
func (u *TaskUsecase) DeleteTask(ctx context.Context, userID int64, taskID int64) error {
	task, err := u.tasks.FindByIDAndUser(ctx, taskID, userID)
	if err != nil {
		return err
	}
	if task == nil {
		return NewHTTPError(http.StatusNotFound, "Task not found or unauthorized")
	}

	if err := u.tasks.Delete(ctx, task.ID); err != nil {
		return err
	}

	u.logger.Info("task deleted", "task_id", taskID, "user_id", userID)
	return nil
}
