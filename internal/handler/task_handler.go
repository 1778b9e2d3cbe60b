package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /tasks 配下の自分のタスクAPI
type TaskHandler struct {
	cfg config.Config
	uc  *usecase.TaskUsecase
}

// DI
func NewTaskHandler(cfg config.Config, uc *usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{cfg: cfg, uc: uc}
}

// /tasks 配下は全部JWT必須
func (h *TaskHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/tasks", middleware.AuthJWT(h.cfg))

	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *TaskHandler) Create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorJSON("Invalid user token"))
	}

	var in usecase.TaskInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, errorJSON("Invalid request"))
	}

	if err := h.uc.CreateTask(c.Request().Context(), userID, in); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Task created successfully!"})
}

func (h *TaskHandler) List(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorJSON("Invalid user token"))
	}

	tasks, err := h.uc.ListTasks(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) Get(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorJSON("Invalid user token"))
	}

	taskID, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid task id"))
	}

	task, err := h.uc.GetTask(c.Request().Context(), userID, taskID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Update(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorJSON("Invalid user token"))
	}

	taskID, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid task id"))
	}

	var in usecase.TaskInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, errorJSON("Invalid request"))
	}

	if err := h.uc.UpdateTask(c.Request().Context(), userID, taskID, in); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Task updated successfully!"})
}

func (h *TaskHandler) Delete(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorJSON("Invalid user token"))
	}

	taskID, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid task id"))
	}

	if err := h.uc.DeleteTask(c.Request().Context(), userID, taskID); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Task deleted successfully"})
}
