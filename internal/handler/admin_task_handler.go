package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /admin/tasks 配下の管理者タスクAPI
type AdminTaskHandler struct {
	cfg config.Config
	uc  *usecase.AdminTaskUsecase
}

// DI
func NewAdminTaskHandler(cfg config.Config, uc *usecase.AdminTaskUsecase) *AdminTaskHandler {
	return &AdminTaskHandler{cfg: cfg, uc: uc}
}

// ★ /admin/tasks 配下は全部「JWT必須 + ADMIN限定」
func (h *AdminTaskHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group(
		"/admin/tasks",
		middleware.AuthJWT(h.cfg),
		middleware.AdminRoleGuard(),
	)

	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *AdminTaskHandler) List(c echo.Context) error {
	out, err := h.uc.ListTasks(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AdminTaskHandler) Create(c echo.Context) error {
	var in usecase.AdminCreateTaskInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, errorJSON("Invalid request"))
	}

	if err := h.uc.CreateTaskFor(c.Request().Context(), in); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Task created successfully"})
}

func (h *AdminTaskHandler) Get(c echo.Context) error {
	taskID, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid task id"))
	}

	out, err := h.uc.GetTask(c.Request().Context(), taskID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AdminTaskHandler) Update(c echo.Context) error {
	taskID, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid task id"))
	}

	var in usecase.TaskInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, errorJSON("Invalid request"))
	}

	if err := h.uc.UpdateTask(c.Request().Context(), taskID, in); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Task updated successfully by admin!"})
}

func (h *AdminTaskHandler) Delete(c echo.Context) error {
	taskID, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid task id"))
	}

	if err := h.uc.DeleteTask(c.Request().Context(), taskID); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Task deleted successfully"})
}
