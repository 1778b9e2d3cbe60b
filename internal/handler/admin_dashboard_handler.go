package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /admin-dashboard 配下の管理者API
type AdminDashboardHandler struct {
	cfg    config.Config
	userUC *usecase.AdminUserUsecase
	dashUC *usecase.DashboardUsecase
}

// DI
func NewAdminDashboardHandler(
	cfg config.Config,
	userUC *usecase.AdminUserUsecase,
	dashUC *usecase.DashboardUsecase,
) *AdminDashboardHandler {
	return &AdminDashboardHandler{cfg: cfg, userUC: userUC, dashUC: dashUC}
}

// ★ /admin-dashboard 配下は全部「JWT必須 + ADMIN限定」
func (h *AdminDashboardHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group(
		"/admin-dashboard",
		middleware.AuthJWT(h.cfg),
		middleware.AdminRoleGuard(),
	)

	g.GET("/users", h.ListUsers)
	g.GET("/summary", h.Summary)
	g.PUT("/toggle-active/:id", h.ToggleActive)
}

func (h *AdminDashboardHandler) ListUsers(c echo.Context) error {
	out, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AdminDashboardHandler) Summary(c echo.Context) error {
	out, err := h.dashUC.AdminSummary(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AdminDashboardHandler) ToggleActive(c echo.Context) error {
	userID, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid user id"))
	}

	out, err := h.userUC.ToggleActive(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
