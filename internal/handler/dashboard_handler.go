package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /dashboard 配下の自分のダッシュボードAPI
type DashboardHandler struct {
	cfg config.Config
	uc  *usecase.DashboardUsecase
}

// DI
func NewDashboardHandler(cfg config.Config, uc *usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{cfg: cfg, uc: uc}
}

func (h *DashboardHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/dashboard", middleware.AuthJWT(h.cfg))

	g.GET("/summary", h.Summary)
}

func (h *DashboardHandler) Summary(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorJSON("Invalid user token"))
	}

	out, err := h.uc.UserSummary(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
