package server

import (
	"log/slog"
	"net/http"

	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// 全ハンドラのルート登録を約束
type RouteRegistrar interface {
	RegisterRoutes(e *echo.Echo)
}

// Newはechoアプリを組み立てる。
// loggerは注入する（グローバルロガーは使わない）。
func New(cfg config.Config, logger *slog.Logger, handlers ...RouteRegistrar) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// panicはリクエスト境界で止める
	e.Use(echomw.Recover())

	// リクエストログ
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			if v.Error != nil {
				logger.Error("request",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"error", v.Error,
				)
				return nil
			}
			logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	}))

	// フロント向けCORS
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{cfg.FEURL},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	for _, h := range handlers {
		h.RegisterRoutes(e)
	}

	return e
}

// Start はサーバーを起動する
func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}

// handlerパッケージの型がinterfaceを満たすことの確認
var (
	_ RouteRegistrar = (*handler.AuthHandler)(nil)
	_ RouteRegistrar = (*handler.TaskHandler)(nil)
	_ RouteRegistrar = (*handler.DashboardHandler)(nil)
	_ RouteRegistrar = (*handler.AdminDashboardHandler)(nil)
	_ RouteRegistrar = (*handler.AdminTaskHandler)(nil)
)
