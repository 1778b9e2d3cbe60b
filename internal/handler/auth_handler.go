package handler

import (
	"errors"
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /auth 配下の公開API
type AuthHandler struct {
	uc *usecase.AuthUsecase
}

// DI
func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// 認証ルートを登録（tokenは不要）
func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/auth/signup", h.Signup)
	e.POST("/auth/login", h.Login)
}

// SignupはPOST /auth/signupのハンドラ
func (h *AuthHandler) Signup(c echo.Context) error {
	var req usecase.SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorJSON("Invalid request"))
	}

	out, err := h.uc.Signup(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			return c.JSON(http.StatusBadRequest, errorJSON("Email already exists"))
		}
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// LoginはPOST /auth/loginのハンドラ
func (h *AuthHandler) Login(c echo.Context) error {
	var req usecase.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorJSON("Invalid request"))
	}

	out, err := h.uc.Login(
		c.Request().Context(),
		req,
		c.RealIP(),
		c.Request().Header.Get("User-Agent"),
	)
	if err != nil {
		// emailの有無は漏らさない（パスワード違いと同じメッセージ）
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, errorJSON("Invalid email or password"))
		}
		if errors.Is(err, usecase.ErrUserInactive) {
			return c.JSON(http.StatusUnauthorized, errorJSON("Account is deactivated"))
		}
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
