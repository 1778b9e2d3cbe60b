package validator

import (
	"net/http"
	"regexp"
	"strings"

	"app/internal/usecase"
)

// パスワード最低文字数（MVP: 8）
const minPasswordLen = 8

// ざっくりしたemail形式チェック
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type authValidator struct{}

// Usecaseは interface を依存注入
func NewAuthValidator() usecase.AuthValidator {
	return &authValidator{}
}

// サインアップの入力を検証
func (v *authValidator) ValidateSignup(email string, password string, fullName string) error {
	email = strings.TrimSpace(email)

	// 必須チェック
	if email == "" || password == "" || strings.TrimSpace(fullName) == "" {
		return usecase.NewHTTPError(http.StatusBadRequest, "email, password and fullName are required")
	}

	// email形式
	if !emailRe.MatchString(email) {
		return usecase.NewHTTPError(http.StatusBadRequest, "invalid email format")
	}

	// パスワード長
	if len(password) < minPasswordLen {
		return usecase.NewHTTPError(http.StatusBadRequest, "password too short")
	}

	return nil
}

// ログインの入力を検証
func (v *authValidator) ValidateLogin(email string, password string) error {
	email = strings.TrimSpace(email)

	// 必須チェック
	if email == "" || password == "" {
		return usecase.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	return nil
}
