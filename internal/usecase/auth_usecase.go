package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"
)

var (
	// メールまたはパスワードが違う（どちらが違うかは返さない）
	ErrInvalidCredentials = errors.New("invalid credentials")

	// 停止済みユーザー
	ErrUserInactive = errors.New("user is inactive")

	// emailが既に使用済み
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// JWTを発行する約束
type AccessTokenIssuer interface {
	Issue(user *model.User, now time.Time) (token string, expiresAt time.Time, err error)
}

// 入力検証を約束
type AuthValidator interface {
	ValidateSignup(email string, password string, fullName string) error
	ValidateLogin(email string, password string) error
}

// /auth/signup のリクエストボディ
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

type SignupResponse struct {
	Message string `json:"message"`
}

// /auth/login のリクエストボディ
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// handlerがJSONにして返す
type LoginResponse struct {
	Token    string     `json:"token"`
	Role     model.Role `json:"role"`
	FullName string     `json:"fullName"`
	Email    string     `json:"email"`
	UserID   int64      `json:"userId"`
}

type AuthUsecase struct {
	users     repository.UserRepository
	attempts  repository.LoginAttemptRepository
	hasher    PasswordHasher
	verifier  PasswordVerifier
	issuer    AccessTokenIssuer
	validator AuthValidator
	idGen     IDGenerator
	clock     Clock
	logger    *slog.Logger
}

// DI
func NewAuthUsecase(
	users repository.UserRepository,
	attempts repository.LoginAttemptRepository,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	issuer AccessTokenIssuer,
	validator AuthValidator,
	idGen IDGenerator,
	clock Clock,
	logger *slog.Logger,
) *AuthUsecase {
	return &AuthUsecase{
		users:     users,
		attempts:  attempts,
		hasher:    hasher,
		verifier:  verifier,
		issuer:    issuer,
		validator: validator,
		idGen:     idGen,
		clock:     clock,
		logger:    logger,
	}
}

// emailは小文字に正規化して比較・保存する
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// 会員登録を実行する
func (u *AuthUsecase) Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error) {
	// 入力検証
	if err := u.validator.ValidateSignup(req.Email, req.Password, req.FullName); err != nil {
		return nil, err
	}

	email := normalizeEmail(req.Email)

	// email重複チェック（先に見るだけ。最終的な裁定はDBのunique制約）
	existing, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	// パスワードをハッシュ化（平文は保存しない）
	digest, err := u.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	// roleはサーバーが決める。クライアントからは受け取らない。
	user := &model.User{
		FullName:       strings.TrimSpace(req.FullName),
		Email:          email,
		PasswordDigest: digest,
		Role:           model.RoleUser,
		IsActive:       true,
		LastLoginAt:    nil,
	}

	if err := u.users.Create(ctx, user); err != nil {
		// 同時登録で負けた場合もここに来る
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	u.logger.Info("user signed up", "user_id", user.ID, "email", user.Email)

	return &SignupResponse{Message: "Signup successful"}, nil
}

// ログインを実行する
func (u *AuthUsecase) Login(ctx context.Context, req LoginRequest, ip string, userAgent string) (*LoginResponse, error) {
	if err := u.validator.ValidateLogin(req.Email, req.Password); err != nil {
		return nil, err
	}

	email := normalizeEmail(req.Email)

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	// emailが存在しない場合もパスワード違いと同じエラーにする
	if user == nil {
		u.recordAttempt(ctx, 0, email, false, ip, userAgent)
		return nil, ErrInvalidCredentials
	}

	// 停止ユーザーはログイン不可（パスワードが正しくても）
	if !user.IsActive {
		u.recordAttempt(ctx, user.ID, email, false, ip, userAgent)
		u.logger.Warn("login rejected for inactive user", "user_id", user.ID)
		return nil, ErrUserInactive
	}

	// パスワード照合
	if ok := u.verifier.Verify(req.Password, user.PasswordDigest); !ok {
		u.recordAttempt(ctx, user.ID, email, false, ip, userAgent)
		return nil, ErrInvalidCredentials
	}

	// 最終ログイン時刻更新
	now := u.clock.Now()
	if err := u.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}

	// AccessToken発行
	token, _, err := u.issuer.Issue(user, now)
	if err != nil {
		return nil, err
	}

	u.recordAttempt(ctx, user.ID, email, true, ip, userAgent)
	u.logger.Info("user logged in", "user_id", user.ID, "role", string(user.Role))

	return &LoginResponse{
		Token:    token,
		Role:     user.Role,
		FullName: user.FullName,
		Email:    user.Email,
		UserID:   user.ID,
	}, nil
}

// ログイン試行を記録する。失敗してもログインの結果には影響させない。
func (u *AuthUsecase) recordAttempt(ctx context.Context, userID int64, email string, ok bool, ip string, userAgent string) {
	attempt := &model.LoginAttempt{
		ID:          u.idGen.NewID(),
		UserID:      userID,
		Email:       email,
		Successful:  ok,
		IPAddress:   ip,
		UserAgent:   userAgent,
		AttemptedAt: u.clock.Now(),
	}

	if err := u.attempts.Create(ctx, attempt); err != nil {
		u.logger.Warn("failed to record login attempt", "error", err)
	}
}
