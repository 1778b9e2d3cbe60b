package usecase

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// 平文パスワードからダイジェストへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// 入力パスワードと保存したダイジェストを比べる約束
type PasswordVerifier interface {
	Verify(plain string, digest string) bool
}

// =====================
// SHA-256（決定的なダイジェスト）
// =====================

// 無塩のSHA-256ハッシュ。同じ入力は常に同じ出力になる。
type Sha256PasswordHasher struct{}

// DI
func NewSha256PasswordHasher() *Sha256PasswordHasher {
	return &Sha256PasswordHasher{}
}

// SHA-256でハッシュ化（16進小文字）
func (h *Sha256PasswordHasher) Hash(plain string) (string, error) {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:]), nil
}

// ダイジェストを再計算して比較
type Sha256PasswordVerifier struct{}

// DI
func NewSha256PasswordVerifier() *Sha256PasswordVerifier {
	return &Sha256PasswordVerifier{}
}

// 再計算した値と定数時間で比較
func (v *Sha256PasswordVerifier) Verify(plain string, digest string) bool {
	sum := sha256.Sum256([]byte(plain))
	computed := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}

// =====================
// bcrypt
// =====================

// bcryptハッシュ化
type BcryptPasswordHasher struct {
	cost int
}

// DI
func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost}
}

// bcryptでハッシュ化
func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}

	return string(hashedBytes), nil
}

// bcryptハッシュと平文を比較
type BcryptPasswordVerifier struct{}

// DI
func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

// 平文(plain)をbcryptで比較
func (v *BcryptPasswordVerifier) Verify(plain string, digest string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain))
	return err == nil
}
