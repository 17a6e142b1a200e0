package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

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

// 弱いパスワードの理由を全部返す。問題なければ空
func passwordProblems(password string, email string) []string {
	var problems []string

	if len([]rune(password)) < minPasswordLength {
		problems = append(problems, "password is too short, it must contain at least 8 characters")
	}
	if password != "" && isAllDigits(password) {
		problems = append(problems, "password is entirely numeric")
	}
	if isCommonPassword(password) {
		problems = append(problems, "password is too common")
	}
	if local, _, ok := strings.Cut(email, "@"); ok && len(local) >= 3 &&
		strings.Contains(strings.ToLower(password), strings.ToLower(local)) {
		problems = append(problems, "password is too similar to the email")
	}
	return problems
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isCommonPassword(p string) bool {
	normalized := strings.ToLower(strings.TrimSpace(p))

	common := map[string]struct{}{
		"password":     {},
		"password1":    {},
		"password123":  {},
		"123456789012": {},
		"1234567890":   {},
		"12345678":     {},
		"87654321":     {},
		"11111111":     {},
		"qwerty":       {},
		"qwertyuiop":   {},
		"qwerty123":    {},
		"iloveyou":     {},
		"letmein":      {},
		"abc12345":     {},
		"admin":        {},
		"admin123":     {},
		"welcome1":     {},
	}

	_, ok := common[normalized]
	return ok
}
