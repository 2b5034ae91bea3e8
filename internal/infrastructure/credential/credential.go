// Package credential 提供可插拔的凭证校验能力
// 账号密码与应用解锁口令都通过这里的接口校验，状态机本身不关心具体算法
package credential

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt" // 密码哈希库
)

// 支持的密码存储方式
const (
	HasherPlain  = "plain"
	HasherBcrypt = "bcrypt"
)

// PasswordHasher 密码存储与校验
type PasswordHasher interface {
	// Hash 生成写入账号文件的比较值
	Hash(plaintext string) (string, error)
	// Verify 比较用户输入与存储值是否匹配
	Verify(stored, plaintext string) bool
}

// PlainHasher 明文存储，兼容旧账号文件
// 明文密码是已知的安全缺口，需要加固时在配置中切换为 bcrypt
type PlainHasher struct{}

func (PlainHasher) Hash(plaintext string) (string, error) {
	return plaintext, nil
}

func (PlainHasher) Verify(stored, plaintext string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(plaintext)) == 1
}

// BcryptHasher bcrypt 哈希存储
type BcryptHasher struct {
	Cost int // 为 0 时使用 bcrypt.DefaultCost
}

func (h BcryptHasher) Hash(plaintext string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptHasher) Verify(stored, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plaintext)) == nil
}

// NewPasswordHasher 根据配置名称创建 PasswordHasher，空字符串视为 plain
func NewPasswordHasher(kind string) (PasswordHasher, error) {
	switch kind {
	case "", HasherPlain:
		return PlainHasher{}, nil
	case HasherBcrypt:
		return BcryptHasher{}, nil
	default:
		return nil, fmt.Errorf("unknown password hasher %q", kind)
	}
}

// PassphraseVerifier 应用解锁口令校验
type PassphraseVerifier interface {
	Verify(passphrase string) bool
}

// FixedPassphrase 与固定口令做常量时间比较
type FixedPassphrase struct {
	secret string
}

// NewFixedPassphrase 创建固定口令校验器
func NewFixedPassphrase(secret string) FixedPassphrase {
	return FixedPassphrase{secret: secret}
}

func (f FixedPassphrase) Verify(passphrase string) bool {
	return subtle.ConstantTimeCompare([]byte(f.secret), []byte(passphrase)) == 1
}
