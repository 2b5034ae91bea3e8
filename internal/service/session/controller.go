// Package session 应用访问控制状态机
// Locked -> LoggedOut -> LoggedIn(user)，所有状态切换都是同步的，没有超时
package session

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"kama_contact_book/internal/dao/jsonfile"
	"kama_contact_book/internal/infrastructure/credential"
	"kama_contact_book/internal/service/contact"
	"kama_contact_book/pkg/enum/session/session_state_enum"
	"kama_contact_book/pkg/errorx"
)

// Accounts 控制器依赖的账号能力
type Accounts interface {
	Register(username, password string) error
	Authenticate(username, password string) (bool, error)
}

// TokenIssuer 登录成功后为用户签发访问令牌
type TokenIssuer func(username string) (string, error)

// LoginResult 登录结果
type LoginResult struct {
	Username    string
	AccessToken string
}

// Controller 会话控制器
type Controller struct {
	mu       sync.RWMutex
	state    session_state_enum.State
	user     string
	store    *contact.Store
	gate     credential.PassphraseVerifier
	accounts Accounts
	contacts jsonfile.ContactRepository
	opts     contact.Options
	issue    TokenIssuer
}

// NewController 创建处于 Locked 状态的控制器
func NewController(gate credential.PassphraseVerifier, accounts Accounts, contacts jsonfile.ContactRepository,
	opts contact.Options, issue TokenIssuer) *Controller {
	return &Controller{
		state:    session_state_enum.LOCKED,
		gate:     gate,
		accounts: accounts,
		contacts: contacts,
		opts:     opts,
		issue:    issue,
	}
}

// Unlock 输入应用口令
// 已解锁时直接返回
func (c *Controller) Unlock(passphrase string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != session_state_enum.LOCKED {
		return nil
	}
	if !c.gate.Verify(passphrase) {
		zap.L().Warn("应用口令错误")
		return errorx.ErrWrongPassphrase
	}
	c.state = session_state_enum.LOGGED_OUT
	zap.L().Info("应用已解锁")
	return nil
}

// Login 登录并加载该用户的联系人
// 已登录时允许切换用户，新的 Store 加载成功后才替换旧的
func (c *Controller) Login(username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == session_state_enum.LOCKED {
		return nil, errAppLocked
	}
	ok, err := c.accounts.Authenticate(username, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		zap.L().Info("登录失败", zap.String("username", username))
		return nil, errorx.ErrInvalidCredentials
	}

	store, err := contact.Open(username, c.contacts, c.opts)
	if err != nil {
		return nil, err
	}
	token, err := c.issue(username)
	if err != nil {
		zap.L().Error("生成 Access Token 失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	c.state = session_state_enum.LOGGED_IN
	c.user = username
	c.store = store
	zap.L().Info("登录成功", zap.String("username", username), zap.Int("contacts", store.Len()))
	return &LoginResult{Username: username, AccessToken: token}, nil
}

// Signup 注册新账号，不会自动登录
func (c *Controller) Signup(username, password string) error {
	c.mu.RLock()
	locked := c.state == session_state_enum.LOCKED
	c.mu.RUnlock()

	if locked {
		return errAppLocked
	}
	return c.accounts.Register(username, password)
}

// State 返回当前状态与登录用户
func (c *Controller) State() (session_state_enum.State, string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state, c.user
}

// Store 返回当前用户的联系人存储
// username 必须是当前登录的用户
func (c *Controller) Store(username string) (*contact.Store, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch {
	case c.state != session_state_enum.LOGGED_IN:
		return nil, errAppLocked
	case c.user != username:
		return nil, errorx.New(errorx.CodeUnauthorized, "登录状态已失效，请重新登录")
	}
	return c.store, nil
}

var errAppLocked = errorx.New(errorx.CodeAppLocked, "当前状态不允许该操作")
