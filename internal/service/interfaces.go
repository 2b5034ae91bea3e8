// Package service 定义业务层接口
// 本文件定义所有 Service 接口，供 Handler 层调用
package service

import (
	"kama_contact_book/internal/service/contact"
	"kama_contact_book/internal/service/session"
	"kama_contact_book/pkg/enum/session/session_state_enum"
)

// AccountService 账号业务接口
type AccountService interface {
	// Register 注册账号
	Register(username, password string) error
	// Authenticate 校验用户名密码
	Authenticate(username, password string) (bool, error)
}

// SessionService 应用会话接口
// 负责解锁、登录、注册以及把请求路由到当前用户的联系人存储
type SessionService interface {
	// Unlock 输入应用口令
	Unlock(passphrase string) error
	// Login 登录，成功后绑定该用户的联系人存储
	Login(username, password string) (*session.LoginResult, error)
	// Signup 注册，不会自动登录
	Signup(username, password string) error
	// State 当前状态与登录用户
	State() (session_state_enum.State, string)
	// Store 获取当前登录用户的联系人存储
	Store(username string) (*contact.Store, error)
}
