// Package service 提供业务逻辑层
// 本文件实现 Service 层的依赖注入和聚合
package service

import (
	"kama_contact_book/internal/config"
	"kama_contact_book/internal/dao/jsonfile"
	"kama_contact_book/internal/infrastructure/credential"
	"kama_contact_book/internal/service/account"
	"kama_contact_book/internal/service/contact"
	"kama_contact_book/internal/service/session"
	"kama_contact_book/pkg/util/jwt"
)

// Services 聚合所有 Service 实例
type Services struct {
	Account AccountService // 账号 Service
	Session SessionService // 会话 Service
}

// NewServices 创建并注入所有 Service 实例
// 依赖注入流程：
//  1. 根据配置选择密码存储方式
//  2. 创建账号 Service，注入账号 Repository
//  3. 创建会话控制器，注入口令校验、账号 Service 与联系人 Repository
func NewServices(repos *jsonfile.Repositories, cfg *config.Config) (*Services, error) {
	hasher, err := credential.NewPasswordHasher(cfg.SecurityConfig.PasswordHasher)
	if err != nil {
		return nil, err
	}
	accountSvc := account.NewAccountService(repos.Account, hasher)
	sessionSvc := session.NewController(
		credential.NewFixedPassphrase(cfg.AppLockConfig.Passphrase),
		accountSvc,
		repos.Contact,
		contact.Options{SortOnMutation: cfg.StorageConfig.SortOnMutation},
		jwt.GenerateAccessToken,
	)

	return &Services{
		Account: accountSvc,
		Session: sessionSvc,
	}, nil
}
