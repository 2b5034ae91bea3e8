// Package account 账号存储：注册与认证
// 每次注册都对账号映射文件做一次完整的读取、修改、写回
package account

import (
	"strings"

	"go.uber.org/zap"

	"kama_contact_book/internal/dao/jsonfile"
	"kama_contact_book/internal/infrastructure/credential"
	"kama_contact_book/internal/model"
	"kama_contact_book/pkg/errorx"
)

// accountService 账号业务逻辑实现
type accountService struct {
	repo   jsonfile.AccountRepository
	hasher credential.PasswordHasher
}

// NewAccountService 构造函数，注入账号 Repository 与密码校验方式
func NewAccountService(repo jsonfile.AccountRepository, hasher credential.PasswordHasher) *accountService {
	return &accountService{repo: repo, hasher: hasher}
}

// Register 注册账号
// 用户名或密码为空时在访问文件之前就返回 InvalidParam
func (a *accountService) Register(username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return errorx.New(errorx.CodeInvalidParam, "用户名和密码不能为空")
	}

	book, err := a.repo.Load()
	if err != nil {
		return err
	}
	if book.Has(username) {
		zap.L().Info("该用户名已经存在，注册失败", zap.String("username", username))
		return errorx.ErrDuplicateAccount
	}

	stored, err := a.hasher.Hash(password)
	if err != nil {
		zap.L().Error("密码处理失败", zap.Error(err))
		return errorx.ErrServerBusy
	}
	book.Put(model.Account{Username: username, Password: stored})
	if err := a.repo.Save(book); err != nil {
		return err
	}
	zap.L().Info("账号注册成功", zap.String("username", username))
	return nil
}

// Authenticate 校验用户名密码
// 账号文件不存在或没有该用户时返回 false；只有文件读写失败才返回 error
func (a *accountService) Authenticate(username, password string) (bool, error) {
	book, err := a.repo.Load()
	if err != nil {
		return false, err
	}
	acc, ok := book.Get(strings.TrimSpace(username))
	if !ok {
		return false, nil
	}
	return a.hasher.Verify(acc.Password, password), nil
}
