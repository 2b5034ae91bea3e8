// Package model 定义持久化实体模型
// 本文件定义账号映射模型
package model

// Account 账号记录
// Password 中保存的是凭证比较值，具体格式由 credential.PasswordHasher 决定
// （默认 plain 模式下为明文，bcrypt 模式下为哈希）
type Account struct {
	Username string
	Password string
}

// AccountBook 用户名到密码比较值的映射，对应账号映射文件的整体内容
type AccountBook map[string]string

// Has 判断用户名是否已注册
func (b AccountBook) Has(username string) bool {
	_, ok := b[username]
	return ok
}

// Get 获取账号记录
func (b AccountBook) Get(username string) (Account, bool) {
	pwd, ok := b[username]
	if !ok {
		return Account{}, false
	}
	return Account{Username: username, Password: pwd}, true
}

// Put 写入账号记录
func (b AccountBook) Put(acc Account) {
	b[acc.Username] = acc.Password
}
