package jsonfile

import (
	"kama_contact_book/internal/config"
)

// Repositories 聚合所有 Repository 实例
// 作为依赖注入的入口，Service 层通过此结构访问数据层
type Repositories struct {
	Contact ContactRepository // 联系人 Repository
	Account AccountRepository // 账号 Repository
}

// NewRepositories 根据持久化配置创建所有 Repository 实例
func NewRepositories(cfg *config.StorageConfig) *Repositories {
	return &Repositories{
		Contact: NewContactRepository(cfg.DataDir),
		Account: NewAccountRepository(cfg.AccountFilePath()),
	}
}
