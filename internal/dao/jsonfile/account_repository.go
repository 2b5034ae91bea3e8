package jsonfile

import (
	"kama_contact_book/internal/model"

	"go.uber.org/zap"
)

type accountRepository struct {
	path string
}

// NewAccountRepository 创建账号 Repository
func NewAccountRepository(path string) AccountRepository {
	return &accountRepository{path: path}
}

// Load 读取账号映射
func (r *accountRepository) Load() (model.AccountBook, error) {
	book := model.AccountBook{}
	if err := readJSONFile(r.path, &book); err != nil {
		if recoverable(r.path, err) {
			return model.AccountBook{}, nil
		}
		return nil, err
	}
	// 文件内容为 null 时 Unmarshal 会把 map 置为 nil
	if book == nil {
		book = model.AccountBook{}
	}
	return book, nil
}

// Save 整体重写账号映射文件
func (r *accountRepository) Save(book model.AccountBook) error {
	if err := writeJSONFile(r.path, book); err != nil {
		zap.L().Error("save accounts failed", zap.String("path", r.path), zap.Error(err))
		return err
	}
	return nil
}
