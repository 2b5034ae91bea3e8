// Package jsonfile 定义数据访问层接口及基于 JSON 文件的实现
// 每次保存都整体重写文件，不做增量追加
//
// 注意：文件没有任何加锁或版本校验，多个进程同时写同一文件时后写者覆盖先写者，
// 系统假定同一时刻只有一个进程持有这些文件
package jsonfile

import (
	"kama_contact_book/internal/model"
)

// ContactRepository 用户联系人文件访问接口
// owner 为已登录用户名，每个用户对应一个独立文件
type ContactRepository interface {
	// Load 读取用户的全部联系人
	// 文件不存在或内容损坏时返回空列表而不是错误；旧格式的 favourite/blocked 布尔字段会被归一化为 status
	Load(owner string) ([]model.Contact, error)
	// Save 整体重写用户的联系人文件
	Save(owner string, contacts []model.Contact) error
}

// AccountRepository 账号映射文件访问接口
type AccountRepository interface {
	// Load 读取全部账号，文件不存在或内容损坏时返回空映射
	Load() (model.AccountBook, error)
	// Save 整体重写账号映射文件
	Save(book model.AccountBook) error
}
