// Package model 定义持久化实体模型
// 本文件定义联系人记录模型
package model

import (
	"kama_contact_book/pkg/enum/contact/contact_status_enum"
)

// Contact 联系人记录
// 对应用户联系人文件中的一条记录
type Contact struct {
	// ID 记录的稳定标识，添加时分配，不随改名、改号或排序变化
	ID string `json:"id,omitempty"`

	// Name 显示名称，搜索与排序时不区分大小写
	Name string `json:"name"`

	// Phone 电话号码，同一用户的联系人中唯一
	Phone string `json:"phone"`

	Email string `json:"email"`

	// Status 状态标签：normal / favourite / blocked，收藏与拉黑互斥
	Status contact_status_enum.Status `json:"status"`
}

// Matches 判断记录是否与给定的 (name, phone) 组合键一致
func (c Contact) Matches(name, phone string) bool {
	return c.Name == name && c.Phone == phone
}
