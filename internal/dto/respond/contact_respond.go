package respond

import "kama_contact_book/internal/model"

// ContactRespond 单个联系人
type ContactRespond struct {
	Id     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Status string `json:"status"`
	Label  string `json:"label"` // 展示文本，如 "⭐ Favourite"
}

// ContactListRespond 联系人列表
// 使用位置:
//   - handler/contact_handler.go: List, Search, Filter
type ContactListRespond struct {
	Total    int              `json:"total"`
	Contacts []ContactRespond `json:"contacts"`
}

// ContactMutationRespond 修改类操作的结果，附带修改后的完整列表
// 使用位置:
//   - handler/contact_handler.go: Add, Edit, Delete, ToggleStatus
type ContactMutationRespond struct {
	Affected []ContactRespond `json:"affected"`
	Removed  int              `json:"removed,omitempty"`
	Contacts []ContactRespond `json:"contacts"`
}

// NewContactRespond 转换单个联系人
func NewContactRespond(c model.Contact) ContactRespond {
	return ContactRespond{
		Id:     c.ID,
		Name:   c.Name,
		Phone:  c.Phone,
		Email:  c.Email,
		Status: string(c.Status),
		Label:  c.Status.Label(),
	}
}

// NewContactList 转换联系人列表，nil 输出为空数组
func NewContactList(list []model.Contact) []ContactRespond {
	out := make([]ContactRespond, 0, len(list))
	for _, c := range list {
		out = append(out, NewContactRespond(c))
	}
	return out
}
