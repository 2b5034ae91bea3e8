package request

// EditContactRequest 编辑联系人请求
// 使用位置:
//   - handler/contact_handler.go: Edit
type EditContactRequest struct {
	Target ContactTarget `json:"target"`
	Name   string        `json:"name" binding:"max=100"`
	Phone  string        `json:"phone" binding:"max=32"`
	Email  string        `json:"email" binding:"max=254"`
}
