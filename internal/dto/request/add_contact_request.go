package request

// AddContactRequest 添加联系人请求
// name 与 phone 的必填校验由联系人存储完成，以便返回 RequiredFieldMissing
// 使用位置:
//   - handler/contact_handler.go: Add
type AddContactRequest struct {
	Name  string `json:"name" binding:"max=100"`
	Phone string `json:"phone" binding:"max=32"`
	Email string `json:"email" binding:"max=254"`
}
