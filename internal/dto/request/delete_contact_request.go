package request

// DeleteContactRequest 删除联系人请求，支持多选
// 使用位置:
//   - handler/contact_handler.go: Delete
type DeleteContactRequest struct {
	Targets []ContactTarget `json:"targets"`
}
