package request

// FilterContactRequest 按状态过滤联系人请求
// 使用位置:
//   - handler/contact_handler.go: Filter
type FilterContactRequest struct {
	Status string `form:"status" json:"status" binding:"required,contactstatus"`
}
