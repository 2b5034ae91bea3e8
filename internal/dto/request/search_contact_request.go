package request

// SearchContactRequest 搜索联系人请求，term 为空时返回全部
// 使用位置:
//   - handler/contact_handler.go: Search
type SearchContactRequest struct {
	Term string `form:"term" json:"term"`
}
