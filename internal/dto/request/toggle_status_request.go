package request

// ToggleStatusRequest 切换收藏/拉黑请求，支持多选
// 使用位置:
//   - handler/contact_handler.go: ToggleStatus
type ToggleStatusRequest struct {
	Targets []ContactTarget `json:"targets"`
	Status  string          `json:"status" binding:"required,oneof=favourite blocked"`
}
