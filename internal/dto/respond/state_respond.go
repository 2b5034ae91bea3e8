package respond

// StateRespond 应用会话状态
// 使用位置:
//   - handler/session_handler.go: Unlock, State
type StateRespond struct {
	State       string `json:"state"`
	CurrentUser string `json:"current_user"`
}
