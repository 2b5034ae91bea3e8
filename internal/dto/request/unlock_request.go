package request

// UnlockRequest 应用解锁请求
// 使用位置:
//   - handler/session_handler.go: Unlock
type UnlockRequest struct {
	Passphrase string `json:"passphrase" binding:"required"`
}
