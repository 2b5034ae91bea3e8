package request

// LoginRequest 用户名密码登录请求
// 使用位置:
//   - handler/session_handler.go: Login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
