package request

// RegisterRequest 注册请求
// 空用户名或密码由账号 Service 返回 InvalidParam
// 使用位置:
//   - handler/session_handler.go: Register
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
