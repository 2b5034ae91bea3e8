package respond

// LoginRespond 登录响应
// 使用位置:
//   - handler/session_handler.go: Login
type LoginRespond struct {
	Username    string `json:"username"`
	AccessToken string `json:"access_token"`
	State       string `json:"state"`
}
