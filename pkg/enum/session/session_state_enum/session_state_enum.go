// Package session_state_enum 定义应用会话状态
package session_state_enum

type State string

const (
	LOCKED     State = "locked"     // 未输入应用口令
	LOGGED_OUT State = "logged_out" // 已解锁，未登录
	LOGGED_IN  State = "logged_in"  // 已登录
)
