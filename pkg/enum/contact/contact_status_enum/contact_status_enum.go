// Package contact_status_enum 定义联系人状态标签
// 收藏与拉黑互斥，由单一 Status 字段表达
package contact_status_enum

type Status string

const (
	NORMAL    Status = "normal"    // 普通
	FAVOURITE Status = "favourite" // 收藏
	BLOCKED   Status = "blocked"   // 拉黑
)

// Valid 判断是否为合法状态
func (s Status) Valid() bool {
	switch s {
	case NORMAL, FAVOURITE, BLOCKED:
		return true
	}
	return false
}

// Toggleable 判断是否可以作为切换目标（只有收藏和拉黑可以切换）
func (s Status) Toggleable() bool {
	return s == FAVOURITE || s == BLOCKED
}

// Label 返回展示用文本，如 "⭐ Favourite"
func (s Status) Label() string {
	switch s {
	case FAVOURITE:
		return "⭐ Favourite"
	case BLOCKED:
		return "🚫 Blocked"
	default:
		return "🙂 Normal"
	}
}

// Parse 将字符串解析为状态，非法值返回 false
func Parse(s string) (Status, bool) {
	st := Status(s)
	return st, st.Valid()
}
