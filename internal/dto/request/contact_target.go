package request

// ContactTarget 被选中联系人的标识
// 优先使用 id；没有 id 时按 name + phone 组合键查找，只给 phone 时按电话查找
type ContactTarget struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
