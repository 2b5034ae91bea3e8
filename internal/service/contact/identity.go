package contact

import (
	"slices"

	"kama_contact_book/internal/model"
	"kama_contact_book/pkg/errorx"
)

// Identity 用户选中联系人时捕获的标识
// 修改类操作在执行时用它重新到当前列表中查找记录，而不是信任一个可能因排序、过滤、搜索而失效的行号。
// 解析顺序：ID；ID 为空或已找不到时按 (Name, Phone) 组合键；只给 Phone 时按电话查找
type Identity struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// IdentityOf 捕获记录的标识
func IdentityOf(c model.Contact) Identity {
	return Identity{ID: c.ID, Name: c.Name, Phone: c.Phone}
}

// IsZero 未选中任何记录
func (i Identity) IsZero() bool {
	return i.ID == "" && i.Phone == ""
}

// matchKey 按 (Name, Phone) 组合键或仅按电话匹配，不看 ID
func (i Identity) matchKey(c model.Contact) bool {
	switch {
	case i.Name != "":
		return c.Matches(i.Name, i.Phone)
	case i.Phone != "":
		return c.Phone == i.Phone
	}
	return false
}

// Select 按展示位置选中记录，立即捕获其稳定标识
// view 是调用方当前展示的列表（可能是搜索或过滤结果）
func Select(view []model.Contact, index int) (Identity, error) {
	if index < 0 || index >= len(view) {
		return Identity{}, errorx.ErrNotFound
	}
	return IdentityOf(view[index]), nil
}

// resolve 在当前列表中查找标识对应的下标，找不到返回 -1
// 先按 ID 查找；ID 找不到时（例如文件重新加载后旧记录分到了新 ID）退回到组合键
// 调用方必须持有 s.mu
func (s *Store) resolve(id Identity) int {
	if id.ID != "" {
		if idx := slices.IndexFunc(s.contacts, func(c model.Contact) bool { return c.ID == id.ID }); idx >= 0 {
			return idx
		}
	}
	return slices.IndexFunc(s.contacts, id.matchKey)
}

// resolveAll 解析一组标识，返回命中记录的 ID 集合
// 同一记录被多次选中只计一次；任一标识无法解析即返回 NotFound
func (s *Store) resolveAll(ids []Identity) (map[string]struct{}, error) {
	targets := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		idx := s.resolve(id)
		if idx < 0 {
			return nil, errorx.Wrapf(errorx.ErrNotFound, errorx.CodeNotFound, "联系人不存在 phone=%s", id.Phone)
		}
		targets[s.contacts[idx].ID] = struct{}{}
	}
	return targets, nil
}

func nonZero(ids []Identity) []Identity {
	out := ids[:0:0]
	for _, id := range ids {
		if !id.IsZero() {
			out = append(out, id)
		}
	}
	return out
}
