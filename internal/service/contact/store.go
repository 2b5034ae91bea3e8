// Package contact 实现联系人记录存储（Contact Record Store）
// Store 独占当前登录用户的联系人列表，所有读写都经过它的方法；
// 每次修改都会整体重写该用户的联系人文件
package contact

import (
	"iter"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"kama_contact_book/internal/dao/jsonfile"
	"kama_contact_book/internal/model"
	"kama_contact_book/pkg/enum/contact/contact_status_enum"
	"kama_contact_book/pkg/errorx"
)

// Options Store 配置
type Options struct {
	// SortOnMutation 为 true 时每次修改后按姓名（不区分大小写）升序稳定排序；
	// 为 false 时保持插入顺序
	SortOnMutation bool
}

// Store 单个用户的联系人记录存储
type Store struct {
	mu       sync.Mutex // 保证同一进程内的操作串行执行
	owner    string
	repo     jsonfile.ContactRepository
	opts     Options
	contacts []model.Contact
	newID    func() string
}

// NewStore 创建空的 Store，需要调用 Load 读取文件
func NewStore(owner string, repo jsonfile.ContactRepository, opts Options) *Store {
	return &Store{
		owner:    owner,
		repo:     repo,
		opts:     opts,
		contacts: []model.Contact{},
		newID:    uuid.NewString,
	}
}

// Open 创建 Store 并立即加载用户文件
func Open(owner string, repo jsonfile.ContactRepository, opts Options) (*Store, error) {
	s := NewStore(owner, repo, opts)
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Owner 返回 Store 所属用户名
func (s *Store) Owner() string {
	return s.owner
}

// SortOnMutation 返回当前排序模式
func (s *Store) SortOnMutation() bool {
	return s.opts.SortOnMutation
}

// Load 从用户文件重新加载联系人
// 文件缺失或损坏时得到空列表；没有 ID（或 ID 重复）的记录在这里分配新 ID 并立即写回
func (s *Store) Load() error {
	contacts, err := s.repo.Load(s.owner)
	if err != nil {
		return err
	}
	assigned := 0
	seen := make(map[string]struct{}, len(contacts))
	for i := range contacts {
		if _, dup := seen[contacts[i].ID]; dup || contacts[i].ID == "" {
			contacts[i].ID = s.newID()
			assigned++
		}
		seen[contacts[i].ID] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = contacts
	if assigned > 0 {
		// 立即写回新分配的 ID，保证下次加载得到同样的标识；写回失败不影响本次使用
		if err := s.repo.Save(s.owner, contacts); err != nil {
			zap.L().Warn("persist assigned contact ids failed",
				zap.String("owner", s.owner),
				zap.Int("assigned", assigned),
				zap.Error(err),
			)
		}
	}
	zap.L().Info("contacts loaded", zap.String("owner", s.owner), zap.Int("count", len(contacts)))
	return nil
}

// Add 添加联系人
func (s *Store) Add(name, phone, email string) (model.Contact, error) {
	name, phone, email = strings.TrimSpace(name), strings.TrimSpace(phone), strings.TrimSpace(email)
	if name == "" || phone == "" {
		return model.Contact{}, errorx.ErrRequiredFieldMissing
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexByPhone(s.contacts, phone) >= 0 {
		return model.Contact{}, errorx.ErrDuplicatePhone
	}

	c := model.Contact{
		ID:     s.newID(),
		Name:   name,
		Phone:  phone,
		Email:  email,
		Status: contact_status_enum.NORMAL,
	}
	err := s.commit(append(slices.Clone(s.contacts), c))
	if err != nil {
		return model.Contact{}, err
	}
	return c, nil
}

// Edit 修改联系人的姓名、电话、邮箱，状态保持不变
func (s *Store) Edit(id Identity, name, phone, email string) (model.Contact, error) {
	if id.IsZero() {
		return model.Contact{}, errorx.ErrNothingSelected
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.resolve(id)
	if idx < 0 {
		return model.Contact{}, errorx.ErrNotFound
	}

	name, phone, email = strings.TrimSpace(name), strings.TrimSpace(phone), strings.TrimSpace(email)
	if name == "" || phone == "" {
		return model.Contact{}, errorx.ErrRequiredFieldMissing
	}
	// 电话未变时不做重复检查，旧文件中已存在的重复电话仍可编辑其他字段
	if phone != s.contacts[idx].Phone && s.indexByPhone(s.contacts, phone) >= 0 {
		return model.Contact{}, errorx.ErrDuplicatePhone
	}

	next := slices.Clone(s.contacts)
	c := &next[idx]
	c.Name, c.Phone, c.Email = name, phone, email
	updated := *c

	if err := s.commit(next); err != nil {
		return model.Contact{}, err
	}
	return updated, nil
}

// Delete 删除一个或多个联系人，全部删除后只保存一次
// 任一标识无法解析时不做任何删除并返回 NotFound
func (s *Store) Delete(ids ...Identity) (int, error) {
	ids = nonZero(ids)
	if len(ids) == 0 {
		return 0, errorx.ErrNothingSelected
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	targets, err := s.resolveAll(ids)
	if err != nil {
		return 0, err
	}

	next := slices.DeleteFunc(slices.Clone(s.contacts), func(c model.Contact) bool {
		_, ok := targets[c.ID]
		return ok
	})
	if err := s.commit(next); err != nil {
		return 0, err
	}
	return len(targets), nil
}

// ToggleStatus 切换联系人状态
// 当前状态等于 target 时恢复为 normal，否则设置为 target；
// 收藏与拉黑共用一个字段，设置其一即清除另一个
func (s *Store) ToggleStatus(target contact_status_enum.Status, ids ...Identity) ([]model.Contact, error) {
	if !target.Toggleable() {
		return nil, errorx.Newf(errorx.CodeInvalidParam, "不支持切换到状态 %q", target)
	}
	ids = nonZero(ids)
	if len(ids) == 0 {
		return nil, errorx.ErrNothingSelected
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	targets, err := s.resolveAll(ids)
	if err != nil {
		return nil, err
	}

	next := slices.Clone(s.contacts)
	updated := make([]model.Contact, 0, len(targets))
	for i := range next {
		if _, ok := targets[next[i].ID]; !ok {
			continue
		}
		if next[i].Status == target {
			next[i].Status = contact_status_enum.NORMAL
		} else {
			next[i].Status = target
		}
		updated = append(updated, next[i])
	}

	if err := s.commit(next); err != nil {
		return nil, err
	}
	return updated, nil
}

// Search 按姓名（不区分大小写）或电话（原样匹配）子串搜索
// 返回惰性序列，基于调用时的快照，不会修改或保存底层列表；空字符串返回全部
func (s *Store) Search(term string) iter.Seq[model.Contact] {
	snapshot := s.ListAll()
	return func(yield func(model.Contact) bool) {
		fold := cases.Fold()
		needle := fold.String(term)
		for _, c := range snapshot {
			if term != "" && !strings.Contains(fold.String(c.Name), needle) && !strings.Contains(c.Phone, term) {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// SearchAll 收集 Search 的全部结果
func (s *Store) SearchAll(term string) []model.Contact {
	out := slices.Collect(s.Search(term))
	if out == nil {
		out = []model.Contact{}
	}
	return out
}

// FilterByStatus 返回指定状态的联系人
func (s *Store) FilterByStatus(status contact_status_enum.Status) ([]model.Contact, error) {
	if !status.Valid() {
		return nil, errorx.Newf(errorx.CodeInvalidParam, "未知状态 %q", status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Contact, 0)
	for _, c := range s.contacts {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

// ListAll 返回当前展示顺序下的全部联系人快照
func (s *Store) ListAll() []model.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.contacts)
}

// Len 返回联系人数量
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.contacts)
}

// commit 排序（如已开启）并保存，保存成功后才替换内存中的列表
// 调用方必须持有 s.mu
func (s *Store) commit(next []model.Contact) error {
	if s.opts.SortOnMutation {
		sortByName(next)
	}
	if err := s.repo.Save(s.owner, next); err != nil {
		return err
	}
	s.contacts = next
	return nil
}

func (s *Store) indexByPhone(list []model.Contact, phone string) int {
	return slices.IndexFunc(list, func(c model.Contact) bool { return c.Phone == phone })
}

// sortByName 按姓名不区分大小写升序排序，姓名相同时保持原有相对顺序
func sortByName(list []model.Contact) {
	fold := cases.Fold()
	keys := make(map[string]string, len(list))
	for _, c := range list {
		keys[c.ID] = fold.String(c.Name)
	}
	slices.SortStableFunc(list, func(a, b model.Contact) int {
		return strings.Compare(keys[a.ID], keys[b.ID])
	})
}
