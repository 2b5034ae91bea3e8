package jsonfile

import (
	"net/url"
	"path/filepath"

	"kama_contact_book/internal/model"
	"kama_contact_book/pkg/constants"
	"kama_contact_book/pkg/enum/contact/contact_status_enum"

	"go.uber.org/zap"
)

// storedContact 文件中的联系人记录
// 同时兼容新格式（单一 status 字段）和旧格式（favourite/blocked 两个布尔字段）
type storedContact struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Status    string `json:"status,omitempty"`
	Favourite bool   `json:"favourite,omitempty"`
	Blocked   bool   `json:"blocked,omitempty"`
}

// normalize 将文件记录归一化为模型
// 旧格式两个布尔值同时为 true 时以 blocked 为准
func (s storedContact) normalize() model.Contact {
	status, ok := contact_status_enum.Parse(s.Status)
	if !ok {
		if s.Status != "" {
			zap.L().Warn("unknown contact status, reset to normal",
				zap.String("phone", s.Phone),
				zap.String("status", s.Status),
			)
		}
		status = contact_status_enum.NORMAL
	}
	if s.Favourite {
		status = contact_status_enum.FAVOURITE
	}
	if s.Blocked {
		status = contact_status_enum.BLOCKED
	}
	return model.Contact{
		ID:     s.ID,
		Name:   s.Name,
		Phone:  s.Phone,
		Email:  s.Email,
		Status: status,
	}
}

type contactRepository struct {
	dataDir string
}

// NewContactRepository 创建联系人 Repository，dataDir 下每个用户一个 <username>.json
func NewContactRepository(dataDir string) ContactRepository {
	return &contactRepository{dataDir: dataDir}
}

// path 用户联系人文件路径，用户名经过转义，不会逃出 dataDir
func (r *contactRepository) path(owner string) string {
	return filepath.Join(r.dataDir, url.PathEscape(owner)+constants.CONTACT_FILE_SUFFIX)
}

// Load 读取用户联系人
func (r *contactRepository) Load(owner string) ([]model.Contact, error) {
	path := r.path(owner)

	var stored []storedContact
	if err := readJSONFile(path, &stored); err != nil {
		if recoverable(path, err) {
			return []model.Contact{}, nil
		}
		return nil, err
	}

	contacts := make([]model.Contact, 0, len(stored))
	for _, s := range stored {
		contacts = append(contacts, s.normalize())
	}
	return contacts, nil
}

// Save 整体重写用户联系人文件，只写新格式
func (r *contactRepository) Save(owner string, contacts []model.Contact) error {
	if contacts == nil {
		contacts = []model.Contact{}
	}
	if err := writeJSONFile(r.path(owner), contacts); err != nil {
		zap.L().Error("save contacts failed", zap.String("owner", owner), zap.Error(err))
		return err
	}
	return nil
}
