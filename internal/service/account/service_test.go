package account

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"kama_contact_book/internal/dao/jsonfile"
	"kama_contact_book/internal/infrastructure/credential"
	"kama_contact_book/internal/model"
	"kama_contact_book/pkg/errorx"
)

type countingRepo struct {
	book  model.AccountBook
	loads int
	saves int
}

func (r *countingRepo) Load() (model.AccountBook, error) {
	r.loads++
	out := model.AccountBook{}
	for k, v := range r.book {
		out[k] = v
	}
	return out, nil
}

func (r *countingRepo) Save(book model.AccountBook) error {
	r.saves++
	r.book = book
	return nil
}

func TestRegisterEmptyFieldsSkipStore(t *testing.T) {
	repo := &countingRepo{}
	svc := NewAccountService(repo, credential.PlainHasher{})

	for _, tc := range [][2]string{{"", "pw"}, {"bob", ""}, {"   ", "pw"}} {
		err := svc.Register(tc[0], tc[1])
		if errorx.GetCode(err) != errorx.CodeInvalidParam {
			t.Errorf("Register(%q,%q) = %v", tc[0], tc[1], err)
		}
	}
	if repo.loads != 0 || repo.saves != 0 {
		t.Fatalf("store touched: loads=%d saves=%d", repo.loads, repo.saves)
	}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	svc := NewAccountService(jsonfile.NewAccountRepository(path), credential.PlainHasher{})

	// 账号文件从未创建过
	ok, err := svc.Authenticate("bob", "pw")
	if err != nil || ok {
		t.Fatalf("fresh store: ok=%v err=%v", ok, err)
	}

	if err := svc.Register("bob", "pw"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if ok, _ := svc.Authenticate("bob", "pw"); !ok {
		t.Fatal("right password rejected")
	}
	if ok, _ := svc.Authenticate("bob", "x"); ok {
		t.Fatal("wrong password accepted")
	}
	if ok, _ := svc.Authenticate("alice", "pw"); ok {
		t.Fatal("unknown user accepted")
	}

	err = svc.Register("bob", "other")
	if !errors.Is(err, errorx.ErrDuplicateAccount) {
		t.Fatalf("duplicate register: %v", err)
	}
	if ok, _ := svc.Authenticate("bob", "pw"); !ok {
		t.Fatal("duplicate register overwrote password")
	}
}

func TestRegisterKeepsOtherAccounts(t *testing.T) {
	repo := &countingRepo{book: model.AccountBook{"alice": "a"}}
	svc := NewAccountService(repo, credential.PlainHasher{})
	if err := svc.Register("bob", "b"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if repo.book["alice"] != "a" || repo.book["bob"] != "b" {
		t.Fatalf("book = %v", repo.book)
	}
}

func TestBcryptAccountsDoNotStorePlaintext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	svc := NewAccountService(jsonfile.NewAccountRepository(path), credential.BcryptHasher{Cost: bcrypt.MinCost})
	if err := svc.Register("bob", "pw"); err != nil {
		t.Fatalf("register: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(raw) == 0 || bytes.Contains(raw, []byte(`"pw"`)) {
		t.Fatalf("plaintext stored: %s", raw)
	}
	if ok, _ := svc.Authenticate("bob", "pw"); !ok {
		t.Fatal("bcrypt account rejected")
	}
}

func TestAuthenticateCorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	svc := NewAccountService(jsonfile.NewAccountRepository(path), credential.PlainHasher{})
	ok, err := svc.Authenticate("bob", "pw")
	if err != nil || ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if err := svc.Register("bob", "pw"); err != nil {
		t.Fatalf("register over corrupt file: %v", err)
	}
}
