package session

import (
	"errors"
	"path/filepath"
	"testing"

	"kama_contact_book/internal/dao/jsonfile"
	"kama_contact_book/internal/infrastructure/credential"
	"kama_contact_book/internal/service/account"
	"kama_contact_book/internal/service/contact"
	"kama_contact_book/pkg/enum/session/session_state_enum"
	"kama_contact_book/pkg/errorx"
)

func newTestController(t *testing.T) *Controller {
	t.Helper()
	dir := t.TempDir()
	accounts := account.NewAccountService(
		jsonfile.NewAccountRepository(filepath.Join(dir, "users.json")), credential.PlainHasher{})
	return NewController(credential.NewFixedPassphrase("1317"), accounts,
		jsonfile.NewContactRepository(dir), contact.Options{SortOnMutation: true},
		func(username string) (string, error) { return "token-" + username, nil })
}

func TestStartsLocked(t *testing.T) {
	c := newTestController(t)
	if st, user := c.State(); st != session_state_enum.LOCKED || user != "" {
		t.Fatalf("state = %s %q", st, user)
	}
	if err := c.Signup("bob", "pw"); errorx.GetCode(err) != errorx.CodeAppLocked {
		t.Fatalf("signup while locked: %v", err)
	}
	if _, err := c.Login("bob", "pw"); errorx.GetCode(err) != errorx.CodeAppLocked {
		t.Fatalf("login while locked: %v", err)
	}
	if _, err := c.Store("bob"); errorx.GetCode(err) != errorx.CodeAppLocked {
		t.Fatalf("store while locked: %v", err)
	}
}

func TestUnlock(t *testing.T) {
	c := newTestController(t)
	if err := c.Unlock("0000"); !errors.Is(err, errorx.ErrWrongPassphrase) {
		t.Fatalf("wrong passphrase: %v", err)
	}
	if st, _ := c.State(); st != session_state_enum.LOCKED {
		t.Fatalf("state = %s", st)
	}
	if err := c.Unlock("1317"); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if st, _ := c.State(); st != session_state_enum.LOGGED_OUT {
		t.Fatalf("state = %s", st)
	}
	// 已解锁后再次调用不影响状态
	if err := c.Unlock("whatever"); err != nil {
		t.Fatalf("second unlock: %v", err)
	}
}

func TestSignupDoesNotLogIn(t *testing.T) {
	c := newTestController(t)
	if err := c.Unlock("1317"); err != nil {
		t.Fatal(err)
	}
	if err := c.Signup("bob", "pw"); err != nil {
		t.Fatalf("signup: %v", err)
	}
	if st, user := c.State(); st != session_state_enum.LOGGED_OUT || user != "" {
		t.Fatalf("state = %s %q", st, user)
	}
	if err := c.Signup("bob", "again"); !errors.Is(err, errorx.ErrDuplicateAccount) {
		t.Fatalf("duplicate signup: %v", err)
	}
	if err := c.Signup("", "pw"); errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("empty signup: %v", err)
	}
}

func TestLogin(t *testing.T) {
	c := newTestController(t)
	if err := c.Unlock("1317"); err != nil {
		t.Fatal(err)
	}
	if err := c.Signup("bob", "pw"); err != nil {
		t.Fatal(err)
	}

	if _, err := c.Login("bob", "x"); !errors.Is(err, errorx.ErrInvalidCredentials) {
		t.Fatalf("wrong password: %v", err)
	}
	if st, _ := c.State(); st != session_state_enum.LOGGED_OUT {
		t.Fatalf("state after failed login = %s", st)
	}

	res, err := c.Login("bob", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.Username != "bob" || res.AccessToken != "token-bob" {
		t.Fatalf("result = %+v", res)
	}
	if st, user := c.State(); st != session_state_enum.LOGGED_IN || user != "bob" {
		t.Fatalf("state = %s %q", st, user)
	}

	store, err := c.Store("bob")
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if store.Owner() != "bob" || !store.SortOnMutation() {
		t.Fatalf("store owner=%q sort=%v", store.Owner(), store.SortOnMutation())
	}
	if _, err := c.Store("alice"); errorx.GetCode(err) != errorx.CodeUnauthorized {
		t.Fatalf("other user: %v", err)
	}
}

func TestLoginSwitchesUserAndRebindsStore(t *testing.T) {
	c := newTestController(t)
	if err := c.Unlock("1317"); err != nil {
		t.Fatal(err)
	}
	for _, u := range []string{"alice", "bob"} {
		if err := c.Signup(u, "pw"); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := c.Login("alice", "pw"); err != nil {
		t.Fatal(err)
	}
	aliceStore, _ := c.Store("alice")
	if _, err := aliceStore.Add("Carol", "555-3", ""); err != nil {
		t.Fatal(err)
	}

	// 失败的登录不影响当前用户
	if _, err := c.Login("bob", "bad"); err == nil {
		t.Fatal("bad login accepted")
	}
	if _, user := c.State(); user != "alice" {
		t.Fatalf("user = %q", user)
	}

	if _, err := c.Login("bob", "pw"); err != nil {
		t.Fatal(err)
	}
	bobStore, err := c.Store("bob")
	if err != nil {
		t.Fatal(err)
	}
	if bobStore.Len() != 0 {
		t.Fatalf("bob sees alice's contacts: %v", bobStore.ListAll())
	}

	// 重新登录 alice 会从文件重新加载
	if _, err := c.Login("alice", "pw"); err != nil {
		t.Fatal(err)
	}
	again, _ := c.Store("alice")
	if again == aliceStore || again.Len() != 1 {
		t.Fatalf("store not rebound: same=%v len=%d", again == aliceStore, again.Len())
	}
}

func TestLoginTokenFailure(t *testing.T) {
	dir := t.TempDir()
	accounts := account.NewAccountService(
		jsonfile.NewAccountRepository(filepath.Join(dir, "users.json")), credential.PlainHasher{})
	c := NewController(credential.NewFixedPassphrase("1317"), accounts, jsonfile.NewContactRepository(dir),
		contact.Options{}, func(string) (string, error) { return "", errors.New("no key") })
	if err := c.Unlock("1317"); err != nil {
		t.Fatal(err)
	}
	if err := c.Signup("bob", "pw"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Login("bob", "pw"); !errors.Is(err, errorx.ErrServerBusy) {
		t.Fatalf("err = %v", err)
	}
	if st, _ := c.State(); st != session_state_enum.LOGGED_OUT {
		t.Fatalf("state = %s", st)
	}
}
