package credential

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPlainHasher(t *testing.T) {
	var h PasswordHasher = PlainHasher{}
	stored, err := h.Hash("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if stored != "secret" {
		t.Fatalf("plain hasher changed value: %q", stored)
	}
	if !h.Verify(stored, "secret") || h.Verify(stored, "Secret") {
		t.Fatal("plain verify mismatch")
	}
}

func TestBcryptHasher(t *testing.T) {
	h := BcryptHasher{Cost: bcrypt.MinCost}
	stored, err := h.Hash("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if stored == "secret" {
		t.Fatal("bcrypt stored plaintext")
	}
	if !h.Verify(stored, "secret") {
		t.Fatal("bcrypt verify failed for right password")
	}
	if h.Verify(stored, "wrong") {
		t.Fatal("bcrypt verify passed for wrong password")
	}
	if h.Verify("secret", "secret") {
		t.Fatal("bcrypt must not accept a plaintext stored value")
	}
}

func TestNewPasswordHasher(t *testing.T) {
	tests := []struct {
		kind    string
		want    PasswordHasher
		wantErr bool
	}{
		{kind: "", want: PlainHasher{}},
		{kind: HasherPlain, want: PlainHasher{}},
		{kind: HasherBcrypt, want: BcryptHasher{}},
		{kind: "md5", wantErr: true},
	}
	for _, tt := range tests {
		got, err := NewPasswordHasher(tt.kind)
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: err = %v", tt.kind, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: got %#v, want %#v", tt.kind, got, tt.want)
		}
	}
}

func TestFixedPassphrase(t *testing.T) {
	gate := NewFixedPassphrase("1317")
	if !gate.Verify("1317") {
		t.Fatal("right passphrase rejected")
	}
	for _, wrong := range []string{"", "131", "13170", "abcd"} {
		if gate.Verify(wrong) {
			t.Fatalf("wrong passphrase %q accepted", wrong)
		}
	}
}
