package errorx

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestIsComparesByCode(t *testing.T) {
	err := Wrapf(ErrNotFound, CodeNotFound, "联系人不存在 phone=%s", "555")
	if !errors.Is(err, ErrNotFound) {
		t.Fatal("wrapped not-found not matched")
	}
	if errors.Is(err, ErrDuplicatePhone) {
		t.Fatal("different code matched")
	}
	if !IsNotFound(fmt.Errorf("edit: %w", err)) {
		t.Fatal("IsNotFound through fmt wrap")
	}
}

func TestWrapKeepsCause(t *testing.T) {
	err := Wrap(fs.ErrPermission, CodeStorageError, "写入失败")
	if !errors.Is(err, fs.ErrPermission) {
		t.Fatal("cause lost")
	}
	if got := err.Error(); got != "写入失败: "+fs.ErrPermission.Error() {
		t.Fatalf("Error() = %q", got)
	}
	if !HasCode(err, CodeStorageError) || HasCode(err, CodeNotFound) {
		t.Fatal("HasCode mismatch")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrNothingSelected, CodeNothingSelected},
		{fmt.Errorf("ctx: %w", ErrWrongPassphrase), CodeWrongPassphrase},
		{Newf(CodeAppLocked, "state %s", "locked"), CodeAppLocked},
		{errors.New("plain"), CodeServerBusy},
	}
	for _, tt := range tests {
		if got := GetCode(tt.err); got != tt.want {
			t.Errorf("GetCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
