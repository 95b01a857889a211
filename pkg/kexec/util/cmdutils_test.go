package util

import (
	"fmt"
	"testing"
)

func TestGetFullName(t *testing.T) {
	if got := GetFullName("kexec", "exec"); got != "kexec exec" {
		t.Errorf("GetFullName() = %q, want %q", got, "kexec exec")
	}
}

func TestExitCodeError(t *testing.T) {
	err := fmt.Errorf("command failed: %w", ExitCodeError{Code: 3})
	if err.Error() != "command failed: exit status 3" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
