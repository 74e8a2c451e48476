package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidFormat, "not a Stockholm file: %s", "x.fa")
	if err.Code != ErrCodeInvalidFormat {
		t.Errorf("code = %s, want %s", err.Code, ErrCodeInvalidFormat)
	}
	want := "INVALID_FORMAT: not a Stockholm file: x.fa"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(ErrCodeInvalidStructure, cause, "bad SS_cons")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause not found by errors.Is")
	}
	if GetCode(err) != ErrCodeInvalidStructure {
		t.Errorf("GetCode = %s, want %s", GetCode(err), ErrCodeInvalidStructure)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeFileNotFound, "missing")
	if !Is(err, ErrCodeFileNotFound) {
		t.Error("Is should match own code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is should not match a plain error")
	}

	// Code survives further wrapping.
	wrapped := fmt.Errorf("context: %w", err)
	if !Is(wrapped, ErrCodeFileNotFound) {
		t.Error("Is should unwrap to find the code")
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidInput, "bad column")); got != "bad column" {
		t.Errorf("UserMessage = %q, want %q", got, "bad column")
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage = %q, want %q", got, "plain")
	}
}
