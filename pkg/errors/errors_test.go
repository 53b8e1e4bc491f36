package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeInvalidVariant, "invalid variant: %s", "v3"),
			want: "INVALID_VARIANT: invalid variant: v3",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeLoadFailed, stderrors.New("boom"), "read parts.xlsx"),
			want: "LOAD_FAILED: read parts.xlsx: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeNoLabels, "no labels generated")

	if !Is(err, ErrCodeNoLabels) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeNoLabels) {
		t.Error("Is should not match a plain error")
	}
}

func TestIsThroughWrapping(t *testing.T) {
	inner := New(ErrCodeJobNotFound, "job %s", "abc")
	outer := fmt.Errorf("handler: %w", inner)

	if !Is(outer, ErrCodeJobNotFound) {
		t.Error("Is should unwrap fmt.Errorf chains")
	}
	if GetCode(outer) != ErrCodeJobNotFound {
		t.Errorf("GetCode = %q, want %q", GetCode(outer), ErrCodeJobNotFound)
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Wrap(ErrCodeInternal, cause, "wrapped")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the cause through Unwrap")
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeEmptyTable, "the file has no rows")
	if got := UserMessage(err); got != "the file has no rows" {
		t.Errorf("UserMessage = %q, want message without code prefix", got)
	}

	plain := stderrors.New("plain error")
	if got := UserMessage(plain); got != "plain error" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

func TestGetCodePlainError(t *testing.T) {
	if got := GetCode(stderrors.New("x")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}
