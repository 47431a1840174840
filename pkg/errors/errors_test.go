package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidMode, "unrecognized mode %q", "middle")

	if err.Code != ErrCodeInvalidMode {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidMode)
	}
	if !strings.Contains(err.Error(), "INVALID_MODE") {
		t.Errorf("Error() = %q, want it to contain the code", err.Error())
	}
	if !strings.Contains(err.Error(), `"middle"`) {
		t.Errorf("Error() = %q, want formatted message", err.Error())
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("read failed")
	err := Wrap(ErrCodeInvalidConfig, cause, "loading %s", "stack.toml")

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if !strings.Contains(err.Error(), "read failed") {
		t.Errorf("Error() = %q, want it to contain the cause", err.Error())
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeEmptyTransmissions, "no blades supplied")

	if !Is(err, ErrCodeEmptyTransmissions) {
		t.Error("Is() = false for matching code, want true")
	}
	if Is(err, ErrCodeInvalidMode) {
		t.Error("Is() = true for non-matching code, want false")
	}
	if Is(fmt.Errorf("plain error"), ErrCodeEmptyTransmissions) {
		t.Error("Is() = true for plain error, want false")
	}
}

func TestIs_Wrapped(t *testing.T) {
	inner := New(ErrCodeInvalidMaterial, "no data for %q", "Xx")
	outer := fmt.Errorf("building table: %w", inner)

	if !Is(outer, ErrCodeInvalidMaterial) {
		t.Error("Is() = false through fmt.Errorf wrapping, want true")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeTooManyBlades, "n=30")); got != ErrCodeTooManyBlades {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeTooManyBlades)
	}
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestIsValidation(t *testing.T) {
	cases := []struct {
		code Code
		want bool
	}{
		{ErrCodeInvalidMode, true},
		{ErrCodeEmptyTransmissions, true},
		{ErrCodeTooManyBlades, true},
		{ErrCodeInvalidMaterial, true},
		{ErrCodeInternal, false},
		{ErrCodeFileNotFound, false},
	}
	for _, tc := range cases {
		if got := IsValidation(New(tc.code, "x")); got != tc.want {
			t.Errorf("IsValidation(%s) = %v, want %v", tc.code, got, tc.want)
		}
	}
}
