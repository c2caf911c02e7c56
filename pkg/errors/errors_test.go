package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeUnknownZoneType, "unknown zone type: %s", "sidebar")

	if err.Code != ErrCodeUnknownZoneType {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeUnknownZoneType)
	}
	if !strings.Contains(err.Error(), "sidebar") {
		t.Errorf("Error() = %q, want it to mention the zone type", err.Error())
	}
	if !strings.HasPrefix(err.Error(), string(ErrCodeUnknownZoneType)) {
		t.Errorf("Error() = %q, want code prefix", err.Error())
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(ErrCodeStoreUnavailable, cause, "save snapshot %q", "draft")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("Error() = %q, want cause included", err.Error())
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"MatchingCode", New(ErrCodePageOverflow, "over"), ErrCodePageOverflow, true},
		{"DifferentCode", New(ErrCodePageOverflow, "over"), ErrCodeNotAdjustable, false},
		{"WrappedInFmt", fmt.Errorf("outer: %w", New(ErrCodeZoneNotFound, "gone")), ErrCodeZoneNotFound, true},
		{"PlainError", stderrors.New("plain"), ErrCodeInternal, false},
		{"Nil", nil, ErrCodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidSnapshot, "bad")); got != ErrCodeInvalidSnapshot {
		t.Errorf("GetCode = %v, want %v", got, ErrCodeInvalidSnapshot)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode on plain error = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodePageOverflow, "resize would exceed page boundaries")
	if got := UserMessage(err); got != "resize would exceed page boundaries" {
		t.Errorf("UserMessage = %q, want message without code prefix", got)
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage on plain error = %q", got)
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{Severity(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.sev, got, tt.want)
		}
	}
}
