package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"not found", NotFound("doctor/not-found", "doctor with id %d is not found", 7), KindNotFound},
		{"validation", Validation("doctor/invalid-working-hours", "bad window"), KindValidation},
		{"conflict", Conflict("patient/duplicate-ktp", "already registered"), KindConflict},
		{"unauthenticated", Unauthenticated("auth/invalid-credentials", "invalid username or password"), KindUnauthenticated},
		{"untagged", errors.New("boom"), KindInternal},
		{"wrapped", fmt.Errorf("create: %w", Conflict("x/y", "taken")), KindConflict},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := KindOf(tc.err); got != tc.want {
				t.Errorf("KindOf() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestAs(t *testing.T) {
	tagged := NotFound("doctor/not-found", "doctor with id %d is not found", 7)

	appErr, ok := As(fmt.Errorf("lookup: %w", tagged))
	if !ok {
		t.Fatal("expected wrapped tagged error to unwrap")
	}
	if appErr.Code != "doctor/not-found" {
		t.Errorf("expected code doctor/not-found, got %s", appErr.Code)
	}
	if appErr.Message != "doctor with id 7 is not found" {
		t.Errorf("unexpected message %q", appErr.Message)
	}

	if _, ok := As(errors.New("boom")); ok {
		t.Error("expected untagged error to not unwrap")
	}
}
