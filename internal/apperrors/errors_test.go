package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", Validation("bad"), KindValidation},
		{"not found", NotFound("missing"), KindNotFound},
		{"forbidden", Forbidden("nope"), KindForbidden},
		{"conflict", Conflict("dup"), KindConflict},
		{"internal", Internal(errors.New("db down")), KindInternal},
		{"plain error", errors.New("anything"), KindInternal},
		{"wrapped", fmt.Errorf("context: %w", Conflict("dup")), KindConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := KindOf(tc.err); got != tc.want {
				t.Fatalf("KindOf() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	if got := Conflict("already there").Error(); got != "already there" {
		t.Fatalf("unexpected message: %q", got)
	}

	cause := errors.New("connection refused")
	wrapped := Internal(cause)
	if got := wrapped.Error(); got != "connection refused" {
		t.Fatalf("unexpected message: %q", got)
	}
	if !errors.Is(wrapped, cause) {
		t.Fatal("Internal should wrap its cause")
	}

	if got := (&Error{}).Error(); got != "internal error" {
		t.Fatalf("unexpected fallback message: %q", got)
	}
}
