package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsMatchesKindAndCode(t *testing.T) {
	sentinel := NotFound("ORDER_NOT_FOUND", "order not found")
	cause := errors.New("record not found")

	wrapped := sentinel.Wrap(cause)
	if !errors.Is(wrapped, sentinel) {
		t.Fatal("wrapped error should match its sentinel")
	}
	if !errors.Is(wrapped, cause) {
		t.Fatal("wrapped error should expose its cause")
	}
	if !errors.Is(fmt.Errorf("ctx: %w", sentinel.WithMessage("order %d not found", 7)), sentinel) {
		t.Fatal("custom message keeps identity")
	}
	if errors.Is(sentinel, NotFound("USER_NOT_FOUND", "user not found")) {
		t.Fatal("different codes must not match")
	}
	if errors.Is(sentinel, Conflict("ORDER_NOT_FOUND", "x")) {
		t.Fatal("different kinds must not match")
	}
}

func TestKindOfAndAs(t *testing.T) {
	if k := KindOf(fmt.Errorf("x: %w", ErrForbidden)); k != KindForbidden {
		t.Fatalf("KindOf = %v", k)
	}
	if k := KindOf(errors.New("boom")); k != KindInternal {
		t.Fatalf("KindOf(plain) = %v", k)
	}
	e := As(errors.New("boom"))
	if e.Kind != KindInternal || e.Code != "INTERNAL" || e.Err == nil {
		t.Fatalf("As(plain) = %+v", e)
	}
	if got := Validation("INVALID_QUANTITY", "quantity must be at least 1").Error(); got != "quantity must be at least 1" {
		t.Fatalf("Error() = %q", got)
	}
}
