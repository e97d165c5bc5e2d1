package markup

import (
	"errors"
	"testing"
)

// expectFault runs fn and checks that it panics with a *Fault of the given code.
func expectFault(t *testing.T, code FaultCode, fn func()) {
	t.Helper()

	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected fault %s, got none", code)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected *Fault, got %T: %v", r, r)
		}
		var f *Fault
		if !errors.As(err, &f) {
			t.Fatalf("expected *Fault, got %T: %v", r, r)
		}
		if f.Code != code {
			t.Fatalf("fault code = %s, want %s (%v)", f.Code, code, f)
		}
	}()

	fn()
}
