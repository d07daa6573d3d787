package errors

import (
	"errors"
	"testing"
	"time"
)

func TestPulseErrorString(t *testing.T) {
	err := &PulseError{
		Op:   "mutation.Flush",
		Kind: KindTarget,
		Err:  errors.New("no target bound"),
	}
	got := err.Error()
	if got == "" {
		t.Error("expected non-empty error string")
	}
	if !contains(got, "target") {
		t.Errorf("error string %q should contain kind %q", got, "target")
	}
}

func TestPulseErrorWithoutUnderlying(t *testing.T) {
	err := &PulseError{Op: "frame.Driver.step", Kind: KindFrame}
	want := "frame.Driver.step [frame]"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestPulseErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &PulseError{Op: "op", Kind: KindCallback, Err: inner}
	if !errors.Is(err, inner) {
		t.Error("errors.Is should reach the wrapped error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindTarget, "target"},
		{KindCallback, "callback"},
		{KindFrame, "frame"},
		{KindConfig, "config"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorStringWithOp(t *testing.T) {
	err := &PanicError{
		Op:        "frame.Driver.step",
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic in frame.Driver.step: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

type testHandler struct {
	onError func(err *PulseError)
	onPanic func(err *PanicError)
}

func (h *testHandler) HandleError(err *PulseError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func TestReport(t *testing.T) {
	var captured *PulseError
	handler := &testHandler{
		onError: func(err *PulseError) { captured = err },
	}
	prev := DefaultHandler
	SetHandler(handler)
	defer SetHandler(prev)

	Report(&PulseError{Op: "test.op", Kind: KindConfig, Err: errors.New("bad yaml")})
	if captured == nil {
		t.Fatal("expected handler to receive the error")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("Report should stamp a zero Timestamp")
	}
}

func TestReportNil(t *testing.T) {
	// Must not panic.
	Report(nil)
	ReportPanic(nil)
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&testHandler{})
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("expected LogHandler default, got %T", DefaultHandler)
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) { captured = err },
	}
	prev := DefaultHandler
	SetHandler(handler)
	defer SetHandler(prev)

	func() {
		defer Recover("test.recover")
		panic("boom")
	}()

	if captured == nil {
		t.Fatal("expected panic to be reported")
	}
	if captured.Value != "boom" {
		t.Errorf("Value = %v, want %q", captured.Value, "boom")
	}
	if captured.StackTrace == "" {
		t.Error("expected a captured stack trace")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	prev := DefaultHandler
	SetHandler(&testHandler{})
	defer SetHandler(prev)

	var got any
	func() {
		defer RecoverWithCallback("test.recover", func(r any) { got = r })
		panic(42)
	}()

	if got != 42 {
		t.Errorf("callback value = %v, want 42", got)
	}
}

func contains(s, substr string) bool {
	return len(s) >= len(substr) && searchSubstring(s, substr)
}

func searchSubstring(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
