package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/philipp01105/logfacade/backend"
	"github.com/philipp01105/logfacade/backend/slogbackend"
	"github.com/philipp01105/logfacade/backend/zapbackend"
	"github.com/philipp01105/logfacade/core"
)

// allBackends returns one registry per backend kind.
func allBackends(t *testing.T) map[string]*Registry {
	t.Helper()
	obs, _ := observer.New(zapbackend.TraceLevel)
	return map[string]*Registry{
		"fake": NewRegistry(newFake("fake")),
		"slog": NewRegistry(slogbackend.New(slogbackend.Options{Writer: &bytes.Buffer{}})),
		"zap":  NewRegistry(zapbackend.New(zapbackend.Options{Core: obs})),
	}
}

func TestLogger_InvalidArguments(t *testing.T) {
	for name, r := range allBackends(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := r.Logger(""); !errors.Is(err, core.ErrInvalidArgument) {
				t.Errorf("Logger(\"\") error = %v, want ErrInvalidArgument", err)
			}
			if _, err := r.LoggerFor(nil); !errors.Is(err, core.ErrInvalidArgument) {
				t.Errorf("LoggerFor(nil) error = %v, want ErrInvalidArgument", err)
			}

			l, err := r.Logger("svc")
			if err != nil {
				t.Fatalf("Logger: %v", err)
			}
			if _, err := l.IsEnabled(0); !errors.Is(err, core.ErrInvalidArgument) {
				t.Errorf("IsEnabled(unset) error = %v, want ErrInvalidArgument", err)
			}
			if err := l.Log(0, "msg"); !errors.Is(err, core.ErrInvalidArgument) {
				t.Errorf("Log(unset) error = %v, want ErrInvalidArgument", err)
			}
			if err := l.LogErr(0, "msg", errors.New("x")); !errors.Is(err, core.ErrInvalidArgument) {
				t.Errorf("LogErr(unset) error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestLogger_OutOfSetLevelPanics(t *testing.T) {
	for name, r := range allBackends(t) {
		t.Run(name, func(t *testing.T) {
			l, _ := r.Logger("svc")
			defer func() {
				if _, ok := recover().(core.InvariantError); !ok {
					t.Error("a level outside the closed set should panic with InvariantError")
				}
			}()
			_ = l.Log(Level(99), "never")
		})
	}
}

func TestLogger_UnboundPanics(t *testing.T) {
	var l Logger
	if l.Name() != "" {
		t.Errorf("zero Logger name = %q", l.Name())
	}

	calls := map[string]func(){
		"IsEnabled":      func() { _, _ = l.IsEnabled(InfoLevel) },
		"IsTraceEnabled": func() { l.IsTraceEnabled() },
		"Log":            func() { _ = l.Log(InfoLevel, "x") },
		"Error":          func() { _ = l.Error("x") },
		"WarnErr":        func() { _ = l.WarnErr("x", nil) },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if _, ok := recover().(core.InvariantError); !ok {
					t.Errorf("%s on an unbound Logger should panic with InvariantError", name)
				}
			}()
			call()
		})
	}
}

func TestLogger_ConvenienceMethods(t *testing.T) {
	fb := newFake("fake")
	l, _ := NewRegistry(fb).Logger("conv")
	cause := errors.New("cause")

	calls := []struct {
		level Level
		err   error
		call  func() error
	}{
		{TraceLevel, nil, func() error { return l.Trace("m") }},
		{TraceLevel, cause, func() error { return l.TraceErr("m", cause) }},
		{DebugLevel, nil, func() error { return l.Debug("m") }},
		{DebugLevel, cause, func() error { return l.DebugErr("m", cause) }},
		{InfoLevel, nil, func() error { return l.Info("m") }},
		{InfoLevel, cause, func() error { return l.InfoErr("m", cause) }},
		{WarnLevel, nil, func() error { return l.Warn("m") }},
		{WarnLevel, cause, func() error { return l.WarnErr("m", cause) }},
		{ErrorLevel, nil, func() error { return l.Error("m") }},
		{ErrorLevel, cause, func() error { return l.ErrorErr("m", cause) }},
		{WarnLevel, nil, func() error { return l.Log(WarnLevel, "m") }},
		{WarnLevel, cause, func() error { return l.LogErr(WarnLevel, "m", cause) }},
	}
	for _, c := range calls {
		if err := c.call(); err != nil {
			t.Fatalf("call at %v: %v", c.level, err)
		}
	}

	records := fb.all()
	if len(records) != len(calls) {
		t.Fatalf("got %d records, want %d", len(records), len(calls))
	}
	for i, c := range calls {
		r := records[i]
		if r.level != c.level || r.err != c.err || r.logger != "conv" {
			t.Errorf("record %d = %+v, want level %v err %v", i, r, c.level, c.err)
		}
	}
}

func TestLogger_Predicates(t *testing.T) {
	fb := newFake("fake")
	fb.threshold = WarnLevel
	l, _ := NewRegistry(fb).Logger("pred")

	got := []bool{l.IsTraceEnabled(), l.IsDebugEnabled(), l.IsInfoEnabled(), l.IsWarnEnabled(), l.IsErrorEnabled()}
	want := []bool{false, false, false, true, true}
	for i, lvl := range core.AllLevels() {
		if got[i] != want[i] {
			t.Errorf("Is%vEnabled = %v, want %v", lvl, got[i], want[i])
		}
		enabled, err := l.IsEnabled(lvl)
		if err != nil {
			t.Fatal(err)
		}
		if enabled != got[i] {
			t.Errorf("IsEnabled(%v) = %v disagrees with the named predicate", lvl, enabled)
		}
	}
}

func TestLogger_MessagePassedUnchanged(t *testing.T) {
	fb := newFake("fake")
	l, _ := NewRegistry(fb).Logger("msg")

	type payload struct{ ID int }
	p := &payload{ID: 7}
	if err := l.Info(p); err != nil {
		t.Fatal(err)
	}
	if got := fb.all()[0].msg; got != any(p) {
		t.Errorf("message = %v, want the original value", got)
	}
}

func TestLogger_BackendErrorPropagates(t *testing.T) {
	fb := newFake("fake")
	fb.logErr = errors.New("sink closed")
	l, _ := NewRegistry(fb).Logger("fail")

	if err := l.Error("x"); err != fb.logErr {
		t.Errorf("Error() = %v, want backend error unchanged", err)
	}
	if err := l.LogErr(InfoLevel, "x", errors.New("y")); err != fb.logErr {
		t.Errorf("LogErr() = %v, want backend error unchanged", err)
	}
}

func TestLogger_SlogInfoThreshold(t *testing.T) {
	var buf bytes.Buffer
	r := NewRegistry(slogbackend.New(slogbackend.Options{Writer: &buf, Level: InfoLevel}))
	l, err := r.Logger("scenario")
	if err != nil {
		t.Fatal(err)
	}

	if l.IsDebugEnabled() {
		t.Error("IsDebugEnabled should be false at INFO threshold")
	}
	if err := l.Debug("x"); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("Debug produced output: %q", buf.String())
	}

	if !l.IsInfoEnabled() {
		t.Error("IsInfoEnabled should be true at INFO threshold")
	}
	if err := l.Info("x"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Count(out, "\n") != 1 || !strings.Contains(out, "level=INFO") {
		t.Errorf("expected one INFO record, got: %q", out)
	}
}

func TestLogger_ZapErrorWithCause(t *testing.T) {
	obs, logs := observer.New(zapbackend.TraceLevel)
	r := NewRegistry(zapbackend.New(zapbackend.Options{Core: obs}))
	l, _ := r.Logger("scenario")

	cause := errors.New("disk on fire")
	if err := l.ErrorErr("boom", cause); err != nil {
		t.Fatal(err)
	}

	entries := logs.FilterMessage("boom").All()
	if logs.Len() != 1 || len(entries) != 1 {
		t.Fatalf("want exactly one record, got %d", logs.Len())
	}
	e := entries[0]
	if e.Level != zapcore.ErrorLevel {
		t.Errorf("level = %v, want error", e.Level)
	}
	if e.ContextMap()["error"] != "disk on fire" {
		t.Errorf("record should carry the error, got %v", e.ContextMap())
	}
}

func TestLogger_ZapRecordsCallerAndStack(t *testing.T) {
	obs, logs := observer.New(zapbackend.TraceLevel)
	r := NewRegistry(zapbackend.New(zapbackend.Options{
		Core:       obs,
		ZapOptions: []zap.Option{zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)},
	}))
	l, _ := r.Logger("scenario")

	if err := l.ErrorErr("boom", errors.New("disk on fire")); err != nil {
		t.Fatal(err)
	}
	if err := l.Log(InfoLevel, "fine"); err != nil {
		t.Fatal(err)
	}
	if err := l.Warn("careful"); err != nil {
		t.Fatal(err)
	}

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	for _, e := range entries {
		if !e.Caller.Defined || !strings.HasSuffix(e.Caller.File, "logger_test.go") {
			t.Errorf("%q: caller = %v, want the calling test file", e.Message, e.Caller)
		}
	}
	if entries[0].Stack == "" {
		t.Error("error record should carry a stack trace")
	}
	if !strings.Contains(entries[0].Stack, "TestLogger_ZapRecordsCallerAndStack") {
		t.Errorf("stack should start at the caller, got:\n%s", entries[0].Stack)
	}
	if entries[1].Stack != "" {
		t.Error("info record should not carry a stack trace")
	}
}

func TestLogger_FacadeAgreesWithNativeThreshold(t *testing.T) {
	for _, threshold := range core.AllLevels() {
		obs, _ := observer.New(zapbackend.TraceLevel)
		zb := zapbackend.New(zapbackend.Options{Core: obs, Level: threshold})
		sb := slogbackend.New(slogbackend.Options{Writer: &bytes.Buffer{}, Level: threshold})

		for _, b := range []backend.Backend{zb, sb} {
			l, err := NewRegistry(b).Logger("agree")
			if err != nil {
				t.Fatal(err)
			}
			for _, lvl := range core.AllLevels() {
				got, _ := l.IsEnabled(lvl)
				var native bool
				switch b.Name() {
				case zapbackend.Name:
					native = zapbackend.Translate(lvl) >= zapbackend.Translate(threshold)
				case slogbackend.Name:
					native = slogbackend.Translate(lvl) >= slogbackend.Translate(threshold)
				}
				if got != native {
					t.Errorf("%s threshold %v: IsEnabled(%v) = %v, native = %v", b.Name(), threshold, lvl, got, native)
				}
			}
		}
	}
}
