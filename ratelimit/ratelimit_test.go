package ratelimit

import (
	"testing"
	"time"
)

func TestCheckWarnOnce(t *testing.T) {
	l := New(WithRate(1, 1), WithCooldown(0), WithWarnTTL(time.Minute))
	defer l.Stop()

	if v := l.Check(1, "start"); v != Allow {
		t.Fatalf("first request: got %v, want allow", v)
	}
	if v := l.Check(1, "start"); v != Warn {
		t.Fatalf("over limit: got %v, want warn", v)
	}
	if v := l.Check(1, "start"); v != Ignore {
		t.Fatalf("already warned: got %v, want ignore", v)
	}
}

func TestCheckCooldown(t *testing.T) {
	l := New(WithRate(100, 100), WithCooldown(time.Minute))
	defer l.Stop()

	if v := l.Check(1, "start"); v != Allow {
		t.Fatalf("first /start: got %v, want allow", v)
	}
	if v := l.Check(1, "start"); v != Ignore {
		t.Fatalf("repeated /start inside cooldown: got %v, want ignore", v)
	}
	if v := l.Check(1, "help"); v != Allow {
		t.Fatalf("different command: got %v, want allow", v)
	}
}

func TestCheckIsPerUser(t *testing.T) {
	l := New(WithRate(1, 1), WithCooldown(0))
	defer l.Stop()

	if v := l.Check(1, "start"); v != Allow {
		t.Fatalf("user 1: got %v, want allow", v)
	}
	if v := l.Check(1, "start"); v != Warn {
		t.Fatalf("user 1 over limit: got %v, want warn", v)
	}
	if v := l.Check(2, "start"); v != Allow {
		t.Fatalf("user 2 has own bucket: got %v, want allow", v)
	}
}

func TestVerdictString(t *testing.T) {
	tests := []struct {
		v    Verdict
		want string
	}{
		{Allow, "allow"},
		{Warn, "warn"},
		{Ignore, "ignore"},
		{Verdict(42), "Verdict(42)"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("Verdict(%d).String() = %q, want %q", int(tt.v), got, tt.want)
		}
	}
}
