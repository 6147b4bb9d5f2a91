package config

import (
	"testing"
	"time"

	kit "dumpsift/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	root := New()
	sift := root.Prefix("SIFT_")
	if got := sift.key("BATCH_SIZE"); got != "SIFT_BATCH_SIZE" {
		t.Fatalf("key() = %q, want %q", got, "SIFT_BATCH_SIZE")
	}
	// nested prefix
	sweep := sift.Prefix("SWEEP_")
	if got := sweep.key("WORKERS"); got != "SIFT_SWEEP_WORKERS" {
		t.Fatalf("nested key() = %q, want %q", got, "SIFT_SWEEP_WORKERS")
	}
}

// Must* panics

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_NAME", "  dumpsift ")
	got := c.MustString("NAME")
	if got != "dumpsift" {
		t.Fatalf("MustString = %q, want %q", got, "dumpsift")
	}

	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMustInt(t *testing.T) {
	c := New().Prefix("SVC_")
	t.Setenv("SVC_WORKERS", "  8 ")
	if got := c.MustInt("WORKERS"); got != 8 {
		t.Fatalf("MustInt = %d, want %d", got, 8)
	}
	kit.MustPanic(t, func() { _ = c.MustInt("MISSING") })
	t.Setenv("SVC_BAD", "x")
	kit.MustPanic(t, func() { _ = c.MustInt("BAD") })
}

func TestRequire(t *testing.T) {
	c := New().Prefix("REQ_")
	t.Setenv("REQ_A", "1")
	t.Setenv("REQ_B", "2")
	c.Require("A", "B")
	kit.MustPanic(t, func() { c.Require("A", "C") })
}

// May* defaults

func TestMayString(t *testing.T) {
	c := New().Prefix("M_")
	if got := c.MayString("NOPE", "dflt"); got != "dflt" {
		t.Fatalf("MayString default = %q", got)
	}
	t.Setenv("M_SET", " v ")
	if got := c.MayString("SET", "dflt"); got != "v" {
		t.Fatalf("MayString = %q, want v", got)
	}
}

func TestMayInt(t *testing.T) {
	c := New().Prefix("M_")
	if got := c.MayInt("NOPE", 7); got != 7 {
		t.Fatalf("MayInt default = %d", got)
	}
	t.Setenv("M_N", "42")
	if got := c.MayInt("N", 7); got != 42 {
		t.Fatalf("MayInt = %d, want 42", got)
	}
	t.Setenv("M_BAD", "nan")
	if got := c.MayInt("BAD", 7); got != 7 {
		t.Fatalf("MayInt invalid should default, got %d", got)
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("M_")
	if got := c.MayBool("NOPE", true); !got {
		t.Fatalf("MayBool default = %v", got)
	}
	t.Setenv("M_B", "false")
	if got := c.MayBool("B", true); got {
		t.Fatalf("MayBool = %v, want false", got)
	}
	t.Setenv("M_BAD", "maybe")
	if got := c.MayBool("BAD", true); !got {
		t.Fatalf("MayBool invalid should default, got %v", got)
	}
}

func TestMayDuration(t *testing.T) {
	c := New().Prefix("M_")
	if got := c.MayDuration("NOPE", time.Second); got != time.Second {
		t.Fatalf("MayDuration default = %v", got)
	}
	t.Setenv("M_D", "250ms")
	if got := c.MayDuration("D", time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v, want 250ms", got)
	}
	t.Setenv("M_BAD", "soon")
	if got := c.MayDuration("BAD", time.Second); got != time.Second {
		t.Fatalf("MayDuration invalid should default, got %v", got)
	}
}
