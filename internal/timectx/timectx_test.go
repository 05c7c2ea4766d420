package timectx

import (
	"testing"
	"time"
)

func TestResolverZoneDatabase(t *testing.T) {
	r := NewResolver("Europe/Helsinki")
	if r.Degraded() {
		t.Fatal("expected zone database resolution for Europe/Helsinki")
	}

	// Winter: UTC+2
	utc := time.Date(2026, 1, 9, 12, 16, 0, 0, time.UTC)
	local := r.ToLocal(utc)
	if local.Hour() != 14 || local.Minute() != 16 {
		t.Errorf("expected 14:16 local, got %s", local.Format("15:04"))
	}

	// Summer: UTC+3
	utcSummer := time.Date(2026, 6, 21, 12, 0, 0, 0, time.UTC)
	if got := r.ToLocal(utcSummer).Hour(); got != 15 {
		t.Errorf("expected hour 15 in summer, got %d", got)
	}
}

func TestResolverFixedOffsetFallback(t *testing.T) {
	r := NewResolver("Not/AZone")
	if !r.Degraded() {
		t.Fatal("expected degraded mode for unknown timezone")
	}

	utc := time.Date(2026, 1, 9, 12, 0, 0, 0, time.UTC)
	if got := r.ToLocal(utc).Hour(); got != 14 {
		t.Errorf("expected fixed UTC+2 conversion, got hour %d", got)
	}
}

func TestToUTCRoundTrip(t *testing.T) {
	r := NewResolver("Europe/Helsinki")
	local := time.Date(2026, 1, 9, 14, 16, 0, 0, time.UTC) // wall-clock fields only
	utc := r.ToUTC(local)
	if utc.Hour() != 12 || utc.Minute() != 16 {
		t.Errorf("expected 12:16 UTC, got %s", utc.Format("15:04"))
	}

	back := r.ToLocal(utc)
	if back.Hour() != 14 || back.Minute() != 16 {
		t.Errorf("round trip lost wall clock: got %s", back.Format("15:04"))
	}
}

func TestLocalMidnight(t *testing.T) {
	r := NewResolver("Europe/Helsinki")
	utc := time.Date(2026, 1, 9, 12, 16, 0, 0, time.UTC)
	mid := r.LocalMidnight(utc)
	if mid.Hour() != 0 || mid.Minute() != 0 || mid.Day() != 9 {
		t.Errorf("unexpected local midnight: %s", mid)
	}
	// Midnight in Helsinki is 22:00 UTC the previous day in winter.
	if mid.UTC().Hour() != 22 || mid.UTC().Day() != 8 {
		t.Errorf("unexpected UTC instant for local midnight: %s", mid.UTC())
	}
}

func TestSameLocalDay(t *testing.T) {
	r := NewResolver("Europe/Helsinki")
	// 22:30 UTC Jan 8 is 00:30 local Jan 9.
	a := time.Date(2026, 1, 8, 22, 30, 0, 0, time.UTC)
	b := time.Date(2026, 1, 9, 12, 0, 0, 0, time.UTC)
	if !r.SameLocalDay(a, b) {
		t.Error("expected same local day across UTC date boundary")
	}

	c := time.Date(2026, 1, 8, 12, 0, 0, 0, time.UTC)
	if r.SameLocalDay(b, c) {
		t.Error("expected different local days")
	}
}

func TestFormatClock(t *testing.T) {
	r := NewResolver("Europe/Helsinki")
	utc := time.Date(2026, 1, 9, 12, 16, 0, 0, time.UTC)
	if got := r.FormatClock(utc); got != "14:16" {
		t.Errorf("expected 14:16, got %s", got)
	}
}
