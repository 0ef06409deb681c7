// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"testing"
	"time"
)

func TestFakeClock_DefaultTime(t *testing.T) {
	t.Parallel()

	clock := NewFakeClock(time.Time{})
	want := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := clock.Now(); !got.Equal(want) {
		t.Errorf("Now() = %v, want %v", got, want)
	}
}

func TestFakeClock_StepAndAdvance(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := NewFakeClock(start).WithStep(time.Nanosecond)

	first := clock.Now()
	second := clock.Now()
	if !second.After(first) {
		t.Errorf("second Now() = %v, want after %v", second, first)
	}

	clock.Advance(time.Hour)
	if got := clock.Now(); got.Sub(start) < time.Hour {
		t.Errorf("Now() after Advance = %v, want at least an hour past %v", got, start)
	}

	clock.Set(start)
	if got := clock.Now(); !got.Equal(start) {
		t.Errorf("Now() after Set = %v, want %v", got, start)
	}
}
