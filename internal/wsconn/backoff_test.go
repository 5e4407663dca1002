package wsconn

import (
	"testing"
	"time"
)

func TestBackoffDelaySchedule(t *testing.T) {
	b := BackoffConfig{Base: 500 * time.Millisecond, Max: 30 * time.Second, MaxAttempts: 5}

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 500 * time.Millisecond},
		{2, time.Second},
		{3, 2 * time.Second},
		{4, 4 * time.Second},
		{5, 8 * time.Second},
		{10, 30 * time.Second}, // capped
	}
	for _, tc := range tests {
		if got := b.Delay(tc.attempt); got != tc.want {
			t.Errorf("Delay(%d) = %v, want %v", tc.attempt, got, tc.want)
		}
	}
}

func TestBackoffDelayClampsZeroAttempt(t *testing.T) {
	b := DefaultBackoff()
	if got, want := b.Delay(0), b.Delay(1); got != want {
		t.Errorf("Delay(0) = %v, want same as Delay(1) = %v", got, want)
	}
}
