package models

import (
	"testing"
	"time"
)

func TestValidStatusTransition(t *testing.T) {
	cases := []struct {
		from, to AppointmentStatus
		want     bool
	}{
		// The conventional forward path.
		{StatusScheduled, StatusConfirmed, true},
		{StatusConfirmed, StatusCompleted, true},

		// Cancellation and no-show from any non-terminal state.
		{StatusScheduled, StatusCancelled, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusScheduled, StatusNoShow, true},
		{StatusConfirmed, StatusNoShow, true},

		// No skipping and no leaving a terminal state.
		{StatusScheduled, StatusCompleted, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusCancelled, StatusScheduled, false},
		{StatusNoShow, StatusCancelled, false},
		{StatusCancelled, StatusCancelled, false},

		// Unknown values never transition.
		{AppointmentStatus("postponed"), StatusConfirmed, false},
		{StatusScheduled, AppointmentStatus("postponed"), false},
	}

	for _, tc := range cases {
		if got := ValidStatusTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("ValidStatusTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	terminal := map[AppointmentStatus]bool{
		StatusScheduled: false,
		StatusConfirmed: false,
		StatusCompleted: true,
		StatusCancelled: true,
		StatusNoShow:    true,
	}
	for status, want := range terminal {
		if got := status.Terminal(); got != want {
			t.Errorf("%s.Terminal() = %v, want %v", status, got, want)
		}
	}
}

func TestDateOf(t *testing.T) {
	ts := time.Date(2026, 3, 7, 23, 59, 0, 0, time.UTC)
	if got := DateOf(ts); got != "2026-03-07" {
		t.Errorf("DateOf = %s, want 2026-03-07", got)
	}
}
