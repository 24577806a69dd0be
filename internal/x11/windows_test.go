package x11

import (
	"errors"
	"testing"
	"time"
)

func TestWaitForStateApplied(t *testing.T) {
	reads := 0
	read := func() (bool, error) {
		reads++
		return reads >= 3, nil
	}

	if !waitForState(read, true, time.Second, time.Millisecond) {
		t.Fatalf("expected state to be observed")
	}
	if reads != 3 {
		t.Fatalf("reads=%d, want 3", reads)
	}
}

func TestWaitForStateTimesOut(t *testing.T) {
	reads := 0
	read := func() (bool, error) {
		reads++
		return true, nil
	}

	start := time.Now()
	if waitForState(read, false, 30*time.Millisecond, 5*time.Millisecond) {
		t.Fatalf("expected timeout while window stays fullscreen")
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Fatalf("returned after %s, before the settle deadline", elapsed)
	}
	if reads < 2 {
		t.Fatalf("reads=%d, want polling until the deadline", reads)
	}
}

func TestWaitForStateTreatsReadErrorsAsPending(t *testing.T) {
	reads := 0
	read := func() (bool, error) {
		reads++
		if reads == 1 {
			return false, errors.New("BadWindow")
		}
		return false, nil
	}

	if !waitForState(read, false, time.Second, time.Millisecond) {
		t.Fatalf("expected state after a transient read error")
	}
	if reads != 2 {
		t.Fatalf("reads=%d, want 2", reads)
	}
}

func TestWaitForStateZeroSettleReadsOnce(t *testing.T) {
	reads := 0
	read := func() (bool, error) {
		reads++
		return false, nil
	}

	if waitForState(read, true, 0, time.Millisecond) {
		t.Fatalf("expected no match")
	}
	if reads != 1 {
		t.Fatalf("reads=%d, want 1", reads)
	}
}

func TestFullscreenState(t *testing.T) {
	noProperty := errors.New("GetProperty: No such property '_NET_WM_STATE'")
	badWindow := errors.New("failed to get window geometry: BadWindow")
	live := func() error { return nil }
	destroyed := func() error { return badWindow }

	tests := []struct {
		name    string
		states  []string
		readErr error
		alive   func() error
		want    bool
		wantErr error
	}{
		{name: "fullscreen", states: []string{"_NET_WM_STATE_FOCUSED", stateFullscreen}, alive: live, want: true},
		{name: "windowed", states: []string{"_NET_WM_STATE_MAXIMIZED_VERT"}, alive: live},
		{name: "no property on live window", readErr: noProperty, alive: live},
		{name: "destroyed window", readErr: noProperty, alive: destroyed, wantErr: badWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fullscreenState(tt.states, tt.readErr, tt.alive)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err=%v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("fullscreen=%v, want %v", got, tt.want)
			}
		})
	}
}
