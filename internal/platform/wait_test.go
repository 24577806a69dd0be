package platform

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type countingFinder struct {
	calls   int
	foundAt int
	err     error
}

func (f *countingFinder) FindWindow(WindowMatch) (WindowID, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	if f.foundAt > 0 && f.calls >= f.foundAt {
		return 0x1200003, nil
	}
	return 0, nil
}

func TestWaitForWindow_ReturnsOnceWindowAppears(t *testing.T) {
	finder := &countingFinder{foundAt: 3}

	id, err := WaitForWindow(context.Background(), finder, WindowMatch{Title: "Minecraft"}, time.Second, time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 0x1200003 {
		t.Fatalf("id = %#x, want 0x1200003", id)
	}
	if finder.calls != 3 {
		t.Fatalf("calls = %d, want 3", finder.calls)
	}
}

func TestWaitForWindow_TimesOut(t *testing.T) {
	finder := &countingFinder{}

	_, err := WaitForWindow(context.Background(), finder, WindowMatch{Class: "Minecraft"}, 20*time.Millisecond, 5*time.Millisecond)
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	if !strings.Contains(err.Error(), `class "Minecraft"`) {
		t.Fatalf("expected match in error, got %v", err)
	}
}

func TestWaitForWindow_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WaitForWindow(ctx, &countingFinder{}, WindowMatch{Title: "x"}, time.Minute, time.Millisecond)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

func TestWaitForWindow_PropagatesFinderError(t *testing.T) {
	boom := errors.New("client list unavailable")

	_, err := WaitForWindow(context.Background(), &countingFinder{err: boom}, WindowMatch{Title: "x"}, time.Second, time.Millisecond)
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want %v", err, boom)
	}
}
