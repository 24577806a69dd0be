package lifecycle

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestHooks_StartThenStopRunsHandlersInOrder(t *testing.T) {
	var h Hooks
	var calls []string
	h.OnStarted(func(context.Context) { calls = append(calls, "started-1") })
	h.OnStarted(func(context.Context) { calls = append(calls, "started-2") })
	h.OnStopping(func(context.Context) { calls = append(calls, "stopping") })

	ctx := context.Background()
	if err := h.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := h.Start(ctx); !errors.Is(err, ErrAlreadyStarted) {
		t.Fatalf("second Start: got %v, want %v", err, ErrAlreadyStarted)
	}
	if err := h.Stop(ctx); err != nil {
		t.Fatalf("Stop: %v", err)
	}

	want := []string{"started-1", "started-2", "stopping"}
	if !reflect.DeepEqual(calls, want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
}

func TestHooks_FiresOnce(t *testing.T) {
	var h Hooks
	started, stopped := 0, 0
	h.OnStarted(func(context.Context) { started++ })
	h.OnStopping(func(context.Context) { stopped++ })

	ctx := context.Background()
	_ = h.Start(ctx)
	if err := h.Start(ctx); !errors.Is(err, ErrAlreadyStarted) {
		t.Fatalf("second Start error = %v, want ErrAlreadyStarted", err)
	}
	_ = h.Stop(ctx)
	if err := h.Stop(ctx); !errors.Is(err, ErrAlreadyStopped) {
		t.Fatalf("second Stop error = %v, want ErrAlreadyStopped", err)
	}
	if started != 1 || stopped != 1 {
		t.Fatalf("started=%d stopped=%d, want 1 each", started, stopped)
	}
}

func TestHooks_StopWithoutStart(t *testing.T) {
	var h Hooks
	started, stopped := 0, 0
	h.OnStarted(func(context.Context) { started++ })
	h.OnStopping(func(context.Context) { stopped++ })

	ctx := context.Background()
	if err := h.Stop(ctx); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := h.Start(ctx); !errors.Is(err, ErrStoppedBeforeStart) {
		t.Fatalf("Start after Stop error = %v, want ErrStoppedBeforeStart", err)
	}
	if started != 0 || stopped != 1 {
		t.Fatalf("started=%d stopped=%d, want 0 and 1", started, stopped)
	}
}

func TestHooks_IgnoresNilHandlers(t *testing.T) {
	var h Hooks
	h.OnStarted(nil)
	h.OnStopping(nil)
	if err := h.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := h.Stop(context.Background()); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}
