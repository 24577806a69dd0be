package platform

import (
	"context"
	"fmt"
	"time"
)

// WindowFinder looks up a top-level window. A zero WindowID with a nil error
// means no window matches yet.
type WindowFinder interface {
	FindWindow(match WindowMatch) (WindowID, error)
}

// WaitForWindow polls finder every poll until a window matching match exists,
// timeout elapses, or ctx is done.
func WaitForWindow(ctx context.Context, finder WindowFinder, match WindowMatch, timeout, poll time.Duration) (WindowID, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	for {
		id, err := finder.FindWindow(match)
		if err != nil {
			return 0, err
		}
		if id != 0 {
			return id, nil
		}

		select {
		case <-ctx.Done():
			if ctx.Err() == context.DeadlineExceeded {
				return 0, fmt.Errorf("no window matching %s after %s", match, timeout)
			}
			return 0, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (m WindowMatch) String() string {
	switch {
	case m.Title != "" && m.Class != "":
		return fmt.Sprintf("title %q and class %q", m.Title, m.Class)
	case m.Class != "":
		return fmt.Sprintf("class %q", m.Class)
	default:
		return fmt.Sprintf("title %q", m.Title)
	}
}
