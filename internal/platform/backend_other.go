//go:build !linux

package platform

import "time"

// NewHost reports ErrUnsupported on platforms without an X11 backend.
func NewHost(display string, settle time.Duration) (Host, error) {
	return nil, ErrUnsupported
}
