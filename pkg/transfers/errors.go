package transfers

import (
	"errors"
	"fmt"
)

// ErrNotSupported reports a request that this package refuses to issue, so
// callers can treat it the same way as a device-side "request not
// supported" stall.
var ErrNotSupported = errors.New("not supported")

// TransferSizeError reports a completed control transfer that moved a
// different number of bytes than the control's layout requires. Got is the
// transport's count, unchanged.
type TransferSizeError struct {
	Got  int
	Want int
}

func (e *TransferSizeError) Error() string {
	return fmt.Sprintf("control transfer moved %d bytes, want %d", e.Got, e.Want)
}

// UnknownValueError reports a device byte outside a control's defined value
// range.
type UnknownValueError struct {
	Control string
	Value   byte
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("unknown %s value 0x%02X", e.Control, e.Value)
}
