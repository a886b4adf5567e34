package transfers

import (
	"time"

	usb "github.com/kevmo314/go-usb"
)

// Transport issues one synchronous USB control transfer. It reports the
// number of bytes moved in the data stage, or the transport's own error if
// the transfer did not complete. A zero timeout waits indefinitely.
//
// *usb.DeviceHandle satisfies Transport. Implementations need not be safe
// for concurrent transfers against the same interface; callers serialize.
type Transport interface {
	ControlTransfer(requestType, request uint8, value, index uint16, data []byte, timeout time.Duration) (int, error)
}

var _ Transport = (*usb.DeviceHandle)(nil)
