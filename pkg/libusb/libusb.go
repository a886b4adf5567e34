//go:build cgo

// Package libusb adapts a gousb device to the control transport used by the
// rest of this module. The core packages talk usbdevfs directly and stay free
// of cgo; importing this package pulls libusb in, for callers that already
// enumerate devices through gousb or run on hosts without usbdevfs.
package libusb

import (
	"time"

	"github.com/google/gousb"

	"github.com/kevmo314/go-uvcctl/pkg/transfers"
)

// Handle issues control transfers through an open gousb device.
type Handle struct {
	Device *gousb.Device
}

var _ transfers.Transport = (*Handle)(nil)

// Wrap returns a Handle for dev. The caller keeps ownership of dev and
// closes it when done.
func Wrap(dev *gousb.Device) *Handle {
	return &Handle{Device: dev}
}

// ControlTransfer performs a single control transfer. A zero timeout waits
// indefinitely, matching libusb's convention.
func (h *Handle) ControlTransfer(requestType, request uint8, value, index uint16, data []byte, timeout time.Duration) (int, error) {
	h.Device.ControlTimeout = timeout
	return h.Device.Control(requestType, request, value, index, data)
}
