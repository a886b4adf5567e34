// Package uvcctl drives the class-specific control requests of USB Video
// Class devices: unit and terminal controls, the interface error code and
// power mode controls, and the stream probe/commit handshake. It opens
// devices through usbdevfs without cgo.
//
// The package does not walk configuration descriptors. Interface numbers,
// unit IDs, and the bcdUVC version come from the caller's enumeration, for
// example from sysfs or a prior descriptor parse.
package uvcctl

import (
	"fmt"
	"sync/atomic"

	usb "github.com/kevmo314/go-usb"
	"golang.org/x/sys/unix"

	"github.com/kevmo314/go-uvcctl/pkg/transfers"
)

// Device is an open USB session to a UVC function.
type Device struct {
	handle *usb.DeviceHandle
	closed *atomic.Bool
}

// NewDevice wraps an already-open usbdevfs file descriptor, for callers
// that receive their descriptor from an fd-passing service.
func NewDevice(fd uintptr) (*Device, error) {
	dev := &Device{closed: &atomic.Bool{}}

	handle, err := usb.WrapSysDevice(int(fd))
	if err != nil {
		return nil, err
	}
	dev.handle = handle

	return dev, nil
}

// Open opens the device node at path, normally /dev/bus/usb/BBB/DDD.
func Open(path string) (*Device, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	dev, err := NewDevice(uintptr(fd))
	if err != nil {
		unix.Close(fd)
		return nil, err
	}
	return dev, nil
}

func (d *Device) Close() error {
	if d.closed.Swap(true) {
		return nil
	}
	return d.handle.Close()
}

// Handle exposes the underlying transport for requests this package does
// not model.
func (d *Device) Handle() *usb.DeviceHandle {
	return d.handle
}

// ClaimInterface detaches any kernel driver bound to the interface and
// claims it. usbdevfs rejects interface-recipient control requests until
// the interface is claimed.
func (d *Device) ClaimInterface(interfaceNumber uint8) error {
	// detach fails when no driver is bound, which is fine
	d.handle.DetachKernelDriver(interfaceNumber)
	if err := d.handle.ClaimInterface(interfaceNumber); err != nil {
		return fmt.Errorf("claim interface %d: %w", interfaceNumber, err)
	}
	return nil
}

func (d *Device) ReleaseInterface(interfaceNumber uint8) error {
	return d.handle.ReleaseInterface(interfaceNumber)
}

// VideoControl binds a requester to the VideoControl interface.
func (d *Device) VideoControl(interfaceNumber uint8) *transfers.VideoControl {
	return transfers.NewVideoControl(d.handle, interfaceNumber)
}

// StreamControl binds a requester to a VideoStreaming interface. bcdUVC is
// the interface's binary-coded UVC version, 0x0150 for 1.5.
func (d *Device) StreamControl(interfaceNumber uint8, bcdUVC uint16) *transfers.StreamControl {
	return transfers.NewStreamControl(d.handle, interfaceNumber, bcdUVC)
}
