package uvcctl

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/kevmo314/go-uvcctl/pkg/requests"
	"github.com/kevmo314/go-uvcctl/pkg/transfers"
)

// ExtensionUnit addresses a vendor extension unit. Vendor controls have no
// layout the class spec defines, so values travel as raw bytes sized by
// Length.
type ExtensionUnit struct {
	vc     *transfers.VideoControl
	UnitID uint8
	// GUID is the vendor's guidExtensionCode identifying the control set.
	// Informational; requests address UnitID.
	GUID uuid.UUID
}

func NewExtensionUnit(vc *transfers.VideoControl, unitID uint8, guid uuid.UUID) *ExtensionUnit {
	return &ExtensionUnit{vc: vc, UnitID: unitID, GUID: guid}
}

// ExtensionUnit binds a vendor extension unit on the given VideoControl
// interface. The unit ID and GUID come from the caller's enumeration.
func (d *Device) ExtensionUnit(interfaceNumber, unitID uint8, guid uuid.UUID) *ExtensionUnit {
	return NewExtensionUnit(d.VideoControl(interfaceNumber), unitID, guid)
}

func (xu *ExtensionUnit) String() string {
	return fmt.Sprintf("extension unit %d (%s)", xu.UnitID, xu.GUID)
}

// Length reports the byte size of a vendor control's value.
func (xu *ExtensionUnit) Length(selector uint8) (int, error) {
	return xu.vc.GetLength(xu.UnitID, selector)
}

// Get executes a GET request against a vendor control, filling buf with the
// response. Size buf with Length. It returns the byte count the device
// produced.
func (xu *ExtensionUnit) Get(selector uint8, code requests.RequestCode, buf []byte) (int, error) {
	return xu.vc.Get(xu.UnitID, selector, code, buf)
}

// GetCur reads a vendor control's current value, allocating the buffer from
// the device's reported length.
func (xu *ExtensionUnit) GetCur(selector uint8) ([]byte, error) {
	length, err := xu.Length(selector)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, length)
	n, err := xu.Get(selector, requests.RequestCodeGetCur, buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// Set writes buf to a vendor control.
func (xu *ExtensionUnit) Set(selector uint8, buf []byte) error {
	_, err := xu.vc.Set(xu.UnitID, selector, buf)
	return err
}

// Info queries a vendor control's GET_INFO capability bitmap.
func (xu *ExtensionUnit) Info(selector uint8) (transfers.ControlInfo, error) {
	return xu.vc.Info(xu.UnitID, selector)
}
