package uvcctl

import (
	"github.com/kevmo314/go-uvcctl/pkg/requests"
	"github.com/kevmo314/go-uvcctl/pkg/transfers"
)

type SelectorUnitControlSelector int

const (
	SelectorUnitControlSelectorUndefined          SelectorUnitControlSelector = 0x00
	SelectorUnitControlSelectorInputSelectControl SelectorUnitControlSelector = 0x01
)

// SelectorUnit addresses a selector unit, which routes one of its input
// pins to its output.
type SelectorUnit struct {
	vc     *transfers.VideoControl
	UnitID uint8
}

func NewSelectorUnit(vc *transfers.VideoControl, unitID uint8) *SelectorUnit {
	return &SelectorUnit{vc: vc, UnitID: unitID}
}

// SelectorUnit binds a selector unit on the given VideoControl interface.
// The unit ID comes from the caller's enumeration.
func (d *Device) SelectorUnit(interfaceNumber, unitID uint8) *SelectorUnit {
	return NewSelectorUnit(d.VideoControl(interfaceNumber), unitID)
}

// Input reports the selected input pin, starting at 1.
func (su *SelectorUnit) Input() (uint8, error) {
	var buf [1]byte
	n, err := su.vc.Get(su.UnitID, uint8(SelectorUnitControlSelectorInputSelectControl), requests.RequestCodeGetCur, buf[:])
	if err != nil {
		return 0, err
	}
	if n != 1 {
		return 0, &transfers.TransferSizeError{Got: n, Want: 1}
	}
	return buf[0], nil
}

// SetInput routes the given input pin, starting at 1, to the output.
func (su *SelectorUnit) SetInput(pin uint8) error {
	_, err := su.vc.Set(su.UnitID, uint8(SelectorUnitControlSelectorInputSelectControl), []byte{pin})
	return err
}
