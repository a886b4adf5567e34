package uvcctl

import (
	"fmt"

	"github.com/kevmo314/go-uvcctl/pkg/descriptors"
	"github.com/kevmo314/go-uvcctl/pkg/requests"
	"github.com/kevmo314/go-uvcctl/pkg/transfers"
)

var puControls = []descriptors.ProcessingUnitControlDescriptor{
	&descriptors.BacklightCompensationControl{},
	&descriptors.BrightnessControl{},
	&descriptors.ContrastControl{},
	&descriptors.ContrastAutoControl{},
	&descriptors.GainControl{},
	&descriptors.PowerLineFrequencyControl{},
	&descriptors.HueControl{},
	&descriptors.HueAutoControl{},
	&descriptors.SaturationControl{},
	&descriptors.SharpnessControl{},
	&descriptors.GammaControl{},
	&descriptors.WhiteBalanceTemperatureControl{},
	&descriptors.WhiteBalanceTemperatureAutoControl{},
	&descriptors.WhiteBalanceComponentControl{},
	&descriptors.WhiteBalanceComponentAutoControl{},
	&descriptors.DigitalMultiplierControl{},
	&descriptors.DigitalMultiplierLimitControl{},
	&descriptors.AnalogVideoStandardControl{},
	&descriptors.AnalogVideoLockStatusControl{},
}

// ProcessingUnit addresses the image attribute controls of a processing
// unit.
type ProcessingUnit struct {
	vc     *transfers.VideoControl
	UnitID uint8
}

func NewProcessingUnit(vc *transfers.VideoControl, unitID uint8) *ProcessingUnit {
	return &ProcessingUnit{vc: vc, UnitID: unitID}
}

// ProcessingUnit binds a processing unit on the given VideoControl
// interface. The unit ID comes from the caller's enumeration.
func (d *Device) ProcessingUnit(interfaceNumber, unitID uint8) *ProcessingUnit {
	return NewProcessingUnit(d.VideoControl(interfaceNumber), unitID)
}

// GetSupportedControls probes each processing unit control through GET_INFO
// and reports the ones the device answers for.
func (pu *ProcessingUnit) GetSupportedControls() []descriptors.ProcessingUnitControlDescriptor {
	var supportedControls []descriptors.ProcessingUnitControlDescriptor

	for _, desc := range puControls {
		if pu.IsControlRequestSupported(desc) {
			supportedControls = append(supportedControls, desc)
		}
	}
	return supportedControls
}

// IsControlRequestSupported asks the device whether the control answers
// GET or SET requests. Units that stall GET_INFO report unsupported.
func (pu *ProcessingUnit) IsControlRequestSupported(desc descriptors.ProcessingUnitControlDescriptor) bool {
	info, err := pu.Info(desc)
	if err != nil {
		return false
	}
	return info&(transfers.ControlInfoSupportsGet|transfers.ControlInfoSupportsSet) != 0
}

// Get reads the control's current value into desc.
func (pu *ProcessingUnit) Get(desc descriptors.ProcessingUnitControlDescriptor) error {
	return pu.GetRequest(desc, requests.RequestCodeGetCur)
}

// GetRequest reads one of the control's attributes (current, minimum,
// maximum, resolution, default) into desc.
func (pu *ProcessingUnit) GetRequest(desc descriptors.ProcessingUnitControlDescriptor, code requests.RequestCode) error {
	buf, err := desc.MarshalBinary()
	if err != nil {
		return err
	}
	n, err := pu.vc.Get(pu.UnitID, uint8(desc.Value()), code, buf)
	if err != nil {
		return fmt.Errorf("processing unit control transfer failed: %w", err)
	}
	return desc.UnmarshalBinary(buf[:n])
}

// Set writes desc's value to the control.
func (pu *ProcessingUnit) Set(desc descriptors.ProcessingUnitControlDescriptor) error {
	buf, err := desc.MarshalBinary()
	if err != nil {
		return err
	}
	if _, err := pu.vc.Set(pu.UnitID, uint8(desc.Value()), buf); err != nil {
		return fmt.Errorf("processing unit control transfer failed: %w", err)
	}
	return nil
}

// Info queries the control's GET_INFO capability bitmap.
func (pu *ProcessingUnit) Info(desc descriptors.ProcessingUnitControlDescriptor) (transfers.ControlInfo, error) {
	return pu.vc.Info(pu.UnitID, uint8(desc.Value()))
}
