package uvcctl

import (
	"fmt"

	"github.com/kevmo314/go-uvcctl/pkg/descriptors"
	"github.com/kevmo314/go-uvcctl/pkg/requests"
	"github.com/kevmo314/go-uvcctl/pkg/transfers"
)

var cameraTerminalControls = []descriptors.CameraTerminalControlDescriptor{
	&descriptors.ScanningModeControl{},
	&descriptors.AutoExposureModeControl{},
	&descriptors.AutoExposurePriorityControl{},
	&descriptors.ExposureTimeAbsoluteControl{},
	&descriptors.ExposureTimeRelativeControl{},
	&descriptors.FocusAbsoluteControl{},
	&descriptors.FocusRelativeControl{},
	&descriptors.FocusAutoControl{},
	&descriptors.IrisAbsoluteControl{},
	&descriptors.ZoomAbsoluteControl{},
	&descriptors.PanTiltAbsoluteControl{},
	&descriptors.PrivacyControl{},
}

// CameraTerminal addresses the controls of a camera input terminal.
type CameraTerminal struct {
	vc         *transfers.VideoControl
	TerminalID uint8
}

func NewCameraTerminal(vc *transfers.VideoControl, terminalID uint8) *CameraTerminal {
	return &CameraTerminal{vc: vc, TerminalID: terminalID}
}

// CameraTerminal binds a camera input terminal on the given VideoControl
// interface. The terminal ID comes from the caller's enumeration.
func (d *Device) CameraTerminal(interfaceNumber, terminalID uint8) *CameraTerminal {
	return NewCameraTerminal(d.VideoControl(interfaceNumber), terminalID)
}

// Get reads the control's current value into desc.
func (ct *CameraTerminal) Get(desc descriptors.CameraTerminalControlDescriptor) error {
	return ct.GetRequest(desc, requests.RequestCodeGetCur)
}

// GetRequest reads one of the control's attributes (current, minimum,
// maximum, resolution, default) into desc.
func (ct *CameraTerminal) GetRequest(desc descriptors.CameraTerminalControlDescriptor, code requests.RequestCode) error {
	buf, err := desc.MarshalBinary()
	if err != nil {
		return err
	}
	n, err := ct.vc.Get(ct.TerminalID, uint8(desc.Value()), code, buf)
	if err != nil {
		return fmt.Errorf("camera terminal control transfer failed: %w", err)
	}
	return desc.UnmarshalBinary(buf[:n])
}

// Set writes desc's value to the control.
func (ct *CameraTerminal) Set(desc descriptors.CameraTerminalControlDescriptor) error {
	buf, err := desc.MarshalBinary()
	if err != nil {
		return err
	}
	if _, err := ct.vc.Set(ct.TerminalID, uint8(desc.Value()), buf); err != nil {
		return fmt.Errorf("camera terminal control transfer failed: %w", err)
	}
	return nil
}

// Info queries the control's GET_INFO capability bitmap.
func (ct *CameraTerminal) Info(desc descriptors.CameraTerminalControlDescriptor) (transfers.ControlInfo, error) {
	return ct.vc.Info(ct.TerminalID, uint8(desc.Value()))
}

// GetSupportedControls probes each camera terminal control through GET_INFO
// and reports the ones the device answers for.
func (ct *CameraTerminal) GetSupportedControls() []descriptors.CameraTerminalControlDescriptor {
	var supportedControls []descriptors.CameraTerminalControlDescriptor

	for _, desc := range cameraTerminalControls {
		info, err := ct.Info(desc)
		if err != nil {
			continue
		}
		if info&(transfers.ControlInfoSupportsGet|transfers.ControlInfoSupportsSet) != 0 {
			supportedControls = append(supportedControls, desc)
		}
	}
	return supportedControls
}

func (ct *CameraTerminal) GetAutoFocus() (bool, error) {
	fac := &descriptors.FocusAutoControl{}
	if err := ct.Get(fac); err != nil {
		return false, err
	}
	return fac.FocusAuto, nil
}

func (ct *CameraTerminal) SetAutoFocus(on bool) error {
	return ct.Set(&descriptors.FocusAutoControl{FocusAuto: on})
}
