package descriptors

import (
	"encoding"
	"encoding/binary"
	"io"
)

type CameraTerminalControlSelector int

const (
	CameraTerminalControlSelectorUndefined                   CameraTerminalControlSelector = 0x00
	CameraTerminalControlSelectorScanningModeControl         CameraTerminalControlSelector = 0x01
	CameraTerminalControlSelectorAutoExposureModeControl     CameraTerminalControlSelector = 0x02
	CameraTerminalControlSelectorAutoExposurePriorityControl CameraTerminalControlSelector = 0x03
	CameraTerminalControlSelectorExposureTimeAbsoluteControl CameraTerminalControlSelector = 0x04
	CameraTerminalControlSelectorExposureTimeRelativeControl CameraTerminalControlSelector = 0x05
	CameraTerminalControlSelectorFocusAbsoluteControl        CameraTerminalControlSelector = 0x06
	CameraTerminalControlSelectorFocusRelativeControl        CameraTerminalControlSelector = 0x07
	CameraTerminalControlSelectorFocusAutoControl            CameraTerminalControlSelector = 0x08
	CameraTerminalControlSelectorIrisAbsoluteControl         CameraTerminalControlSelector = 0x09
	CameraTerminalControlSelectorIrisRelativeControl         CameraTerminalControlSelector = 0x0A
	CameraTerminalControlSelectorZoomAbsoluteControl         CameraTerminalControlSelector = 0x0B
	CameraTerminalControlSelectorZoomRelativeControl         CameraTerminalControlSelector = 0x0C
	CameraTerminalControlSelectorPanTiltAbsoluteControl      CameraTerminalControlSelector = 0x0D
	CameraTerminalControlSelectorPanTiltRelativeControl      CameraTerminalControlSelector = 0x0E
	CameraTerminalControlSelectorRollAbsoluteControl         CameraTerminalControlSelector = 0x0F
	CameraTerminalControlSelectorRollRelativeControl         CameraTerminalControlSelector = 0x10
	CameraTerminalControlSelectorPrivacyControl              CameraTerminalControlSelector = 0x11
	CameraTerminalControlSelectorFocusSimpleControl          CameraTerminalControlSelector = 0x12
	CameraTerminalControlSelectorWindowControl               CameraTerminalControlSelector = 0x13
	CameraTerminalControlSelectorRegionOfInterestControl     CameraTerminalControlSelector = 0x14
)

type AutoExposureMode int

const (
	AutoExposureModeManual           AutoExposureMode = 1
	AutoExposureModeAuto             AutoExposureMode = 2
	AutoExposureModeShutterPriority  AutoExposureMode = 4
	AutoExposureModeAperturePriority AutoExposureMode = 8
)

type AutoExposurePriority int

const (
	AutoExposurePriorityConstant AutoExposurePriority = 0
	AutoExposurePriorityDynamic  AutoExposurePriority = 1
)

// RelativeAdjustment is the one-byte step direction used by the relative
// camera terminal controls: 0 holds, 1 increments, 0xFF decrements.
type RelativeAdjustment int8

const (
	RelativeAdjustmentStop      RelativeAdjustment = 0
	RelativeAdjustmentIncrement RelativeAdjustment = 1
	RelativeAdjustmentDecrement RelativeAdjustment = -1
)

// CameraTerminalControlDescriptor is the payload layout of one camera
// terminal control, keyed by the selector its Value reports.
type CameraTerminalControlDescriptor interface {
	Value() CameraTerminalControlSelector
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}

// Control Request for Scanning Mode as defined in UVC spec 1.5, 4.2.2.1.1
type ScanningModeControl struct {
	// Progressive selects progressive scan; unset selects interlaced.
	Progressive bool
}

func (smc *ScanningModeControl) Value() CameraTerminalControlSelector {
	return CameraTerminalControlSelectorScanningModeControl
}

func (smc *ScanningModeControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 1)
	if smc.Progressive {
		buf[0] = 1
	}
	return buf, nil
}

func (smc *ScanningModeControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 1 {
		return io.ErrShortBuffer
	}
	smc.Progressive = buf[0] == 1
	return nil
}

// Control Request for Auto-Exposure Mode as defined in UVC spec 1.5, 4.2.2.1.2
type AutoExposureModeControl struct {
	Mode AutoExposureMode
}

func (aemc *AutoExposureModeControl) Value() CameraTerminalControlSelector {
	return CameraTerminalControlSelectorAutoExposureModeControl
}

func (aemc *AutoExposureModeControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 1)
	buf[0] = byte(aemc.Mode)
	return buf, nil
}

func (aemc *AutoExposureModeControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 1 {
		return io.ErrShortBuffer
	}
	aemc.Mode = AutoExposureMode(buf[0])
	return nil
}

// Control Request for Auto-Exposure Priority as defined in UVC spec 1.5, 4.2.2.1.3
type AutoExposurePriorityControl struct {
	Priority AutoExposurePriority
}

func (aepc *AutoExposurePriorityControl) Value() CameraTerminalControlSelector {
	return CameraTerminalControlSelectorAutoExposurePriorityControl
}

func (aepc *AutoExposurePriorityControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 1)
	buf[0] = byte(aepc.Priority)
	return buf, nil
}

func (aepc *AutoExposurePriorityControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 1 {
		return io.ErrShortBuffer
	}
	aepc.Priority = AutoExposurePriority(buf[0])
	return nil
}

// Control Request for Exposure Time (Absolute) as defined in UVC spec 1.5, 4.2.2.1.4
type ExposureTimeAbsoluteControl struct {
	// Time is in units of 0.0001 s.
	Time uint32
}

func (etac *ExposureTimeAbsoluteControl) Value() CameraTerminalControlSelector {
	return CameraTerminalControlSelectorExposureTimeAbsoluteControl
}

func (etac *ExposureTimeAbsoluteControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, etac.Time)
	return buf, nil
}

func (etac *ExposureTimeAbsoluteControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 4 {
		return io.ErrShortBuffer
	}
	etac.Time = binary.LittleEndian.Uint32(buf)
	return nil
}

// Control Request for Exposure Time (Relative) as defined in UVC spec 1.5, 4.2.2.1.5
type ExposureTimeRelativeControl struct {
	Step RelativeAdjustment
}

func (etrc *ExposureTimeRelativeControl) Value() CameraTerminalControlSelector {
	return CameraTerminalControlSelectorExposureTimeRelativeControl
}

func (etrc *ExposureTimeRelativeControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 1)
	buf[0] = byte(etrc.Step)
	return buf, nil
}

func (etrc *ExposureTimeRelativeControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 1 {
		return io.ErrShortBuffer
	}
	etrc.Step = RelativeAdjustment(buf[0])
	return nil
}

// Control Request for Focus (Absolute) as defined in UVC spec 1.5, 4.2.2.1.6
type FocusAbsoluteControl struct {
	// Focus is the distance to the focused target in millimeters.
	Focus uint16
}

func (fac *FocusAbsoluteControl) Value() CameraTerminalControlSelector {
	return CameraTerminalControlSelectorFocusAbsoluteControl
}

func (fac *FocusAbsoluteControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, fac.Focus)
	return buf, nil
}

func (fac *FocusAbsoluteControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 2 {
		return io.ErrShortBuffer
	}
	fac.Focus = binary.LittleEndian.Uint16(buf)
	return nil
}

// Control Request for Focus (Relative) as defined in UVC spec 1.5, 4.2.2.1.7
type FocusRelativeControl struct {
	Step  RelativeAdjustment
	Speed uint8
}

func (frc *FocusRelativeControl) Value() CameraTerminalControlSelector {
	return CameraTerminalControlSelectorFocusRelativeControl
}

func (frc *FocusRelativeControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 2)
	buf[0] = byte(frc.Step)
	buf[1] = frc.Speed
	return buf, nil
}

func (frc *FocusRelativeControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 2 {
		return io.ErrShortBuffer
	}
	frc.Step = RelativeAdjustment(buf[0])
	frc.Speed = buf[1]
	return nil
}

// Control Request for Focus, Auto Control as defined in UVC spec 1.5, 4.2.2.1.9
type FocusAutoControl struct {
	FocusAuto bool
}

func (fac *FocusAutoControl) Value() CameraTerminalControlSelector {
	return CameraTerminalControlSelectorFocusAutoControl
}

func (fac *FocusAutoControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 1)
	if fac.FocusAuto {
		buf[0] = 1
	}
	return buf, nil
}

func (fac *FocusAutoControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 1 {
		return io.ErrShortBuffer
	}
	fac.FocusAuto = buf[0] == 1
	return nil
}

// Control Request for Iris (Absolute) as defined in UVC spec 1.5, 4.2.2.1.10
type IrisAbsoluteControl struct {
	// Aperture is in units of f-stop * 100.
	Aperture uint16
}

func (iac *IrisAbsoluteControl) Value() CameraTerminalControlSelector {
	return CameraTerminalControlSelectorIrisAbsoluteControl
}

func (iac *IrisAbsoluteControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, iac.Aperture)
	return buf, nil
}

func (iac *IrisAbsoluteControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 2 {
		return io.ErrShortBuffer
	}
	iac.Aperture = binary.LittleEndian.Uint16(buf)
	return nil
}

// Control Request for Zoom (Absolute) as defined in UVC spec 1.5, 4.2.2.1.12
type ZoomAbsoluteControl struct {
	ObjectiveFocalLength uint16
}

func (zac *ZoomAbsoluteControl) Value() CameraTerminalControlSelector {
	return CameraTerminalControlSelectorZoomAbsoluteControl
}

func (zac *ZoomAbsoluteControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, zac.ObjectiveFocalLength)
	return buf, nil
}

func (zac *ZoomAbsoluteControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 2 {
		return io.ErrShortBuffer
	}
	zac.ObjectiveFocalLength = binary.LittleEndian.Uint16(buf)
	return nil
}

// Control Request for PanTilt (Absolute) as defined in UVC spec 1.5, 4.2.2.1.14
type PanTiltAbsoluteControl struct {
	// Pan and Tilt are in arc second units, positive clockwise and up.
	Pan  int32
	Tilt int32
}

func (ptac *PanTiltAbsoluteControl) Value() CameraTerminalControlSelector {
	return CameraTerminalControlSelectorPanTiltAbsoluteControl
}

func (ptac *PanTiltAbsoluteControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(ptac.Pan))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(ptac.Tilt))
	return buf, nil
}

func (ptac *PanTiltAbsoluteControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 8 {
		return io.ErrShortBuffer
	}
	ptac.Pan = int32(binary.LittleEndian.Uint32(buf[0:4]))
	ptac.Tilt = int32(binary.LittleEndian.Uint32(buf[4:8]))
	return nil
}

// Control Request for Privacy as defined in UVC spec 1.5, 4.2.2.1.18
type PrivacyControl struct {
	// Shutter reports whether the privacy shutter is closed.
	Shutter bool
}

func (pc *PrivacyControl) Value() CameraTerminalControlSelector {
	return CameraTerminalControlSelectorPrivacyControl
}

func (pc *PrivacyControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 1)
	if pc.Shutter {
		buf[0] = 1
	}
	return buf, nil
}

func (pc *PrivacyControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 1 {
		return io.ErrShortBuffer
	}
	pc.Shutter = buf[0] == 1
	return nil
}
