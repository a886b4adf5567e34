package descriptors

import (
	"encoding"
	"encoding/binary"
	"io"
)

type ProcessingUnitControlSelector int

const (
	ProcessingUnitControlSelectorUndefined           ProcessingUnitControlSelector = 0x00
	ProcessingUnitBacklightCompensationControl       ProcessingUnitControlSelector = 0x01
	ProcessingUnitBrightnessControl                  ProcessingUnitControlSelector = 0x02
	ProcessingUnitContrastControl                    ProcessingUnitControlSelector = 0x03
	ProcessingUnitGainControl                        ProcessingUnitControlSelector = 0x04
	ProcessingUnitPowerLineFrequencyControl          ProcessingUnitControlSelector = 0x05
	ProcessingUnitHueControl                         ProcessingUnitControlSelector = 0x06
	ProcessingUnitSaturationControl                  ProcessingUnitControlSelector = 0x07
	ProcessingUnitSharpnessControl                   ProcessingUnitControlSelector = 0x08
	ProcessingUnitGammaControl                       ProcessingUnitControlSelector = 0x09
	ProcessingUnitWhiteBalanceTemperatureControl     ProcessingUnitControlSelector = 0x0A
	ProcessingUnitWhiteBalanceTemperatureAutoControl ProcessingUnitControlSelector = 0x0B
	ProcessingUnitWhiteBalanceComponentControl       ProcessingUnitControlSelector = 0x0C
	ProcessingUnitWhiteBalanceComponentAutoControl   ProcessingUnitControlSelector = 0x0D
	ProcessingUnitDigitalMultiplierControl           ProcessingUnitControlSelector = 0x0E
	ProcessingUnitDigitalMultiplierLimitControl      ProcessingUnitControlSelector = 0x0F
	ProcessingUnitHueAutoControl                     ProcessingUnitControlSelector = 0x10
	ProcessingUnitAnalogVideoStandardControl         ProcessingUnitControlSelector = 0x11
	ProcessingUnitAnalogVideoLockStatusControl       ProcessingUnitControlSelector = 0x12
	ProcessingUnitContrastAutoControl                ProcessingUnitControlSelector = 0x13
)

type PowerLineFrequency int

const (
	PowerLineFrequencyDisabled PowerLineFrequency = 0
	PowerLineFrequency50Hz     PowerLineFrequency = 1
	PowerLineFrequency60Hz     PowerLineFrequency = 2
	PowerLineFrequencyAuto     PowerLineFrequency = 3
)

type AnalogVideoStandard int

const (
	AnalogVideoStandardNone           AnalogVideoStandard = 0
	AnalogVideoStandardNTSC525Line60  AnalogVideoStandard = 1
	AnalogVideoStandardPAL625Line50   AnalogVideoStandard = 2
	AnalogVideoStandardSECAM625Line50 AnalogVideoStandard = 3
	AnalogVideoStandardNTSC625Line50  AnalogVideoStandard = 4
	AnalogVideoStandardPAL525Line60   AnalogVideoStandard = 5
)

type AnalogVideoLockStatus int

const (
	AnalogVideoLockStatusLocked    AnalogVideoLockStatus = 0
	AnalogVideoLockStatusNotLocked AnalogVideoLockStatus = 1
)

// ProcessingUnitControlDescriptor is the payload layout of one processing
// unit control, keyed by the selector its Value reports.
type ProcessingUnitControlDescriptor interface {
	Value() ProcessingUnitControlSelector
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}

type BacklightCompensationControl struct {
	Compensation uint16
}

func (bcc *BacklightCompensationControl) Value() ProcessingUnitControlSelector {
	return ProcessingUnitBacklightCompensationControl
}

func (bcc *BacklightCompensationControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, bcc.Compensation)
	return buf, nil
}

func (bcc *BacklightCompensationControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 2 {
		return io.ErrShortBuffer
	}
	bcc.Compensation = binary.LittleEndian.Uint16(buf)
	return nil
}

type BrightnessControl struct {
	Brightness int16
}

func (bc *BrightnessControl) Value() ProcessingUnitControlSelector {
	return ProcessingUnitBrightnessControl
}

func (bc *BrightnessControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, uint16(bc.Brightness))
	return buf, nil
}

func (bc *BrightnessControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 2 {
		return io.ErrShortBuffer
	}
	bc.Brightness = int16(binary.LittleEndian.Uint16(buf))
	return nil
}

type ContrastControl struct {
	Contrast uint16
}

func (cc *ContrastControl) Value() ProcessingUnitControlSelector {
	return ProcessingUnitContrastControl
}

func (cc *ContrastControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, cc.Contrast)
	return buf, nil
}

func (cc *ContrastControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 2 {
		return io.ErrShortBuffer
	}
	cc.Contrast = binary.LittleEndian.Uint16(buf)
	return nil
}

type ContrastAutoControl struct {
	ContrastAuto bool
}

func (cac *ContrastAutoControl) Value() ProcessingUnitControlSelector {
	return ProcessingUnitContrastAutoControl
}

func (cac *ContrastAutoControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 1)
	if cac.ContrastAuto {
		buf[0] = 1
	}
	return buf, nil
}

func (cac *ContrastAutoControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 1 {
		return io.ErrShortBuffer
	}
	cac.ContrastAuto = buf[0] == 1
	return nil
}

type GainControl struct {
	Gain uint16
}

func (gc *GainControl) Value() ProcessingUnitControlSelector {
	return ProcessingUnitGainControl
}

func (gc *GainControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, gc.Gain)
	return buf, nil
}

func (gc *GainControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 2 {
		return io.ErrShortBuffer
	}
	gc.Gain = binary.LittleEndian.Uint16(buf)
	return nil
}

type PowerLineFrequencyControl struct {
	Frequency PowerLineFrequency
}

func (plfc *PowerLineFrequencyControl) Value() ProcessingUnitControlSelector {
	return ProcessingUnitPowerLineFrequencyControl
}

func (plfc *PowerLineFrequencyControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 1)
	buf[0] = byte(plfc.Frequency)
	return buf, nil
}

func (plfc *PowerLineFrequencyControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 1 {
		return io.ErrShortBuffer
	}
	plfc.Frequency = PowerLineFrequency(buf[0])
	return nil
}

type HueControl struct {
	// Hue is in units of degrees * 100.
	Hue int16
}

func (hc *HueControl) Value() ProcessingUnitControlSelector {
	return ProcessingUnitHueControl
}

func (hc *HueControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, uint16(hc.Hue))
	return buf, nil
}

func (hc *HueControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 2 {
		return io.ErrShortBuffer
	}
	hc.Hue = int16(binary.LittleEndian.Uint16(buf))
	return nil
}

type HueAutoControl struct {
	HueAuto bool
}

func (hac *HueAutoControl) Value() ProcessingUnitControlSelector {
	return ProcessingUnitHueAutoControl
}

func (hac *HueAutoControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 1)
	if hac.HueAuto {
		buf[0] = 1
	}
	return buf, nil
}

func (hac *HueAutoControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 1 {
		return io.ErrShortBuffer
	}
	hac.HueAuto = buf[0] == 1
	return nil
}

type SaturationControl struct {
	Saturation uint16
}

func (sc *SaturationControl) Value() ProcessingUnitControlSelector {
	return ProcessingUnitSaturationControl
}

func (sc *SaturationControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, sc.Saturation)
	return buf, nil
}

func (sc *SaturationControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 2 {
		return io.ErrShortBuffer
	}
	sc.Saturation = binary.LittleEndian.Uint16(buf)
	return nil
}

type SharpnessControl struct {
	Sharpness uint16
}

func (shc *SharpnessControl) Value() ProcessingUnitControlSelector {
	return ProcessingUnitSharpnessControl
}

func (shc *SharpnessControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, shc.Sharpness)
	return buf, nil
}

func (shc *SharpnessControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 2 {
		return io.ErrShortBuffer
	}
	shc.Sharpness = binary.LittleEndian.Uint16(buf)
	return nil
}

type GammaControl struct {
	// Gamma is in units of gamma * 100.
	Gamma uint16
}

func (gmc *GammaControl) Value() ProcessingUnitControlSelector {
	return ProcessingUnitGammaControl
}

func (gmc *GammaControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, gmc.Gamma)
	return buf, nil
}

func (gmc *GammaControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 2 {
		return io.ErrShortBuffer
	}
	gmc.Gamma = binary.LittleEndian.Uint16(buf)
	return nil
}

type WhiteBalanceTemperatureControl struct {
	// Temperature is in kelvin.
	Temperature uint16
}

func (wbtc *WhiteBalanceTemperatureControl) Value() ProcessingUnitControlSelector {
	return ProcessingUnitWhiteBalanceTemperatureControl
}

func (wbtc *WhiteBalanceTemperatureControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, wbtc.Temperature)
	return buf, nil
}

func (wbtc *WhiteBalanceTemperatureControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 2 {
		return io.ErrShortBuffer
	}
	wbtc.Temperature = binary.LittleEndian.Uint16(buf)
	return nil
}

type WhiteBalanceTemperatureAutoControl struct {
	TemperatureAuto bool
}

func (wbtac *WhiteBalanceTemperatureAutoControl) Value() ProcessingUnitControlSelector {
	return ProcessingUnitWhiteBalanceTemperatureAutoControl
}

func (wbtac *WhiteBalanceTemperatureAutoControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 1)
	if wbtac.TemperatureAuto {
		buf[0] = 1
	}
	return buf, nil
}

func (wbtac *WhiteBalanceTemperatureAutoControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 1 {
		return io.ErrShortBuffer
	}
	wbtac.TemperatureAuto = buf[0] == 1
	return nil
}

// White Balance Component packs the blue component first, then red.
type WhiteBalanceComponentControl struct {
	Blue uint16
	Red  uint16
}

func (wbcc *WhiteBalanceComponentControl) Value() ProcessingUnitControlSelector {
	return ProcessingUnitWhiteBalanceComponentControl
}

func (wbcc *WhiteBalanceComponentControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint16(buf[0:2], wbcc.Blue)
	binary.LittleEndian.PutUint16(buf[2:4], wbcc.Red)
	return buf, nil
}

func (wbcc *WhiteBalanceComponentControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 4 {
		return io.ErrShortBuffer
	}
	wbcc.Blue = binary.LittleEndian.Uint16(buf[0:2])
	wbcc.Red = binary.LittleEndian.Uint16(buf[2:4])
	return nil
}

type WhiteBalanceComponentAutoControl struct {
	ComponentAuto bool
}

func (wbcac *WhiteBalanceComponentAutoControl) Value() ProcessingUnitControlSelector {
	return ProcessingUnitWhiteBalanceComponentAutoControl
}

func (wbcac *WhiteBalanceComponentAutoControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 1)
	if wbcac.ComponentAuto {
		buf[0] = 1
	}
	return buf, nil
}

func (wbcac *WhiteBalanceComponentAutoControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 1 {
		return io.ErrShortBuffer
	}
	wbcac.ComponentAuto = buf[0] == 1
	return nil
}

type DigitalMultiplierControl struct {
	// MultiplierStep is in units of multiplier * 100.
	MultiplierStep uint16
}

func (dmc *DigitalMultiplierControl) Value() ProcessingUnitControlSelector {
	return ProcessingUnitDigitalMultiplierControl
}

func (dmc *DigitalMultiplierControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, dmc.MultiplierStep)
	return buf, nil
}

func (dmc *DigitalMultiplierControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 2 {
		return io.ErrShortBuffer
	}
	dmc.MultiplierStep = binary.LittleEndian.Uint16(buf)
	return nil
}

type DigitalMultiplierLimitControl struct {
	MultiplierLimit uint16
}

func (dmlc *DigitalMultiplierLimitControl) Value() ProcessingUnitControlSelector {
	return ProcessingUnitDigitalMultiplierLimitControl
}

func (dmlc *DigitalMultiplierLimitControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, dmlc.MultiplierLimit)
	return buf, nil
}

func (dmlc *DigitalMultiplierLimitControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 2 {
		return io.ErrShortBuffer
	}
	dmlc.MultiplierLimit = binary.LittleEndian.Uint16(buf)
	return nil
}

type AnalogVideoStandardControl struct {
	Standard AnalogVideoStandard
}

func (avsc *AnalogVideoStandardControl) Value() ProcessingUnitControlSelector {
	return ProcessingUnitAnalogVideoStandardControl
}

func (avsc *AnalogVideoStandardControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 1)
	buf[0] = byte(avsc.Standard)
	return buf, nil
}

func (avsc *AnalogVideoStandardControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 1 {
		return io.ErrShortBuffer
	}
	avsc.Standard = AnalogVideoStandard(buf[0])
	return nil
}

type AnalogVideoLockStatusControl struct {
	Status AnalogVideoLockStatus
}

func (avlsc *AnalogVideoLockStatusControl) Value() ProcessingUnitControlSelector {
	return ProcessingUnitAnalogVideoLockStatusControl
}

func (avlsc *AnalogVideoLockStatusControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 1)
	buf[0] = byte(avlsc.Status)
	return buf, nil
}

func (avlsc *AnalogVideoLockStatusControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 1 {
		return io.ErrShortBuffer
	}
	avlsc.Status = AnalogVideoLockStatus(buf[0])
	return nil
}
