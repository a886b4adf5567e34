package transfers

import (
	"encoding/binary"
	"time"

	"github.com/kevmo314/go-uvcctl/pkg/requests"
)

// VideoControl issues class-specific requests against one VideoControl
// interface. Unit-addressed requests (Get, Set, GetLength, Info) target a
// terminal, processing unit, or extension unit by ID. The error code and
// power mode requests address the interface itself.
//
// Every operation issues exactly one control transfer, synchronously, with
// no retries. Transport failures come back to the caller untouched so the
// platform error remains inspectable. The zero value of timeout, the
// default, waits indefinitely.
type VideoControl struct {
	handle  Transport
	ifnum   uint8
	timeout time.Duration
}

func NewVideoControl(handle Transport, interfaceNumber uint8) *VideoControl {
	return &VideoControl{
		handle: handle,
		ifnum:  interfaceNumber,
	}
}

// InterfaceNumber returns the interface this VideoControl addresses.
func (vc *VideoControl) InterfaceNumber() uint8 {
	return vc.ifnum
}

// SetTimeout bounds each subsequent transfer. Zero restores the indefinite
// wait.
func (vc *VideoControl) SetTimeout(timeout time.Duration) {
	vc.timeout = timeout
}

// controlTransfer is the one transfer every operation reduces to. The
// transport's byte count and error are handed back unchanged.
func (vc *VideoControl) controlTransfer(requestType requests.RequestType, code requests.RequestCode, selector, unitID uint8, data []byte) (int, error) {
	wValue, wIndex := requests.Pack(selector, unitID, vc.ifnum)
	return vc.handle.ControlTransfer(
		uint8(requestType),
		uint8(code),
		wValue,
		wIndex,
		data,
		vc.timeout,
	)
}

// GetLength reports the byte length the device expects for a control's
// value, for sizing buffers before Get on variable-length controls such as
// extension unit controls.
func (vc *VideoControl) GetLength(unitID, selector uint8) (int, error) {
	var buf [2]byte
	n, err := vc.controlTransfer(requests.RequestTypeVideoInterfaceGetRequest, requests.RequestCodeGetLen, selector, unitID, buf[:])
	if err != nil {
		return 0, err
	}
	if n != 2 {
		return 0, &TransferSizeError{Got: n, Want: 2}
	}
	return int(binary.LittleEndian.Uint16(buf[:])), nil
}

// Get executes a GET request against a unit or terminal control and fills
// buf with the device's response. The request code selects which attribute
// the device reports (GetCur, GetMin, GetMax, GetRes, GetDef). It returns
// the number of bytes the device produced, which can be shorter than buf.
func (vc *VideoControl) Get(unitID, selector uint8, code requests.RequestCode, buf []byte) (int, error) {
	return vc.controlTransfer(requests.RequestTypeVideoInterfaceGetRequest, code, selector, unitID, buf)
}

// Set executes a SET_CUR request against a unit or terminal control with
// buf as the payload. SET_CUR is the only set attribute UVC defines.
func (vc *VideoControl) Set(unitID, selector uint8, buf []byte) (int, error) {
	return vc.controlTransfer(requests.RequestTypeVideoInterfaceSetRequest, requests.RequestCodeSetCur, selector, unitID, buf)
}

// Info queries a control's GET_INFO capability bitmap, reporting whether
// the control supports get, set, or changes state on its own.
func (vc *VideoControl) Info(unitID, selector uint8) (ControlInfo, error) {
	var buf [1]byte
	n, err := vc.controlTransfer(requests.RequestTypeVideoInterfaceGetRequest, requests.RequestCodeGetInfo, selector, unitID, buf[:])
	if err != nil {
		return 0, err
	}
	if n != 1 {
		return 0, &TransferSizeError{Got: n, Want: 1}
	}
	return ControlInfo(buf[0]), nil
}

// RequestErrorCode reads the cause of the most recent failed request on
// this interface, for triaging a stalled control request. code is normally
// RequestCodeGetCur but the attribute is caller-chosen. Only a transfer of
// exactly one byte decodes; on any failure the device state is left to a
// later retry and the zero code is returned alongside the error.
func (vc *VideoControl) RequestErrorCode(code requests.RequestCode) (VCErrorCode, error) {
	var buf [1]byte
	n, err := vc.controlTransfer(requests.RequestTypeVideoInterfaceGetRequest, code, uint8(InterfaceControlSelectorRequestErrorCodeControl), 0, buf[:])
	if err != nil {
		return 0, err
	}
	if n != 1 {
		return 0, &TransferSizeError{Got: n, Want: 1}
	}
	return parseVCErrorCode(buf[0])
}

// PowerMode reads the device power mode control. code selects the
// attribute, normally RequestCodeGetCur.
func (vc *VideoControl) PowerMode(code requests.RequestCode) (PowerMode, error) {
	var buf [1]byte
	n, err := vc.controlTransfer(requests.RequestTypeVideoInterfaceGetRequest, code, uint8(InterfaceControlSelectorVideoPowerModeControl), 0, buf[:])
	if err != nil {
		return 0, err
	}
	if n != 1 {
		return 0, &TransferSizeError{Got: n, Want: 1}
	}
	return parsePowerMode(buf[0])
}

// SetPowerMode writes the device power mode control.
func (vc *VideoControl) SetPowerMode(mode PowerMode) error {
	buf := [1]byte{byte(mode)}
	n, err := vc.controlTransfer(requests.RequestTypeVideoInterfaceSetRequest, requests.RequestCodeSetCur, uint8(InterfaceControlSelectorVideoPowerModeControl), 0, buf[:])
	if err != nil {
		return err
	}
	if n != 1 {
		return &TransferSizeError{Got: n, Want: 1}
	}
	return nil
}
