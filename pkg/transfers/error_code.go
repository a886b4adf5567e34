package transfers

// VCErrorCode is the value of the request error code control on the
// VideoControl interface, as defined in UVC spec 1.5, 4.2.1.2. The device
// reports the cause of the most recent failed control request through it.
type VCErrorCode uint8

const (
	VCErrorCodeNoError                 VCErrorCode = 0x00
	VCErrorCodeNotReady                VCErrorCode = 0x01
	VCErrorCodeIncorrectState          VCErrorCode = 0x02
	VCErrorCodePower                   VCErrorCode = 0x03
	VCErrorCodeOutOfRange              VCErrorCode = 0x04
	VCErrorCodeInvalidUnit             VCErrorCode = 0x05
	VCErrorCodeInvalidControl          VCErrorCode = 0x06
	VCErrorCodeInvalidRequest          VCErrorCode = 0x07
	VCErrorCodeInvalidValueWithinRange VCErrorCode = 0x08
	VCErrorCodeUnknown                 VCErrorCode = 0xFF
)

func (c VCErrorCode) String() string {
	switch c {
	case VCErrorCodeNoError:
		return "no error"
	case VCErrorCodeNotReady:
		return "not ready"
	case VCErrorCodeIncorrectState:
		return "wrong state"
	case VCErrorCodePower:
		return "power"
	case VCErrorCodeOutOfRange:
		return "out of range"
	case VCErrorCodeInvalidUnit:
		return "invalid unit"
	case VCErrorCodeInvalidControl:
		return "invalid control"
	case VCErrorCodeInvalidRequest:
		return "invalid request"
	case VCErrorCodeInvalidValueWithinRange:
		return "invalid value within range"
	case VCErrorCodeUnknown:
		return "unknown"
	}
	return "undefined"
}

// parseVCErrorCode maps a device byte onto the defined error codes. Devices
// can report bytes outside the table; those fail instead of coercing.
func parseVCErrorCode(b byte) (VCErrorCode, error) {
	switch code := VCErrorCode(b); code {
	case VCErrorCodeNoError, VCErrorCodeNotReady, VCErrorCodeIncorrectState,
		VCErrorCodePower, VCErrorCodeOutOfRange, VCErrorCodeInvalidUnit,
		VCErrorCodeInvalidControl, VCErrorCodeInvalidRequest,
		VCErrorCodeInvalidValueWithinRange, VCErrorCodeUnknown:
		return code, nil
	}
	return 0, &UnknownValueError{Control: "request error code", Value: b}
}

// VSErrorCode is the value of the stream error code control on a
// VideoStreaming interface, as defined in UVC spec 1.5, 4.3.1.7.
type VSErrorCode uint8

const (
	VSErrorCodeNoError                VSErrorCode = 0x00
	VSErrorCodeProtectedContent       VSErrorCode = 0x01
	VSErrorCodeInputBufferUnderrun    VSErrorCode = 0x02
	VSErrorCodeDataDiscontinuity      VSErrorCode = 0x03
	VSErrorCodeOutputBufferOverrun    VSErrorCode = 0x04
	VSErrorCodeFormatChange           VSErrorCode = 0x05
	VSErrorCodeStillImageCaptureError VSErrorCode = 0x06
	VSErrorCodeUnknown                VSErrorCode = 0x07
)

func parseVSErrorCode(b byte) (VSErrorCode, error) {
	if b > byte(VSErrorCodeUnknown) {
		return 0, &UnknownValueError{Control: "stream error code", Value: b}
	}
	return VSErrorCode(b), nil
}
