// Package requests defines the request vocabulary of UVC class-specific
// control transfers: the bmRequestType values, the request codes, and the
// packing of control selectors and unit IDs into the setup packet's wValue
// and wIndex fields.
package requests

type RequestType uint8

const (
	RequestTypeVideoInterfaceSetRequest RequestType = 0b00100001
	RequestTypeDataEndpointSetRequest   RequestType = 0b00100010
	RequestTypeVideoInterfaceGetRequest RequestType = 0b10100001
	RequestTypeDataEndpointGetRequest   RequestType = 0b10100010
)

type RequestCode uint8

const (
	RequestCodeUndefined RequestCode = 0x00
	RequestCodeSetCur    RequestCode = 0x01
	RequestCodeSetCurAll RequestCode = 0x11
	RequestCodeGetCur    RequestCode = 0x81
	RequestCodeGetMin    RequestCode = 0x82
	RequestCodeGetMax    RequestCode = 0x83
	RequestCodeGetRes    RequestCode = 0x84
	RequestCodeGetLen    RequestCode = 0x85
	RequestCodeGetInfo   RequestCode = 0x86
	RequestCodeGetDef    RequestCode = 0x87
	RequestCodeGetCurAll RequestCode = 0x91
	RequestCodeGetMinAll RequestCode = 0x92
	RequestCodeGetMaxAll RequestCode = 0x93
	RequestCodeGetResAll RequestCode = 0x94
	RequestCodeGetDefAll RequestCode = 0x97
)

// Pack computes the wValue and wIndex fields of a control request. The
// control selector occupies the high byte of wValue; the low byte is always
// zero. The unit or terminal ID occupies the high byte of wIndex with the
// control interface number in the low byte. Interface-addressed controls
// pass unit 0 so that wIndex carries the interface number alone.
//
// Every request this module issues goes through Pack so the field layout
// cannot drift between call sites.
func Pack(selector, unit, interfaceNumber uint8) (wValue, wIndex uint16) {
	return uint16(selector) << 8, uint16(unit)<<8 | uint16(interfaceNumber)
}
