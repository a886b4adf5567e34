package transfers

import (
	"fmt"
	"time"

	"github.com/kevmo314/go-uvcctl/pkg/descriptors"
	"github.com/kevmo314/go-uvcctl/pkg/requests"
)

// streamCapability gates VideoStreaming interface queries that misbehave on
// real hardware.
type streamCapability uint8

const (
	// capStreamErrorCodeQuery would permit GET requests on the stream
	// error code control. Issuing that request hangs some combinations of
	// device and host controller, so the capability is never granted:
	// ErrorCode reports ErrNotSupported without touching the transport.
	capStreamErrorCodeQuery streamCapability = 1 << iota
)

// grantedStreamCapabilities is the fixed policy for every StreamControl.
const grantedStreamCapabilities streamCapability = 0

// StreamControl issues class-specific requests against one VideoStreaming
// interface. All of its controls are interface-addressed. Like
// VideoControl, operations are synchronous, one transfer each, and
// transport failures pass through unchanged.
type StreamControl struct {
	bcdUVC  uint16
	handle  Transport
	ifnum   uint8
	timeout time.Duration
}

// NewStreamControl binds a requester to a VideoStreaming interface. bcdUVC
// is the binary-coded UVC version the device reports (0x0150 for 1.5); it
// sizes the probe and commit payloads. Zero is treated as UVC 1.0.
func NewStreamControl(handle Transport, interfaceNumber uint8, bcdUVC uint16) *StreamControl {
	return &StreamControl{
		bcdUVC: bcdUVC,
		handle: handle,
		ifnum:  interfaceNumber,
	}
}

// InterfaceNumber returns the interface this StreamControl addresses.
func (sc *StreamControl) InterfaceNumber() uint8 {
	return sc.ifnum
}

// UVCVersionString renders the interface's binary-coded UVC version.
func (sc *StreamControl) UVCVersionString() string {
	return fmt.Sprintf("%x.%02x", sc.bcdUVC>>8, sc.bcdUVC&0xff)
}

// SetTimeout bounds each subsequent transfer. Zero restores the indefinite
// wait.
func (sc *StreamControl) SetTimeout(timeout time.Duration) {
	sc.timeout = timeout
}

func (sc *StreamControl) controlTransfer(requestType requests.RequestType, code requests.RequestCode, selector uint8, data []byte) (int, error) {
	wValue, wIndex := requests.Pack(selector, 0, sc.ifnum)
	return sc.handle.ControlTransfer(
		uint8(requestType),
		uint8(code),
		wValue,
		wIndex,
		data,
		sc.timeout,
	)
}

// ErrorCode would read the cause of the most recent failed request on this
// interface. The query is disabled by policy, see capStreamErrorCodeQuery:
// it always returns ErrNotSupported and issues no transfer.
func (sc *StreamControl) ErrorCode(code requests.RequestCode) (VSErrorCode, error) {
	if grantedStreamCapabilities&capStreamErrorCodeQuery == 0 {
		return 0, ErrNotSupported
	}
	var buf [1]byte
	n, err := sc.controlTransfer(requests.RequestTypeVideoInterfaceGetRequest, code, uint8(StreamInterfaceControlSelectorStreamErrorCodeControl), buf[:])
	if err != nil {
		return 0, err
	}
	if n != 1 {
		return 0, &TransferSizeError{Got: n, Want: 1}
	}
	return parseVSErrorCode(buf[0])
}

// Probe reads the streaming parameters the device reports through the probe
// control into vpcc. code selects which attribute (GetCur for the device's
// counterproposal, GetMax or GetMin for the bounds, GetDef for defaults).
func (sc *StreamControl) Probe(code requests.RequestCode, vpcc *descriptors.VideoProbeCommitControl) error {
	buf := make([]byte, vpcc.MarshalSize(sc.bcdUVC))
	n, err := sc.controlTransfer(requests.RequestTypeVideoInterfaceGetRequest, code, uint8(StreamInterfaceControlSelectorProbeControl), buf)
	if err != nil {
		return err
	}
	return vpcc.UnmarshalBinary(buf[:n])
}

// SetProbe proposes streaming parameters through the probe control. The
// device clamps fields it cannot honor; read the result back with Probe.
func (sc *StreamControl) SetProbe(vpcc *descriptors.VideoProbeCommitControl) error {
	buf := make([]byte, vpcc.MarshalSize(sc.bcdUVC))
	if err := vpcc.MarshalInto(buf); err != nil {
		return err
	}
	_, err := sc.controlTransfer(requests.RequestTypeVideoInterfaceSetRequest, requests.RequestCodeSetCur, uint8(StreamInterfaceControlSelectorProbeControl), buf)
	return err
}

// Commit locks the negotiated parameters in through the commit control. The
// device only honors a commit that matches a completed probe exchange.
func (sc *StreamControl) Commit(vpcc *descriptors.VideoProbeCommitControl) error {
	buf := make([]byte, vpcc.MarshalSize(sc.bcdUVC))
	if err := vpcc.MarshalInto(buf); err != nil {
		return err
	}
	_, err := sc.controlTransfer(requests.RequestTypeVideoInterfaceSetRequest, requests.RequestCodeSetCur, uint8(StreamInterfaceControlSelectorCommitControl), buf)
	return err
}

// Negotiate runs the probe sequence for a format and frame index pair:
// fetch the device's maximum, propose it with the requested indices, read
// back the device's counterproposal, and commit that. vpcc holds the
// negotiated parameters afterwards.
func (sc *StreamControl) Negotiate(vpcc *descriptors.VideoProbeCommitControl, formatIndex, frameIndex uint8) error {
	if err := sc.Probe(requests.RequestCodeGetMax, vpcc); err != nil {
		return err
	}

	vpcc.FormatIndex = formatIndex
	vpcc.FrameIndex = frameIndex

	if err := sc.SetProbe(vpcc); err != nil {
		return err
	}
	if err := sc.Probe(requests.RequestCodeGetCur, vpcc); err != nil {
		return err
	}
	return sc.Commit(vpcc)
}
