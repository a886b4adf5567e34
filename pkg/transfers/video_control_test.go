package transfers

import (
	"errors"
	"testing"
	"time"

	"github.com/kevmo314/go-uvcctl/pkg/requests"
)

// fakeReply scripts the outcome of one control transfer: data is copied
// into the caller's buffer and n and err are returned as-is.
type fakeReply struct {
	data []byte
	n    int
	err  error
}

// fakeTransport records every transfer and pops one scripted reply per
// call. With no reply queued it reports the full buffer length.
type fakeTransport struct {
	calls   []fakeCall
	replies []fakeReply
}

type fakeCall struct {
	requestType uint8
	request     uint8
	value       uint16
	index       uint16
	length      int
	payload     []byte
	timeout     time.Duration
}

func (f *fakeTransport) ControlTransfer(requestType, request uint8, value, index uint16, data []byte, timeout time.Duration) (int, error) {
	f.calls = append(f.calls, fakeCall{
		requestType: requestType,
		request:     request,
		value:       value,
		index:       index,
		length:      len(data),
		payload:     append([]byte(nil), data...),
		timeout:     timeout,
	})
	if len(f.replies) == 0 {
		return len(data), nil
	}
	reply := f.replies[0]
	f.replies = f.replies[1:]
	copy(data, reply.data)
	return reply.n, reply.err
}

func TestVideoControlGetLength(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want int
	}{
		{"16 bytes", []byte{0x10, 0x00}, 16},
		{"256 bytes", []byte{0x00, 0x01}, 256},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeTransport{replies: []fakeReply{{data: tt.data, n: 2}}}
			vc := NewVideoControl(fake, 0x01)

			got, err := vc.GetLength(0x04, 0x03)
			if err != nil {
				t.Fatalf("GetLength failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("GetLength = %d, want %d", got, tt.want)
			}

			call := fake.calls[0]
			if call.requestType != 0xA1 {
				t.Errorf("bmRequestType = 0x%02X, want 0xA1", call.requestType)
			}
			if call.request != uint8(requests.RequestCodeGetLen) {
				t.Errorf("bRequest = 0x%02X, want 0x85", call.request)
			}
			if call.value != 0x0300 {
				t.Errorf("wValue = 0x%04X, want 0x0300", call.value)
			}
			if call.index != 0x0401 {
				t.Errorf("wIndex = 0x%04X, want 0x0401", call.index)
			}
			if call.length != 2 {
				t.Errorf("length = %d, want 2", call.length)
			}
		})
	}
}

func TestVideoControlGetLengthTransportError(t *testing.T) {
	wantErr := errors.New("pipe stall")
	fake := &fakeTransport{replies: []fakeReply{{err: wantErr}}}
	vc := NewVideoControl(fake, 0x01)

	got, err := vc.GetLength(0x04, 0x03)
	if err != wantErr {
		t.Errorf("err = %v, want the transport error unchanged", err)
	}
	if got != 0 {
		t.Errorf("length = %d, want 0", got)
	}
}

func TestVideoControlGetLengthShortTransfer(t *testing.T) {
	fake := &fakeTransport{replies: []fakeReply{{data: []byte{0x10}, n: 1}}}
	vc := NewVideoControl(fake, 0x01)

	_, err := vc.GetLength(0x04, 0x03)
	var sizeErr *TransferSizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("err = %v, want *TransferSizeError", err)
	}
	if sizeErr.Got != 1 || sizeErr.Want != 2 {
		t.Errorf("TransferSizeError = {Got: %d, Want: %d}, want {Got: 1, Want: 2}", sizeErr.Got, sizeErr.Want)
	}
}

func TestVideoControlGet(t *testing.T) {
	fake := &fakeTransport{replies: []fakeReply{{data: []byte{0xAA, 0xBB}, n: 2}}}
	vc := NewVideoControl(fake, 0x02)

	buf := make([]byte, 2)
	n, err := vc.Get(0x05, 0x02, requests.RequestCodeGetMin, buf)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if n != 2 {
		t.Errorf("n = %d, want 2", n)
	}
	if buf[0] != 0xAA || buf[1] != 0xBB {
		t.Errorf("buf = [%02x, %02x], want [aa, bb]", buf[0], buf[1])
	}

	call := fake.calls[0]
	if call.requestType != 0xA1 {
		t.Errorf("bmRequestType = 0x%02X, want 0xA1", call.requestType)
	}
	if call.request != 0x82 {
		t.Errorf("bRequest = 0x%02X, want 0x82", call.request)
	}
	if call.value != 0x0200 {
		t.Errorf("wValue = 0x%04X, want 0x0200", call.value)
	}
	if call.index != 0x0502 {
		t.Errorf("wIndex = 0x%04X, want 0x0502", call.index)
	}
}

func TestVideoControlGetTransportError(t *testing.T) {
	wantErr := errors.New("no device")
	fake := &fakeTransport{replies: []fakeReply{{n: -1, err: wantErr}}}
	vc := NewVideoControl(fake, 0x02)

	buf := make([]byte, 4)
	n, err := vc.Get(0x05, 0x02, requests.RequestCodeGetCur, buf)
	if err != wantErr {
		t.Errorf("err = %v, want the transport error unchanged", err)
	}
	if n != -1 {
		t.Errorf("n = %d, want the transport count unchanged", n)
	}
}

func TestVideoControlSet(t *testing.T) {
	fake := &fakeTransport{}
	vc := NewVideoControl(fake, 0x00)

	payload := []byte{0x01, 0x02, 0x03}
	n, err := vc.Set(0x03, 0x07, payload)
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if n != 3 {
		t.Errorf("n = %d, want 3", n)
	}

	call := fake.calls[0]
	if call.requestType != 0x21 {
		t.Errorf("bmRequestType = 0x%02X, want 0x21", call.requestType)
	}
	if call.request != 0x01 {
		t.Errorf("bRequest = 0x%02X, want 0x01", call.request)
	}
	if call.value != 0x0700 {
		t.Errorf("wValue = 0x%04X, want 0x0700", call.value)
	}
	if call.index != 0x0300 {
		t.Errorf("wIndex = 0x%04X, want 0x0300", call.index)
	}
	if len(call.payload) != 3 || call.payload[0] != 0x01 || call.payload[2] != 0x03 {
		t.Errorf("payload = %x, want 010203", call.payload)
	}
}

func TestVideoControlInfo(t *testing.T) {
	fake := &fakeTransport{replies: []fakeReply{{data: []byte{0x03}, n: 1}}}
	vc := NewVideoControl(fake, 0x01)

	info, err := vc.Info(0x02, 0x04)
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	if info&ControlInfoSupportsGet == 0 {
		t.Error("info missing ControlInfoSupportsGet")
	}
	if info&ControlInfoSupportsSet == 0 {
		t.Error("info missing ControlInfoSupportsSet")
	}
	if info&ControlInfoDisabledByAutomaticMode != 0 {
		t.Error("info has ControlInfoDisabledByAutomaticMode set")
	}

	call := fake.calls[0]
	if call.request != uint8(requests.RequestCodeGetInfo) {
		t.Errorf("bRequest = 0x%02X, want 0x86", call.request)
	}
}

func TestVideoControlRequestErrorCode(t *testing.T) {
	fake := &fakeTransport{replies: []fakeReply{{data: []byte{0x02}, n: 1}}}
	vc := NewVideoControl(fake, 0x03)

	code, err := vc.RequestErrorCode(requests.RequestCodeGetCur)
	if err != nil {
		t.Fatalf("RequestErrorCode failed: %v", err)
	}
	if code != VCErrorCodeIncorrectState {
		t.Errorf("code = %v, want VCErrorCodeIncorrectState", code)
	}

	call := fake.calls[0]
	if call.requestType != 0xA1 {
		t.Errorf("bmRequestType = 0x%02X, want 0xA1", call.requestType)
	}
	if call.value != 0x0200 {
		t.Errorf("wValue = 0x%04X, want 0x0200", call.value)
	}
	// interface addressed: no unit ID in the high byte
	if call.index != 0x0003 {
		t.Errorf("wIndex = 0x%04X, want 0x0003", call.index)
	}
	if call.length != 1 {
		t.Errorf("length = %d, want 1", call.length)
	}
}

func TestVideoControlRequestErrorCodeShortTransfer(t *testing.T) {
	fake := &fakeTransport{replies: []fakeReply{{n: 0}}}
	vc := NewVideoControl(fake, 0x03)

	code, err := vc.RequestErrorCode(requests.RequestCodeGetCur)
	var sizeErr *TransferSizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("err = %v, want *TransferSizeError", err)
	}
	if sizeErr.Got != 0 {
		t.Errorf("TransferSizeError.Got = %d, want 0", sizeErr.Got)
	}
	if code != 0 {
		t.Errorf("code = %v, want zero value on failure", code)
	}
}

func TestVideoControlRequestErrorCodeUnknownValue(t *testing.T) {
	fake := &fakeTransport{replies: []fakeReply{{data: []byte{0x09}, n: 1}}}
	vc := NewVideoControl(fake, 0x03)

	_, err := vc.RequestErrorCode(requests.RequestCodeGetCur)
	var unknownErr *UnknownValueError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("err = %v, want *UnknownValueError", err)
	}
	if unknownErr.Value != 0x09 {
		t.Errorf("UnknownValueError.Value = 0x%02X, want 0x09", unknownErr.Value)
	}
}

func TestVideoControlRequestErrorCodeTransportError(t *testing.T) {
	wantErr := errors.New("timed out")
	fake := &fakeTransport{replies: []fakeReply{{err: wantErr}}}
	vc := NewVideoControl(fake, 0x03)

	code, err := vc.RequestErrorCode(requests.RequestCodeGetCur)
	if err != wantErr {
		t.Errorf("err = %v, want the transport error unchanged", err)
	}
	if code != 0 {
		t.Errorf("code = %v, want zero value on failure", code)
	}
}

func TestVideoControlPowerMode(t *testing.T) {
	tests := []struct {
		name string
		data byte
		want PowerMode
	}{
		{"full power", 0x00, PowerModeFullPower},
		{"device dependent", 0x01, PowerModeDeviceDependent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeTransport{replies: []fakeReply{{data: []byte{tt.data}, n: 1}}}
			vc := NewVideoControl(fake, 0x00)

			mode, err := vc.PowerMode(requests.RequestCodeGetCur)
			if err != nil {
				t.Fatalf("PowerMode failed: %v", err)
			}
			if mode != tt.want {
				t.Errorf("mode = %v, want %v", mode, tt.want)
			}

			call := fake.calls[0]
			if call.value != 0x0100 {
				t.Errorf("wValue = 0x%04X, want 0x0100", call.value)
			}
			if call.index != 0x0000 {
				t.Errorf("wIndex = 0x%04X, want 0x0000", call.index)
			}
		})
	}
}

func TestVideoControlPowerModeUnknownValue(t *testing.T) {
	fake := &fakeTransport{replies: []fakeReply{{data: []byte{0x02}, n: 1}}}
	vc := NewVideoControl(fake, 0x00)

	_, err := vc.PowerMode(requests.RequestCodeGetCur)
	var unknownErr *UnknownValueError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("err = %v, want *UnknownValueError", err)
	}
	if unknownErr.Value != 0x02 {
		t.Errorf("UnknownValueError.Value = 0x%02X, want 0x02", unknownErr.Value)
	}
}

func TestVideoControlSetPowerMode(t *testing.T) {
	fake := &fakeTransport{replies: []fakeReply{{n: 1}}}
	vc := NewVideoControl(fake, 0x04)

	if err := vc.SetPowerMode(PowerModeDeviceDependent); err != nil {
		t.Fatalf("SetPowerMode failed: %v", err)
	}

	if len(fake.calls) != 1 {
		t.Fatalf("issued %d transfers, want 1", len(fake.calls))
	}
	call := fake.calls[0]
	if call.requestType != 0x21 {
		t.Errorf("bmRequestType = 0x%02X, want 0x21", call.requestType)
	}
	if call.request != 0x01 {
		t.Errorf("bRequest = 0x%02X, want 0x01", call.request)
	}
	if call.value != 0x0100 {
		t.Errorf("wValue = 0x%04X, want 0x0100", call.value)
	}
	if call.index != 0x0004 {
		t.Errorf("wIndex = 0x%04X, want 0x0004", call.index)
	}
	if len(call.payload) != 1 || call.payload[0] != 0x01 {
		t.Errorf("payload = %x, want 01", call.payload)
	}
}

func TestVideoControlSetPowerModeShortTransfer(t *testing.T) {
	fake := &fakeTransport{replies: []fakeReply{{n: 0}}}
	vc := NewVideoControl(fake, 0x04)

	err := vc.SetPowerMode(PowerModeFullPower)
	var sizeErr *TransferSizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("err = %v, want *TransferSizeError", err)
	}
}

func TestVideoControlTimeout(t *testing.T) {
	fake := &fakeTransport{}
	vc := NewVideoControl(fake, 0x01)

	vc.Set(0x01, 0x01, []byte{0x00})
	if fake.calls[0].timeout != 0 {
		t.Errorf("default timeout = %v, want 0 (wait indefinitely)", fake.calls[0].timeout)
	}

	vc.SetTimeout(500 * time.Millisecond)
	vc.Set(0x01, 0x01, []byte{0x00})
	if fake.calls[1].timeout != 500*time.Millisecond {
		t.Errorf("timeout = %v, want 500ms", fake.calls[1].timeout)
	}
}

func TestVideoControlIdempotentGet(t *testing.T) {
	fake := &fakeTransport{replies: []fakeReply{
		{data: []byte{0x10, 0x00}, n: 2},
		{data: []byte{0x10, 0x00}, n: 2},
	}}
	vc := NewVideoControl(fake, 0x01)

	first, err := vc.GetLength(0x04, 0x03)
	if err != nil {
		t.Fatalf("GetLength failed: %v", err)
	}
	second, err := vc.GetLength(0x04, 0x03)
	if err != nil {
		t.Fatalf("GetLength failed: %v", err)
	}
	if first != second {
		t.Errorf("repeated GetLength disagree: %d then %d", first, second)
	}
	a, b := fake.calls[0], fake.calls[1]
	if a.requestType != b.requestType || a.request != b.request || a.value != b.value || a.index != b.index {
		t.Errorf("repeated GetLength issued different setups: %+v then %+v", a, b)
	}
}
