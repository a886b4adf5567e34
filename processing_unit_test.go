package uvcctl

import (
	"errors"
	"testing"

	"github.com/kevmo314/go-uvcctl/pkg/descriptors"
	"github.com/kevmo314/go-uvcctl/pkg/transfers"
)

func TestProcessingUnitGetBrightness(t *testing.T) {
	fake := &scriptedTransport{replies: map[uint32]scriptedReply{
		// GET_CUR on PU_BRIGHTNESS_CONTROL: -10 little endian
		replyKey(0x81, 0x0200): {data: []byte{0xF6, 0xFF}, n: 2},
	}}
	pu := NewProcessingUnit(transfers.NewVideoControl(fake, 0x00), 0x02)

	bc := &descriptors.BrightnessControl{}
	if err := pu.Get(bc); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if bc.Brightness != -10 {
		t.Errorf("Brightness = %d, want -10", bc.Brightness)
	}

	call := fake.calls[0]
	if call.value != 0x0200 {
		t.Errorf("wValue = 0x%04X, want 0x0200", call.value)
	}
	if call.index != 0x0200 {
		t.Errorf("wIndex = 0x%04X, want 0x0200", call.index)
	}
}

func TestProcessingUnitSetContrast(t *testing.T) {
	fake := &scriptedTransport{}
	pu := NewProcessingUnit(transfers.NewVideoControl(fake, 0x01), 0x03)

	if err := pu.Set(&descriptors.ContrastControl{Contrast: 0x1234}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	call := fake.calls[0]
	if call.requestType != 0x21 {
		t.Errorf("bmRequestType = 0x%02X, want 0x21", call.requestType)
	}
	if call.value != 0x0300 {
		t.Errorf("wValue = 0x%04X, want 0x0300", call.value)
	}
	if call.index != 0x0301 {
		t.Errorf("wIndex = 0x%04X, want 0x0301", call.index)
	}
	if len(call.payload) != 2 || call.payload[0] != 0x34 || call.payload[1] != 0x12 {
		t.Errorf("payload = %x, want 3412", call.payload)
	}
}

func TestProcessingUnitIsControlRequestSupported(t *testing.T) {
	fake := &scriptedTransport{replies: map[uint32]scriptedReply{
		// GET_INFO: brightness answers, gain stalls
		replyKey(0x86, 0x0200): {data: []byte{0x03}, n: 1},
		replyKey(0x86, 0x0400): {err: errors.New("pipe stall")},
	}}
	pu := NewProcessingUnit(transfers.NewVideoControl(fake, 0x00), 0x02)

	if !pu.IsControlRequestSupported(&descriptors.BrightnessControl{}) {
		t.Error("brightness reported unsupported")
	}
	if pu.IsControlRequestSupported(&descriptors.GainControl{}) {
		t.Error("gain reported supported")
	}
}

func TestProcessingUnitGetSupportedControls(t *testing.T) {
	fake := &scriptedTransport{replies: map[uint32]scriptedReply{}}
	for _, desc := range puControls {
		key := replyKey(0x86, uint16(desc.Value())<<8)
		fake.replies[key] = scriptedReply{err: errors.New("pipe stall")}
	}
	// only brightness and saturation answer GET_INFO
	fake.replies[replyKey(0x86, 0x0200)] = scriptedReply{data: []byte{0x03}, n: 1}
	fake.replies[replyKey(0x86, 0x0700)] = scriptedReply{data: []byte{0x03}, n: 1}

	pu := NewProcessingUnit(transfers.NewVideoControl(fake, 0x00), 0x02)

	supported := pu.GetSupportedControls()
	if len(supported) != 2 {
		t.Fatalf("len(supported) = %d, want 2", len(supported))
	}
}

func TestProcessingUnitGetMinMax(t *testing.T) {
	fake := &scriptedTransport{replies: map[uint32]scriptedReply{
		replyKey(0x82, 0x0200): {data: []byte{0x00, 0x80}, n: 2}, // GET_MIN: -32768
		replyKey(0x83, 0x0200): {data: []byte{0xFF, 0x7F}, n: 2}, // GET_MAX: 32767
	}}
	pu := NewProcessingUnit(transfers.NewVideoControl(fake, 0x00), 0x02)

	min := &descriptors.BrightnessControl{}
	if err := pu.GetRequest(min, 0x82); err != nil {
		t.Fatalf("GetRequest(GET_MIN) failed: %v", err)
	}
	max := &descriptors.BrightnessControl{}
	if err := pu.GetRequest(max, 0x83); err != nil {
		t.Fatalf("GetRequest(GET_MAX) failed: %v", err)
	}
	if min.Brightness != -32768 {
		t.Errorf("min = %d, want -32768", min.Brightness)
	}
	if max.Brightness != 32767 {
		t.Errorf("max = %d, want 32767", max.Brightness)
	}
}
