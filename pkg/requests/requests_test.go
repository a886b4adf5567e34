package requests

import "testing"

func TestPack(t *testing.T) {
	tests := []struct {
		name      string
		selector  uint8
		unit      uint8
		ifnum     uint8
		wantValue uint16
		wantIndex uint16
	}{
		{"unit addressed", 0x02, 0x03, 0x01, 0x0200, 0x0301},
		{"interface addressed", 0x01, 0x00, 0x02, 0x0100, 0x0002},
		{"high selector", 0xFF, 0x00, 0x00, 0xFF00, 0x0000},
		{"high unit", 0x01, 0xFF, 0x01, 0x0100, 0xFF01},
		{"zero everything", 0x00, 0x00, 0x00, 0x0000, 0x0000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wValue, wIndex := Pack(tt.selector, tt.unit, tt.ifnum)
			if wValue != tt.wantValue {
				t.Errorf("wValue = 0x%04X, want 0x%04X", wValue, tt.wantValue)
			}
			if wIndex != tt.wantIndex {
				t.Errorf("wIndex = 0x%04X, want 0x%04X", wIndex, tt.wantIndex)
			}
		})
	}
}

func TestPackSelectorLowByteZero(t *testing.T) {
	for selector := 0; selector <= 0xFF; selector++ {
		wValue, _ := Pack(uint8(selector), 0x05, 0x01)
		if wValue&0x00FF != 0 {
			t.Fatalf("Pack(0x%02X, ...) wValue = 0x%04X, low byte must be zero", selector, wValue)
		}
	}
}
