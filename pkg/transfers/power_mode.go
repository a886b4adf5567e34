package transfers

// PowerMode is the value of the video power mode control on the
// VideoControl interface, as defined in UVC spec 1.5, 4.2.1.1.
type PowerMode uint8

const (
	PowerModeFullPower       PowerMode = 0x00
	PowerModeDeviceDependent PowerMode = 0x01
)

func (m PowerMode) String() string {
	switch m {
	case PowerModeFullPower:
		return "full power"
	case PowerModeDeviceDependent:
		return "device dependent"
	}
	return "undefined"
}

func parsePowerMode(b byte) (PowerMode, error) {
	switch mode := PowerMode(b); mode {
	case PowerModeFullPower, PowerModeDeviceDependent:
		return mode, nil
	}
	return 0, &UnknownValueError{Control: "video power mode", Value: b}
}
