package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"

	uvcctl "github.com/kevmo314/go-uvcctl"
	"github.com/kevmo314/go-uvcctl/pkg/requests"
	"github.com/kevmo314/go-uvcctl/pkg/transfers"
)

var requestCodes = map[string]requests.RequestCode{
	"cur": requests.RequestCodeGetCur,
	"min": requests.RequestCodeGetMin,
	"max": requests.RequestCodeGetMax,
	"res": requests.RequestCodeGetRes,
	"def": requests.RequestCodeGetDef,
}

func main() {
	var (
		devicePath = flag.String("device", "/dev/bus/usb/001/002", "USB device path")
		ifnum      = flag.Uint("ifnum", 0, "VideoControl interface number")
		unitID     = flag.Uint("unit", 0, "Unit or terminal ID (0 for interface controls)")
		selector   = flag.Uint("selector", 0, "Control selector")
		value      = flag.String("value", "", "Hex payload for set operations")
		action     = flag.String("action", "info", "Action: info, len, cur, min, max, res, def, set, error, power, fullpower")
	)
	flag.Parse()

	device, err := uvcctl.Open(*devicePath)
	if err != nil {
		log.Fatalf("Failed to open USB device: %v", err)
	}
	defer device.Close()

	if err := device.ClaimInterface(uint8(*ifnum)); err != nil {
		log.Fatalf("Failed to claim interface %d: %v", *ifnum, err)
	}
	defer device.ReleaseInterface(uint8(*ifnum))

	control := device.VideoControl(uint8(*ifnum))

	switch *action {
	case "info":
		showControlInfo(control, uint8(*unitID), uint8(*selector))

	case "len":
		length, err := control.GetLength(uint8(*unitID), uint8(*selector))
		if err != nil {
			log.Fatalf("Failed to get control length: %v", err)
		}
		fmt.Printf("Control length: %d bytes\n", length)

	case "cur", "min", "max", "res", "def":
		readControl(control, uint8(*unitID), uint8(*selector), *action)

	case "set":
		payload, err := hex.DecodeString(*value)
		if err != nil {
			log.Fatalf("Invalid hex payload: %v", err)
		}
		n, err := control.Set(uint8(*unitID), uint8(*selector), payload)
		if err != nil {
			log.Printf("Failed to set control: %v", err)
		} else {
			fmt.Printf("Set %d bytes successfully\n", n)
		}

	case "error":
		code, err := control.RequestErrorCode(requests.RequestCodeGetCur)
		if err != nil {
			log.Fatalf("Failed to read request error code: %v", err)
		}
		fmt.Printf("Request error code: %v\n", code)

	case "power":
		mode, err := control.PowerMode(requests.RequestCodeGetCur)
		if err != nil {
			log.Fatalf("Failed to read power mode: %v", err)
		}
		fmt.Printf("Power mode: %v\n", mode)

	case "fullpower":
		if err := control.SetPowerMode(transfers.PowerModeFullPower); err != nil {
			log.Printf("Failed to set power mode: %v", err)
		} else {
			fmt.Println("Power mode set to full power")
		}

	default:
		log.Fatalf("Unknown action: %s", *action)
	}
}

func readControl(control *transfers.VideoControl, unitID, selector uint8, attribute string) {
	length, err := control.GetLength(unitID, selector)
	if err != nil {
		log.Fatalf("Failed to get control length: %v", err)
	}
	buf := make([]byte, length)
	n, err := control.Get(unitID, selector, requestCodes[attribute], buf)
	if err != nil {
		log.Fatalf("Failed to read control: %v", err)
	}
	fmt.Printf("%s: %s\n", attribute, hex.EncodeToString(buf[:n]))
}

func showControlInfo(control *transfers.VideoControl, unitID, selector uint8) {
	info, err := control.Info(unitID, selector)
	if err != nil {
		log.Fatalf("Failed to read control info: %v", err)
	}

	fmt.Printf("Control Information for unit %d, selector 0x%02x:\n", unitID, selector)
	fmt.Printf("Capabilities: %08b\n\n", uint8(info))

	caps := []struct {
		bit  transfers.ControlInfo
		name string
	}{
		{transfers.ControlInfoSupportsGet, "GET requests"},
		{transfers.ControlInfoSupportsSet, "SET requests"},
		{transfers.ControlInfoDisabledByAutomaticMode, "disabled by automatic mode"},
		{transfers.ControlInfoAutoupdateControl, "autoupdate"},
		{transfers.ControlInfoAsynchronousControl, "asynchronous"},
		{transfers.ControlInfoDisabledByIncompatibleCommit, "disabled by incompatible commit"},
	}
	for _, c := range caps {
		if info&c.bit != 0 {
			fmt.Printf("  %s\n", c.name)
		}
	}
}
