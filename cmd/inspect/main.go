package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	uvcctl "github.com/kevmo314/go-uvcctl"
	"github.com/kevmo314/go-uvcctl/pkg/descriptors"
	"github.com/kevmo314/go-uvcctl/pkg/requests"
	"github.com/kevmo314/go-uvcctl/pkg/transfers"
	"github.com/rivo/tview"
)

var attributes = []struct {
	name string
	code requests.RequestCode
}{
	{"Current", requests.RequestCodeGetCur},
	{"Minimum", requests.RequestCodeGetMin},
	{"Maximum", requests.RequestCodeGetMax},
	{"Resolution", requests.RequestCodeGetRes},
	{"Default", requests.RequestCodeGetDef},
}

func main() {
	path := flag.String("path", "", "path to the usb device")
	ifnum := flag.Uint("ifnum", 0, "VideoControl interface number")
	ctID := flag.Uint("ct", 1, "camera terminal ID")
	puID := flag.Uint("pu", 2, "processing unit ID")

	flag.Parse()

	if *path == "" {
		fmt.Println("Error: Please specify a USB device path with -path flag")
		fmt.Println("Example: inspect -path /dev/bus/usb/001/007")
		os.Exit(1)
	}

	dev, err := uvcctl.Open(*path)
	if err != nil {
		fmt.Printf("Error opening device %s: %v\n", *path, err)
		fmt.Println("Make sure to run with sudo if permission denied")
		os.Exit(1)
	}
	defer dev.Close()

	if err := dev.ClaimInterface(uint8(*ifnum)); err != nil {
		fmt.Printf("Error claiming interface %d: %v\n", *ifnum, err)
		os.Exit(1)
	}
	defer dev.ReleaseInterface(uint8(*ifnum))

	vc := dev.VideoControl(uint8(*ifnum))
	ct := dev.CameraTerminal(uint8(*ifnum), uint8(*ctID))
	pu := dev.ProcessingUnit(uint8(*ifnum), uint8(*puID))

	app := tview.NewApplication()

	controls := tview.NewList().ShowSecondaryText(false)
	controls.SetBorder(true).SetTitle("Controls")

	details := tview.NewTextView()
	details.SetBorder(true).SetTitle("Attributes")

	secondColumn := tview.NewFlex().SetDirection(tview.FlexRow)
	secondColumn.AddItem(details, 0, 1, false)

	logText := tview.NewTextView()
	logText.SetMaxLines(10).SetBorder(true).SetTitle("Log")
	log.SetOutput(logText)

	populate := func() {
		controls.Clear()

		ctControls := ct.GetSupportedControls()
		for _, desc := range ctControls {
			controls.AddItem(controlName(desc), "", 0, func() {
				details.SetText(cameraTerminalAttributes(ct, desc))
			})
		}

		puControls := pu.GetSupportedControls()
		for _, desc := range puControls {
			controls.AddItem(controlName(desc), "", 0, func() {
				details.SetText(processingUnitAttributes(pu, desc))
			})
		}

		controls.AddItem("Power Mode", "", 0, func() {
			details.SetText(powerModeText(vc))
		})

		controls.AddItem("Request Error Code", "", 0, func() {
			details.SetText(requestErrorCodeText(vc))
		})

		controls.AddItem("Toggle Auto Focus", "", 0, func() {
			on, err := ct.GetAutoFocus()
			if err != nil {
				log.Printf("failed to get auto focus: %v", err)
				return
			}
			if err := ct.SetAutoFocus(!on); err != nil {
				log.Printf("failed to set auto focus: %v", err)
				return
			}
			log.Printf("auto focus set to %v", !on)
		})

		controls.AddItem("Zoom Absolute", "", 0, func() {
			controlRequestInput := tview.NewInputField()

			controlRequestInput.SetLabel("Enter zoom value (>= 100): ").
				SetFieldWidth(10).
				SetAcceptanceFunc(tview.InputFieldInteger).
				SetDoneFunc(func(key tcell.Key) {
					zoom, err := strconv.ParseUint(controlRequestInput.GetText(), 10, 16)
					if err != nil {
						log.Printf("failed parsing value %s", err)
						return
					}
					setControl := &descriptors.ZoomAbsoluteControl{ObjectiveFocalLength: uint16(zoom)}
					if err := ct.Set(setControl); err != nil {
						log.Printf("control request failed %s", err)
					}
					secondColumn.RemoveItem(controlRequestInput)
					app.SetFocus(controls)
				})
			secondColumn.AddItem(controlRequestInput, 0, 1, false)
			app.SetFocus(controlRequestInput)
		})

		log.Printf("camera terminal %d: %d controls, processing unit %d: %d controls",
			*ctID, len(ctControls), *puID, len(puControls))
	}
	populate()

	controls.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			app.Stop()
			return nil
		}
		if event.Rune() == 'r' {
			populate()
			return nil
		}
		return event
	})

	flex := tview.NewFlex().
		AddItem(controls, 0, 1, true).
		AddItem(secondColumn, 0, 2, false)

	if err := app.SetRoot(tview.NewFlex().SetDirection(tview.FlexRow).AddItem(flex, 0, 1, true).AddItem(logText, 10, 0, false), true).Run(); err != nil {
		panic(err)
	}
}

func controlName(desc any) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", desc), "*descriptors.")
}

func cameraTerminalAttributes(ct *uvcctl.CameraTerminal, desc descriptors.CameraTerminalControlDescriptor) string {
	var b strings.Builder
	for _, attr := range attributes {
		if err := ct.GetRequest(desc, attr.code); err != nil {
			fmt.Fprintf(&b, "%s: unsupported (%v)\n", attr.name, err)
			continue
		}
		fmt.Fprintf(&b, "%s: %+v\n", attr.name, desc)
	}
	if info, err := ct.Info(desc); err == nil {
		fmt.Fprintf(&b, "Info: %08b\n", uint8(info))
	}
	return b.String()
}

func processingUnitAttributes(pu *uvcctl.ProcessingUnit, desc descriptors.ProcessingUnitControlDescriptor) string {
	var b strings.Builder
	for _, attr := range attributes {
		if err := pu.GetRequest(desc, attr.code); err != nil {
			fmt.Fprintf(&b, "%s: unsupported (%v)\n", attr.name, err)
			continue
		}
		fmt.Fprintf(&b, "%s: %+v\n", attr.name, desc)
	}
	if info, err := pu.Info(desc); err == nil {
		fmt.Fprintf(&b, "Info: %08b\n", uint8(info))
	}
	return b.String()
}

func powerModeText(vc *transfers.VideoControl) string {
	var b strings.Builder
	mode, err := vc.PowerMode(requests.RequestCodeGetCur)
	if err != nil {
		fmt.Fprintf(&b, "Power mode: unsupported (%v)\n", err)
		return b.String()
	}
	fmt.Fprintf(&b, "Power mode: %v\n", mode)
	if info, err := vc.Info(0, uint8(transfers.InterfaceControlSelectorVideoPowerModeControl)); err == nil {
		fmt.Fprintf(&b, "Info: %08b\n", uint8(info))
	}
	return b.String()
}

func requestErrorCodeText(vc *transfers.VideoControl) string {
	code, err := vc.RequestErrorCode(requests.RequestCodeGetCur)
	if err != nil {
		return fmt.Sprintf("Request error code: unsupported (%v)\n", err)
	}
	return fmt.Sprintf("Request error code: %v\n", code)
}
