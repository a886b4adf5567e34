package transfers

// VideoControl interface control selectors as defined in UVC spec 1.5, A.9.1.
type InterfaceControlSelector int

const (
	InterfaceControlSelectorUndefined               InterfaceControlSelector = 0x00
	InterfaceControlSelectorVideoPowerModeControl   InterfaceControlSelector = 0x01
	InterfaceControlSelectorRequestErrorCodeControl InterfaceControlSelector = 0x02
)

// VideoStreaming interface control selectors as defined in UVC spec 1.5, A.9.7.
type StreamInterfaceControlSelector int

const (
	StreamInterfaceControlSelectorUndefined                 StreamInterfaceControlSelector = 0x00
	StreamInterfaceControlSelectorProbeControl              StreamInterfaceControlSelector = 0x01
	StreamInterfaceControlSelectorCommitControl             StreamInterfaceControlSelector = 0x02
	StreamInterfaceControlSelectorStillProbeControl         StreamInterfaceControlSelector = 0x03
	StreamInterfaceControlSelectorStillCommitControl        StreamInterfaceControlSelector = 0x04
	StreamInterfaceControlSelectorStillImageTriggerControl  StreamInterfaceControlSelector = 0x05
	StreamInterfaceControlSelectorStreamErrorCodeControl    StreamInterfaceControlSelector = 0x06
	StreamInterfaceControlSelectorGenerateKeyFrameControl   StreamInterfaceControlSelector = 0x07
	StreamInterfaceControlSelectorUpdateFrameSegmentControl StreamInterfaceControlSelector = 0x08
	StreamInterfaceControlSelectorSynchDelayControl         StreamInterfaceControlSelector = 0x09
)

// ControlInfo is the capability bitmap a control reports through GET_INFO,
// as defined in UVC spec 1.5, 4.1.2.
type ControlInfo uint8

const (
	ControlInfoSupportsGet                  ControlInfo = 1 << 0
	ControlInfoSupportsSet                  ControlInfo = 1 << 1
	ControlInfoDisabledByAutomaticMode      ControlInfo = 1 << 2
	ControlInfoAutoupdateControl            ControlInfo = 1 << 3
	ControlInfoAsynchronousControl          ControlInfo = 1 << 4
	ControlInfoDisabledByIncompatibleCommit ControlInfo = 1 << 5
)
