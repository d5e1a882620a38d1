package descriptors

import "errors"

var ErrShortBuffer = errors.New("buffer too short")

type CameraTerminalControlSelector int

const (
	CameraTerminalControlSelectorUndefined           CameraTerminalControlSelector = 0x00
	CameraTerminalControlSelectorZoomAbsoluteControl CameraTerminalControlSelector = 0x0B
)

type ProcessingUnitControlSelector int

const (
	ProcessingUnitControlSelectorUndefined      ProcessingUnitControlSelector = 0x00
	ProcessingUnitDigitalMultiplierControl      ProcessingUnitControlSelector = 0x0E
	ProcessingUnitDigitalMultiplierLimitControl ProcessingUnitControlSelector = 0x0F
)
