package descriptors

import (
	"encoding"
	"encoding/binary"
	"fmt"
)

// ZoomControl is a UVC control request carrying a single 16-bit zoom value.
type ZoomControl interface {
	// Selector is the control selector placed in the high byte of wValue.
	Selector() uint8
	ZoomValue() uint16
	SetZoomValue(v uint16)
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}

// Control Request for Zoom (Absolute) as defined in UVC spec 1.5, 4.2.2.1.11
type ZoomAbsoluteControl struct {
	ObjectiveFocalLength uint16
}

func (zac *ZoomAbsoluteControl) Selector() uint8 {
	return uint8(CameraTerminalControlSelectorZoomAbsoluteControl)
}

func (zac *ZoomAbsoluteControl) ZoomValue() uint16 {
	return zac.ObjectiveFocalLength
}

func (zac *ZoomAbsoluteControl) SetZoomValue(v uint16) {
	zac.ObjectiveFocalLength = v
}

func (zac *ZoomAbsoluteControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, zac.ObjectiveFocalLength)
	return buf, nil
}

func (zac *ZoomAbsoluteControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 2 {
		return fmt.Errorf("zoom absolute: %w", ErrShortBuffer)
	}
	zac.ObjectiveFocalLength = binary.LittleEndian.Uint16(buf)
	return nil
}

// Control Request for Digital Multiplier as defined in UVC spec 1.5, 4.2.2.3.14
type DigitalMultiplierControl struct {
	MultiplierStep uint16
}

func (dmc *DigitalMultiplierControl) Selector() uint8 {
	return uint8(ProcessingUnitDigitalMultiplierControl)
}

func (dmc *DigitalMultiplierControl) ZoomValue() uint16 {
	return dmc.MultiplierStep
}

func (dmc *DigitalMultiplierControl) SetZoomValue(v uint16) {
	dmc.MultiplierStep = v
}

func (dmc *DigitalMultiplierControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, dmc.MultiplierStep)
	return buf, nil
}

func (dmc *DigitalMultiplierControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 2 {
		return fmt.Errorf("digital multiplier: %w", ErrShortBuffer)
	}
	dmc.MultiplierStep = binary.LittleEndian.Uint16(buf)
	return nil
}

// Control Request for Digital Multiplier Limit as defined in UVC spec 1.5, 4.2.2.3.15
type DigitalMultiplierLimitControl struct {
	MultiplierLimit uint16
}

func (dmlc *DigitalMultiplierLimitControl) Selector() uint8 {
	return uint8(ProcessingUnitDigitalMultiplierLimitControl)
}

func (dmlc *DigitalMultiplierLimitControl) ZoomValue() uint16 {
	return dmlc.MultiplierLimit
}

func (dmlc *DigitalMultiplierLimitControl) SetZoomValue(v uint16) {
	dmlc.MultiplierLimit = v
}

func (dmlc *DigitalMultiplierLimitControl) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, dmlc.MultiplierLimit)
	return buf, nil
}

func (dmlc *DigitalMultiplierLimitControl) UnmarshalBinary(buf []byte) error {
	if len(buf) < 2 {
		return fmt.Errorf("digital multiplier limit: %w", ErrShortBuffer)
	}
	dmlc.MultiplierLimit = binary.LittleEndian.Uint16(buf)
	return nil
}
