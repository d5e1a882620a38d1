// Package uvcapply programs digital zoom on a USB Video Class camera. It
// implements zoom.ConfigApplier by mapping the requested 16.16 scale factor
// onto the camera's Zoom Absolute or Digital Multiplier control range.
package uvcapply

import (
	"errors"
	"fmt"
	"os"
	"time"

	usb "github.com/kevmo314/go-usb"
	"github.com/kevmo314/go-zoom/pkg/descriptors"
	"github.com/kevmo314/go-zoom/pkg/steps"
)

// Kind selects the UVC control used for zooming.
type Kind int

const (
	KindZoomAbsolute Kind = iota
	KindDigitalMultiplier
)

func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "zoom-absolute":
		return KindZoomAbsolute, nil
	case "digital-multiplier":
		return KindDigitalMultiplier, nil
	}
	return 0, fmt.Errorf("unknown zoom control %q", s)
}

func (k Kind) newControl() descriptors.ZoomControl {
	if k == KindDigitalMultiplier {
		return &descriptors.DigitalMultiplierControl{}
	}
	return &descriptors.ZoomAbsoluteControl{}
}

// ControlTransferer issues USB control transfers. *usb.DeviceHandle
// implements it.
type ControlTransferer interface {
	ControlTransfer(requestType, request uint8, value, index uint16, data []byte, timeout time.Duration) (int, error)
}

type Config struct {
	// Interface is the video control interface number.
	Interface uint8
	// UnitID is the camera terminal id for KindZoomAbsolute or the
	// processing unit id for KindDigitalMultiplier.
	UnitID uint8
	Kind   Kind
	// MaxScale is mapped onto the control's maximum. Defaults to the
	// largest entry of the default step table.
	MaxScale steps.Fixed
	Timeout  time.Duration
}

type Applier struct {
	handle   ControlTransferer
	closer   func() error
	cfg      Config
	min, max uint16
}

// Open wraps the usb device node at path, typically /dev/bus/usb/BBB/DDD.
func Open(path string, cfg Config) (*Applier, error) {
	fd, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	handle, err := usb.WrapSysDevice(int(fd.Fd()))
	if err != nil {
		fd.Close()
		return nil, fmt.Errorf("failed to wrap usb device: %w", err)
	}
	a, err := New(handle, cfg)
	if err != nil {
		handle.Close()
		fd.Close()
		return nil, err
	}
	a.closer = func() error {
		return errors.Join(handle.Close(), fd.Close())
	}
	return a, nil
}

// New queries the control range from the device.
func New(handle ControlTransferer, cfg Config) (*Applier, error) {
	if cfg.MaxScale == 0 {
		cfg.MaxScale = steps.Default().Max()
	}
	if cfg.MaxScale <= steps.One {
		return nil, fmt.Errorf("max scale %s must exceed 1.0x", cfg.MaxScale)
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = time.Second
	}
	a := &Applier{handle: handle, cfg: cfg}

	var err error
	if a.min, err = a.get(RequestCodeGetMin); err != nil {
		return nil, fmt.Errorf("GET_MIN failed: %w", err)
	}
	if a.max, err = a.get(RequestCodeGetMax); err != nil {
		return nil, fmt.Errorf("GET_MAX failed: %w", err)
	}
	if a.max < a.min {
		return nil, fmt.Errorf("invalid control range [%d, %d]", a.min, a.max)
	}
	if cfg.Kind == KindDigitalMultiplier {
		// the multiplier cannot go past the limit currently set on the unit
		limit := &descriptors.DigitalMultiplierLimitControl{}
		if err := a.getControl(limit, RequestCodeGetCur); err != nil {
			return nil, fmt.Errorf("GET_CUR digital multiplier limit failed: %w", err)
		}
		if v := limit.ZoomValue(); v > a.min && v < a.max {
			a.max = v
		}
	}
	return a, nil
}

// Range returns the device's minimum and maximum control values.
func (a *Applier) Range() (uint16, uint16) {
	return a.min, a.max
}

// Value maps a scale factor onto the control range, clamping to [1.0x, MaxScale].
func (a *Applier) Value(scale steps.Fixed) uint16 {
	if scale < steps.One {
		scale = steps.One
	}
	if scale > a.cfg.MaxScale {
		scale = a.cfg.MaxScale
	}
	span := int64(a.max - a.min)
	offset := int64(scale-steps.One) * span / int64(a.cfg.MaxScale-steps.One)
	return a.min + uint16(offset)
}

// ApplyZoomScale sets the control from height. UVC cameras zoom uniformly,
// so width is only checked for agreement.
func (a *Applier) ApplyZoomScale(width, height steps.Fixed) error {
	if width != height {
		return fmt.Errorf("non-uniform scale %s x %s not supported", width, height)
	}
	control := a.cfg.Kind.newControl()
	control.SetZoomValue(a.Value(height))
	buf, err := control.MarshalBinary()
	if err != nil {
		return err
	}
	return a.controlTransfer(RequestTypeVideoInterfaceSetRequest, RequestCodeSetCur, control.Selector(), buf)
}

// Current reads the control's current value.
func (a *Applier) Current() (uint16, error) {
	return a.get(RequestCodeGetCur)
}

func (a *Applier) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer()
}

func (a *Applier) get(code RequestCode) (uint16, error) {
	control := a.cfg.Kind.newControl()
	if err := a.getControl(control, code); err != nil {
		return 0, err
	}
	return control.ZoomValue(), nil
}

func (a *Applier) getControl(control descriptors.ZoomControl, code RequestCode) error {
	buf := make([]byte, 2)
	if err := a.controlTransfer(RequestTypeVideoInterfaceGetRequest, code, control.Selector(), buf); err != nil {
		return err
	}
	return control.UnmarshalBinary(buf)
}

func (a *Applier) controlTransfer(requestType RequestType, code RequestCode, selector uint8, data []byte) error {
	// wValue: control selector in the high byte
	wValue := uint16(selector) << 8
	// wIndex: entity id in the high byte, interface in the low byte
	wIndex := uint16(a.cfg.UnitID)<<8 | uint16(a.cfg.Interface)

	n, err := a.handle.ControlTransfer(uint8(requestType), uint8(code), wValue, wIndex, data, a.cfg.Timeout)
	if err != nil {
		return fmt.Errorf("zoom control transfer failed: %w", err)
	}
	if n != len(data) {
		return fmt.Errorf("zoom control transfer: short transfer %d of %d bytes", n, len(data))
	}
	return nil
}
