package descriptors

import (
	"encoding/binary"
	"fmt"
)

// OMXAllPorts addresses every port of a component (OMX_ALL).
const OMXAllPorts uint32 = 0xFFFFFFFF

// ScaleFactorConfigSize is sizeof(OMX_CONFIG_SCALEFACTORTYPE).
const ScaleFactorConfigSize = 20

// OMXVersion is the OMX_VERSIONTYPE header field.
type OMXVersion struct {
	Major    uint8
	Minor    uint8
	Revision uint8
	Step     uint8
}

// DefaultOMXVersion is the IL version the camera component speaks, 1.1.2.0.
var DefaultOMXVersion = OMXVersion{Major: 1, Minor: 1, Revision: 2}

// ScaleFactorConfig is OMX_CONFIG_SCALEFACTORTYPE, the payload of
// OMX_IndexConfigCommonDigitalZoom. Width and Height are 16.16 fixed point.
type ScaleFactorConfig struct {
	Size      uint32
	Version   OMXVersion
	PortIndex uint32
	Width     int32
	Height    int32
}

// NewScaleFactorConfig returns an initialized config targeting all ports.
func NewScaleFactorConfig(width, height int32) *ScaleFactorConfig {
	return &ScaleFactorConfig{
		Size:      ScaleFactorConfigSize,
		Version:   DefaultOMXVersion,
		PortIndex: OMXAllPorts,
		Width:     width,
		Height:    height,
	}
}

func (sfc *ScaleFactorConfig) MarshalInto(buf []byte) error {
	if len(buf) < ScaleFactorConfigSize {
		return fmt.Errorf("scale factor config: %w", ErrShortBuffer)
	}
	binary.LittleEndian.PutUint32(buf[0:4], sfc.Size)
	buf[4] = sfc.Version.Major
	buf[5] = sfc.Version.Minor
	buf[6] = sfc.Version.Revision
	buf[7] = sfc.Version.Step
	binary.LittleEndian.PutUint32(buf[8:12], sfc.PortIndex)
	binary.LittleEndian.PutUint32(buf[12:16], uint32(sfc.Width))
	binary.LittleEndian.PutUint32(buf[16:20], uint32(sfc.Height))
	return nil
}

func (sfc *ScaleFactorConfig) MarshalBinary() ([]byte, error) {
	buf := make([]byte, ScaleFactorConfigSize)
	return buf, sfc.MarshalInto(buf)
}

func (sfc *ScaleFactorConfig) UnmarshalBinary(buf []byte) error {
	if len(buf) < ScaleFactorConfigSize {
		return fmt.Errorf("scale factor config: %w", ErrShortBuffer)
	}
	sfc.Size = binary.LittleEndian.Uint32(buf[0:4])
	if sfc.Size != ScaleFactorConfigSize {
		return fmt.Errorf("scale factor config: nSize %d, want %d", sfc.Size, ScaleFactorConfigSize)
	}
	sfc.Version = OMXVersion{Major: buf[4], Minor: buf[5], Revision: buf[6], Step: buf[7]}
	sfc.PortIndex = binary.LittleEndian.Uint32(buf[8:12])
	sfc.Width = int32(binary.LittleEndian.Uint32(buf[12:16]))
	sfc.Height = int32(binary.LittleEndian.Uint32(buf[16:20]))
	return nil
}
