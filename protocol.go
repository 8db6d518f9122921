package fractal

import (
	"encoding/binary"
	"fmt"
)

// Wire protocol between the render server and its display clients. The
// client sends 64-byte parameter buffers (EncodeUniform) and, past the
// deep-zoom switchover, extended-precision view messages (see the deep
// package); the server answers with frame and warning messages. Server
// messages are distinguished by a leading magic word.

const (
	FrameMagic    uint32 = 0x46524d31 // "FRM1"
	WarningMagic  uint32 = 0x57524e31 // "WRN1"
	DeepViewMagic uint32 = 0x44505631 // "DPV1"

	FrameHeaderSize = 16
)

// FrameHeader describes one rendered RGBA frame.
type FrameHeader struct {
	Width   uint32
	Height  uint32
	Preview bool // low-resolution preview pass, a full frame follows
}

// EncodeFrame prepends the frame header to the RGBA pixel payload.
func EncodeFrame(h FrameHeader, pix []byte) []byte {
	b := make([]byte, FrameHeaderSize+len(pix))
	le := binary.LittleEndian
	le.PutUint32(b[0:], FrameMagic)
	le.PutUint32(b[4:], h.Width)
	le.PutUint32(b[8:], h.Height)
	if h.Preview {
		le.PutUint32(b[12:], 1)
	}
	copy(b[FrameHeaderSize:], pix)
	return b
}

// DecodeFrame splits a frame message into its header and pixel payload.
func DecodeFrame(b []byte) (FrameHeader, []byte, error) {
	le := binary.LittleEndian
	if len(b) < FrameHeaderSize || le.Uint32(b) != FrameMagic {
		return FrameHeader{}, nil, fmt.Errorf("not a frame message")
	}
	h := FrameHeader{
		Width:   le.Uint32(b[4:]),
		Height:  le.Uint32(b[8:]),
		Preview: le.Uint32(b[12:]) != 0,
	}
	want := int(h.Width) * int(h.Height) * 4
	pix := b[FrameHeaderSize:]
	if len(pix) != want {
		return FrameHeader{}, nil, fmt.Errorf("frame payload: got %d bytes, want %d", len(pix), want)
	}
	return h, pix, nil
}

// Warning carries the per-frame iteration warning state for the UI.
type Warning struct {
	Threshold uint32
	Active    bool
}

// EncodeWarning packs a warning message (16 bytes).
func EncodeWarning(w Warning) []byte {
	b := make([]byte, 16)
	le := binary.LittleEndian
	le.PutUint32(b[0:], WarningMagic)
	if w.Active {
		le.PutUint32(b[4:], 1)
	}
	le.PutUint32(b[8:], w.Threshold)
	return b
}

// DecodeWarning parses a warning message.
func DecodeWarning(b []byte) (Warning, error) {
	le := binary.LittleEndian
	if len(b) < 16 || le.Uint32(b) != WarningMagic {
		return Warning{}, fmt.Errorf("not a warning message")
	}
	return Warning{
		Active:    le.Uint32(b[4:]) != 0,
		Threshold: le.Uint32(b[8:]),
	}, nil
}

// MessageMagic returns the leading magic word of a server message, or zero
// for short buffers.
func MessageMagic(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}
