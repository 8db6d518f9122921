package fractal

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Flag bits, matching bit positions in the uniform buffer.
const (
	FlagSmooth uint32 = 1 << iota
	FlagInvert
	FlagOffset
)

// Flags is the set of color-pipeline modifier bits.
type Flags uint32

func (f Flags) Smooth() bool { return uint32(f)&FlagSmooth != 0 }
func (f Flags) Invert() bool { return uint32(f)&FlagInvert != 0 }
func (f Flags) Offset() bool { return uint32(f)&FlagOffset != 0 }

func (f *Flags) Set(bit uint32, on bool) {
	if on {
		*f |= Flags(bit)
	} else {
		*f &^= Flags(bit)
	}
}

// ViewParams describes one frame of rendering. The UI mutates it between
// frames; during a frame it is treated as immutable.
type ViewParams struct {
	Center       complex128
	Zoom         float64
	MaxIter      uint32
	Power        float32
	EscapeRadius float32
	Type         Type
	Scheme       Scheme
	JuliaC       complex64
	Flags        Flags

	// Resolution and panel offsets are carried through to the uniform
	// buffer for the display collaborator; the engine itself renders at
	// whatever pixel size it is asked to.
	Width, Height float32
	UIOffset      float32
	UIOffsetY     float32
}

// DefaultParams is the overview of the classic Mandelbrot set.
func DefaultParams() ViewParams {
	return ViewParams{
		Center:       complex(-0.5, 0),
		Zoom:         1.0,
		MaxIter:      256,
		Power:        2.0,
		EscapeRadius: 4.0,
		Type:         Mandelbrot,
		Scheme:       Classic,
		JuliaC:       complex(-0.7, 0.27015),
		Flags:        Flags(FlagSmooth),
		Width:        1280,
		Height:       800,
	}
}

// Pan moves the view center by a pixel delta, opposite to the drag direction.
func (p *ViewParams) Pan(dx, dy, width, height float64) {
	scale := 2.0 / p.Zoom
	aspect := width / height
	p.Center -= complex((dx/width)*scale*aspect*2, (dy/height)*scale*2)
}

// ZoomBy applies a multiplicative zoom step (delta is typically ±0.1 per
// wheel notch). The standard engine loses precision past ~1e10; deeper zoom
// levels are carried by the deep-zoom view state instead.
func (p *ViewParams) ZoomBy(delta float64) {
	p.Zoom *= math.Max(1+delta, 0.1)
	p.Zoom = math.Min(math.Max(p.Zoom, 1e-10), 1e15)
}

// Reset restores the per-type default view, keeping type, scheme and flags.
func (p *ViewParams) Reset() {
	t, scheme, flags := p.Type, p.Scheme, p.Flags
	w, h := p.Width, p.Height
	*p = DefaultParams()
	p.Type, p.Scheme, p.Flags = t, scheme, flags
	p.Width, p.Height = w, h
	p.Center = t.DefaultCenter()
}

// IterationWarning evaluates the per-type threshold table against MaxIter.
// The returned threshold is valid only when a table entry exists.
func (p ViewParams) IterationWarning() (threshold uint32, warn bool) {
	th, ok := WarnThreshold(p.Type)
	return th, ok && p.MaxIter > th
}

// UniformSize is the byte size of the encoded parameter buffer.
const UniformSize = 64

// EncodeUniform packs the parameters into the fixed 64-byte little-endian
// layout consumed by the per-pixel engines. Center is narrowed to f32 pairs;
// deep zoom carries its own extended-precision coordinates.
func (p ViewParams) EncodeUniform() [UniformSize]byte {
	var b [UniformSize]byte
	le := binary.LittleEndian
	le.PutUint32(b[0:], math.Float32bits(float32(real(p.Center))))
	le.PutUint32(b[4:], math.Float32bits(float32(imag(p.Center))))
	le.PutUint32(b[8:], math.Float32bits(float32(p.Zoom)))
	le.PutUint32(b[12:], p.MaxIter)
	le.PutUint32(b[16:], math.Float32bits(p.Power))
	le.PutUint32(b[20:], math.Float32bits(p.EscapeRadius))
	le.PutUint32(b[24:], uint32(p.Type))
	le.PutUint32(b[28:], uint32(p.Scheme))
	le.PutUint32(b[32:], math.Float32bits(real(p.JuliaC)))
	le.PutUint32(b[36:], math.Float32bits(imag(p.JuliaC)))
	le.PutUint32(b[40:], uint32(p.Flags))
	// b[44:48] padding
	le.PutUint32(b[48:], math.Float32bits(p.Width))
	le.PutUint32(b[52:], math.Float32bits(p.Height))
	le.PutUint32(b[56:], math.Float32bits(p.UIOffset))
	le.PutUint32(b[60:], math.Float32bits(p.UIOffsetY))
	return b
}

// DecodeUniform parses a 64-byte parameter buffer.
func DecodeUniform(b []byte) (ViewParams, error) {
	if len(b) != UniformSize {
		return ViewParams{}, fmt.Errorf("uniform buffer: got %d bytes, want %d", len(b), UniformSize)
	}
	le := binary.LittleEndian
	f32 := func(off int) float32 { return math.Float32frombits(le.Uint32(b[off:])) }
	p := ViewParams{
		Center:       complex(float64(f32(0)), float64(f32(4))),
		Zoom:         float64(f32(8)),
		MaxIter:      le.Uint32(b[12:]),
		Power:        f32(16),
		EscapeRadius: f32(20),
		Type:         Type(le.Uint32(b[24:])),
		Scheme:       Scheme(le.Uint32(b[28:])),
		JuliaC:       complex(f32(32), f32(36)),
		Flags:        Flags(le.Uint32(b[40:])),
		Width:        f32(48),
		Height:       f32(52),
		UIOffset:     f32(56),
		UIOffsetY:    f32(60),
	}
	if !p.Type.Valid() {
		p.Type = Mandelbrot
	}
	if p.Scheme >= NumSchemes {
		p.Scheme = Classic
	}
	if p.Power < 2 {
		p.Power = 2
	}
	if p.EscapeRadius <= 0 {
		p.EscapeRadius = 4
	}
	return p, nil
}
