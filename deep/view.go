package deep

import (
	"encoding/binary"
	"fmt"
	"math"

	fractal "github.com/jo56/fractal-madness"
)

// View is the deep-zoom view state. Zoom is tracked as log10 so wheel steps
// stay uniform at any depth; the center stays at full float64 precision
// instead of the lossy f32 pair of the standard uniform.
type View struct {
	CenterRe, CenterIm float64
	Log10Zoom          float64
	MaxIter            uint32
	EscapeRadiusSq     float64

	// Dirty marks the reference orbit and SA table for full recomputation
	// before the next dispatch.
	Dirty bool
}

// NewView centers the deep view at the given coordinates.
func NewView(re, im float64) *View {
	return &View{
		CenterRe:       re,
		CenterIm:       im,
		MaxIter:        1000,
		EscapeRadiusSq: 16,
		Dirty:          true,
	}
}

// ZoomFactor is 10^Log10Zoom.
func (v *View) ZoomFactor() float64 {
	return math.Pow(10, v.Log10Zoom)
}

// ZoomBy applies a wheel step (typically ±0.1).
func (v *View) ZoomBy(delta float64) {
	v.Log10Zoom = math.Max(v.Log10Zoom+delta*0.5, 0)
	v.Dirty = true
}

// Pan moves the center by a pixel delta, opposite to the drag direction.
func (v *View) Pan(dx, dy, width, height float64) {
	zoom := v.ZoomFactor()
	aspect := width / height
	scale := 2.0 / zoom
	v.CenterRe -= (dx / width) * scale * aspect * 2
	v.CenterIm -= (dy / height) * scale * 2
	v.Dirty = true
}

// Reset returns to the overview.
func (v *View) Reset() {
	v.CenterRe, v.CenterIm = -0.5, 0
	v.Log10Zoom = 0
	v.Dirty = true
}

// SyncFromStandard adopts the standard view when crossing into deep mode.
func (v *View) SyncFromStandard(p fractal.ViewParams) {
	v.CenterRe = real(p.Center)
	v.CenterIm = imag(p.Center)
	if p.Zoom > 0 {
		v.Log10Zoom = math.Log10(p.Zoom)
	}
	v.MaxIter = p.MaxIter
	er := float64(p.EscapeRadius)
	v.EscapeRadiusSq = er * er
	v.Dirty = true
}

// ToStandard exports the (precision-lossy) standard view values.
func (v *View) ToStandard(p *fractal.ViewParams) {
	p.Center = complex(v.CenterRe, v.CenterIm)
	p.Zoom = v.ZoomFactor()
	p.MaxIter = v.MaxIter
}

// ViewMessageSize is the encoded size of the extended-precision view message.
const ViewMessageSize = 40

// EncodeMessage packs the view into its wire message. The uniform buffer
// narrows the center to f32 pairs, which cannot represent a pan at deep
// zoom; this message carries the center and log-zoom at full float64.
func (v *View) EncodeMessage() []byte {
	b := make([]byte, ViewMessageSize)
	le := binary.LittleEndian
	le.PutUint32(b[0:], fractal.DeepViewMagic)
	le.PutUint32(b[4:], v.MaxIter)
	le.PutUint64(b[8:], math.Float64bits(v.CenterRe))
	le.PutUint64(b[16:], math.Float64bits(v.CenterIm))
	le.PutUint64(b[24:], math.Float64bits(v.Log10Zoom))
	le.PutUint64(b[32:], math.Float64bits(v.EscapeRadiusSq))
	return b
}

// DecodeViewMessage parses an extended-precision view message.
func DecodeViewMessage(b []byte) (View, error) {
	le := binary.LittleEndian
	if len(b) != ViewMessageSize || le.Uint32(b) != fractal.DeepViewMagic {
		return View{}, fmt.Errorf("not a deep view message")
	}
	v := View{
		MaxIter:        le.Uint32(b[4:]),
		CenterRe:       math.Float64frombits(le.Uint64(b[8:])),
		CenterIm:       math.Float64frombits(le.Uint64(b[16:])),
		Log10Zoom:      math.Float64frombits(le.Uint64(b[24:])),
		EscapeRadiusSq: math.Float64frombits(le.Uint64(b[32:])),
		Dirty:          true,
	}
	if v.Log10Zoom < 0 || math.IsNaN(v.Log10Zoom) {
		v.Log10Zoom = 0
	}
	if v.EscapeRadiusSq <= 0 || math.IsNaN(v.EscapeRadiusSq) {
		v.EscapeRadiusSq = 16
	}
	return v, nil
}
