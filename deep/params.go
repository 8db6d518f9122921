package deep

import (
	"encoding/binary"
	"math"

	fractal "github.com/jo56/fractal-madness"
	"github.com/jo56/fractal-madness/dd"
)

// ZoomThreshold is the zoom factor past which native-precision pixel
// coordinates lose significant digits and the perturbation path takes over.
const ZoomThreshold = 1e10

// UseDeep selects the rendering path for a zoom factor.
func UseDeep(zoom float64) bool { return zoom > ZoomThreshold }

// Params is the deep-zoom uniform block handed to the per-pixel dispatch.
type Params struct {
	Width, Height  uint32
	MaxIter        uint32
	SASkip         uint32
	EscapeRadiusSq float32
	Scheme         fractal.Scheme
	Flags          fractal.Flags
	RefOrbitLen    uint32
	CornerDelta    dd.Complex
	PixelStep      dd.Complex
}

// ParamsSize is the encoded uniform size.
const ParamsSize = 64

// Bytes packs the uniform in its fixed little-endian layout.
func (p Params) Bytes() []byte {
	b := make([]byte, ParamsSize)
	le := binary.LittleEndian
	le.PutUint32(b[0:], p.Width)
	le.PutUint32(b[4:], p.Height)
	le.PutUint32(b[8:], p.MaxIter)
	le.PutUint32(b[12:], p.SASkip)
	le.PutUint32(b[16:], math.Float32bits(p.EscapeRadiusSq))
	le.PutUint32(b[20:], uint32(p.Scheme))
	le.PutUint32(b[24:], uint32(p.Flags))
	le.PutUint32(b[28:], p.RefOrbitLen)
	le.PutUint32(b[32:], math.Float32bits(p.CornerDelta.Re.Hi))
	le.PutUint32(b[36:], math.Float32bits(p.CornerDelta.Re.Lo))
	le.PutUint32(b[40:], math.Float32bits(p.CornerDelta.Im.Hi))
	le.PutUint32(b[44:], math.Float32bits(p.CornerDelta.Im.Lo))
	le.PutUint32(b[48:], math.Float32bits(p.PixelStep.Re.Hi))
	le.PutUint32(b[52:], math.Float32bits(p.PixelStep.Re.Lo))
	le.PutUint32(b[56:], math.Float32bits(p.PixelStep.Im.Hi))
	le.PutUint32(b[60:], math.Float32bits(p.PixelStep.Im.Lo))
	return b
}
