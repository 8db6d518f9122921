package deep

import (
	"encoding/binary"
	"math"
)

// SATolerance bounds the estimated series-approximation error below which an
// iteration may be skipped.
const SATolerance = 1e-6

// Coefficients approximate the perturbation at one iteration:
// epsilon_n ≈ A·delta + B·delta² + C·delta³.
type Coefficients struct {
	ARe, AIm float32
	BRe, BIm float32
	CRe, CIm float32
}

// CoeffSize is the encoded size of one coefficient record (with padding).
const CoeffSize = 32

// Approximation is the per-iteration coefficient table plus the number of
// iterations every pixel may skip. Immutable once computed.
type Approximation struct {
	Coeffs   []Coefficients
	Skip     uint32
	MaxDelta float64
}

// ComputeApproximation derives coefficients along the reference orbit for
// the quadratic recurrence. perPixelC marks maps whose c varies per pixel
// (the delta feeds back into the linear term); julia-mode maps hold c fixed
// and the delta only seeds epsilon.
//
// Skip advances while the estimated truncation error |B|δ² + |C|δ³ stays
// under tol for the worst-case delta.
func ComputeApproximation(orbit *Orbit, maxDelta, tol float64, perPixelC bool) *Approximation {
	n := orbit.Len()
	sa := &Approximation{
		Coeffs:   make([]Coefficients, 0, n),
		MaxDelta: maxDelta,
	}

	// epsilon_0 = delta: A=1, B=0, C=0.
	a := complex(1, 0)
	var b, c complex128
	maxDeltaSq := maxDelta * maxDelta

	for i := 0; i < n; i++ {
		sa.Coeffs = append(sa.Coeffs, Coefficients{
			ARe: float32(real(a)), AIm: float32(imag(a)),
			BRe: float32(real(b)), BIm: float32(imag(b)),
			CRe: float32(real(c)), CIm: float32(imag(c)),
		})

		errEstimate := cmplxAbs(b)*maxDeltaSq + cmplxAbs(c)*maxDeltaSq*maxDelta
		if errEstimate < tol {
			sa.Skip = uint32(i)
		}

		z := orbit.At(i)
		twoZ := 2 * z
		na := twoZ * a
		if perPixelC {
			na += 1
		}
		nb := twoZ*b + a*a
		nc := twoZ*c + 2*a*b
		a, b, c = na, nb, nc
	}

	if n > 0 && sa.Skip >= uint32(n) {
		sa.Skip = uint32(n - 1)
	}
	return sa
}

func cmplxAbs(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}

// Len is the number of coefficient records.
func (sa *Approximation) Len() int { return len(sa.Coeffs) }

// Evaluate computes the skipped-ahead epsilon at iteration idx for a pixel
// delta.
func (sa *Approximation) Evaluate(idx int, delta complex128) complex128 {
	co := sa.Coeffs[idx]
	a := complex(float64(co.ARe), float64(co.AIm))
	b := complex(float64(co.BRe), float64(co.BIm))
	c := complex(float64(co.CRe), float64(co.CIm))
	d2 := delta * delta
	return a*delta + b*d2 + c*d2*delta
}

// Bytes encodes the table as consecutive 32-byte records (six coefficients
// plus two words of padding each).
func (sa *Approximation) Bytes() []byte {
	b := make([]byte, len(sa.Coeffs)*CoeffSize)
	le := binary.LittleEndian
	for i, co := range sa.Coeffs {
		off := i * CoeffSize
		le.PutUint32(b[off+0:], math.Float32bits(co.ARe))
		le.PutUint32(b[off+4:], math.Float32bits(co.AIm))
		le.PutUint32(b[off+8:], math.Float32bits(co.BRe))
		le.PutUint32(b[off+12:], math.Float32bits(co.BIm))
		le.PutUint32(b[off+16:], math.Float32bits(co.CRe))
		le.PutUint32(b[off+20:], math.Float32bits(co.CIm))
	}
	return b
}
