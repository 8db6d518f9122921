package deep

import (
	fractal "github.com/jo56/fractal-madness"
	"github.com/jo56/fractal-madness/dd"
)

const (
	// GlitchTolerance is the ratio |epsilon|²/|Z_ref|² beyond which the
	// perturbation no longer tracks the true orbit.
	GlitchTolerance = 1e-6

	// glitchMagnitude is the out-of-range magnitude sentinel reported for
	// glitched pixels.
	glitchMagnitude = 1e12
)

// RenderPixel evaluates one pixel by iterating the deviation from the
// reference orbit. delta is the pixel offset from the reference anchor and
// must be supplied at double-double precision; collapsing it to a native
// float is precisely what breaks deep zoom.
//
// A glitched pixel is reported as escaped with a sentinel magnitude; there
// is no re-basing to a secondary reference.
func RenderPixel(delta dd.Complex, orbit *Orbit, sa *Approximation, maxIter uint32, escapeRadiusSq float64, perPixelC bool) fractal.PixelResult {
	if maxIter == 0 || orbit.Len() == 0 {
		return fractal.PixelResult{Escaped: true}
	}

	deltaC := delta.Complex128()
	eps := deltaC
	n := 0
	if sa != nil && sa.Skip > 0 && int(sa.Skip) < orbit.Len() {
		n = int(sa.Skip)
		eps = sa.Evaluate(n, deltaC)
	}

	var magSq float64
	for ; n < int(maxIter) && n < orbit.Len(); n++ {
		zRef := orbit.At(n)
		z := zRef + eps

		epsMagSq := real(eps)*real(eps) + imag(eps)*imag(eps)
		refMagSq := real(zRef)*real(zRef) + imag(zRef)*imag(zRef)
		if refMagSq > 0 && epsMagSq > refMagSq*GlitchTolerance {
			return fractal.PixelResult{
				Iterations:  float32(n),
				MagnitudeSq: glitchMagnitude,
				Escaped:     true,
				Glitched:    true,
			}
		}

		magSq = real(z)*real(z) + imag(z)*imag(z)
		if magSq > escapeRadiusSq {
			// The native engine attributes escape to the step that produced
			// the iterate; z here is iterate n, so it escaped at step n-1.
			it := n - 1
			if it < 0 {
				it = 0
			}
			return fractal.PixelResult{
				Iterations:  float32(it),
				MagnitudeSq: float32(magSq),
				Escaped:     true,
			}
		}

		eps = 2*zRef*eps + eps*eps
		if perPixelC {
			eps += deltaC
		}
	}

	if n < int(maxIter) {
		if orbit.EscapedAt >= 0 {
			// Reference escaped before max_iter; beyond the truncated orbit
			// the pixel is treated as escaped alongside it (best-effort, see
			// the orchestrator's re-anchoring policy).
			return fractal.PixelResult{
				Iterations:  float32(n),
				MagnitudeSq: float32(magSq),
				Escaped:     true,
			}
		}
		// Orbit hit the length cap without escaping; the pixel tracked it
		// to the end and stays bounded.
		return fractal.PixelResult{
			Iterations:  float32(n),
			MagnitudeSq: float32(magSq),
		}
	}

	return fractal.PixelResult{
		Iterations:  float32(maxIter),
		MagnitudeSq: float32(magSq),
	}
}
