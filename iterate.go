package fractal

// PixelResult is the escape data for one pixel, shared by the standard and
// perturbation engines and consumed by the color pipeline.
type PixelResult struct {
	Iterations  float32
	MagnitudeSq float32
	Escaped     bool
	Glitched    bool
}

// Iterate runs the standard engine for the pixel at complex coordinate
// coord. For Julia-mode types coord seeds z and c is fixed at JuliaC; for
// the others z starts at zero and coord is c.
//
// MaxIter of zero degrades to an immediate escape at iteration zero.
func Iterate(coord complex128, p ViewParams) PixelResult {
	step := Step(p.Type)
	power := float64(p.Power)
	er2 := float64(p.EscapeRadius) * float64(p.EscapeRadius)

	var z, c complex128
	if p.Type.IsJuliaMode() {
		z = coord
		c = complex(float64(real(p.JuliaC)), float64(imag(p.JuliaC)))
	} else {
		c = coord
	}

	for i := uint32(0); i < p.MaxIter; i++ {
		z = step(z, c, power)
		magSq := real(z)*real(z) + imag(z)*imag(z)
		if magSq > er2 {
			return PixelResult{
				Iterations:  float32(i),
				MagnitudeSq: float32(magSq),
				Escaped:     true,
			}
		}
	}
	magSq := real(z)*real(z) + imag(z)*imag(z)
	if p.MaxIter == 0 {
		return PixelResult{Escaped: true, MagnitudeSq: float32(magSq)}
	}
	return PixelResult{
		Iterations:  float32(p.MaxIter),
		MagnitudeSq: float32(magSq),
	}
}
