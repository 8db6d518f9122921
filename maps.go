package fractal

import "math"

// StepFunc advances one iterate of an escape-time map.
type StepFunc func(z, c complex128, power float64) complex128

// stepTable is the closed dispatch over the renderable maps. Julia-mode
// entries share the base map of their dual; only the role of the per-pixel
// coordinate differs (see Iterate).
var stepTable = [NumTypes]StepFunc{
	Mandelbrot:               stepMandelbrot,
	Julia:                    stepMandelbrot,
	BurningShip:              stepBurningShip,
	Tricorn:                  stepTricorn,
	Celtic:                   stepCeltic,
	BuffaloJulia:             stepBuffalo,
	CelticJulia:              stepCeltic,
	Buffalo:                  stepBuffalo,
	PerpendicularMandelbrot:  stepPerpendicularMandelbrot,
	PerpendicularBurningShip: stepPerpendicularBurningShip,
	Heart:                    stepHeart,
	TricornJulia:             stepTricorn,
	BurningShipJulia:         stepBurningShip,
}

// Step returns the map step function for t. Unknown types fall back to the
// Mandelbrot map.
func Step(t Type) StepFunc {
	if t.Valid() {
		return stepTable[t]
	}
	return stepMandelbrot
}

// cpow raises z to a real power. Power 2 takes the fast squaring path; other
// powers go through polar exponentiation.
func cpow(z complex128, power float64) complex128 {
	if power == 2 {
		return z * z
	}
	re, im := real(z), imag(z)
	magSq := re*re + im*im
	if magSq == 0 {
		return 0
	}
	r := math.Pow(magSq, power/2)
	theta := math.Atan2(im, re) * power
	s, c := math.Sincos(theta)
	return complex(r*c, r*s)
}

func stepMandelbrot(z, c complex128, power float64) complex128 {
	return cpow(z, power) + c
}

func stepBurningShip(z, c complex128, power float64) complex128 {
	return cpow(complex(math.Abs(real(z)), math.Abs(imag(z))), power) + c
}

func stepTricorn(z, c complex128, power float64) complex128 {
	return cpow(complex(real(z), -imag(z)), power) + c
}

func stepBuffalo(z, c complex128, power float64) complex128 {
	return cpow(complex(math.Abs(real(z)), math.Abs(imag(z))), power) - z + c
}

func stepCeltic(z, c complex128, power float64) complex128 {
	w := cpow(z, power)
	return complex(math.Abs(real(w)), imag(w)) + c
}

func stepPerpendicularMandelbrot(z, c complex128, power float64) complex128 {
	return cpow(complex(math.Abs(real(z)), imag(z)), power) + c
}

func stepPerpendicularBurningShip(z, c complex128, power float64) complex128 {
	return cpow(complex(real(z), math.Abs(imag(z))), power) + c
}

// stepHeart is a fixed quadratic map; the power parameter does not apply.
func stepHeart(z, c complex128, _ float64) complex128 {
	re, im := real(z), imag(z)
	return complex(re*re-im*im+real(c), 2*math.Abs(re)*im+imag(c))
}
