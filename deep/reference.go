// Package deep implements the deep-zoom pipeline: a double-double reference
// orbit, series-approximation coefficients for iteration skipping, and the
// per-pixel perturbation engine.
package deep

import (
	"encoding/binary"
	"math"

	fractal "github.com/jo56/fractal-madness"
	"github.com/jo56/fractal-madness/dd"
)

// MaxRefOrbit caps the reference orbit length.
const MaxRefOrbit = 100000

// Point is one reference iterate in the 16-byte wire layout.
type Point struct {
	ReHi, ReLo float32
	ImHi, ImLo float32
}

// PointSize is the encoded size of one reference point.
const PointSize = 16

func pointOf(z dd.Complex) Point {
	return Point{ReHi: z.Re.Hi, ReLo: z.Re.Lo, ImHi: z.Im.Hi, ImLo: z.Im.Lo}
}

// Complex128 recombines the point at native precision.
func (p Point) Complex128() complex128 {
	return complex(
		float64(p.ReHi)+float64(p.ReLo),
		float64(p.ImHi)+float64(p.ImLo),
	)
}

// Orbit is the high-precision iterate sequence of the reference anchor. It
// is built once per frame and read-only afterwards.
type Orbit struct {
	Center dd.Complex
	Points []Point

	// EscapedAt is the iteration at which the reference itself escaped,
	// or -1. A truncated orbit limits how far perturbation can iterate.
	EscapedAt int
}

// ComputeOrbit iterates the quadratic variant of the selected map at
// double-double precision, recording every iterate. Julia-mode types seed z
// with the anchor and hold c at juliaC.
func ComputeOrbit(center, juliaC dd.Complex, t fractal.Type, maxIter uint32, escapeRadiusSq float64) *Orbit {
	if maxIter > MaxRefOrbit {
		maxIter = MaxRefOrbit
	}

	var z, c dd.Complex
	if t.IsJuliaMode() {
		z = center
		c = juliaC
	} else {
		c = center
	}

	o := &Orbit{
		Center:    center,
		Points:    make([]Point, 0, maxIter),
		EscapedAt: -1,
	}

	for i := uint32(0); i < maxIter; i++ {
		o.Points = append(o.Points, pointOf(z))

		if z.MagSq().Float64() > escapeRadiusSq {
			o.EscapedAt = int(i)
			break
		}

		z = ddStep(z, c, t)
	}
	return o
}

// ddStep advances the quadratic form of each map family in double-double
// arithmetic.
func ddStep(z, c dd.Complex, t fractal.Type) dd.Complex {
	switch t {
	case fractal.BurningShip, fractal.BurningShipJulia:
		return z.AbsComponents().Sqr().Add(c)
	case fractal.Tricorn, fractal.TricornJulia:
		return z.Conj().Sqr().Add(c)
	case fractal.Celtic, fractal.CelticJulia:
		w := z.Sqr()
		w.Re = w.Re.Abs()
		return w.Add(c)
	case fractal.Buffalo, fractal.BuffaloJulia:
		return z.AbsComponents().Sqr().Sub(z).Add(c)
	case fractal.PerpendicularMandelbrot:
		return dd.Complex{Re: z.Re.Abs(), Im: z.Im}.Sqr().Add(c)
	case fractal.PerpendicularBurningShip:
		return dd.Complex{Re: z.Re, Im: z.Im.Abs()}.Sqr().Add(c)
	case fractal.Heart:
		re := z.Re.Sqr().Sub(z.Im.Sqr())
		im := z.Re.Abs().Mul(z.Im)
		im = im.Add(im)
		return dd.Complex{Re: re, Im: im}.Add(c)
	default: // Mandelbrot, Julia
		return z.Sqr().Add(c)
	}
}

// Len is the number of recorded iterates.
func (o *Orbit) Len() int { return len(o.Points) }

// At returns the reference iterate at native precision.
func (o *Orbit) At(i int) complex128 { return o.Points[i].Complex128() }

// Bytes encodes the orbit as consecutive 16-byte records.
func (o *Orbit) Bytes() []byte {
	b := make([]byte, len(o.Points)*PointSize)
	le := binary.LittleEndian
	for i, p := range o.Points {
		off := i * PointSize
		le.PutUint32(b[off+0:], math.Float32bits(p.ReHi))
		le.PutUint32(b[off+4:], math.Float32bits(p.ReLo))
		le.PutUint32(b[off+8:], math.Float32bits(p.ImHi))
		le.PutUint32(b[off+12:], math.Float32bits(p.ImLo))
	}
	return b
}
