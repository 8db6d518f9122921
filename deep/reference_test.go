package deep

import (
	"encoding/binary"
	"math"
	"math/cmplx"
	"testing"

	fractal "github.com/jo56/fractal-madness"
	"github.com/jo56/fractal-madness/dd"
)

func TestComputeOrbitInsideSet(t *testing.T) {
	center := dd.FromComplex128(complex(-0.5, 0))
	o := ComputeOrbit(center, dd.Complex{}, fractal.Mandelbrot, 200, 16)
	if o.EscapedAt != -1 {
		t.Fatalf("reference at -0.5 escaped at %d", o.EscapedAt)
	}
	if o.Len() != 200 {
		t.Fatalf("orbit length = %d, want 200", o.Len())
	}
	if o.At(0) != 0 {
		t.Errorf("z0 = %v, want 0", o.At(0))
	}
	if got := o.At(1); cmplx.Abs(got-complex(-0.5, 0)) > 1e-9 {
		t.Errorf("z1 = %v, want -0.5", got)
	}
}

func TestComputeOrbitEscapes(t *testing.T) {
	center := dd.FromComplex128(complex(1, 1))
	o := ComputeOrbit(center, dd.Complex{}, fractal.Mandelbrot, 200, 16)
	if o.EscapedAt < 0 || o.EscapedAt > 10 {
		t.Fatalf("escape at %d, expected within a few iterations", o.EscapedAt)
	}
	// The escaping iterate is recorded so perturbation can check against it.
	if o.Len() != o.EscapedAt+1 {
		t.Errorf("len = %d with EscapedAt = %d", o.Len(), o.EscapedAt)
	}
}

func TestComputeOrbitJuliaMode(t *testing.T) {
	center := dd.FromComplex128(complex(0.3, 0))
	juliaC := dd.FromComplex128(complex(-0.1, 0))
	o := ComputeOrbit(center, juliaC, fractal.Julia, 50, 16)
	if got := o.At(0); cmplx.Abs(got-complex(0.3, 0)) > 1e-9 {
		t.Errorf("julia z0 = %v, want the anchor", got)
	}
	// z1 = z0² + c
	if got := o.At(1); cmplx.Abs(got-complex(-0.01, 0)) > 1e-6 {
		t.Errorf("julia z1 = %v, want -0.01", got)
	}
}

func TestComputeOrbitCapped(t *testing.T) {
	center := dd.FromComplex128(complex(-0.5, 0))
	o := ComputeOrbit(center, dd.Complex{}, fractal.Mandelbrot, MaxRefOrbit+5, 16)
	if o.Len() > MaxRefOrbit {
		t.Errorf("orbit length %d exceeds cap %d", o.Len(), MaxRefOrbit)
	}
}

func TestOrbitBytes(t *testing.T) {
	center := dd.FromComplex128(complex(-0.5, 0))
	o := ComputeOrbit(center, dd.Complex{}, fractal.Mandelbrot, 10, 16)
	b := o.Bytes()
	if len(b) != o.Len()*PointSize {
		t.Fatalf("encoded length = %d, want %d", len(b), o.Len()*PointSize)
	}
	// Record 1 holds z1 = -0.5: re_hi, re_lo, im_hi, im_lo.
	le := binary.LittleEndian
	if got := math.Float32frombits(le.Uint32(b[PointSize:])); got != -0.5 {
		t.Errorf("record 1 re_hi = %v, want -0.5", got)
	}
	if got := le.Uint32(b[PointSize+8:]); got != 0 {
		t.Errorf("record 1 im_hi = %#x, want 0", got)
	}
}

func TestDDStepMatchesNative(t *testing.T) {
	z := complex(0.31, -0.47)
	c := complex(-0.62, 0.19)
	zd := dd.FromComplex128(z)
	cd := dd.FromComplex128(c)
	for typ := fractal.Type(0); typ < fractal.NumTypes; typ++ {
		got := ddStep(zd, cd, typ).Complex128()
		want := fractal.Step(typ)(z, c, 2)
		if cmplx.Abs(got-want) > 1e-6 {
			t.Errorf("%s: ddStep = %v, native = %v", typ, got, want)
		}
	}
}
