package fractal

import (
	"math"
	"math/cmplx"
	"testing"
)

func mandelParams(maxIter uint32) ViewParams {
	p := DefaultParams()
	p.MaxIter = maxIter
	p.EscapeRadius = 2
	return p
}

func TestIterateInsideSet(t *testing.T) {
	p := mandelParams(1000)
	for _, c := range []complex128{0, -1, complex(-0.1, 0.1)} {
		res := Iterate(c, p)
		if res.Escaped {
			t.Errorf("c=%v escaped at %v, should stay bounded", c, res.Iterations)
		}
		if res.Iterations != 1000 {
			t.Errorf("c=%v: iterations = %v, want 1000", c, res.Iterations)
		}
	}
}

func TestIterateEscape(t *testing.T) {
	p := mandelParams(1000)
	res := Iterate(complex(1, 0), p)
	if !res.Escaped {
		t.Fatal("c=1 should escape")
	}
	if res.Iterations > 5 {
		t.Errorf("c=1 escaped at %v, expected within a few iterations", res.Iterations)
	}
	if res.MagnitudeSq <= 4 {
		t.Errorf("escape magnitude² = %v, want > radius²", res.MagnitudeSq)
	}
}

func TestIterateMaxIterZero(t *testing.T) {
	p := mandelParams(0)
	res := Iterate(complex(0.3, 0.2), p)
	if !res.Escaped || res.Iterations != 0 {
		t.Errorf("maxIter=0: got %+v, want immediate escape at iteration 0", res)
	}
}

func TestIterateJuliaMode(t *testing.T) {
	p := mandelParams(100)
	p.Type = Julia
	p.JuliaC = 0

	// z0 = 3 escapes on the first magnitude check.
	res := Iterate(complex(3, 0), p)
	if !res.Escaped || res.Iterations != 0 {
		t.Errorf("julia z0=3: got %+v, want escape at 0", res)
	}

	// z0 = 0.5 with c=0 contracts toward zero.
	res = Iterate(complex(0.5, 0), p)
	if res.Escaped {
		t.Errorf("julia z0=0.5 escaped at %v", res.Iterations)
	}
}

func TestStepMaps(t *testing.T) {
	cases := []struct {
		typ   Type
		z, c  complex128
		power float64
		want  complex128
	}{
		{Mandelbrot, complex(1, 2), complex(0.5, 0), 2, complex(-2.5, 4)},
		{Mandelbrot, complex(2, 0), 0, 3, complex(8, 0)},
		{BurningShip, complex(-1, -1), 0, 2, complex(0, 2)},
		{Tricorn, complex(2, 1), complex(1, 0), 2, complex(4, -4)},
		{Celtic, complex(0, 1), complex(0.5, 0.25), 2, complex(1.5, 0.25)},
		{Buffalo, complex(-1, 1), 0, 2, complex(1, 1)},
		{PerpendicularMandelbrot, complex(-1, 2), 0, 2, complex(-3, 4)},
		{PerpendicularBurningShip, complex(1, -2), 0, 2, complex(-3, 4)},
		{Heart, complex(-1, 2), complex(0.5, 0.25), 2, complex(-2.5, 4.25)},
	}
	for _, tc := range cases {
		got := Step(tc.typ)(tc.z, tc.c, tc.power)
		if cmplx.Abs(got-tc.want) > 1e-12 {
			t.Errorf("%s step(%v, %v, %v) = %v, want %v", tc.typ, tc.z, tc.c, tc.power, got, tc.want)
		}
	}
}

func TestJuliaDualsShareMaps(t *testing.T) {
	duals := map[Type]Type{
		Julia:            Mandelbrot,
		BuffaloJulia:     Buffalo,
		CelticJulia:      Celtic,
		TricornJulia:     Tricorn,
		BurningShipJulia: BurningShip,
	}
	z, c := complex(0.3, -0.4), complex(-0.7, 0.27015)
	for julia, base := range duals {
		got := Step(julia)(z, c, 2)
		want := Step(base)(z, c, 2)
		if got != want {
			t.Errorf("%s step differs from %s: %v vs %v", julia, base, got, want)
		}
	}
}

func TestCpowHigherPower(t *testing.T) {
	// Polar exponentiation agrees with repeated squaring.
	z := complex(0.6, -0.8)
	got := cpow(z, 4)
	want := z * z * z * z
	if cmplx.Abs(got-want) > 1e-12 {
		t.Errorf("cpow(z,4) = %v, want %v", got, want)
	}
	if cpow(0, 3) != 0 {
		t.Error("cpow(0,3) should be zero")
	}
}

func TestTypeCatalogue(t *testing.T) {
	if !Type(NumTypes - 1).Valid() {
		t.Error("last catalogue entry should be valid")
	}
	if Type(NumTypes).Valid() {
		t.Error("Newton id should not be renderable")
	}
	for typ := Type(0); typ < NumTypes; typ++ {
		if typ.String() == "" {
			t.Errorf("type %d has no name", typ)
		}
		if s := typ.DefaultScheme(); s >= NumSchemes {
			t.Errorf("%s default scheme out of range: %d", typ, s)
		}
	}
	if Type(99).String() != "Mandelbrot" {
		t.Error("unknown type should fall back to Mandelbrot name")
	}
	if math.IsNaN(real(Heart.DefaultCenter())) {
		t.Error("default center must be finite")
	}
}
