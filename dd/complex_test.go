package dd

import (
	"math/cmplx"
	"testing"
)

func TestComplexRoundTrip(t *testing.T) {
	z := complex(-0.7436, 0.1318)
	got := FromComplex128(z).Complex128()
	if cmplx.Abs(got-z) > 1e-13 {
		t.Errorf("round trip: %v != %v", got, z)
	}
}

func TestComplexArithmetic(t *testing.T) {
	z := complex(0.31, -0.47)
	w := complex(-0.62, 0.19)
	zd, wd := FromComplex128(z), FromComplex128(w)

	cases := []struct {
		name string
		got  Complex
		want complex128
	}{
		{"add", zd.Add(wd), z + w},
		{"sub", zd.Sub(wd), z - w},
		{"mul", zd.Mul(wd), z * w},
		{"sqr", zd.Sqr(), z * z},
		{"conj", zd.Conj(), complex(real(z), -imag(z))},
		{"neg", zd.Neg(), -z},
		{"abs components", zd.AbsComponents(), complex(0.31, 0.47)},
	}
	for _, tc := range cases {
		if cmplx.Abs(tc.got.Complex128()-tc.want) > 1e-12 {
			t.Errorf("%s = %v, want %v", tc.name, tc.got.Complex128(), tc.want)
		}
	}
}

func TestComplexSqrMatchesMul(t *testing.T) {
	z := FromComplex128(complex(0.31, -0.47))
	sq := z.Sqr().Complex128()
	mul := z.Mul(z).Complex128()
	if cmplx.Abs(sq-mul) > 1e-13 {
		t.Errorf("Sqr = %v, Mul = %v", sq, mul)
	}
}

func TestComplexMagSq(t *testing.T) {
	z := FromComplex128(complex(3, 4))
	if got := z.MagSq().Float64(); got != 25 {
		t.Errorf("|3+4i|² = %v", got)
	}
	if FromComplex128(0).MagSq().Float64() != 0 {
		t.Error("|0|² should be 0")
	}
}
