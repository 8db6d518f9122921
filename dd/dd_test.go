package dd

import (
	"math"
	"testing"
)

// ulp32 is the unit in the last place of a positive float32.
func ulp32(x float32) float64 {
	bits := math.Float32bits(x)
	return float64(math.Float32frombits(bits+1) - x)
}

func TestFromFloat64RoundTrip(t *testing.T) {
	values := []float64{0, 1, -1, 0.5, -0.75, math.Pi, -0.7436, 1e-8, 12345.6789}
	for _, v := range values {
		d := FromFloat64(v)
		got := d.Float64()
		// A hi/lo pair keeps ~48 mantissa bits.
		if math.Abs(got-v) > math.Abs(v)*1e-13+1e-20 {
			t.Errorf("FromFloat64(%v).Float64() = %v", v, got)
		}
	}
}

func TestAddExact(t *testing.T) {
	a := FromFloat32(1.5)
	b := FromFloat32(2.25)
	got := a.Add(b)
	if got.Hi != 3.75 || got.Lo != 0 {
		t.Errorf("1.5 + 2.25 = (%v, %v)", got.Hi, got.Lo)
	}
}

func TestAddCompensation(t *testing.T) {
	// 1 + 1e-8 is not representable in a single float32; the pair must
	// carry the small term in the low component.
	got := FromFloat64(1).Add(FromFloat64(1e-8)).Float64()
	want := 1 + 1e-8
	if math.Abs(got-want) > 1e-14 {
		t.Errorf("1 + 1e-8 = %v, want %v", got, want)
	}
}

func TestAddMatchesFloat64(t *testing.T) {
	pairs := [][2]float64{
		{0.1, 0.2},
		{-0.7436, 0.1318},
		{1e-5, -3e-9},
		{123.456, -0.000789},
	}
	for _, p := range pairs {
		got := FromFloat64(p[0]).Add(FromFloat64(p[1])).Float64()
		want := p[0] + p[1]
		if math.Abs(got-want) > math.Abs(want)*1e-13+1e-18 {
			t.Errorf("%v + %v = %v, want %v", p[0], p[1], got, want)
		}
	}
}

func TestSubCancellation(t *testing.T) {
	// Catastrophic cancellation at float32 precision; the pair keeps the
	// difference.
	a := FromFloat64(1.0000001)
	b := FromFloat64(1.0)
	got := a.Sub(b).Float64()
	if math.Abs(got-1e-7) > 1e-13 {
		t.Errorf("1.0000001 - 1 = %v", got)
	}
}

func TestMulMatchesFloat64(t *testing.T) {
	pairs := [][2]float64{
		{0.1, 10},
		{-0.7436, 0.1318},
		{math.Pi, math.E},
		{1e-4, 1e-4},
	}
	for _, p := range pairs {
		got := FromFloat64(p[0]).Mul(FromFloat64(p[1])).Float64()
		want := p[0] * p[1]
		if math.Abs(got-want) > math.Abs(want)*1e-12+1e-20 {
			t.Errorf("%v * %v = %v, want %v", p[0], p[1], got, want)
		}
	}
}

func TestSqrMatchesMul(t *testing.T) {
	for _, v := range []float64{0, 1.5, -0.7436, math.Sqrt2, 1e-6} {
		d := FromFloat64(v)
		sq := d.Sqr()
		mul := d.Mul(d)
		if sq.Hi != mul.Hi || math.Abs(float64(sq.Lo-mul.Lo)) > ulp32(float32(math.Abs(v)*math.Abs(v))+1) {
			t.Errorf("Sqr(%v) = (%v,%v), Mul = (%v,%v)", v, sq.Hi, sq.Lo, mul.Hi, mul.Lo)
		}
	}
}

func TestNormalized(t *testing.T) {
	pairs := [][2]float64{
		{0.1, 0.2},
		{-0.7436, 0.1318},
		{1e-5, 3e-9},
	}
	for _, p := range pairs {
		for _, d := range []Double{
			FromFloat64(p[0]).Add(FromFloat64(p[1])),
			FromFloat64(p[0]).Mul(FromFloat64(p[1])),
			FromFloat64(p[0]).Sqr(),
		} {
			if d.Hi == 0 {
				continue
			}
			if math.Abs(float64(d.Lo)) > ulp32(float32(math.Abs(float64(d.Hi))))/2+1e-30 {
				t.Errorf("pair (%v, %v) not normalized", d.Hi, d.Lo)
			}
		}
	}
}

func TestAbsNeg(t *testing.T) {
	d := FromFloat64(-0.3)
	if !d.IsNeg() {
		t.Error("-0.3 should be negative")
	}
	if got := d.Abs().Float64(); math.Abs(got-0.3) > 1e-10 {
		t.Errorf("|-0.3| = %v", got)
	}
	if got := d.Neg().Float64(); math.Abs(got-0.3) > 1e-10 {
		t.Errorf("-(-0.3) = %v", got)
	}
}

func TestMulF32(t *testing.T) {
	d := FromFloat64(0.1).MulF32(7)
	if math.Abs(d.Float64()-0.7) > 1e-12 {
		t.Errorf("0.1 * 7 = %v", d.Float64())
	}
}
