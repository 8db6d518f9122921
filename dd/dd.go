// Package dd implements double-double arithmetic: an extended-precision
// value represented as a normalized pair of float32 (hi + lo), giving about
// twice the mantissa of the underlying scalar. The same representation is
// used for the reference-orbit wire format, so host-side computation and the
// per-pixel engine agree bit-for-bit.
package dd

// Double is a normalized hi/lo pair with |Lo| <= ulp(Hi)/2.
type Double struct {
	Hi, Lo float32
}

// FromFloat32 widens a single float.
func FromFloat32(x float32) Double { return Double{Hi: x} }

// FromFloat64 splits a float64 into a hi/lo pair, keeping ~48 of its 53
// mantissa bits.
func FromFloat64(x float64) Double {
	hi := float32(x)
	lo := float32(x - float64(hi))
	return Double{Hi: hi, Lo: lo}
}

// Float64 recombines the pair.
func (a Double) Float64() float64 {
	return float64(a.Hi) + float64(a.Lo)
}

// twoSum is Knuth's error-free addition: s + e == a + b exactly.
func twoSum(a, b float32) (s, e float32) {
	s = a + b
	bb := s - a
	e = (a - (s - bb)) + (b - bb)
	return s, e
}

// quickTwoSum assumes |a| >= |b|.
func quickTwoSum(a, b float32) (s, e float32) {
	s = a + b
	e = b - (s - a)
	return s, e
}

// split is Dekker's splitter for a 24-bit mantissa (2^12 + 1).
func split(a float32) (hi, lo float32) {
	t := 4097 * a
	hi = t - (t - a)
	lo = a - hi
	return hi, lo
}

// twoProd is the error-free product: p + e == a * b exactly.
func twoProd(a, b float32) (p, e float32) {
	p = a * b
	aHi, aLo := split(a)
	bHi, bLo := split(b)
	e = ((aHi*bHi - p) + aHi*bLo + aLo*bHi) + aLo*bLo
	return p, e
}

// Add returns a + b.
func (a Double) Add(b Double) Double {
	s, e := twoSum(a.Hi, b.Hi)
	e += a.Lo + b.Lo
	s, e = quickTwoSum(s, e)
	return Double{Hi: s, Lo: e}
}

// Sub returns a - b.
func (a Double) Sub(b Double) Double {
	return a.Add(b.Neg())
}

// Mul returns a * b.
func (a Double) Mul(b Double) Double {
	p, e := twoProd(a.Hi, b.Hi)
	e += a.Hi*b.Lo + a.Lo*b.Hi
	p, e = quickTwoSum(p, e)
	return Double{Hi: p, Lo: e}
}

// Sqr returns a * a, cheaper than the general product.
func (a Double) Sqr() Double {
	p, e := twoProd(a.Hi, a.Hi)
	e += 2 * a.Hi * a.Lo
	p, e = quickTwoSum(p, e)
	return Double{Hi: p, Lo: e}
}

// MulF32 scales by a plain float32.
func (a Double) MulF32(s float32) Double {
	p, e := twoProd(a.Hi, s)
	e += a.Lo * s
	p, e = quickTwoSum(p, e)
	return Double{Hi: p, Lo: e}
}

// Neg returns -a.
func (a Double) Neg() Double { return Double{Hi: -a.Hi, Lo: -a.Lo} }

// Abs returns |a|.
func (a Double) Abs() Double {
	if a.Hi < 0 || (a.Hi == 0 && a.Lo < 0) {
		return a.Neg()
	}
	return a
}

// IsNeg reports whether a < 0.
func (a Double) IsNeg() bool {
	return a.Hi < 0 || (a.Hi == 0 && a.Lo < 0)
}
