package dd

// Complex is a complex number with double-double components.
type Complex struct {
	Re, Im Double
}

// FromComplex128 splits both components.
func FromComplex128(z complex128) Complex {
	return Complex{Re: FromFloat64(real(z)), Im: FromFloat64(imag(z))}
}

// Complex128 recombines to native precision.
func (z Complex) Complex128() complex128 {
	return complex(z.Re.Float64(), z.Im.Float64())
}

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{Re: z.Re.Add(w.Re), Im: z.Im.Add(w.Im)}
}

// Sub returns z - w.
func (z Complex) Sub(w Complex) Complex {
	return Complex{Re: z.Re.Sub(w.Re), Im: z.Im.Sub(w.Im)}
}

// Mul returns z * w.
func (z Complex) Mul(w Complex) Complex {
	re := z.Re.Mul(w.Re).Sub(z.Im.Mul(w.Im))
	im := z.Re.Mul(w.Im).Add(z.Im.Mul(w.Re))
	return Complex{Re: re, Im: im}
}

// Sqr returns z squared using the cheaper component squares.
func (z Complex) Sqr() Complex {
	re := z.Re.Sqr().Sub(z.Im.Sqr())
	im := z.Re.Mul(z.Im)
	im = im.Add(im)
	return Complex{Re: re, Im: im}
}

// MagSq returns |z|^2.
func (z Complex) MagSq() Double {
	return z.Re.Sqr().Add(z.Im.Sqr())
}

// Conj returns the complex conjugate.
func (z Complex) Conj() Complex {
	return Complex{Re: z.Re, Im: z.Im.Neg()}
}

// AbsComponents returns (|Re z|, |Im z|), the burning-ship fold.
func (z Complex) AbsComponents() Complex {
	return Complex{Re: z.Re.Abs(), Im: z.Im.Abs()}
}

// Neg returns -z.
func (z Complex) Neg() Complex {
	return Complex{Re: z.Re.Neg(), Im: z.Im.Neg()}
}
