package bigcomplex

// Sinh returns sinh(x) = (sinh(re)*cos(im), cosh(re)*sin(im)).
func (x *Complex) Sinh() *Complex {
	sh, ch := rsinhcosh(x.re)
	s, c := rsincos(x.im)
	return &Complex{rnew().Mul(sh, c), rnew().Mul(ch, s)}
}

// Cosh returns cosh(x) = (cosh(re)*cos(im), sinh(re)*sin(im)).
func (x *Complex) Cosh() *Complex {
	sh, ch := rsinhcosh(x.re)
	s, c := rsincos(x.im)
	return &Complex{rnew().Mul(ch, c), rnew().Mul(sh, s)}
}

// Tanh returns sinh(x)/cosh(x).
func (x *Complex) Tanh() *Complex { return x.Sinh().Div(x.Cosh()) }

// Csch returns 1/sinh(x).
func (x *Complex) Csch() *Complex { return x.Sinh().Recip() }

// Sech returns 1/cosh(x).
func (x *Complex) Sech() *Complex { return x.Cosh().Recip() }

// Coth returns cosh(x)/sinh(x).
func (x *Complex) Coth() *Complex { return x.Tanh().Recip() }

// Asinh returns the principal inverse hyperbolic sine, computed as
// -i*asin(i*x). The rotation trick lands on the wrong sheet in two
// quadrants, so the components are rebuilt from their magnitudes with an
// explicit sign policy: the real sign follows re, except that a purely
// imaginary input below the branch point (re == 0, im < 0) is forced
// negative; the imaginary sign always follows im.
func (x *Complex) Asinh() *Complex {
	w := x.mulI().Asin().mulNegI()

	re := rnew().CopyAbs(w.re)
	if isRZero(x.re) && x.im.Sign() < 0 {
		re.Neg(re)
	} else if x.re.Signbit() {
		re.Neg(re)
	}
	im := rnew().CopySign(w.im, x.im)
	return &Complex{re, im}
}

// Acosh returns the principal inverse hyperbolic cosine as
// sqrt(x-1)/sqrt(1-x) * acos(x). The square-root quotient is +-i or +-1
// depending on which side of the branch cut x sits, which rotates acos onto
// the acosh sheet with a non-negative real part.
func (x *Complex) Acosh() *Complex {
	one := &Complex{rone(), rnew()}
	if x.Equals(one) {
		return Zero()
	}
	rot := x.Sub(one).Sqrt().Div(one.Sub(x).Sqrt())
	return rot.Mul(x.Acos())
}

// Atanh returns -i*atan(i*x).
func (x *Complex) Atanh() *Complex {
	return x.mulI().Atan().mulNegI()
}

// Acsch returns asinh(1/x). The reciprocal formula is undefined at the
// origin, where the principal value is real positive infinity.
func (x *Complex) Acsch() *Complex {
	if x.IsZero() {
		return &Complex{rnew().SetInf(false), rnew()}
	}
	return x.Recip().Asinh()
}

// Asech returns acosh(1/x), with the componentwise infinity at the origin.
// For real negative input the imaginary part is forced positive: the
// reciprocal rotation otherwise returns the conjugate branch there.
func (x *Complex) Asech() *Complex {
	if x.IsZero() {
		return Infinity()
	}
	w := x.Recip().Acosh()
	if isRZero(x.im) && x.re.Sign() < 0 {
		w.im.Abs(w.im)
	}
	return w
}

// Acoth returns atanh(1/x), with acoth(0) = (0, pi/2).
func (x *Complex) Acoth() *Complex {
	if x.IsZero() {
		return &Complex{rnew(), rnew().Mul(rpi(), rhalf())}
	}
	return x.Recip().Atanh()
}
