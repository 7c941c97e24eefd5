package bigcomplex

import (
	"github.com/ericlagergren/decimal"
	dmath "github.com/ericlagergren/decimal/math"
)

// Add returns x + y.
func (x *Complex) Add(y *Complex) *Complex {
	return &Complex{rnew().Add(x.re, y.re), rnew().Add(x.im, y.im)}
}

// Sub returns x - y.
func (x *Complex) Sub(y *Complex) *Complex {
	return &Complex{rnew().Sub(x.re, y.re), rnew().Sub(x.im, y.im)}
}

// Mul returns x * y.
func (x *Complex) Mul(y *Complex) *Complex {
	re := rnew().Sub(rnew().Mul(x.re, y.re), rnew().Mul(x.im, y.im))
	im := rnew().Add(rnew().Mul(x.re, y.im), rnew().Mul(x.im, y.re))
	return &Complex{re, im}
}

// Div returns x / y. Division by the zero complex number is not guarded:
// the engine's own zero-division semantics (Infinity/NaN components) pass
// through unchanged.
func (x *Complex) Div(y *Complex) *Complex {
	denom := rnew().Add(rnew().Mul(y.re, y.re), rnew().Mul(y.im, y.im))
	re := rnew().Add(rnew().Mul(x.re, y.re), rnew().Mul(x.im, y.im))
	re.Quo(re, denom)
	im := rnew().Sub(rnew().Mul(x.im, y.re), rnew().Mul(x.re, y.im))
	im.Quo(im, denom)
	return &Complex{re, im}
}

// Recip returns 1 / x.
func (x *Complex) Recip() *Complex {
	denom := rnew().Add(rnew().Mul(x.re, x.re), rnew().Mul(x.im, x.im))
	re := rnew().Quo(x.re, denom)
	im := rnew().Quo(rnew().Neg(x.im), denom)
	return &Complex{re, im}
}

// Neg returns -x.
func (x *Complex) Neg() *Complex {
	return &Complex{rnew().Neg(x.re), rnew().Neg(x.im)}
}

// Conj returns the complex conjugate of x.
func (x *Complex) Conj() *Complex {
	return &Complex{rnew().Set(x.re), rnew().Neg(x.im)}
}

// Abs returns the magnitude |x|, computed with the engine's two-argument
// hypotenuse rather than sqrt(re*re+im*im), so intermediate squares cannot
// overflow or underflow the result.
func (x *Complex) Abs() *decimal.Big {
	return dmath.Hypot(rnew(), x.re, x.im)
}

// Arg returns the principal argument of x in (-pi, pi].
func (x *Complex) Arg() *decimal.Big {
	return dmath.Atan2(rnew(), x.im, x.re)
}

// Lerp returns the componentwise linear interpolation (1-t)*x + t*y for a
// real scalar t (any real-like input accepted by New).
func (x *Complex) Lerp(y *Complex, t any) *Complex {
	tv, err := toReal(t)
	if err != nil {
		panic(err)
	}
	u := rnew().Sub(rone(), tv)
	re := rnew().Add(rnew().Mul(u, x.re), rnew().Mul(tv, y.re))
	im := rnew().Add(rnew().Mul(u, x.im), rnew().Mul(tv, y.im))
	return &Complex{re, im}
}

// mulI returns i*x, i.e. (-im, re). Used by the inverse hyperbolics.
func (x *Complex) mulI() *Complex {
	return &Complex{rnew().Neg(x.im), rnew().Set(x.re)}
}

// mulNegI returns -i*x, i.e. (im, -re).
func (x *Complex) mulNegI() *Complex {
	return &Complex{rnew().Set(x.im), rnew().Neg(x.re)}
}
