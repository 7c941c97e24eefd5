package bigcomplex

import (
	"math/big"

	dmath "github.com/ericlagergren/decimal/math"
)

// Pow returns x**y, the principal value of the base-x exponential of y.
//
// When x is purely imaginary (or zero) and y is a real integer, the result
// is taken from the i-power 4-cycle instead of the general closed form:
// x**y = (x.im**y) * i**y, and i**y only depends on y mod 4. The general
// formula would reach the same values through cos/sin of a multiple of pi/2,
// where cancellation turns exact zeros into residue and can flip the sign of
// the surviving component.
func (x *Complex) Pow(y *Complex) *Complex {
	if isRZero(x.re) && isRZero(y.im) && y.re.IsFinite() && y.re.IsInt() {
		return powImagInt(x, y)
	}

	// Principal value: with r = |x| and theta = arg(x),
	//   x**y = r**y.re * e**(-y.im*theta) * (cos(ratio) + i*sin(ratio))
	//   ratio = y.re*theta + y.im*ln(r)
	r := x.Abs()
	theta := x.Arg()
	left := dmath.Pow(rnew(), r, y.re)
	ratio := rnew().Mul(y.re, theta)
	if !isRZero(y.im) {
		decay := rnew().Neg(rnew().Mul(y.im, theta))
		left.Mul(left, dmath.Exp(rnew(), decay))
		ratio.Add(ratio, rnew().Mul(y.im, dmath.Log(rnew(), r)))
	}
	re := rnew().Mul(dmath.Cos(rnew(), ratio), left)
	im := rnew().Mul(dmath.Sin(rnew(), ratio), left)
	return &Complex{re, im}
}

// powImagInt computes (b*i)**n for real integer n as b**n * i**(n mod 4).
// The residue is the non-negative Euclidean one, so negative exponents walk
// the same (1, i, -1, -i) cycle backwards: i**-1 = -i.
func powImagInt(x, y *Complex) *Complex {
	mag := dmath.Pow(rnew(), x.im, y.re)
	n := y.re.Int(new(big.Int))
	n.Mod(n, big.NewInt(4))
	switch n.Int64() {
	case 0:
		return &Complex{mag, rnew()}
	case 1:
		return &Complex{rnew(), mag}
	case 2:
		return &Complex{rnew().Neg(mag), rnew()}
	default: // 3
		return &Complex{rnew(), rnew().Neg(mag)}
	}
}

// Exp returns e**x = e**x.re * (cos(x.im) + i*sin(x.im)).
func (x *Complex) Exp() *Complex {
	ex := dmath.Exp(rnew(), x.re)
	s, c := rsincos(x.im)
	return &Complex{rnew().Mul(ex, c), rnew().Mul(ex, s)}
}

// Sqrt returns the principal square root of x. Purely real inputs are kept
// on the real or imaginary axis directly; routing them through the general
// Pow path would smear branch residue into the component that should be an
// exact zero.
func (x *Complex) Sqrt() *Complex {
	if isRZero(x.im) {
		if x.re.Sign() < 0 {
			abs := rnew().Abs(x.re)
			return &Complex{rnew(), dmath.Sqrt(rnew(), abs)}
		}
		return &Complex{dmath.Sqrt(rnew(), x.re), rnew()}
	}
	return x.Pow(&Complex{rhalf(), rnew()})
}

// Ln returns the principal natural logarithm (ln|x|, arg(x)), with the
// branch cut along the negative real axis.
func (x *Complex) Ln() *Complex {
	return &Complex{dmath.Log(rnew(), x.Abs()), x.Arg()}
}

// Log returns the base-b logarithm of x as Ln(x)/Ln(b) by complex division.
func (x *Complex) Log(b *Complex) *Complex {
	return x.Ln().Div(b.Ln())
}

// Log10 returns the base-10 logarithm of x.
func (x *Complex) Log10() *Complex {
	return x.Log(&Complex{rnew().SetMantScale(10, 0), rnew()})
}
