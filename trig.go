package bigcomplex

import (
	dmath "github.com/ericlagergren/decimal/math"
)

// Sin returns sin(x) = (sin(re)*cosh(im), cos(re)*sinh(im)).
func (x *Complex) Sin() *Complex {
	s, c := rsincos(x.re)
	sh, ch := rsinhcosh(x.im)
	return &Complex{rnew().Mul(s, ch), rnew().Mul(c, sh)}
}

// Cos returns cos(x) = (cos(re)*cosh(im), -sin(re)*sinh(im)).
func (x *Complex) Cos() *Complex {
	s, c := rsincos(x.re)
	sh, ch := rsinhcosh(x.im)
	im := rnew().Mul(s, sh)
	return &Complex{rnew().Mul(c, ch), im.Neg(im)}
}

// Tan returns sin(x)/cos(x).
func (x *Complex) Tan() *Complex { return x.Sin().Div(x.Cos()) }

// Csc returns 1/sin(x).
func (x *Complex) Csc() *Complex { return x.Sin().Recip() }

// Sec returns 1/cos(x).
func (x *Complex) Sec() *Complex { return x.Cos().Recip() }

// Cot returns cos(x)/sin(x).
func (x *Complex) Cot() *Complex { return x.Tan().Recip() }

// Asin returns the principal arc sine of x.
//
// With p = (1+re)^2 + im^2 and q = (1-re)^2 + im^2,
//
//	a = (sqrt(p) - sqrt(q))/2   always lies in [-1, 1]
//	b = (sqrt(p) + sqrt(q))/2   always >= 1
//
// and asin(x) = (asin(a), +-ln(b + sqrt(b^2-1))). The log term is a
// magnitude; the sign below selects the principal branch. Without the
// correction the formula lands on the wrong sheet for im < 0 and for the
// positive real axis.
func (x *Complex) Asin() *Complex {
	one := rone()
	two := rnew().SetMantScale(2, 0)
	im2 := rnew().Mul(x.im, x.im)

	onePlus := rnew().Add(one, x.re)
	p := rnew().Add(rnew().Mul(onePlus, onePlus), im2)
	oneMinus := rnew().Sub(one, x.re)
	q := rnew().Add(rnew().Mul(oneMinus, oneMinus), im2)

	sp := dmath.Sqrt(rnew(), p)
	sq := dmath.Sqrt(rnew(), q)
	a := rnew().Sub(sp, sq)
	a.Quo(a, two)
	b := rnew().Add(sp, sq)
	b.Quo(b, two)

	re := dmath.Asin(rnew(), a)
	bb := rnew().Sub(rnew().Mul(b, b), one)
	im := dmath.Log(rnew(), rnew().Add(b, dmath.Sqrt(rnew(), bb)))
	if x.im.Sign() < 0 || (x.re.Sign() > 0 && x.im.Sign() <= 0) {
		im.Neg(im)
	}
	return &Complex{re, im}
}

// Acos returns pi/2 - asin(x).
func (x *Complex) Acos() *Complex {
	halfPi := rnew().Mul(rpi(), rhalf())
	return (&Complex{halfPi, rnew()}).Sub(x.Asin())
}

// Atan returns the principal arc tangent of x:
//
//	re = atan2(2*re, 1 - re^2 - im^2) / 2
//	im = ln((re^2 + (1+im)^2) / (re^2 + (1-im)^2)) / 4
func (x *Complex) Atan() *Complex {
	one := rone()
	two := rnew().SetMantScale(2, 0)
	four := rnew().SetMantScale(4, 0)
	re2 := rnew().Mul(x.re, x.re)
	im2 := rnew().Mul(x.im, x.im)

	den := rnew().Sub(rnew().Sub(one, re2), im2)
	re := dmath.Atan2(rnew(), rnew().Mul(two, x.re), den)
	re.Quo(re, two)

	onePlus := rnew().Add(one, x.im)
	oneMinus := rnew().Sub(one, x.im)
	num := rnew().Add(re2, rnew().Mul(onePlus, onePlus))
	dnm := rnew().Add(re2, rnew().Mul(oneMinus, oneMinus))
	im := dmath.Log(rnew(), rnew().Quo(num, dnm))
	im.Quo(im, four)
	return &Complex{re, im}
}

// Acsc returns asin(1/x).
func (x *Complex) Acsc() *Complex { return x.Recip().Asin() }

// Asec returns acos(1/x).
func (x *Complex) Asec() *Complex { return x.Recip().Acos() }

// Acot returns atan(1/x).
func (x *Complex) Acot() *Complex { return x.Recip().Atan() }
