package bigcomplex

import (
	"github.com/ericlagergren/decimal"
	dmath "github.com/ericlagergren/decimal/math"
)

// Thin shims over the real-number engine. Everything here is a plain real
// function; the complex formulas live in the other files.

// rnew allocates a zero decimal bound to the package context.
func rnew() *decimal.Big { return decimal.WithContext(ctx) }

// rone returns 1.
func rone() *decimal.Big { return rnew().SetMantScale(1, 0) }

// rhalf returns 0.5.
func rhalf() *decimal.Big { return rnew().SetMantScale(5, 1) }

// rpi returns pi at the current precision.
func rpi() *decimal.Big { return dmath.Pi(rnew()) }

// isRZero reports whether x is finite and exactly zero.
func isRZero(x *decimal.Big) bool { return x.IsFinite() && x.Sign() == 0 }

// rsinhcosh returns sinh(x) and cosh(x) as (e^x - e^-x)/2 and
// (e^x + e^-x)/2. The engine has no hyperbolic primitives of its own.
func rsinhcosh(x *decimal.Big) (sinh, cosh *decimal.Big) {
	ex := dmath.Exp(rnew(), x)
	exInv := rnew().Quo(rone(), ex)
	two := rnew().SetMantScale(2, 0)
	sinh = rnew().Sub(ex, exInv)
	sinh.Quo(sinh, two)
	cosh = rnew().Add(ex, exInv)
	cosh.Quo(cosh, two)
	return sinh, cosh
}

// rsincos returns sin(x) and cos(x).
func rsincos(x *decimal.Big) (sin, cos *decimal.Big) {
	return dmath.Sin(rnew(), x), dmath.Cos(rnew(), x)
}
