// Package bigcomplex provides arbitrary-precision complex arithmetic for Go.
//
// It builds a complex value type on top of the github.com/ericlagergren/decimal
// engine and exposes construction from numbers and decimal strings, exact and
// approximate comparison, componentwise arithmetic, and the full set of
// exponential, logarithmic, trigonometric and hyperbolic functions together
// with their inverses, using the principal-value branch cuts induced by an
// argument in (-pi, pi].
//
// Values are immutable by convention: every operation allocates a fresh
// result and never writes to its operands, so independent values may be used
// from any number of goroutines. The only shared state is the package-wide
// precision configuration (see SetPrecision).
//
// Minimal usage:
//
//	z := bigcomplex.MustParse("3.1415926535+2.718281828i")
//	w := z.Mul(z).Sqrt()
//	fmt.Println(w)
//
// SPDX-License-Identifier: MIT
package bigcomplex

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/ericlagergren/decimal"
)

// ErrInvalidLiteral reports a string that cannot be parsed into a decimal
// component. It is the only validation failure this package raises; every
// other out-of-domain input propagates NaN/Infinity components instead.
var ErrInvalidLiteral = errors.New("bigcomplex: invalid numeric literal")

// literalRe anchors the engine's exported literal grammar to whole strings.
var literalRe = regexp.MustCompile(`^(?:` + decimal.Regexp.String() + `)$`)

// ctx is the engine context used for every allocation and operation. It is
// read, never written, by the operations themselves; mutating it (via
// SetPrecision) concurrently with in-flight computations is undefined
// behavior owned by the caller.
var ctx = decimal.Context{
	Precision:     34,
	RoundingMode:  decimal.ToNearestAway,
	OperatingMode: decimal.GDA,
}

// Precision returns the number of significant decimal digits carried by
// subsequently created values.
func Precision() int { return ctx.Precision }

// SetPrecision changes the package-wide precision in significant decimal
// digits. Values below 1 are clamped to 1. Existing values keep the digits
// they already have; only new results are affected.
func SetPrecision(digits int) {
	if digits < 1 {
		digits = 1
	}
	ctx.Precision = digits
}

// Complex is an arbitrary-precision complex number. Both components are
// always non-nil decimals; either may be NaN or Infinity, mirroring the
// engine's own domain. The zero value is not usable; construct values with
// New, Parse or ToComplex.
type Complex struct {
	re, im *decimal.Big
}

// New wraps two real-like inputs into a Complex. Accepted types for both
// parts: int, int64, uint64, float64, string, *big.Int, *big.Float and
// *decimal.Big. A nil imaginary part defaults to exact zero. A string that
// the engine cannot parse yields an error wrapping ErrInvalidLiteral.
func New(re, im any) (*Complex, error) {
	r, err := toReal(re)
	if err != nil {
		return nil, err
	}
	i, err := toReal(im)
	if err != nil {
		return nil, err
	}
	return &Complex{r, i}, nil
}

// MustNew is New panicking on error.
func MustNew(re, im any) *Complex {
	z, err := New(re, im)
	if err != nil {
		panic(err)
	}
	return z
}

// ToComplex coerces a number-or-Complex into a *Complex. An existing
// *Complex is returned unchanged; a complex128 is split into its parts; a
// string may be any literal accepted by Parse; any real-like input accepted
// by New becomes the real part with an exact-zero imaginary part. ToComplex
// panics on unsupported types and unparseable strings; it is the coercion
// applied to both operands of every package-level operation.
func ToComplex(v any) *Complex {
	switch v := v.(type) {
	case *Complex:
		return v
	case complex128:
		re := rnew().SetFloat64(real(v))
		im := rnew().SetFloat64(imag(v))
		return &Complex{re, im}
	case string:
		z, err := Parse(v)
		if err != nil {
			panic(err)
		}
		return z
	default:
		r, err := toReal(v)
		if err != nil {
			panic(err)
		}
		return &Complex{r, rnew()}
	}
}

// toReal converts a single real-like input into a fresh engine value at the
// current precision. Inputs are copied, never aliased, so later mutation of
// the argument cannot leak into a Complex.
func toReal(v any) (*decimal.Big, error) {
	r := rnew()
	switch v := v.(type) {
	case nil:
		return r, nil
	case *decimal.Big:
		return r.Set(v), nil
	case int:
		return r.SetMantScale(int64(v), 0), nil
	case int64:
		return r.SetMantScale(v, 0), nil
	case uint64:
		return r.SetUint64(v), nil
	case float64:
		return r.SetFloat64(v), nil
	case *big.Int:
		return r.SetBigMantScale(v, 0), nil
	case *big.Float:
		return r.SetFloat(v), nil
	case string:
		// The engine's SetString reports syntax errors by setting the
		// ConversionSyntax condition rather than returning ok=false, and it
		// silently accepts a dangling exponent marker ("1e"), so validate
		// against the engine's own literal grammar first.
		s := strings.TrimSpace(v)
		if !literalRe.MatchString(s) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLiteral, v)
		}
		if _, ok := r.SetString(s); !ok || r.Context.Conditions&decimal.ConversionSyntax != 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLiteral, v)
		}
		return r, nil
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidLiteral, v)
	}
}

// Parse parses a complex literal. Accepts:
//
//	"a+bi", "a-bi", "i", "-i", plain real "a", or the pair forms "(a b)" / "(a, b)".
func Parse(s string) (*Complex, error) {
	re, im, ok := splitLiteral(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLiteral, s)
	}
	return New(re, im)
}

// MustParse panics on error.
func MustParse(s string) *Complex {
	z, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return z
}

// splitLiteral converts the accepted literal forms into separate real/imag
// decimal strings.
func splitLiteral(in string) (re, im string, ok bool) {
	s := strings.TrimSpace(in)
	if s == "" {
		return "0", "0", true
	}
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		mid := strings.ReplaceAll(strings.TrimSpace(s[1:len(s)-1]), ",", " ")
		switch f := strings.Fields(mid); len(f) {
		case 1:
			return f[0], "0", true
		case 2:
			return f[0], f[1], true
		default:
			return "", "", false
		}
	}
	s = strings.ReplaceAll(s, "I", "i")
	s = strings.ReplaceAll(s, " ", "") // accept the spaced "a + bi" form String produces
	switch s {
	case "i", "+i":
		return "0", "1", true
	case "-i":
		return "0", "-1", true
	}
	if !strings.HasSuffix(s, "i") {
		return s, "0", true
	}
	core := strings.TrimSpace(s[:len(s)-1])
	idx := lastSignNotInExponent(core)
	if idx <= 0 {
		return "0", core, true
	}
	re = strings.TrimSpace(core[:idx])
	im = strings.TrimSpace(core[idx:])
	if im == "+" {
		im = "1"
	} else if im == "-" {
		im = "-1"
	}
	return re, im, true
}

// lastSignNotInExponent finds the last '+'/'-' that is neither part of an
// exponent nor at position 0.
func lastSignNotInExponent(s string) int {
	for i := len(s) - 1; i > 0; i-- {
		if (s[i] == '+' || s[i] == '-') && s[i-1] != 'e' && s[i-1] != 'E' {
			return i
		}
	}
	return -1
}

// Real returns the real component. The result must not be mutated.
func (x *Complex) Real() *decimal.Big { return x.re }

// Imag returns the imaginary component. The result must not be mutated.
func (x *Complex) Imag() *decimal.Big { return x.im }

// Clone returns a deep copy.
func (x *Complex) Clone() *Complex {
	return &Complex{rnew().Set(x.re), rnew().Set(x.im)}
}

// IsReal reports whether the imaginary component is exactly zero.
func (x *Complex) IsReal() bool { return isRZero(x.im) }

// IsZero reports whether both components are exactly zero.
func (x *Complex) IsZero() bool { return isRZero(x.re) && isRZero(x.im) }

// IsInt reports whether both components are finite integers.
func (x *Complex) IsInt() bool { return x.re.IsInt() && x.im.IsInt() }

// Equals reports exact componentwise equality. NaN components never compare
// equal to anything, matching the engine's arithmetic ordering.
func (x *Complex) Equals(y *Complex) bool {
	if x.re.IsNaN(0) || x.im.IsNaN(0) || y.re.IsNaN(0) || y.im.IsNaN(0) {
		return false
	}
	return x.re.Cmp(y.re) == 0 && x.im.Cmp(y.im) == 0
}

// ApproxEquals reports whether both components of x and y are within an
// absolute tolerance of 1e-6. It is meant for assertions against
// transcendental results; no production formula relies on it.
func (x *Complex) ApproxEquals(y *Complex) bool {
	if x.re.IsNaN(0) || x.im.IsNaN(0) || y.re.IsNaN(0) || y.im.IsNaN(0) {
		return false
	}
	tol := rnew().SetMantScale(1, 6) // 1e-6
	dr := rnew().Sub(x.re, y.re)
	dr.Abs(dr)
	di := rnew().Sub(x.im, y.im)
	di.Abs(di)
	return dr.Cmp(tol) <= 0 && di.Cmp(tol) <= 0
}

// Well-known values. These are returned as fresh copies at the current
// precision rather than shared package variables, because *decimal.Big is
// mutable and a leaked shared component could be corrupted by a caller.

// Zero returns 0+0i.
func Zero() *Complex { return &Complex{rnew(), rnew()} }

// I returns 0+1i.
func I() *Complex { return &Complex{rnew(), rone()} }

// NegI returns 0-1i.
func NegI() *Complex { return &Complex{rnew(), rnew().SetMantScale(-1, 0)} }

// NaN returns the componentwise quiet NaN.
func NaN() *Complex { return &Complex{rnew().SetNaN(false), rnew().SetNaN(false)} }

// Infinity returns the componentwise positive infinity.
func Infinity() *Complex { return &Complex{rnew().SetInf(false), rnew().SetInf(false)} }
