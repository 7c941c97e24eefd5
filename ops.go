package bigcomplex

import "github.com/ericlagergren/decimal"

// Package-level convenience wrappers. Each coerces its operands with
// ToComplex and delegates to the canonical method, so every formula is
// implemented exactly once.

func Add(a, b any) *Complex { return ToComplex(a).Add(ToComplex(b)) }
func Sub(a, b any) *Complex { return ToComplex(a).Sub(ToComplex(b)) }
func Mul(a, b any) *Complex { return ToComplex(a).Mul(ToComplex(b)) }
func Div(a, b any) *Complex { return ToComplex(a).Div(ToComplex(b)) }
func Recip(a any) *Complex { return ToComplex(a).Recip() }
func Neg(a any) *Complex { return ToComplex(a).Neg() }
func Conj(a any) *Complex { return ToComplex(a).Conj() }
func Abs(a any) *decimal.Big { return ToComplex(a).Abs() }
func Arg(a any) *decimal.Big { return ToComplex(a).Arg() }
func Lerp(a, b, t any) *Complex { return ToComplex(a).Lerp(ToComplex(b), t) }

func Pow(a, b any) *Complex { return ToComplex(a).Pow(ToComplex(b)) }
func Exp(a any) *Complex { return ToComplex(a).Exp() }
func Sqrt(a any) *Complex { return ToComplex(a).Sqrt() }
func Ln(a any) *Complex { return ToComplex(a).Ln() }
func Log(a, base any) *Complex { return ToComplex(a).Log(ToComplex(base)) }
func Log10(a any) *Complex { return ToComplex(a).Log10() }

func Sin(a any) *Complex { return ToComplex(a).Sin() }
func Cos(a any) *Complex { return ToComplex(a).Cos() }
func Tan(a any) *Complex { return ToComplex(a).Tan() }
func Csc(a any) *Complex { return ToComplex(a).Csc() }
func Sec(a any) *Complex { return ToComplex(a).Sec() }
func Cot(a any) *Complex { return ToComplex(a).Cot() }
func Asin(a any) *Complex { return ToComplex(a).Asin() }
func Acos(a any) *Complex { return ToComplex(a).Acos() }
func Atan(a any) *Complex { return ToComplex(a).Atan() }
func Acsc(a any) *Complex { return ToComplex(a).Acsc() }
func Asec(a any) *Complex { return ToComplex(a).Asec() }
func Acot(a any) *Complex { return ToComplex(a).Acot() }

func Sinh(a any) *Complex { return ToComplex(a).Sinh() }
func Cosh(a any) *Complex { return ToComplex(a).Cosh() }
func Tanh(a any) *Complex { return ToComplex(a).Tanh() }
func Csch(a any) *Complex { return ToComplex(a).Csch() }
func Sech(a any) *Complex { return ToComplex(a).Sech() }
func Coth(a any) *Complex { return ToComplex(a).Coth() }
func Asinh(a any) *Complex { return ToComplex(a).Asinh() }
func Acosh(a any) *Complex { return ToComplex(a).Acosh() }
func Atanh(a any) *Complex { return ToComplex(a).Atanh() }
func Acsch(a any) *Complex { return ToComplex(a).Acsch() }
func Asech(a any) *Complex { return ToComplex(a).Asech() }
func Acoth(a any) *Complex { return ToComplex(a).Acoth() }

func Round(a any) *Complex { return ToComplex(a).Round() }
func Ceil(a any) *Complex { return ToComplex(a).Ceil() }
func Floor(a any) *Complex { return ToComplex(a).Floor() }

func ToSignificantDigits(a any, d int) *Complex { return ToComplex(a).ToSignificantDigits(d) }

// Equals reports exact componentwise equality after coercion.
func Equals(a, b any) bool { return ToComplex(a).Equals(ToComplex(b)) }

// ApproxEquals reports componentwise equality within 1e-6 after coercion.
func ApproxEquals(a, b any) bool { return ToComplex(a).ApproxEquals(ToComplex(b)) }
