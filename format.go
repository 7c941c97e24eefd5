package bigcomplex

import (
	"encoding/json"

	"github.com/ericlagergren/decimal"
)

// String renders x in human-readable form: purely real values as the real
// component alone, purely imaginary values as "<im>i", and mixed values as
// "<re> + <im>i" or "<re> - <im>i". A unit imaginary coefficient is rendered
// as "i"/"-i" without a numeral.
func (x *Complex) String() string {
	if isRZero(x.im) {
		return rstr(x.re)
	}
	if isRZero(x.re) {
		if isROne(x.im) {
			return "i"
		}
		if isRNegOne(x.im) {
			return "-i"
		}
		return rstr(x.im) + "i"
	}
	abs := rnew().CopyAbs(x.im)
	op := " + "
	if x.im.Signbit() {
		op = " - "
	}
	if isROne(abs) {
		return rstr(x.re) + op + "i"
	}
	return rstr(x.re) + op + rstr(abs) + "i"
}

// rstr renders a component with trailing zeros reduced away, so arithmetic
// scale artifacts ("1.00") do not leak into the human-readable form.
func rstr(v *decimal.Big) string {
	if !v.IsFinite() {
		return v.String()
	}
	r := rnew().Set(v)
	return r.Reduce().String()
}

func isROne(v *decimal.Big) bool { return v.IsFinite() && v.Cmp(rone()) == 0 }

func isRNegOne(v *decimal.Big) bool {
	return v.IsFinite() && v.Cmp(rnew().SetMantScale(-1, 0)) == 0
}

type complexJSON struct {
	Re string `json:"re"`
	Im string `json:"im"`
}

// MarshalJSON encodes both components as exact decimal strings, so finite
// values round-trip without loss.
func (x *Complex) MarshalJSON() ([]byte, error) {
	return json.Marshal(complexJSON{Re: x.re.String(), Im: x.im.String()})
}

// UnmarshalJSON decodes the representation produced by MarshalJSON.
func (x *Complex) UnmarshalJSON(data []byte) error {
	var p complexJSON
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	re, err := toReal(p.Re)
	if err != nil {
		return err
	}
	im, err := toReal(p.Im)
	if err != nil {
		return err
	}
	x.re, x.im = re, im
	return nil
}

// MarshalText renders x with String, so the type composes with text-based
// encoders.
func (x *Complex) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText parses any literal form accepted by Parse.
func (x *Complex) UnmarshalText(text []byte) error {
	z, err := Parse(string(text))
	if err != nil {
		return err
	}
	x.re, x.im = z.re, z.im
	return nil
}

// Complex128 returns x as a native complex128. The conversion is lossy and
// meant for display and diagnostics only; no formula in this package uses it.
func (x *Complex) Complex128() complex128 {
	re, _ := x.re.Float64()
	im, _ := x.im.Float64()
	return complex(re, im)
}
