package bigcomplex

// The rounding family applies the engine operation to each component
// independently; there is no cross-component coupling.

// Round rounds both components to integers with the package rounding mode
// (ties away from zero by default).
func (x *Complex) Round() *Complex {
	re := rnew().Set(x.re)
	im := rnew().Set(x.im)
	return &Complex{re.RoundToInt(), im.RoundToInt()}
}

// RoundTo rounds both components to the given number of decimal places,
// delegating the scale parameter unchanged to the engine.
func (x *Complex) RoundTo(places int) *Complex {
	re := rnew().Set(x.re)
	im := rnew().Set(x.im)
	return &Complex{re.Quantize(places), im.Quantize(places)}
}

// Ceil rounds both components toward positive infinity.
func (x *Complex) Ceil() *Complex {
	return &Complex{ctx.Ceil(rnew(), x.re), ctx.Ceil(rnew(), x.im)}
}

// Floor rounds both components toward negative infinity.
func (x *Complex) Floor() *Complex {
	return &Complex{ctx.Floor(rnew(), x.re), ctx.Floor(rnew(), x.im)}
}

// ToSignificantDigits rounds both components to d significant digits.
func (x *Complex) ToSignificantDigits(d int) *Complex {
	re := rnew().Set(x.re)
	im := rnew().Set(x.im)
	return &Complex{re.Round(d), im.Round(d)}
}
