package bigcomplex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSinCosPythagorean(t *testing.T) {
	for _, s := range []string{"0.5", "0.5+0.25i", "-1+2i", "2-1i", "0"} {
		z := tp(s)
		s2 := z.Sin().Mul(z.Sin())
		c2 := z.Cos().Mul(z.Cos())
		requireApprox(t, tp("1"), s2.Add(c2))
	}
}

func TestSinCosReal(t *testing.T) {
	// real inputs stay on the real axis
	z := Sin("0.5")
	require.True(t, z.IsReal(), "sin(0.5) = %s", z)
	requireApprox(t, tp("0.4794255386"), z)
	requireApprox(t, tp("0.8775825619"), Cos("0.5"))
	requireApprox(t, tp("0.5463024898"), Tan("0.5"))
}

func TestSinComplex(t *testing.T) {
	// sin(1+i) = (sin(1)cosh(1), cos(1)sinh(1))
	requireApprox(t, tp("1.2984575814+0.6349639148i"), Sin("1+1i"))
	requireApprox(t, tp("0.8337300251-0.9888977058i"), Cos("1+1i"))
}

func TestReciprocalTrig(t *testing.T) {
	z := tp("0.75+0.5i")
	requireApprox(t, tp("1"), z.Csc().Mul(z.Sin()))
	requireApprox(t, tp("1"), z.Sec().Mul(z.Cos()))
	requireApprox(t, tp("1"), z.Cot().Mul(z.Tan()))
}

// asin(2) exercises the branch correction on the real axis beyond [-1, 1].
func TestAsinBeyondRealAxis(t *testing.T) {
	requireApprox(t, tp("1.5707963267948966192-1.3169578969248167086i"), Asin(2))
	requireApprox(t, tp("-1.5707963267948966192+1.3169578969248167086i"), Asin(-2))
}

func TestAsinBranchQuadrants(t *testing.T) {
	// inside [-1, 1]: purely real result
	requireApprox(t, tp("0.5235987755982989"), Asin("0.5"))
	// purely imaginary inputs: sign follows the input
	requireApprox(t, tp("0.88137358701954305i"), Asin(I()))
	requireApprox(t, tp("-0.88137358701954305i"), Asin(NegI()))
	// round trip through sin on a generic point
	z := tp("0.3+0.4i")
	requireApprox(t, z, z.Asin().Sin())
}

func TestAcos(t *testing.T) {
	requireApprox(t, tp("1.0471975511965977"), Acos("0.5"))
	// acos = pi/2 - asin, so acos(2) sits on the positive imaginary side
	requireApprox(t, tp("1.3169578969248167i"), Acos(2))
	z := tp("0.3+0.4i")
	requireApprox(t, z, z.Acos().Cos())
}

func TestAtan(t *testing.T) {
	requireApprox(t, tp("0.7853981633974483"), Atan(1))
	requireApprox(t, tp("1.0172219678978514+0.4023594781085251i"), Atan("1+1i"))
	z := tp("0.3+0.4i")
	requireApprox(t, z, z.Atan().Tan())
}

func TestInverseReciprocalTrig(t *testing.T) {
	// acsc(z) = asin(1/z), asec(z) = acos(1/z), acot(z) = atan(1/z)
	require.True(t, Acsc(2).ApproxEquals(Asin("0.5")))
	require.True(t, Asec(2).ApproxEquals(Acos("0.5")))
	require.True(t, Acot(2).ApproxEquals(Atan("0.5")))
}
