package bigcomplex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The integer powers of i must follow the exact 4-cycle 1, i, -1, -i with
// period 4, forwards and backwards.
func TestPowOfIFourCycle(t *testing.T) {
	cycle := []*Complex{tp("1"), tp("i"), tp("-1"), tp("-i")}
	for n := -8; n <= 8; n++ {
		want := cycle[((n%4)+4)%4]
		got := Pow(I(), n)
		require.True(t, got.Equals(want), "i^%d: got %s, want %s", n, got, want)
	}
}

func TestPowImagIntFastPath(t *testing.T) {
	// (2i)^2 = -4, (2i)^3 = -8i, (-2i)^3 = 8i
	require.True(t, Pow("2i", 2).Equals(tp("-4")))
	require.True(t, Pow("2i", 3).Equals(tp("-8i")))
	require.True(t, Pow("-2i", 3).Equals(tp("8i")))
	// exact zeros in the dormant component, not residue
	require.True(t, isRZero(Pow("2i", 2).Imag()))
	require.True(t, isRZero(Pow("2i", 3).Real()))
}

func TestPowSquareMatchesMul(t *testing.T) {
	for _, s := range []string{"1+1i", "3.25-1.75i", "-2+0.5i", "0.001+1000i"} {
		z := tp(s)
		requireApprox(t, z.Mul(z), z.Pow(tp("2")))
	}
}

func TestPowGeneral(t *testing.T) {
	// 2^0.5 = sqrt(2)
	requireApprox(t, tp("1.4142135623730951"), Pow(2, 0.5))
	// (1+i)^2 = 2i
	requireApprox(t, tp("2i"), Pow("1+1i", 2))
	// i^i = e^(-pi/2), real
	requireApprox(t, tp("0.20787957635076191"), Pow(I(), I()))
}

func TestEulerIdentity(t *testing.T) {
	e := Exp(1)
	iPi := &Complex{rnew(), rpi()}
	requireApprox(t, tp("-1"), e.Pow(iPi))
}

func TestExpLnRoundTrip(t *testing.T) {
	// generic points away from the branch cut
	for _, s := range []string{"0.75+0.5i", "2-3i", "-1+2i"} {
		z := tp(s)
		requireApprox(t, z, z.Ln().Exp())
	}
}

func TestLn(t *testing.T) {
	// ln(-1) = (0, pi)
	requireApprox(t, &Complex{rnew(), rpi()}, Ln(-1))
	// ln(1) = 0
	requireApprox(t, Zero(), Ln(1))
	// ln(e) = 1
	requireApprox(t, tp("1"), Exp(1).Ln())
}

// ln(0) pins the engine's semantics: -Infinity real part, zero argument.
func TestLnZero(t *testing.T) {
	z := Ln(0)
	require.True(t, z.re.IsInf(-1), "got %s", z)
	require.True(t, isRZero(z.im), "got %s", z)
}

func TestLogBase(t *testing.T) {
	requireApprox(t, tp("3"), Log(8, 2))
	requireApprox(t, tp("2"), Log10(100))
	requireApprox(t, tp("2"), tp("100").Log10())
}

func TestSqrt(t *testing.T) {
	// exact real-axis special cases
	require.True(t, Sqrt(-1).Equals(I()))
	require.True(t, Sqrt(4).Equals(tp("2")))
	require.True(t, Sqrt(-9).Equals(tp("3i")))
	require.True(t, Sqrt(0).IsZero())

	// general branch: sqrt(2i) = 1+i
	requireApprox(t, tp("1+1i"), Sqrt("2i"))
	// principal root has non-negative real part
	z := Sqrt("-3+4i")
	requireApprox(t, tp("1+2i"), z)
	require.True(t, z.re.Sign() >= 0)

	for _, s := range []string{"3.25-1.75i", "-2+0.5i"} {
		w := tp(s)
		requireApprox(t, w, w.Sqrt().Mul(w.Sqrt()))
	}
}
