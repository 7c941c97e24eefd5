package bigcomplex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRound(t *testing.T) {
	// ties away from zero, each component independently
	require.True(t, tp("2.5-2.5i").Round().Equals(tp("3-3i")))
	require.True(t, tp("1.4+1.5i").Round().Equals(tp("1+2i")))
	require.True(t, tp("-1.4-1.5i").Round().Equals(tp("-1-2i")))
}

func TestRoundTo(t *testing.T) {
	require.True(t, tp("2.25-2.35i").RoundTo(1).Equals(tp("2.3-2.4i")))
	require.True(t, tp("0.12345+9.87654i").RoundTo(3).Equals(tp("0.123+9.877i")))
}

func TestCeilFloor(t *testing.T) {
	z := tp("2.3-2.3i")
	require.True(t, z.Ceil().Equals(tp("3-2i")))
	require.True(t, z.Floor().Equals(tp("2-3i")))

	// integers are fixed points
	w := tp("4-7i")
	require.True(t, w.Ceil().Equals(w))
	require.True(t, w.Floor().Equals(w))
}

func TestToSignificantDigits(t *testing.T) {
	z := tp("3.14159+2.71828i")
	require.True(t, z.ToSignificantDigits(3).Equals(tp("3.14+2.72i")))
	require.True(t, z.ToSignificantDigits(1).Equals(tp("3+3i")))
}

func TestRoundingDoesNotMutate(t *testing.T) {
	z := tp("2.5-2.5i")
	_ = z.Round()
	_ = z.Ceil()
	_ = z.Floor()
	_ = z.ToSignificantDigits(1)
	require.True(t, z.Equals(tp("2.5-2.5i")))
}
