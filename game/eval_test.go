package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	// 2r 1b --
	// 3r -- --
	// -- -- 1b
	b := NewMutableBoard(3)
	b.Set(0, 2, Red)
	b.Set(1, 1, Blue)
	b.Set(3, 3, Red)
	b.Set(8, 1, Blue)

	t.Run("scoring held squares", func(t *testing.T) {
		require.Equal(t, 0, EvaluateMaterial(b, Red))
		b.Set(4, 1, Red)
		defer b.Set(4, 0, None)

		require.Equal(t, 1, EvaluateMaterial(b, Red))
		require.Equal(t, -1, EvaluateMaterial(b, Blue), "Score should be symmetric")
	})

	t.Run("scoring spots", func(t *testing.T) {
		require.Equal(t, 3, EvaluateSpots(b, Red))
		require.Equal(t, -3, EvaluateSpots(b, Blue))
	})

	t.Run("breaking material ties on spots", func(t *testing.T) {
		require.Equal(t, 3, EvaluateSquaresAndSpots(b, Red))
		b.Set(4, 1, Blue)
		defer b.Set(4, 0, None)

		// weight is 4*9+1 = 37
		require.Equal(t, -37+2, EvaluateSquaresAndSpots(b, Red))
	})

	t.Run("ignoring everything but the result", func(t *testing.T) {
		require.Equal(t, 0, EvaluateTerminalOnly(b, Red))
		require.Equal(t, 0, EvaluateTerminalOnly(b, Blue))
	})
}

func TestColor(t *testing.T) {
	require.Equal(t, Blue, Red.Opposite())
	require.Equal(t, Red, Blue.Opposite())
	require.Equal(t, None, None.Opposite())
	require.Equal(t, "red", Red.String())

	c, ok := ParseColor("b")
	require.True(t, ok)
	require.Equal(t, Blue, c)
	_, ok = ParseColor("green")
	require.False(t, ok)
}
