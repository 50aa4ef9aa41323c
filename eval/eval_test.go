package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyvernchess/wyvern/board"
)

func TestEvaluateStartingPositionIsSymmetric(t *testing.T) {
	b := board.Start()
	assert.Equal(t, float32(0), Evaluate(b))
}

func TestEvaluateFavorsExtraMaterialForSideToMove(t *testing.T) {
	b, err := board.ParseFEN("4k3/8/8/8/8/8/8/4KQ2 w - - 0 1")
	require.NoError(t, err)
	assert.Greater(t, Evaluate(b), float32(0))
}

func TestEvaluateFlipsSignWithSideToMove(t *testing.T) {
	white, err := board.ParseFEN("4k3/8/8/8/8/8/8/4KQ2 w - - 0 1")
	require.NoError(t, err)
	black, err := board.ParseFEN("4k3/8/8/8/8/8/8/4KQ2 b - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, Evaluate(white), -Evaluate(black))
}

func TestEvaluateMirrorsPieceSquareTableForBlack(t *testing.T) {
	whiteKnightCentral, err := board.ParseFEN("4k3/8/8/3N4/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	blackKnightCentral, err := board.ParseFEN("4k3/8/8/3n4/8/8/8/4K3 b - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, Evaluate(whiteKnightCentral), Evaluate(blackKnightCentral))
}
