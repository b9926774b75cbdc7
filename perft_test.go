package corechess_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	corechess "github.com/arborchess/corechess"
	"github.com/arborchess/corechess/internal/perft"
)

// TestPerftLaws checks the node counts of the legal-move tree, to the bit,
// from a handful of positions known to stress every generator edge case:
// pins, en passant, castling (including Chess960), promotions and
// underpromotions, and discovered/double check.
func TestPerftLaws(t *testing.T) {
	cases := []struct {
		name  string
		fen   string
		depth int
		nodes uint64
	}{
		{"start", corechess.StartFEN, 6, 119060324},
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 5, 193690690},
		{"kp-vs-r", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 6, 11030083},
		{"pppp1ppp", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 5, 15833292},
		{"rnbq1k1r", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 0 1", 5, 89941194},
		{"r4rk1", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 1", 5, 164075551},
		{"chess960", "1rqbkrbn/1ppppp1p/1n6/p1N3p1/8/2P4P/PP1PPPP1/1RQBKRBN w FBfb - 0 1", 6, 191762235},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			if testing.Short() && c.depth >= 6 {
				t.Skip("skipping deep perft in short mode")
			}
			b, err := corechess.ParseFEN(c.fen)
			require.NoError(t, err, c.fen)
			require.Equal(t, c.nodes, perft.Count(b, c.depth))
		})
	}
}

func TestPerftDivideSumsToCount(t *testing.T) {
	b, err := corechess.ParseFEN(corechess.StartFEN)
	require.NoError(t, err)

	const depth = 4
	div := perft.Divide(b, depth)

	var sum uint64
	for _, n := range div {
		sum += n
	}
	require.Equal(t, perft.Count(b, depth), sum)
}
