package corechess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUCIRoundTrip(t *testing.T) {
	b, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	var list MoveList
	GenerateMoves(b, PieceSetAll, GenAll, &list)
	require.NotZero(t, list.Count)

	for _, m := range list.Slice() {
		uci := Move2UCI(b, m)
		parsed, err := ParseUCI(b, uci)
		require.NoError(t, err, uci)
		require.Equal(t, m, parsed, uci)
	}
}

func TestSANRoundTrip(t *testing.T) {
	b, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	var list MoveList
	GenerateMoves(b, PieceSetAll, GenAll, &list)
	require.NotZero(t, list.Count)

	for _, m := range list.Slice() {
		san := Move2SAN(b, m)
		parsed, err := ParseSAN(b, san)
		require.NoError(t, err, san)
		require.Equal(t, m, parsed, san)
	}
}

func TestSANCastlingOnStartingSquare(t *testing.T) {
	b, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	kingSide := NewMove(E1, H1, Castling)
	queenSide := NewMove(E1, A1, Castling)
	require.Equal(t, "O-O", Move2SAN(b, kingSide))
	require.Equal(t, "O-O-O", Move2SAN(b, queenSide))
}

func TestSANDisambiguationByFile(t *testing.T) {
	b, err := ParseFEN("4k3/8/8/8/8/8/2R3R1/2K5 w - - 0 1")
	require.NoError(t, err)

	m := NewMove(C2, E2, Normal)
	san := Move2SAN(b, m)
	require.Equal(t, "Rce2+", san)

	parsed, err := ParseSAN(b, san)
	require.NoError(t, err)
	require.Equal(t, m, parsed)
}

func TestSANDisambiguationByFullSquare(t *testing.T) {
	b, err := ParseFEN("2N1N3/p7/6k1/1p6/2N1N3/2R5/R3Q1P1/2R3K1 w - - 0 1")
	require.NoError(t, err)

	m := NewMove(E4, D6, Normal)
	san := Move2SAN(b, m)
	require.Equal(t, "Ne4d6", san)

	parsed, err := ParseSAN(b, san)
	require.NoError(t, err)
	require.Equal(t, m, parsed)
}

func TestLANRoundTrip(t *testing.T) {
	b, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	var list MoveList
	GenerateMoves(b, PieceSetAll, GenAll, &list)

	for _, m := range list.Slice() {
		lan := Move2LAN(b, m)
		parsed, err := ParseLAN(b, lan)
		require.NoError(t, err, lan)
		require.Equal(t, m, parsed, lan)
	}
}

func TestParseUCICastlingChess960(t *testing.T) {
	fen := "1rqbkrbn/1ppppp1p/1n6/p1N3p1/8/2P4P/PP1PPPP1/1RQBKRBN w FBfb - 0 1"
	b, err := ParseFEN(fen)
	require.NoError(t, err)

	// King on e1-equivalent file... in this Chess960 layout the king sits on
	// the e-file (index 4): encode as king-captures-own-rook.
	kingSq := b.KingSquare(White)
	rookFile := b.CastlingRights.RookFile(White, KingSide)
	rookSq := squareAt(rookFile, kingSq.Rank())

	uci := kingSq.String() + rookSq.String()
	m, err := ParseUCI(b, uci)
	require.NoError(t, err)
	require.Equal(t, Castling, m.Type())
	require.Equal(t, rookSq, m.To())
}
