package corechess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoardMatchesStartFEN(t *testing.T) {
	b := NewBoard()
	require.Equal(t, StartFEN, b.SerializeFEN(true))
	require.Equal(t, White, b.SideToMove)
	require.Equal(t, NoSquare, b.EPSquare)
	require.Equal(t, "KQkq", b.CastlingRights.String())
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 0 1",
	}
	for _, fen := range fens {
		b, err := ParseFEN(fen)
		require.NoError(t, err, fen)
		require.Equal(t, fen, b.SerializeFEN(true), fen)
	}
}

func TestFENInvalid(t *testing.T) {
	_, err := ParseFEN("not a fen")
	require.ErrorIs(t, err, ErrInvalidFEN)
}

func TestChess960CastlingFEN(t *testing.T) {
	fen := "1rqbkrbn/1ppppp1p/1n6/p1N3p1/8/2P4P/PP1PPPP1/1RQBKRBN w FBfb - 0 1"
	b, err := ParseFEN(fen)
	require.NoError(t, err)
	require.True(t, b.Chess960)
	require.Equal(t, fen, b.SerializeFEN(true))
	require.Equal(t, FileF, b.CastlingRights.RookFile(White, KingSide))
	require.Equal(t, FileB, b.CastlingRights.RookFile(White, QueenSide))
}

func TestEPDRoundTrip(t *testing.T) {
	epd := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -"
	b, err := ParseEPD(epd + " hmvc 3; fmvn 7;")
	require.NoError(t, err)
	require.Equal(t, 3, b.HalfMoveClock)
	require.Equal(t, 7, b.FullMoveNumber)
	require.Equal(t, epd+" hmvc 3; fmvn 7;", b.SerializeEPD())
}

func TestMakeUnmakeRestoresBoard(t *testing.T) {
	b, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	before := b.SerializeFEN(true)
	beforeHash := b.Hash

	var list MoveList
	GenerateMoves(b, PieceSetAll, GenAll, &list)
	require.NotZero(t, list.Count)

	for _, m := range list.Slice() {
		b.MakeMove(m)
		b.UnmakeMove(m)
		require.Equal(t, before, b.SerializeFEN(true))
		require.Equal(t, beforeHash, b.Hash)
	}
}

func TestMakeMoveNeverLeavesMoverInCheck(t *testing.T) {
	b, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	var list MoveList
	GenerateMoves(b, PieceSetAll, GenAll, &list)

	for _, m := range list.Slice() {
		mover := b.SideToMove
		b.MakeMove(m)
		require.False(t, b.IsAttacked(b.KingSquare(mover), b.SideToMove))
		b.UnmakeMove(m)
	}
}

func TestEnPassantCapture(t *testing.T) {
	b, err := ParseFEN("rnbqkbnr/ppp1pppp/8/8/1Pp5/5N2/P1PP1PPP/RNBQKB1R b KQkq b3 0 1")
	require.NoError(t, err)
	require.Equal(t, B3, b.EPSquare)

	m := NewMove(C4, B3, EnPassant)
	b.MakeMove(m)
	require.Equal(t, NoPiece, b.PieceOn(B4))
	require.Equal(t, NewPiece(Pawn, Black), b.PieceOn(B3))
}

func TestInsufficientMaterial(t *testing.T) {
	b, err := ParseFEN("8/8/4k3/8/8/3K4/8/8 w - - 0 1")
	require.NoError(t, err)
	require.True(t, b.IsInsufficientMaterial())

	b, err = ParseFEN("8/8/4k3/8/8/3K1Q2/8/8 w - - 0 1")
	require.NoError(t, err)
	require.False(t, b.IsInsufficientMaterial())
}

func TestOutcomeCheckmate(t *testing.T) {
	// Fool's mate final position, white to move and mated.
	b, err := ParseFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)
	term, result := b.Outcome()
	require.Equal(t, TerminationCheckmate, term)
	require.Equal(t, ResultBlackWin, result)
}
