// Package perft walks the move-generation tree of a position to a fixed
// depth, counting leaf nodes (and, in verbose mode, per-category move
// statistics). It exists to validate movegen.go against known node counts,
// not to measure engine playing strength.
package perft

import (
	corechess "github.com/arborchess/corechess"
)

// Count walks the legal-move tree from b to the given depth and returns the
// number of leaf positions reached. depth 0 counts the root itself as one
// node; depth 1 counts the legal moves from the root.
func Count(b *corechess.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var list corechess.MoveList
	corechess.GenerateMoves(b, corechess.PieceSetAll, corechess.GenAll, &list)

	if depth == 1 {
		return uint64(list.Count)
	}

	var nodes uint64
	for _, m := range list.Slice() {
		b.MakeMove(m)
		nodes += Count(b, depth-1)
		b.UnmakeMove(m)
	}
	return nodes
}

// Divide reports, for each legal root move, the subtree node count at
// depth-1 below it — the standard perft-divide debugging aid for finding
// which branch of the move tree disagrees with a reference engine.
func Divide(b *corechess.Board, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth < 1 {
		return out
	}

	var list corechess.MoveList
	corechess.GenerateMoves(b, corechess.PieceSetAll, corechess.GenAll, &list)

	for _, m := range list.Slice() {
		uci := corechess.Move2UCI(b, m)
		b.MakeMove(m)
		out[uci] = Count(b, depth-1)
		b.UnmakeMove(m)
	}
	return out
}

// Stats accumulates the per-category move counts perftVerbose-style tools
// report: total leaf nodes plus a breakdown of how many of the moves played
// along the way were captures, en passant captures, castles, promotions,
// checks, double checks, or checkmates.
type Stats struct {
	Nodes        uint64
	Captures     uint64
	EPCaptures   uint64
	Castles      uint64
	Promotions   uint64
	Checks       uint64
	DoubleChecks uint64
	Checkmates   uint64
}

// CountVerbose behaves like Count but also tallies Stats across every move
// played while walking the tree, including at the leaves.
func CountVerbose(b *corechess.Board, depth int, s *Stats) uint64 {
	if depth == 0 {
		return 1
	}

	var list corechess.MoveList
	corechess.GenerateMoves(b, corechess.PieceSetAll, corechess.GenAll, &list)

	var nodes uint64
	for _, m := range list.Slice() {
		classify(b, m, s)

		b.MakeMove(m)
		if b.InCheck() {
			s.Checks++
			var replies corechess.MoveList
			corechess.GenerateMoves(b, corechess.PieceSetAll, corechess.GenAll, &replies)
			if replies.Count == 0 {
				s.Checkmates++
			}
			if doubleCheck(b) {
				s.DoubleChecks++
			}
		}

		nodes += CountVerbose(b, depth-1, s)
		b.UnmakeMove(m)
	}
	return nodes
}

func classify(b *corechess.Board, m corechess.Move, s *Stats) {
	if m.Type() != corechess.Castling && b.PieceOn(m.To()) != corechess.NoPiece {
		s.Captures++
	}
	switch m.Type() {
	case corechess.EnPassant:
		s.EPCaptures++
		s.Captures++
	case corechess.Castling:
		s.Castles++
	case corechess.Promotion:
		s.Promotions++
	}
}

func doubleCheck(b *corechess.Board) bool {
	us := b.SideToMove
	kingSq := b.KingSquare(us)
	return b.AttackersTo(kingSq, us.Opposite()).Count() > 1
}
