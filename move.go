package corechess

import "strings"

// MoveType distinguishes how a Move's "to" field and promotion bits should
// be interpreted.
type MoveType uint8

const (
	// Normal covers quiet moves and ordinary captures.
	Normal MoveType = iota
	// Promotion moves carry a promotion piece in the PromotionPiece bits.
	Promotion
	// EnPassant captures the pawn on to^8 instead of the piece on to.
	EnPassant
	// Castling moves encode `to` as the ROOK's square, not the king's
	// destination. This single convention works for both classical chess
	// and Chess960 (spec §3).
	Castling
)

// PromotionPiece identifies the piece a pawn promotes to. The packed 2-bit
// encoding only distinguishes the four promotable piece types.
type PromotionPiece uint8

const (
	PromoKnight PromotionPiece = iota
	PromoBishop
	PromoRook
	PromoQueen
)

// PieceType returns the full PieceType a PromotionPiece denotes.
func (pp PromotionPiece) PieceType() PieceType { return Knight + PieceType(pp) }

// Move is a chess move packed into 16 bits: to (6), from (6), promotion
// piece (2), move type (2). NoMove and NullMove are distinct sentinels.
type Move uint16

// NoMove indicates the absence of a move (e.g. a failed parse).
const NoMove Move = 0xFFFF

// NullMove is the move made by Board.MakeNullMove: it has no from/to/type
// meaning of its own, it is only ever compared against by identity.
const NullMove Move = 0xFFFE

// NewMove builds a Normal/EnPassant/Castling move (no promotion piece).
func NewMove(from, to Square, mt MoveType) Move {
	return Move(uint16(to) | uint16(from)<<6 | uint16(mt)<<14)
}

// NewPromotionMove builds a Promotion move to the given promotion piece.
func NewPromotionMove(from, to Square, promo PromotionPiece) Move {
	return Move(uint16(to) | uint16(from)<<6 | uint16(promo)<<12 | uint16(Promotion)<<14)
}

// To returns the move's destination square. For Castling moves this is the
// rook's square, not the king's landing square (spec §3).
func (m Move) To() Square { return Square(m & 0x3F) }

// From returns the move's origin square.
func (m Move) From() Square { return Square((m >> 6) & 0x3F) }

// PromotionPiece returns the encoded promotion piece. Meaningful only when
// Type() == Promotion.
func (m Move) PromotionPiece() PromotionPiece { return PromotionPiece((m >> 12) & 0x3) }

// Type returns the move's MoveType.
func (m Move) Type() MoveType { return MoveType((m >> 14) & 0x3) }

// IsNone reports whether m is the NoMove sentinel.
func (m Move) IsNone() bool { return m == NoMove }

// IsNull reports whether m is the NullMove sentinel.
func (m Move) IsNull() bool { return m == NullMove }

// String renders the move in UCI long notation for debugging; see
// notation.go's Move2UCI for the notation-layer entry point, which needs
// board context to rewrite standard-chess castling to the king's
// destination square.
func (m Move) String() string {
	if m.IsNone() {
		return "(none)"
	}
	if m.IsNull() {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if m.Type() == Promotion {
		sb.WriteString(strings.ToLower(m.PromotionPiece().PieceType().String()))
	}
	return sb.String()
}

// MaxMoves is the fixed capacity of a MoveList: 218 is the highest known
// legal-move count in any reachable chess position.
const MaxMoves = 256

// MoveList is a fixed-capacity, append-only buffer of moves. Callers own the
// storage; move generation never allocates on the hot path.
type MoveList struct {
	Moves [MaxMoves]Move
	Count int
}

// Push appends a move to the list.
func (l *MoveList) Push(m Move) {
	l.Moves[l.Count] = m
	l.Count++
}

// Slice returns the populated portion of the move list.
func (l *MoveList) Slice() []Move { return l.Moves[:l.Count] }

// Contains reports whether m (compared by from/to/type/promotion) is present
// in the list.
func (l *MoveList) Contains(m Move) bool {
	for i := 0; i < l.Count; i++ {
		if l.Moves[i] == m {
			return true
		}
	}
	return false
}

// PieceSet is a bitmask over piece types, used to restrict move generation
// to a subset of pieces.
type PieceSet uint8

const (
	PieceSetPawn PieceSet = 1 << iota
	PieceSetKnight
	PieceSetBishop
	PieceSetRook
	PieceSetQueen
	PieceSetKing
)

// PieceSetAll generates moves for every piece type.
const PieceSetAll = PieceSetPawn | PieceSetKnight | PieceSetBishop |
	PieceSetRook | PieceSetQueen | PieceSetKing

// Has reports whether pt is included in the set.
func (s PieceSet) Has(pt PieceType) bool {
	switch pt {
	case Pawn:
		return s&PieceSetPawn != 0
	case Knight:
		return s&PieceSetKnight != 0
	case Bishop:
		return s&PieceSetBishop != 0
	case Rook:
		return s&PieceSetRook != 0
	case Queen:
		return s&PieceSetQueen != 0
	case King:
		return s&PieceSetKing != 0
	}
	return false
}

// GenMode selects which subset of legal moves GenerateMoves emits.
type GenMode uint8

const (
	// GenAll emits every legal move.
	GenAll GenMode = iota
	// GenCaptures emits captures (including en passant and capture
	// promotions) and non-capturing push promotions.
	GenCaptures
	// GenQuiets emits the remaining non-capturing moves, including
	// castling but not push promotions, so GenAll is the disjoint union of
	// GenCaptures and GenQuiets (spec §8).
	GenQuiets
)
