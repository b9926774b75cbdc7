// Package corechess implements a bitboard-based chess position
// representation, a legal move generator, and the notation and game-record
// parsing layers built on top of them.
package corechess

import "fmt"

// Square is a board square index in 0..63, with NoSquare as a sentinel for
// "no square". file = index & 7, rank = index >> 3.
type Square int8

// NoSquare is returned wherever a square is absent (e.g. no en passant
// target).
const NoSquare Square = 64

// Square constants, a1..h8, laid out rank-major starting at the first rank.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

var squareNames = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// File returns the square's file, 0 (a) through 7 (h).
func (s Square) File() File { return File(s & 7) }

// Rank returns the square's rank, 0 (first) through 7 (eighth).
func (s Square) Rank() Rank { return Rank(s >> 3) }

// String renders the square in algebraic notation ("a1".."h8"), or "-" for
// NoSquare.
func (s Square) String() string {
	if s == NoSquare || s < 0 || s > 63 {
		return "-"
	}
	return squareNames[s]
}

// ParseSquare parses an algebraic square ("a1".."h8"). "-" parses to
// NoSquare.
func ParseSquare(s string) (Square, error) {
	if s == "-" {
		return NoSquare, nil
	}
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("%w: square %q", ErrInvalidSyntax, s)
	}
	return Square(int(s[1]-'1')*8 + int(s[0]-'a')), nil
}

// FlipVertical mirrors the square across the board's horizontal midline
// (a1 <-> a8, e4 <-> e5, ...).
func (s Square) FlipVertical() Square { return s ^ 56 }

// RelativeTo mirrors the square vertically when c is Black, leaving it
// unchanged for White. Used to express color-relative ranks (e.g. "the
// pawn's starting rank") independent of side.
func (s Square) RelativeTo(c Color) Square {
	if c == Black {
		return s.FlipVertical()
	}
	return s
}

// IsLight reports whether the square is a light square.
func (s Square) IsLight() bool { return (int(s.File())+int(s.Rank()))%2 != 0 }

// IsDark reports whether the square is a dark square.
func (s Square) IsDark() bool { return !s.IsLight() }

// IsBackRank reports whether the square lies on color c's back rank (rank 1
// for White, rank 8 for Black).
func (s Square) IsBackRank(c Color) bool {
	if c == White {
		return s.Rank() == Rank1
	}
	return s.Rank() == Rank8
}

// Distance returns the Chebyshev distance (king-move distance) between two
// squares.
func (s Square) Distance(o Square) int {
	df := int(s.File()) - int(o.File())
	dr := int(s.Rank()) - int(o.Rank())
	if df < 0 {
		df = -df
	}
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}

// File is a board file, 0 (a) through 7 (h).
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	NoFile File = -1
)

// String renders the file as its lower-case letter, or "-" for NoFile.
func (f File) String() string {
	if f < FileA || f > FileH {
		return "-"
	}
	return string(rune('a' + f))
}

// Rank is a board rank, 0 (first) through 7 (eighth).
type Rank int8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// Color is a side to move or piece color.
type Color int8

const (
	White Color = iota
	Black
	NoColor Color = -1
)

// Opposite returns the other color.
func (c Color) Opposite() Color { return c ^ 1 }

// String renders the color as "w" or "b".
func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// PieceType identifies a piece kind independent of color.
type PieceType int8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType PieceType = -1
)

var pieceTypeLetters = [6]byte{'P', 'N', 'B', 'R', 'Q', 'K'}

// String renders the piece type as its upper-case letter.
func (pt PieceType) String() string {
	if pt < Pawn || pt > King {
		return "-"
	}
	return string(pieceTypeLetters[pt])
}

// Piece packs a PieceType and a Color into one small value.
type Piece int8

// NoPiece is the sentinel for an empty square.
const NoPiece Piece = -1

// NewPiece builds a Piece from its type and color.
func NewPiece(pt PieceType, c Color) Piece {
	if pt == NoPieceType || c == NoColor {
		return NoPiece
	}
	return Piece(int(pt)*2 + int(c))
}

// Type returns the piece's type.
func (p Piece) Type() PieceType {
	if p == NoPiece {
		return NoPieceType
	}
	return PieceType(p / 2)
}

// Color returns the piece's color.
func (p Piece) Color() Color {
	if p == NoPiece {
		return NoColor
	}
	return Color(p % 2)
}

var pieceLetters = [12]byte{
	'P', 'p', 'N', 'n', 'B', 'b', 'R', 'r', 'Q', 'q', 'K', 'k',
}

// Letter renders the piece as the single-letter board-notation character:
// upper case for White, lower case for Black.
func (p Piece) Letter() byte {
	if p == NoPiece {
		return '.'
	}
	return pieceLetters[p]
}

// ParsePieceLetter parses a single board-notation piece letter.
func ParsePieceLetter(c byte) (Piece, error) {
	for i, l := range pieceLetters {
		if l == c {
			return Piece(i), nil
		}
	}
	return NoPiece, fmt.Errorf("%w: piece letter %q", ErrInvalidSyntax, string(c))
}

// String renders the piece as its board-notation letter.
func (p Piece) String() string { return string(p.Letter()) }
