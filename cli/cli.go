// Package cli renders bitboards and positions as text, mainly to visualize
// the engine during development and testing.
package cli

import (
	"strings"

	corechess "github.com/arborchess/corechess"
)

// pieceSymbols indexes by Piece (pt*2+color): white pieces first, black
// second, matching corechess.Piece's own packing.
var pieceSymbols = [12]rune{
	'♙', '♟', '♘', '♞', '♗', '♝', '♖', '♜', '♕', '♛', '♔', '♚',
}

// FormatBitboard renders a single bitboard as an 8x8 grid, marking set
// squares with pt/c's symbol.
func FormatBitboard(bb corechess.Bitboard, pt corechess.PieceType, c corechess.Color) string {
	var sb strings.Builder
	symbol := pieceSymbols[corechess.NewPiece(pt, c)]

	for rank := corechess.Rank(7); rank >= 0; rank-- {
		sb.WriteByte(byte(rank) + 1 + '0')
		sb.WriteString("  ")
		for file := corechess.FileA; file <= corechess.FileH; file++ {
			sq := corechess.Square(int(rank)*8 + int(file))
			r := '.'
			if bb.Test(sq) {
				r = symbol
			}
			sb.WriteRune(r)
			sb.WriteString("  ")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a  b  c  d  e  f  g  h\n")
	return sb.String()
}

// FormatBoard renders a full position: the 8x8 piece grid followed by side
// to move, en passant target, and castling rights.
func FormatBoard(b *corechess.Board) string {
	var sb strings.Builder

	for rank := corechess.Rank(7); rank >= 0; rank-- {
		sb.WriteByte(byte(rank) + 1 + '0')
		sb.WriteString("  ")
		for file := corechess.FileA; file <= corechess.FileH; file++ {
			sq := corechess.Square(int(rank)*8 + int(file))
			p := b.PieceOn(sq)
			r := rune('.')
			if p != corechess.NoPiece {
				r = pieceSymbols[p]
			}
			sb.WriteRune(r)
			sb.WriteString("  ")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a  b  c  d  e  f  g  h\nActive color: ")

	if b.SideToMove == corechess.White {
		sb.WriteString("white\nEn passant: ")
	} else {
		sb.WriteString("black\nEn passant: ")
	}

	if b.EPSquare == corechess.NoSquare {
		sb.WriteString("none\nCastling rights: ")
	} else {
		sb.WriteString(b.EPSquare.String())
		sb.WriteString("\nCastling rights: ")
	}
	sb.WriteString(b.CastlingRights.String())
	sb.WriteByte('\n')

	return sb.String()
}
