package corechess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitboardSetClearTest(t *testing.T) {
	var bb Bitboard
	bb = bb.Set(E4)
	require.True(t, bb.Test(E4))
	require.False(t, bb.Test(D4))

	bb = bb.Clear(E4)
	require.False(t, bb.Test(E4))
	require.True(t, bb.Empty())
}

func TestBitboardCount(t *testing.T) {
	bb := SquareBB(A1) | SquareBB(H1) | SquareBB(A8) | SquareBB(H8)
	require.Equal(t, 4, bb.Count())
}

func TestBitboardLSBMSB(t *testing.T) {
	bb := SquareBB(B2) | SquareBB(G7)
	require.Equal(t, B2, bb.LSB())
	require.Equal(t, G7, bb.MSB())
}

func TestBitboardPopLSB(t *testing.T) {
	bb := SquareBB(C3) | SquareBB(F6)
	sq, rest := bb.PopLSB()
	require.Equal(t, C3, sq)
	require.Equal(t, F6, rest.LSB())
	require.Equal(t, 1, rest.Count())
}

func TestBitboardShifts(t *testing.T) {
	bb := SquareBB(E4)
	require.Equal(t, SquareBB(E5), bb.ShiftNorth())
	require.Equal(t, SquareBB(E3), bb.ShiftSouth())
	require.Equal(t, SquareBB(F4), bb.ShiftEast())
	require.Equal(t, SquareBB(D4), bb.ShiftWest())

	// File wrap must not bleed across the board edge.
	hFile := SquareBB(H4)
	require.True(t, hFile.ShiftEast().Empty())
	aFile := SquareBB(A4)
	require.True(t, aFile.ShiftWest().Empty())
}
