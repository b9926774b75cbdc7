package corechess

import "errors"

// Sentinel errors returned by the parsing and notation layers. The core
// never panics on malformed external input (spec §7); every fallible public
// entry point other than Parser.ReadGames (which reports a *ParseError)
// wraps one of these with fmt.Errorf("%w: ...", ...) so callers can still
// match with errors.Is.
var (
	// ErrInvalidSyntax is returned when textual input does not match the
	// grammar of the format being parsed.
	ErrInvalidSyntax = errors.New("corechess: invalid syntax")
	// ErrInvalidFEN is returned by ParseFEN/ParseEPD on malformed input.
	ErrInvalidFEN = errors.New("corechess: invalid FEN")
	// ErrInvalidMove is returned by ParseUCI on a move that cannot be
	// decoded against the board.
	ErrInvalidMove = errors.New("corechess: invalid move")
	// ErrAmbiguousSAN is returned by ParseSAN when a token matches more than
	// one legal move, or no legal move at all.
	ErrAmbiguousSAN = errors.New("corechess: ambiguous or unmatched SAN move")
)
