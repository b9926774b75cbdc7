package corechess

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseErrorCode enumerates the ways a game-record stream can fail to parse
// (spec §4.7, §7).
type ParseErrorCode uint8

const (
	ErrCodeNone ParseErrorCode = iota
	ErrCodeStringTooLong
	ErrCodeUnterminatedHeaderBracket
	ErrCodeUnterminatedHeaderQuote
	ErrCodePrematureEOF
)

func (c ParseErrorCode) String() string {
	switch c {
	case ErrCodeNone:
		return "none"
	case ErrCodeStringTooLong:
		return "string exceeded maximum length"
	case ErrCodeUnterminatedHeaderBracket:
		return "unterminated header bracket"
	case ErrCodeUnterminatedHeaderQuote:
		return "unterminated header quote"
	case ErrCodePrematureEOF:
		return "premature end of input"
	default:
		return "unknown parse error"
	}
}

// ParseError is returned by Parser.ReadGames when the stream violates the
// game-record grammar.
type ParseError struct {
	Code ParseErrorCode
}

func (e *ParseError) Error() string { return fmt.Sprintf("corechess: pgn: %s", e.Code) }

// Visitor receives callbacks as a Parser walks a stream of game records
// (spec §4.7). A record's Header/StartMoves/Move calls can be silenced by
// returning true from Skip; EndPGN always fires so callers can tell where
// one record ends and the next begins. Implementations typically reset
// their own skip decision inside StartPGN, ahead of the next record.
type Visitor interface {
	StartPGN()
	Header(key, value string)
	StartMoves()
	Move(san, comment string)
	EndPGN()
	Skip() bool
}

// stringBuf is a bounded byte accumulator: PGN string tokens are capped at
// 255 bytes (spec §4.7).
type stringBuf struct {
	buf [255]byte
	n   int
}

func (s *stringBuf) add(c byte) bool {
	if s.n >= len(s.buf) {
		return false
	}
	s.buf[s.n] = c
	s.n++
	return true
}

func (s *stringBuf) get() string { return string(s.buf[:s.n]) }
func (s *stringBuf) empty() bool { return s.n == 0 }
func (s *stringBuf) clear()      { s.n = 0 }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' }

// Parser pulls game records out of an input stream one at a time. It never
// buffers an entire record in memory beyond the bounded token buffers above;
// the underlying bufio.Reader supplies the "double buffering" spec §4.7
// calls for (fill one chunk while the caller consumes the last).
type Parser struct {
	r *bufio.Reader
}

// NewParser wraps r for game-record parsing. ~64 KiB of internal buffering,
// matching spec §4.7's tuning note.
func NewParser(r io.Reader) *Parser {
	return &Parser{r: bufio.NewReaderSize(r, 64*1024)}
}

func (p *Parser) peekByte() (byte, error) {
	for {
		b, err := p.r.Peek(1)
		if err != nil {
			return 0, err
		}
		if b[0] == '\r' {
			p.r.ReadByte()
			continue
		}
		return b[0], nil
	}
}

func (p *Parser) nextByte() (byte, error) {
	for {
		b, err := p.r.ReadByte()
		if err != nil {
			return 0, err
		}
		if b == '\r' {
			continue
		}
		return b, nil
	}
}

func (p *Parser) skipSpaces() {
	for {
		c, err := p.peekByte()
		if err != nil || !isSpace(c) {
			return
		}
		p.nextByte()
	}
}

// consumeResultToken consumes and reports a game-termination token
// (1-0, 0-1, 1/2-1/2, *) if the stream is positioned at one. It leaves the
// stream untouched and returns false for anything else, notably the
// castling moves 0-0/0-0-0 which share a prefix with 0-1 (spec §4.7).
func (p *Parser) consumeResultToken() bool {
	peek, _ := p.r.Peek(7)
	s := string(peek)
	switch {
	case strings.HasPrefix(s, "1/2-1/2"):
		p.r.Discard(7)
		return true
	case strings.HasPrefix(s, "1-0"):
		p.r.Discard(3)
		return true
	case strings.HasPrefix(s, "0-1"):
		p.r.Discard(3)
		return true
	case strings.HasPrefix(s, "*"):
		p.r.Discard(1)
		return true
	}
	return false
}

func (p *Parser) readComment() (string, error) {
	p.nextByte() // consume '{'
	var sb strings.Builder
	for {
		c, err := p.nextByte()
		if err != nil {
			return sb.String(), nil
		}
		if c == '}' {
			return sb.String(), nil
		}
		sb.WriteByte(c)
	}
}

func (p *Parser) skipVariation() error {
	p.nextByte() // consume '('
	depth := 1
	for depth > 0 {
		c, err := p.nextByte()
		if err != nil {
			return &ParseError{Code: ErrCodePrematureEOF}
		}
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		}
	}
	return nil
}

func (p *Parser) skipNAG() {
	p.nextByte() // consume '$'
	for {
		c, err := p.peekByte()
		if err != nil || isSpace(c) {
			return
		}
		p.nextByte()
	}
}

// ReadGames parses every record available on the stream, invoking v for
// each, until the stream is exhausted. Parsing resumes across records
// automatically; it returns as soon as one record fails to parse.
func (p *Parser) ReadGames(v Visitor) error {
	if _, err := p.r.Peek(1); err != nil {
		return &ParseError{Code: ErrCodePrematureEOF}
	}
	for {
		p.skipSpaces()
		c, err := p.peekByte()
		if err != nil {
			return nil
		}
		if c != '[' {
			// Tolerate stray bytes between records (trailing blank lines).
			p.nextByte()
			continue
		}
		if perr := p.readRecord(v); perr != nil {
			return perr
		}
	}
}

func (p *Parser) readRecord(v Visitor) error {
	v.StartPGN()
	if err := p.parseHeaders(v); err != nil {
		return err
	}
	return p.parseBody(v)
}

func (p *Parser) parseHeaders(v Visitor) error {
	for {
		c, err := p.peekByte()
		if err != nil {
			v.EndPGN()
			return nil
		}
		switch c {
		case '[':
			if err := p.parseHeaderLine(v); err != nil {
				return err
			}
		case '\n':
			p.nextByte()
			if !v.Skip() {
				v.StartMoves()
			}
			return nil
		default:
			// Spec §4.7/§6: tolerate a missing blank line, default into body.
			if !v.Skip() {
				v.StartMoves()
			}
			return nil
		}
	}
}

func (p *Parser) parseHeaderLine(v Visitor) error {
	p.nextByte() // consume '['

	var key stringBuf
	for {
		c, err := p.peekByte()
		if err != nil {
			return &ParseError{Code: ErrCodeUnterminatedHeaderBracket}
		}
		if isSpace(c) {
			p.nextByte()
			break
		}
		p.nextByte()
		if !key.add(c) {
			return &ParseError{Code: ErrCodeStringTooLong}
		}
	}
	p.skipSpaces()

	c, err := p.peekByte()
	if err != nil || c != '"' {
		return &ParseError{Code: ErrCodeUnterminatedHeaderBracket}
	}
	p.nextByte() // consume opening quote

	var val stringBuf
	backslash := false
	for {
		c, err := p.nextByte()
		if err != nil {
			return &ParseError{Code: ErrCodeUnterminatedHeaderQuote}
		}
		if c == '\\' && !backslash {
			backslash = true
			continue
		}
		if c == '"' && !backslash {
			break
		}
		if c == '\n' {
			return &ParseError{Code: ErrCodeUnterminatedHeaderQuote}
		}
		backslash = false
		if !val.add(c) {
			return &ParseError{Code: ErrCodeStringTooLong}
		}
	}
	c, err = p.nextByte()
	if err != nil || c != ']' {
		return &ParseError{Code: ErrCodeUnterminatedHeaderBracket}
	}
	if !v.Skip() {
		v.Header(key.get(), val.get())
	}
	for {
		c, err := p.peekByte()
		if err != nil {
			return nil
		}
		p.nextByte()
		if c == '\n' {
			return nil
		}
	}
}

func (p *Parser) skipBodyPrefix(v Visitor) (done bool, err error) {
	for {
		c, peekErr := p.peekByte()
		if peekErr != nil {
			v.EndPGN()
			return true, nil
		}
		switch {
		case isSpace(c) || isDigit(c):
			p.nextByte()
		case c == '-' || c == '/':
			p.nextByte()
		case c == '*':
			if p.consumeResultToken() {
				v.EndPGN()
				return true, nil
			}
			p.nextByte()
		case c == '{':
			txt, cerr := p.readComment()
			if cerr != nil {
				return false, cerr
			}
			if !v.Skip() {
				v.Move("", txt)
			}
		default:
			return false, nil
		}
	}
}

// parseBody consumes one record's move text, dispatching comments, skipped
// variations, NAGs, and the terminating result token, ending on EOF, an
// explicit result, or an unexpected '[' that begins the next record without
// consuming it (spec §4.7).
func (p *Parser) parseBody(v Visitor) error {
	if done, err := p.skipBodyPrefix(v); err != nil || done {
		return err
	}
	for {
		c, err := p.peekByte()
		if err != nil {
			v.EndPGN()
			return nil
		}
		if c == '[' {
			v.EndPGN()
			return nil
		}
		// Checked before the move-number skip below: a result token's first
		// character is a digit too, so it must be recognized here or the
		// skip loop would eat it as if it were a move number (spec §4.7).
		if (c == '1' || c == '0' || c == '*') && p.consumeResultToken() {
			v.EndPGN()
			return nil
		}

		// A leading '0' immediately followed by '-' is 0-0/0-0-0 castling,
		// never a move number (those never start with a leading zero); skip
		// straight to parseMove so the digit isn't eaten below.
		isCastlingZero := false
		if c == '0' {
			if two, _ := p.r.Peek(2); len(two) == 2 && two[1] == '-' {
				isCastlingZero = true
			}
		}
		if !isCastlingZero {
			for {
				c, err := p.peekByte()
				if err != nil {
					v.EndPGN()
					return nil
				}
				if c == '0' {
					if three, _ := p.r.Peek(3); string(three) == "0-0" {
						break
					}
				}
				if isSpace(c) || isDigit(c) || c == '.' {
					p.nextByte()
					continue
				}
				break
			}
		}

		c, err = p.peekByte()
		if err != nil {
			v.EndPGN()
			return nil
		}
		if c == '[' {
			v.EndPGN()
			return nil
		}

		stop, perr := p.parseMove(v)
		if perr != nil {
			return perr
		}
		if stop {
			return nil
		}
	}
}

// parseMove reads one move token and its trailing appendix (comments,
// variations, NAGs), then invokes v.Move once the next real token begins.
// Returns stop=true once EndPGN has already fired (stream exhausted).
func (p *Parser) parseMove(v Visitor) (stop bool, err error) {
	var move stringBuf
	for {
		c, err := p.peekByte()
		if err != nil {
			if !move.empty() && !v.Skip() {
				v.Move(move.get(), "")
			}
			v.EndPGN()
			return true, nil
		}
		if isSpace(c) {
			break
		}
		p.nextByte()
		if !move.add(c) {
			return false, &ParseError{Code: ErrCodeStringTooLong}
		}
	}

	var comment strings.Builder
	for {
		c, err := p.peekByte()
		if err != nil {
			if !move.empty() && !v.Skip() {
				v.Move(move.get(), comment.String())
			}
			v.EndPGN()
			return true, nil
		}
		switch {
		case c == '{':
			txt, cerr := p.readComment()
			if cerr != nil {
				return false, cerr
			}
			comment.WriteString(txt)
		case c == '(':
			if cerr := p.skipVariation(); cerr != nil {
				return false, cerr
			}
		case c == '$':
			p.skipNAG()
		case isSpace(c):
			p.nextByte()
		default:
			if !move.empty() && !v.Skip() {
				v.Move(move.get(), comment.String())
			}
			return false, nil
		}
	}
}
