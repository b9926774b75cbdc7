package corechess

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingVisitor struct {
	starts     int
	ends       int
	startMoves int
	headers    []string
	moves      []string
	skipNext   bool
}

func (v *recordingVisitor) StartPGN()  { v.starts++ }
func (v *recordingVisitor) EndPGN()    { v.ends++ }
func (v *recordingVisitor) StartMoves() { v.startMoves++ }
func (v *recordingVisitor) Header(key, value string) {
	v.headers = append(v.headers, key+"="+value)
}
func (v *recordingVisitor) Move(san, comment string) { v.moves = append(v.moves, san) }
func (v *recordingVisitor) Skip() bool                { return v.skipNext }

func buildGameText(numMoves int) string {
	var sb strings.Builder
	sb.WriteString("[Event \"test\"]\n[Result \"1-0\"]\n\n")
	for i := 1; i <= numMoves; i++ {
		if i%2 == 1 {
			sb.WriteString(strconv.Itoa((i+1)/2))
			sb.WriteString(". ")
		}
		sb.WriteString("e4 ")
	}
	sb.WriteString("1-0\n")
	return sb.String()
}

func TestPGNOneGameManyMoves(t *testing.T) {
	text := buildGameText(130)
	p := NewParser(strings.NewReader(text))
	v := &recordingVisitor{}
	err := p.ReadGames(v)
	require.NoError(t, err)

	require.Equal(t, 1, v.starts)
	require.Equal(t, 1, v.startMoves)
	require.Equal(t, 1, v.ends)
	require.Len(t, v.moves, 130)
}

func TestPGNEmptyBodyRecord(t *testing.T) {
	text := "[Event \"test\"]\n[Result \"*\"]\n\n*\n"
	p := NewParser(strings.NewReader(text))
	v := &recordingVisitor{}
	err := p.ReadGames(v)
	require.NoError(t, err)

	require.Equal(t, 1, v.starts)
	require.Equal(t, 1, v.ends)
	require.Empty(t, v.moves)
}

type skipOnResultVisitor struct {
	recordingVisitor
}

func (v *skipOnResultVisitor) Header(key, value string) {
	if key == "Result" && value == "*" {
		v.skipNext = true
		return
	}
	v.recordingVisitor.Header(key, value)
}

func TestPGNSkipSuppressesCallbacksButEndPGNStillFires(t *testing.T) {
	text := "[Event \"test\"]\n[Result \"*\"]\n\n1. e4 e5 *\n"
	p := NewParser(strings.NewReader(text))
	v := &skipOnResultVisitor{}
	err := p.ReadGames(v)
	require.NoError(t, err)

	require.Equal(t, 1, v.starts)
	require.Equal(t, 1, v.ends)
	require.Empty(t, v.moves)
	// Result header itself set skipNext mid-record; Event fired before it did.
	require.Equal(t, []string{"Event=test"}, v.headers)
}

func TestPGNCastlingNotConfusedWithResult(t *testing.T) {
	text := "[Event \"test\"]\n\n1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 4. 0-0 Nf6 5. d3 Bc5 1-0\n"
	p := NewParser(strings.NewReader(text))
	v := &recordingVisitor{}
	err := p.ReadGames(v)
	require.NoError(t, err)

	require.Contains(t, v.moves, "0-0")
	require.Equal(t, 1, v.ends)
}

func TestPGNMultipleRecords(t *testing.T) {
	text := buildGameText(4) + "\n" + buildGameText(6)
	p := NewParser(strings.NewReader(text))
	v := &recordingVisitor{}
	err := p.ReadGames(v)
	require.NoError(t, err)

	require.Equal(t, 2, v.starts)
	require.Equal(t, 2, v.ends)
	require.Len(t, v.moves, 10)
}

func TestPGNHeaderValueTooLong(t *testing.T) {
	longVal := strings.Repeat("a", 300)
	text := "[Event \"" + longVal + "\"]\n\n1. e4 1-0\n"
	p := NewParser(strings.NewReader(text))
	v := &recordingVisitor{}
	err := p.ReadGames(v)
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, ErrCodeStringTooLong, perr.Code)
}
