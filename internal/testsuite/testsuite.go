//
// RookAndRoll - UCI chess engine in GO
//
// MIT License
//
// Copyright (c) 2022-2026 George Ibbotson
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package testsuite implements the WAC/EPD test harness: it reads
// positions with a best move opcode from an EPD file, searches each
// position under a time budget and reports how many were solved.
package testsuite

import (
	"bufio"
	"os"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/georgib0y/rookandroll/internal/logging"
	"github.com/georgib0y/rookandroll/internal/movegen"
	"github.com/georgib0y/rookandroll/internal/movelist"
	"github.com/georgib0y/rookandroll/internal/position"
	"github.com/georgib0y/rookandroll/internal/search"
	. "github.com/georgib0y/rookandroll/internal/types"
)

var out = message.NewPrinter(language.English)

// Test is a single EPD test position
type Test struct {
	Fen       string
	BestMoves []Move
	ID        string

	Actual Value

	Solved bool
	Move   Move
}

// TestSuite runs all tests from one EPD file
type TestSuite struct {
	log      *logging.Logger
	Tests    []*Test
	FilePath string
	Time     time.Duration
	Depth    int
}

// NewTestSuite reads the EPD file and creates a test suite with the
// given time budget and optional depth limit per position
func NewTestSuite(filePath string, moveTime time.Duration, depth int) (*TestSuite, error) {
	ts := &TestSuite{
		log:      myLogging.GetTestLog(),
		FilePath: filePath,
		Time:     moveTime,
		Depth:    depth,
	}
	if err := ts.readFile(); err != nil {
		return nil, err
	}
	return ts, nil
}

// RunTests searches every test position and reports the solved count
func (ts *TestSuite) RunTests() (solved int) {
	start := time.Now()
	s := search.NewSearch()

	for i, test := range ts.Tests {
		p, err := position.NewPositionFen(test.Fen)
		if err != nil {
			ts.log.Warningf("Skipping invalid test fen: %s", test.Fen)
			continue
		}

		sl := search.NewLimits()
		sl.MoveTime = ts.Time
		sl.Depth = ts.Depth

		s.StartSearch(*p, *sl)
		s.WaitWhileSearching()
		result := s.LastResult()

		test.Move = result.BestMove
		test.Actual = result.BestValue
		for _, bm := range test.BestMoves {
			if bm == result.BestMove {
				test.Solved = true
				solved++
				break
			}
		}

		status := "FAILED"
		if test.Solved {
			status = "ok"
		}
		ts.log.Infof("%-4d %-10s %-6s played %-6s (%s)",
			i+1, test.ID, status, result.BestMove.StringUci(), result.BestValue.String())
	}

	ts.log.Info(out.Sprintf("Solved %d of %d tests in %d ms (%s)",
		solved, len(ts.Tests), time.Since(start).Milliseconds(), ts.FilePath))
	return solved
}

// readFile parses the EPD file. Only the "bm" and "id" opcodes are
// interpreted, other opcodes are ignored.
func (ts *TestSuite) readFile() error {
	f, err := os.Open(ts.FilePath)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if test := parseEpdLine(line); test != nil {
			ts.Tests = append(ts.Tests, test)
		}
	}
	return scanner.Err()
}

// parseEpdLine parses one EPD line of the form
//  <fen fields> bm <san>...; id "<name>";
// Returns nil when the line has no position or no best move.
func parseEpdLine(line string) *Test {
	parts := strings.Split(line, " bm ")
	if len(parts) != 2 {
		return nil
	}
	fen := strings.TrimSpace(parts[0])

	p, err := position.NewPositionFen(fen)
	if err != nil {
		return nil
	}

	test := &Test{Fen: fen}

	rest := strings.SplitN(parts[1], ";", 2)
	for _, san := range strings.Fields(rest[0]) {
		if m := moveFromSan(p, san); m != NullMove {
			test.BestMoves = append(test.BestMoves, m)
		}
	}
	if len(test.BestMoves) == 0 {
		return nil
	}

	if len(rest) == 2 {
		if idx := strings.Index(rest[1], `id "`); idx != -1 {
			id := rest[1][idx+4:]
			if end := strings.Index(id, `"`); end != -1 {
				test.ID = id[:end]
			}
		}
	}
	return test
}

// moveFromSan matches a move in short algebraic notation against
// the legal moves of the position. Check and mate suffixes are
// ignored. As this uses string comparison it is only meant for
// reading test files, not for performance critical paths.
func moveFromSan(p *position.Position, san string) Move {
	san = strings.TrimRight(san, "+#!?")

	ml := &movelist.StackMoveList{}
	movegen.GenerateMoves(p, ml, movegen.InCheck(p))

	for m := ml.Next(); m != NullMove; m = ml.Next() {
		child := p.CopyMake(m)
		if movegen.MovedIntoCheck(child, m) {
			continue
		}
		if sanMatches(p, m, san) {
			return m
		}
	}
	return NullMove
}

func sanMatches(p *position.Position, m Move, san string) bool {
	switch m.MoveType() {
	case WKingSide, BKingSide:
		return san == "O-O"
	case WQueenSide, BQueenSide:
		return san == "O-O-O"
	}

	piece := m.Piece().BaseOf()
	target := m.To().String()

	if !strings.Contains(san, target) {
		return false
	}

	if piece == Pawn {
		// pawn moves carry no piece letter; captures lead with the
		// origin file (e.g. exd5)
		if m.MoveType().IsCap() || m.MoveType() == Ep {
			return strings.HasPrefix(san, m.From().FileOf().String()+"x")
		}
		if m.MoveType().IsPromo() {
			return strings.HasPrefix(san, target) && strings.HasSuffix(strings.ToLower(san),
				"="+strings.ToLower(m.StringUci()[4:]))
		}
		return strings.HasPrefix(san, target)
	}

	// officer moves lead with the upper case piece letter
	letter := strings.ToUpper(piece.String())
	if !strings.HasPrefix(san, letter) {
		return false
	}

	// disambiguation: any file or rank hint must match the origin
	hint := strings.TrimSuffix(strings.TrimPrefix(san, letter), target)
	hint = strings.TrimSuffix(hint, "x")
	for _, c := range hint {
		if c >= 'a' && c <= 'h' && string(c) != m.From().FileOf().String() {
			return false
		}
		if c >= '1' && c <= '8' && string(c) != m.From().RankOf().String() {
			return false
		}
	}
	return true
}
