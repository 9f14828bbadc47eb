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

package movegen

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/georgib0y/rookandroll/internal/movelist"
	"github.com/georgib0y/rookandroll/internal/position"
	. "github.com/georgib0y/rookandroll/internal/types"
)

var out = message.NewPrinter(language.English)

// perft has no game history - with an empty table IsLegalMove only
// applies its castle pass-through and fifty-move tests
var noPrevMoves = position.NewPrevMoves()

// Perft counts the leaf nodes of the legal move tree to the given
// depth. It is the primary correctness test of move generation and
// CopyMake.
type Perft struct {
	Nodes    uint64
	stopFlag bool
}

// NewPerft creates a new empty Perft instance
func NewPerft() *Perft {
	return &Perft{}
}

// Stop can be used when perft has been started in a goroutine to
// stop the currently running test
func (perft *Perft) Stop() {
	perft.stopFlag = true
}

// StartPerft runs a perft test on the given fen to the given depth
// and prints a divide report per root move
func (perft *Perft) StartPerft(fen string, depth int) uint64 {
	perft.stopFlag = false
	perft.Nodes = 0

	if depth <= 0 {
		depth = 1
	}

	p, err := position.NewPositionFen(fen)
	if err != nil {
		out.Printf("Perft: invalid fen: %s\n", fen)
		return 0
	}

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	start := time.Now()

	ml := &movelist.StackMoveList{}
	GenerateMoves(p, ml, InCheck(p))
	for m := ml.Next(); m != NullMove; m = ml.Next() {
		if perft.stopFlag {
			out.Print("Perft stopped\n")
			return 0
		}
		child := p.CopyMake(m)
		if MovedIntoCheck(child, m) || !IsLegalMove(child, m, noPrevMoves) {
			continue
		}
		nodes := perft.perftDriver(child, depth-1)
		perft.Nodes += nodes
		out.Printf("%s: %d\n", m.StringUci(), nodes)
	}

	elapsed := time.Since(start)
	out.Printf("Time         : %d ms\n", elapsed.Milliseconds())
	out.Printf("Nodes        : %d\n", perft.Nodes)
	if elapsed > 0 {
		out.Printf("Nodes/sec    : %d\n", uint64(float64(perft.Nodes)/elapsed.Seconds()))
	}
	return perft.Nodes
}

// PerftNodes counts the leaf nodes for the given position and depth
// without any output
func PerftNodes(p *position.Position, depth int) uint64 {
	perft := NewPerft()
	return perft.perftDriver(p, depth)
}

func (perft *Perft) perftDriver(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var nodes uint64
	ml := &movelist.StackMoveList{}
	GenerateMoves(p, ml, InCheck(p))
	for m := ml.Next(); m != NullMove; m = ml.Next() {
		child := p.CopyMake(m)
		if MovedIntoCheck(child, m) || !IsLegalMove(child, m, noPrevMoves) {
			continue
		}
		if depth == 1 {
			nodes++
			continue
		}
		nodes += perft.perftDriver(child, depth-1)
	}
	return nodes
}
