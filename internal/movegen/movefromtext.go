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
	"regexp"

	"github.com/georgib0y/rookandroll/internal/movelist"
	"github.com/georgib0y/rookandroll/internal/position"
	. "github.com/georgib0y/rookandroll/internal/types"
)

// Regex for moves in UCI long algebraic notation
var regexUciMove = regexp.MustCompile("^([a-h][1-8])([a-h][1-8])([nbrq])?$")

// MoveFromUci matches a move in UCI LAN (e.g. e2e4, e7e8q) against
// the moves generated for the position and returns the fully encoded
// move. Returns NullMove if the text does not correspond to a
// generated move. The caller still needs to verify legality on the
// resulting child position.
func MoveFromUci(p *position.Position, uciMove string) Move {
	if !regexUciMove.MatchString(uciMove) {
		return NullMove
	}
	ml := &movelist.StackMoveList{}
	GenerateMoves(p, ml, InCheck(p))
	for m := ml.Next(); m != NullMove; m = ml.Next() {
		if m.StringUci() == uciMove {
			return m
		}
	}
	return NullMove
}
