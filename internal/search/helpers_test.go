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

package search

import (
	"github.com/georgib0y/rookandroll/internal/movegen"
	"github.com/georgib0y/rookandroll/internal/movelist"
	"github.com/georgib0y/rookandroll/internal/position"
	"github.com/georgib0y/rookandroll/internal/transpositiontable"
	. "github.com/georgib0y/rookandroll/internal/types"
	"github.com/georgib0y/rookandroll/internal/util"
)

func newTestTable() transpositiontable.Table {
	return transpositiontable.NewTtTable(16)
}

func newAbort() *util.Bool {
	return util.NewBool(false)
}

func movegenAll(p *position.Position) []Move {
	ml := &movelist.StackMoveList{}
	movegen.GenerateMoves(p, ml, movegen.InCheck(p))
	var moves []Move
	for m := ml.Next(); m != NullMove; m = ml.Next() {
		moves = append(moves, m)
	}
	return moves
}
