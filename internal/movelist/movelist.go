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

// Package movelist provides the bounded move buffers the move
// generator writes into and the search iterates over.
//
// The ScoredMoveList scores each move at insertion time and yields
// moves in descending score order using an incremental selection
// sort: every Next() scans the remaining entries for the maximum.
// This is O(n^2) over a full iteration but beats pre-sorting in the
// search where most nodes are abandoned after a few moves due to
// beta cutoffs.
package movelist

import (
	"math"

	. "github.com/georgib0y/rookandroll/internal/types"
)

// MoveList is the interface the move generator pushes moves into
type MoveList interface {
	AddMove(m Move)
}

// yieldedScore marks an entry of a scored list as already yielded
const yieldedScore Value = math.MinInt32

// StackMoveList is a fixed capacity, append only move buffer with
// in-order iteration
type StackMoveList struct {
	moves  [MaxMoves]Move
	length int
	count  int
}

// AddMove appends a move at the end of the list
func (ml *StackMoveList) AddMove(m Move) {
	ml.moves[ml.length] = m
	ml.length++
}

// Len returns the number of moves in the list
func (ml *StackMoveList) Len() int {
	return ml.length
}

// Next returns the next move in insertion order or NullMove when
// the list is exhausted
func (ml *StackMoveList) Next() Move {
	if ml.count == ml.length {
		return NullMove
	}
	m := ml.moves[ml.count]
	ml.count++
	return m
}

// ScoredMoveList is a fixed capacity move buffer which scores each
// move at insertion and yields moves in descending score order
type ScoredMoveList struct {
	moves  [MaxMoves]Move
	scores [MaxMoves]Value
	length int
	scorer func(m Move) Value
}

// NewScoredMoveList creates a scored move list. The scorer is called
// once per inserted move.
func NewScoredMoveList(scorer func(m Move) Value) *ScoredMoveList {
	return &ScoredMoveList{scorer: scorer}
}

// AddMove inserts a move and computes its sort score
func (ml *ScoredMoveList) AddMove(m Move) {
	ml.moves[ml.length] = m
	ml.scores[ml.length] = ml.scorer(m)
	ml.length++
}

// Len returns the number of moves in the list
func (ml *ScoredMoveList) Len() int {
	return ml.length
}

// Next returns the highest scored move not yet yielded or NullMove
// when the list is exhausted
func (ml *ScoredMoveList) Next() Move {
	best := yieldedScore
	bestIdx := -1
	for i := 0; i < ml.length; i++ {
		if ml.scores[i] > best {
			best = ml.scores[i]
			bestIdx = i
		}
	}
	if bestIdx == -1 {
		return NullMove
	}
	ml.scores[bestIdx] = yieldedScore
	return ml.moves[bestIdx]
}

// QMoveList is a scored move list for the quiescence search. The
// scorer additionally decides whether a move is kept at all -
// captures which lose material (negative SEE) are dropped at
// insertion as they cannot improve on the standing pat score.
type QMoveList struct {
	ScoredMoveList
	qscorer func(m Move) (Value, bool)
}

// NewQMoveList creates a quiescence move list with the given
// filtering scorer
func NewQMoveList(qscorer func(m Move) (Value, bool)) *QMoveList {
	return &QMoveList{qscorer: qscorer}
}

// AddMove inserts a move unless the scorer rejects it
func (ml *QMoveList) AddMove(m Move) {
	score, keep := ml.qscorer(m)
	if !keep {
		return
	}
	ml.moves[ml.length] = m
	ml.scores[ml.length] = score
	ml.length++
}
