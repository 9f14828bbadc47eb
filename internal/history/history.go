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

// Package history provides the search history heuristics: killer
// moves per search depth and the from-to history counter table. Both are
// owned by a single searcher and never shared between threads.
package history

import (
	. "github.com/georgib0y/rookandroll/internal/types"
)

// KillerMoves stores per search depth the two quiet moves which most
// recently produced a beta cutoff at that depth. Slot 0 is the most
// recent.
type KillerMoves struct {
	killers [MaxDepth][2]Move
}

// NewKillerMoves creates an empty killer move table
func NewKillerMoves() *KillerMoves {
	return &KillerMoves{}
}

// Add stores a quiet move which caused a beta cutoff at the given
// depth, shifting the previous primary killer to the second slot
func (km *KillerMoves) Add(m Move, depth int) {
	if depth >= MaxDepth {
		return
	}
	if km.killers[depth][0] == m {
		return
	}
	km.killers[depth][1] = km.killers[depth][0]
	km.killers[depth][0] = m
}

// Get returns the primary and secondary killer for the depth
func (km *KillerMoves) Get(depth int) (Move, Move) {
	if depth >= MaxDepth {
		return NullMove, NullMove
	}
	return km.killers[depth][0], km.killers[depth][1]
}

// HistoryTable counts from-to squares of quiet moves which caused
// beta cutoffs, indexed by side to move. Deeper cutoffs weigh more
// (depth squared).
type HistoryTable struct {
	counts [ColorLength][SqLength][SqLength]Value
}

// NewHistoryTable creates an empty history table
func NewHistoryTable() *HistoryTable {
	return &HistoryTable{}
}

// Add increments the counter for the move by depth squared
func (hh *HistoryTable) Add(ctm Color, from, to Square, depth int) {
	hh.counts[ctm][from][to] += Value(depth * depth)
}

// Get returns the counter for the move
func (hh *HistoryTable) Get(ctm Color, from, to Square) Value {
	return hh.counts[ctm][from][to]
}
