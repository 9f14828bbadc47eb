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

package transpositiontable

import (
	"github.com/georgib0y/rookandroll/internal/position"
	. "github.com/georgib0y/rookandroll/internal/types"
)

// BoundType tags a stored score as exact (PV), upper bound (alpha)
// or lower bound (beta)
type BoundType int8

// Bound type constants
const (
	// PV - exact score of a fully searched node
	PV BoundType = 0
	// Alpha - the node failed low, the score is an upper bound
	Alpha BoundType = 1
	// Beta - the node failed high, the score is a lower bound
	Beta BoundType = 2
)

var boundTypeToString = [3]string{"PV", "Alpha", "Beta"}

// String returns a string representation of the bound type
func (bt BoundType) String() string {
	return boundTypeToString[bt]
}

// EntryScore is the tagged score stored in a table entry
type EntryScore struct {
	Score Value
	Bound BoundType
}

// PVScore creates an exact entry score
func PVScore(s Value) EntryScore { return EntryScore{s, PV} }

// AlphaScore creates an upper bound entry score
func AlphaScore(s Value) EntryScore { return EntryScore{s, Alpha} }

// BetaScore creates a lower bound entry score
func BetaScore(s Value) EntryScore { return EntryScore{s, Beta} }

// entry is the data stored per table slot
type entry struct {
	hash  position.Key
	score Value
	bound BoundType
	draft int8
	best  Move
}

// getScore returns a score usable at the current node or ok=false.
// The stored draft must cover the requested draft and bound entries
// only cut when they improve on the current window.
func (e *entry) getScore(hash position.Key, draft, ply int, alpha, beta Value) (Value, bool) {
	if e.hash != hash || int(e.draft) < draft {
		return 0, false
	}

	score := scoreFromTT(e.score, ply)

	switch e.bound {
	case PV:
		return score, true
	case Alpha:
		if score <= alpha {
			return alpha, true
		}
	case Beta:
		if score >= beta {
			return beta, true
		}
	}
	return 0, false
}

// getBest returns the stored best move ignoring draft
func (e *entry) getBest(hash position.Key) Move {
	if e.hash == hash {
		return e.best
	}
	return NullMove
}

// getPv returns the stored best move only for PV entries. Used to
// walk the principal variation from a position.
func (e *entry) getPv(hash position.Key) Move {
	if e.hash == hash && e.bound == PV {
		return e.best
	}
	return NullMove
}

// update conditionally replaces the slot: always replace unless the
// existing entry is a PV entry and the incoming one is not. PV
// entries are the most informative, never demote one for the same
// slot.
func (e *entry) update(hash position.Key, score EntryScore, best Move, draft, ply int) {
	if e.hash == hash && e.bound == PV && score.Bound != PV {
		return
	}
	e.hash = hash
	e.score = scoreToTT(score.Score, ply)
	e.bound = score.Bound
	e.draft = int8(draft)
	e.best = best
}

// Mate scores are stored relative to the entry's node, not the root,
// so they stay meaningful across subtrees. scoreToTT shifts the
// root relative score by ply on insert, scoreFromTT reverses the
// shift on retrieval.

func scoreToTT(score Value, ply int) Value {
	if score.IsCheckMateValue() {
		if score > 0 {
			return score + Value(ply)
		}
		return score - Value(ply)
	}
	return score
}

func scoreFromTT(score Value, ply int) Value {
	if score.IsCheckMateValue() {
		if score > 0 {
			return score - Value(ply)
		}
		return score + Value(ply)
	}
	return score
}
