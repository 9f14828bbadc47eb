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

// Package transpositiontable implements the hash indexed cache of
// search results (score, bound, draft, best move). Two variants
// share a common contract: TtTable for the single threaded search
// and SharedTtTable with per slot locking for lazy SMP.
package transpositiontable

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/georgib0y/rookandroll/internal/position"
	. "github.com/georgib0y/rookandroll/internal/types"
)

var out = message.NewPrinter(language.English)

// Table is the transposition table contract used by the searcher
type Table interface {
	// GetScore returns a score usable at the current node (after
	// mate distance re-adjustment and bound translation) or
	// ok=false
	GetScore(hash position.Key, draft, ply int, alpha, beta Value) (Value, bool)
	// GetBest returns the stored best move, ignoring draft
	GetBest(hash position.Key) Move
	// GetPv returns the stored best move only if the entry is a PV
	// entry. Used to walk a PV chain from a position.
	GetPv(hash position.Key) Move
	// Insert stores a search result. Mate scores are shifted to be
	// relative to the entry's ply.
	Insert(hash position.Key, score EntryScore, best Move, draft, ply int)
	// Clear removes all entries
	Clear()
}

// DefaultSizeBits is the default table size as a power of two
const DefaultSizeBits = 20

// TtTable is the single threaded transposition table variant: a
// direct mapped array with a single slot per bucket. Writes require
// exclusive access - use SharedTtTable for parallel search.
type TtTable struct {
	data    []entry
	idxMask uint64
}

// NewTtTable creates a transposition table with 2^sizeBits entries
func NewTtTable(sizeBits int) *TtTable {
	size := uint64(1) << sizeBits
	return &TtTable{
		data:    make([]entry, size),
		idxMask: size - 1,
	}
}

func (tt *TtTable) idx(hash position.Key) uint64 {
	return uint64(hash) & tt.idxMask
}

// GetScore implements Table
func (tt *TtTable) GetScore(hash position.Key, draft, ply int, alpha, beta Value) (Value, bool) {
	return tt.data[tt.idx(hash)].getScore(hash, draft, ply, alpha, beta)
}

// GetBest implements Table
func (tt *TtTable) GetBest(hash position.Key) Move {
	return tt.data[tt.idx(hash)].getBest(hash)
}

// GetPv implements Table
func (tt *TtTable) GetPv(hash position.Key) Move {
	return tt.data[tt.idx(hash)].getPv(hash)
}

// Insert implements Table
func (tt *TtTable) Insert(hash position.Key, score EntryScore, best Move, draft, ply int) {
	tt.data[tt.idx(hash)].update(hash, score, best, draft, ply)
}

// Clear implements Table
func (tt *TtTable) Clear() {
	tt.data = make([]entry, len(tt.data))
}

// Len returns the number of used entries
func (tt *TtTable) Len() int {
	count := 0
	for i := range tt.data {
		if tt.data[i].hash != 0 {
			count++
		}
	}
	return count
}

// String returns a string representation of this table
func (tt *TtTable) String() string {
	return out.Sprintf("TT: capacity %d entries, %d used", len(tt.data), tt.Len())
}
