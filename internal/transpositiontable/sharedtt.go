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
	"sync"

	"github.com/georgib0y/rookandroll/internal/position"
	. "github.com/georgib0y/rookandroll/internal/types"
)

// SharedDefaultSizeBits is the default shared table size as a power
// of two. The shared table is larger as it serves several searcher
// threads at once.
const SharedDefaultSizeBits = 22

// SharedTtTable is the transposition table variant for the lazy SMP
// search. Every slot is individually synchronized with a read/write
// lock, which makes torn reads impossible; each slot is self
// contained so per slot serialization is sufficient. Readers may
// see stale entries - correctness relies on the hash verification
// in the entry itself and the bound semantics of stored scores.
type SharedTtTable struct {
	data    []sharedEntry
	idxMask uint64
}

type sharedEntry struct {
	mu sync.RWMutex
	e  entry
}

// NewSharedTtTable creates a shared transposition table with
// 2^sizeBits entries
func NewSharedTtTable(sizeBits int) *SharedTtTable {
	size := uint64(1) << sizeBits
	return &SharedTtTable{
		data:    make([]sharedEntry, size),
		idxMask: size - 1,
	}
}

func (tt *SharedTtTable) idx(hash position.Key) uint64 {
	return uint64(hash) & tt.idxMask
}

// GetScore implements Table
func (tt *SharedTtTable) GetScore(hash position.Key, draft, ply int, alpha, beta Value) (Value, bool) {
	se := &tt.data[tt.idx(hash)]
	se.mu.RLock()
	defer se.mu.RUnlock()
	return se.e.getScore(hash, draft, ply, alpha, beta)
}

// GetBest implements Table
func (tt *SharedTtTable) GetBest(hash position.Key) Move {
	se := &tt.data[tt.idx(hash)]
	se.mu.RLock()
	defer se.mu.RUnlock()
	return se.e.getBest(hash)
}

// GetPv implements Table
func (tt *SharedTtTable) GetPv(hash position.Key) Move {
	se := &tt.data[tt.idx(hash)]
	se.mu.RLock()
	defer se.mu.RUnlock()
	return se.e.getPv(hash)
}

// Insert implements Table
func (tt *SharedTtTable) Insert(hash position.Key, score EntryScore, best Move, draft, ply int) {
	se := &tt.data[tt.idx(hash)]
	se.mu.Lock()
	defer se.mu.Unlock()
	se.e.update(hash, score, best, draft, ply)
}

// Clear implements Table
func (tt *SharedTtTable) Clear() {
	for i := range tt.data {
		se := &tt.data[i]
		se.mu.Lock()
		se.e = entry{}
		se.mu.Unlock()
	}
}
