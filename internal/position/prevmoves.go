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

package position

// PrevMoves approximates the history of positions reached in the
// current game for the three fold repetition rule. It is a fixed
// size table of small counters keyed by the low bits of the
// position hash. A position reached while its bucket already counts
// two occurrences is treated as the third repetition.
type PrevMoves struct {
	counts [prevMovesSize]uint8
}

const (
	prevMovesSize = 1 << 14
	prevMovesMask = prevMovesSize - 1
)

// NewPrevMoves creates an empty previous move table
func NewPrevMoves() *PrevMoves {
	return &PrevMoves{}
}

// Add counts an occurrence of the position hash
func (pm *PrevMoves) Add(hash Key) {
	pm.counts[hash&prevMovesMask]++
}

// Remove removes an occurrence of the position hash
func (pm *PrevMoves) Remove(hash Key) {
	pm.counts[hash&prevMovesMask]--
}

// Count returns the number of occurrences of the position hash up to
// but not including the current node
func (pm *PrevMoves) Count(hash Key) int {
	return int(pm.counts[hash&prevMovesMask])
}

// Clear resets all counters. Used when the game history is rebuilt
// from scratch.
func (pm *PrevMoves) Clear() {
	pm.counts = [prevMovesSize]uint8{}
}

// Clone returns a copy of the table. Each searcher thread works on
// its own copy.
func (pm *PrevMoves) Clone() *PrevMoves {
	clone := *pm
	return &clone
}
