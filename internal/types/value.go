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

package types

import (
	"strconv"
	"strings"
)

// Value represents the value of a chess position or move in
// centi pawns. Mate scores are encoded as distance to the mate
// relative to the root (see Checkmate).
type Value int32

// Constants for values
const (
	// Checkmate is the score for the side to move being mated
	Checkmate Value = -1_000_000_000
	// Mated is the score for delivering mate to the opponent
	Mated Value = -Checkmate
	// Stalemate is scored as a draw
	Stalemate Value = 0
	// ValueDraw score for any draw
	ValueDraw Value = 0
	// MinScore is below any achievable score and used as the
	// initial alpha window and the aborted-search sentinel
	MinScore Value = 2 * Checkmate
	// MaxScore is above any achievable score
	MaxScore Value = -MinScore
	// CheckmateThreshold - values beyond are mate in x
	CheckmateThreshold Value = Mated - MaxDepth - 1
)

// IsCheckMateValue returns true if the value is above the mate
// threshold (mate found within MaxDepth)
func (v Value) IsCheckMateValue() bool {
	return v > CheckmateThreshold || v < -CheckmateThreshold
}

// String returns a UCI compatible score string, either "cp <x>"
// or "mate <n>" where n is the number of moves (not plies) to mate,
// negative when the side to move gets mated.
func (v Value) String() string {
	var os strings.Builder
	if v.IsCheckMateValue() {
		os.WriteString("mate ")
		if v < 0 {
			os.WriteString("-")
		}
		plies := int(Mated - v)
		if v < 0 {
			plies = int(v - Checkmate)
		}
		os.WriteString(strconv.Itoa((plies + 1) / 2))
	} else {
		os.WriteString("cp ")
		os.WriteString(strconv.Itoa(int(v)))
	}
	return os.String()
}
