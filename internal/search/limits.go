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
	"time"
)

// Limits is the data structure to hold all information about how a
// search shall be controlled (time budget, depth, threads).
type Limits struct {
	// no time control - search until stopped
	Infinite bool

	// extra limits
	Depth int

	// time control
	MoveTime  time.Duration
	WhiteTime time.Duration
	BlackTime time.Duration
	WhiteInc  time.Duration
	BlackInc  time.Duration
	MovesToGo int

	// number of search threads, values >= 2 enable lazy SMP
	Threads int
}

// NewLimits creates a new empty Limits instance
func NewLimits() *Limits {
	return &Limits{}
}

// timeBudget determines the time budget for one search from the
// limits. Remaining game time is spread over an estimated number of
// moves to go.
func (sl *Limits) timeBudget(ctm int) time.Duration {
	if sl.Infinite {
		// effectively unlimited - the stop command aborts
		return 24 * time.Hour
	}
	if sl.MoveTime > 0 {
		return sl.MoveTime
	}

	var timeLeft, inc time.Duration
	if ctm == 0 {
		timeLeft, inc = sl.WhiteTime, sl.WhiteInc
	} else {
		timeLeft, inc = sl.BlackTime, sl.BlackInc
	}
	if timeLeft == 0 && inc == 0 {
		return 0
	}

	movesToGo := sl.MovesToGo
	if movesToGo == 0 {
		movesToGo = 30
	}

	budget := timeLeft/time.Duration(movesToGo) + inc
	// keep some room for the protocol round trip
	budget -= 20 * time.Millisecond
	if budget < 10*time.Millisecond {
		budget = 10 * time.Millisecond
	}
	return budget
}
