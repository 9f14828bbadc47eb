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
	"fmt"
	"strings"
	"time"

	. "github.com/georgib0y/rookandroll/internal/types"
)

// Result holds the result of a search
type Result struct {
	BestMove   Move
	BestValue  Value
	Pv         []Move
	Depth      int
	Nodes      uint64
	SearchTime time.Duration
}

// String returns a string representation of the result
func (r *Result) String() string {
	return fmt.Sprintf(
		"best move = %s value = %s depth = %d nodes = %d time = %d ms pv = %s",
		r.BestMove.StringUci(), r.BestValue.String(), r.Depth, r.Nodes,
		r.SearchTime.Milliseconds(), PvString(r.Pv))
}

// PvString renders a principal variation as space separated LAN moves
func PvString(pv []Move) string {
	var os strings.Builder
	for i, m := range pv {
		if i > 0 {
			os.WriteString(" ")
		}
		os.WriteString(m.StringUci())
	}
	return os.String()
}
