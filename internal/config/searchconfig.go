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

package config

type searchConfiguration struct {
	// TtSizeBits is the size of the single threaded transposition
	// table as a power of two
	TtSizeBits int
	// SharedTtSizeBits is the size of the shared transposition
	// table as a power of two
	SharedTtSizeBits int
	// Threads is the number of search threads (1 = single threaded)
	Threads int
	// MoveTimeMs is the default time budget per search in
	// milliseconds when the caller does not provide one
	MoveTimeMs int
}

func setupSearch() {
	if Settings.Search.TtSizeBits == 0 {
		Settings.Search.TtSizeBits = 20
	}
	if Settings.Search.SharedTtSizeBits == 0 {
		Settings.Search.SharedTtSizeBits = 22
	}
	if Settings.Search.Threads == 0 {
		Settings.Search.Threads = 1
	}
	if Settings.Search.MoveTimeMs == 0 {
		Settings.Search.MoveTimeMs = 1500
	}
}
