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
// Package types contains the foundation data types of the engine:
// squares, bitboards, pieces, moves and values together with all
// pre-computed tables (attack tables, magic bitboards, rays,
// piece-square tables).
//
// Init() must be called before any other package is used. It
// pre-computes all tables and is safe to call multiple times.
package types

var initialized = false

// the tables are required before any other package touches a square
// or position, therefore they are also set up on package load
func init() {
	Init()
}

// Engine wide constants.
const (
	// MaxDepth is the maximum search depth the engine will ever reach
	MaxDepth = 100

	// MaxMoves is the maximum number of moves in a chess position
	// known highest number of legal moves is 218
	MaxMoves = 218

	// GamePhaseMax is the maximum game phase value. Game phase is
	// used to blend mid game and end game piece square values.
	// 2x(2xR + 2xN + 2xB + Q) = 24
	GamePhaseMax = 24
)

// Init pre-computes all internal tables (bitboards, magic attack
// tables, piece square values). Needs to be called before this
// package can be used. Multiple calls are no-ops.
func Init() {
	if initialized {
		return
	}
	initBb()
	initMagics()
	initPosValues()
	initialized = true
}
