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

import "strings"

// Piece is a set of constants for the pieces in chess.
// Even piece codes are white, odd piece codes are black:
//  WhitePawn   = 0  BlackPawn   = 1
//  WhiteKnight = 2  BlackKnight = 3
//  WhiteRook   = 4  BlackRook   = 5
//  WhiteBishop = 6  BlackBishop = 7
//  WhiteQueen  = 8  BlackQueen  = 9
//  WhiteKing   = 10 BlackKing   = 11
//  PieceNone   = 12
type Piece int8

// Pieces are a set of constants to represent the different pieces
// of a chess game.
const (
	WhitePawn   Piece = 0
	BlackPawn   Piece = 1
	WhiteKnight Piece = 2
	BlackKnight Piece = 3
	WhiteRook   Piece = 4
	BlackRook   Piece = 5
	WhiteBishop Piece = 6
	BlackBishop Piece = 7
	WhiteQueen  Piece = 8
	BlackQueen  Piece = 9
	WhiteKing   Piece = 10
	BlackKing   Piece = 11
	PieceNone   Piece = 12
	PieceLength Piece = 12
)

// Base piece codes (the white piece of each pair). A colored piece is
// created with MakePiece(color, base).
const (
	Pawn   Piece = WhitePawn
	Knight Piece = WhiteKnight
	Rook   Piece = WhiteRook
	Bishop Piece = WhiteBishop
	Queen  Piece = WhiteQueen
	King   Piece = WhiteKing
)

// MakePiece creates the piece given by color and base piece code
func MakePiece(c Color, base Piece) Piece {
	return base + Piece(c)
}

// ColorOf returns the color of the given piece
func (p Piece) ColorOf() Color {
	return Color(p & 1)
}

// BaseOf returns the base (white) piece code of the given piece
func (p Piece) BaseOf() Piece {
	return p &^ 1
}

// IsValid checks if p is a valid piece
func (p Piece) IsValid() bool {
	return p >= WhitePawn && p < PieceNone
}

// ValueOf returns the static material value of the piece
func (p Piece) ValueOf() Value {
	return pieceValue[p]
}

// static material values indexed by piece code, PieceNone is 0
var pieceValue = [PieceLength + 1]Value{
	100, 100, // pawns
	325, 325, // knights
	500, 500, // rooks
	325, 325, // bishops
	1000, 1000, // queens
	20000, 20000, // kings
	0,
}

// array of string labels for pieces as used in FEN
var pieceToChar = "PpNnRrBbQqKk"

// PieceFromChar returns the Piece corresponding to the given character.
// If s contains not exactly one valid piece character this
// will return PieceNone.
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return PieceNone
	}
	index := strings.Index(pieceToChar, s)
	if index == -1 {
		return PieceNone
	}
	return Piece(index)
}

// String returns a string representation of a piece as in FEN
// (e.g. P, p, N, n, ...)
func (p Piece) String() string {
	if !p.IsValid() {
		return " "
	}
	return string(pieceToChar[p])
}

// PromoChar returns the lower case piece type letter used for
// promotions in UCI LAN (e.g. q, r, b, n)
func (p Piece) PromoChar() string {
	return strings.ToLower(string(pieceToChar[p.BaseOf()]))
}
