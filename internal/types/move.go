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
	"fmt"
	"strings"
)

// MoveType encodes how a move changes the position beyond the
// plain from-to piece shift
type MoveType uint8

// MoveType constants. The four promotion capture types are ordered
// so that the promoted piece can be derived from the move type
// (see PromoCapPiece).
const (
	Quiet      MoveType = 0
	Double     MoveType = 1
	Cap        MoveType = 2
	WKingSide  MoveType = 3
	BKingSide  MoveType = 4
	WQueenSide MoveType = 5
	BQueenSide MoveType = 6
	Promo      MoveType = 7
	NPromoCap  MoveType = 8
	RPromoCap  MoveType = 9
	BPromoCap  MoveType = 10
	QPromoCap  MoveType = 11
	Ep         MoveType = 12
)

// KingSide returns the king side castle move type for the color
func KingSide(c Color) MoveType {
	if c == White {
		return WKingSide
	}
	return BKingSide
}

// QueenSide returns the queen side castle move type for the color
func QueenSide(c Color) MoveType {
	if c == White {
		return WQueenSide
	}
	return BQueenSide
}

// IsPromo returns true for promotions and promotion captures
func (mt MoveType) IsPromo() bool {
	return mt >= Promo && mt <= QPromoCap
}

// IsCap returns true for all capturing move types including
// promotion captures and en passant
func (mt MoveType) IsCap() bool {
	return mt == Cap || mt == Ep || (mt >= NPromoCap && mt <= QPromoCap)
}

// IsCastle returns true for the four castle move types
func (mt MoveType) IsCastle() bool {
	return mt >= WKingSide && mt <= BQueenSide
}

// PromoCapPiece returns the promoted piece of a promotion capture
// move type for the given color. Must only be called for
// N/R/B/QPromoCap.
func (mt MoveType) PromoCapPiece(c Color) Piece {
	switch mt {
	case NPromoCap:
		return MakePiece(c, Knight)
	case RPromoCap:
		return MakePiece(c, Rook)
	case BPromoCap:
		return MakePiece(c, Bishop)
	case QPromoCap:
		return MakePiece(c, Queen)
	}
	panic(fmt.Sprintf("not a promo cap move type: %d", mt))
}

var moveTypeToString = [13]string{
	"Quiet", "Double", "Cap", "W Kingside", "B Kingside", "W Queenside",
	"B Queenside", "Promo", "N Promo Cap", "R Promo Cap", "B Promo Cap",
	"Q Promo Cap", "Ep"}

// String returns a string representation of the move type
func (mt MoveType) String() string {
	return moveTypeToString[mt]
}

// Move is a 32bit unsigned int type encoding a chess move as a
// primitive data type. 24 bits are used:
//  BITMAP
//  |-------- 3       2 2       1 1
//  |         0       4 3       6 5       8 7       0
//  |--------|--------|--------|--------|-----------
//                                         1 1 1 1 1 1  from (6 bits)
//                               1 1 1 1 1              to (6 bits)
//                       1 1 1 1                        piece (4 bits)
//               1 1 1 1                                xpiece (4 bits)
//       1 1 1 1                                        move type (4 bits)
//
// xpiece carries the captured piece for Cap/Ep, the promoted piece
// for Promo and the promotion target piece for promo captures.
type Move uint32

// NullMove is the empty non valid move
const NullMove Move = 0

const (
	toShift     = 6
	pieceShift  = 12
	xpieceShift = 16
	typeShift   = 20

	sqMask    Move = 0x3F
	pieceMask Move = 0xF
	mtypeMask Move = 0xF
)

// NewMove returns an encoded Move instance
func NewMove(from, to Square, piece, xpiece Piece, mt MoveType) Move {
	return Move(from) |
		Move(to)<<toShift |
		Move(piece)<<pieceShift |
		Move(xpiece)<<xpieceShift |
		Move(mt)<<typeShift
}

// From returns the from-Square of the move
func (m Move) From() Square {
	return Square(m & sqMask)
}

// To returns the to-Square of the move
func (m Move) To() Square {
	return Square((m >> toShift) & sqMask)
}

// Piece returns the moving piece
func (m Move) Piece() Piece {
	return Piece((m >> pieceShift) & pieceMask)
}

// XPiece returns the capture/promotion piece (see Move)
func (m Move) XPiece() Piece {
	return Piece((m >> xpieceShift) & pieceMask)
}

// MoveType returns the type of the move
func (m Move) MoveType() MoveType {
	return MoveType((m >> typeShift) & mtypeMask)
}

// StringUci returns the UCI LAN representation of the move
// (e.g. e2e4, e7e8q)
func (m Move) StringUci() string {
	if m == NullMove {
		return "0000"
	}
	var os strings.Builder
	os.WriteString(m.From().String())
	os.WriteString(m.To().String())
	switch mt := m.MoveType(); {
	case mt == Promo:
		os.WriteString(m.XPiece().PromoChar())
	case mt >= NPromoCap && mt <= QPromoCap:
		os.WriteString(mt.PromoCapPiece(Black).PromoChar())
	}
	return os.String()
}

// String returns a detailed string representation of the move
func (m Move) String() string {
	if m == NullMove {
		return "Move: { NullMove }"
	}
	return fmt.Sprintf("Move: { %-5s piece:%s xpiece:%s type:%s }",
		m.StringUci(), m.Piece().String(), m.XPiece().String(), m.MoveType().String())
}
