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

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	. "github.com/georgib0y/rookandroll/internal/types"
)

// regex for first part of fen (position of pieces)
var regexFenPos = regexp.MustCompile("^[0-8pPnNbBrRqQkK/]+$")

// regex for next player color in fen
var regexWorB = regexp.MustCompile("^[w|b]$")

// regex for castle rights in fen
var regexCastleRights = regexp.MustCompile("^(K?Q?k?q?|-)$")

// regex for en passant square in fen
var regexEnPassant = regexp.MustCompile("^([a-h][36]|-)$")

// setupBoard sets up a position based on a fen. This is basically the
// only way to get a valid Position instance. The piece placement part
// is required, all other parts have defaults (white to move, no
// castle rights, no en passant). The full move counter is accepted
// but ignored.
func (p *Position) setupBoard(fen string) error {
	fen = strings.TrimSpace(fen)
	fenParts := strings.Split(fen, " ")

	if len(fenParts) == 0 || fenParts[0] == "" {
		return errors.New("fen must not be empty")
	}

	if !regexFenPos.MatchString(fenParts[0]) {
		return errors.New("fen position contains invalid characters")
	}

	// fen string starts at a8 and runs to h1
	// with / jumping to file A of the next lower rank
	currentSquare := SqA8
	for _, c := range fenParts[0] {
		if number, e := strconv.Atoi(string(c)); e == nil { // is number
			currentSquare += Square(number)
		} else if string(c) == "/" { // rank separator
			if currentSquare < 16 {
				return errors.New("fen has too many ranks")
			}
			currentSquare -= 16
		} else { // find piece
			piece := PieceFromChar(string(c))
			if piece == PieceNone {
				return fmt.Errorf("invalid piece character: %s", string(c))
			}
			if !currentSquare.IsValid() {
				return errors.New("fen piece placement out of bounds")
			}
			p.putPiece(piece, currentSquare)
			currentSquare++
		}
	}
	if currentSquare != SqA2 { // after reading h1 we land on a2
		return errors.New("fen did not cover all 64 squares")
	}

	// exactly one king per side is an invariant of the engine
	if p.pieces[WhiteKing].PopCount() != 1 || p.pieces[BlackKing].PopCount() != 1 {
		return errors.New("fen must have exactly one king per side")
	}

	// defaults
	p.ep = SqNone

	// next player
	if len(fenParts) >= 2 {
		if !regexWorB.MatchString(fenParts[1]) {
			return errors.New("fen next player contains invalid characters")
		}
		if fenParts[1] == "b" {
			p.ctm = Black
			p.hash ^= zobrist.ctm
		}
	}

	// castle rights
	if len(fenParts) >= 3 {
		if !regexCastleRights.MatchString(fenParts[2]) {
			return errors.New("fen castle rights contains invalid characters")
		}
		for _, c := range fenParts[2] {
			switch string(c) {
			case "K":
				p.castleState |= CastleWKS
			case "Q":
				p.castleState |= CastleWQS
			case "k":
				p.castleState |= CastleBKS
			case "q":
				p.castleState |= CastleBQS
			}
		}
		for i := 0; i < 4; i++ {
			if p.castleState&(1<<i) != 0 {
				p.hash ^= zobrist.castleRights[i]
			}
		}
	}

	// en passant
	if len(fenParts) >= 4 {
		if !regexEnPassant.MatchString(fenParts[3]) {
			return errors.New("fen en passant contains invalid characters")
		}
		if fenParts[3] != "-" {
			p.ep = MakeSquare(fenParts[3])
			p.hash ^= zobrist.epFile[p.ep.FileOf()]
		}
	}

	// half move clock (50 moves rule)
	if len(fenParts) >= 5 {
		number, e := strconv.Atoi(fenParts[4])
		if e != nil {
			return e
		}
		p.halfmove = number
	}

	// the full move number (6th field) carries no search semantics
	// and is ignored

	return nil
}

// StringFen returns a string with the FEN of the current position
func (p *Position) StringFen() string {
	var fen strings.Builder
	// pieces
	for r := Rank1; r <= Rank8; r++ {
		emptySquares := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.PieceOn(SquareOf(f, Rank8-r))
			if pc == PieceNone {
				emptySquares++
			} else {
				if emptySquares > 0 {
					fen.WriteString(strconv.Itoa(emptySquares))
					emptySquares = 0
				}
				fen.WriteString(pc.String())
			}
		}
		if emptySquares > 0 {
			fen.WriteString(strconv.Itoa(emptySquares))
		}
		if r < Rank8 {
			fen.WriteString("/")
		}
	}
	fen.WriteString(" ")
	fen.WriteString(p.ctm.String())
	fen.WriteString(" ")
	fen.WriteString(p.castleState.String())
	fen.WriteString(" ")
	fen.WriteString(p.ep.String())
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(p.halfmove))
	return fen.String()
}
