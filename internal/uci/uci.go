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

// Package uci implements the UCI text protocol front end of the
// engine. The handler reads commands from an input stream, drives
// the search session and writes engine output (info lines, best
// move) to an output stream.
// Described in http://wbec-ridderkerk.nl/html/UCIProtocol.html
package uci

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"

	"github.com/georgib0y/rookandroll/internal/config"
	myLogging "github.com/georgib0y/rookandroll/internal/logging"
	"github.com/georgib0y/rookandroll/internal/movegen"
	"github.com/georgib0y/rookandroll/internal/position"
	"github.com/georgib0y/rookandroll/internal/search"
	. "github.com/georgib0y/rookandroll/internal/types"
	"github.com/georgib0y/rookandroll/internal/version"
)

// Handler is the UCI protocol driver
type Handler struct {
	log    *logging.Logger
	uciLog *logging.Logger

	in  *bufio.Scanner
	out io.Writer

	search *search.Search
	pos    *position.Position
}

// NewHandler creates a new UCI handler reading from stdin and
// writing to stdout
func NewHandler() *Handler {
	return NewHandlerIo(os.Stdin, os.Stdout)
}

// NewHandlerIo creates a new UCI handler with the given streams
func NewHandlerIo(in io.Reader, out io.Writer) *Handler {
	h := &Handler{
		log:    myLogging.GetLog(),
		uciLog: myLogging.GetUciLog(),
		in:     bufio.NewScanner(in),
		out:    out,
		search: search.NewSearch(),
		pos:    position.NewPosition(),
	}
	h.search.SetInfoSender(h)
	return h
}

// Loop reads and executes commands until quit or EOF
func (h *Handler) Loop() {
	for h.in.Scan() {
		line := strings.TrimSpace(h.in.Text())
		if line == "" {
			continue
		}
		h.uciLog.Debugf("<< %s", line)
		if !h.handle(line) {
			break
		}
	}
	h.search.StopSearch()
}

// handle executes one command line, returns false on quit
func (h *Handler) handle(line string) bool {
	tokens := strings.Fields(line)
	switch tokens[0] {
	case "uci":
		h.send(fmt.Sprintf("id name RookAndRoll %s", version.Version()))
		h.send("id author George Ibbotson")
		h.send(fmt.Sprintf("option name Threads type spin default %d min 1 max 64",
			config.Settings.Search.Threads))
		h.send(fmt.Sprintf("option name MoveTime type spin default %d min 0 max 600000",
			config.Settings.Search.MoveTimeMs))
		h.send("uciok")
	case "isready":
		h.send("readyok")
	case "setoption":
		h.setOption(tokens)
	case "ucinewgame":
		h.search.NewGame()
		h.pos = position.NewPosition()
	case "position":
		h.setPosition(tokens)
	case "go":
		h.goSearch(tokens)
	case "stop":
		h.search.StopSearch()
	case "quit":
		return false
	default:
		h.log.Warningf("Unknown UCI command: %s", line)
	}
	return true
}

func (h *Handler) setOption(tokens []string) {
	name, value := "", ""
	for i := 0; i < len(tokens); i++ {
		switch tokens[i] {
		case "name":
			if i+1 < len(tokens) {
				name = tokens[i+1]
			}
		case "value":
			if i+1 < len(tokens) {
				value = tokens[i+1]
			}
		}
	}
	switch name {
	case "Threads":
		if n, err := strconv.Atoi(value); err == nil && n >= 1 {
			config.Settings.Search.Threads = n
		}
	case "MoveTime":
		if n, err := strconv.Atoi(value); err == nil && n >= 0 {
			config.Settings.Search.MoveTimeMs = n
		}
	default:
		h.log.Warningf("Unknown option: %s", name)
	}
}

// setPosition handles "position [startpos|fen <fen>] [moves ...]".
// Replayed moves feed the game history so the search can detect
// repetitions across the game.
func (h *Handler) setPosition(tokens []string) {
	h.search.StopSearch()

	movesIdx := len(tokens)
	for i, t := range tokens {
		if t == "moves" {
			movesIdx = i
			break
		}
	}

	var p *position.Position
	switch {
	case len(tokens) >= 2 && tokens[1] == "startpos":
		p = position.NewPosition()
	case len(tokens) >= 2 && tokens[1] == "fen":
		fen := strings.Join(tokens[2:movesIdx], " ")
		var err error
		p, err = position.NewPositionFen(fen)
		if err != nil {
			h.log.Errorf("position command with invalid fen: %s", fen)
			return
		}
	default:
		h.log.Error("position command requires startpos or fen")
		return
	}

	// the GUI resends the whole game on every position command -
	// rebuild the repetition history from scratch
	prevMoves := h.search.PrevMoves()
	prevMoves.Clear()
	prevMoves.Add(p.Hash())

	for i := movesIdx + 1; i < len(tokens); i++ {
		m := movegen.MoveFromUci(p, tokens[i])
		if m == NullMove {
			h.log.Errorf("position command with illegal move: %s", tokens[i])
			return
		}
		p = p.CopyMake(m)
		prevMoves.Add(p.Hash())
	}
	h.pos = p
}

func (h *Handler) goSearch(tokens []string) {
	sl := search.NewLimits()
	sl.Threads = config.Settings.Search.Threads

	readMs := func(s string) time.Duration {
		n, _ := strconv.Atoi(s)
		return time.Duration(n) * time.Millisecond
	}

	for i := 1; i < len(tokens); i++ {
		var next string
		if i+1 < len(tokens) {
			next = tokens[i+1]
		}
		switch tokens[i] {
		case "movetime":
			sl.MoveTime = readMs(next)
		case "wtime":
			sl.WhiteTime = readMs(next)
		case "btime":
			sl.BlackTime = readMs(next)
		case "winc":
			sl.WhiteInc = readMs(next)
		case "binc":
			sl.BlackInc = readMs(next)
		case "movestogo":
			sl.MovesToGo, _ = strconv.Atoi(next)
		case "depth":
			sl.Depth, _ = strconv.Atoi(next)
		case "infinite":
			sl.Infinite = true
		}
	}

	if sl.MoveTime == 0 && sl.WhiteTime == 0 && sl.BlackTime == 0 && !sl.Infinite {
		sl.MoveTime = time.Duration(config.Settings.Search.MoveTimeMs) * time.Millisecond
	}

	h.search.StartSearch(*h.pos, *sl)
}

// SendInfoLine implements search.InfoSender
func (h *Handler) SendInfoLine(line string) {
	h.send(line)
}

// SendResult implements search.InfoSender
func (h *Handler) SendResult(best Move) {
	h.send(fmt.Sprintf("bestmove %s", best.StringUci()))
}

func (h *Handler) send(line string) {
	h.uciLog.Debugf(">> %s", line)
	_, _ = fmt.Fprintln(h.out, line)
}
