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

// Package web provides a minimal HTTP adapter around the search:
// POST a FEN to /search and receive the best move in LAN. Meant for
// quick experiments with graphical front ends, not as a full
// engine protocol.
package web

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/op/go-logging"

	"github.com/georgib0y/rookandroll/internal/config"
	myLogging "github.com/georgib0y/rookandroll/internal/logging"
	"github.com/georgib0y/rookandroll/internal/position"
	"github.com/georgib0y/rookandroll/internal/search"
)

// Server wraps a search session behind an HTTP endpoint
type Server struct {
	log    *logging.Logger
	search *search.Search
	addr   string
}

// NewServer creates a server listening on the given address
func NewServer(addr string) *Server {
	return &Server{
		log:    myLogging.GetLog(),
		search: search.NewSearch(),
		addr:   addr,
	}
}

// ListenAndServe blocks serving search requests
func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/search", s.handleSearch)
	s.log.Infof("http adapter listening on %s", s.addr)
	return http.ListenAndServe(s.addr, mux)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST a FEN to /search", http.StatusMethodNotAllowed)
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, 256))
	if err != nil {
		http.Error(w, "could not read body", http.StatusBadRequest)
		return
	}

	p, err := position.NewPositionFen(string(body))
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid fen: %s", err), http.StatusBadRequest)
		return
	}

	sl := search.NewLimits()
	sl.MoveTime = time.Duration(config.Settings.Search.MoveTimeMs) * time.Millisecond
	sl.Threads = config.Settings.Search.Threads

	s.search.StartSearch(*p, *sl)
	s.search.WaitWhileSearching()
	result := s.search.LastResult()

	_, _ = fmt.Fprintln(w, result.BestMove.StringUci())
}
