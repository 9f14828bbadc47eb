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

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/georgib0y/rookandroll/internal/config"
	"github.com/georgib0y/rookandroll/internal/logging"
	"github.com/georgib0y/rookandroll/internal/movegen"
	"github.com/georgib0y/rookandroll/internal/position"
	"github.com/georgib0y/rookandroll/internal/search"
	"github.com/georgib0y/rookandroll/internal/testsuite"
	"github.com/georgib0y/rookandroll/internal/types"
	"github.com/georgib0y/rookandroll/internal/uci"
	"github.com/georgib0y/rookandroll/internal/util"
	"github.com/georgib0y/rookandroll/internal/version"
	"github.com/georgib0y/rookandroll/internal/web"
)

var out = message.NewPrinter(language.English)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", position.StartFen, "fen for perft and nps test")
	perft := flag.Int("perft", 0, "run perft on the given position to this depth")
	nps := flag.Int("nps", 0, "run a nodes per second test for the given number of seconds")
	threads := flag.Int("threads", 0, "number of search threads")
	testSuite := flag.String("testsuite", "", "path to an EPD file with test positions (bm opcode)")
	testMovetime := flag.Int("testtime", 2000, "search time for each test position in milliseconds")
	testSearchdepth := flag.Int("testdepth", 0, "search depth limit for each test position")
	httpAddr := flag.String("http", "", "start the http search adapter on this address (e.g. :8088)")
	profileMode := flag.String("profile", "", "write a profile\n(cpu|mem)")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	// the config file needs to be set before config.Setup() is
	// called, otherwise the default is used
	config.ConfFile = *configFile
	config.Setup()

	// command line options overwrite config file settings
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
		config.SearchLogLevel = lvl
	}
	if *threads > 0 {
		config.Settings.Search.Threads = *threads
	}

	// tables must be ready before any position is constructed
	types.Init()

	// resetting the standard log level - packages create their
	// loggers lazily but the level is read at creation time
	logging.GetLog()

	// perft
	if *perft != 0 {
		p := movegen.NewPerft()
		p.StartPerft(*fen, *perft)
		return
	}

	// nps test
	if *nps != 0 {
		runNpsTest(*fen, *nps)
		return
	}

	// test suite
	if *testSuite != "" {
		ts, err := testsuite.NewTestSuite(*testSuite,
			time.Duration(*testMovetime)*time.Millisecond, *testSearchdepth)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		ts.RunTests()
		return
	}

	// http adapter
	if *httpAddr != "" {
		srv := web.NewServer(*httpAddr)
		if err := srv.ListenAndServe(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		return
	}

	// default: start the uci handler and wait for communication
	// with the chess front end
	h := uci.NewHandler()
	h.Loop()
}

func runNpsTest(fen string, seconds int) {
	p, err := position.NewPositionFen(fen)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	s := search.NewSearch()
	sl := search.NewLimits()
	sl.MoveTime = time.Duration(seconds) * time.Second
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	result := s.LastResult()
	out.Println()
	out.Printf("NPS : %d\n", util.Nps(result.Nodes, result.SearchTime))
}

func printVersionInfo() {
	out.Printf("RookAndRoll %s\n", version.Version())
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
