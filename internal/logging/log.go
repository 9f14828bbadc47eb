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

// Package logging is a helper for the "github.com/op/go-logging"
// package to reduce the lines of code within each go file to one
// line. The functions return Logger instances which are configured
// with the necessary backends and formatters.
package logging

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/op/go-logging"

	"github.com/georgib0y/rookandroll/internal/config"
)

var (
	standardLog = logging.MustGetLogger("standard")
	searchLog   = logging.MustGetLogger("search")
	testLog     = logging.MustGetLogger("test")
	uciLog      = logging.MustGetLogger("UCI ")

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
)

// GetLog returns an instance of a standard Logger preconfigured with
// an os.Stderr backend and a "normal" logging format
// (e.g. time - file - level)
func GetLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stderr, "", log.Lmsgprefix)
	formatter := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatter)
	leveled.SetLevel(logging.Level(config.LogLevel), "")
	standardLog.SetBackend(leveled)
	return standardLog
}

// GetSearchLog returns an instance of a Logger preconfigured for
// usage in the search itself
func GetSearchLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stderr, "", log.Lmsgprefix)
	formatter := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatter)
	leveled.SetLevel(logging.Level(config.SearchLogLevel), "")
	searchLog.SetBackend(leveled)
	return searchLog
}

// GetTestLog returns an instance of a standard Logger preconfigured
// for test output
func GetTestLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatter := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatter)
	leveled.SetLevel(logging.Level(config.TestLogLevel), "")
	testLog.SetBackend(leveled)
	return testLog
}

// GetUciLog returns an instance of a special Logger preconfigured for
// logging all UCI protocol communication to os.Stderr and, when a log
// path is configured, to a log file.
// Format is very simple "time UCI <uci command>"
func GetUciLog() *logging.Logger {
	uciFormat := logging.MustStringFormatter(`%{time:15:04:05.000} UCI %{message}`)
	backend := logging.NewLogBackend(os.Stderr, "", log.Lmsgprefix)
	formatter := logging.NewBackendFormatter(backend, uciFormat)
	leveled := logging.AddModuleLevel(formatter)
	leveled.SetLevel(logging.DEBUG, "")

	logPath := config.Settings.Log.LogPath
	if logPath == "" {
		uciLog.SetBackend(leveled)
		return uciLog
	}

	programName, _ := os.Executable()
	exeName := strings.TrimSuffix(filepath.Base(programName), ".exe")
	uciLogFilePath := filepath.Join(logPath, exeName+"_ucilog.log")

	uciLogFile, err := os.OpenFile(uciLogFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Println("UCI logfile could not be created:", err)
		uciLog.SetBackend(leveled)
		return uciLog
	}
	backend2 := logging.NewLogBackend(uciLogFile, "", log.Lmsgprefix)
	formatter2 := logging.NewBackendFormatter(backend2, uciFormat)
	leveled2 := logging.AddModuleLevel(formatter2)
	leveled2.SetLevel(logging.DEBUG, "")
	uciLog.SetBackend(logging.SetBackend(leveled, leveled2))
	return uciLog
}
