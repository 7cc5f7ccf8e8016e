package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	tsize "github.com/kopoli/go-terminal-size"
	"golang.org/x/term"

	"github.com/rwx-research/vsh/internal/messages"
)

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// terminalWidth falls back to the default banner width when f isn't a terminal.
func terminalWidth(f *os.File) int {
	if !isTerminal(f) {
		return messages.DefaultWidth
	}

	size, err := tsize.GetSize()
	if err != nil || size.Width <= 0 {
		return messages.DefaultWidth
	}

	return size.Width
}

func newLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "vsh",
	})

	if debug {
		logger.SetLevel(log.DebugLevel)
		logger.SetReportCaller(true)
	}

	return logger
}
