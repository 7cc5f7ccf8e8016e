package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/rwx-research/vsh/internal/errors"
	"github.com/rwx-research/vsh/internal/messages"
)

// ReadlineSource reads from a terminal with line editing and in-memory history.
type ReadlineSource struct {
	instance *readline.Instance
}

func NewReadlineSource(stdin io.ReadCloser, stdout, stderr io.Writer) (*ReadlineSource, error) {
	instance, err := readline.NewEx(&readline.Config{
		Stdin:             stdin,
		Stdout:            stdout,
		Stderr:            stderr,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to initialize the line editor")
	}

	return &ReadlineSource{instance: instance}, nil
}

// ReadLine shows prompt and waits for a line. Ctrl-C discards the current line.
func (r *ReadlineSource) ReadLine(prompt string) (string, error) {
	r.instance.SetPrompt(messages.StylePrompt(prompt))

	line, err := r.instance.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", nil
	}
	return line, err
}

func (r *ReadlineSource) Close() error {
	return r.instance.Close()
}

// ReaderSource reads newline-separated input such as a pipe. Lines may be of any
// length. When Echo is set, every line is written to it after the prompt so the
// transcript reads like a session.
type ReaderSource struct {
	reader *bufio.Reader
	Echo   io.Writer
}

func NewReaderSource(r io.Reader, echo io.Writer) *ReaderSource {
	return &ReaderSource{reader: bufio.NewReader(r), Echo: echo}
}

func (s *ReaderSource) ReadLine(prompt string) (string, error) {
	line, err := readLine(s.reader)
	if err != nil {
		return "", err
	}

	if s.Echo != nil {
		fmt.Fprintf(s.Echo, "%s%s\n", prompt, line)
	}
	return line, nil
}

// readLine returns the next line without its terminator. A final line without a
// trailing newline is still returned; io.EOF is only reported once input is exhausted.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
