// Package shell drives the read-parse-dispatch loop over interactive, piped or script input.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/rwx-research/vsh/internal/commands"
	"github.com/rwx-research/vsh/internal/errors"
	"github.com/rwx-research/vsh/internal/messages"
	"github.com/rwx-research/vsh/internal/parser"
)

// LineSource yields input lines one at a time and returns io.EOF once input is exhausted.
type LineSource interface {
	ReadLine(prompt string) (string, error)
}

type Shell struct {
	Env      *commands.Env
	Registry *commands.Registry
	Stdout   io.Writer
	Logger   *log.Logger
}

func New(env *commands.Env, registry *commands.Registry, stdout io.Writer, logger *log.Logger) *Shell {
	return &Shell{
		Env:      env,
		Registry: registry,
		Stdout:   stdout,
		Logger:   logger,
	}
}

func (s *Shell) Prompt() string {
	return messages.FormatPrompt(s.Env.Username, s.Env.Hostname, s.Env.FS.CurrentDirectory())
}

// Execute parses and runs a single line. A command that panics is reported as an error
// instead of taking the session down with it.
func (s *Shell) Execute(line string) (output commands.Output, err error) {
	name, args := parser.Parse(line)
	if name == "" {
		return commands.NoOutput, nil
	}

	defer func() {
		if r := recover(); r != nil {
			output = commands.NoOutput
			err = errors.Errorf("%s: %v", name, r)
		}
	}()

	return s.Registry.Dispatch(s.Env, name, args), nil
}

// Run reads lines from source until it is exhausted or a command ends the session.
func (s *Shell) Run(source LineSource) error {
	for s.Env.Running {
		line, err := source.ReadLine(s.Prompt())
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "unable to read input")
		}

		output, err := s.Execute(line)
		if err != nil {
			s.Logger.Debug("Command failed", "line", line, "error", err)
			fmt.Fprintf(s.Stdout, "error executing command: %s\n", err)
			continue
		}
		s.print(output)
	}

	return nil
}

// RunScript executes every non-blank, non-comment line of script, echoing each one after
// the prompt. Failing lines are reported and skipped.
func (s *Shell) RunScript(script io.Reader, name string, width int) error {
	s.Logger.Info("Running script", "script", name)
	fmt.Fprintf(s.Stdout, "\n%s\n\n", messages.FormatBanner("RUNNING STARTUP SCRIPT: "+name, width))

	reader := bufio.NewReader(script)
	lineNumber := 0
	for s.Env.Running {
		raw, err := readLine(reader)
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrapf(err, "unable to read script %q", name)
		}
		lineNumber++

		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fmt.Fprintf(s.Stdout, "%s%s\n", s.Prompt(), line)

		output, err := s.Execute(line)
		if err != nil {
			fmt.Fprintf(s.Stdout, "error on line %d: %s\n", lineNumber, err)
			continue
		}
		s.print(output)
	}

	fmt.Fprintf(s.Stdout, "\n%s\n\n", messages.FormatBanner("SCRIPT FINISHED", width))
	s.Logger.Info("Finished script", "script", name, "lines", lineNumber)
	return nil
}

func (s *Shell) print(output commands.Output) {
	if !output.HasOutput() || output.String() == "" {
		return
	}

	fmt.Fprintln(s.Stdout, output.String())
}
