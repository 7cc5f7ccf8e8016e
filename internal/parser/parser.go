// Package parser splits a line of shell input into a command name and its arguments.
package parser

import (
	"strings"
	"unicode"

	"github.com/anmitsu/go-shlex"
)

// emptyWord stands in for a quoted empty word ("" or '') while tokenizing, since the
// tokenizer drops empty tokens.
const emptyWord = "\uE000"

// Parse tokenizes line using POSIX shell quoting. Lines that can't be tokenized, such
// as those with an unterminated quote, fall back to splitting on whitespace. An empty
// name means the line held no command.
func Parse(line string) (string, []string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", nil
	}

	parts, err := shlex.Split(markEmptyWords(line), true)
	if err != nil {
		parts = strings.Fields(line)
	} else {
		for i, part := range parts {
			if part == emptyWord {
				parts[i] = ""
			}
		}
	}

	if len(parts) == 0 {
		return "", nil
	}

	return parts[0], parts[1:]
}

// markEmptyWords replaces every standalone "" or '' outside of quotes with emptyWord.
func markEmptyWords(line string) string {
	runes := []rune(line)

	var (
		builder strings.Builder
		quote   rune
		escaped bool
	)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch {
		case escaped:
			escaped = false
		case quote != 0:
			if r == quote {
				quote = 0
			} else if r == '\\' && quote == '"' {
				escaped = true
			}
		case r == '\\':
			escaped = true
		case r == '"' || r == '\'':
			if i+1 < len(runes) && runes[i+1] == r && isBoundary(runes, i-1) && isBoundary(runes, i+2) {
				builder.WriteString(emptyWord)
				i++
				continue
			}
			quote = r
		}

		builder.WriteRune(r)
	}

	return builder.String()
}

func isBoundary(runes []rune, i int) bool {
	return i < 0 || i >= len(runes) || unicode.IsSpace(runes[i])
}
