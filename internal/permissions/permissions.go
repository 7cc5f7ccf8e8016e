// Package permissions converts between the numeric (three octal digits) and symbolic
// (rwx, u+x, go-w, ...) representations of UNIX permission bits.
package permissions

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rwx-research/vsh/internal/errors"
)

const (
	Read    = 4
	Write   = 2
	Execute = 1

	// Malformed is rendered for permission strings that aren't exactly three digits.
	Malformed = "---------"
)

var (
	numericMode = regexp.MustCompile(`^\d{3}$`)
	clauseMode  = regexp.MustCompile(`^([ugoa]+)([-+=])([rwx]+)$`)

	symbols = map[byte]string{
		'0': "---",
		'1': "--x",
		'2': "-w-",
		'3': "-wx",
		'4': "r--",
		'5': "r-x",
		'6': "rw-",
		'7': "rwx",
	}
)

// ModeError names the part of a chmod mode that could not be parsed.
type ModeError struct {
	Clause string
}

func (e *ModeError) Error() string {
	return fmt.Sprintf("invalid mode: '%s'", e.Clause)
}

func (e *ModeError) Is(target error) bool {
	return target == errors.ErrInvalidMode
}

// ToSymbolic renders a permission string such as "755" as "rwxr-xr-x".
func ToSymbolic(perms string) string {
	if len(perms) != 3 {
		return Malformed
	}

	var builder strings.Builder
	for i := 0; i < len(perms); i++ {
		symbol, ok := symbols[perms[i]]
		if !ok {
			symbol = "---"
		}
		builder.WriteString(symbol)
	}

	return builder.String()
}

// Valid reports whether perms is exactly three octal digits.
func Valid(perms string) bool {
	if len(perms) != 3 {
		return false
	}

	for i := 0; i < len(perms); i++ {
		if perms[i] < '0' || perms[i] > '7' {
			return false
		}
	}

	return true
}

// IsExecutable reports whether the execute bit is set for any of user, group or other.
func IsExecutable(perms string) bool {
	for i := 0; i < len(perms); i++ {
		if perms[i] >= '0' && perms[i] <= '9' && (perms[i]-'0')&Execute != 0 {
			return true
		}
	}

	return false
}

// ApplyChmod computes the permissions resulting from applying mode to current. Mode is
// either three octal digits, which replace the permissions outright, or a
// comma-separated list of symbolic clauses applied left to right.
func ApplyChmod(mode string, current string) (string, error) {
	if numericMode.MatchString(mode) {
		if !Valid(mode) {
			return "", errors.WithStack(&ModeError{Clause: mode})
		}
		return mode, nil
	}

	if !Valid(current) {
		return "", errors.Wrapf(errors.ErrInvalidPermissions, "current permissions %q", current)
	}

	digits := [3]int{
		int(current[0] - '0'),
		int(current[1] - '0'),
		int(current[2] - '0'),
	}

	for _, clause := range strings.Split(mode, ",") {
		clause = strings.TrimSpace(clause)

		match := clauseMode.FindStringSubmatch(clause)
		if match == nil {
			return "", errors.WithStack(&ModeError{Clause: clause})
		}
		who, operator, perms := match[1], match[2][0], match[3]

		value := 0
		if strings.ContainsRune(perms, 'r') {
			value |= Read
		}
		if strings.ContainsRune(perms, 'w') {
			value |= Write
		}
		if strings.ContainsRune(perms, 'x') {
			value |= Execute
		}

		for _, target := range who {
			for _, idx := range targetIndexes(target) {
				digits[idx] = apply(digits[idx], operator, value)
			}
		}
	}

	return string([]byte{
		byte('0' + digits[0]),
		byte('0' + digits[1]),
		byte('0' + digits[2]),
	}), nil
}

func targetIndexes(target rune) []int {
	switch target {
	case 'u':
		return []int{0}
	case 'g':
		return []int{1}
	case 'o':
		return []int{2}
	default:
		return []int{0, 1, 2}
	}
}

func apply(current int, operator byte, value int) int {
	switch operator {
	case '+':
		return current | value
	case '-':
		return current &^ value
	default:
		return value
	}
}
