package messages

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultWidth is used for banners when the terminal width is unknown.
const DefaultWidth = 60

var promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

// FormatPrompt renders the shell prompt, abbreviating the user's home directory to ~.
func FormatPrompt(username, hostname, cwd string) string {
	return fmt.Sprintf("[%s@%s %s]$ ", username, hostname, AbbreviateHome(username, cwd))
}

// AbbreviateHome replaces a leading /home/<username> with ~ when it matches a whole
// path segment.
func AbbreviateHome(username, path string) string {
	home := "/home/" + username
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+"/") {
		return "~" + strings.TrimPrefix(path, home)
	}
	return path
}

// StylePrompt colors a prompt for display on a terminal.
func StylePrompt(prompt string) string {
	return promptStyle.Render(prompt)
}

// FormatBanner frames title between two rules of the given width.
func FormatBanner(title string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}

	rule := strings.Repeat("=", width)
	return fmt.Sprintf("%s\n%s\n%s", rule, title, rule)
}

// FormatWelcome is printed when an interactive session starts.
func FormatWelcome(username, hostname, system string) string {
	var builder strings.Builder

	builder.WriteString("UNIX shell emulator\n")
	if system != "" {
		builder.WriteString(fmt.Sprintf("System: %s\n", system))
	}
	builder.WriteString(fmt.Sprintf("User: %s@%s\n", username, hostname))
	builder.WriteString("Type 'help' for a list of commands or 'exit' to quit\n")

	return builder.String()
}
