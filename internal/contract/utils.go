package contract

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Color variables for console output.
var (
	KDColor      = color.New(color.FgBlue, color.Bold) // KDColor mirrors the chart's K/D Ratio line.
	SkillColor   = color.New(color.FgRed, color.Bold)  // SkillColor mirrors the chart's Skill line.
	SuccessColor = color.New(color.FgGreen)            // SuccessColor marks written artifacts.
	WarnColor    = color.New(color.FgYellow)           // WarnColor marks skipped input.
)

// InputPrompt is shown before reading the input path.
const InputPrompt = "Enter file path: "

// ReadInputPath prints the prompt to w and reads one line from r.
// The answer is cleaned with CleanInputPath. A missing trailing newline is fine.
func ReadInputPath(r io.Reader, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, InputPrompt); err != nil {
		return "", err
	}
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input path: %w", err)
	}
	if err != nil && line == "" {
		return "", fmt.Errorf("no input path provided: %w", err)
	}
	return CleanInputPath(line), nil
}

// CleanInputPath trims surrounding whitespace and then any single or double
// quote characters, as left behind by "copy as path" in file managers.
func CleanInputPath(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"'`)
}

// EnsureDir creates dir and any parents. It is a no-op when dir exists.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create output directory %s: %w", dir, err)
	}
	return nil
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// TruncatePath truncates a file path to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 to ensure there's space for both the "..." prefix and at least one character of content.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// Paint applies c to text when colors are enabled.
func Paint(c *color.Color, text string, enabled bool) string {
	if !enabled {
		return text
	}
	return c.Sprint(text)
}
