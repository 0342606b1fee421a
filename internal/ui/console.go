// Package ui implements the line-oriented console surface: prompted
// reads from standard input and styled writes to standard output.
// Styling uses lipgloss bound to the output writer, so when output is
// not a terminal (tests, pipes) everything degrades to plain text.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Console couples an input reader with an output writer and the
// styles used to render titles, confirmations and errors.  Handlers
// receive a *Console and do all their user interaction through it.
type Console struct {
	in  *bufio.Reader
	out io.Writer

	titleStyle   lipgloss.Style
	errorStyle   lipgloss.Style
	successStyle lipgloss.Style
}

// NewConsole builds a Console over the given streams.
func NewConsole(in io.Reader, out io.Writer) *Console {
	r := lipgloss.NewRenderer(out)
	return &Console{
		in:           bufio.NewReader(in),
		out:          out,
		titleStyle:   r.NewStyle().Bold(true),
		errorStyle:   r.NewStyle().Foreground(lipgloss.Color("9")),
		successStyle: r.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

// ReadLine prints prompt and returns the next input line with
// surrounding whitespace trimmed.  The error is non-nil once the
// input stream is exhausted.
func (c *Console) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadInt reads a line like ReadLine and parses it as an integer.
// ok is false when the line is not a valid number.
func (c *Console) ReadInt(prompt string) (n int, ok bool, err error) {
	line, err := c.ReadLine(prompt)
	if err != nil {
		return 0, false, err
	}
	n, convErr := strconv.Atoi(line)
	return n, convErr == nil, nil
}

// Title prints a bold section or menu heading.
func (c *Console) Title(s string) {
	fmt.Fprintln(c.out, c.titleStyle.Render(s))
}

// Error prints a user-facing failure message.
func (c *Console) Error(s string) {
	fmt.Fprintln(c.out, c.errorStyle.Render(s))
}

// Success prints a confirmation message.
func (c *Console) Success(s string) {
	fmt.Fprintln(c.out, c.successStyle.Render(s))
}

// Println prints a plain line of output.
func (c *Console) Println(s string) {
	fmt.Fprintln(c.out, s)
}

// Printf prints formatted plain output.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}
