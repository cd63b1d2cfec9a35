// Package input abstracts interactive terminal input so the record
// operations can be driven by scripted values in tests.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"
)

// Prompter collects lines of user input.
type Prompter interface {
	// Line prints the label and returns the trimmed line typed by the user.
	Line(label string) (string, error)
	// Secret reads a line without echoing it back to the terminal.
	Secret(label string) (string, error)
}

// TerminalPrompter reads from stdin, hiding secret input when stdin is a
// real terminal.
type TerminalPrompter struct {
	reader *bufio.Reader
}

// NewTerminalPrompter creates a prompter bound to stdin.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{reader: bufio.NewReader(os.Stdin)}
}

// Line prompts on stdout and reads one line from stdin.
func (p *TerminalPrompter) Line(label string) (string, error) {
	fmt.Print(label)
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Secret prompts on stdout and reads one line without echo. When stdin is
// not a terminal (piped input), it falls back to a plain line read.
func (p *TerminalPrompter) Secret(label string) (string, error) {
	fmt.Print(label)
	if term.IsTerminal(int(syscall.Stdin)) {
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return strings.TrimSpace(string(raw)), nil
	}

	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ScriptPrompter replays canned responses and records every label shown.
// Once the responses are exhausted it returns io.EOF, so a runaway prompt
// loop fails a test instead of hanging it.
type ScriptPrompter struct {
	Responses []string
	Labels    []string

	next int
}

// NewScriptPrompter creates a prompter that replays the given responses.
func NewScriptPrompter(responses ...string) *ScriptPrompter {
	return &ScriptPrompter{Responses: responses}
}

// Line returns the next scripted response.
func (p *ScriptPrompter) Line(label string) (string, error) {
	p.Labels = append(p.Labels, label)
	if p.next >= len(p.Responses) {
		return "", io.EOF
	}
	resp := p.Responses[p.next]
	p.next++
	return strings.TrimSpace(resp), nil
}

// Secret behaves like Line; nothing is echoed in tests anyway.
func (p *ScriptPrompter) Secret(label string) (string, error) {
	return p.Line(label)
}
