package relay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	// ErrPromptClosed is returned when a Prompter is used after its exchange finished
	ErrPromptClosed = errors.New("prompt input is closed")

	// ErrNoInput is returned when the input stream ends before any text is read
	ErrNoInput = errors.New("no prompt input")
)

// Prompter is the interactive input handle for a single exchange.
// It is not safe for concurrent use.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	style  *color.Color
	closed bool
}

// NewPrompter reads lines from in and writes labels to out.
// out may be nil, in which case labels are not shown.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:    bufio.NewReader(in),
		out:   out,
		style: color.New(color.FgCyan, color.Bold),
	}
}

// ReadLine shows label and blocks until one line is read.
// Only the line terminator is removed.
func (p *Prompter) ReadLine(label string) (string, error) {
	if p.closed {
		return "", ErrPromptClosed
	}

	if label != "" && p.out != nil {
		if _, err := p.style.Fprint(p.out, label); err != nil {
			return "", fmt.Errorf("failed to write prompt label: %w", err)
		}
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read prompt: %w", err)
		}
		if line == "" {
			return "", ErrNoInput
		}
	}

	return trimNewline(line), nil
}

// Close ends the handle. It does not close the underlying reader.
func (p *Prompter) Close() error {
	p.closed = true
	return nil
}

// Closed reports whether Close has been called
func (p *Prompter) Closed() bool {
	return p.closed
}

func trimNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
