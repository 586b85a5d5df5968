package relay

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"
)

func TestPrompter_ReadLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unix newline", "hello\n", "hello"},
		{"windows newline", "hello\r\n", "hello"},
		{"eof without newline", "hello", "hello"},
		{"only first line", "one\ntwo\n", "one"},
		{"blank line", "\n", ""},
		{"inner whitespace kept", "\t a  b \n", "\t a  b "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPrompter(strings.NewReader(tt.input), nil)
			got, err := p.ReadLine("")
			if err != nil {
				t.Fatalf("ReadLine() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrompter_Label(t *testing.T) {
	var out strings.Builder
	p := NewPrompter(strings.NewReader("x\n"), &out)

	if _, err := p.ReadLine("Genre? "); err != nil {
		t.Fatalf("ReadLine() error = %v", err)
	}
	if !strings.Contains(out.String(), "Genre? ") {
		t.Errorf("output = %q, want label", out.String())
	}
}

func TestPrompter_EmptyLabelWritesNothing(t *testing.T) {
	var out strings.Builder
	p := NewPrompter(strings.NewReader("x\n"), &out)

	if _, err := p.ReadLine(""); err != nil {
		t.Fatalf("ReadLine() error = %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("output = %q, want nothing", out.String())
	}
}

func TestPrompter_Errors(t *testing.T) {
	readErr := errors.New("tty gone")

	t.Run("empty input", func(t *testing.T) {
		_, err := NewPrompter(strings.NewReader(""), nil).ReadLine("")
		if !errors.Is(err, ErrNoInput) {
			t.Errorf("error = %v, want ErrNoInput", err)
		}
	})

	t.Run("reader failure", func(t *testing.T) {
		_, err := NewPrompter(iotest.ErrReader(readErr), nil).ReadLine("")
		if !errors.Is(err, readErr) {
			t.Errorf("error = %v, want %v", err, readErr)
		}
	})

	t.Run("closed", func(t *testing.T) {
		p := NewPrompter(strings.NewReader("x\n"), nil)
		_ = p.Close()
		_ = p.Close()
		if _, err := p.ReadLine(""); !errors.Is(err, ErrPromptClosed) {
			t.Errorf("error = %v, want ErrPromptClosed", err)
		}
	})
}
