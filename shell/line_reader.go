package shell

import (
	"bufio"
	"fmt"
	"io"

	"github.com/chzyer/readline"
)

// LineReader reads a single line of input after displaying prompt. It
// abstracts over the interactive readline instance used by the real
// command-line entry point and the plain scanner used by tests.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// readlineReader adapts a *readline.Instance to LineReader, giving the
// shell history and line editing when it is run against a terminal.
type readlineReader struct {
	rl *readline.Instance
}

// NewReadlineReader builds a LineReader backed by github.com/chzyer/readline.
// Callers are responsible for closing the underlying instance.
func NewReadlineReader(rl *readline.Instance) LineReader {
	return &readlineReader{rl: rl}
}

func (r *readlineReader) Prompt(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	return r.rl.Readline()
}

// scanReader adapts a bufio.Scanner to LineReader, writing each prompt
// to w before blocking for the next line. It is used for scripted and
// test input where a full terminal is unavailable.
type scanReader struct {
	scanner *bufio.Scanner
	w       io.Writer
}

// NewScanReader builds a LineReader that echoes prompts to w and reads
// lines from r.
func NewScanReader(r io.Reader, w io.Writer) LineReader {
	return &scanReader{scanner: bufio.NewScanner(r), w: w}
}

func (s *scanReader) Prompt(prompt string) (string, error) {
	fmt.Fprint(s.w, prompt)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}
