package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrEmptyInput is returned when a required answer was left blank.
var ErrEmptyInput = errors.New("terminal: empty input")

// Prompter reads answers from in and writes prompts to out.
type Prompter struct {
	in     *bufio.Reader
	fd     int
	isTTY  bool
	out    io.Writer
	outTTY bool
	secret func(fd int) ([]byte, error)

	echoed []int // characters per prompt line, oldest first
}

// NewPrompter returns a Prompter reading from in. Secrets are read without
// echo when in is a terminal.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{in: bufio.NewReader(in), out: out, fd: -1, secret: term.ReadPassword}
	if f, ok := in.(*os.File); ok {
		p.fd = int(f.Fd())
		p.isTTY = term.IsTerminal(p.fd)
	}
	if f, ok := out.(*os.File); ok {
		p.outTTY = term.IsTerminal(int(f.Fd()))
	}
	return p
}

// ReadLine prints prompt and returns the trimmed line. A non-empty def is
// shown in brackets and returned for a blank answer.
func (p *Prompter) ReadLine(prompt, def string) (string, error) {
	var n int
	if def != "" {
		n, _ = fmt.Fprintf(p.out, "%s [%s]: ", prompt, def)
	} else {
		n, _ = fmt.Fprintf(p.out, "%s: ", prompt)
	}
	line, err := p.in.ReadString('\n')
	p.echoed = append(p.echoed, n+len(strings.TrimRight(line, "\r\n")))
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		if def == "" {
			return "", ErrEmptyInput
		}
		return def, nil
	}
	return line, nil
}

// ReadSecret prints prompt and reads a value without echoing it.
// Trailing newlines are stripped, other whitespace is kept.
func (p *Prompter) ReadSecret(prompt string) (string, error) {
	n, _ := fmt.Fprintf(p.out, "%s: ", prompt)
	p.echoed = append(p.echoed, n)
	if !p.isTTY {
		line, err := p.in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return "", err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			return "", ErrEmptyInput
		}
		return line, nil
	}

	b, err := p.secret(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "", ErrEmptyInput
	}
	return string(b), nil
}

// Erase removes the prompt lines written so far from a terminal. It does
// nothing when out is not one.
func (p *Prompter) Erase() {
	if !p.outTTY {
		return
	}
	for i := len(p.echoed) - 1; i >= 0; i-- {
		ClearPreviousLines(p.out, p.echoed[i])
	}
	p.echoed = nil
}
