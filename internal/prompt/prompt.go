// Package prompt is the terminal side of the program: it prints messages
// and returns validated scalar answers.  Invalid answers never escape a
// prompt; the prompt explains what was wrong and asks again.  The only
// error a prompt returns is a read error, io.EOF once input is exhausted.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/iliyamo/kucinema/internal/record"
)

// Prompt reads answers from in and writes questions to out.
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
	fd  int // terminal file descriptor for hidden input, -1 if none

	mu    sync.Mutex
	saved *term.State // terminal state while a hidden read is running
}

// New returns a Prompt.  When in is a terminal, passwords are read
// without echo.
func New(in io.Reader, out io.Writer) *Prompt {
	fd := -1
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd = int(f.Fd())
	}
	return &Prompt{in: bufio.NewReader(in), out: out, fd: fd}
}

// Printf writes formatted text.
func (p *Prompt) Printf(format string, args ...any) { fmt.Fprintf(p.out, format, args...) }

// Println writes a line.
func (p *Prompt) Println(args ...any) { fmt.Fprintln(p.out, args...) }

// Errorf writes an error line.  It is used for input mistakes the operator
// can fix by answering again.
func (p *Prompt) Errorf(format string, args ...any) {
	fmt.Fprintf(p.out, "[error] "+format+"\n", args...)
}

// Warnf writes a warning line.
func (p *Prompt) Warnf(format string, args ...any) {
	fmt.Fprintf(p.out, "[warning] "+format+"\n", args...)
}

// Line prints msg and returns the next input line without its line ending.
func (p *Prompt) Line(msg string) (string, error) {
	fmt.Fprint(p.out, msg)
	s, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && s != "" {
			return strings.TrimRight(s, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

// Choice asks for a single digit between 0 and limit inclusive.  Surrounding
// whitespace is ignored.
func (p *Prompt) Choice(msg string, limit int) (int, error) {
	for {
		s, err := p.Line(msg)
		if err != nil {
			return 0, err
		}
		s = strings.TrimSpace(s)
		if len(s) != 1 || s[0] < '0' || s[0] > '9' {
			p.Errorf("enter a single digit")
			continue
		}
		n, _ := strconv.Atoi(s)
		if n > limit {
			p.Errorf("choose a number between 0 and %d", limit)
			continue
		}
		return n, nil
	}
}

// MenuChoice asks for a single digit that must be one of allowed.  Unlike
// Choice the answer is not trimmed.
func (p *Prompt) MenuChoice(msg string, allowed ...int) (int, error) {
	for {
		s, err := p.Line(msg)
		if err != nil {
			return 0, err
		}
		if len(s) != 1 || s[0] < '0' || s[0] > '9' {
			p.Errorf("enter a single digit")
			continue
		}
		n := int(s[0] - '0')
		for _, a := range allowed {
			if a == n {
				return n, nil
			}
		}
		p.Errorf("choose one of %s", joinInts(allowed))
	}
}

// Confirm asks a yes/no question.  Only an exact "Y" is a yes; anything
// else, including an empty answer, is a no.
func (p *Prompt) Confirm(msg string) (bool, error) {
	s, err := p.Line(msg)
	if err != nil {
		return false, err
	}
	return s == "Y", nil
}

// Date asks for a YYYY-MM-DD date that exists in the calendar.
func (p *Prompt) Date(msg string) (string, error) {
	for {
		s, err := p.Line(msg)
		if err != nil {
			return "", err
		}
		err = record.CheckDate(s)
		switch {
		case err == nil:
			return s, nil
		case errors.Is(err, record.ErrSyntax):
			p.Errorf("the date must look like 2025-10-03")
		default:
			p.Errorf("that date does not exist in the calendar")
		}
	}
}

// StudentID asks for a two digit student number.
func (p *Prompt) StudentID(msg string) (string, error) {
	for {
		s, err := p.Line(msg)
		if err != nil {
			return "", err
		}
		if record.ValidStudentID(s) {
			return s, nil
		}
		p.Errorf("a student number is two digits, e.g. 00, 07, 42")
	}
}

// Password asks for a four digit password, hiding it on a terminal.
func (p *Prompt) Password(msg string) (string, error) {
	for {
		s, err := p.secret(msg)
		if err != nil {
			return "", err
		}
		if record.ValidPassword(s) {
			return s, nil
		}
		p.Errorf("a password is four digits, e.g. 0000, 0420, 1234")
	}
}

func (p *Prompt) secret(msg string) (string, error) {
	if p.fd < 0 {
		return p.Line(msg)
	}
	fmt.Fprint(p.out, msg)
	state, err := term.GetState(p.fd)
	if err != nil {
		return "", err
	}
	p.setSaved(state)
	b, err := term.ReadPassword(p.fd)
	p.setSaved(nil)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (p *Prompt) setSaved(st *term.State) {
	p.mu.Lock()
	p.saved = st
	p.mu.Unlock()
}

// Restore puts the terminal back into the state it had before a hidden
// read that is still in progress.  It may be called from another
// goroutine and does nothing when no hidden read is running.
func (p *Prompt) Restore() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.saved == nil {
		return nil
	}
	return term.Restore(p.fd, p.saved)
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
