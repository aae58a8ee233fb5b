package prompt

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrompt(input string) (*Prompt, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return New(strings.NewReader(input), out), out
}

func TestChoice(t *testing.T) {
	p, out := newPrompt("12\nx\n7\n 3 \n")
	n, err := p.Choice("pick: ", 5)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 4, strings.Count(out.String(), "pick: "))
	assert.Contains(t, out.String(), "[error] enter a single digit")
	assert.Contains(t, out.String(), "[error] choose a number between 0 and 5")
}

func TestMenuChoice_NotTrimmed(t *testing.T) {
	p, out := newPrompt(" 1\n5\n2\n")
	n, err := p.MenuChoice("menu: ", 0, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Contains(t, out.String(), "choose one of 0, 1, 2")
}

func TestConfirm(t *testing.T) {
	for in, want := range map[string]bool{"Y\n": true, "y\n": false, "Yes\n": false, "\n": false, " Y\n": false} {
		p, _ := newPrompt(in)
		got, err := p.Confirm("? ")
		require.NoError(t, err)
		assert.Equal(t, want, got, "answer %q", in)
	}
}

func TestDate(t *testing.T) {
	p, out := newPrompt("2025-1-01\n2025-02-29\n2024-02-29\n")
	d, err := p.Date("date: ")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d)
	assert.Contains(t, out.String(), "must look like 2025-10-03")
	assert.Contains(t, out.String(), "does not exist in the calendar")
}

func TestStudentIDAndPassword(t *testing.T) {
	p, out := newPrompt("123\n05\n12a4\n0420\n")
	id, err := p.StudentID("id: ")
	require.NoError(t, err)
	assert.Equal(t, "05", id)

	pw, err := p.Password("pw: ")
	require.NoError(t, err)
	assert.Equal(t, "0420", pw)
	assert.Contains(t, out.String(), "a password is four digits")
}

func TestLine(t *testing.T) {
	p, _ := newPrompt("first\r\nlast")
	s, err := p.Line("")
	require.NoError(t, err)
	assert.Equal(t, "first", s)

	s, err = p.Line("")
	require.NoError(t, err)
	assert.Equal(t, "last", s, "a final line without newline is still returned")

	_, err = p.Line("")
	assert.ErrorIs(t, err, io.EOF)
}

func TestRestore_NoHiddenRead(t *testing.T) {
	p, _ := newPrompt("")
	assert.NoError(t, p.Restore())
}
