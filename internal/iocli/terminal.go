// Package iocli reads interactive input for the userstorage CLI.
package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Terminal reads from in and writes prompts to out.
// Secrets are read without echo when in is a terminal.
type Terminal struct {
	in     *os.File
	out    io.Writer
	reader *bufio.Reader
}

func NewTerminal(in *os.File, out io.Writer) *Terminal {
	return &Terminal{
		in:     in,
		out:    out,
		reader: bufio.NewReader(in),
	}
}

// NewStdio returns a Terminal over os.Stdin and os.Stderr
func NewStdio() *Terminal {
	return NewTerminal(os.Stdin, os.Stderr)
}

func (t *Terminal) ReadInput(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	return t.readLine()
}

func (t *Terminal) ReadSecret(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)

	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		// pipe или файл: читаем строку как есть
		return t.readLine()
	}

	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(t.out)
	if err != nil {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}
	return string(secret), nil
}

func (t *Terminal) readLine() (string, error) {
	input, err := t.reader.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return "", err
	}
	return strings.TrimRight(input, "\r\n"), nil
}
