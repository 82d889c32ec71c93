package iocli

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newPipeTerminal подменяет ввод pipe'ом с заданным содержимым
func newPipeTerminal(t *testing.T, input string) (*Terminal, *bytes.Buffer) {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	// Пишем в pipe в отдельной горутине, имитируя ввод пользователя
	go func() {
		_, _ = w.Write([]byte(input))
		_ = w.Close()
	}()

	var out bytes.Buffer
	return NewTerminal(r, &out), &out
}

func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
	assert.Equal(t, os.Stdin, stdio.in)
}

func TestReadInput(t *testing.T) {
	term, out := newPipeTerminal(t, "user input\nsecond line\n")

	result, err := term.ReadInput("Prompt: ")
	require.NoError(t, err)
	assert.Equal(t, "user input", result)
	assert.Equal(t, "Prompt: ", out.String())

	result, err = term.ReadInput("Again: ")
	require.NoError(t, err)
	assert.Equal(t, "second line", result)
}

func TestReadSecret_NotTerminal(t *testing.T) {
	term, out := newPipeTerminal(t, "s3cret value\r\n")

	secret, err := term.ReadSecret("Secret: ")
	require.NoError(t, err)
	assert.Equal(t, "s3cret value", secret)
	assert.Equal(t, "Secret: ", out.String())
}

func TestReadSecret_NoTrailingNewline(t *testing.T) {
	term, _ := newPipeTerminal(t, "last")

	secret, err := term.ReadSecret("Secret: ")
	require.NoError(t, err)
	assert.Equal(t, "last", secret)
}

func TestReadInput_EOF(t *testing.T) {
	term, _ := newPipeTerminal(t, "")

	_, err := term.ReadInput("Prompt: ")
	assert.Error(t, err)
}
