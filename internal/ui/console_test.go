package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLineTrimsAndPrompts(t *testing.T) {
	out := &bytes.Buffer{}
	c := NewConsole(strings.NewReader("  Dune  \n"), out)

	line, err := c.ReadLine("Enter movie title: ")
	require.NoError(t, err)
	assert.Equal(t, "Dune", line)
	assert.Equal(t, "Enter movie title: ", out.String())
}

func TestReadLineReportsEOF(t *testing.T) {
	c := NewConsole(strings.NewReader(""), &bytes.Buffer{})
	_, err := c.ReadLine("> ")
	assert.Error(t, err)
}

func TestReadLineAcceptsFinalUnterminatedLine(t *testing.T) {
	c := NewConsole(strings.NewReader("42"), &bytes.Buffer{})
	line, err := c.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "42", line)
}

func TestReadInt(t *testing.T) {
	c := NewConsole(strings.NewReader("7\nabc\n"), &bytes.Buffer{})

	n, ok, err := c.ReadInt("> ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 7, n)

	_, ok, err = c.ReadInt("> ")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStylesDegradeOffTerminal(t *testing.T) {
	out := &bytes.Buffer{}
	c := NewConsole(strings.NewReader(""), out)

	c.Title("=== Admin Menu ===")
	c.Error("Invalid choice!")
	c.Success("Booking Successful!")

	// Writing to a buffer is not a terminal; the text must come
	// through unstyled and greppable.
	assert.Contains(t, out.String(), "=== Admin Menu ===")
	assert.Contains(t, out.String(), "Invalid choice!")
	assert.Contains(t, out.String(), "Booking Successful!")
}
