package cli

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLineTrimsLineEndings(t *testing.T) {
	t.Parallel()

	reader := bufio.NewReader(strings.NewReader("first\r\nsecond"))
	first, err := readLine(reader)
	require.NoError(t, err)
	assert.Equal(t, "first", first)

	second, err := readLine(reader)
	require.NoError(t, err)
	assert.Equal(t, "second", second)

	_, err = readLine(reader)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestConfirmPassword(t *testing.T) {
	t.Parallel()

	password, err := confirmPassword("Secret 1", "Secret 1")
	require.NoError(t, err)
	assert.Equal(t, "Secret 1", password)

	_, err = confirmPassword("Secret 1", "Secret 2")
	require.ErrorIs(t, err, errPasswordMismatch)
}
