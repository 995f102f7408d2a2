package ber

import (
	"bytes"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor(t *testing.T) {
	c := NewCursor(iotest.HalfReader(bytes.NewReader([]byte{1, 2, 3, 4, 5, 6})))
	assert.Equal(t, int64(0), c.Tell())

	b, err := c.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(1), b)
	assert.Equal(t, int64(1), c.Tell())

	data, err := c.ReadN(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 3, 4}, data)
	assert.Equal(t, int64(4), c.Tell())

	data, err = c.ReadN(0)
	require.NoError(t, err)
	assert.NotNil(t, data)
	assert.Empty(t, data)

	_, err = c.ReadN(5)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, int64(6), c.Tell())

	_, err = c.ReadByte()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, int64(6), c.Tell())
}

func TestNewCursorReusesCursor(t *testing.T) {
	c := NewCursor(bytes.NewReader([]byte{0x05, 0x00, 0x05, 0x00}))
	_, err := Decode(c)
	require.NoError(t, err)
	assert.Same(t, c, NewCursor(c))

	tag, err := Decode(c)
	require.NoError(t, err)
	assert.Equal(t, int64(2), *tag.Offset)
	assert.Equal(t, int64(4), c.Tell())
}

func TestSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewSink(&buf)
	assert.Same(t, s, NewSink(s))

	n, err := s.Write([]byte{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, int64(3), s.Tell())

	short := NewSink(&failingWriter{limit: 1})
	n, err = short.Write([]byte{1, 2})
	assert.Equal(t, 1, n)
	assert.ErrorIs(t, err, io.ErrShortWrite)
	assert.Equal(t, int64(1), short.Tell())
}
