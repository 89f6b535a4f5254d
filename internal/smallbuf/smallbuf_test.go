package smallbuf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValue(t *testing.T) {
	var b Buffer
	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Bytes())
	assert.Equal(t, "", b.String())
	assert.False(t, b.spilled())
}

func TestInlineWrite(t *testing.T) {
	var b Buffer
	b.WriteString("hello")
	b.WriteString(" world")
	assert.Equal(t, "hello world", b.String())
	assert.Equal(t, 11, b.Len())
	assert.False(t, b.spilled(), "content below InlineSize must stay inline")

	// Fill exactly to the inline boundary.
	b.WriteString(strings.Repeat("x", InlineSize-b.Len()))
	assert.Equal(t, InlineSize, b.Len())
	assert.False(t, b.spilled())
}

func TestSpill(t *testing.T) {
	var b Buffer
	b.WriteString(strings.Repeat("a", InlineSize))
	b.WriteString("b")
	require.True(t, b.spilled(), "content past InlineSize must spill")
	assert.Equal(t, strings.Repeat("a", InlineSize)+"b", b.String())
	assert.Equal(t, InlineSize+1, b.Len())

	// A single oversized write spills immediately.
	var c Buffer
	long := strings.Repeat("xyz", 20)
	c.WriteString(long)
	require.True(t, c.spilled())
	assert.Equal(t, long, c.String())
}

func TestDeleteInline(t *testing.T) {
	var b Buffer
	b.WriteString("hello world")
	b.Delete(5, 6)
	assert.Equal(t, "helloworld", b.String())
	b.Delete(0, 5)
	assert.Equal(t, "world", b.String())
	b.Delete(0, 5)
	assert.Equal(t, "", b.String())
	assert.Equal(t, 0, b.Len())
}

func TestDeleteSpilled(t *testing.T) {
	var b Buffer
	long := strings.Repeat("ab", InlineSize) // well past the inline limit
	b.WriteString(long)
	require.True(t, b.spilled())

	b.Delete(0, 2)
	assert.Equal(t, long[2:], b.String())

	// Shrinking below InlineSize does not move content back inline.
	b.Delete(0, b.Len()-3)
	assert.Equal(t, "bab", b.String())
	assert.True(t, b.spilled())
}

func TestClone(t *testing.T) {
	var b Buffer
	b.WriteString("hello")
	c := b.Clone()
	c.WriteString(" world")
	assert.Equal(t, "hello", b.String(), "mutating a clone must not affect the original")
	assert.Equal(t, "hello world", c.String())

	// Spilled buffers must not share heap storage with their clones.
	var s Buffer
	s.WriteString(strings.Repeat("q", InlineSize+8))
	sc := s.Clone()
	sc.Delete(0, 8)
	assert.Equal(t, strings.Repeat("q", InlineSize+8), s.String())
	assert.Equal(t, strings.Repeat("q", InlineSize), sc.String())
}
