// Package smallbuf implements a growable byte buffer that stores short
// contents inline, falling back to the heap once the content exceeds
// InlineSize bytes.
package smallbuf

// InlineSize is the largest content length stored without a heap
// allocation.
const InlineSize = 24

// Buffer is a byte buffer with inline storage for short contents. The zero
// value is an empty buffer ready to use. Once content spills to the heap it
// stays there, even if later deletions shrink it below InlineSize.
type Buffer struct {
	n      int // inline length; unused once spilled
	inline [InlineSize]byte
	heap   []byte // non-nil once the content has spilled
}

func (b *Buffer) spilled() bool { return b.heap != nil }

// Len returns the number of bytes stored.
func (b *Buffer) Len() int {
	if b.spilled() {
		return len(b.heap)
	}
	return b.n
}

// Bytes returns the stored bytes. The slice aliases the buffer's storage
// and is only valid until the next mutation.
func (b *Buffer) Bytes() []byte {
	if b.spilled() {
		return b.heap
	}
	return b.inline[:b.n]
}

// String returns a copy of the stored bytes as a string.
func (b *Buffer) String() string { return string(b.Bytes()) }

// WriteString appends s to the buffer, spilling to the heap if the combined
// length exceeds InlineSize.
func (b *Buffer) WriteString(s string) {
	if !b.spilled() {
		if b.n+len(s) <= InlineSize {
			b.n += copy(b.inline[b.n:], s)
			return
		}
		b.spill(b.n + len(s))
	}
	b.heap = append(b.heap, s...)
}

// spill moves the inline content to the heap with room for capacity bytes.
func (b *Buffer) spill(capacity int) {
	heap := make([]byte, b.n, capacity)
	copy(heap, b.inline[:b.n])
	b.heap = heap
	b.n = 0
}

// Delete removes the bytes in [i:j), shifting the tail left. The caller is
// responsible for bounds.
func (b *Buffer) Delete(i, j int) {
	if b.spilled() {
		b.heap = append(b.heap[:i], b.heap[j:]...)
		return
	}
	copy(b.inline[i:], b.inline[j:b.n])
	b.n -= j - i
}

// Clone returns an independent copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	c := *b
	if b.spilled() {
		c.heap = append([]byte(nil), b.heap...)
	}
	return &c
}
