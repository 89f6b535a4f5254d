package cistring

// buffer is the backing-store strategy for a String. One implementation is
// chosen at construction and fixed for the value's lifetime. The equality
// and hashing layer depends only on this interface, never on which concrete
// store is active.
type buffer interface {
	Len() int
	// Bytes returns the stored bytes. Callers must not modify them.
	Bytes() []byte
	String() string
	WriteString(s string)
	// Delete removes the bytes in [i:j), shifting the tail left. The
	// caller is responsible for bounds and boundary checks.
	Delete(i, j int)
	Clone() buffer
}

// heapBuffer is the general growable store: a plain byte slice with the
// runtime's append growth policy.
type heapBuffer []byte

func (b *heapBuffer) Len() int             { return len(*b) }
func (b *heapBuffer) Bytes() []byte        { return *b }
func (b *heapBuffer) String() string       { return string(*b) }
func (b *heapBuffer) WriteString(s string) { *b = append(*b, s...) }
func (b *heapBuffer) Delete(i, j int)      { *b = append((*b)[:i], (*b)[j:]...) }

func (b *heapBuffer) Clone() buffer {
	c := make(heapBuffer, len(*b))
	copy(c, *b)
	return &c
}
