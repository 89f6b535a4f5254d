package cistring

import "github.com/charlievieth/cistring/internal/smallbuf"

// compactBuffer adapts smallbuf.Buffer to the buffer strategy interface.
type compactBuffer struct {
	smallbuf.Buffer
}

func (b *compactBuffer) Clone() buffer {
	return &compactBuffer{Buffer: *b.Buffer.Clone()}
}
