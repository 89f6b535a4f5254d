package cistring

import (
	"fmt"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// String is an ASCII-case-insensitive string. Two Strings are Equal when
// their contents match after mapping the letters 'A'-'Z' to lowercase, and
// Hash is derived from the same folded form, so equal values always hash
// identically. The stored contents keep their original casing and are
// always valid UTF-8.
//
// The zero value is an empty String ready to use. Assigning a String copies
// a reference to its backing store, like copying a bytes.Buffer; use Clone
// for an independent copy. Do not compare Strings with ==; use Equal.
type String struct {
	buf buffer
}

// New returns a String holding the contents of v. Input that is not valid
// UTF-8 is repaired by substituting the Unicode replacement character for
// each invalid sequence; construction never fails.
func New[T byteSeq](v T) String {
	if len(v) == 0 {
		return String{}
	}
	s := string(v)
	b := make(heapBuffer, 0, len(s))
	if utf8.ValidString(s) {
		b = append(b, s...)
	} else {
		b = repair(b, s)
	}
	return String{buf: &b}
}

// NewCompact is like New but backs the String with a small-string-optimized
// store that holds short contents without a heap allocation. The contract
// is otherwise identical to New.
func NewCompact[T byteSeq](v T) String {
	s := string(v)
	if !utf8.ValidString(s) {
		s = string(repair(make([]byte, 0, len(s)), s))
	}
	buf := new(compactBuffer)
	buf.WriteString(s)
	return String{buf: buf}
}

// repair appends s to dst, substituting the Unicode replacement character
// for each invalid UTF-8 sequence.
func repair(dst []byte, s string) []byte {
	for i := 0; i < len(s); {
		if s[i] < utf8.RuneSelf {
			dst = append(dst, s[i])
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			dst = utf8.AppendRune(dst, utf8.RuneError)
		} else {
			dst = append(dst, s[i:i+size]...)
		}
		i += size
	}
	return dst
}

// grow returns the backing store, installing the default heap strategy on
// first mutation of a zero String.
func (s *String) grow() buffer {
	if s.buf == nil {
		s.buf = new(heapBuffer)
	}
	return s.buf
}

// Len returns the length of the String in bytes, not characters: a single
// character occupies 1 to 4 bytes of UTF-8.
func (s String) Len() int {
	if s.buf == nil {
		return 0
	}
	return s.buf.Len()
}

// IsEmpty reports whether the String has a length of 0.
func (s String) IsEmpty() bool { return s.Len() == 0 }

// Bytes returns the stored bytes in their original casing. The returned
// slice aliases the backing store and must not be modified.
func (s String) Bytes() []byte {
	if s.buf == nil {
		return nil
	}
	return s.buf.Bytes()
}

// String returns the contents in their original casing. Folding is never
// visible here: it applies only inside Equal and Hash.
func (s String) String() string {
	if s.buf == nil {
		return ""
	}
	return s.buf.String()
}

// Clone returns an independent deep copy of s, preserving its choice of
// backing store.
func (s String) Clone() String {
	if s.buf == nil {
		return String{}
	}
	return String{buf: s.buf.Clone()}
}

// Push appends a single character to the end of the String. Runes that are
// not valid Unicode code points are appended as the replacement character,
// so the contents stay valid UTF-8.
func (s *String) Push(r rune) {
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	s.grow().WriteString(string(tmp[:n]))
}

// PushString appends the contents of str to the end of the String. Input
// that is not valid UTF-8 is repaired the same way New repairs it.
func (s *String) PushString(str string) {
	if !utf8.ValidString(str) {
		str = string(repair(make([]byte, 0, len(str)), str))
	}
	s.grow().WriteString(str)
}

// Remove removes and returns the character beginning at byte offset i,
// shifting the bytes after it left. This is an O(n) operation.
//
// Remove panics if i is negative or at or past Len, or if i does not lie on
// a character boundary. A bad offset is a bug in the caller, not a runtime
// condition to recover from.
func (s *String) Remove(i int) rune {
	b := s.Bytes()
	if i < 0 || i >= len(b) {
		panic(fmt.Sprintf("cistring: Remove: byte offset %d out of range for length %d", i, len(b)))
	}
	if !utf8.RuneStart(b[i]) {
		panic(fmt.Sprintf("cistring: Remove: byte offset %d is not a character boundary", i))
	}
	r, size := utf8.DecodeRune(b[i:])
	s.buf.Delete(i, i+size)
	return r
}

// Equal reports whether s and t are equal under ASCII case folding: the
// same byte length, with every byte pair equal after mapping 'A'-'Z' to
// 'a'-'z'. Bytes outside ASCII compare verbatim, so case variants that
// differ at the byte level remain distinct.
func (s String) Equal(t String) bool { return equalFold(s.Bytes(), t.Bytes()) }

// EqualString reports whether s equals t under the same ASCII case folding
// as Equal.
func (s String) EqualString(t string) bool { return equalFold(s.Bytes(), t) }

// EqualBytes reports whether s equals t under the same ASCII case folding
// as Equal.
func (s String) EqualBytes(t []byte) bool { return equalFold(s.Bytes(), t) }

// Hash returns a 64-bit hash of the contents folded to ASCII lowercase.
// Values that compare Equal hash identically, so Hash can key hash-based
// containers regardless of casing. The fold happens while streaming into
// the hash; no lowercased copy is allocated.
func (s String) Hash() uint64 {
	var d xxhash.Digest
	d.Reset()
	b := s.Bytes()
	var chunk [128]byte
	for len(b) > 0 {
		n := copy(chunk[:], b)
		for i := 0; i < n; i++ {
			chunk[i] = _lower[chunk[i]]
		}
		d.Write(chunk[:n])
		b = b[n:]
	}
	return d.Sum64()
}

// Lower returns a copy of the contents with ASCII letters mapped to
// lowercase. This is the canonical form Equal and Hash are defined over,
// and it is usable as a native map key where a String cannot be.
func (s String) Lower() string {
	return string(lowerASCII(s.Bytes()))
}
