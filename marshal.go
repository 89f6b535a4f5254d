package cistring

import (
	"encoding/json"
	"fmt"
)

// MarshalText implements encoding.TextMarshaler. The canonical text form is
// the contents in their original casing.
func (s String) MarshalText() ([]byte, error) {
	return append([]byte(nil), s.Bytes()...), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It never fails:
// invalid UTF-8 in text is repaired the same way New repairs it. The
// backing-store choice of the receiver is preserved.
func (s *String) UnmarshalText(text []byte) error {
	if _, ok := s.buf.(*compactBuffer); ok {
		*s = NewCompact(text)
	} else {
		*s = New(text)
	}
	return nil
}

// MarshalJSON implements json.Marshaler, encoding the String as a JSON
// string in its original casing.
func (s String) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements json.Unmarshaler. The input must be a JSON
// string.
func (s *String) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("cistring: unmarshal: %w", err)
	}
	return s.UnmarshalText([]byte(str))
}
