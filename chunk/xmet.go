package chunk

import (
	"bytes"
	"unicode/utf8"

	"github.com/panzi/xzib/errs"
)

// Xmet is the extensible metadata chunk: an ordered multimap from
// string keys to string values, for metadata META has no typed field
// for.
type Xmet struct {
	Keys   []string
	Values map[string][]string
}

// Get returns the accumulated values for key, in encounter order.
func (x *Xmet) Get(key string) []string {
	if x.Values == nil {
		return nil
	}
	return x.Values[key]
}

// Add appends value to key's sequence, tracking key in first-seen
// order for a stable Encode.
func (x *Xmet) Add(key string, value string) {
	if x.Values == nil {
		x.Values = make(map[string][]string)
	}
	if _, ok := x.Values[key]; !ok {
		x.Keys = append(x.Keys, key)
	}
	x.Values[key] = append(x.Values[key], value)
}

// ReadXmet decodes an XMET payload: a sequence of key_utf8 | 0x00 |
// value_utf8 | 0x00 records, terminated by an empty key or the end of
// the payload.
func ReadXmet(data []byte) (*Xmet, error) {
	x := &Xmet{Values: make(map[string][]string)}

	for len(data) > 0 {
		keyEnd := bytes.IndexByte(data, 0)
		if keyEnd < 0 {
			return nil, errs.ErrTruncatedChunk
		}
		rawKey := data[:keyEnd]
		data = data[keyEnd+1:]

		if len(rawKey) == 0 {
			break
		}
		if !utf8.Valid(rawKey) {
			return nil, errs.NewReadErrorMessage(errs.ReadBrokenFile, "xmet key is not valid utf-8")
		}

		valueEnd := bytes.IndexByte(data, 0)
		var rawValue []byte
		if valueEnd < 0 {
			rawValue = data
			data = nil
		} else {
			rawValue = data[:valueEnd]
			data = data[valueEnd+1:]
		}
		if !utf8.Valid(rawValue) {
			return nil, errs.NewReadErrorMessage(errs.ReadBrokenFile, "xmet value is not valid utf-8")
		}

		x.Add(string(rawKey), string(rawValue))
	}

	return x, nil
}

// Encode serializes the multimap back to its record form, keys in
// first-seen order and each key's values in append order.
func (x *Xmet) Encode() []byte {
	var buf bytes.Buffer
	for _, key := range x.Keys {
		for _, value := range x.Values[key] {
			buf.WriteString(key)
			buf.WriteByte(0)
			buf.WriteString(value)
			buf.WriteByte(0)
		}
	}
	return buf.Bytes()
}
