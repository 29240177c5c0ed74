package chunk

import (
	"bytes"
	"unicode/utf8"

	"github.com/panzi/xzib/date"
	"github.com/panzi/xzib/errs"
	"github.com/panzi/xzib/internal/pool"
)

// Meta is the typed metadata chunk. Title and Comment are singletons;
// Author, License and Links accumulate across repeated records.
type Meta struct {
	Title     string
	CreatedAt date.Date
	Author    []string
	License   []string
	Links     []string
	Comment   string
}

const (
	metaKeyTitle     = 1
	metaKeyCreatedAt = 2
	metaKeyAuthor    = 3
	metaKeyLicense   = 4
	metaKeyLinks     = 5
	metaKeyComment   = 6
)

// ReadMeta decodes a META payload: a sequence of key:u8 | value_utf8 |
// 0x00 records terminated by a key == 0 byte or the end of the payload.
func ReadMeta(data []byte, opts ReadOptions) (*Meta, error) {
	m := &Meta{}

	author, putAuthor := pool.GetStringSlice(4)
	defer putAuthor()
	license, putLicense := pool.GetStringSlice(4)
	defer putLicense()
	links, putLinks := pool.GetStringSlice(4)
	defer putLinks()

	for len(data) > 0 {
		key := data[0]
		data = data[1:]
		if key == 0 {
			break
		}

		end := bytes.IndexByte(data, 0)
		var raw []byte
		if end < 0 {
			raw = data
			data = nil
		} else {
			raw = data[:end]
			data = data[end+1:]
		}

		if !utf8.Valid(raw) {
			return nil, errs.NewReadErrorMessage(errs.ReadBrokenFile, "meta value is not valid utf-8")
		}
		value := string(raw)

		switch key {
		case metaKeyTitle:
			m.Title = value
		case metaKeyCreatedAt:
			d, err := date.Parse(value)
			if err != nil {
				return nil, err
			}
			m.CreatedAt = d
		case metaKeyAuthor:
			author = append(author, value)
		case metaKeyLicense:
			license = append(license, value)
		case metaKeyLinks:
			links = append(links, value)
		case metaKeyComment:
			if m.Comment == "" {
				m.Comment = value
			} else {
				m.Comment = m.Comment + "\n" + value
			}
		default:
			opts.diag("meta: skipping unrecognized key %d", key)
		}
	}

	// author/license/links are backed by pooled storage returned on
	// defer above, so copy out before returning.
	if len(author) > 0 {
		m.Author = append([]string(nil), author...)
	}
	if len(license) > 0 {
		m.License = append([]string(nil), license...)
	}
	if len(links) > 0 {
		m.Links = append([]string(nil), links...)
	}

	return m, nil
}

// Encode serializes the metadata back to its record form, in the field
// order Title, CreatedAt, Author, License, Links, Comment.
func (m *Meta) Encode() []byte {
	var buf bytes.Buffer

	writeRecord := func(key byte, value string) {
		buf.WriteByte(key)
		buf.WriteString(value)
		buf.WriteByte(0)
	}

	if m.Title != "" {
		writeRecord(metaKeyTitle, m.Title)
	}
	if !m.CreatedAt.IsZero() {
		writeRecord(metaKeyCreatedAt, m.CreatedAt.String())
	}
	for _, a := range m.Author {
		writeRecord(metaKeyAuthor, a)
	}
	for _, l := range m.License {
		writeRecord(metaKeyLicense, l)
	}
	for _, l := range m.Links {
		writeRecord(metaKeyLinks, l)
	}
	if m.Comment != "" {
		writeRecord(metaKeyComment, m.Comment)
	}

	return buf.Bytes()
}
