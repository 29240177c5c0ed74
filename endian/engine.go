// Package endian provides the byte order engine bio reads and writes
// every container field with.
//
// It combines encoding/binary's ByteOrder and AppendByteOrder interfaces
// into a single EndianEngine. bio uses the ByteOrder half (Uint16,
// PutUint16, ...) over fixed-size scratch arrays; the append half lets a
// caller write straight into a growing buffer:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint64(buf, value)
//
// XZIB's wire format is little-endian only (spec.md's byte layout never
// varies by host), so this package exposes only the one engine bio
// actually calls.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library, making it fully compatible with existing Go code while
// providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine every XZIB
// field is read and written with.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
