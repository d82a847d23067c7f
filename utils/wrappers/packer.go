// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wrappers

import (
	"encoding/binary"
	"errors"
)

var (
	ErrInsufficientLength = errors.New("packer has insufficient length for input")
	ErrBadBool            = errors.New("unexpected value when unpacking bool")
	errNegativeOffset     = errors.New("negative offset")
	errInvalidInput       = errors.New("input does not match expected format")
)

// Packer reads and writes little-endian values at increasing offsets of a
// fixed byte window. The window is never grown: callers size Bytes to the
// record length up front.
type Packer struct {
	Errs

	// The byte window being read from or written to
	Bytes []byte
	// The offset of the next read or write
	Offset int
}

// PackByte writes a byte at the current offset
func (p *Packer) PackByte(val byte) {
	p.checkSpace(ByteLen)
	if p.Errored() {
		return
	}

	p.Bytes[p.Offset] = val
	p.Offset += ByteLen
}

// UnpackByte reads a byte at the current offset
func (p *Packer) UnpackByte() byte {
	p.checkSpace(ByteLen)
	if p.Errored() {
		return 0
	}

	val := p.Bytes[p.Offset]
	p.Offset += ByteLen
	return val
}

// PackLong writes a little-endian uint64 at the current offset
func (p *Packer) PackLong(val uint64) {
	p.checkSpace(LongLen)
	if p.Errored() {
		return
	}

	binary.LittleEndian.PutUint64(p.Bytes[p.Offset:], val)
	p.Offset += LongLen
}

// UnpackLong reads a little-endian uint64 at the current offset
func (p *Packer) UnpackLong() uint64 {
	p.checkSpace(LongLen)
	if p.Errored() {
		return 0
	}

	val := binary.LittleEndian.Uint64(p.Bytes[p.Offset:])
	p.Offset += LongLen
	return val
}

// PackBool writes a bool as a single 0 or 1 byte
func (p *Packer) PackBool(b bool) {
	if b {
		p.PackByte(1)
	} else {
		p.PackByte(0)
	}
}

// UnpackBool reads a bool. Any byte other than 0 or 1 is an error.
func (p *Packer) UnpackBool() bool {
	b := p.UnpackByte()
	switch b {
	case 0:
		return false
	case 1:
		return true
	default:
		p.Add(ErrBadBool)
		return false
	}
}

// PackFixedBytes copies bytes, with no length prefix, to the current offset
func (p *Packer) PackFixedBytes(bytes []byte) {
	p.checkSpace(len(bytes))
	if p.Errored() {
		return
	}

	copy(p.Bytes[p.Offset:], bytes)
	p.Offset += len(bytes)
}

// UnpackFixedBytes returns the next size bytes. The returned slice aliases
// the window.
func (p *Packer) UnpackFixedBytes(size int) []byte {
	p.checkSpace(size)
	if p.Errored() {
		return nil
	}

	bytes := p.Bytes[p.Offset : p.Offset+size]
	p.Offset += size
	return bytes
}

// Remaining returns the number of bytes left after the current offset.
func (p *Packer) Remaining() int {
	return max(len(p.Bytes)-p.Offset, 0)
}

// checkSpace requires that there is at least bytes of space left in the
// window. If this is not true, an error is added to the packer.
func (p *Packer) checkSpace(bytes int) {
	switch {
	case p.Offset < 0:
		p.Add(errNegativeOffset)
	case bytes < 0:
		p.Add(errInvalidInput)
	case len(p.Bytes)-p.Offset < bytes:
		p.Add(ErrInsufficientLength)
	}
}
