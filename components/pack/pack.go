// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pack defines the capability shared by every fixed-size record that
// is persisted inside an account.
package pack

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLength = errors.New("invalid record length")
	ErrUninitialized = errors.New("record is not initialized")
)

// Packable is a record with a fixed-size binary representation.
type Packable interface {
	// Len returns the exact number of bytes the record occupies.
	Len() int
	// IsInitialized reports whether the record holds live state.
	IsInitialized() bool
	// PackInto writes the record into dst. len(dst) must equal Len(); a
	// mismatch is a programming error and panics.
	PackInto(dst []byte)
}

// Unpacker decodes a record from exactly its length in bytes. It must return
// an error wrapping ErrInvalidLength for any other input length.
type Unpacker[T Packable] func(src []byte) (T, error)

// Pack writes v into dst, reporting a length mismatch as an error rather than
// panicking.
func Pack(dst []byte, v Packable) error {
	if len(dst) != v.Len() {
		return fmt.Errorf("%w: expected %d bytes but got %d", ErrInvalidLength, v.Len(), len(dst))
	}
	v.PackInto(dst)
	return nil
}

// Bytes returns a freshly allocated encoding of v.
func Bytes(v Packable) []byte {
	dst := make([]byte, v.Len())
	v.PackInto(dst)
	return dst
}

// Unpack decodes src and rejects records that are not initialized.
func Unpack[T Packable](src []byte, unpack Unpacker[T]) (T, error) {
	v, err := unpack(src)
	if err != nil {
		return v, err
	}
	if !v.IsInitialized() {
		var zero T
		return zero, ErrUninitialized
	}
	return v, nil
}

// UnpackUnchecked decodes src without checking whether the record is
// initialized.
func UnpackUnchecked[T Packable](src []byte, unpack Unpacker[T]) (T, error) {
	return unpack(src)
}
