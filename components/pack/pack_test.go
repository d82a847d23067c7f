// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const flagLen = 2

// flag is a two byte record: [initialized] + [value].
type flag struct {
	initialized bool
	value       byte
}

func (flag) Len() int {
	return flagLen
}

func (f flag) IsInitialized() bool {
	return f.initialized
}

func (f flag) PackInto(dst []byte) {
	if len(dst) != flagLen {
		panic("bad length")
	}
	dst[0] = 0
	if f.initialized {
		dst[0] = 1
	}
	dst[1] = f.value
}

func parseFlag(src []byte) (flag, error) {
	if len(src) != flagLen {
		return flag{}, ErrInvalidLength
	}
	return flag{
		initialized: src[0] == 1,
		value:       src[1],
	}, nil
}

func TestPack(t *testing.T) {
	require := require.New(t)

	dst := make([]byte, flagLen)
	require.NoError(Pack(dst, flag{initialized: true, value: 7}))
	require.Equal([]byte{1, 7}, dst)

	require.ErrorIs(Pack(make([]byte, flagLen+1), flag{}), ErrInvalidLength)
	require.ErrorIs(Pack(nil, flag{}), ErrInvalidLength)
}

func TestBytes(t *testing.T) {
	require.Equal(t, []byte{0, 9}, Bytes(flag{value: 9}))
}

func TestUnpack(t *testing.T) {
	require := require.New(t)

	f, err := Unpack([]byte{1, 3}, parseFlag)
	require.NoError(err)
	require.Equal(flag{initialized: true, value: 3}, f)

	_, err = Unpack([]byte{0, 3}, parseFlag)
	require.ErrorIs(err, ErrUninitialized)

	_, err = Unpack([]byte{1}, parseFlag)
	require.ErrorIs(err, ErrInvalidLength)
}

func TestUnpackUnchecked(t *testing.T) {
	require := require.New(t)

	f, err := UnpackUnchecked([]byte{0, 3}, parseFlag)
	require.NoError(err)
	require.False(f.IsInitialized())
	require.Equal(byte(3), f.value)

	_, err = UnpackUnchecked([]byte{0, 3, 0}, parseFlag)
	require.ErrorIs(err, ErrInvalidLength)
}
