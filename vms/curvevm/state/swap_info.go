// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"fmt"

	"github.com/luxfi/ids"

	"github.com/luxfi/bondingcurve/components/pack"
	"github.com/luxfi/bondingcurve/utils/wrappers"
	"github.com/luxfi/bondingcurve/vms/curvevm/fees"
)

// CurrentVersion is written into every newly initialized swap account.
const CurrentVersion byte = 1

// swapInfo = [version] + [initialized] + [bumpSeed] + [tokenProgramID] +
// [tokenMint] + [feeAccount] + [fees]
const (
	versionOffset        = 0
	initializedOffset    = versionOffset + wrappers.ByteLen
	bumpSeedOffset       = initializedOffset + wrappers.BoolLen
	tokenProgramIDOffset = bumpSeedOffset + wrappers.ByteLen
	tokenMintOffset      = tokenProgramIDOffset + ids.IDLen
	feeAccountOffset     = tokenMintOffset + ids.IDLen

	// FeesOffset is where the fee record starts inside a swap account.
	FeesOffset  = feeAccountOffset + ids.IDLen
	// SwapInfoLen is the encoded size of SwapInfo.
	SwapInfoLen = FeesOffset + fees.Len
)

var (
	_ pack.Packable            = (*SwapInfo)(nil)
	_ pack.Unpacker[*SwapInfo] = ParseSwapInfo

	ErrInvalidSwapInfoLength = fmt.Errorf("%w: expected swap info length %d", pack.ErrInvalidLength, SwapInfoLen)
)

// SwapInfo is the persisted state of a single bonding-curve swap.
type SwapInfo struct {
	Version        byte      `json:"version"`
	Initialized    bool      `json:"initialized"`
	BumpSeed       byte      `json:"bumpSeed"`
	TokenProgramID ids.ID    `json:"tokenProgramID"`
	TokenMint      ids.ID    `json:"tokenMint"`
	FeeAccount     ids.ID    `json:"feeAccount"`
	Fees           fees.Fees `json:"fees"`
}

func (s *SwapInfo) IsInitialized() bool {
	return s.Initialized
}

func (*SwapInfo) Len() int {
	return SwapInfoLen
}

// PackInto writes s into dst, which must be exactly SwapInfoLen bytes.
func (s *SwapInfo) PackInto(dst []byte) {
	if len(dst) != SwapInfoLen {
		panic(fmt.Sprintf("state: destination is %d bytes, want %d", len(dst), SwapInfoLen))
	}
	p := wrappers.Packer{Bytes: dst}
	p.PackByte(s.Version)
	p.PackBool(s.Initialized)
	p.PackByte(s.BumpSeed)
	p.PackFixedBytes(s.TokenProgramID[:])
	p.PackFixedBytes(s.TokenMint[:])
	p.PackFixedBytes(s.FeeAccount[:])
	s.Fees.PackInto(dst[FeesOffset:])
}

// ParseSwapInfo decodes exactly SwapInfoLen bytes. It does not check whether
// the account is initialized; use pack.Unpack for that.
func ParseSwapInfo(b []byte) (*SwapInfo, error) {
	if len(b) != SwapInfoLen {
		return nil, ErrInvalidSwapInfoLength
	}

	s := &SwapInfo{}
	p := wrappers.Packer{Bytes: b}
	s.Version = p.UnpackByte()
	s.Initialized = p.UnpackBool()
	s.BumpSeed = p.UnpackByte()
	copy(s.TokenProgramID[:], p.UnpackFixedBytes(ids.IDLen))
	copy(s.TokenMint[:], p.UnpackFixedBytes(ids.IDLen))
	copy(s.FeeAccount[:], p.UnpackFixedBytes(ids.IDLen))
	if p.Errored() {
		return nil, fmt.Errorf("couldn't parse swap info: %w", p.Err)
	}

	f, err := fees.Parse(b[FeesOffset:])
	if err != nil {
		return nil, err
	}
	s.Fees = f
	return s, nil
}
