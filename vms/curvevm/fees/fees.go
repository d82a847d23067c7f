// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fees implements the owner trading fee record of a bonding-curve
// swap: its 16 byte little-endian layout, its validation rule and the checked
// fee computation.
package fees

import (
	"fmt"

	"github.com/luxfi/bondingcurve/components/pack"
	"github.com/luxfi/bondingcurve/utils/math"
	"github.com/luxfi/bondingcurve/utils/wrappers"
	"github.com/luxfi/bondingcurve/vms/curvevm/swaperr"
)

// Len is the encoded size of Fees: [numerator] + [denominator].
const Len = 2 * wrappers.LongLen

var (
	_ pack.Packable       = Fees{}
	_ pack.Unpacker[Fees] = Parse

	ErrInvalidLength = fmt.Errorf("%w: expected fees length %d", pack.ErrInvalidLength, Len)
)

// Fees is the owner trading fee rate numerator/denominator. The zero value
// passes Verify but charges nothing: every OwnerTradingFee call on it fails.
type Fees struct {
	// Owner trading fee numerator, e.g. 1
	OwnerTradeFeeNumerator uint64 `json:"ownerTradeFeeNumerator"`
	// Owner trading fee denominator, e.g. 100
	OwnerTradeFeeDenominator uint64 `json:"ownerTradeFeeDenominator"`
}

// OwnerTradingFee returns floor(amount * numerator / denominator). ok is false
// if the product overflows a uint64 or the denominator is zero; callers must
// abort rather than substitute a fee.
func (f Fees) OwnerTradingFee(amount uint64) (uint64, bool) {
	fee, err := math.MulDiv(amount, f.OwnerTradeFeeNumerator, f.OwnerTradeFeeDenominator)
	if err != nil {
		return 0, false
	}
	return fee, true
}

// Verify requires the fee rate to be at most 100%. A zero denominator is not
// rejected here; it surfaces later as a failed OwnerTradingFee.
func (f Fees) Verify() error {
	if f.OwnerTradeFeeNumerator > f.OwnerTradeFeeDenominator {
		return swaperr.InvalidFee
	}
	return nil
}

// IsInitialized always returns true. Fees has no uninitialized state.
func (Fees) IsInitialized() bool {
	return true
}

func (Fees) Len() int {
	return Len
}

// PackInto writes f into dst, which must be exactly Len bytes.
func (f Fees) PackInto(dst []byte) {
	if len(dst) != Len {
		panic(fmt.Sprintf("fees: destination is %d bytes, want %d", len(dst), Len))
	}
	p := wrappers.Packer{Bytes: dst}
	p.PackLong(f.OwnerTradeFeeNumerator)
	p.PackLong(f.OwnerTradeFeeDenominator)
}

// Bytes returns the Len byte encoding of f.
func (f Fees) Bytes() []byte {
	b := make([]byte, Len)
	f.PackInto(b)
	return b
}

func (f Fees) String() string {
	return fmt.Sprintf("%d/%d", f.OwnerTradeFeeNumerator, f.OwnerTradeFeeDenominator)
}

// Parse decodes exactly Len bytes. Any bit pattern is accepted; the result
// is not verified.
func Parse(b []byte) (Fees, error) {
	if len(b) != Len {
		return Fees{}, ErrInvalidLength
	}
	p := wrappers.Packer{Bytes: b}
	return Fees{
		OwnerTradeFeeNumerator:   p.UnpackLong(),
		OwnerTradeFeeDenominator: p.UnpackLong(),
	}, nil
}
