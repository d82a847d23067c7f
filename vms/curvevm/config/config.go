// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config defines configuration types for the bonding-curve VM.
package config

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/luxfi/bondingcurve/vms/curvevm/fees"
)

// bpsDenominator is the number of basis points in 100%.
const bpsDenominator = 10_000

var ErrFeeAboveCap = errors.New("default fee exceeds configured cap")

// Config contains configuration parameters for the bonding-curve VM.
type Config struct {
	// DefaultFees is the owner trading fee of swaps initialized without one
	DefaultFees fees.Fees `json:"defaultFees"`
	// MaxOwnerFeeBps caps DefaultFees, in basis points (100 = 1%). Zero
	// disables the cap.
	MaxOwnerFeeBps uint16 `json:"maxOwnerFeeBps"`
}

// DefaultConfig returns the default configuration for the bonding-curve VM.
func DefaultConfig() Config {
	return Config{
		DefaultFees: fees.Fees{
			OwnerTradeFeeNumerator:   1,
			OwnerTradeFeeDenominator: 100, // 1%
		},
		MaxOwnerFeeBps: 100, // 1%
	}
}

// Parse overlays the JSON in b on DefaultConfig. An empty b returns the
// defaults.
func Parse(b []byte) (Config, error) {
	c := DefaultConfig()
	if len(b) == 0 {
		return c, nil
	}
	if err := json.Unmarshal(b, &c); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return c, nil
}

// Verify checks that the default fee is a valid rate and, when a cap is set,
// that numerator/denominator <= MaxOwnerFeeBps/10000.
func (c Config) Verify() error {
	if err := c.DefaultFees.Verify(); err != nil {
		return fmt.Errorf("invalid default fees %s: %w", c.DefaultFees, err)
	}
	if c.MaxOwnerFeeBps == 0 {
		return nil
	}

	// numerator * 10000 <= bps * denominator, compared in 256 bits so neither
	// product can overflow.
	lhs := new(uint256.Int).Mul(
		uint256.NewInt(c.DefaultFees.OwnerTradeFeeNumerator),
		uint256.NewInt(bpsDenominator),
	)
	rhs := new(uint256.Int).Mul(
		uint256.NewInt(c.DefaultFees.OwnerTradeFeeDenominator),
		uint256.NewInt(uint64(c.MaxOwnerFeeBps)),
	)
	if lhs.Gt(rhs) {
		return fmt.Errorf("%w: %s > %d bps", ErrFeeAboveCap, c.DefaultFees, c.MaxOwnerFeeBps)
	}
	return nil
}
