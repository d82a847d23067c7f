// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package feetool

import (
	"github.com/spf13/pflag"

	"github.com/luxfi/bondingcurve/vms/curvevm/config"
	"github.com/luxfi/bondingcurve/vms/curvevm/fees"
)

const (
	NumeratorKey   = "numerator"
	DenominatorKey = "denominator"
	AmountKey      = "amount"
)

func AddFeeFlags(flags *pflag.FlagSet) {
	defaults := config.DefaultConfig().DefaultFees
	flags.Uint64(NumeratorKey, defaults.OwnerTradeFeeNumerator, "Owner trading fee numerator")
	flags.Uint64(DenominatorKey, defaults.OwnerTradeFeeDenominator, "Owner trading fee denominator")
}

func AddAmountFlags(flags *pflag.FlagSet) {
	flags.Uint64(AmountKey, 0, "Trade amount the fee is charged on")
}

func ParseFeeFlags(flags *pflag.FlagSet) (fees.Fees, error) {
	numerator, err := flags.GetUint64(NumeratorKey)
	if err != nil {
		return fees.Fees{}, err
	}

	denominator, err := flags.GetUint64(DenominatorKey)
	if err != nil {
		return fees.Fees{}, err
	}

	return fees.Fees{
		OwnerTradeFeeNumerator:   numerator,
		OwnerTradeFeeDenominator: denominator,
	}, nil
}

func ParseAmountFlags(flags *pflag.FlagSet) (uint64, error) {
	return flags.GetUint64(AmountKey)
}
