// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package feetool implements the commands for inspecting owner fee
// records.
package feetool

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/luxfi/bondingcurve/vms/curvevm/fees"
	"github.com/luxfi/bondingcurve/vms/curvevm/swaperr"
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:           "feetool",
		Short:         "Encodes, decodes and applies owner fee records",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	c.AddCommand(
		encodeCommand(),
		decodeCommand(),
		feeCommand(),
	)
	return c
}

func encodeCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "encode",
		Short: "Prints the hex encoding of a fee record",
		Args:  cobra.NoArgs,
		RunE:  encodeFunc,
	}
	AddFeeFlags(c.Flags())
	return c
}

func encodeFunc(c *cobra.Command, _ []string) error {
	f, err := ParseFeeFlags(c.Flags())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.OutOrStdout(), hex.EncodeToString(f.Bytes()))
	return err
}

func decodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decodes a hex encoded fee record",
		Args:  cobra.ExactArgs(1),
		RunE:  decodeFunc,
	}
}

func decodeFunc(c *cobra.Command, args []string) error {
	b, err := hex.DecodeString(strings.TrimPrefix(args[0], "0x"))
	if err != nil {
		return fmt.Errorf("couldn't decode hex: %w", err)
	}
	f, err := fees.Parse(b)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(
		c.OutOrStdout(),
		"numerator=%d denominator=%d valid=%t\n",
		f.OwnerTradeFeeNumerator,
		f.OwnerTradeFeeDenominator,
		f.Verify() == nil,
	)
	return err
}

func feeCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "fee",
		Short: "Computes the owner fee due on a trade amount",
		Args:  cobra.NoArgs,
		RunE:  feeFunc,
	}
	flags := c.Flags()
	AddFeeFlags(flags)
	AddAmountFlags(flags)
	return c
}

func feeFunc(c *cobra.Command, _ []string) error {
	flags := c.Flags()
	f, err := ParseFeeFlags(flags)
	if err != nil {
		return err
	}
	if err := f.Verify(); err != nil {
		return fmt.Errorf("fees %s: %w", f, err)
	}

	amount, err := ParseAmountFlags(flags)
	if err != nil {
		return err
	}

	fee, ok := f.OwnerTradingFee(amount)
	if !ok {
		return fmt.Errorf("%w: fee %s on amount %d", swaperr.CalculationFailure, f, amount)
	}
	_, err = fmt.Fprintln(c.OutOrStdout(), fee)
	return err
}
