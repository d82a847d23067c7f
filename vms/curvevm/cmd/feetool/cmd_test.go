// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package feetool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/bondingcurve/vms/curvevm/fees"
	"github.com/luxfi/bondingcurve/vms/curvevm/swaperr"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	c := Command()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func TestEncode(t *testing.T) {
	require := require.New(t)

	out, err := run(t, "encode", "--numerator", "1", "--denominator", "100")
	require.NoError(err)
	require.Equal("01000000000000006400000000000000\n", out)
}

func TestEncodeDefaults(t *testing.T) {
	require := require.New(t)

	out, err := run(t, "encode")
	require.NoError(err)
	require.Equal("01000000000000006400000000000000\n", out)
}

func TestDecode(t *testing.T) {
	require := require.New(t)

	out, err := run(t, "decode", "0x01000000000000006400000000000000")
	require.NoError(err)
	require.Equal("numerator=1 denominator=100 valid=true\n", out)

	out, err = run(t, "decode", "65000000000000006400000000000000")
	require.NoError(err)
	require.Equal("numerator=101 denominator=100 valid=false\n", out)
}

func TestDecodeInvalidLength(t *testing.T) {
	_, err := run(t, "decode", "0100")
	require.ErrorIs(t, err, fees.ErrInvalidLength)
}

func TestFee(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectedOut string
		expectedErr error
	}{
		{
			name:        "exact",
			args:        []string{"fee", "--amount", "1000"},
			expectedOut: "10\n",
		},
		{
			name:        "rounds down",
			args:        []string{"fee", "--amount", "999"},
			expectedOut: "9\n",
		},
		{
			name:        "overflow",
			args:        []string{"fee", "--numerator", "18446744073709551615", "--denominator", "18446744073709551615", "--amount", "2"},
			expectedErr: swaperr.CalculationFailure,
		},
		{
			name:        "zero denominator",
			args:        []string{"fee", "--numerator", "0", "--denominator", "0", "--amount", "2"},
			expectedErr: swaperr.CalculationFailure,
		},
		{
			name:        "invalid fee",
			args:        []string{"fee", "--numerator", "101", "--denominator", "100", "--amount", "2"},
			expectedErr: swaperr.InvalidFee,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			out, err := run(t, test.args...)
			require.ErrorIs(err, test.expectedErr)
			if test.expectedErr == nil {
				require.Equal(test.expectedOut, out)
			}
		})
	}
}
