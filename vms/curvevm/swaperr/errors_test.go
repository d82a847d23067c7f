// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package swaperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSwapErrorCodesAreStable(t *testing.T) {
	require := require.New(t)

	require.Equal(SwapError(0), AlreadyInUse)
	require.Equal(SwapError(1), InvalidFee)
	require.Equal(SwapError(2), CalculationFailure)
	require.Equal(SwapError(3), InvalidAccountData)
	require.Equal(SwapError(4), UninitializedAccount)
}

func TestSwapErrorMessages(t *testing.T) {
	require := require.New(t)

	require.Equal("invalid fee", InvalidFee.Error())
	require.Equal("unknown swap error 99", SwapError(99).Error())
}

func TestFrom(t *testing.T) {
	errOther := errors.New("other")

	tests := []struct {
		name         string
		err          error
		expectedCode uint32
	}{
		{
			name:         "bare swap error",
			err:          InvalidFee,
			expectedCode: uint32(InvalidFee),
		},
		{
			name:         "wrapped swap error",
			err:          fmt.Errorf("couldn't set fees: %w", CalculationFailure),
			expectedCode: uint32(CalculationFailure),
		},
		{
			name:         "foreign error",
			err:          errOther,
			expectedCode: UnknownCode,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			programErr := From(test.err)
			require.NotNil(programErr)
			require.Equal(test.expectedCode, programErr.Code)
			require.ErrorIs(programErr, test.err)
		})
	}
}

func TestFromNil(t *testing.T) {
	require.Nil(t, From(nil))
}

func TestFromProgramErrorIsIdempotent(t *testing.T) {
	require := require.New(t)

	first := From(InvalidFee)
	second := From(fmt.Errorf("outer: %w", first))
	require.Same(first, second)
	require.ErrorIs(second, InvalidFee)
}
