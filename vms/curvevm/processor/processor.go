// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package processor applies swap instructions that touch the owner fee
// record: initializing a swap, replacing its fees and charging the owner fee
// on a trade.
package processor

import (
	"errors"
	"fmt"
	"sync"

	"github.com/luxfi/ids"
	"github.com/luxfi/log"

	"github.com/luxfi/bondingcurve/vms/curvevm/config"
	"github.com/luxfi/bondingcurve/vms/curvevm/fees"
	"github.com/luxfi/bondingcurve/vms/curvevm/metrics"
	"github.com/luxfi/bondingcurve/vms/curvevm/state"
	"github.com/luxfi/bondingcurve/vms/curvevm/swaperr"
)

// InitializeArgs describes a new swap account.
type InitializeArgs struct {
	BumpSeed       byte
	TokenProgramID ids.ID
	TokenMint      ids.ID
	FeeAccount     ids.ID
	// Fees is the owner trading fee. If nil, the configured default is used.
	Fees *fees.Fees
}

type Processor struct {
	log     log.Logger
	metrics metrics.Metrics
	state   *state.Store
	config  config.Config

	// mu serializes instructions that read and then write an account.
	mu sync.Mutex
}

// New returns a processor over s. The config must verify.
func New(
	logger log.Logger,
	m metrics.Metrics,
	s *state.Store,
	c config.Config,
) (*Processor, error) {
	if err := c.Verify(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Processor{
		log:     logger,
		metrics: m,
		state:   s,
		config:  c,
	}, nil
}

// Initialize creates the swap account swapID. Fails with
// swaperr.AlreadyInUse if it is already initialized and swaperr.InvalidFee
// if the fee record does not verify.
func (p *Processor) Initialize(swapID ids.ID, args InitializeArgs) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, err := p.state.GetSwapInfo(swapID)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s", swaperr.AlreadyInUse, swapID)
	case errors.Is(err, state.ErrSwapNotFound), errors.Is(err, swaperr.UninitializedAccount):
		// free to initialize
	default:
		return err
	}

	f := p.config.DefaultFees
	if args.Fees != nil {
		f = *args.Fees
	}
	if err := p.verifyFees(swapID, f); err != nil {
		return err
	}

	info := &state.SwapInfo{
		Version:        state.CurrentVersion,
		Initialized:    true,
		BumpSeed:       args.BumpSeed,
		TokenProgramID: args.TokenProgramID,
		TokenMint:      args.TokenMint,
		FeeAccount:     args.FeeAccount,
		Fees:           f,
	}
	if err := p.state.PutSwapInfo(swapID, info); err != nil {
		return fmt.Errorf("failed to write swap %s: %w", swapID, err)
	}

	p.log.Info("initialized swap",
		log.Stringer("swapID", swapID),
		log.Stringer("tokenMint", args.TokenMint),
		log.Stringer("fees", f),
	)
	return nil
}

// SetFees replaces the owner trading fee of an initialized swap.
func (p *Processor) SetFees(swapID ids.ID, f fees.Fees) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.verifyFees(swapID, f); err != nil {
		return err
	}
	if err := p.state.PutFees(swapID, f); err != nil {
		return err
	}

	p.log.Info("updated swap fees",
		log.Stringer("swapID", swapID),
		log.Stringer("fees", f),
	)
	return nil
}

// OwnerTradingFee returns the owner fee due on amount for swapID. If the fee
// has no result the trade must be aborted; swaperr.CalculationFailure is
// returned and no default fee is substituted.
func (p *Processor) OwnerTradingFee(swapID ids.ID, amount uint64) (uint64, error) {
	f, err := p.state.GetFees(swapID)
	if err != nil {
		return 0, err
	}

	fee, ok := f.OwnerTradingFee(amount)
	if !ok {
		p.metrics.MarkFeeFailure()
		p.log.Debug("owner fee calculation failed",
			log.Stringer("swapID", swapID),
			log.Stringer("fees", f),
			log.Uint64("amount", amount),
		)
		return 0, fmt.Errorf("%w: fee %s on amount %d", swaperr.CalculationFailure, f, amount)
	}

	p.metrics.MarkFeeCharged(fee)
	p.log.Debug("charged owner fee",
		log.Stringer("swapID", swapID),
		log.Uint64("amount", amount),
		log.Uint64("fee", fee),
	)
	return fee, nil
}

func (p *Processor) verifyFees(swapID ids.ID, f fees.Fees) error {
	if err := f.Verify(); err != nil {
		p.metrics.MarkInvalidFees()
		p.log.Debug("rejected fees",
			log.Stringer("swapID", swapID),
			log.Stringer("fees", f),
			log.Err(err),
		)
		return fmt.Errorf("fees %s: %w", f, err)
	}
	return nil
}
