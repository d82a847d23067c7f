// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package state persists bonding-curve swap accounts.
package state

import (
	"errors"
	"fmt"
	"sync"

	"github.com/luxfi/database"
	"github.com/luxfi/ids"

	"github.com/luxfi/bondingcurve/components/pack"
	"github.com/luxfi/bondingcurve/vms/curvevm/fees"
	"github.com/luxfi/bondingcurve/vms/curvevm/swaperr"
)

var (
	ErrSwapNotFound = errors.New("swap not found")

	prefixSwap = []byte("swap:")
)

// Store reads and writes swap accounts. Each account is stored as a single
// SwapInfoLen byte value keyed by its swap ID.
type Store struct {
	mu sync.RWMutex
	db database.Database
}

// New creates a swap account store backed by db.
func New(db database.Database) *Store {
	return &Store{
		db: db,
	}
}

// HasSwapInfo returns true if an account, initialized or not, is stored for
// swapID.
func (s *Store) HasSwapInfo(swapID ids.ID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.db.Has(swapKey(swapID))
}

// GetSwapInfo returns the initialized account stored for swapID.
func (s *Store) GetSwapInfo(swapID ids.ID) (*SwapInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := s.getRaw(swapID)
	if err != nil {
		return nil, err
	}

	info, err := pack.Unpack(data, ParseSwapInfo)
	switch {
	case errors.Is(err, pack.ErrUninitialized):
		return nil, fmt.Errorf("%w: %s", swaperr.UninitializedAccount, swapID)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", swaperr.InvalidAccountData, err)
	}
	return info, nil
}

// PutSwapInfo writes the full account for swapID.
func (s *Store) PutSwapInfo(swapID ids.ID, info *SwapInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Put(swapKey(swapID), pack.Bytes(info))
}

// GetFees decodes only the fee window of the account stored for swapID.
func (s *Store) GetFees(swapID ids.ID) (fees.Fees, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := s.getInitializedRaw(swapID)
	if err != nil {
		return fees.Fees{}, err
	}

	f, err := fees.Parse(feesWindow(data))
	if err != nil {
		return fees.Fees{}, fmt.Errorf("%w: %w", swaperr.InvalidAccountData, err)
	}
	return f, nil
}

// PutFees re-encodes the fee window of the account stored for swapID. Every
// other byte of the account is left unchanged.
func (s *Store) PutFees(swapID ids.ID, f fees.Fees) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.getInitializedRaw(swapID)
	if err != nil {
		return err
	}

	updated := make([]byte, len(data))
	copy(updated, data)
	if err := pack.Pack(feesWindow(updated), f); err != nil {
		return err
	}
	return s.db.Put(swapKey(swapID), updated)
}

func (s *Store) getRaw(swapID ids.ID) ([]byte, error) {
	data, err := s.db.Get(swapKey(swapID))
	if errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("%w %s: %w", ErrSwapNotFound, swapID, err)
	}
	return data, err
}

// getInitializedRaw returns the raw account bytes after checking the length
// and initialized flag, without decoding the rest of the account.
func (s *Store) getInitializedRaw(swapID ids.ID) ([]byte, error) {
	data, err := s.getRaw(swapID)
	if err != nil {
		return nil, err
	}
	if len(data) != SwapInfoLen {
		return nil, fmt.Errorf("%w: %w", swaperr.InvalidAccountData, ErrInvalidSwapInfoLength)
	}
	if data[initializedOffset] != 1 {
		return nil, fmt.Errorf("%w: %s", swaperr.UninitializedAccount, swapID)
	}
	return data, nil
}

func feesWindow(account []byte) []byte {
	return account[FeesOffset:SwapInfoLen]
}

func swapKey(swapID ids.ID) []byte {
	key := make([]byte, 0, len(prefixSwap)+ids.IDLen)
	key = append(key, prefixSwap...)
	return append(key, swapID[:]...)
}
