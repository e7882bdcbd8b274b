// SPDX-License-Identifier: BUSL-1.1
//
// Copyright (C) 2025, Euler Vault Kit Authors. All rights reserved.
// Use of this software is governed by the Business Source License included
// in the LICENSE file of this repository and at www.mariadb.com/bsl11.
//
// ANY USE OF THE LICENSED WORK IN VIOLATION OF THIS LICENSE WILL AUTOMATICALLY
// TERMINATE YOUR RIGHTS UNDER THIS LICENSE FOR THE CURRENT AND ALL OTHER
// VERSIONS OF THE LICENSED WORK.
//
// THIS LICENSE DOES NOT GRANT YOU ANY RIGHT IN ANY TRADEMARK OR LOGO OF
// LICENSOR OR ITS AFFILIATES (PROVIDED THAT YOU MAY USE A TRADEMARK OR LOGO OF
// LICENSOR AS EXPRESSLY REQUIRED BY THIS LICENSE).
//
// TO THE EXTENT PERMITTED BY APPLICABLE LAW, THE LICENSED WORK IS PROVIDED ON
// AN "AS IS" BASIS. LICENSOR HEREBY DISCLAIMS ALL WARRANTIES AND CONDITIONS,
// EXPRESS OR IMPLIED, INCLUDING (WITHOUT LIMITATION) WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE, NON-INFRINGEMENT, AND
// TITLE.

package types

import (
	"math/big"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
)

var (
	// MaxSaneAmount bounds every stored quantity so that intermediate
	// conversion products never approach the 256-bit arithmetic limit.
	MaxSaneAmount = math.NewIntFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 112), big.NewInt(1)))

	// MaxRequest is the request sentinel meaning "the entire available
	// balance". It is far above MaxSaneAmount and can therefore never be
	// confused with a concrete quantity.
	MaxRequest = math.NewIntFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)))
)

// IsMaxRequest reports whether amount is the "entire balance" sentinel.
func IsMaxRequest(amount math.Int) bool {
	return !amount.IsNil() && amount.Equal(MaxRequest)
}

// Assets is a quantity of the vault's underlying value unit. Assets and
// Shares are deliberately distinct types: the only way to turn one into the
// other is a snapshot conversion with an explicit rounding direction.
type Assets struct{ math.Int }

func NewAssets(amount math.Int) Assets { return Assets{amount} }

func ZeroAssets() Assets { return Assets{math.ZeroInt()} }

// SafeAdd returns a+b, failing if the sum leaves the sane range.
func (a Assets) SafeAdd(b Assets) (Assets, error) {
	sum, err := a.Int.SafeAdd(b.Int)
	if err != nil {
		return ZeroAssets(), err
	}
	if sum.GT(MaxSaneAmount) {
		return ZeroAssets(), errors.Wrapf(ErrAmountTooLarge, "%s assets exceeds sane limit", sum)
	}
	return Assets{sum}, nil
}

// SafeSub returns a-b, failing on underflow. Quantities never go negative.
func (a Assets) SafeSub(b Assets) (Assets, error) {
	diff, err := a.Int.SafeSub(b.Int)
	if err != nil {
		return ZeroAssets(), err
	}
	if diff.IsNegative() {
		return ZeroAssets(), errors.Wrapf(ErrInvalidRequest, "cannot subtract %s assets from %s", b, a)
	}
	return Assets{diff}, nil
}

// SubClamped returns max(0, a-b). This is the one sanctioned unchecked
// subtraction, used to measure the unaccounted surplus for skim.
func (a Assets) SubClamped(b Assets) Assets {
	if a.Int.LTE(b.Int) {
		return ZeroAssets()
	}
	return Assets{a.Int.Sub(b.Int)}
}

func (a Assets) Min(b Assets) Assets {
	if a.Int.LT(b.Int) {
		return a
	}
	return b
}

func (a Assets) LT(b Assets) bool    { return a.Int.LT(b.Int) }
func (a Assets) GT(b Assets) bool    { return a.Int.GT(b.Int) }
func (a Assets) Equal(b Assets) bool { return a.Int.Equal(b.Int) }

// Validate checks that the quantity is set, non-negative and sane.
func (a Assets) Validate() error {
	if a.Int.IsNil() {
		return errors.Wrap(ErrInvalidRequest, "asset amount is not set")
	}
	if a.Int.IsNegative() {
		return errors.Wrapf(ErrInvalidRequest, "asset amount %s is negative", a)
	}
	if a.Int.GT(MaxSaneAmount) {
		return errors.Wrapf(ErrAmountTooLarge, "%s assets exceeds sane limit", a)
	}
	return nil
}

// Shares is a quantity of the vault's own accounting unit, a proportional
// claim on vault assets.
type Shares struct{ math.Int }

func NewShares(amount math.Int) Shares { return Shares{amount} }

func ZeroShares() Shares { return Shares{math.ZeroInt()} }

func (s Shares) SafeAdd(b Shares) (Shares, error) {
	sum, err := s.Int.SafeAdd(b.Int)
	if err != nil {
		return ZeroShares(), err
	}
	if sum.GT(MaxSaneAmount) {
		return ZeroShares(), errors.Wrapf(ErrAmountTooLarge, "%s shares exceeds sane limit", sum)
	}
	return Shares{sum}, nil
}

func (s Shares) SafeSub(b Shares) (Shares, error) {
	diff, err := s.Int.SafeSub(b.Int)
	if err != nil {
		return ZeroShares(), err
	}
	if diff.IsNegative() {
		return ZeroShares(), errors.Wrapf(ErrInvalidRequest, "cannot subtract %s shares from %s", b, s)
	}
	return Shares{diff}, nil
}

func (s Shares) Min(b Shares) Shares {
	if s.Int.LT(b.Int) {
		return s
	}
	return b
}

func (s Shares) LT(b Shares) bool    { return s.Int.LT(b.Int) }
func (s Shares) GT(b Shares) bool    { return s.Int.GT(b.Int) }
func (s Shares) Equal(b Shares) bool { return s.Int.Equal(b.Int) }

func (s Shares) Validate() error {
	if s.Int.IsNil() {
		return errors.Wrap(ErrInvalidRequest, "share amount is not set")
	}
	if s.Int.IsNegative() {
		return errors.Wrapf(ErrInvalidRequest, "share amount %s is negative", s)
	}
	if s.Int.GT(MaxSaneAmount) {
		return errors.Wrapf(ErrAmountTooLarge, "%s shares exceeds sane limit", s)
	}
	return nil
}
