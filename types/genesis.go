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
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// GenesisState carries the vault's persisted accounting state. Per-account
// share balances and allowances belong to the ledger module's genesis, not
// this one.
type GenesisState struct {
	Creator            string
	Cash               math.Int
	TotalShares        math.Int
	SupplyCap          math.Int
	AccumulatedFees    math.Int
	AccruedValue       math.Int
	DisabledOperations uint32
}

func DefaultGenesisState() GenesisState {
	return GenesisState{
		Cash:            math.ZeroInt(),
		TotalShares:     math.ZeroInt(),
		SupplyCap:       math.ZeroInt(),
		AccumulatedFees: math.ZeroInt(),
		AccruedValue:    math.ZeroInt(),
	}
}

func (gs GenesisState) Validate() error {
	for name, amount := range map[string]math.Int{
		"cash":             gs.Cash,
		"total shares":     gs.TotalShares,
		"supply cap":       gs.SupplyCap,
		"accumulated fees": gs.AccumulatedFees,
		"accrued value":    gs.AccruedValue,
	} {
		if amount.IsNil() {
			return errors.Wrapf(ErrInvalidRequest, "%s is not set", name)
		}
		if amount.IsNegative() {
			return errors.Wrapf(ErrInvalidRequest, "%s cannot be negative", name)
		}
		if amount.GT(MaxSaneAmount) && name != "supply cap" {
			return errors.Wrapf(ErrAmountTooLarge, "%s exceeds sane limit", name)
		}
	}

	return nil
}
