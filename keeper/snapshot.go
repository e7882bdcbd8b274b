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

package keeper

import (
	"context"

	"cosmossdk.io/errors"

	"github.com/0x3f97/euler-vault-kit/types"
)

// VaultSnapshot is a copy of the persisted vault state taken exactly once at
// the top of an entry point. Every read within the operation goes through the
// snapshot so the operation observes a single consistent view; the snapshot
// is discarded when the entry point returns.
type VaultSnapshot struct {
	Cash               types.Assets
	TotalShares        types.Shares
	AccumulatedFees    types.Shares
	AccruedValue       types.Assets
	SupplyCap          types.Assets
	DisabledOperations uint32
}

// TotalAssets is the vault's total asset equivalent: cash on hand plus the
// externally reported accrued value.
func (s VaultSnapshot) TotalAssets() types.Assets {
	return types.Assets{Int: s.Cash.Int.Add(s.AccruedValue.Int)}
}

// LoadSnapshot reads every persisted item once and returns the assembled
// snapshot.
func (k *Keeper) LoadSnapshot(ctx context.Context) (VaultSnapshot, error) {
	cash, err := k.GetCash(ctx)
	if err != nil {
		return VaultSnapshot{}, errors.Wrap(err, "unable to get cash from state")
	}

	totalShares, err := k.GetTotalShares(ctx)
	if err != nil {
		return VaultSnapshot{}, errors.Wrap(err, "unable to get total shares from state")
	}

	fees, err := k.GetAccumulatedFees(ctx)
	if err != nil {
		return VaultSnapshot{}, errors.Wrap(err, "unable to get accumulated fees from state")
	}

	accrued, err := k.GetAccruedValue(ctx)
	if err != nil {
		return VaultSnapshot{}, errors.Wrap(err, "unable to get accrued value from state")
	}

	cap, err := k.GetSupplyCap(ctx)
	if err != nil {
		return VaultSnapshot{}, errors.Wrap(err, "unable to get supply cap from state")
	}

	bitmap, err := k.GetDisabledOperations(ctx)
	if err != nil {
		return VaultSnapshot{}, errors.Wrap(err, "unable to get disabled operations from state")
	}

	return VaultSnapshot{
		Cash:               cash,
		TotalShares:        totalShares,
		AccumulatedFees:    fees,
		AccruedValue:       accrued,
		SupplyCap:          cap,
		DisabledOperations: bitmap,
	}, nil
}

// initOperation runs the common state-mutating preamble: acquire the
// operation gate, load the snapshot and verify the operation's bit is not
// set in the disabled bitmap. On success the caller must defer the returned
// release function.
func (k *Keeper) initOperation(ctx context.Context, op types.Operation) (VaultSnapshot, func(), error) {
	release, err := k.beginOperation()
	if err != nil {
		return VaultSnapshot{}, nil, err
	}

	snapshot, err := k.LoadSnapshot(ctx)
	if err != nil {
		release()
		return VaultSnapshot{}, nil, err
	}

	if k.hook.IsOperationDisabled(snapshot.DisabledOperations, op) {
		release()
		return VaultSnapshot{}, nil, errors.Wrapf(types.ErrOperationDisabled, "%s is disabled", op)
	}

	return snapshot, release, nil
}
