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
	"errors"

	"cosmossdk.io/collections"

	"github.com/0x3f97/euler-vault-kit/types"
)

// GetCash returns the ledger-tracked asset holdings of the vault. When the
// item has not been stored yet the zero value is returned without error.
func (k *Keeper) GetCash(ctx context.Context) (types.Assets, error) {
	cash, err := k.Cash.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.ZeroAssets(), nil
		}
		return types.ZeroAssets(), err
	}

	return types.NewAssets(cash), nil
}

// SetCash persists the ledger-tracked asset holdings.
func (k *Keeper) SetCash(ctx context.Context, cash types.Assets) error {
	return k.Cash.Set(ctx, cash.Int)
}

// GetTotalShares returns the circulating share supply, excluding accumulated
// fee shares.
func (k *Keeper) GetTotalShares(ctx context.Context) (types.Shares, error) {
	total, err := k.TotalShares.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.ZeroShares(), nil
		}
		return types.ZeroShares(), err
	}

	return types.NewShares(total), nil
}

// SetTotalShares persists the circulating share supply.
func (k *Keeper) SetTotalShares(ctx context.Context, total types.Shares) error {
	return k.TotalShares.Set(ctx, total.Int)
}

// GetSupplyCap returns the configured supply cap. A zero cap means the vault
// is uncapped.
func (k *Keeper) GetSupplyCap(ctx context.Context) (types.Assets, error) {
	cap, err := k.SupplyCap.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.ZeroAssets(), nil
		}
		return types.ZeroAssets(), err
	}

	return types.NewAssets(cap), nil
}

// SetSupplyCapValue persists the supply cap.
func (k *Keeper) SetSupplyCapValue(ctx context.Context, cap types.Assets) error {
	return k.SupplyCap.Set(ctx, cap.Int)
}

// GetAccumulatedFees returns the fee shares accrued to the vault but not yet
// converted into circulating supply.
func (k *Keeper) GetAccumulatedFees(ctx context.Context) (types.Shares, error) {
	fees, err := k.AccumulatedFees.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.ZeroShares(), nil
		}
		return types.ZeroShares(), err
	}

	return types.NewShares(fees), nil
}

// SetAccumulatedFees persists the accrued fee shares.
func (k *Keeper) SetAccumulatedFees(ctx context.Context, fees types.Shares) error {
	return k.AccumulatedFees.Set(ctx, fees.Int)
}

// GetAccruedValue returns the externally reported accrued asset value the
// vault is owed on top of its cash.
func (k *Keeper) GetAccruedValue(ctx context.Context) (types.Assets, error) {
	accrued, err := k.AccruedValue.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.ZeroAssets(), nil
		}
		return types.ZeroAssets(), err
	}

	return types.NewAssets(accrued), nil
}

// SetAccruedValue persists the externally reported accrued asset value.
func (k *Keeper) SetAccruedValue(ctx context.Context, accrued types.Assets) error {
	return k.AccruedValue.Set(ctx, accrued.Int)
}

// GetDisabledOperations returns the disabled operations bitmap.
func (k *Keeper) GetDisabledOperations(ctx context.Context) (uint32, error) {
	bitmap, err := k.DisabledOperations.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return bitmap, nil
}

// SetDisabledOperationsBitmap persists the disabled operations bitmap.
func (k *Keeper) SetDisabledOperationsBitmap(ctx context.Context, bitmap uint32) error {
	return k.DisabledOperations.Set(ctx, bitmap)
}

// GetCreator returns the vault creator, the recipient of collected fees. An
// empty string means no creator has been configured.
func (k *Keeper) GetCreator(ctx context.Context) (string, error) {
	creator, err := k.Creator.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return "", nil
		}
		return "", err
	}

	return creator, nil
}

// SetCreator persists the vault creator.
func (k *Keeper) SetCreator(ctx context.Context, creator string) error {
	return k.Creator.Set(ctx, creator)
}
