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

func (k *Keeper) InitGenesis(ctx context.Context, genesis types.GenesisState) error {
	if err := genesis.Validate(); err != nil {
		return errors.Wrap(err, "invalid genesis state")
	}

	if err := k.SetCash(ctx, types.NewAssets(genesis.Cash)); err != nil {
		return errors.Wrap(err, "unable to set cash to state")
	}
	if err := k.SetTotalShares(ctx, types.NewShares(genesis.TotalShares)); err != nil {
		return errors.Wrap(err, "unable to set total shares to state")
	}
	if err := k.SetSupplyCapValue(ctx, types.NewAssets(genesis.SupplyCap)); err != nil {
		return errors.Wrap(err, "unable to set supply cap to state")
	}
	if err := k.SetAccumulatedFees(ctx, types.NewShares(genesis.AccumulatedFees)); err != nil {
		return errors.Wrap(err, "unable to set accumulated fees to state")
	}
	if err := k.SetAccruedValue(ctx, types.NewAssets(genesis.AccruedValue)); err != nil {
		return errors.Wrap(err, "unable to set accrued value to state")
	}
	if err := k.SetDisabledOperationsBitmap(ctx, genesis.DisabledOperations); err != nil {
		return errors.Wrap(err, "unable to set disabled operations to state")
	}
	if err := k.SetCreator(ctx, genesis.Creator); err != nil {
		return errors.Wrap(err, "unable to set creator to state")
	}

	return nil
}

func (k *Keeper) ExportGenesis(ctx context.Context) (types.GenesisState, error) {
	snapshot, err := k.LoadSnapshot(ctx)
	if err != nil {
		return types.GenesisState{}, err
	}

	creator, err := k.GetCreator(ctx)
	if err != nil {
		return types.GenesisState{}, errors.Wrap(err, "unable to get creator from state")
	}

	return types.GenesisState{
		Creator:            creator,
		Cash:               snapshot.Cash.Int,
		TotalShares:        snapshot.TotalShares.Int,
		SupplyCap:          snapshot.SupplyCap.Int,
		AccumulatedFees:    snapshot.AccumulatedFees.Int,
		AccruedValue:       snapshot.AccruedValue.Int,
		DisabledOperations: snapshot.DisabledOperations,
	}, nil
}
