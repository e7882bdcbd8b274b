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

var _ types.QueryServer = &queryServer{}

type queryServer struct {
	*Keeper
}

func NewQueryServer(keeper *Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

// The capacity queries answer "what is the largest request that would not
// fail for a capacity reason". They are conservative: external conditions a
// query cannot see may still fail a same-sized operation, but a smaller
// request never succeeds where the reported maximum would fail.

// MaxDeposit returns the largest asset deposit the vault can currently
// accept, considering the sane amount limit and the supply cap.
func (q queryServer) MaxDeposit(ctx context.Context, req *types.QueryMaxDeposit) (*types.QueryMaxDepositResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	snapshot, err := q.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	return &types.QueryMaxDepositResponse{MaxAssets: q.maxDeposit(snapshot).Int}, nil
}

// MaxMint returns the share equivalent of the current deposit capacity.
func (q queryServer) MaxMint(ctx context.Context, req *types.QueryMaxMint) (*types.QueryMaxMintResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	snapshot, err := q.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	if q.hook.IsOperationDisabled(snapshot.DisabledOperations, types.OpMint) {
		return &types.QueryMaxMintResponse{MaxShares: types.ZeroShares().Int}, nil
	}

	capacity := q.depositCapacity(snapshot)
	shares := snapshot.ToSharesDown(capacity)
	shares = shares.Min(types.Shares{Int: types.MaxSaneAmount})

	return &types.QueryMaxMintResponse{MaxShares: shares.Int}, nil
}

// MaxWithdraw returns the largest asset withdrawal the owner could make,
// bounded by both the owner's share balance and the vault's cash on hand.
func (q queryServer) MaxWithdraw(ctx context.Context, req *types.QueryMaxWithdraw) (*types.QueryMaxWithdrawResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	snapshot, err := q.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	shares, err := q.maxRedeem(ctx, snapshot, req.Owner, types.OpWithdraw)
	if err != nil {
		return nil, err
	}

	return &types.QueryMaxWithdrawResponse{MaxAssets: snapshot.ToAssetsDown(shares).Int}, nil
}

// MaxRedeem returns the largest share redemption the owner could make.
func (q queryServer) MaxRedeem(ctx context.Context, req *types.QueryMaxRedeem) (*types.QueryMaxRedeemResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	snapshot, err := q.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	shares, err := q.maxRedeem(ctx, snapshot, req.Owner, types.OpRedeem)
	if err != nil {
		return nil, err
	}

	return &types.QueryMaxRedeemResponse{MaxShares: shares.Int}, nil
}

// ConvertToShares previews the round-down share conversion of an asset
// amount at the current exchange rate.
func (q queryServer) ConvertToShares(ctx context.Context, req *types.QueryConvertToShares) (*types.QueryConvertToSharesResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	assets := types.NewAssets(req.Assets)
	if err := assets.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := q.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	return &types.QueryConvertToSharesResponse{Shares: snapshot.ToSharesDown(assets).Int}, nil
}

// ConvertToAssets previews the round-down asset conversion of a share
// amount at the current exchange rate.
func (q queryServer) ConvertToAssets(ctx context.Context, req *types.QueryConvertToAssets) (*types.QueryConvertToAssetsResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	shares := types.NewShares(req.Shares)
	if err := shares.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := q.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	return &types.QueryConvertToAssetsResponse{Assets: snapshot.ToAssetsDown(shares).Int}, nil
}

// VaultState returns the full persisted vault state in one response.
func (q queryServer) VaultState(ctx context.Context, req *types.QueryVaultState) (*types.QueryVaultStateResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	snapshot, err := q.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	creator, err := q.GetCreator(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to get creator from state")
	}

	return &types.QueryVaultStateResponse{
		Cash:               snapshot.Cash.Int,
		TotalShares:        snapshot.TotalShares.Int,
		TotalAssets:        snapshot.TotalAssets().Int,
		SupplyCap:          snapshot.SupplyCap.Int,
		AccumulatedFees:    snapshot.AccumulatedFees.Int,
		AccruedValue:       snapshot.AccruedValue.Int,
		DisabledOperations: snapshot.DisabledOperations,
		Creator:            creator,
	}, nil
}

func (q queryServer) maxDeposit(snapshot VaultSnapshot) types.Assets {
	if q.hook.IsOperationDisabled(snapshot.DisabledOperations, types.OpDeposit) {
		return types.ZeroAssets()
	}

	return q.depositCapacity(snapshot)
}

// depositCapacity is the asset headroom shared by deposit and mint: the sane
// amount limit on stored cash, tightened by the supply cap when one is set.
func (q queryServer) depositCapacity(snapshot VaultSnapshot) types.Assets {
	remaining := types.Assets{Int: types.MaxSaneAmount}.SubClamped(snapshot.Cash)

	if snapshot.SupplyCap.Int.IsZero() {
		return remaining
	}

	headroom := snapshot.SupplyCap.SubClamped(snapshot.TotalAssets())

	return remaining.Min(headroom)
}

// maxRedeem is the share headroom shared by withdraw and redeem. An owner
// whose shares are both enabled as collateral and bound to a controller is
// reported as zero: the controller's verdict on a concrete debit cannot be
// predicted, so the conservative answer is the only safe one.
func (q queryServer) maxRedeem(ctx context.Context, snapshot VaultSnapshot, owner string, op types.Operation) (types.Shares, error) {
	if q.hook.IsOperationDisabled(snapshot.DisabledOperations, op) {
		return types.ZeroShares(), nil
	}

	account, err := q.address.StringToBytes(owner)
	if err != nil {
		return types.ZeroShares(), errors.Wrapf(types.ErrInvalidRequest, "invalid owner address: %s", owner)
	}

	collateral, err := q.controller.HasCollateralEnabled(ctx, account)
	if err != nil {
		return types.ZeroShares(), errors.Wrap(err, "unable to get collateral status")
	}
	controller, err := q.controller.HasControllerEnabled(ctx, account)
	if err != nil {
		return types.ZeroShares(), errors.Wrap(err, "unable to get controller status")
	}
	if collateral && controller {
		return types.ZeroShares(), nil
	}

	balance, err := q.ledger.GetBalance(ctx, account)
	if err != nil {
		return types.ZeroShares(), errors.Wrap(err, "unable to get owner share balance")
	}

	liquid := snapshot.ToSharesDown(snapshot.Cash)

	return balance.Min(liquid), nil
}
