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

	"cosmossdk.io/core/event"
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/0x3f97/euler-vault-kit/types"
)

var _ types.MsgServer = &msgServer{}

type msgServer struct {
	*Keeper
}

func NewMsgServer(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// Deposit pulls assets from the signer and credits the receiver with the
// round-down share conversion. A zero request is a silent no-op, but a
// nonzero request that converts to zero shares is a hard failure: nobody
// should pay for an asset transfer that mints nothing.
func (m msgServer) Deposit(ctx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	signer, err := m.decodeAddress(msg.Signer, "signer")
	if err != nil {
		return nil, err
	}
	receiver, err := m.decodeAddress(msg.Receiver, "receiver")
	if err != nil {
		return nil, err
	}

	snapshot, release, err := m.initOperation(ctx, types.OpDeposit)
	if err != nil {
		return nil, err
	}
	defer release()

	amount := msg.Amount
	if amount.IsNil() || amount.IsNegative() {
		return nil, errors.Wrap(types.ErrInvalidRequest, "deposit amount must be set and non-negative")
	}
	if types.IsMaxRequest(amount) {
		balance, err := m.assets.Balance(ctx, signer)
		if err != nil {
			return nil, errors.Wrap(err, "unable to get depositor asset balance")
		}
		amount = balance.Int
	}
	if amount.IsZero() {
		return &types.MsgDepositResponse{AssetsDeposited: math.ZeroInt(), SharesMinted: math.ZeroInt()}, nil
	}

	assets := types.NewAssets(amount)
	if err := assets.Validate(); err != nil {
		return nil, err
	}

	received, err := m.assets.Pull(ctx, signer, assets)
	if err != nil {
		return nil, errors.Wrap(err, "unable to pull assets from depositor")
	}

	shares := snapshot.ToSharesDown(received)
	if shares.Int.IsZero() {
		return nil, errors.Wrapf(types.ErrZeroShares, "%s assets convert to zero shares", received)
	}

	if err := m.checkSupplyCap(snapshot, received); err != nil {
		return nil, err
	}

	if err := m.ledger.CreditShares(ctx, receiver, shares); err != nil {
		return nil, errors.Wrap(err, "unable to credit shares to receiver")
	}

	if err := m.creditVault(ctx, snapshot, received, shares); err != nil {
		return nil, err
	}

	if err := m.event.EventManager(ctx).EmitKV(ctx, types.EventTypeDeposit,
		event.Attribute{Key: types.AttributeKeySender, Value: msg.Signer},
		event.Attribute{Key: types.AttributeKeyReceiver, Value: msg.Receiver},
		event.Attribute{Key: types.AttributeKeyAssets, Value: received.String()},
		event.Attribute{Key: types.AttributeKeyShares, Value: shares.String()},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit deposit event")
	}

	return &types.MsgDepositResponse{AssetsDeposited: received.Int, SharesMinted: shares.Int}, nil
}

// Mint credits the receiver with exactly the requested shares, pulling the
// round-up asset conversion from the signer.
func (m msgServer) Mint(ctx context.Context, msg *types.MsgMint) (*types.MsgMintResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	signer, err := m.decodeAddress(msg.Signer, "signer")
	if err != nil {
		return nil, err
	}
	receiver, err := m.decodeAddress(msg.Receiver, "receiver")
	if err != nil {
		return nil, err
	}

	snapshot, release, err := m.initOperation(ctx, types.OpMint)
	if err != nil {
		return nil, err
	}
	defer release()

	if msg.Shares.IsNil() || msg.Shares.IsNegative() {
		return nil, errors.Wrap(types.ErrInvalidRequest, "mint shares must be set and non-negative")
	}
	if msg.Shares.IsZero() {
		return &types.MsgMintResponse{AssetsDeposited: math.ZeroInt(), SharesMinted: math.ZeroInt()}, nil
	}

	shares := types.NewShares(msg.Shares)
	if err := shares.Validate(); err != nil {
		return nil, err
	}

	assets := snapshot.ToAssetsUp(shares)

	if err := m.checkSupplyCap(snapshot, assets); err != nil {
		return nil, err
	}

	received, err := m.assets.Pull(ctx, signer, assets)
	if err != nil {
		return nil, errors.Wrap(err, "unable to pull assets from minter")
	}

	if err := m.ledger.CreditShares(ctx, receiver, shares); err != nil {
		return nil, errors.Wrap(err, "unable to credit shares to receiver")
	}

	if err := m.creditVault(ctx, snapshot, received, shares); err != nil {
		return nil, err
	}

	if err := m.event.EventManager(ctx).EmitKV(ctx, types.EventTypeDeposit,
		event.Attribute{Key: types.AttributeKeySender, Value: msg.Signer},
		event.Attribute{Key: types.AttributeKeyReceiver, Value: msg.Receiver},
		event.Attribute{Key: types.AttributeKeyAssets, Value: received.String()},
		event.Attribute{Key: types.AttributeKeyShares, Value: shares.String()},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit mint event")
	}

	return &types.MsgMintResponse{AssetsDeposited: received.Int, SharesMinted: shares.Int}, nil
}

// Withdraw pays out exactly the requested assets to the receiver and burns
// the round-up share conversion from the owner.
func (m msgServer) Withdraw(ctx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	if msg.Amount.IsNil() || msg.Amount.IsNegative() {
		return nil, errors.Wrap(types.ErrInvalidRequest, "withdrawal amount must be set and non-negative")
	}

	return m.finalizeWithdraw(ctx, withdrawRequest{
		op:       types.OpWithdraw,
		signer:   msg.Signer,
		receiver: msg.Receiver,
		owner:    msg.Owner,
		amount:   msg.Amount,
		inShares: false,
	})
}

// Redeem burns exactly the requested shares from the owner and pays out the
// round-down asset conversion to the receiver.
func (m msgServer) Redeem(ctx context.Context, msg *types.MsgRedeem) (*types.MsgRedeemResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	if msg.Shares.IsNil() || msg.Shares.IsNegative() {
		return nil, errors.Wrap(types.ErrInvalidRequest, "redeem shares must be set and non-negative")
	}

	response, err := m.finalizeWithdraw(ctx, withdrawRequest{
		op:       types.OpRedeem,
		signer:   msg.Signer,
		receiver: msg.Receiver,
		owner:    msg.Owner,
		amount:   msg.Shares,
		inShares: true,
	})
	if err != nil {
		return nil, err
	}

	return &types.MsgRedeemResponse{AssetsWithdrawn: response.AssetsWithdrawn, SharesBurned: response.SharesBurned}, nil
}

type withdrawRequest struct {
	op       types.Operation
	signer   string
	receiver string
	owner    string
	amount   math.Int
	inShares bool
}

// finalizeWithdraw is the shared withdraw/redeem protocol: resolve the
// request into an (assets, shares) pair with the operation's rounding rule,
// verify liquidity, settle allowance and debit the owner (which triggers the
// controller check inside the ledger), then push the assets out.
func (m msgServer) finalizeWithdraw(ctx context.Context, req withdrawRequest) (*types.MsgWithdrawResponse, error) {
	signer, err := m.decodeAddress(req.signer, "signer")
	if err != nil {
		return nil, err
	}
	receiver, err := m.decodeAddress(req.receiver, "receiver")
	if err != nil {
		return nil, err
	}
	owner, err := m.decodeAddress(req.owner, "owner")
	if err != nil {
		return nil, err
	}

	snapshot, release, err := m.initOperation(ctx, req.op)
	if err != nil {
		return nil, err
	}
	defer release()

	amount := req.amount
	if req.inShares && types.IsMaxRequest(amount) {
		balance, err := m.ledger.GetBalance(ctx, owner)
		if err != nil {
			return nil, errors.Wrap(err, "unable to get owner share balance")
		}
		amount = balance.Int
	}
	if amount.IsZero() {
		return &types.MsgWithdrawResponse{AssetsWithdrawn: math.ZeroInt(), SharesBurned: math.ZeroInt()}, nil
	}

	var assets types.Assets
	var shares types.Shares
	if req.inShares {
		shares = types.NewShares(amount)
		if err := shares.Validate(); err != nil {
			return nil, err
		}
		assets = snapshot.ToAssetsDown(shares)
		if assets.Int.IsZero() {
			return nil, errors.Wrapf(types.ErrZeroAssets, "%s shares convert to zero assets", shares)
		}
	} else {
		assets = types.NewAssets(amount)
		if err := assets.Validate(); err != nil {
			return nil, err
		}
		shares = snapshot.ToSharesUp(assets)
	}

	// Solvency on paper is not liquidity: assets may be deployed elsewhere.
	if snapshot.Cash.LT(assets) {
		return nil, errors.Wrapf(types.ErrInsufficientCash, "vault holds %s, withdrawal needs %s", snapshot.Cash, assets)
	}

	if !signer.Equals(owner) {
		if err := m.ledger.DecreaseAllowance(ctx, owner, signer, shares); err != nil {
			return nil, errors.Wrap(err, "unable to decrease allowance")
		}
	}

	if err := m.ledger.DebitShares(ctx, owner, signer, shares, true); err != nil {
		return nil, errors.Wrap(err, "unable to debit shares from owner")
	}

	if err := m.debitVault(ctx, snapshot, assets, shares); err != nil {
		return nil, err
	}

	if err := m.assets.Push(ctx, receiver, assets); err != nil {
		return nil, errors.Wrap(err, "unable to push assets to receiver")
	}

	if err := m.event.EventManager(ctx).EmitKV(ctx, types.EventTypeWithdraw,
		event.Attribute{Key: types.AttributeKeySender, Value: req.signer},
		event.Attribute{Key: types.AttributeKeyReceiver, Value: req.receiver},
		event.Attribute{Key: types.AttributeKeyOwner, Value: req.owner},
		event.Attribute{Key: types.AttributeKeyAssets, Value: assets.String()},
		event.Attribute{Key: types.AttributeKeyShares, Value: shares.String()},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit withdrawal event")
	}

	return &types.MsgWithdrawResponse{AssetsWithdrawn: assets.Int, SharesBurned: shares.Int}, nil
}

// Skim credits shares for assets already sitting in the vault's wallet but
// not yet ledger-tracked. This is the one place the ledger's cash increases
// without an asset movement, so the credit must never exceed the true
// unaccounted surplus.
func (m msgServer) Skim(ctx context.Context, msg *types.MsgSkim) (*types.MsgSkimResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	if _, err := m.decodeAddress(msg.Signer, "signer"); err != nil {
		return nil, err
	}
	receiver, err := m.decodeAddress(msg.Receiver, "receiver")
	if err != nil {
		return nil, err
	}

	snapshot, release, err := m.initOperation(ctx, types.OpSkim)
	if err != nil {
		return nil, err
	}
	defer release()

	wallet, err := m.assets.Balance(ctx, types.ModuleAddress)
	if err != nil {
		return nil, errors.Wrap(err, "unable to get vault wallet balance")
	}
	available := wallet.SubClamped(snapshot.Cash)

	amount := msg.Amount
	if amount.IsNil() || amount.IsNegative() {
		return nil, errors.Wrap(types.ErrInvalidRequest, "skim amount must be set and non-negative")
	}
	if types.IsMaxRequest(amount) {
		amount = available.Int
	}
	if amount.IsZero() {
		return &types.MsgSkimResponse{AssetsSkimmed: math.ZeroInt(), SharesMinted: math.ZeroInt()}, nil
	}

	assets := types.NewAssets(amount)
	if err := assets.Validate(); err != nil {
		return nil, err
	}
	if assets.GT(available) {
		return nil, errors.Wrapf(types.ErrInsufficientAssets, "requested %s, unaccounted surplus is %s", assets, available)
	}

	shares := snapshot.ToSharesDown(assets)
	if shares.Int.IsZero() {
		return nil, errors.Wrapf(types.ErrZeroShares, "%s assets convert to zero shares", assets)
	}

	if err := m.checkSupplyCap(snapshot, assets); err != nil {
		return nil, err
	}

	if err := m.ledger.CreditShares(ctx, receiver, shares); err != nil {
		return nil, errors.Wrap(err, "unable to credit shares to receiver")
	}

	if err := m.creditVault(ctx, snapshot, assets, shares); err != nil {
		return nil, err
	}

	m.logger.Debug("skimmed unaccounted assets", "assets", assets.String(), "shares", shares.String())

	if err := m.event.EventManager(ctx).EmitKV(ctx, types.EventTypeSkim,
		event.Attribute{Key: types.AttributeKeySender, Value: msg.Signer},
		event.Attribute{Key: types.AttributeKeyReceiver, Value: msg.Receiver},
		event.Attribute{Key: types.AttributeKeyAssets, Value: assets.String()},
		event.Attribute{Key: types.AttributeKeyShares, Value: shares.String()},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit skim event")
	}

	return &types.MsgSkimResponse{AssetsSkimmed: assets.Int, SharesMinted: shares.Int}, nil
}

// checkSupplyCap fails when adding assets would push the vault's total asset
// equivalent above the configured cap. A zero cap means uncapped.
func (m msgServer) checkSupplyCap(snapshot VaultSnapshot, added types.Assets) error {
	if snapshot.SupplyCap.Int.IsZero() {
		return nil
	}

	total := snapshot.TotalAssets().Int.Add(added.Int)
	if total.GT(snapshot.SupplyCap.Int) {
		return errors.Wrapf(types.ErrSupplyCapExceeded, "total assets %s would exceed cap %s", total, snapshot.SupplyCap)
	}

	return nil
}

// creditVault applies the deposit-side balance change: cash and total shares
// both grow by the converted pair.
func (m msgServer) creditVault(ctx context.Context, snapshot VaultSnapshot, assets types.Assets, shares types.Shares) error {
	cash, err := snapshot.Cash.SafeAdd(assets)
	if err != nil {
		return errors.Wrap(err, "unable to increase cash")
	}
	if err := m.SetCash(ctx, cash); err != nil {
		return errors.Wrap(err, "unable to set cash to state")
	}

	total, err := snapshot.TotalShares.SafeAdd(shares)
	if err != nil {
		return errors.Wrap(err, "unable to increase total shares")
	}
	if err := m.SetTotalShares(ctx, total); err != nil {
		return errors.Wrap(err, "unable to set total shares to state")
	}

	return nil
}

// debitVault applies the withdraw-side balance change.
func (m msgServer) debitVault(ctx context.Context, snapshot VaultSnapshot, assets types.Assets, shares types.Shares) error {
	cash, err := snapshot.Cash.SafeSub(assets)
	if err != nil {
		return errors.Wrap(err, "unable to decrease cash")
	}
	if err := m.SetCash(ctx, cash); err != nil {
		return errors.Wrap(err, "unable to set cash to state")
	}

	total, err := snapshot.TotalShares.SafeSub(shares)
	if err != nil {
		return errors.Wrap(err, "unable to decrease total shares")
	}
	if err := m.SetTotalShares(ctx, total); err != nil {
		return errors.Wrap(err, "unable to set total shares to state")
	}

	return nil
}

func (m msgServer) decodeAddress(address, field string) (sdk.AccAddress, error) {
	bz, err := m.address.StringToBytes(address)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid %s address: %s", field, address)
	}

	return bz, nil
}
