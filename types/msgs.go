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
	"context"

	"cosmossdk.io/math"
)

// MsgServer is the state-mutating surface of the vault.
type MsgServer interface {
	Deposit(ctx context.Context, msg *MsgDeposit) (*MsgDepositResponse, error)
	Mint(ctx context.Context, msg *MsgMint) (*MsgMintResponse, error)
	Withdraw(ctx context.Context, msg *MsgWithdraw) (*MsgWithdrawResponse, error)
	Redeem(ctx context.Context, msg *MsgRedeem) (*MsgRedeemResponse, error)
	Skim(ctx context.Context, msg *MsgSkim) (*MsgSkimResponse, error)

	SetSupplyCap(ctx context.Context, msg *MsgSetSupplyCap) (*MsgSetSupplyCapResponse, error)
	SetDisabledOperations(ctx context.Context, msg *MsgSetDisabledOperations) (*MsgSetDisabledOperationsResponse, error)
	ReportAccruedValue(ctx context.Context, msg *MsgReportAccruedValue) (*MsgReportAccruedValueResponse, error)
	CollectFees(ctx context.Context, msg *MsgCollectFees) (*MsgCollectFeesResponse, error)
}

// MsgDeposit supplies Amount assets from the signer and mints shares to the
// receiver. Amount may be MaxRequest to deposit the signer's entire asset
// balance.
type MsgDeposit struct {
	Signer   string
	Receiver string
	Amount   math.Int
}

type MsgDepositResponse struct {
	AssetsDeposited math.Int
	SharesMinted    math.Int
}

// MsgMint mints exactly Shares to the receiver, pulling whatever assets that
// costs from the signer.
type MsgMint struct {
	Signer   string
	Receiver string
	Shares   math.Int
}

type MsgMintResponse struct {
	AssetsDeposited math.Int
	SharesMinted    math.Int
}

// MsgWithdraw pays out exactly Amount assets to the receiver, burning the
// owner's shares. The signer needs an allowance when it is not the owner.
type MsgWithdraw struct {
	Signer   string
	Receiver string
	Owner    string
	Amount   math.Int
}

type MsgWithdrawResponse struct {
	AssetsWithdrawn math.Int
	SharesBurned    math.Int
}

// MsgRedeem burns exactly Shares of the owner and pays out the converted
// assets to the receiver. Shares may be MaxRequest to redeem the owner's
// entire balance.
type MsgRedeem struct {
	Signer   string
	Receiver string
	Owner    string
	Shares   math.Int
}

type MsgRedeemResponse struct {
	AssetsWithdrawn math.Int
	SharesBurned    math.Int
}

// MsgSkim credits shares for assets that are already sitting in the vault's
// wallet but are not yet ledger-tracked. Amount may be MaxRequest to skim
// the entire unaccounted surplus.
type MsgSkim struct {
	Signer   string
	Receiver string
	Amount   math.Int
}

type MsgSkimResponse struct {
	AssetsSkimmed math.Int
	SharesMinted  math.Int
}

type MsgSetSupplyCap struct {
	Authority string
	SupplyCap math.Int
}

type MsgSetSupplyCapResponse struct{}

type MsgSetDisabledOperations struct {
	Authority string
	Bitmap    uint32
}

type MsgSetDisabledOperationsResponse struct{}

// MsgReportAccruedValue records the externally accrued asset value the vault
// is owed on top of its cash. The figure is opaque to this module; producing
// it is the accrual module's business.
type MsgReportAccruedValue struct {
	Authority string
	Value     math.Int
}

type MsgReportAccruedValueResponse struct{}

// MsgCollectFees converts the accumulated fee shares into circulating shares
// credited to the vault creator.
type MsgCollectFees struct {
	Authority string
}

type MsgCollectFeesResponse struct {
	SharesCollected math.Int
}
