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

// QueryServer is the read-only surface of the vault. Queries never take the
// operation gate and always observe persisted state.
type QueryServer interface {
	MaxDeposit(ctx context.Context, req *QueryMaxDeposit) (*QueryMaxDepositResponse, error)
	MaxMint(ctx context.Context, req *QueryMaxMint) (*QueryMaxMintResponse, error)
	MaxWithdraw(ctx context.Context, req *QueryMaxWithdraw) (*QueryMaxWithdrawResponse, error)
	MaxRedeem(ctx context.Context, req *QueryMaxRedeem) (*QueryMaxRedeemResponse, error)
	ConvertToShares(ctx context.Context, req *QueryConvertToShares) (*QueryConvertToSharesResponse, error)
	ConvertToAssets(ctx context.Context, req *QueryConvertToAssets) (*QueryConvertToAssetsResponse, error)
	VaultState(ctx context.Context, req *QueryVaultState) (*QueryVaultStateResponse, error)
}

type QueryMaxDeposit struct {
	Account string
}

type QueryMaxDepositResponse struct {
	MaxAssets math.Int
}

type QueryMaxMint struct {
	Account string
}

type QueryMaxMintResponse struct {
	MaxShares math.Int
}

type QueryMaxWithdraw struct {
	Owner string
}

type QueryMaxWithdrawResponse struct {
	MaxAssets math.Int
}

type QueryMaxRedeem struct {
	Owner string
}

type QueryMaxRedeemResponse struct {
	MaxShares math.Int
}

type QueryConvertToShares struct {
	Assets math.Int
}

type QueryConvertToSharesResponse struct {
	Shares math.Int
}

type QueryConvertToAssets struct {
	Shares math.Int
}

type QueryConvertToAssetsResponse struct {
	Assets math.Int
}

type QueryVaultState struct{}

type QueryVaultStateResponse struct {
	Cash               math.Int
	TotalShares        math.Int
	TotalAssets        math.Int
	SupplyCap          math.Int
	AccumulatedFees    math.Int
	AccruedValue       math.Int
	DisabledOperations uint32
	Creator            string
}
