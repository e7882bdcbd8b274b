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

package mocks

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/0x3f97/euler-vault-kit/types"
)

var _ types.AssetKeeper = &Assets{}

// Assets is an in-memory bank for the underlying asset token. The vault's
// holdings live under types.ModuleAddress like any other account.
type Assets struct {
	Denom    string
	Balances map[string]sdk.Coins

	// Fee, when positive, is deducted from every Pull to simulate a token
	// that takes a fee on transfer.
	Fee math.Int
}

func NewAssets(denom string) *Assets {
	return &Assets{
		Denom:    denom,
		Balances: make(map[string]sdk.Coins),
		Fee:      math.ZeroInt(),
	}
}

func (a *Assets) Pull(_ context.Context, from sdk.AccAddress, amount types.Assets) (types.Assets, error) {
	balance := a.Balances[from.String()].AmountOf(a.Denom)
	if balance.LT(amount.Int) {
		return types.ZeroAssets(), fmt.Errorf("insufficient balance, account holds %s", balance)
	}

	received := amount.Int.Sub(a.Fee)
	if received.IsNegative() {
		received = math.ZeroInt()
	}

	a.Balances[from.String()] = a.Balances[from.String()].Sub(sdk.NewCoin(a.Denom, amount.Int))
	a.Balances[types.ModuleAddress.String()] = a.Balances[types.ModuleAddress.String()].Add(sdk.NewCoin(a.Denom, received))

	return types.NewAssets(received), nil
}

func (a *Assets) Push(_ context.Context, to sdk.AccAddress, amount types.Assets) error {
	balance := a.Balances[types.ModuleAddress.String()].AmountOf(a.Denom)
	if balance.LT(amount.Int) {
		return fmt.Errorf("insufficient balance, vault holds %s", balance)
	}

	a.Balances[types.ModuleAddress.String()] = a.Balances[types.ModuleAddress.String()].Sub(sdk.NewCoin(a.Denom, amount.Int))
	a.Balances[to.String()] = a.Balances[to.String()].Add(sdk.NewCoin(a.Denom, amount.Int))

	return nil
}

func (a *Assets) Balance(_ context.Context, account sdk.AccAddress) (types.Assets, error) {
	return types.NewAssets(a.Balances[account.String()].AmountOf(a.Denom)), nil
}

// Fund credits an account with amount of the underlying token out of thin
// air.
func (a *Assets) Fund(account sdk.AccAddress, amount math.Int) {
	a.Balances[account.String()] = a.Balances[account.String()].Add(sdk.NewCoin(a.Denom, amount))
}
