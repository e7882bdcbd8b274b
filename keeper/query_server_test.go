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

package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0x3f97/euler-vault-kit/keeper"
	"github.com/0x3f97/euler-vault-kit/types"
	"github.com/0x3f97/euler-vault-kit/utils"
)

func keeperConvert(k *keeper.Keeper, ctx sdk.Context, assets math.Int) (math.Int, error) {
	resp, err := keeper.NewQueryServer(k).ConvertToShares(ctx, &types.QueryConvertToShares{Assets: assets})
	if err != nil {
		return math.Int{}, err
	}

	return resp.Shares, nil
}

func TestQueryMaxDeposit(t *testing.T) {
	k, _, _, assets, _, ctx := setupVault(t)
	server := keeper.NewQueryServer(k)
	bob := utils.TestAccount()

	// ARRANGE: A vault with 1000 of cash and a cap of 1200.
	seedVault(t, k, ctx, assets, 1000, 1000)
	require.NoError(t, k.SetSupplyCapValue(ctx, types.NewAssets(math.NewInt(1200))))

	// ACT & ASSERT: The cap headroom binds before the sane limit.
	resp, err := server.MaxDeposit(ctx, &types.QueryMaxDeposit{Account: bob.Address})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(200), resp.MaxAssets)

	// ARRANGE: Remove the cap.
	require.NoError(t, k.SetSupplyCapValue(ctx, types.ZeroAssets()))

	// ACT & ASSERT: Only the sane limit remains.
	resp, err = server.MaxDeposit(ctx, &types.QueryMaxDeposit{Account: bob.Address})
	require.NoError(t, err)
	assert.Equal(t, types.MaxSaneAmount.Sub(math.NewInt(1000)), resp.MaxAssets)

	// ARRANGE: Disable deposits.
	require.NoError(t, k.SetDisabledOperationsBitmap(ctx, uint32(types.OpDeposit)))

	// ACT & ASSERT: Zero.
	resp, err = server.MaxDeposit(ctx, &types.QueryMaxDeposit{Account: bob.Address})
	require.NoError(t, err)
	assert.True(t, resp.MaxAssets.IsZero())
}

func TestQueryMaxDepositFullVault(t *testing.T) {
	k, _, _, assets, _, ctx := setupVault(t)
	server := keeper.NewQueryServer(k)
	bob := utils.TestAccount()

	// ARRANGE: Total assets already above the cap.
	seedVault(t, k, ctx, assets, 1000, 1000)
	require.NoError(t, k.SetSupplyCapValue(ctx, types.NewAssets(math.NewInt(800))))

	// ACT & ASSERT: The headroom clamps to zero rather than going
	// negative.
	resp, err := server.MaxDeposit(ctx, &types.QueryMaxDeposit{Account: bob.Address})
	require.NoError(t, err)
	assert.True(t, resp.MaxAssets.IsZero())
}

func TestQueryMaxMint(t *testing.T) {
	k, _, _, assets, _, ctx := setupVault(t)
	server := keeper.NewQueryServer(k)
	bob := utils.TestAccount()

	// ARRANGE: 200 of asset headroom at a one-to-one rate.
	seedVault(t, k, ctx, assets, 1000, 1000)
	require.NoError(t, k.SetSupplyCapValue(ctx, types.NewAssets(math.NewInt(1200))))

	// ACT & ASSERT: The share equivalent of the headroom.
	resp, err := server.MaxMint(ctx, &types.QueryMaxMint{Account: bob.Address})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(200), resp.MaxShares)
}

func TestQueryMaxWithdraw(t *testing.T) {
	k, _, ledger, assets, _, ctx := setupVault(t)
	server := keeper.NewQueryServer(k)
	bob := utils.TestAccount()

	// ARRANGE: Bob holds 500 shares, the vault has plenty of cash.
	seedVault(t, k, ctx, assets, 1000, 1000)
	ledger.Balances[bob.Address] = math.NewInt(500)

	// ACT & ASSERT: Bound by Bob's balance.
	resp, err := server.MaxWithdraw(ctx, &types.QueryMaxWithdraw{Owner: bob.Address})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(500), resp.MaxAssets)
}

func TestQueryMaxWithdrawLimitedByCash(t *testing.T) {
	k, _, ledger, assets, _, ctx := setupVault(t)
	server := keeper.NewQueryServer(k)
	bob := utils.TestAccount()

	// ARRANGE: Bob's claim exceeds the cash on hand. 100 of cash converts
	// to 100*1001/101 = 991 liquid shares.
	seedVault(t, k, ctx, assets, 100, 1000)
	ledger.Balances[bob.Address] = math.NewInt(2000)

	// ACT: Query both maxima.
	withdraw, err := server.MaxWithdraw(ctx, &types.QueryMaxWithdraw{Owner: bob.Address})
	require.NoError(t, err)
	redeem, err := server.MaxRedeem(ctx, &types.QueryMaxRedeem{Owner: bob.Address})
	require.NoError(t, err)

	// ASSERT: Both are bound by the liquid share equivalent of the cash,
	// not by Bob's balance. 991 shares pay out 991*101/1001 = 99 assets.
	assert.Equal(t, math.NewInt(991), redeem.MaxShares)
	assert.Equal(t, math.NewInt(99), withdraw.MaxAssets)
}

func TestQueryMaxForCollateralWithController(t *testing.T) {
	k, _, ledger, assets, controller, ctx := setupVault(t)
	server := keeper.NewQueryServer(k)
	bob := utils.TestAccount()

	// ARRANGE: Bob's shares back a loan, collateral and controller both
	// enabled.
	seedVault(t, k, ctx, assets, 1000, 1000)
	ledger.Balances[bob.Address] = math.NewInt(500)
	controller.Collateral[bob.Address] = true
	controller.Controllers[bob.Address] = true

	// ACT & ASSERT: The conservative answer is zero for both queries.
	withdraw, err := server.MaxWithdraw(ctx, &types.QueryMaxWithdraw{Owner: bob.Address})
	require.NoError(t, err)
	assert.True(t, withdraw.MaxAssets.IsZero())
	redeem, err := server.MaxRedeem(ctx, &types.QueryMaxRedeem{Owner: bob.Address})
	require.NoError(t, err)
	assert.True(t, redeem.MaxShares.IsZero())

	// ARRANGE: Only collateral enabled, no controller.
	controller.Controllers[bob.Address] = false

	// ACT & ASSERT: Bob's full balance is available again.
	redeem, err = server.MaxRedeem(ctx, &types.QueryMaxRedeem{Owner: bob.Address})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(500), redeem.MaxShares)
}

func TestQueryConversions(t *testing.T) {
	k, _, _, assets, _, ctx := setupVault(t)
	server := keeper.NewQueryServer(k)

	// ARRANGE: Shares above par.
	seedVault(t, k, ctx, assets, 3000, 2000)

	// ACT & ASSERT: Both previews round down.
	shares, err := server.ConvertToShares(ctx, &types.QueryConvertToShares{Assets: math.NewInt(100)})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(66), shares.Shares)

	converted, err := server.ConvertToAssets(ctx, &types.QueryConvertToAssets{Shares: math.NewInt(100)})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(149), converted.Assets)
}

func TestQueryVaultState(t *testing.T) {
	k, _, _, assets, _, ctx := setupVault(t)
	server := keeper.NewQueryServer(k)
	creator := utils.TestAccount()

	// ARRANGE: A fully populated vault state.
	seedVault(t, k, ctx, assets, 1000, 900)
	require.NoError(t, k.SetAccumulatedFees(ctx, types.NewShares(math.NewInt(100))))
	require.NoError(t, k.SetAccruedValue(ctx, types.NewAssets(math.NewInt(50))))
	require.NoError(t, k.SetSupplyCapValue(ctx, types.NewAssets(math.NewInt(5000))))
	require.NoError(t, k.SetDisabledOperationsBitmap(ctx, uint32(types.OpSkim)))
	require.NoError(t, k.SetCreator(ctx, creator.Address))

	// ACT: Query the state.
	resp, err := server.VaultState(ctx, &types.QueryVaultState{})

	// ASSERT: Every field round-trips, total assets is cash plus accrued.
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(1000), resp.Cash)
	assert.Equal(t, math.NewInt(900), resp.TotalShares)
	assert.Equal(t, math.NewInt(1050), resp.TotalAssets)
	assert.Equal(t, math.NewInt(5000), resp.SupplyCap)
	assert.Equal(t, math.NewInt(100), resp.AccumulatedFees)
	assert.Equal(t, math.NewInt(50), resp.AccruedValue)
	assert.Equal(t, uint32(types.OpSkim), resp.DisabledOperations)
	assert.Equal(t, creator.Address, resp.Creator)
}
