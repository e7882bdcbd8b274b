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
	"github.com/stretchr/testify/assert"

	"github.com/0x3f97/euler-vault-kit/keeper"
	"github.com/0x3f97/euler-vault-kit/types"
)

func snapshot(cash, totalShares, fees, accrued int64) keeper.VaultSnapshot {
	return keeper.VaultSnapshot{
		Cash:            types.NewAssets(math.NewInt(cash)),
		TotalShares:     types.NewShares(math.NewInt(totalShares)),
		AccumulatedFees: types.NewShares(math.NewInt(fees)),
		AccruedValue:    types.NewAssets(math.NewInt(accrued)),
		SupplyCap:       types.ZeroAssets(),
	}
}

func TestConversionEmptyVault(t *testing.T) {
	// ARRANGE: An empty vault. The virtual offsets keep the rate at one.
	s := snapshot(0, 0, 0, 0)

	// ACT & ASSERT: Conversions are defined and one-to-one.
	assert.Equal(t, math.NewInt(100), s.ToSharesDown(types.NewAssets(math.NewInt(100))).Int)
	assert.Equal(t, math.NewInt(100), s.ToSharesUp(types.NewAssets(math.NewInt(100))).Int)
	assert.Equal(t, math.NewInt(100), s.ToAssetsDown(types.NewShares(math.NewInt(100))).Int)
	assert.Equal(t, math.NewInt(100), s.ToAssetsUp(types.NewShares(math.NewInt(100))).Int)
}

func TestConversionRoundingDirections(t *testing.T) {
	// ARRANGE: A vault where shares trade above par, 3 assets for every 2
	// effective shares. With virtual offsets the rate is 3001 assets per
	// 2001 shares.
	s := snapshot(3000, 2000, 0, 0)

	// ACT: Convert 100 assets both ways.
	down := s.ToSharesDown(types.NewAssets(math.NewInt(100)))
	up := s.ToSharesUp(types.NewAssets(math.NewInt(100)))

	// ASSERT: 100*2001/3001 = 66.67..., truncated down, bumped up.
	assert.Equal(t, math.NewInt(66), down.Int)
	assert.Equal(t, math.NewInt(67), up.Int)

	// ACT: Convert 100 shares both ways.
	assetsDown := s.ToAssetsDown(types.NewShares(math.NewInt(100)))
	assetsUp := s.ToAssetsUp(types.NewShares(math.NewInt(100)))

	// ASSERT: 100*3001/2001 = 149.97..., truncated down, bumped up.
	assert.Equal(t, math.NewInt(149), assetsDown.Int)
	assert.Equal(t, math.NewInt(150), assetsUp.Int)
}

func TestConversionExactDivisionDoesNotRoundUp(t *testing.T) {
	// ARRANGE: A rate where the conversion divides exactly.
	s := snapshot(1000, 1000, 0, 0)

	// ACT & ASSERT: Up and down agree when there is no remainder.
	assert.Equal(t, math.NewInt(500), s.ToSharesDown(types.NewAssets(math.NewInt(500))).Int)
	assert.Equal(t, math.NewInt(500), s.ToSharesUp(types.NewAssets(math.NewInt(500))).Int)
}

func TestConversionFeeSharesDiluteTheRate(t *testing.T) {
	// ARRANGE: Two vaults identical except for accumulated fee shares.
	plain := snapshot(1000, 1000, 0, 0)
	withFees := snapshot(1000, 1000, 500, 0)

	// ACT: Convert the same deposit in both.
	plainShares := plain.ToSharesDown(types.NewAssets(math.NewInt(300)))
	dilutedShares := withFees.ToSharesDown(types.NewAssets(math.NewInt(300)))

	// ASSERT: Fee shares participate in the effective supply, so the same
	// assets buy more shares. 300*1501/1001 = 449.
	assert.Equal(t, math.NewInt(300), plainShares.Int)
	assert.Equal(t, math.NewInt(449), dilutedShares.Int)
}

func TestConversionAccruedValueRaisesTheRate(t *testing.T) {
	// ARRANGE: Reported accrued value counts toward total assets.
	s := snapshot(1000, 1000, 0, 500)

	// ACT: 300 assets at a 1501/1001 asset-per-share rate.
	shares := s.ToSharesDown(types.NewAssets(math.NewInt(300)))

	// ASSERT: 300*1001/1501 = 200.06..., truncated.
	assert.Equal(t, math.NewInt(200), shares.Int)
}

func TestConversionRoundTripNeverProfits(t *testing.T) {
	// ARRANGE: An awkward rate with remainders in both directions.
	s := snapshot(3137, 2713, 11, 97)

	for _, amount := range []int64{1, 2, 3, 7, 100, 999, 3137} {
		assets := types.NewAssets(math.NewInt(amount))

		// ACT: Deposit-then-withdraw at a fixed rate. The deposit mints
		// shares rounded down, withdrawals price those shares rounded up.
		minted := s.ToSharesDown(assets)
		cost := s.ToAssetsUp(minted)
		back := s.ToSharesDown(cost)

		// ASSERT: No rounding path manufactures value for the caller.
		assert.True(t, back.Int.LTE(minted.Int), "amount %d", amount)

		// ASSERT: A round-down payout never exceeds the assets put in.
		assert.True(t, s.ToAssetsDown(minted).Int.LTE(assets.Int), "amount %d", amount)
	}
}

func TestConversionMaxSaneAmountsDoNotOverflow(t *testing.T) {
	// ARRANGE: Every stored quantity at the sane limit. The intermediate
	// product stays within 256-bit arithmetic.
	s := keeper.VaultSnapshot{
		Cash:            types.NewAssets(types.MaxSaneAmount),
		TotalShares:     types.NewShares(types.MaxSaneAmount),
		AccumulatedFees: types.ZeroShares(),
		AccruedValue:    types.ZeroAssets(),
		SupplyCap:       types.ZeroAssets(),
	}

	// ACT & ASSERT: The conversion completes and stays within the sane
	// range.
	shares := s.ToSharesDown(types.NewAssets(types.MaxSaneAmount))
	assert.True(t, shares.Int.LTE(types.MaxSaneAmount))
}
