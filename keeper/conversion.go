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
	"cosmossdk.io/math"

	"github.com/0x3f97/euler-vault-kit/types"
)

// Virtual offsets added to both sides of the exchange rate. They keep the
// rate defined for an empty vault and harden the share price against
// first-depositor inflation, at the cost of a one-base-unit bias that
// vanishes as the vault grows.
var (
	virtualAssets = math.OneInt()
	virtualShares = math.OneInt()
)

// The rounding direction of each conversion is a security contract, not a
// convenience. Shares owed by the vault round down; shares owed to the vault
// round up. The asset-side conversions mirror that rule for mint and redeem.

func (s VaultSnapshot) assetsVirtual() math.Int {
	return s.Cash.Int.Add(s.AccruedValue.Int).Add(virtualAssets)
}

// Accumulated fee shares participate in the exchange rate: they are part of
// the claim on vault assets even before being converted into circulating
// supply.
func (s VaultSnapshot) sharesVirtual() math.Int {
	return s.TotalShares.Int.Add(s.AccumulatedFees.Int).Add(virtualShares)
}

// ToSharesDown converts assets to shares, truncating toward zero. Used when
// the vault pays out shares: the vault never overpays.
func (s VaultSnapshot) ToSharesDown(assets types.Assets) types.Shares {
	return types.Shares{Int: assets.Int.Mul(s.sharesVirtual()).Quo(s.assetsVirtual())}
}

// ToSharesUp converts assets to shares, rounding any nonzero remainder up by
// one smallest unit. Used when the caller owes shares: the caller never
// underpays.
func (s VaultSnapshot) ToSharesUp(assets types.Assets) types.Shares {
	return types.Shares{Int: ceilDiv(assets.Int.Mul(s.sharesVirtual()), s.assetsVirtual())}
}

// ToAssetsDown converts shares to assets, truncating toward zero.
func (s VaultSnapshot) ToAssetsDown(shares types.Shares) types.Assets {
	return types.Assets{Int: shares.Int.Mul(s.assetsVirtual()).Quo(s.sharesVirtual())}
}

// ToAssetsUp converts shares to assets, rounding any nonzero remainder up by
// one smallest unit.
func (s VaultSnapshot) ToAssetsUp(shares types.Shares) types.Assets {
	return types.Assets{Int: ceilDiv(shares.Int.Mul(s.assetsVirtual()), s.sharesVirtual())}
}

func ceilDiv(numerator, denominator math.Int) math.Int {
	quotient := numerator.Quo(denominator)
	if !numerator.Mod(denominator).IsZero() {
		quotient = quotient.Add(math.OneInt())
	}

	return quotient
}
