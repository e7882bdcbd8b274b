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
	"github.com/stretchr/testify/require"

	"github.com/0x3f97/euler-vault-kit/types"
	"github.com/0x3f97/euler-vault-kit/utils"
)

func TestGenesisRoundTrip(t *testing.T) {
	k, _, _, _, _, ctx := setupVault(t)
	creator := utils.TestAccount()

	// ARRANGE: A populated genesis state.
	genesis := types.GenesisState{
		Creator:            creator.Address,
		Cash:               math.NewInt(1000),
		TotalShares:        math.NewInt(900),
		SupplyCap:          math.NewInt(5000),
		AccumulatedFees:    math.NewInt(100),
		AccruedValue:       math.NewInt(50),
		DisabledOperations: uint32(types.OpSkim),
	}

	// ACT: Import then export.
	require.NoError(t, k.InitGenesis(ctx, genesis))
	exported, err := k.ExportGenesis(ctx)

	// ASSERT: The state survives unchanged.
	require.NoError(t, err)
	assert.Equal(t, genesis, exported)
}

func TestGenesisRejectsInvalidState(t *testing.T) {
	k, _, _, _, _, ctx := setupVault(t)

	// ACT: A genesis state with negative cash.
	err := k.InitGenesis(ctx, types.GenesisState{
		Cash:               math.NewInt(-1),
		TotalShares:        math.ZeroInt(),
		SupplyCap:          math.ZeroInt(),
		AccumulatedFees:    math.ZeroInt(),
		AccruedValue:       math.ZeroInt(),
		DisabledOperations: 0,
	})

	// ASSERT: Rejected by validation.
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid genesis state")
}

func TestGenesisDefaultIsEmptyVault(t *testing.T) {
	k, _, _, _, _, ctx := setupVault(t)

	// ACT: Import the default genesis.
	require.NoError(t, k.InitGenesis(ctx, types.DefaultGenesisState()))

	// ASSERT: An empty, uncapped, fully enabled vault.
	exported, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	assert.True(t, exported.Cash.IsZero())
	assert.True(t, exported.TotalShares.IsZero())
	assert.True(t, exported.SupplyCap.IsZero())
	assert.Zero(t, exported.DisabledOperations)
	assert.Empty(t, exported.Creator)
}
