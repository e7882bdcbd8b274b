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
	"testing"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/0x3f97/euler-vault-kit/keeper"
	"github.com/0x3f97/euler-vault-kit/types"
	"github.com/0x3f97/euler-vault-kit/utils"
)

const Denom = "uusdc"

// Authority is the governance account wired into every mock keeper.
var Authority = utils.TestAccount()

// VaultKeeper builds a keeper backed by an in-memory store and the given
// collaborator mocks.
func VaultKeeper(t *testing.T, ledger *Ledger, assets *Assets, controller *Controller) (*keeper.Keeper, sdk.Context) {
	key := storetypes.NewKVStoreKey(types.ModuleName)
	tkey := storetypes.NewTransientStoreKey("transient_" + types.ModuleName)
	ctx := testutil.DefaultContextWithDB(t, key, tkey).Ctx

	k := keeper.NewKeeper(
		Denom,
		Authority.Address,
		runtime.NewKVStoreService(key),
		log.NewNopLogger(),
		runtime.EventService{},
		address.NewBech32Codec("cosmos"),
		ledger,
		assets,
		controller,
		types.BitmapHook{},
	)

	return k, ctx
}
