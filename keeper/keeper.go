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
	"sync/atomic"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/event"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/0x3f97/euler-vault-kit/types"
)

type Keeper struct {
	denom     string
	authority string

	store   store.KVStoreService
	logger  log.Logger
	event   event.Service
	address address.Codec

	ledger     types.LedgerKeeper
	assets     types.AssetKeeper
	controller types.ControllerKeeper
	hook       types.HookKeeper

	// inFlight is the per-vault operation gate. State-mutating entry points
	// set it for their whole duration; a nested entry fails outright.
	inFlight atomic.Bool

	Cash               collections.Item[math.Int]
	TotalShares        collections.Item[math.Int]
	SupplyCap          collections.Item[math.Int]
	AccumulatedFees    collections.Item[math.Int]
	AccruedValue       collections.Item[math.Int]
	DisabledOperations collections.Item[uint32]
	Creator            collections.Item[string]
}

func NewKeeper(
	denom string,
	authority string,
	store store.KVStoreService,
	logger log.Logger,
	event event.Service,
	address address.Codec,
	ledger types.LedgerKeeper,
	assets types.AssetKeeper,
	controller types.ControllerKeeper,
	hook types.HookKeeper,
) *Keeper {
	builder := collections.NewSchemaBuilder(store)

	keeper := &Keeper{
		denom:     denom,
		authority: authority,

		store:   store,
		logger:  logger.With("module", types.ModuleName),
		event:   event,
		address: address,

		ledger:     ledger,
		assets:     assets,
		controller: controller,
		hook:       hook,

		Cash:               collections.NewItem(builder, types.CashKey, "cash", sdk.IntValue),
		TotalShares:        collections.NewItem(builder, types.TotalSharesKey, "total_shares", sdk.IntValue),
		SupplyCap:          collections.NewItem(builder, types.SupplyCapKey, "supply_cap", sdk.IntValue),
		AccumulatedFees:    collections.NewItem(builder, types.AccumulatedFeesKey, "accumulated_fees", sdk.IntValue),
		AccruedValue:       collections.NewItem(builder, types.AccruedValueKey, "accrued_value", sdk.IntValue),
		DisabledOperations: collections.NewItem(builder, types.DisabledOperationsKey, "disabled_operations", collections.Uint32Value),
		Creator:            collections.NewItem(builder, types.CreatorKey, "creator", collections.StringValue),
	}

	_, err := builder.Build()
	if err != nil {
		panic(err)
	}

	return keeper
}

// GetDenom is a utility that returns the configured denomination of the
// underlying asset.
func (k *Keeper) GetDenom() string {
	return k.denom
}

// SetLedgerKeeper overwrites the ledger collaborator used in this module.
func (k *Keeper) SetLedgerKeeper(ledger types.LedgerKeeper) {
	k.ledger = ledger
}

// SetAssetKeeper overwrites the asset movement collaborator used in this module.
func (k *Keeper) SetAssetKeeper(assets types.AssetKeeper) {
	k.assets = assets
}

// beginOperation acquires the operation gate. The returned release function
// must be deferred so the gate is cleared on every exit path.
func (k *Keeper) beginOperation() (func(), error) {
	if !k.inFlight.CompareAndSwap(false, true) {
		return nil, types.ErrReentrantCall
	}

	return func() { k.inFlight.Store(false) }, nil
}
