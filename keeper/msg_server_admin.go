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
	"strconv"

	"cosmossdk.io/core/event"
	"cosmossdk.io/errors"
	"cosmossdk.io/math"

	"github.com/0x3f97/euler-vault-kit/types"
)

// SetSupplyCap updates the vault's supply cap. A zero cap removes the limit.
// Lowering the cap below the current total assets is allowed; existing
// positions are unaffected and further deposits simply fail until the vault
// shrinks back under the cap.
func (m msgServer) SetSupplyCap(ctx context.Context, msg *types.MsgSetSupplyCap) (*types.MsgSetSupplyCapResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if err := m.checkAuthority(msg.Authority); err != nil {
		return nil, err
	}

	release, err := m.beginOperation()
	if err != nil {
		return nil, err
	}
	defer release()

	if msg.SupplyCap.IsNil() || msg.SupplyCap.IsNegative() {
		return nil, errors.Wrap(types.ErrInvalidRequest, "supply cap must be set and non-negative")
	}

	if err := m.SetSupplyCapValue(ctx, types.NewAssets(msg.SupplyCap)); err != nil {
		return nil, errors.Wrap(err, "unable to set supply cap to state")
	}

	if err := m.event.EventManager(ctx).EmitKV(ctx, types.EventTypeConfig,
		event.Attribute{Key: types.AttributeKeyField, Value: "supply_cap"},
		event.Attribute{Key: types.AttributeKeyValue, Value: msg.SupplyCap.String()},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit config event")
	}

	return &types.MsgSetSupplyCapResponse{}, nil
}

// SetDisabledOperations replaces the disabled operations bitmap.
func (m msgServer) SetDisabledOperations(ctx context.Context, msg *types.MsgSetDisabledOperations) (*types.MsgSetDisabledOperationsResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if err := m.checkAuthority(msg.Authority); err != nil {
		return nil, err
	}

	release, err := m.beginOperation()
	if err != nil {
		return nil, err
	}
	defer release()

	if err := m.SetDisabledOperationsBitmap(ctx, msg.Bitmap); err != nil {
		return nil, errors.Wrap(err, "unable to set disabled operations to state")
	}

	if err := m.event.EventManager(ctx).EmitKV(ctx, types.EventTypeConfig,
		event.Attribute{Key: types.AttributeKeyField, Value: "disabled_operations"},
		event.Attribute{Key: types.AttributeKeyValue, Value: strconv.FormatUint(uint64(msg.Bitmap), 10)},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit config event")
	}

	return &types.MsgSetDisabledOperationsResponse{}, nil
}

// ReportAccruedValue records the asset value the vault is owed on top of its
// cash. The figure shifts the exchange rate immediately, so only the
// authority may report it.
func (m msgServer) ReportAccruedValue(ctx context.Context, msg *types.MsgReportAccruedValue) (*types.MsgReportAccruedValueResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if err := m.checkAuthority(msg.Authority); err != nil {
		return nil, err
	}

	release, err := m.beginOperation()
	if err != nil {
		return nil, err
	}
	defer release()

	accrued := types.NewAssets(msg.Value)
	if err := accrued.Validate(); err != nil {
		return nil, err
	}

	if err := m.SetAccruedValue(ctx, accrued); err != nil {
		return nil, errors.Wrap(err, "unable to set accrued value to state")
	}

	if err := m.event.EventManager(ctx).EmitKV(ctx, types.EventTypeConfig,
		event.Attribute{Key: types.AttributeKeyField, Value: "accrued_value"},
		event.Attribute{Key: types.AttributeKeyValue, Value: accrued.String()},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit config event")
	}

	return &types.MsgReportAccruedValueResponse{}, nil
}

// CollectFees converts the accumulated fee shares into circulating shares
// credited to the vault creator. The exchange rate does not move: fee shares
// already participate in the effective supply, collection only changes whose
// name is on them.
func (m msgServer) CollectFees(ctx context.Context, msg *types.MsgCollectFees) (*types.MsgCollectFeesResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if err := m.checkAuthority(msg.Authority); err != nil {
		return nil, err
	}

	snapshot, release, err := m.initOperation(ctx, types.OpCollectFees)
	if err != nil {
		return nil, err
	}
	defer release()

	fees := snapshot.AccumulatedFees
	if fees.Int.IsZero() {
		return &types.MsgCollectFeesResponse{SharesCollected: math.ZeroInt()}, nil
	}

	creator, err := m.GetCreator(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to get creator from state")
	}
	if creator == "" {
		return nil, errors.Wrap(types.ErrInvalidRequest, "vault has no creator configured")
	}
	receiver, err := m.decodeAddress(creator, "creator")
	if err != nil {
		return nil, err
	}

	if err := m.ledger.CreditShares(ctx, receiver, fees); err != nil {
		return nil, errors.Wrap(err, "unable to credit fee shares to creator")
	}

	total, err := snapshot.TotalShares.SafeAdd(fees)
	if err != nil {
		return nil, errors.Wrap(err, "unable to increase total shares")
	}
	if err := m.SetTotalShares(ctx, total); err != nil {
		return nil, errors.Wrap(err, "unable to set total shares to state")
	}
	if err := m.SetAccumulatedFees(ctx, types.ZeroShares()); err != nil {
		return nil, errors.Wrap(err, "unable to set accumulated fees to state")
	}

	if err := m.event.EventManager(ctx).EmitKV(ctx, types.EventTypeCollectFees,
		event.Attribute{Key: types.AttributeKeyReceiver, Value: creator},
		event.Attribute{Key: types.AttributeKeyShares, Value: fees.String()},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit fee collection event")
	}

	return &types.MsgCollectFeesResponse{SharesCollected: fees.Int}, nil
}

func (m msgServer) checkAuthority(authority string) error {
	if m.authority != authority {
		return errors.Wrapf(types.ErrInvalidAuthority, "expected %s, got %s", m.authority, authority)
	}

	return nil
}
