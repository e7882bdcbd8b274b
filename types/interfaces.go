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

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// LedgerKeeper owns the per-account share balances and allowances. The vault
// core never touches those records directly; every mutation goes through
// these primitives, which are expected to be all-or-nothing with the
// enclosing operation.
type LedgerKeeper interface {
	// CreditShares increases the account's share balance.
	CreditShares(ctx context.Context, account sdk.AccAddress, amount Shares) error

	// DebitShares decreases the owner's share balance on behalf of caller.
	// When checkController is set and the owner has a controller registered,
	// the ledger consults it before committing; a controller rejection fails
	// the debit and therefore the whole operation.
	DebitShares(ctx context.Context, owner, caller sdk.AccAddress, amount Shares, checkController bool) error

	// DecreaseAllowance reduces the spender's allowance over the owner's
	// shares, failing with ErrAllowanceExceeded on shortfall. An infinite
	// allowance is exempt from the decrement.
	DecreaseAllowance(ctx context.Context, owner, spender sdk.AccAddress, amount Shares) error

	GetBalance(ctx context.Context, account sdk.AccAddress) (Shares, error)
}

// AssetKeeper moves the underlying asset token in and out of the vault
// account.
type AssetKeeper interface {
	// Pull transfers amount from the payer into the vault and reports the
	// quantity actually received, which may be lower for tokens that take a
	// fee on transfer.
	Pull(ctx context.Context, from sdk.AccAddress, amount Assets) (Assets, error)

	// Push transfers amount out of the vault to the recipient.
	Push(ctx context.Context, to sdk.AccAddress, amount Assets) error

	Balance(ctx context.Context, account sdk.AccAddress) (Assets, error)
}

// ControllerKeeper exposes the collateral/controller relationship of an
// account. The controller's verdict on a concrete debit is delivered through
// LedgerKeeper.DebitShares; this interface only answers whether the
// relationship exists.
type ControllerKeeper interface {
	HasCollateralEnabled(ctx context.Context, account sdk.AccAddress) (bool, error)
	HasControllerEnabled(ctx context.Context, account sdk.AccAddress) (bool, error)
}

// HookKeeper decides whether an operation is currently disabled given the
// vault's stored bitmap.
type HookKeeper interface {
	IsOperationDisabled(bitmap uint32, op Operation) bool
}
