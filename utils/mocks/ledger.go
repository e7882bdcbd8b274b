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

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/0x3f97/euler-vault-kit/types"
)

var _ types.LedgerKeeper = &Ledger{}

// Ledger is an in-memory share ledger. Balances and allowances are keyed by
// the bech32 address.
type Ledger struct {
	Balances   map[string]math.Int
	Allowances map[string]map[string]math.Int

	// Controller, when set, is consulted on debits with the controller check
	// enabled. RejectDebits on the controller then fails the debit.
	Controller *Controller
}

func NewLedger() *Ledger {
	return &Ledger{
		Balances:   make(map[string]math.Int),
		Allowances: make(map[string]map[string]math.Int),
	}
}

func (l *Ledger) CreditShares(_ context.Context, account sdk.AccAddress, amount types.Shares) error {
	balance, ok := l.Balances[account.String()]
	if !ok {
		balance = math.ZeroInt()
	}

	l.Balances[account.String()] = balance.Add(amount.Int)

	return nil
}

func (l *Ledger) DebitShares(_ context.Context, owner, _ sdk.AccAddress, amount types.Shares, checkController bool) error {
	if checkController && l.Controller != nil && l.Controller.Controllers[owner.String()] && l.Controller.RejectDebits {
		return fmt.Errorf("controller rejected debit of %s shares", amount)
	}

	balance, ok := l.Balances[owner.String()]
	if !ok || balance.LT(amount.Int) {
		return fmt.Errorf("insufficient shares, owner holds %s", balance)
	}

	l.Balances[owner.String()] = balance.Sub(amount.Int)

	return nil
}

func (l *Ledger) DecreaseAllowance(_ context.Context, owner, spender sdk.AccAddress, amount types.Shares) error {
	allowance, ok := l.Allowances[owner.String()][spender.String()]
	if ok && types.IsMaxRequest(allowance) {
		return nil
	}
	if !ok || allowance.LT(amount.Int) {
		return errors.Wrapf(types.ErrAllowanceExceeded, "allowance is %s, debit needs %s", allowance, amount)
	}

	l.Allowances[owner.String()][spender.String()] = allowance.Sub(amount.Int)

	return nil
}

func (l *Ledger) GetBalance(_ context.Context, account sdk.AccAddress) (types.Shares, error) {
	balance, ok := l.Balances[account.String()]
	if !ok {
		return types.ZeroShares(), nil
	}

	return types.NewShares(balance), nil
}

// SetAllowance installs an allowance of owner's shares for the spender.
func (l *Ledger) SetAllowance(owner, spender sdk.AccAddress, amount math.Int) {
	if l.Allowances[owner.String()] == nil {
		l.Allowances[owner.String()] = make(map[string]math.Int)
	}

	l.Allowances[owner.String()][spender.String()] = amount
}
