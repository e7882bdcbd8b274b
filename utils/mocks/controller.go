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

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/0x3f97/euler-vault-kit/types"
)

var _ types.ControllerKeeper = &Controller{}

// Controller tracks which accounts have their shares enabled as collateral
// and which are bound to a position controller.
type Controller struct {
	Collateral  map[string]bool
	Controllers map[string]bool

	// RejectDebits makes the controller veto every debit of a bound account.
	RejectDebits bool
}

func NewController() *Controller {
	return &Controller{
		Collateral:  make(map[string]bool),
		Controllers: make(map[string]bool),
	}
}

func (c *Controller) HasCollateralEnabled(_ context.Context, account sdk.AccAddress) (bool, error) {
	return c.Collateral[account.String()], nil
}

func (c *Controller) HasControllerEnabled(_ context.Context, account sdk.AccAddress) (bool, error) {
	return c.Controllers[account.String()], nil
}
