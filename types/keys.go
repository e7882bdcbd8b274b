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
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

const ModuleName = "evault"

// ModuleAddress is the account that physically holds the vault's underlying
// asset balance. Skim reconciles this account's wallet balance against the
// ledger-tracked cash.
var ModuleAddress sdk.AccAddress = authtypes.NewModuleAddress(ModuleName)

var (
	CashKey               = []byte("evault/cash")
	TotalSharesKey        = []byte("evault/total_shares")
	SupplyCapKey          = []byte("evault/supply_cap")
	AccumulatedFeesKey    = []byte("evault/accumulated_fees")
	AccruedValueKey       = []byte("evault/accrued_value")
	DisabledOperationsKey = []byte("evault/disabled_operations")
	CreatorKey            = []byte("evault/creator")
)
