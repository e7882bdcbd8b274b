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

import "cosmossdk.io/errors"

var (
	ErrInvalidRequest     = errors.Register(ModuleName, 2, "invalid request")
	ErrInvalidAuthority   = errors.Register(ModuleName, 3, "signer is not authority")
	ErrZeroShares         = errors.Register(ModuleName, 4, "conversion produced zero shares")
	ErrZeroAssets         = errors.Register(ModuleName, 5, "conversion produced zero assets")
	ErrInsufficientCash   = errors.Register(ModuleName, 6, "insufficient cash")
	ErrInsufficientAssets = errors.Register(ModuleName, 7, "insufficient unaccounted assets")
	ErrAllowanceExceeded  = errors.Register(ModuleName, 8, "allowance exceeded")
	ErrOperationDisabled  = errors.Register(ModuleName, 9, "operation disabled")
	ErrSupplyCapExceeded  = errors.Register(ModuleName, 10, "supply cap exceeded")
	ErrAmountTooLarge     = errors.Register(ModuleName, 11, "amount exceeds sane limit")
	ErrReentrantCall      = errors.Register(ModuleName, 12, "operation already in flight")
)
