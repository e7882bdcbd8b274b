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

// Operation identifies a single vault entry point inside the disabled
// operations bitmap.
type Operation uint32

const (
	OpDeposit Operation = 1 << iota
	OpMint
	OpWithdraw
	OpRedeem
	OpSkim
	OpCollectFees
)

func (o Operation) String() string {
	switch o {
	case OpDeposit:
		return "deposit"
	case OpMint:
		return "mint"
	case OpWithdraw:
		return "withdraw"
	case OpRedeem:
		return "redeem"
	case OpSkim:
		return "skim"
	case OpCollectFees:
		return "collect_fees"
	default:
		return "unknown"
	}
}

// BitmapHook is the stock operation-disable hook: an operation is disabled
// exactly when its bit is set in the stored bitmap.
type BitmapHook struct{}

func (BitmapHook) IsOperationDisabled(bitmap uint32, op Operation) bool {
	return bitmap&uint32(op) != 0
}
