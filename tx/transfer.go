// Copyright (c) 2025 The Mica developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"github.com/holiman/uint256"

	"github.com/micachain/mica/mica"
)

// Transfer native balance transfer log.
type Transfer struct {
	Sender    mica.Address
	Recipient mica.Address
	Amount    *uint256.Int
}

// Transfers slice of transfer logs.
type Transfers []*Transfer
