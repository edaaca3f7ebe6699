// Copyright (c) 2025 The Mica developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"github.com/holiman/uint256"

	"github.com/micachain/mica/builtin"
	"github.com/micachain/mica/mica"
	"github.com/micachain/mica/state"
)

// DevAccount well-known account for development, holding the devnet
// token supply.
var DevAccount = mica.MustParseAddress("0xf077b491b355e64048ce21e3a6fc4751eeea77fa")

// DevTokenSupply the devnet token total supply.
var DevTokenSupply = uint256.NewInt(1_000_000)

// NewDevnet create the devnet genesis:
// counter at zero, the whole token supply held by DevAccount.
func NewDevnet() *Builder {
	return new(Builder).
		State(func(st *state.State) error {
			builtin.Counter.Native(st).Set(new(uint256.Int))
			return builtin.Token.Native(st).InitializeSupply(DevAccount, DevTokenSupply)
		})
}
