// Copyright (c) 2025 The Mica developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package builtin

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/micachain/mica/mica"
	"github.com/micachain/mica/state"
)

const totalSupplySlot = "total-supply"

// TokenNative binds the token contract storage to a state view.
// Token balances are held as native account balances; only the
// supply bookkeeping lives in the contract's own storage.
type TokenNative struct {
	addr  mica.Address
	state *state.State
}

func newTokenNative(addr mica.Address, st *state.State) *TokenNative {
	return &TokenNative{addr, st}
}

// InitializeSupply mints the total supply to the holder account.
// It's expected to be called once, at genesis.
func (t *TokenNative) InitializeSupply(holder mica.Address, supply *uint256.Int) error {
	recorded, err := t.TotalSupply()
	if err != nil {
		return err
	}
	if !recorded.IsZero() {
		return errors.New("token supply already initialized")
	}
	t.state.SetStorage(t.addr, totalSupplySlot, supply)

	balance, err := t.state.GetBalance(holder)
	if err != nil {
		return err
	}
	sum, overflow := new(uint256.Int).AddOverflow(balance, supply)
	if overflow {
		return errors.New("token supply overflows holder balance")
	}
	return t.state.SetBalance(holder, sum)
}

// TotalSupply returns the recorded total supply.
func (t *TokenNative) TotalSupply() (*uint256.Int, error) {
	return t.state.GetStorage(t.addr, totalSupplySlot)
}

// BalanceOf returns the token balance of an account.
func (t *TokenNative) BalanceOf(addr mica.Address) (*uint256.Int, error) {
	return t.state.GetBalance(addr)
}
