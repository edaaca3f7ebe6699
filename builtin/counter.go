// Copyright (c) 2025 The Mica developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package builtin

import (
	"github.com/holiman/uint256"

	"github.com/micachain/mica/mica"
	"github.com/micachain/mica/state"
)

const counterSlot = "value"

// CounterNative binds the counter contract storage to a state view.
type CounterNative struct {
	addr  mica.Address
	state *state.State
}

func newCounterNative(addr mica.Address, st *state.State) *CounterNative {
	return &CounterNative{addr, st}
}

// Get returns the current counter value.
func (c *CounterNative) Get() (*uint256.Int, error) {
	return c.state.GetStorage(c.addr, counterSlot)
}

// Set overwrites the counter value.
func (c *CounterNative) Set(value *uint256.Int) {
	c.state.SetStorage(c.addr, counterSlot, value)
}
