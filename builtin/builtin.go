// Copyright (c) 2025 The Mica developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package builtin

import (
	"github.com/micachain/mica/mica"
	"github.com/micachain/mica/state"
)

// Builtin contracts binding.
var (
	Counter = &counterContract{mustLoadContract("Counter")}
	Token   = &tokenContract{mustLoadContract("Token")}
)

type (
	counterContract struct{ *contract }
	tokenContract   struct{ *contract }
)

// Native creates the counter storage binding on the given state.
func (c *counterContract) Native(st *state.State) *CounterNative {
	return newCounterNative(c.Address, st)
}

// Native creates the token storage binding on the given state.
func (t *tokenContract) Native(st *state.State) *TokenNative {
	return newTokenNative(t.Address, st)
}

// contract describes a deployed builtin contract.
// The address is derived from the contract name, so it's well-known.
type contract struct {
	name    string
	Address mica.Address
}

func mustLoadContract(name string) *contract {
	c := &contract{
		name,
		mica.BytesToAddress([]byte(name)),
	}
	if _, dup := contracts[c.Address]; dup {
		panic("contract already registered: " + name)
	}
	contracts[c.Address] = c
	return c
}

func init() {
	initCounterMethods()
	initTokenMethods()
}
