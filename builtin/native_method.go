// Copyright (c) 2025 The Mica developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package builtin

import (
	"fmt"

	"github.com/micachain/mica/mica"
	"github.com/micachain/mica/state"
	"github.com/micachain/mica/tx"
	"github.com/micachain/mica/xenv"
)

type addressAndMethodName struct {
	mica.Address
	name string
}

// nativeMethod describes a native method call.
// The run function is a deterministic pure state transition:
// no clock reads, no randomness, no I/O.
type nativeMethod struct {
	addr mica.Address
	name string
	run  func(env *xenv.Environment) []tx.Value
}

var (
	contracts = make(map[mica.Address]*contract)
	methods   = make(map[addressAndMethodName]*nativeMethod)
)

type methodDefine struct {
	name string
	run  func(env *xenv.Environment) []tx.Value
}

func registerMethods(c *contract, defines []methodDefine) {
	for _, def := range defines {
		key := addressAndMethodName{c.Address, def.name}
		if _, dup := methods[key]; dup {
			panic("method already registered: " + c.name + "." + def.name)
		}
		methods[key] = &nativeMethod{
			addr: c.Address,
			name: def.name,
			run:  def.run,
		}
	}
}

// Dispatch resolves the target contract and method name to its
// state-transition function and runs it against a fresh environment.
// Identical (state, transaction) pairs always produce identical results.
func Dispatch(
	st *state.State,
	txCtx *xenv.TransactionContext,
	target mica.Address,
	method string,
	args []tx.Value,
) (output []tx.Value, events tx.Events, transfers tx.Transfers, err error) {
	if _, found := contracts[target]; !found {
		return nil, nil, nil, xenv.NewRevert(xenv.ErrUnknownContract, fmt.Sprintf("no contract at %v", target))
	}
	m, found := methods[addressAndMethodName{target, method}]
	if !found {
		return nil, nil, nil, xenv.NewRevert(xenv.ErrUnknownMethod, fmt.Sprintf("%v has no method %q", target, method))
	}

	env := xenv.New(st, txCtx, target, method, args)
	return env.Call(m.run)
}
