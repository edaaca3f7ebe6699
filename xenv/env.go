// Copyright (c) 2025 The Mica developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package xenv

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/micachain/mica/mica"
	"github.com/micachain/mica/state"
	"github.com/micachain/mica/tx"
)

// TransactionContext transaction context.
type TransactionContext struct {
	Origin mica.Address
	Steps  uint64
}

type fatalError struct {
	cause error
}

// Environment an env to execute a native method.
// It buffers emitted events and transfers; the caller collects them
// only after the method body completed without revert.
type Environment struct {
	state  *state.State
	txCtx  *TransactionContext
	to     mica.Address
	method string
	args   []tx.Value

	steps     uint64
	events    tx.Events
	transfers tx.Transfers
}

// New create a new env.
func New(st *state.State, txCtx *TransactionContext, to mica.Address, method string, args []tx.Value) *Environment {
	return &Environment{
		state:  st,
		txCtx:  txCtx,
		to:     to,
		method: method,
		args:   args,
		steps:  txCtx.Steps,
	}
}

func (env *Environment) TransactionContext() *TransactionContext { return env.txCtx }

// Sender the calling account.
func (env *Environment) Sender() mica.Address { return env.txCtx.Origin }

// To the contract being called.
func (env *Environment) To() mica.Address { return env.to }

// ArgCount count of call arguments.
func (env *Environment) ArgCount() int { return len(env.args) }

// Revert aborts the method with the given failure kind.
func (env *Environment) Revert(kind ErrorKind, reason string) {
	panic(NewRevert(kind, reason))
}

// Require reverts with the given kind unless cond holds.
func (env *Environment) Require(cond bool, kind ErrorKind, reason string) {
	if !cond {
		env.Revert(kind, reason)
	}
}

// UseSteps debits the per-transaction step budget.
func (env *Environment) UseSteps(n uint64) {
	if env.steps < n {
		env.Revert(ErrStepLimit, fmt.Sprintf("need %d steps, %d left", n, env.steps))
	}
	env.steps -= n
}

// StepsLeft the remaining step budget.
func (env *Environment) StepsLeft() uint64 { return env.steps }

func (env *Environment) arg(i int) tx.Value {
	if i >= len(env.args) {
		env.Revert(ErrInvalidArgument, fmt.Sprintf("%s: missing argument %d", env.method, i))
	}
	return env.args[i]
}

// Uint decodes argument i as a uint256, reverting on kind mismatch.
func (env *Environment) Uint(i int) *uint256.Int {
	v, ok := env.arg(i).AsUint()
	if !ok {
		env.Revert(ErrInvalidArgument, fmt.Sprintf("%s: argument %d is not a uint", env.method, i))
	}
	return v
}

// Address decodes argument i as an address, reverting on kind mismatch.
func (env *Environment) Address(i int) mica.Address {
	a, ok := env.arg(i).AsAddress()
	if !ok {
		env.Revert(ErrInvalidArgument, fmt.Sprintf("%s: argument %d is not an address", env.method, i))
	}
	return a
}

// GetStorage reads a storage slot of the called contract.
func (env *Environment) GetStorage(key string) *uint256.Int {
	v, err := env.state.GetStorage(env.to, key)
	if err != nil {
		panic(&fatalError{err})
	}
	return v
}

// SetStorage writes a storage slot of the called contract.
func (env *Environment) SetStorage(key string, value *uint256.Int) {
	env.state.SetStorage(env.to, key, value)
}

// GetBalance reads the native balance of an account.
func (env *Environment) GetBalance(addr mica.Address) *uint256.Int {
	v, err := env.state.GetBalance(addr)
	if err != nil {
		panic(&fatalError{err})
	}
	return v
}

// SetBalance writes the native balance of an account.
func (env *Environment) SetBalance(addr mica.Address, balance *uint256.Int) {
	if err := env.state.SetBalance(addr, balance); err != nil {
		panic(&fatalError{err})
	}
}

// Log buffers a named event with ordered typed fields.
func (env *Environment) Log(name string, fields ...tx.Value) {
	env.events = append(env.events, &tx.Event{
		Address: env.to,
		Name:    name,
		Fields:  fields,
	})
}

// Transfer buffers a native balance transfer record.
func (env *Environment) Transfer(sender, recipient mica.Address, amount *uint256.Int) {
	env.transfers = append(env.transfers, &tx.Transfer{
		Sender:    sender,
		Recipient: recipient,
		Amount:    new(uint256.Int).Set(amount),
	})
}

// Call runs the method body, recovering reverts into error returns.
// State access failures are fatal and returned wrapped, distinct from reverts.
func (env *Environment) Call(proc func(env *Environment) []tx.Value) (output []tx.Value, events tx.Events, transfers tx.Transfers, err error) {
	defer func() {
		if e := recover(); e != nil {
			switch cause := e.(type) {
			case *Revert:
				err = cause
			case *fatalError:
				err = errors.WithMessage(cause.cause, "call native method")
			default:
				panic(e)
			}
		}
	}()
	output = proc(env)
	return output, env.events, env.transfers, nil
}
