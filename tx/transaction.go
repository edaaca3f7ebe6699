// Copyright (c) 2025 The Mica developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"fmt"

	"github.com/micachain/mica/mica"
)

// Transaction is a method call against a deployed contract.
// It's immutable once built, and consumed exactly once by the executor.
type Transaction struct {
	body body
}

type body struct {
	Sender mica.Address
	Target mica.Address
	Method string
	Args   []Value
}

// Sender returns the calling account address.
func (t *Transaction) Sender() mica.Address { return t.body.Sender }

// Target returns the called contract address.
func (t *Transaction) Target() mica.Address { return t.body.Target }

// Method returns the called method name.
func (t *Transaction) Method() string { return t.body.Method }

// Args returns a copy of the call arguments.
func (t *Transaction) Args() []Value {
	args := make([]Value, len(t.body.Args))
	copy(args, t.body.Args)
	return args
}

// String implements the stringer interface.
func (t *Transaction) String() string {
	return fmt.Sprintf("tx(%v -> %v.%v/%d args)", t.body.Sender, t.body.Target, t.body.Method, len(t.body.Args))
}

// Builder to make it easy to build a transaction.
type Builder struct {
	body body
}

// Sender set sender.
func (b *Builder) Sender(addr mica.Address) *Builder {
	b.body.Sender = addr
	return b
}

// Target set target contract.
func (b *Builder) Target(addr mica.Address) *Builder {
	b.body.Target = addr
	return b
}

// Method set method name.
func (b *Builder) Method(name string) *Builder {
	b.body.Method = name
	return b
}

// Args set call arguments.
func (b *Builder) Args(args ...Value) *Builder {
	b.body.Args = append([]Value(nil), args...)
	return b
}

// Build build tx object.
func (b *Builder) Build() *Transaction {
	return &Transaction{body: b.body}
}
