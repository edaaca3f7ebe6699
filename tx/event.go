// Copyright (c) 2025 The Mica developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"github.com/micachain/mica/mica"
)

// Event is a named record emitted by a contract method.
type Event struct {
	// Address the emitting contract address.
	Address mica.Address
	// Name the event name.
	Name string
	// Fields ordered typed field values.
	Fields []Value
}

// Events slice of events.
type Events []*Event
